// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/masteryevent"
	"github.com/abhisek/focusloop/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryEventUpdate) SetStudentID(v string) *MasteryEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableStudentID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdate) SetSkillID(v string) *MasteryEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSkillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetFromBand sets the "from_band" field.
func (_u *MasteryEventUpdate) SetFromBand(v string) *MasteryEventUpdate {
	_u.mutation.SetFromBand(v)
	return _u
}

// SetNillableFromBand sets the "from_band" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromBand(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromBand(*v)
	}
	return _u
}

// SetToBand sets the "to_band" field.
func (_u *MasteryEventUpdate) SetToBand(v string) *MasteryEventUpdate {
	_u.mutation.SetToBand(v)
	return _u
}

// SetNillableToBand sets the "to_band" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToBand(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetToBand(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *MasteryEventUpdate) SetMastery(v float64) *MasteryEventUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableMastery(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *MasteryEventUpdate) AddMastery(v float64) *MasteryEventUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetDecayRate sets the "decay_rate" field.
func (_u *MasteryEventUpdate) SetDecayRate(v float64) *MasteryEventUpdate {
	_u.mutation.ResetDecayRate()
	_u.mutation.SetDecayRate(v)
	return _u
}

// SetNillableDecayRate sets the "decay_rate" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableDecayRate(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetDecayRate(*v)
	}
	return _u
}

// AddDecayRate adds value to the "decay_rate" field.
func (_u *MasteryEventUpdate) AddDecayRate(v float64) *MasteryEventUpdate {
	_u.mutation.AddDecayRate(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromBand(); ok {
		if err := masteryevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToBand(); ok {
		if err := masteryevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_band": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromBand(); ok {
		_spec.SetField(masteryevent.FieldFromBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToBand(); ok {
		_spec.SetField(masteryevent.FieldToBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(masteryevent.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(masteryevent.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DecayRate(); ok {
		_spec.SetField(masteryevent.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayRate(); ok {
		_spec.AddField(masteryevent.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryEventUpdateOne) SetStudentID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableStudentID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdateOne) SetSkillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSkillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetFromBand sets the "from_band" field.
func (_u *MasteryEventUpdateOne) SetFromBand(v string) *MasteryEventUpdateOne {
	_u.mutation.SetFromBand(v)
	return _u
}

// SetNillableFromBand sets the "from_band" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromBand(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromBand(*v)
	}
	return _u
}

// SetToBand sets the "to_band" field.
func (_u *MasteryEventUpdateOne) SetToBand(v string) *MasteryEventUpdateOne {
	_u.mutation.SetToBand(v)
	return _u
}

// SetNillableToBand sets the "to_band" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToBand(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToBand(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *MasteryEventUpdateOne) SetMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableMastery(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *MasteryEventUpdateOne) AddMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetDecayRate sets the "decay_rate" field.
func (_u *MasteryEventUpdateOne) SetDecayRate(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetDecayRate()
	_u.mutation.SetDecayRate(v)
	return _u
}

// SetNillableDecayRate sets the "decay_rate" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableDecayRate(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetDecayRate(*v)
	}
	return _u
}

// AddDecayRate adds value to the "decay_rate" field.
func (_u *MasteryEventUpdateOne) AddDecayRate(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddDecayRate(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromBand(); ok {
		if err := masteryevent.FromBandValidator(v); err != nil {
			return &ValidationError{Name: "from_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToBand(); ok {
		if err := masteryevent.ToBandValidator(v); err != nil {
			return &ValidationError{Name: "to_band", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_band": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromBand(); ok {
		_spec.SetField(masteryevent.FieldFromBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToBand(); ok {
		_spec.SetField(masteryevent.FieldToBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(masteryevent.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(masteryevent.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DecayRate(); ok {
		_spec.SetField(masteryevent.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayRate(); ok {
		_spec.AddField(masteryevent.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
