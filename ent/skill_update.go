// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/predicate"
	"github.com/abhisek/focusloop/ent/skill"
)

// SkillUpdate is the builder for updating Skill entities.
type SkillUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdate) Where(ps ...predicate.Skill) *SkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *SkillUpdate) SetCategory(v string) *SkillUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableCategory(v *string) *SkillUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *SkillUpdate) SetDisplayName(v string) *SkillUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDisplayName(v *string) *SkillUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillUpdate) SetMastery(v float64) *SkillUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableMastery(v *float64) *SkillUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *SkillUpdate) AddMastery(v float64) *SkillUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetDecayRate sets the "decay_rate" field.
func (_u *SkillUpdate) SetDecayRate(v float64) *SkillUpdate {
	_u.mutation.ResetDecayRate()
	_u.mutation.SetDecayRate(v)
	return _u
}

// SetNillableDecayRate sets the "decay_rate" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDecayRate(v *float64) *SkillUpdate {
	if v != nil {
		_u.SetDecayRate(*v)
	}
	return _u
}

// AddDecayRate adds value to the "decay_rate" field.
func (_u *SkillUpdate) AddDecayRate(v float64) *SkillUpdate {
	_u.mutation.AddDecayRate(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SkillUpdate) SetLastSeen(v time.Time) *SkillUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableLastSeen(v *time.Time) *SkillUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *SkillUpdate) SetTotalAttempts(v int) *SkillUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTotalAttempts(v *int) *SkillUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *SkillUpdate) AddTotalAttempts(v int) *SkillUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *SkillUpdate) SetCorrectAttempts(v int) *SkillUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableCorrectAttempts(v *int) *SkillUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *SkillUpdate) AddCorrectAttempts(v int) *SkillUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetTypicalAnswerStyle sets the "typical_answer_style" field.
func (_u *SkillUpdate) SetTypicalAnswerStyle(v string) *SkillUpdate {
	_u.mutation.SetTypicalAnswerStyle(v)
	return _u
}

// SetNillableTypicalAnswerStyle sets the "typical_answer_style" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTypicalAnswerStyle(v *string) *SkillUpdate {
	if v != nil {
		_u.SetTypicalAnswerStyle(*v)
	}
	return _u
}

// SetStyleCounts sets the "style_counts" field.
func (_u *SkillUpdate) SetStyleCounts(v map[string]int) *SkillUpdate {
	_u.mutation.SetStyleCounts(v)
	return _u
}

// ClearStyleCounts clears the value of the "style_counts" field.
func (_u *SkillUpdate) ClearStyleCounts() *SkillUpdate {
	_u.mutation.ClearStyleCounts()
	return _u
}

// SetAvgResponseSecs sets the "avg_response_secs" field.
func (_u *SkillUpdate) SetAvgResponseSecs(v float64) *SkillUpdate {
	_u.mutation.ResetAvgResponseSecs()
	_u.mutation.SetAvgResponseSecs(v)
	return _u
}

// SetNillableAvgResponseSecs sets the "avg_response_secs" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableAvgResponseSecs(v *float64) *SkillUpdate {
	if v != nil {
		_u.SetAvgResponseSecs(*v)
	}
	return _u
}

// AddAvgResponseSecs adds value to the "avg_response_secs" field.
func (_u *SkillUpdate) AddAvgResponseSecs(v float64) *SkillUpdate {
	_u.mutation.AddAvgResponseSecs(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillUpdate) SetUpdatedAt(v time.Time) *SkillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdate) Mutation() *SkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(skill.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(skill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DecayRate(); ok {
		_spec.SetField(skill.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayRate(); ok {
		_spec.AddField(skill.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(skill.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(skill.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(skill.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(skill.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(skill.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TypicalAnswerStyle(); ok {
		_spec.SetField(skill.FieldTypicalAnswerStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StyleCounts(); ok {
		_spec.SetField(skill.FieldStyleCounts, field.TypeJSON, value)
	}
	if _u.mutation.StyleCountsCleared() {
		_spec.ClearField(skill.FieldStyleCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvgResponseSecs(); ok {
		_spec.SetField(skill.FieldAvgResponseSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseSecs(); ok {
		_spec.AddField(skill.FieldAvgResponseSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillUpdateOne is the builder for updating a single Skill entity.
type SkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMutation
}

// SetCategory sets the "category" field.
func (_u *SkillUpdateOne) SetCategory(v string) *SkillUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableCategory(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *SkillUpdateOne) SetDisplayName(v string) *SkillUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDisplayName(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillUpdateOne) SetMastery(v float64) *SkillUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableMastery(v *float64) *SkillUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *SkillUpdateOne) AddMastery(v float64) *SkillUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetDecayRate sets the "decay_rate" field.
func (_u *SkillUpdateOne) SetDecayRate(v float64) *SkillUpdateOne {
	_u.mutation.ResetDecayRate()
	_u.mutation.SetDecayRate(v)
	return _u
}

// SetNillableDecayRate sets the "decay_rate" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDecayRate(v *float64) *SkillUpdateOne {
	if v != nil {
		_u.SetDecayRate(*v)
	}
	return _u
}

// AddDecayRate adds value to the "decay_rate" field.
func (_u *SkillUpdateOne) AddDecayRate(v float64) *SkillUpdateOne {
	_u.mutation.AddDecayRate(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SkillUpdateOne) SetLastSeen(v time.Time) *SkillUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableLastSeen(v *time.Time) *SkillUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *SkillUpdateOne) SetTotalAttempts(v int) *SkillUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTotalAttempts(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *SkillUpdateOne) AddTotalAttempts(v int) *SkillUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *SkillUpdateOne) SetCorrectAttempts(v int) *SkillUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableCorrectAttempts(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *SkillUpdateOne) AddCorrectAttempts(v int) *SkillUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetTypicalAnswerStyle sets the "typical_answer_style" field.
func (_u *SkillUpdateOne) SetTypicalAnswerStyle(v string) *SkillUpdateOne {
	_u.mutation.SetTypicalAnswerStyle(v)
	return _u
}

// SetNillableTypicalAnswerStyle sets the "typical_answer_style" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTypicalAnswerStyle(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetTypicalAnswerStyle(*v)
	}
	return _u
}

// SetStyleCounts sets the "style_counts" field.
func (_u *SkillUpdateOne) SetStyleCounts(v map[string]int) *SkillUpdateOne {
	_u.mutation.SetStyleCounts(v)
	return _u
}

// ClearStyleCounts clears the value of the "style_counts" field.
func (_u *SkillUpdateOne) ClearStyleCounts() *SkillUpdateOne {
	_u.mutation.ClearStyleCounts()
	return _u
}

// SetAvgResponseSecs sets the "avg_response_secs" field.
func (_u *SkillUpdateOne) SetAvgResponseSecs(v float64) *SkillUpdateOne {
	_u.mutation.ResetAvgResponseSecs()
	_u.mutation.SetAvgResponseSecs(v)
	return _u
}

// SetNillableAvgResponseSecs sets the "avg_response_secs" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableAvgResponseSecs(v *float64) *SkillUpdateOne {
	if v != nil {
		_u.SetAvgResponseSecs(*v)
	}
	return _u
}

// AddAvgResponseSecs adds value to the "avg_response_secs" field.
func (_u *SkillUpdateOne) AddAvgResponseSecs(v float64) *SkillUpdateOne {
	_u.mutation.AddAvgResponseSecs(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillUpdateOne) SetUpdatedAt(v time.Time) *SkillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdateOne) Mutation() *SkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdateOne) Where(ps ...predicate.Skill) *SkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillUpdateOne) Select(field string, fields ...string) *SkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Skill entity.
func (_u *SkillUpdateOne) Save(ctx context.Context) (*Skill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdateOne) SaveX(ctx context.Context) *Skill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillUpdateOne) sqlSave(ctx context.Context) (_node *Skill, err error) {
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Skill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skill.FieldID)
		for _, f := range fields {
			if !skill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skill.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(skill.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(skill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DecayRate(); ok {
		_spec.SetField(skill.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayRate(); ok {
		_spec.AddField(skill.FieldDecayRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(skill.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(skill.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(skill.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(skill.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(skill.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TypicalAnswerStyle(); ok {
		_spec.SetField(skill.FieldTypicalAnswerStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StyleCounts(); ok {
		_spec.SetField(skill.FieldStyleCounts, field.TypeJSON, value)
	}
	if _u.mutation.StyleCountsCleared() {
		_spec.ClearField(skill.FieldStyleCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvgResponseSecs(); ok {
		_spec.SetField(skill.FieldAvgResponseSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseSecs(); ok {
		_spec.AddField(skill.FieldAvgResponseSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skill.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Skill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
