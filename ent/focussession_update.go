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
	"github.com/abhisek/focusloop/ent/focussession"
	"github.com/abhisek/focusloop/ent/predicate"
)

// FocusSessionUpdate is the builder for updating FocusSession entities.
type FocusSessionUpdate struct {
	config
	hooks    []Hook
	mutation *FocusSessionMutation
}

// Where appends a list predicates to the FocusSessionUpdate builder.
func (_u *FocusSessionUpdate) Where(ps ...predicate.FocusSession) *FocusSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *FocusSessionUpdate) SetTopic(v string) *FocusSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *FocusSessionUpdate) SetNillableTopic(v *string) *FocusSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FocusSessionUpdate) SetStatus(v string) *FocusSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FocusSessionUpdate) SetNillableStatus(v *string) *FocusSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FocusSessionUpdate) SetStartedAt(v time.Time) *FocusSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FocusSessionUpdate) SetNillableStartedAt(v *time.Time) *FocusSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *FocusSessionUpdate) SetEndedAt(v time.Time) *FocusSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *FocusSessionUpdate) SetNillableEndedAt(v *time.Time) *FocusSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *FocusSessionUpdate) ClearEndedAt() *FocusSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDocument sets the "document" field.
func (_u *FocusSessionUpdate) SetDocument(v []byte) *FocusSessionUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FocusSessionUpdate) SetUpdatedAt(v time.Time) *FocusSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FocusSessionMutation object of the builder.
func (_u *FocusSessionUpdate) Mutation() *FocusSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FocusSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FocusSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FocusSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := focussession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusSessionUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := focussession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "FocusSession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := focussession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FocusSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focussession.Table, focussession.Columns, sqlgraph.NewFieldSpec(focussession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(focussession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(focussession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(focussession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(focussession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(focussession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(focussession.FieldDocument, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(focussession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focussession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FocusSessionUpdateOne is the builder for updating a single FocusSession entity.
type FocusSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FocusSessionMutation
}

// SetTopic sets the "topic" field.
func (_u *FocusSessionUpdateOne) SetTopic(v string) *FocusSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *FocusSessionUpdateOne) SetNillableTopic(v *string) *FocusSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FocusSessionUpdateOne) SetStatus(v string) *FocusSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FocusSessionUpdateOne) SetNillableStatus(v *string) *FocusSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FocusSessionUpdateOne) SetStartedAt(v time.Time) *FocusSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FocusSessionUpdateOne) SetNillableStartedAt(v *time.Time) *FocusSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *FocusSessionUpdateOne) SetEndedAt(v time.Time) *FocusSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *FocusSessionUpdateOne) SetNillableEndedAt(v *time.Time) *FocusSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *FocusSessionUpdateOne) ClearEndedAt() *FocusSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDocument sets the "document" field.
func (_u *FocusSessionUpdateOne) SetDocument(v []byte) *FocusSessionUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FocusSessionUpdateOne) SetUpdatedAt(v time.Time) *FocusSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FocusSessionMutation object of the builder.
func (_u *FocusSessionUpdateOne) Mutation() *FocusSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the FocusSessionUpdate builder.
func (_u *FocusSessionUpdateOne) Where(ps ...predicate.FocusSession) *FocusSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FocusSessionUpdateOne) Select(field string, fields ...string) *FocusSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FocusSession entity.
func (_u *FocusSessionUpdateOne) Save(ctx context.Context) (*FocusSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusSessionUpdateOne) SaveX(ctx context.Context) *FocusSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FocusSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FocusSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := focussession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := focussession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "FocusSession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := focussession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FocusSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusSessionUpdateOne) sqlSave(ctx context.Context) (_node *FocusSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focussession.Table, focussession.Columns, sqlgraph.NewFieldSpec(focussession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FocusSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, focussession.FieldID)
		for _, f := range fields {
			if !focussession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != focussession.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(focussession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(focussession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(focussession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(focussession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(focussession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(focussession.FieldDocument, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(focussession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FocusSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focussession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
