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
	"github.com/abhisek/focusloop/ent/performancesnapshot"
	"github.com/abhisek/focusloop/ent/predicate"
)

// PerformanceSnapshotUpdate is the builder for updating PerformanceSnapshot entities.
type PerformanceSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceSnapshotMutation
}

// Where appends a list predicates to the PerformanceSnapshotUpdate builder.
func (_u *PerformanceSnapshotUpdate) Where(ps ...predicate.PerformanceSnapshot) *PerformanceSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *PerformanceSnapshotUpdate) SetStudentID(v string) *PerformanceSnapshotUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdate) SetNillableStudentID(v *string) *PerformanceSnapshotUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PerformanceSnapshotUpdate) SetSequence(v int64) *PerformanceSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdate) SetNillableSequence(v *int64) *PerformanceSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PerformanceSnapshotUpdate) AddSequence(v int64) *PerformanceSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PerformanceSnapshotUpdate) SetTimestamp(v time.Time) *PerformanceSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdate) SetNillableTimestamp(v *time.Time) *PerformanceSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PerformanceSnapshotUpdate) SetData(v map[string]interface{}) *PerformanceSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PerformanceSnapshotMutation object of the builder.
func (_u *PerformanceSnapshotUpdate) Mutation() *PerformanceSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceSnapshotUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := performancesnapshot.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancesnapshot.Table, performancesnapshot.Columns, sqlgraph.NewFieldSpec(performancesnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(performancesnapshot.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(performancesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(performancesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(performancesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(performancesnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceSnapshotUpdateOne is the builder for updating a single PerformanceSnapshot entity.
type PerformanceSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceSnapshotMutation
}

// SetStudentID sets the "student_id" field.
func (_u *PerformanceSnapshotUpdateOne) SetStudentID(v string) *PerformanceSnapshotUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdateOne) SetNillableStudentID(v *string) *PerformanceSnapshotUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PerformanceSnapshotUpdateOne) SetSequence(v int64) *PerformanceSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdateOne) SetNillableSequence(v *int64) *PerformanceSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PerformanceSnapshotUpdateOne) AddSequence(v int64) *PerformanceSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PerformanceSnapshotUpdateOne) SetTimestamp(v time.Time) *PerformanceSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *PerformanceSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PerformanceSnapshotUpdateOne) SetData(v map[string]interface{}) *PerformanceSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PerformanceSnapshotMutation object of the builder.
func (_u *PerformanceSnapshotUpdateOne) Mutation() *PerformanceSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceSnapshotUpdate builder.
func (_u *PerformanceSnapshotUpdateOne) Where(ps ...predicate.PerformanceSnapshot) *PerformanceSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceSnapshotUpdateOne) Select(field string, fields ...string) *PerformanceSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceSnapshot entity.
func (_u *PerformanceSnapshotUpdateOne) Save(ctx context.Context) (*PerformanceSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdateOne) SaveX(ctx context.Context) *PerformanceSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := performancesnapshot.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancesnapshot.Table, performancesnapshot.Columns, sqlgraph.NewFieldSpec(performancesnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancesnapshot.FieldID)
		for _, f := range fields {
			if !performancesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancesnapshot.FieldID {
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
		_spec.SetField(performancesnapshot.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(performancesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(performancesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(performancesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(performancesnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &PerformanceSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
