// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/performancesnapshot"
)

// PerformanceSnapshotCreate is the builder for creating a PerformanceSnapshot entity.
type PerformanceSnapshotCreate struct {
	config
	mutation *PerformanceSnapshotMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *PerformanceSnapshotCreate) SetStudentID(v string) *PerformanceSnapshotCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *PerformanceSnapshotCreate) SetSequence(v int64) *PerformanceSnapshotCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PerformanceSnapshotCreate) SetTimestamp(v time.Time) *PerformanceSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PerformanceSnapshotCreate) SetNillableTimestamp(v *time.Time) *PerformanceSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *PerformanceSnapshotCreate) SetData(v map[string]interface{}) *PerformanceSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the PerformanceSnapshotMutation object of the builder.
func (_c *PerformanceSnapshotCreate) Mutation() *PerformanceSnapshotMutation {
	return _c.mutation
}

// Save creates the PerformanceSnapshot in the database.
func (_c *PerformanceSnapshotCreate) Save(ctx context.Context) (*PerformanceSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceSnapshotCreate) SaveX(ctx context.Context) *PerformanceSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := performancesnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceSnapshotCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "PerformanceSnapshot.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := performancesnapshot.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PerformanceSnapshot.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PerformanceSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "PerformanceSnapshot.data"`)}
	}
	return nil
}

func (_c *PerformanceSnapshotCreate) sqlSave(ctx context.Context) (*PerformanceSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PerformanceSnapshotCreate) createSpec() (*PerformanceSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performancesnapshot.Table, sqlgraph.NewFieldSpec(performancesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(performancesnapshot.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(performancesnapshot.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(performancesnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(performancesnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// PerformanceSnapshotCreateBulk is the builder for creating many PerformanceSnapshot entities in bulk.
type PerformanceSnapshotCreateBulk struct {
	config
	err      error
	builders []*PerformanceSnapshotCreate
}

// Save creates the PerformanceSnapshot entities in the database.
func (_c *PerformanceSnapshotCreateBulk) Save(ctx context.Context) ([]*PerformanceSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PerformanceSnapshotCreateBulk) SaveX(ctx context.Context) []*PerformanceSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
