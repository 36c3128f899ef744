// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/focussession"
)

// FocusSessionCreate is the builder for creating a FocusSession entity.
type FocusSessionCreate struct {
	config
	mutation *FocusSessionMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *FocusSessionCreate) SetStudentID(v string) *FocusSessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *FocusSessionCreate) SetTopic(v string) *FocusSessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FocusSessionCreate) SetStatus(v string) *FocusSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *FocusSessionCreate) SetStartedAt(v time.Time) *FocusSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *FocusSessionCreate) SetEndedAt(v time.Time) *FocusSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *FocusSessionCreate) SetNillableEndedAt(v *time.Time) *FocusSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" field.
func (_c *FocusSessionCreate) SetDocument(v []byte) *FocusSessionCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FocusSessionCreate) SetUpdatedAt(v time.Time) *FocusSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FocusSessionCreate) SetNillableUpdatedAt(v *time.Time) *FocusSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FocusSessionCreate) SetID(v string) *FocusSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FocusSessionMutation object of the builder.
func (_c *FocusSessionCreate) Mutation() *FocusSessionMutation {
	return _c.mutation
}

// Save creates the FocusSession in the database.
func (_c *FocusSessionCreate) Save(ctx context.Context) (*FocusSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FocusSessionCreate) SaveX(ctx context.Context) *FocusSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FocusSessionCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := focussession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FocusSessionCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "FocusSession.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := focussession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "FocusSession.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "FocusSession.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := focussession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "FocusSession.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FocusSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := focussession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FocusSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "FocusSession.started_at"`)}
	}
	if _, ok := _c.mutation.Document(); !ok {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required field "FocusSession.document"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FocusSession.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := focussession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "FocusSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *FocusSessionCreate) sqlSave(ctx context.Context) (*FocusSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FocusSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FocusSessionCreate) createSpec() (*FocusSession, *sqlgraph.CreateSpec) {
	var (
		_node = &FocusSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(focussession.Table, sqlgraph.NewFieldSpec(focussession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(focussession.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(focussession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(focussession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(focussession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(focussession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(focussession.FieldDocument, field.TypeBytes, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(focussession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FocusSessionCreateBulk is the builder for creating many FocusSession entities in bulk.
type FocusSessionCreateBulk struct {
	config
	err      error
	builders []*FocusSessionCreate
}

// Save creates the FocusSession entities in the database.
func (_c *FocusSessionCreateBulk) Save(ctx context.Context) ([]*FocusSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FocusSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FocusSessionMutation)
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
func (_c *FocusSessionCreateBulk) SaveX(ctx context.Context) []*FocusSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
