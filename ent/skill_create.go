// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/skill"
)

// SkillCreate is the builder for creating a Skill entity.
type SkillCreate struct {
	config
	mutation *SkillMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *SkillCreate) SetStudentID(v string) *SkillCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *SkillCreate) SetDomain(v string) *SkillCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *SkillCreate) SetCategory(v string) *SkillCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *SkillCreate) SetNillableCategory(v *string) *SkillCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *SkillCreate) SetDisplayName(v string) *SkillCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *SkillCreate) SetNillableDisplayName(v *string) *SkillCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *SkillCreate) SetMastery(v float64) *SkillCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *SkillCreate) SetNillableMastery(v *float64) *SkillCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetDecayRate sets the "decay_rate" field.
func (_c *SkillCreate) SetDecayRate(v float64) *SkillCreate {
	_c.mutation.SetDecayRate(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *SkillCreate) SetLastSeen(v time.Time) *SkillCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *SkillCreate) SetTotalAttempts(v int) *SkillCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *SkillCreate) SetNillableTotalAttempts(v *int) *SkillCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *SkillCreate) SetCorrectAttempts(v int) *SkillCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *SkillCreate) SetNillableCorrectAttempts(v *int) *SkillCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// SetTypicalAnswerStyle sets the "typical_answer_style" field.
func (_c *SkillCreate) SetTypicalAnswerStyle(v string) *SkillCreate {
	_c.mutation.SetTypicalAnswerStyle(v)
	return _c
}

// SetNillableTypicalAnswerStyle sets the "typical_answer_style" field if the given value is not nil.
func (_c *SkillCreate) SetNillableTypicalAnswerStyle(v *string) *SkillCreate {
	if v != nil {
		_c.SetTypicalAnswerStyle(*v)
	}
	return _c
}

// SetStyleCounts sets the "style_counts" field.
func (_c *SkillCreate) SetStyleCounts(v map[string]int) *SkillCreate {
	_c.mutation.SetStyleCounts(v)
	return _c
}

// SetAvgResponseSecs sets the "avg_response_secs" field.
func (_c *SkillCreate) SetAvgResponseSecs(v float64) *SkillCreate {
	_c.mutation.SetAvgResponseSecs(v)
	return _c
}

// SetNillableAvgResponseSecs sets the "avg_response_secs" field if the given value is not nil.
func (_c *SkillCreate) SetNillableAvgResponseSecs(v *float64) *SkillCreate {
	if v != nil {
		_c.SetAvgResponseSecs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillCreate) SetCreatedAt(v time.Time) *SkillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableCreatedAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillCreate) SetUpdatedAt(v time.Time) *SkillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableUpdatedAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillCreate) SetID(v string) *SkillCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillMutation object of the builder.
func (_c *SkillCreate) Mutation() *SkillMutation {
	return _c.mutation
}

// Save creates the Skill in the database.
func (_c *SkillCreate) Save(ctx context.Context) (*Skill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillCreate) SaveX(ctx context.Context) *Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := skill.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		v := skill.DefaultDisplayName
		_c.mutation.SetDisplayName(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := skill.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := skill.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := skill.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
	if _, ok := _c.mutation.TypicalAnswerStyle(); !ok {
		v := skill.DefaultTypicalAnswerStyle
		_c.mutation.SetTypicalAnswerStyle(v)
	}
	if _, ok := _c.mutation.AvgResponseSecs(); !ok {
		v := skill.DefaultAvgResponseSecs
		_c.mutation.SetAvgResponseSecs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Skill.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := skill.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Skill.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Skill.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := skill.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Skill.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Skill.category"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Skill.display_name"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Skill.mastery"`)}
	}
	if _, ok := _c.mutation.DecayRate(); !ok {
		return &ValidationError{Name: "decay_rate", err: errors.New(`ent: missing required field "Skill.decay_rate"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Skill.last_seen"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "Skill.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "Skill.correct_attempts"`)}
	}
	if _, ok := _c.mutation.TypicalAnswerStyle(); !ok {
		return &ValidationError{Name: "typical_answer_style", err: errors.New(`ent: missing required field "Skill.typical_answer_style"`)}
	}
	if _, ok := _c.mutation.AvgResponseSecs(); !ok {
		return &ValidationError{Name: "avg_response_secs", err: errors.New(`ent: missing required field "Skill.avg_response_secs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Skill.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Skill.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := skill.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Skill.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SkillCreate) sqlSave(ctx context.Context) (*Skill, error) {
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
			return nil, fmt.Errorf("unexpected Skill.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillCreate) createSpec() (*Skill, *sqlgraph.CreateSpec) {
	var (
		_node = &Skill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skill.Table, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(skill.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(skill.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(skill.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.DecayRate(); ok {
		_spec.SetField(skill.FieldDecayRate, field.TypeFloat64, value)
		_node.DecayRate = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(skill.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(skill.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(skill.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	if value, ok := _c.mutation.TypicalAnswerStyle(); ok {
		_spec.SetField(skill.FieldTypicalAnswerStyle, field.TypeString, value)
		_node.TypicalAnswerStyle = value
	}
	if value, ok := _c.mutation.StyleCounts(); ok {
		_spec.SetField(skill.FieldStyleCounts, field.TypeJSON, value)
		_node.StyleCounts = value
	}
	if value, ok := _c.mutation.AvgResponseSecs(); ok {
		_spec.SetField(skill.FieldAvgResponseSecs, field.TypeFloat64, value)
		_node.AvgResponseSecs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SkillCreateBulk is the builder for creating many Skill entities in bulk.
type SkillCreateBulk struct {
	config
	err      error
	builders []*SkillCreate
}

// Save creates the Skill entities in the database.
func (_c *SkillCreateBulk) Save(ctx context.Context) ([]*Skill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Skill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMutation)
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
func (_c *SkillCreateBulk) SaveX(ctx context.Context) []*Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
