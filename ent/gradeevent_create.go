// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/gradeevent"
)

// GradeEventCreate is the builder for creating a GradeEvent entity.
type GradeEventCreate struct {
	config
	mutation *GradeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GradeEventCreate) SetSequence(v int64) *GradeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GradeEventCreate) SetTimestamp(v time.Time) *GradeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableTimestamp(v *time.Time) *GradeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *GradeEventCreate) SetStudentID(v string) *GradeEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GradeEventCreate) SetSessionID(v string) *GradeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableSessionID(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *GradeEventCreate) SetSkillID(v string) *GradeEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *GradeEventCreate) SetQuestionText(v string) *GradeEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableQuestionText(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetQuestionText(*v)
	}
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *GradeEventCreate) SetStudentAnswer(v string) *GradeEventCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableStudentAnswer(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetStudentAnswer(*v)
	}
	return _c
}

// SetCorrectness sets the "correctness" field.
func (_c *GradeEventCreate) SetCorrectness(v string) *GradeEventCreate {
	_c.mutation.SetCorrectness(v)
	return _c
}

// SetReasoningQuality sets the "reasoning_quality" field.
func (_c *GradeEventCreate) SetReasoningQuality(v int) *GradeEventCreate {
	_c.mutation.SetReasoningQuality(v)
	return _c
}

// SetAnswerStyle sets the "answer_style" field.
func (_c *GradeEventCreate) SetAnswerStyle(v string) *GradeEventCreate {
	_c.mutation.SetAnswerStyle(v)
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *GradeEventCreate) SetConfidenceLevel(v string) *GradeEventCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetMisunderstandingLabel sets the "misunderstanding_label" field.
func (_c *GradeEventCreate) SetMisunderstandingLabel(v string) *GradeEventCreate {
	_c.mutation.SetMisunderstandingLabel(v)
	return _c
}

// SetNillableMisunderstandingLabel sets the "misunderstanding_label" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableMisunderstandingLabel(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetMisunderstandingLabel(*v)
	}
	return _c
}

// SetTimeSecs sets the "time_secs" field.
func (_c *GradeEventCreate) SetTimeSecs(v float64) *GradeEventCreate {
	_c.mutation.SetTimeSecs(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *GradeEventCreate) SetHintsUsed(v int) *GradeEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableHintsUsed(v *int) *GradeEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_c *GradeEventCreate) SetMasteryDelta(v int) *GradeEventCreate {
	_c.mutation.SetMasteryDelta(v)
	return _c
}

// SetNewMastery sets the "new_mastery" field.
func (_c *GradeEventCreate) SetNewMastery(v float64) *GradeEventCreate {
	_c.mutation.SetNewMastery(v)
	return _c
}

// SetEvaluator sets the "evaluator" field.
func (_c *GradeEventCreate) SetEvaluator(v string) *GradeEventCreate {
	_c.mutation.SetEvaluator(v)
	return _c
}

// SetNillableEvaluator sets the "evaluator" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableEvaluator(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetEvaluator(*v)
	}
	return _c
}

// Mutation returns the GradeEventMutation object of the builder.
func (_c *GradeEventCreate) Mutation() *GradeEventMutation {
	return _c.mutation
}

// Save creates the GradeEvent in the database.
func (_c *GradeEventCreate) Save(ctx context.Context) (*GradeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeEventCreate) SaveX(ctx context.Context) *GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gradeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		v := gradeevent.DefaultQuestionText
		_c.mutation.SetQuestionText(v)
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		v := gradeevent.DefaultStudentAnswer
		_c.mutation.SetStudentAnswer(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := gradeevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.Evaluator(); !ok {
		v := gradeevent.DefaultEvaluator
		_c.mutation.SetEvaluator(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GradeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GradeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "GradeEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := gradeevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "GradeEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := gradeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "GradeEvent.question_text"`)}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "GradeEvent.student_answer"`)}
	}
	if _, ok := _c.mutation.Correctness(); !ok {
		return &ValidationError{Name: "correctness", err: errors.New(`ent: missing required field "GradeEvent.correctness"`)}
	}
	if v, ok := _c.mutation.Correctness(); ok {
		if err := gradeevent.CorrectnessValidator(v); err != nil {
			return &ValidationError{Name: "correctness", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.correctness": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReasoningQuality(); !ok {
		return &ValidationError{Name: "reasoning_quality", err: errors.New(`ent: missing required field "GradeEvent.reasoning_quality"`)}
	}
	if _, ok := _c.mutation.AnswerStyle(); !ok {
		return &ValidationError{Name: "answer_style", err: errors.New(`ent: missing required field "GradeEvent.answer_style"`)}
	}
	if v, ok := _c.mutation.AnswerStyle(); ok {
		if err := gradeevent.AnswerStyleValidator(v); err != nil {
			return &ValidationError{Name: "answer_style", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.answer_style": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "GradeEvent.confidence_level"`)}
	}
	if v, ok := _c.mutation.ConfidenceLevel(); ok {
		if err := gradeevent.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.confidence_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeSecs(); !ok {
		return &ValidationError{Name: "time_secs", err: errors.New(`ent: missing required field "GradeEvent.time_secs"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "GradeEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.MasteryDelta(); !ok {
		return &ValidationError{Name: "mastery_delta", err: errors.New(`ent: missing required field "GradeEvent.mastery_delta"`)}
	}
	if _, ok := _c.mutation.NewMastery(); !ok {
		return &ValidationError{Name: "new_mastery", err: errors.New(`ent: missing required field "GradeEvent.new_mastery"`)}
	}
	if _, ok := _c.mutation.Evaluator(); !ok {
		return &ValidationError{Name: "evaluator", err: errors.New(`ent: missing required field "GradeEvent.evaluator"`)}
	}
	return nil
}

func (_c *GradeEventCreate) sqlSave(ctx context.Context) (*GradeEvent, error) {
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

func (_c *GradeEventCreate) createSpec() (*GradeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradeevent.Table, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gradeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gradeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(gradeevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(gradeevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(gradeevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(gradeevent.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.Correctness(); ok {
		_spec.SetField(gradeevent.FieldCorrectness, field.TypeString, value)
		_node.Correctness = value
	}
	if value, ok := _c.mutation.ReasoningQuality(); ok {
		_spec.SetField(gradeevent.FieldReasoningQuality, field.TypeInt, value)
		_node.ReasoningQuality = value
	}
	if value, ok := _c.mutation.AnswerStyle(); ok {
		_spec.SetField(gradeevent.FieldAnswerStyle, field.TypeString, value)
		_node.AnswerStyle = value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(gradeevent.FieldConfidenceLevel, field.TypeString, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := _c.mutation.MisunderstandingLabel(); ok {
		_spec.SetField(gradeevent.FieldMisunderstandingLabel, field.TypeString, value)
		_node.MisunderstandingLabel = value
	}
	if value, ok := _c.mutation.TimeSecs(); ok {
		_spec.SetField(gradeevent.FieldTimeSecs, field.TypeFloat64, value)
		_node.TimeSecs = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(gradeevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.MasteryDelta(); ok {
		_spec.SetField(gradeevent.FieldMasteryDelta, field.TypeInt, value)
		_node.MasteryDelta = value
	}
	if value, ok := _c.mutation.NewMastery(); ok {
		_spec.SetField(gradeevent.FieldNewMastery, field.TypeFloat64, value)
		_node.NewMastery = value
	}
	if value, ok := _c.mutation.Evaluator(); ok {
		_spec.SetField(gradeevent.FieldEvaluator, field.TypeString, value)
		_node.Evaluator = value
	}
	return _node, _spec
}

// GradeEventCreateBulk is the builder for creating many GradeEvent entities in bulk.
type GradeEventCreateBulk struct {
	config
	err      error
	builders []*GradeEventCreate
}

// Save creates the GradeEvent entities in the database.
func (_c *GradeEventCreateBulk) Save(ctx context.Context) ([]*GradeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeEventMutation)
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
func (_c *GradeEventCreateBulk) SaveX(ctx context.Context) []*GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
