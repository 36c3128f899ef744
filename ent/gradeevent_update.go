// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusloop/ent/gradeevent"
	"github.com/abhisek/focusloop/ent/predicate"
)

// GradeEventUpdate is the builder for updating GradeEvent entities.
type GradeEventUpdate struct {
	config
	hooks    []Hook
	mutation *GradeEventMutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdate) Where(ps ...predicate.GradeEvent) *GradeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *GradeEventUpdate) SetStudentID(v string) *GradeEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableStudentID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GradeEventUpdate) SetSessionID(v string) *GradeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSessionID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *GradeEventUpdate) ClearSessionID() *GradeEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *GradeEventUpdate) SetSkillID(v string) *GradeEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSkillID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GradeEventUpdate) SetQuestionText(v string) *GradeEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableQuestionText(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *GradeEventUpdate) SetStudentAnswer(v string) *GradeEventUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableStudentAnswer(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectness sets the "correctness" field.
func (_u *GradeEventUpdate) SetCorrectness(v string) *GradeEventUpdate {
	_u.mutation.SetCorrectness(v)
	return _u
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableCorrectness(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetCorrectness(*v)
	}
	return _u
}

// SetReasoningQuality sets the "reasoning_quality" field.
func (_u *GradeEventUpdate) SetReasoningQuality(v int) *GradeEventUpdate {
	_u.mutation.ResetReasoningQuality()
	_u.mutation.SetReasoningQuality(v)
	return _u
}

// SetNillableReasoningQuality sets the "reasoning_quality" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableReasoningQuality(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetReasoningQuality(*v)
	}
	return _u
}

// AddReasoningQuality adds value to the "reasoning_quality" field.
func (_u *GradeEventUpdate) AddReasoningQuality(v int) *GradeEventUpdate {
	_u.mutation.AddReasoningQuality(v)
	return _u
}

// SetAnswerStyle sets the "answer_style" field.
func (_u *GradeEventUpdate) SetAnswerStyle(v string) *GradeEventUpdate {
	_u.mutation.SetAnswerStyle(v)
	return _u
}

// SetNillableAnswerStyle sets the "answer_style" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableAnswerStyle(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetAnswerStyle(*v)
	}
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *GradeEventUpdate) SetConfidenceLevel(v string) *GradeEventUpdate {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableConfidenceLevel(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetMisunderstandingLabel sets the "misunderstanding_label" field.
func (_u *GradeEventUpdate) SetMisunderstandingLabel(v string) *GradeEventUpdate {
	_u.mutation.SetMisunderstandingLabel(v)
	return _u
}

// SetNillableMisunderstandingLabel sets the "misunderstanding_label" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableMisunderstandingLabel(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetMisunderstandingLabel(*v)
	}
	return _u
}

// ClearMisunderstandingLabel clears the value of the "misunderstanding_label" field.
func (_u *GradeEventUpdate) ClearMisunderstandingLabel() *GradeEventUpdate {
	_u.mutation.ClearMisunderstandingLabel()
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *GradeEventUpdate) SetTimeSecs(v float64) *GradeEventUpdate {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableTimeSecs(v *float64) *GradeEventUpdate {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *GradeEventUpdate) AddTimeSecs(v float64) *GradeEventUpdate {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *GradeEventUpdate) SetHintsUsed(v int) *GradeEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableHintsUsed(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *GradeEventUpdate) AddHintsUsed(v int) *GradeEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_u *GradeEventUpdate) SetMasteryDelta(v int) *GradeEventUpdate {
	_u.mutation.ResetMasteryDelta()
	_u.mutation.SetMasteryDelta(v)
	return _u
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableMasteryDelta(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetMasteryDelta(*v)
	}
	return _u
}

// AddMasteryDelta adds value to the "mastery_delta" field.
func (_u *GradeEventUpdate) AddMasteryDelta(v int) *GradeEventUpdate {
	_u.mutation.AddMasteryDelta(v)
	return _u
}

// SetNewMastery sets the "new_mastery" field.
func (_u *GradeEventUpdate) SetNewMastery(v float64) *GradeEventUpdate {
	_u.mutation.ResetNewMastery()
	_u.mutation.SetNewMastery(v)
	return _u
}

// SetNillableNewMastery sets the "new_mastery" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableNewMastery(v *float64) *GradeEventUpdate {
	if v != nil {
		_u.SetNewMastery(*v)
	}
	return _u
}

// AddNewMastery adds value to the "new_mastery" field.
func (_u *GradeEventUpdate) AddNewMastery(v float64) *GradeEventUpdate {
	_u.mutation.AddNewMastery(v)
	return _u
}

// SetEvaluator sets the "evaluator" field.
func (_u *GradeEventUpdate) SetEvaluator(v string) *GradeEventUpdate {
	_u.mutation.SetEvaluator(v)
	return _u
}

// SetNillableEvaluator sets the "evaluator" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableEvaluator(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetEvaluator(*v)
	}
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdate) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := gradeevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := gradeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correctness(); ok {
		if err := gradeevent.CorrectnessValidator(v); err != nil {
			return &ValidationError{Name: "correctness", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.correctness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerStyle(); ok {
		if err := gradeevent.AnswerStyleValidator(v); err != nil {
			return &ValidationError{Name: "answer_style", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.answer_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceLevel(); ok {
		if err := gradeevent.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.confidence_level": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(gradeevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(gradeevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(gradeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(gradeevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(gradeevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correctness(); ok {
		_spec.SetField(gradeevent.FieldCorrectness, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReasoningQuality(); ok {
		_spec.SetField(gradeevent.FieldReasoningQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningQuality(); ok {
		_spec.AddField(gradeevent.FieldReasoningQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerStyle(); ok {
		_spec.SetField(gradeevent.FieldAnswerStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(gradeevent.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisunderstandingLabel(); ok {
		_spec.SetField(gradeevent.FieldMisunderstandingLabel, field.TypeString, value)
	}
	if _u.mutation.MisunderstandingLabelCleared() {
		_spec.ClearField(gradeevent.FieldMisunderstandingLabel, field.TypeString)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(gradeevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(gradeevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(gradeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(gradeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryDelta(); ok {
		_spec.SetField(gradeevent.FieldMasteryDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryDelta(); ok {
		_spec.AddField(gradeevent.FieldMasteryDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewMastery(); ok {
		_spec.SetField(gradeevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewMastery(); ok {
		_spec.AddField(gradeevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evaluator(); ok {
		_spec.SetField(gradeevent.FieldEvaluator, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeEventUpdateOne is the builder for updating a single GradeEvent entity.
type GradeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *GradeEventUpdateOne) SetStudentID(v string) *GradeEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableStudentID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GradeEventUpdateOne) SetSessionID(v string) *GradeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSessionID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *GradeEventUpdateOne) ClearSessionID() *GradeEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *GradeEventUpdateOne) SetSkillID(v string) *GradeEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSkillID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GradeEventUpdateOne) SetQuestionText(v string) *GradeEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableQuestionText(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *GradeEventUpdateOne) SetStudentAnswer(v string) *GradeEventUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableStudentAnswer(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectness sets the "correctness" field.
func (_u *GradeEventUpdateOne) SetCorrectness(v string) *GradeEventUpdateOne {
	_u.mutation.SetCorrectness(v)
	return _u
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableCorrectness(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetCorrectness(*v)
	}
	return _u
}

// SetReasoningQuality sets the "reasoning_quality" field.
func (_u *GradeEventUpdateOne) SetReasoningQuality(v int) *GradeEventUpdateOne {
	_u.mutation.ResetReasoningQuality()
	_u.mutation.SetReasoningQuality(v)
	return _u
}

// SetNillableReasoningQuality sets the "reasoning_quality" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableReasoningQuality(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetReasoningQuality(*v)
	}
	return _u
}

// AddReasoningQuality adds value to the "reasoning_quality" field.
func (_u *GradeEventUpdateOne) AddReasoningQuality(v int) *GradeEventUpdateOne {
	_u.mutation.AddReasoningQuality(v)
	return _u
}

// SetAnswerStyle sets the "answer_style" field.
func (_u *GradeEventUpdateOne) SetAnswerStyle(v string) *GradeEventUpdateOne {
	_u.mutation.SetAnswerStyle(v)
	return _u
}

// SetNillableAnswerStyle sets the "answer_style" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableAnswerStyle(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetAnswerStyle(*v)
	}
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *GradeEventUpdateOne) SetConfidenceLevel(v string) *GradeEventUpdateOne {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableConfidenceLevel(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetMisunderstandingLabel sets the "misunderstanding_label" field.
func (_u *GradeEventUpdateOne) SetMisunderstandingLabel(v string) *GradeEventUpdateOne {
	_u.mutation.SetMisunderstandingLabel(v)
	return _u
}

// SetNillableMisunderstandingLabel sets the "misunderstanding_label" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableMisunderstandingLabel(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetMisunderstandingLabel(*v)
	}
	return _u
}

// ClearMisunderstandingLabel clears the value of the "misunderstanding_label" field.
func (_u *GradeEventUpdateOne) ClearMisunderstandingLabel() *GradeEventUpdateOne {
	_u.mutation.ClearMisunderstandingLabel()
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *GradeEventUpdateOne) SetTimeSecs(v float64) *GradeEventUpdateOne {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableTimeSecs(v *float64) *GradeEventUpdateOne {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *GradeEventUpdateOne) AddTimeSecs(v float64) *GradeEventUpdateOne {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *GradeEventUpdateOne) SetHintsUsed(v int) *GradeEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableHintsUsed(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *GradeEventUpdateOne) AddHintsUsed(v int) *GradeEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_u *GradeEventUpdateOne) SetMasteryDelta(v int) *GradeEventUpdateOne {
	_u.mutation.ResetMasteryDelta()
	_u.mutation.SetMasteryDelta(v)
	return _u
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableMasteryDelta(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetMasteryDelta(*v)
	}
	return _u
}

// AddMasteryDelta adds value to the "mastery_delta" field.
func (_u *GradeEventUpdateOne) AddMasteryDelta(v int) *GradeEventUpdateOne {
	_u.mutation.AddMasteryDelta(v)
	return _u
}

// SetNewMastery sets the "new_mastery" field.
func (_u *GradeEventUpdateOne) SetNewMastery(v float64) *GradeEventUpdateOne {
	_u.mutation.ResetNewMastery()
	_u.mutation.SetNewMastery(v)
	return _u
}

// SetNillableNewMastery sets the "new_mastery" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableNewMastery(v *float64) *GradeEventUpdateOne {
	if v != nil {
		_u.SetNewMastery(*v)
	}
	return _u
}

// AddNewMastery adds value to the "new_mastery" field.
func (_u *GradeEventUpdateOne) AddNewMastery(v float64) *GradeEventUpdateOne {
	_u.mutation.AddNewMastery(v)
	return _u
}

// SetEvaluator sets the "evaluator" field.
func (_u *GradeEventUpdateOne) SetEvaluator(v string) *GradeEventUpdateOne {
	_u.mutation.SetEvaluator(v)
	return _u
}

// SetNillableEvaluator sets the "evaluator" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableEvaluator(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetEvaluator(*v)
	}
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdateOne) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdateOne) Where(ps ...predicate.GradeEvent) *GradeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeEventUpdateOne) Select(field string, fields ...string) *GradeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeEvent entity.
func (_u *GradeEventUpdateOne) Save(ctx context.Context) (*GradeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdateOne) SaveX(ctx context.Context) *GradeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := gradeevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := gradeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correctness(); ok {
		if err := gradeevent.CorrectnessValidator(v); err != nil {
			return &ValidationError{Name: "correctness", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.correctness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerStyle(); ok {
		if err := gradeevent.AnswerStyleValidator(v); err != nil {
			return &ValidationError{Name: "answer_style", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.answer_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceLevel(); ok {
		if err := gradeevent.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.confidence_level": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeEventUpdateOne) sqlSave(ctx context.Context) (_node *GradeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradeevent.FieldID)
		for _, f := range fields {
			if !gradeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradeevent.FieldID {
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
		_spec.SetField(gradeevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(gradeevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(gradeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(gradeevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(gradeevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correctness(); ok {
		_spec.SetField(gradeevent.FieldCorrectness, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReasoningQuality(); ok {
		_spec.SetField(gradeevent.FieldReasoningQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningQuality(); ok {
		_spec.AddField(gradeevent.FieldReasoningQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerStyle(); ok {
		_spec.SetField(gradeevent.FieldAnswerStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(gradeevent.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisunderstandingLabel(); ok {
		_spec.SetField(gradeevent.FieldMisunderstandingLabel, field.TypeString, value)
	}
	if _u.mutation.MisunderstandingLabelCleared() {
		_spec.ClearField(gradeevent.FieldMisunderstandingLabel, field.TypeString)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(gradeevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(gradeevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(gradeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(gradeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryDelta(); ok {
		_spec.SetField(gradeevent.FieldMasteryDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryDelta(); ok {
		_spec.AddField(gradeevent.FieldMasteryDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewMastery(); ok {
		_spec.SetField(gradeevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewMastery(); ok {
		_spec.AddField(gradeevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evaluator(); ok {
		_spec.SetField(gradeevent.FieldEvaluator, field.TypeString, value)
	}
	_node = &GradeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
