// Code generated by ent, DO NOT EDIT.

package gradeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldStudentID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSkillID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldQuestionText, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldStudentAnswer, v))
}

// Correctness applies equality check predicate on the "correctness" field. It's identical to CorrectnessEQ.
func Correctness(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldCorrectness, v))
}

// ReasoningQuality applies equality check predicate on the "reasoning_quality" field. It's identical to ReasoningQualityEQ.
func ReasoningQuality(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldReasoningQuality, v))
}

// AnswerStyle applies equality check predicate on the "answer_style" field. It's identical to AnswerStyleEQ.
func AnswerStyle(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldAnswerStyle, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldConfidenceLevel, v))
}

// MisunderstandingLabel applies equality check predicate on the "misunderstanding_label" field. It's identical to MisunderstandingLabelEQ.
func MisunderstandingLabel(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldMisunderstandingLabel, v))
}

// TimeSecs applies equality check predicate on the "time_secs" field. It's identical to TimeSecsEQ.
func TimeSecs(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimeSecs, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// MasteryDelta applies equality check predicate on the "mastery_delta" field. It's identical to MasteryDeltaEQ.
func MasteryDelta(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldMasteryDelta, v))
}

// NewMastery applies equality check predicate on the "new_mastery" field. It's identical to NewMasteryEQ.
func NewMastery(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldNewMastery, v))
}

// Evaluator applies equality check predicate on the "evaluator" field. It's identical to EvaluatorEQ.
func Evaluator(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldEvaluator, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldQuestionText, v))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// CorrectnessEQ applies the EQ predicate on the "correctness" field.
func CorrectnessEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldCorrectness, v))
}

// CorrectnessNEQ applies the NEQ predicate on the "correctness" field.
func CorrectnessNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldCorrectness, v))
}

// CorrectnessIn applies the In predicate on the "correctness" field.
func CorrectnessIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldCorrectness, vs...))
}

// CorrectnessNotIn applies the NotIn predicate on the "correctness" field.
func CorrectnessNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldCorrectness, vs...))
}

// CorrectnessGT applies the GT predicate on the "correctness" field.
func CorrectnessGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldCorrectness, v))
}

// CorrectnessGTE applies the GTE predicate on the "correctness" field.
func CorrectnessGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldCorrectness, v))
}

// CorrectnessLT applies the LT predicate on the "correctness" field.
func CorrectnessLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldCorrectness, v))
}

// CorrectnessLTE applies the LTE predicate on the "correctness" field.
func CorrectnessLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldCorrectness, v))
}

// CorrectnessContains applies the Contains predicate on the "correctness" field.
func CorrectnessContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldCorrectness, v))
}

// CorrectnessHasPrefix applies the HasPrefix predicate on the "correctness" field.
func CorrectnessHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldCorrectness, v))
}

// CorrectnessHasSuffix applies the HasSuffix predicate on the "correctness" field.
func CorrectnessHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldCorrectness, v))
}

// CorrectnessEqualFold applies the EqualFold predicate on the "correctness" field.
func CorrectnessEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldCorrectness, v))
}

// CorrectnessContainsFold applies the ContainsFold predicate on the "correctness" field.
func CorrectnessContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldCorrectness, v))
}

// ReasoningQualityEQ applies the EQ predicate on the "reasoning_quality" field.
func ReasoningQualityEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldReasoningQuality, v))
}

// ReasoningQualityNEQ applies the NEQ predicate on the "reasoning_quality" field.
func ReasoningQualityNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldReasoningQuality, v))
}

// ReasoningQualityIn applies the In predicate on the "reasoning_quality" field.
func ReasoningQualityIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldReasoningQuality, vs...))
}

// ReasoningQualityNotIn applies the NotIn predicate on the "reasoning_quality" field.
func ReasoningQualityNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldReasoningQuality, vs...))
}

// ReasoningQualityGT applies the GT predicate on the "reasoning_quality" field.
func ReasoningQualityGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldReasoningQuality, v))
}

// ReasoningQualityGTE applies the GTE predicate on the "reasoning_quality" field.
func ReasoningQualityGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldReasoningQuality, v))
}

// ReasoningQualityLT applies the LT predicate on the "reasoning_quality" field.
func ReasoningQualityLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldReasoningQuality, v))
}

// ReasoningQualityLTE applies the LTE predicate on the "reasoning_quality" field.
func ReasoningQualityLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldReasoningQuality, v))
}

// AnswerStyleEQ applies the EQ predicate on the "answer_style" field.
func AnswerStyleEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldAnswerStyle, v))
}

// AnswerStyleNEQ applies the NEQ predicate on the "answer_style" field.
func AnswerStyleNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldAnswerStyle, v))
}

// AnswerStyleIn applies the In predicate on the "answer_style" field.
func AnswerStyleIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldAnswerStyle, vs...))
}

// AnswerStyleNotIn applies the NotIn predicate on the "answer_style" field.
func AnswerStyleNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldAnswerStyle, vs...))
}

// AnswerStyleGT applies the GT predicate on the "answer_style" field.
func AnswerStyleGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldAnswerStyle, v))
}

// AnswerStyleGTE applies the GTE predicate on the "answer_style" field.
func AnswerStyleGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldAnswerStyle, v))
}

// AnswerStyleLT applies the LT predicate on the "answer_style" field.
func AnswerStyleLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldAnswerStyle, v))
}

// AnswerStyleLTE applies the LTE predicate on the "answer_style" field.
func AnswerStyleLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldAnswerStyle, v))
}

// AnswerStyleContains applies the Contains predicate on the "answer_style" field.
func AnswerStyleContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldAnswerStyle, v))
}

// AnswerStyleHasPrefix applies the HasPrefix predicate on the "answer_style" field.
func AnswerStyleHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldAnswerStyle, v))
}

// AnswerStyleHasSuffix applies the HasSuffix predicate on the "answer_style" field.
func AnswerStyleHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldAnswerStyle, v))
}

// AnswerStyleEqualFold applies the EqualFold predicate on the "answer_style" field.
func AnswerStyleEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldAnswerStyle, v))
}

// AnswerStyleContainsFold applies the ContainsFold predicate on the "answer_style" field.
func AnswerStyleContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldAnswerStyle, v))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelContains applies the Contains predicate on the "confidence_level" field.
func ConfidenceLevelContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldConfidenceLevel, v))
}

// ConfidenceLevelHasPrefix applies the HasPrefix predicate on the "confidence_level" field.
func ConfidenceLevelHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldConfidenceLevel, v))
}

// ConfidenceLevelHasSuffix applies the HasSuffix predicate on the "confidence_level" field.
func ConfidenceLevelHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldConfidenceLevel, v))
}

// ConfidenceLevelEqualFold applies the EqualFold predicate on the "confidence_level" field.
func ConfidenceLevelEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldConfidenceLevel, v))
}

// ConfidenceLevelContainsFold applies the ContainsFold predicate on the "confidence_level" field.
func ConfidenceLevelContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldConfidenceLevel, v))
}

// MisunderstandingLabelEQ applies the EQ predicate on the "misunderstanding_label" field.
func MisunderstandingLabelEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelNEQ applies the NEQ predicate on the "misunderstanding_label" field.
func MisunderstandingLabelNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelIn applies the In predicate on the "misunderstanding_label" field.
func MisunderstandingLabelIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldMisunderstandingLabel, vs...))
}

// MisunderstandingLabelNotIn applies the NotIn predicate on the "misunderstanding_label" field.
func MisunderstandingLabelNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldMisunderstandingLabel, vs...))
}

// MisunderstandingLabelGT applies the GT predicate on the "misunderstanding_label" field.
func MisunderstandingLabelGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelGTE applies the GTE predicate on the "misunderstanding_label" field.
func MisunderstandingLabelGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelLT applies the LT predicate on the "misunderstanding_label" field.
func MisunderstandingLabelLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelLTE applies the LTE predicate on the "misunderstanding_label" field.
func MisunderstandingLabelLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelContains applies the Contains predicate on the "misunderstanding_label" field.
func MisunderstandingLabelContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelHasPrefix applies the HasPrefix predicate on the "misunderstanding_label" field.
func MisunderstandingLabelHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelHasSuffix applies the HasSuffix predicate on the "misunderstanding_label" field.
func MisunderstandingLabelHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelIsNil applies the IsNil predicate on the "misunderstanding_label" field.
func MisunderstandingLabelIsNil() predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIsNull(FieldMisunderstandingLabel))
}

// MisunderstandingLabelNotNil applies the NotNil predicate on the "misunderstanding_label" field.
func MisunderstandingLabelNotNil() predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotNull(FieldMisunderstandingLabel))
}

// MisunderstandingLabelEqualFold applies the EqualFold predicate on the "misunderstanding_label" field.
func MisunderstandingLabelEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldMisunderstandingLabel, v))
}

// MisunderstandingLabelContainsFold applies the ContainsFold predicate on the "misunderstanding_label" field.
func MisunderstandingLabelContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldMisunderstandingLabel, v))
}

// TimeSecsEQ applies the EQ predicate on the "time_secs" field.
func TimeSecsEQ(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimeSecs, v))
}

// TimeSecsNEQ applies the NEQ predicate on the "time_secs" field.
func TimeSecsNEQ(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldTimeSecs, v))
}

// TimeSecsIn applies the In predicate on the "time_secs" field.
func TimeSecsIn(vs ...float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldTimeSecs, vs...))
}

// TimeSecsNotIn applies the NotIn predicate on the "time_secs" field.
func TimeSecsNotIn(vs ...float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldTimeSecs, vs...))
}

// TimeSecsGT applies the GT predicate on the "time_secs" field.
func TimeSecsGT(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldTimeSecs, v))
}

// TimeSecsGTE applies the GTE predicate on the "time_secs" field.
func TimeSecsGTE(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldTimeSecs, v))
}

// TimeSecsLT applies the LT predicate on the "time_secs" field.
func TimeSecsLT(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldTimeSecs, v))
}

// TimeSecsLTE applies the LTE predicate on the "time_secs" field.
func TimeSecsLTE(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldTimeSecs, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// MasteryDeltaEQ applies the EQ predicate on the "mastery_delta" field.
func MasteryDeltaEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldMasteryDelta, v))
}

// MasteryDeltaNEQ applies the NEQ predicate on the "mastery_delta" field.
func MasteryDeltaNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldMasteryDelta, v))
}

// MasteryDeltaIn applies the In predicate on the "mastery_delta" field.
func MasteryDeltaIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldMasteryDelta, vs...))
}

// MasteryDeltaNotIn applies the NotIn predicate on the "mastery_delta" field.
func MasteryDeltaNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldMasteryDelta, vs...))
}

// MasteryDeltaGT applies the GT predicate on the "mastery_delta" field.
func MasteryDeltaGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldMasteryDelta, v))
}

// MasteryDeltaGTE applies the GTE predicate on the "mastery_delta" field.
func MasteryDeltaGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldMasteryDelta, v))
}

// MasteryDeltaLT applies the LT predicate on the "mastery_delta" field.
func MasteryDeltaLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldMasteryDelta, v))
}

// MasteryDeltaLTE applies the LTE predicate on the "mastery_delta" field.
func MasteryDeltaLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldMasteryDelta, v))
}

// NewMasteryEQ applies the EQ predicate on the "new_mastery" field.
func NewMasteryEQ(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldNewMastery, v))
}

// NewMasteryNEQ applies the NEQ predicate on the "new_mastery" field.
func NewMasteryNEQ(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldNewMastery, v))
}

// NewMasteryIn applies the In predicate on the "new_mastery" field.
func NewMasteryIn(vs ...float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldNewMastery, vs...))
}

// NewMasteryNotIn applies the NotIn predicate on the "new_mastery" field.
func NewMasteryNotIn(vs ...float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldNewMastery, vs...))
}

// NewMasteryGT applies the GT predicate on the "new_mastery" field.
func NewMasteryGT(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldNewMastery, v))
}

// NewMasteryGTE applies the GTE predicate on the "new_mastery" field.
func NewMasteryGTE(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldNewMastery, v))
}

// NewMasteryLT applies the LT predicate on the "new_mastery" field.
func NewMasteryLT(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldNewMastery, v))
}

// NewMasteryLTE applies the LTE predicate on the "new_mastery" field.
func NewMasteryLTE(v float64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldNewMastery, v))
}

// EvaluatorEQ applies the EQ predicate on the "evaluator" field.
func EvaluatorEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldEvaluator, v))
}

// EvaluatorNEQ applies the NEQ predicate on the "evaluator" field.
func EvaluatorNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldEvaluator, v))
}

// EvaluatorIn applies the In predicate on the "evaluator" field.
func EvaluatorIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldEvaluator, vs...))
}

// EvaluatorNotIn applies the NotIn predicate on the "evaluator" field.
func EvaluatorNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldEvaluator, vs...))
}

// EvaluatorGT applies the GT predicate on the "evaluator" field.
func EvaluatorGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldEvaluator, v))
}

// EvaluatorGTE applies the GTE predicate on the "evaluator" field.
func EvaluatorGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldEvaluator, v))
}

// EvaluatorLT applies the LT predicate on the "evaluator" field.
func EvaluatorLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldEvaluator, v))
}

// EvaluatorLTE applies the LTE predicate on the "evaluator" field.
func EvaluatorLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldEvaluator, v))
}

// EvaluatorContains applies the Contains predicate on the "evaluator" field.
func EvaluatorContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldEvaluator, v))
}

// EvaluatorHasPrefix applies the HasPrefix predicate on the "evaluator" field.
func EvaluatorHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldEvaluator, v))
}

// EvaluatorHasSuffix applies the HasSuffix predicate on the "evaluator" field.
func EvaluatorHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldEvaluator, v))
}

// EvaluatorEqualFold applies the EqualFold predicate on the "evaluator" field.
func EvaluatorEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldEvaluator, v))
}

// EvaluatorContainsFold applies the ContainsFold predicate on the "evaluator" field.
func EvaluatorContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldEvaluator, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.NotPredicates(p))
}
