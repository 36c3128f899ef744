// Code generated by ent, DO NOT EDIT.

package gradeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gradeevent type in the database.
	Label = "grade_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrectness holds the string denoting the correctness field in the database.
	FieldCorrectness = "correctness"
	// FieldReasoningQuality holds the string denoting the reasoning_quality field in the database.
	FieldReasoningQuality = "reasoning_quality"
	// FieldAnswerStyle holds the string denoting the answer_style field in the database.
	FieldAnswerStyle = "answer_style"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldMisunderstandingLabel holds the string denoting the misunderstanding_label field in the database.
	FieldMisunderstandingLabel = "misunderstanding_label"
	// FieldTimeSecs holds the string denoting the time_secs field in the database.
	FieldTimeSecs = "time_secs"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldMasteryDelta holds the string denoting the mastery_delta field in the database.
	FieldMasteryDelta = "mastery_delta"
	// FieldNewMastery holds the string denoting the new_mastery field in the database.
	FieldNewMastery = "new_mastery"
	// FieldEvaluator holds the string denoting the evaluator field in the database.
	FieldEvaluator = "evaluator"
	// Table holds the table name of the gradeevent in the database.
	Table = "grade_events"
)

// Columns holds all SQL columns for gradeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldSessionID,
	FieldSkillID,
	FieldQuestionText,
	FieldStudentAnswer,
	FieldCorrectness,
	FieldReasoningQuality,
	FieldAnswerStyle,
	FieldConfidenceLevel,
	FieldMisunderstandingLabel,
	FieldTimeSecs,
	FieldHintsUsed,
	FieldMasteryDelta,
	FieldNewMastery,
	FieldEvaluator,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultQuestionText holds the default value on creation for the "question_text" field.
	DefaultQuestionText string
	// DefaultStudentAnswer holds the default value on creation for the "student_answer" field.
	DefaultStudentAnswer string
	// CorrectnessValidator is a validator for the "correctness" field. It is called by the builders before save.
	CorrectnessValidator func(string) error
	// AnswerStyleValidator is a validator for the "answer_style" field. It is called by the builders before save.
	AnswerStyleValidator func(string) error
	// ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	ConfidenceLevelValidator func(string) error
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
	// DefaultEvaluator holds the default value on creation for the "evaluator" field.
	DefaultEvaluator string
)

// OrderOption defines the ordering options for the GradeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrectness orders the results by the correctness field.
func ByCorrectness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectness, opts...).ToFunc()
}

// ByReasoningQuality orders the results by the reasoning_quality field.
func ByReasoningQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningQuality, opts...).ToFunc()
}

// ByAnswerStyle orders the results by the answer_style field.
func ByAnswerStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerStyle, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByMisunderstandingLabel orders the results by the misunderstanding_label field.
func ByMisunderstandingLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisunderstandingLabel, opts...).ToFunc()
}

// ByTimeSecs orders the results by the time_secs field.
func ByTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSecs, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// ByMasteryDelta orders the results by the mastery_delta field.
func ByMasteryDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryDelta, opts...).ToFunc()
}

// ByNewMastery orders the results by the new_mastery field.
func ByNewMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewMastery, opts...).ToFunc()
}

// ByEvaluator orders the results by the evaluator field.
func ByEvaluator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluator, opts...).ToFunc()
}
