// Code generated by ent, DO NOT EDIT.

package skill

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skill type in the database.
	Label = "skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldDecayRate holds the string denoting the decay_rate field in the database.
	FieldDecayRate = "decay_rate"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// FieldTypicalAnswerStyle holds the string denoting the typical_answer_style field in the database.
	FieldTypicalAnswerStyle = "typical_answer_style"
	// FieldStyleCounts holds the string denoting the style_counts field in the database.
	FieldStyleCounts = "style_counts"
	// FieldAvgResponseSecs holds the string denoting the avg_response_secs field in the database.
	FieldAvgResponseSecs = "avg_response_secs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the skill in the database.
	Table = "skills"
)

// Columns holds all SQL columns for skill fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldDomain,
	FieldCategory,
	FieldDisplayName,
	FieldMastery,
	FieldDecayRate,
	FieldLastSeen,
	FieldTotalAttempts,
	FieldCorrectAttempts,
	FieldTypicalAnswerStyle,
	FieldStyleCounts,
	FieldAvgResponseSecs,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultDisplayName holds the default value on creation for the "display_name" field.
	DefaultDisplayName string
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery float64
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// DefaultTypicalAnswerStyle holds the default value on creation for the "typical_answer_style" field.
	DefaultTypicalAnswerStyle string
	// DefaultAvgResponseSecs holds the default value on creation for the "avg_response_secs" field.
	DefaultAvgResponseSecs float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Skill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByDecayRate orders the results by the decay_rate field.
func ByDecayRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecayRate, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

// ByTypicalAnswerStyle orders the results by the typical_answer_style field.
func ByTypicalAnswerStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypicalAnswerStyle, opts...).ToFunc()
}

// ByAvgResponseSecs orders the results by the avg_response_secs field.
func ByAvgResponseSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgResponseSecs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
