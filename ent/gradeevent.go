// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusloop/ent/gradeevent"
)

// GradeEvent is the model entity for the GradeEvent schema.
type GradeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Mission or focus session id; empty for direct grades
	SessionID string `json:"session_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// StudentAnswer holds the value of the "student_answer" field.
	StudentAnswer string `json:"student_answer,omitempty"`
	// correct, incorrect or partial
	Correctness string `json:"correctness,omitempty"`
	// ReasoningQuality holds the value of the "reasoning_quality" field.
	ReasoningQuality int `json:"reasoning_quality,omitempty"`
	// AnswerStyle holds the value of the "answer_style" field.
	AnswerStyle string `json:"answer_style,omitempty"`
	// ConfidenceLevel holds the value of the "confidence_level" field.
	ConfidenceLevel string `json:"confidence_level,omitempty"`
	// MisunderstandingLabel holds the value of the "misunderstanding_label" field.
	MisunderstandingLabel string `json:"misunderstanding_label,omitempty"`
	// TimeSecs holds the value of the "time_secs" field.
	TimeSecs float64 `json:"time_secs,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// MasteryDelta holds the value of the "mastery_delta" field.
	MasteryDelta int `json:"mastery_delta,omitempty"`
	// NewMastery holds the value of the "new_mastery" field.
	NewMastery float64 `json:"new_mastery,omitempty"`
	// llm or heuristic
	Evaluator    string `json:"evaluator,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradeevent.FieldTimeSecs, gradeevent.FieldNewMastery:
			values[i] = new(sql.NullFloat64)
		case gradeevent.FieldID, gradeevent.FieldSequence, gradeevent.FieldReasoningQuality, gradeevent.FieldHintsUsed, gradeevent.FieldMasteryDelta:
			values[i] = new(sql.NullInt64)
		case gradeevent.FieldStudentID, gradeevent.FieldSessionID, gradeevent.FieldSkillID, gradeevent.FieldQuestionText, gradeevent.FieldStudentAnswer, gradeevent.FieldCorrectness, gradeevent.FieldAnswerStyle, gradeevent.FieldConfidenceLevel, gradeevent.FieldMisunderstandingLabel, gradeevent.FieldEvaluator:
			values[i] = new(sql.NullString)
		case gradeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeEvent fields.
func (_m *GradeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gradeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case gradeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case gradeevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case gradeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case gradeevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case gradeevent.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case gradeevent.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case gradeevent.FieldCorrectness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correctness", values[i])
			} else if value.Valid {
				_m.Correctness = value.String
			}
		case gradeevent.FieldReasoningQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_quality", values[i])
			} else if value.Valid {
				_m.ReasoningQuality = int(value.Int64)
			}
		case gradeevent.FieldAnswerStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_style", values[i])
			} else if value.Valid {
				_m.AnswerStyle = value.String
			}
		case gradeevent.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = value.String
			}
		case gradeevent.FieldMisunderstandingLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misunderstanding_label", values[i])
			} else if value.Valid {
				_m.MisunderstandingLabel = value.String
			}
		case gradeevent.FieldTimeSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_secs", values[i])
			} else if value.Valid {
				_m.TimeSecs = value.Float64
			}
		case gradeevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case gradeevent.FieldMasteryDelta:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_delta", values[i])
			} else if value.Valid {
				_m.MasteryDelta = int(value.Int64)
			}
		case gradeevent.FieldNewMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_mastery", values[i])
			} else if value.Valid {
				_m.NewMastery = value.Float64
			}
		case gradeevent.FieldEvaluator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluator", values[i])
			} else if value.Valid {
				_m.Evaluator = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GradeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradeEvent.
// Note that you need to call GradeEvent.Unwrap() before calling this method if this GradeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeEvent) Update() *GradeEventUpdateOne {
	return NewGradeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeEvent) Unwrap() *GradeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GradeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("correctness=")
	builder.WriteString(_m.Correctness)
	builder.WriteString(", ")
	builder.WriteString("reasoning_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasoningQuality))
	builder.WriteString(", ")
	builder.WriteString("answer_style=")
	builder.WriteString(_m.AnswerStyle)
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(_m.ConfidenceLevel)
	builder.WriteString(", ")
	builder.WriteString("misunderstanding_label=")
	builder.WriteString(_m.MisunderstandingLabel)
	builder.WriteString(", ")
	builder.WriteString("time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSecs))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("mastery_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryDelta))
	builder.WriteString(", ")
	builder.WriteString("new_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewMastery))
	builder.WriteString(", ")
	builder.WriteString("evaluator=")
	builder.WriteString(_m.Evaluator)
	builder.WriteByte(')')
	return builder.String()
}

// GradeEvents is a parsable slice of GradeEvent.
type GradeEvents []*GradeEvent
