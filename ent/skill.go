// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusloop/ent/skill"
)

// Skill is the model entity for the Skill schema.
type Skill struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned on first encounter
	ID string `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Skill domain key, e.g. fractions
	Domain string `json:"domain,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// 0-100 proficiency estimate
	Mastery float64 `json:"mastery,omitempty"`
	// Forgetting-curve coefficient in [0.05, 0.50]
	DecayRate float64 `json:"decay_rate,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CorrectAttempts holds the value of the "correct_attempts" field.
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// TypicalAnswerStyle holds the value of the "typical_answer_style" field.
	TypicalAnswerStyle string `json:"typical_answer_style,omitempty"`
	// Answer style histogram
	StyleCounts map[string]int `json:"style_counts,omitempty"`
	// AvgResponseSecs holds the value of the "avg_response_secs" field.
	AvgResponseSecs float64 `json:"avg_response_secs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Skill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skill.FieldStyleCounts:
			values[i] = new([]byte)
		case skill.FieldMastery, skill.FieldDecayRate, skill.FieldAvgResponseSecs:
			values[i] = new(sql.NullFloat64)
		case skill.FieldTotalAttempts, skill.FieldCorrectAttempts:
			values[i] = new(sql.NullInt64)
		case skill.FieldID, skill.FieldStudentID, skill.FieldDomain, skill.FieldCategory, skill.FieldDisplayName, skill.FieldTypicalAnswerStyle:
			values[i] = new(sql.NullString)
		case skill.FieldLastSeen, skill.FieldCreatedAt, skill.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Skill fields.
func (_m *Skill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skill.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case skill.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case skill.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case skill.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case skill.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case skill.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		case skill.FieldDecayRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field decay_rate", values[i])
			} else if value.Valid {
				_m.DecayRate = value.Float64
			}
		case skill.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case skill.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case skill.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case skill.FieldTypicalAnswerStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field typical_answer_style", values[i])
			} else if value.Valid {
				_m.TypicalAnswerStyle = value.String
			}
		case skill.FieldStyleCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field style_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StyleCounts); err != nil {
					return fmt.Errorf("unmarshal field style_counts: %w", err)
				}
			}
		case skill.FieldAvgResponseSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_response_secs", values[i])
			} else if value.Valid {
				_m.AvgResponseSecs = value.Float64
			}
		case skill.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case skill.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Skill.
// This includes values selected through modifiers, order, etc.
func (_m *Skill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Skill.
// Note that you need to call Skill.Unwrap() before calling this method if this Skill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Skill) Update() *SkillUpdateOne {
	return NewSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Skill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Skill) Unwrap() *Skill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Skill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Skill) String() string {
	var builder strings.Builder
	builder.WriteString("Skill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("decay_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecayRate))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("typical_answer_style=")
	builder.WriteString(_m.TypicalAnswerStyle)
	builder.WriteString(", ")
	builder.WriteString("style_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.StyleCounts))
	builder.WriteString(", ")
	builder.WriteString("avg_response_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgResponseSecs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Skills is a parsable slice of Skill.
type Skills []*Skill
