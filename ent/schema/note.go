package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note is a behavioral observation raised while grading an attempt.
type Note struct {
	ent.Schema
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("student_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("session_id").Optional(),
		field.String("kind").
			NotEmpty().
			Comment("misconception, attention_anomaly or confident_error"),
		field.String("detail").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("skill_id"),
	}
}
