package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a confidence band transition for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("from_band").NotEmpty(),
		field.String("to_band").NotEmpty(),
		field.Float("mastery"),
		field.Float("decay_rate"),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("skill_id"),
	}
}
