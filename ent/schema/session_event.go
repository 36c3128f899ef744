package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records mission and focus session lifecycle transitions.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("student_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("mission or focus"),
		field.String("action").
			NotEmpty().
			Comment("open, start, loop, complete, cancel"),
		field.String("skill_id").
			Optional(),
		field.String("difficulty").
			Optional(),
		field.Int("loop_number").
			Default(0),
		field.Float("accuracy").
			Default(0),
		field.String("detail").
			Default(""),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id", "kind"),
	}
}
