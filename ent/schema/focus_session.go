package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FocusSession persists a bounded practice session. The loop graph,
// concept map and review plan are kept in the serialized document; the
// scalar columns exist for lookups.
type FocusSession struct {
	ent.Schema
}

func (FocusSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty(),
		field.String("status").
			NotEmpty().
			Comment("planning, active, completed or cancelled"),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Bytes("document").
			Comment("JSON encoded session"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (FocusSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("status"),
	}
}
