package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceSnapshot captures a student's rolling performance state so it
// can be restored without replaying the whole grade history.
type PerformanceSnapshot struct {
	ent.Schema
}

func (PerformanceSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.Int64("sequence").
			Comment("Last grade event sequence folded into the state"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Performance state as JSON"),
	}
}

func (PerformanceSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "timestamp"),
		index.Fields("sequence"),
	}
}
