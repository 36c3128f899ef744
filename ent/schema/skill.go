package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill holds one mastery record per (student, domain).
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned on first encounter"),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("domain").
			NotEmpty().
			Immutable().
			Comment("Skill domain key, e.g. fractions"),
		field.String("category").
			Default(""),
		field.String("display_name").
			Default(""),
		field.Float("mastery").
			Default(0).
			Comment("0-100 proficiency estimate"),
		field.Float("decay_rate").
			Comment("Forgetting-curve coefficient in [0.05, 0.50]"),
		field.Time("last_seen"),
		field.Int("total_attempts").
			Default(0),
		field.Int("correct_attempts").
			Default(0),
		field.String("typical_answer_style").
			Default(""),
		field.JSON("style_counts", map[string]int{}).
			Optional().
			Comment("Answer style histogram"),
		field.Float("avg_response_secs").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "domain").Unique(),
		index.Fields("student_id"),
	}
}
