package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradeEvent records one evaluated attempt and its effect on mastery.
type GradeEvent struct {
	ent.Schema
}

func (GradeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GradeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("session_id").
			Optional().
			Comment("Mission or focus session id; empty for direct grades"),
		field.String("skill_id").
			NotEmpty(),
		field.String("question_text").
			Default(""),
		field.String("student_answer").
			Default(""),
		field.String("correctness").
			NotEmpty().
			Comment("correct, incorrect or partial"),
		field.Int("reasoning_quality"),
		field.String("answer_style").
			NotEmpty(),
		field.String("confidence_level").
			NotEmpty(),
		field.String("misunderstanding_label").
			Optional(),
		field.Float("time_secs"),
		field.Int("hints_used").
			Default(0),
		field.Int("mastery_delta"),
		field.Float("new_mastery"),
		field.String("evaluator").
			Default("").
			Comment("llm or heuristic"),
	}
}

func (GradeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("session_id"),
		index.Fields("skill_id"),
	}
}
