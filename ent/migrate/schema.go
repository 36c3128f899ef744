// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FocusSessionsColumns holds the columns for the "focus_sessions" table.
	FocusSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "document", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FocusSessionsTable holds the schema information for the "focus_sessions" table.
	FocusSessionsTable = &schema.Table{
		Name:       "focus_sessions",
		Columns:    FocusSessionsColumns,
		PrimaryKey: []*schema.Column{FocusSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "focussession_student_id",
				Unique:  false,
				Columns: []*schema.Column{FocusSessionsColumns[1]},
			},
			{
				Name:    "focussession_status",
				Unique:  false,
				Columns: []*schema.Column{FocusSessionsColumns[3]},
			},
		},
	}
	// GradeEventsColumns holds the columns for the "grade_events" table.
	GradeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString, Default: ""},
		{Name: "student_answer", Type: field.TypeString, Default: ""},
		{Name: "correctness", Type: field.TypeString},
		{Name: "reasoning_quality", Type: field.TypeInt},
		{Name: "answer_style", Type: field.TypeString},
		{Name: "confidence_level", Type: field.TypeString},
		{Name: "misunderstanding_label", Type: field.TypeString, Nullable: true},
		{Name: "time_secs", Type: field.TypeFloat64},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "mastery_delta", Type: field.TypeInt},
		{Name: "new_mastery", Type: field.TypeFloat64},
		{Name: "evaluator", Type: field.TypeString, Default: ""},
	}
	// GradeEventsTable holds the schema information for the "grade_events" table.
	GradeEventsTable = &schema.Table{
		Name:       "grade_events",
		Columns:    GradeEventsColumns,
		PrimaryKey: []*schema.Column{GradeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gradeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[1]},
			},
			{
				Name:    "gradeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[2]},
			},
			{
				Name:    "gradeevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[3]},
			},
			{
				Name:    "gradeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[4]},
			},
			{
				Name:    "gradeevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{GradeEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "from_band", Type: field.TypeString},
		{Name: "to_band", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "decay_rate", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "note_student_id",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[1]},
			},
			{
				Name:    "note_skill_id",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[2]},
			},
		},
	}
	// PerformanceSnapshotsColumns holds the columns for the "performance_snapshots" table.
	PerformanceSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// PerformanceSnapshotsTable holds the schema information for the "performance_snapshots" table.
	PerformanceSnapshotsTable = &schema.Table{
		Name:       "performance_snapshots",
		Columns:    PerformanceSnapshotsColumns,
		PrimaryKey: []*schema.Column{PerformanceSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performancesnapshot_student_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PerformanceSnapshotsColumns[1], PerformanceSnapshotsColumns[3]},
			},
			{
				Name:    "performancesnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{PerformanceSnapshotsColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "loop_number", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "detail", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_student_id_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[5]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "decay_rate", Type: field.TypeFloat64},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "typical_answer_style", Type: field.TypeString, Default: ""},
		{Name: "style_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "avg_response_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_student_id_domain",
				Unique:  true,
				Columns: []*schema.Column{SkillsColumns[1], SkillsColumns[2]},
			},
			{
				Name:    "skill_student_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FocusSessionsTable,
		GradeEventsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		NotesTable,
		PerformanceSnapshotsTable,
		SessionEventsTable,
		SkillsTable,
	}
)

func init() {
}
