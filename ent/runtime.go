// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/focusloop/ent/focussession"
	"github.com/abhisek/focusloop/ent/gradeevent"
	"github.com/abhisek/focusloop/ent/llmrequestevent"
	"github.com/abhisek/focusloop/ent/masteryevent"
	"github.com/abhisek/focusloop/ent/note"
	"github.com/abhisek/focusloop/ent/performancesnapshot"
	"github.com/abhisek/focusloop/ent/schema"
	"github.com/abhisek/focusloop/ent/sessionevent"
	"github.com/abhisek/focusloop/ent/skill"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	focussessionFields := schema.FocusSession{}.Fields()
	_ = focussessionFields
	// focussessionDescStudentID is the schema descriptor for student_id field.
	focussessionDescStudentID := focussessionFields[1].Descriptor()
	// focussession.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	focussession.StudentIDValidator = focussessionDescStudentID.Validators[0].(func(string) error)
	// focussessionDescTopic is the schema descriptor for topic field.
	focussessionDescTopic := focussessionFields[2].Descriptor()
	// focussession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	focussession.TopicValidator = focussessionDescTopic.Validators[0].(func(string) error)
	// focussessionDescStatus is the schema descriptor for status field.
	focussessionDescStatus := focussessionFields[3].Descriptor()
	// focussession.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	focussession.StatusValidator = focussessionDescStatus.Validators[0].(func(string) error)
	// focussessionDescUpdatedAt is the schema descriptor for updated_at field.
	focussessionDescUpdatedAt := focussessionFields[7].Descriptor()
	// focussession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	focussession.DefaultUpdatedAt = focussessionDescUpdatedAt.Default.(func() time.Time)
	// focussession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	focussession.UpdateDefaultUpdatedAt = focussessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// focussessionDescID is the schema descriptor for id field.
	focussessionDescID := focussessionFields[0].Descriptor()
	// focussession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	focussession.IDValidator = focussessionDescID.Validators[0].(func(string) error)
	gradeeventMixin := schema.GradeEvent{}.Mixin()
	gradeeventMixinFields0 := gradeeventMixin[0].Fields()
	_ = gradeeventMixinFields0
	gradeeventFields := schema.GradeEvent{}.Fields()
	_ = gradeeventFields
	// gradeeventDescTimestamp is the schema descriptor for timestamp field.
	gradeeventDescTimestamp := gradeeventMixinFields0[1].Descriptor()
	// gradeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gradeevent.DefaultTimestamp = gradeeventDescTimestamp.Default.(func() time.Time)
	// gradeeventDescStudentID is the schema descriptor for student_id field.
	gradeeventDescStudentID := gradeeventFields[0].Descriptor()
	// gradeevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	gradeevent.StudentIDValidator = gradeeventDescStudentID.Validators[0].(func(string) error)
	// gradeeventDescSkillID is the schema descriptor for skill_id field.
	gradeeventDescSkillID := gradeeventFields[2].Descriptor()
	// gradeevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	gradeevent.SkillIDValidator = gradeeventDescSkillID.Validators[0].(func(string) error)
	// gradeeventDescQuestionText is the schema descriptor for question_text field.
	gradeeventDescQuestionText := gradeeventFields[3].Descriptor()
	// gradeevent.DefaultQuestionText holds the default value on creation for the question_text field.
	gradeevent.DefaultQuestionText = gradeeventDescQuestionText.Default.(string)
	// gradeeventDescStudentAnswer is the schema descriptor for student_answer field.
	gradeeventDescStudentAnswer := gradeeventFields[4].Descriptor()
	// gradeevent.DefaultStudentAnswer holds the default value on creation for the student_answer field.
	gradeevent.DefaultStudentAnswer = gradeeventDescStudentAnswer.Default.(string)
	// gradeeventDescCorrectness is the schema descriptor for correctness field.
	gradeeventDescCorrectness := gradeeventFields[5].Descriptor()
	// gradeevent.CorrectnessValidator is a validator for the "correctness" field. It is called by the builders before save.
	gradeevent.CorrectnessValidator = gradeeventDescCorrectness.Validators[0].(func(string) error)
	// gradeeventDescAnswerStyle is the schema descriptor for answer_style field.
	gradeeventDescAnswerStyle := gradeeventFields[7].Descriptor()
	// gradeevent.AnswerStyleValidator is a validator for the "answer_style" field. It is called by the builders before save.
	gradeevent.AnswerStyleValidator = gradeeventDescAnswerStyle.Validators[0].(func(string) error)
	// gradeeventDescConfidenceLevel is the schema descriptor for confidence_level field.
	gradeeventDescConfidenceLevel := gradeeventFields[8].Descriptor()
	// gradeevent.ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	gradeevent.ConfidenceLevelValidator = gradeeventDescConfidenceLevel.Validators[0].(func(string) error)
	// gradeeventDescHintsUsed is the schema descriptor for hints_used field.
	gradeeventDescHintsUsed := gradeeventFields[11].Descriptor()
	// gradeevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	gradeevent.DefaultHintsUsed = gradeeventDescHintsUsed.Default.(int)
	// gradeeventDescEvaluator is the schema descriptor for evaluator field.
	gradeeventDescEvaluator := gradeeventFields[14].Descriptor()
	// gradeevent.DefaultEvaluator holds the default value on creation for the evaluator field.
	gradeevent.DefaultEvaluator = gradeeventDescEvaluator.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescStudentID is the schema descriptor for student_id field.
	masteryeventDescStudentID := masteryeventFields[0].Descriptor()
	// masteryevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryevent.StudentIDValidator = masteryeventDescStudentID.Validators[0].(func(string) error)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[1].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescFromBand is the schema descriptor for from_band field.
	masteryeventDescFromBand := masteryeventFields[2].Descriptor()
	// masteryevent.FromBandValidator is a validator for the "from_band" field. It is called by the builders before save.
	masteryevent.FromBandValidator = masteryeventDescFromBand.Validators[0].(func(string) error)
	// masteryeventDescToBand is the schema descriptor for to_band field.
	masteryeventDescToBand := masteryeventFields[3].Descriptor()
	// masteryevent.ToBandValidator is a validator for the "to_band" field. It is called by the builders before save.
	masteryevent.ToBandValidator = masteryeventDescToBand.Validators[0].(func(string) error)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescStudentID is the schema descriptor for student_id field.
	noteDescStudentID := noteFields[1].Descriptor()
	// note.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	note.StudentIDValidator = noteDescStudentID.Validators[0].(func(string) error)
	// noteDescSkillID is the schema descriptor for skill_id field.
	noteDescSkillID := noteFields[2].Descriptor()
	// note.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	note.SkillIDValidator = noteDescSkillID.Validators[0].(func(string) error)
	// noteDescKind is the schema descriptor for kind field.
	noteDescKind := noteFields[4].Descriptor()
	// note.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	note.KindValidator = noteDescKind.Validators[0].(func(string) error)
	// noteDescDetail is the schema descriptor for detail field.
	noteDescDetail := noteFields[5].Descriptor()
	// note.DefaultDetail holds the default value on creation for the detail field.
	note.DefaultDetail = noteDescDetail.Default.(string)
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[6].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	// noteDescID is the schema descriptor for id field.
	noteDescID := noteFields[0].Descriptor()
	// note.IDValidator is a validator for the "id" field. It is called by the builders before save.
	note.IDValidator = noteDescID.Validators[0].(func(string) error)
	performancesnapshotFields := schema.PerformanceSnapshot{}.Fields()
	_ = performancesnapshotFields
	// performancesnapshotDescStudentID is the schema descriptor for student_id field.
	performancesnapshotDescStudentID := performancesnapshotFields[0].Descriptor()
	// performancesnapshot.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	performancesnapshot.StudentIDValidator = performancesnapshotDescStudentID.Validators[0].(func(string) error)
	// performancesnapshotDescTimestamp is the schema descriptor for timestamp field.
	performancesnapshotDescTimestamp := performancesnapshotFields[2].Descriptor()
	// performancesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	performancesnapshot.DefaultTimestamp = performancesnapshotDescTimestamp.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionevent.StudentIDValidator = sessioneventDescStudentID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[2].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLoopNumber is the schema descriptor for loop_number field.
	sessioneventDescLoopNumber := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultLoopNumber holds the default value on creation for the loop_number field.
	sessionevent.DefaultLoopNumber = sessioneventDescLoopNumber.Default.(int)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(float64)
	// sessioneventDescDetail is the schema descriptor for detail field.
	sessioneventDescDetail := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDetail holds the default value on creation for the detail field.
	sessionevent.DefaultDetail = sessioneventDescDetail.Default.(string)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescStudentID is the schema descriptor for student_id field.
	skillDescStudentID := skillFields[1].Descriptor()
	// skill.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	skill.StudentIDValidator = skillDescStudentID.Validators[0].(func(string) error)
	// skillDescDomain is the schema descriptor for domain field.
	skillDescDomain := skillFields[2].Descriptor()
	// skill.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	skill.DomainValidator = skillDescDomain.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[3].Descriptor()
	// skill.DefaultCategory holds the default value on creation for the category field.
	skill.DefaultCategory = skillDescCategory.Default.(string)
	// skillDescDisplayName is the schema descriptor for display_name field.
	skillDescDisplayName := skillFields[4].Descriptor()
	// skill.DefaultDisplayName holds the default value on creation for the display_name field.
	skill.DefaultDisplayName = skillDescDisplayName.Default.(string)
	// skillDescMastery is the schema descriptor for mastery field.
	skillDescMastery := skillFields[5].Descriptor()
	// skill.DefaultMastery holds the default value on creation for the mastery field.
	skill.DefaultMastery = skillDescMastery.Default.(float64)
	// skillDescTotalAttempts is the schema descriptor for total_attempts field.
	skillDescTotalAttempts := skillFields[8].Descriptor()
	// skill.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	skill.DefaultTotalAttempts = skillDescTotalAttempts.Default.(int)
	// skillDescCorrectAttempts is the schema descriptor for correct_attempts field.
	skillDescCorrectAttempts := skillFields[9].Descriptor()
	// skill.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	skill.DefaultCorrectAttempts = skillDescCorrectAttempts.Default.(int)
	// skillDescTypicalAnswerStyle is the schema descriptor for typical_answer_style field.
	skillDescTypicalAnswerStyle := skillFields[10].Descriptor()
	// skill.DefaultTypicalAnswerStyle holds the default value on creation for the typical_answer_style field.
	skill.DefaultTypicalAnswerStyle = skillDescTypicalAnswerStyle.Default.(string)
	// skillDescAvgResponseSecs is the schema descriptor for avg_response_secs field.
	skillDescAvgResponseSecs := skillFields[12].Descriptor()
	// skill.DefaultAvgResponseSecs holds the default value on creation for the avg_response_secs field.
	skill.DefaultAvgResponseSecs = skillDescAvgResponseSecs.Default.(float64)
	// skillDescCreatedAt is the schema descriptor for created_at field.
	skillDescCreatedAt := skillFields[13].Descriptor()
	// skill.DefaultCreatedAt holds the default value on creation for the created_at field.
	skill.DefaultCreatedAt = skillDescCreatedAt.Default.(func() time.Time)
	// skillDescUpdatedAt is the schema descriptor for updated_at field.
	skillDescUpdatedAt := skillFields[14].Descriptor()
	// skill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skill.DefaultUpdatedAt = skillDescUpdatedAt.Default.(func() time.Time)
	// skill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skill.UpdateDefaultUpdatedAt = skillDescUpdatedAt.UpdateDefault.(func() time.Time)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.IDValidator is a validator for the "id" field. It is called by the builders before save.
	skill.IDValidator = skillDescID.Validators[0].(func(string) error)
}
