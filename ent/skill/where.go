// Code generated by ent, DO NOT EDIT.

package skill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStudentID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDomain, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldCategory, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDisplayName, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMastery, v))
}

// DecayRate applies equality check predicate on the "decay_rate" field. It's identical to DecayRateEQ.
func DecayRate(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDecayRate, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldLastSeen, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldCorrectAttempts, v))
}

// TypicalAnswerStyle applies equality check predicate on the "typical_answer_style" field. It's identical to TypicalAnswerStyleEQ.
func TypicalAnswerStyle(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTypicalAnswerStyle, v))
}

// AvgResponseSecs applies equality check predicate on the "avg_response_secs" field. It's identical to AvgResponseSecsEQ.
func AvgResponseSecs(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldAvgResponseSecs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldStudentID, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldDomain, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldCategory, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldDisplayName, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldMastery, v))
}

// DecayRateEQ applies the EQ predicate on the "decay_rate" field.
func DecayRateEQ(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDecayRate, v))
}

// DecayRateNEQ applies the NEQ predicate on the "decay_rate" field.
func DecayRateNEQ(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDecayRate, v))
}

// DecayRateIn applies the In predicate on the "decay_rate" field.
func DecayRateIn(vs ...float64) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDecayRate, vs...))
}

// DecayRateNotIn applies the NotIn predicate on the "decay_rate" field.
func DecayRateNotIn(vs ...float64) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDecayRate, vs...))
}

// DecayRateGT applies the GT predicate on the "decay_rate" field.
func DecayRateGT(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDecayRate, v))
}

// DecayRateGTE applies the GTE predicate on the "decay_rate" field.
func DecayRateGTE(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDecayRate, v))
}

// DecayRateLT applies the LT predicate on the "decay_rate" field.
func DecayRateLT(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDecayRate, v))
}

// DecayRateLTE applies the LTE predicate on the "decay_rate" field.
func DecayRateLTE(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDecayRate, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldLastSeen, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldCorrectAttempts, v))
}

// TypicalAnswerStyleEQ applies the EQ predicate on the "typical_answer_style" field.
func TypicalAnswerStyleEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleNEQ applies the NEQ predicate on the "typical_answer_style" field.
func TypicalAnswerStyleNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleIn applies the In predicate on the "typical_answer_style" field.
func TypicalAnswerStyleIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldTypicalAnswerStyle, vs...))
}

// TypicalAnswerStyleNotIn applies the NotIn predicate on the "typical_answer_style" field.
func TypicalAnswerStyleNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldTypicalAnswerStyle, vs...))
}

// TypicalAnswerStyleGT applies the GT predicate on the "typical_answer_style" field.
func TypicalAnswerStyleGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleGTE applies the GTE predicate on the "typical_answer_style" field.
func TypicalAnswerStyleGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleLT applies the LT predicate on the "typical_answer_style" field.
func TypicalAnswerStyleLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleLTE applies the LTE predicate on the "typical_answer_style" field.
func TypicalAnswerStyleLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleContains applies the Contains predicate on the "typical_answer_style" field.
func TypicalAnswerStyleContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleHasPrefix applies the HasPrefix predicate on the "typical_answer_style" field.
func TypicalAnswerStyleHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleHasSuffix applies the HasSuffix predicate on the "typical_answer_style" field.
func TypicalAnswerStyleHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleEqualFold applies the EqualFold predicate on the "typical_answer_style" field.
func TypicalAnswerStyleEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldTypicalAnswerStyle, v))
}

// TypicalAnswerStyleContainsFold applies the ContainsFold predicate on the "typical_answer_style" field.
func TypicalAnswerStyleContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldTypicalAnswerStyle, v))
}

// StyleCountsIsNil applies the IsNil predicate on the "style_counts" field.
func StyleCountsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldStyleCounts))
}

// StyleCountsNotNil applies the NotNil predicate on the "style_counts" field.
func StyleCountsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldStyleCounts))
}

// AvgResponseSecsEQ applies the EQ predicate on the "avg_response_secs" field.
func AvgResponseSecsEQ(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldAvgResponseSecs, v))
}

// AvgResponseSecsNEQ applies the NEQ predicate on the "avg_response_secs" field.
func AvgResponseSecsNEQ(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldAvgResponseSecs, v))
}

// AvgResponseSecsIn applies the In predicate on the "avg_response_secs" field.
func AvgResponseSecsIn(vs ...float64) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldAvgResponseSecs, vs...))
}

// AvgResponseSecsNotIn applies the NotIn predicate on the "avg_response_secs" field.
func AvgResponseSecsNotIn(vs ...float64) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldAvgResponseSecs, vs...))
}

// AvgResponseSecsGT applies the GT predicate on the "avg_response_secs" field.
func AvgResponseSecsGT(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldAvgResponseSecs, v))
}

// AvgResponseSecsGTE applies the GTE predicate on the "avg_response_secs" field.
func AvgResponseSecsGTE(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldAvgResponseSecs, v))
}

// AvgResponseSecsLT applies the LT predicate on the "avg_response_secs" field.
func AvgResponseSecsLT(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldAvgResponseSecs, v))
}

// AvgResponseSecsLTE applies the LTE predicate on the "avg_response_secs" field.
func AvgResponseSecsLTE(v float64) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldAvgResponseSecs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.NotPredicates(p))
}
