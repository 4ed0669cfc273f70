// Code generated by ent, DO NOT EDIT.

package chatsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldTaskID, v))
}

// SequenceStart applies equality check predicate on the "sequence_start" field. It's identical to SequenceStartEQ.
func SequenceStart(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldSequenceStart, v))
}

// SequenceEnd applies equality check predicate on the "sequence_end" field. It's identical to SequenceEndEQ.
func SequenceEnd(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldSequenceEnd, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldSummary, v))
}

// IsCheckpoint applies equality check predicate on the "is_checkpoint" field. It's identical to IsCheckpointEQ.
func IsCheckpoint(v bool) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldIsCheckpoint, v))
}

// CheckpointReason applies equality check predicate on the "checkpoint_reason" field. It's identical to CheckpointReasonEQ.
func CheckpointReason(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldCheckpointReason, v))
}

// MessageCount applies equality check predicate on the "message_count" field. It's identical to MessageCountEQ.
func MessageCount(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldMessageCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContainsFold(FieldTaskID, v))
}

// SequenceStartEQ applies the EQ predicate on the "sequence_start" field.
func SequenceStartEQ(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldSequenceStart, v))
}

// SequenceStartNEQ applies the NEQ predicate on the "sequence_start" field.
func SequenceStartNEQ(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldSequenceStart, v))
}

// SequenceStartIn applies the In predicate on the "sequence_start" field.
func SequenceStartIn(vs ...int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldSequenceStart, vs...))
}

// SequenceStartNotIn applies the NotIn predicate on the "sequence_start" field.
func SequenceStartNotIn(vs ...int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldSequenceStart, vs...))
}

// SequenceStartGT applies the GT predicate on the "sequence_start" field.
func SequenceStartGT(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldSequenceStart, v))
}

// SequenceStartGTE applies the GTE predicate on the "sequence_start" field.
func SequenceStartGTE(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldSequenceStart, v))
}

// SequenceStartLT applies the LT predicate on the "sequence_start" field.
func SequenceStartLT(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldSequenceStart, v))
}

// SequenceStartLTE applies the LTE predicate on the "sequence_start" field.
func SequenceStartLTE(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldSequenceStart, v))
}

// SequenceEndEQ applies the EQ predicate on the "sequence_end" field.
func SequenceEndEQ(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldSequenceEnd, v))
}

// SequenceEndNEQ applies the NEQ predicate on the "sequence_end" field.
func SequenceEndNEQ(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldSequenceEnd, v))
}

// SequenceEndIn applies the In predicate on the "sequence_end" field.
func SequenceEndIn(vs ...int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldSequenceEnd, vs...))
}

// SequenceEndNotIn applies the NotIn predicate on the "sequence_end" field.
func SequenceEndNotIn(vs ...int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldSequenceEnd, vs...))
}

// SequenceEndGT applies the GT predicate on the "sequence_end" field.
func SequenceEndGT(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldSequenceEnd, v))
}

// SequenceEndGTE applies the GTE predicate on the "sequence_end" field.
func SequenceEndGTE(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldSequenceEnd, v))
}

// SequenceEndLT applies the LT predicate on the "sequence_end" field.
func SequenceEndLT(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldSequenceEnd, v))
}

// SequenceEndLTE applies the LTE predicate on the "sequence_end" field.
func SequenceEndLTE(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldSequenceEnd, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContainsFold(FieldSummary, v))
}

// KeyDecisionsIsNil applies the IsNil predicate on the "key_decisions" field.
func KeyDecisionsIsNil() predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIsNull(FieldKeyDecisions))
}

// KeyDecisionsNotNil applies the NotNil predicate on the "key_decisions" field.
func KeyDecisionsNotNil() predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotNull(FieldKeyDecisions))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotNull(FieldTopics))
}

// IsCheckpointEQ applies the EQ predicate on the "is_checkpoint" field.
func IsCheckpointEQ(v bool) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldIsCheckpoint, v))
}

// IsCheckpointNEQ applies the NEQ predicate on the "is_checkpoint" field.
func IsCheckpointNEQ(v bool) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldIsCheckpoint, v))
}

// CheckpointReasonEQ applies the EQ predicate on the "checkpoint_reason" field.
func CheckpointReasonEQ(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldCheckpointReason, v))
}

// CheckpointReasonNEQ applies the NEQ predicate on the "checkpoint_reason" field.
func CheckpointReasonNEQ(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldCheckpointReason, v))
}

// CheckpointReasonIn applies the In predicate on the "checkpoint_reason" field.
func CheckpointReasonIn(vs ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldCheckpointReason, vs...))
}

// CheckpointReasonNotIn applies the NotIn predicate on the "checkpoint_reason" field.
func CheckpointReasonNotIn(vs ...string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldCheckpointReason, vs...))
}

// CheckpointReasonGT applies the GT predicate on the "checkpoint_reason" field.
func CheckpointReasonGT(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldCheckpointReason, v))
}

// CheckpointReasonGTE applies the GTE predicate on the "checkpoint_reason" field.
func CheckpointReasonGTE(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldCheckpointReason, v))
}

// CheckpointReasonLT applies the LT predicate on the "checkpoint_reason" field.
func CheckpointReasonLT(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldCheckpointReason, v))
}

// CheckpointReasonLTE applies the LTE predicate on the "checkpoint_reason" field.
func CheckpointReasonLTE(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldCheckpointReason, v))
}

// CheckpointReasonContains applies the Contains predicate on the "checkpoint_reason" field.
func CheckpointReasonContains(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContains(FieldCheckpointReason, v))
}

// CheckpointReasonHasPrefix applies the HasPrefix predicate on the "checkpoint_reason" field.
func CheckpointReasonHasPrefix(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldHasPrefix(FieldCheckpointReason, v))
}

// CheckpointReasonHasSuffix applies the HasSuffix predicate on the "checkpoint_reason" field.
func CheckpointReasonHasSuffix(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldHasSuffix(FieldCheckpointReason, v))
}

// CheckpointReasonIsNil applies the IsNil predicate on the "checkpoint_reason" field.
func CheckpointReasonIsNil() predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIsNull(FieldCheckpointReason))
}

// CheckpointReasonNotNil applies the NotNil predicate on the "checkpoint_reason" field.
func CheckpointReasonNotNil() predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotNull(FieldCheckpointReason))
}

// CheckpointReasonEqualFold applies the EqualFold predicate on the "checkpoint_reason" field.
func CheckpointReasonEqualFold(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEqualFold(FieldCheckpointReason, v))
}

// CheckpointReasonContainsFold applies the ContainsFold predicate on the "checkpoint_reason" field.
func CheckpointReasonContainsFold(v string) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldContainsFold(FieldCheckpointReason, v))
}

// MessageCountEQ applies the EQ predicate on the "message_count" field.
func MessageCountEQ(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldMessageCount, v))
}

// MessageCountNEQ applies the NEQ predicate on the "message_count" field.
func MessageCountNEQ(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldMessageCount, v))
}

// MessageCountIn applies the In predicate on the "message_count" field.
func MessageCountIn(vs ...int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldMessageCount, vs...))
}

// MessageCountNotIn applies the NotIn predicate on the "message_count" field.
func MessageCountNotIn(vs ...int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldMessageCount, vs...))
}

// MessageCountGT applies the GT predicate on the "message_count" field.
func MessageCountGT(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldMessageCount, v))
}

// MessageCountGTE applies the GTE predicate on the "message_count" field.
func MessageCountGTE(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldMessageCount, v))
}

// MessageCountLT applies the LT predicate on the "message_count" field.
func MessageCountLT(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldMessageCount, v))
}

// MessageCountLTE applies the LTE predicate on the "message_count" field.
func MessageCountLTE(v int) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldMessageCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatSummary {
	return predicate.ChatSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatSummary) predicate.ChatSummary {
	return predicate.ChatSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatSummary) predicate.ChatSummary {
	return predicate.ChatSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatSummary) predicate.ChatSummary {
	return predicate.ChatSummary(sql.NotPredicates(p))
}
