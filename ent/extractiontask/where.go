// Code generated by ent, DO NOT EDIT.

package extractiontask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldID, id))
}

// SourceUrn applies equality check predicate on the "source_urn" field. It's identical to SourceUrnEQ.
func SourceUrn(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldSourceUrn, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldContent, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldClientID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldProjectID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldKind, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldAttempts, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldLastAttemptAt, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldWorkerID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceUrnEQ applies the EQ predicate on the "source_urn" field.
func SourceUrnEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldSourceUrn, v))
}

// SourceUrnNEQ applies the NEQ predicate on the "source_urn" field.
func SourceUrnNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldSourceUrn, v))
}

// SourceUrnIn applies the In predicate on the "source_urn" field.
func SourceUrnIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldSourceUrn, vs...))
}

// SourceUrnNotIn applies the NotIn predicate on the "source_urn" field.
func SourceUrnNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldSourceUrn, vs...))
}

// SourceUrnGT applies the GT predicate on the "source_urn" field.
func SourceUrnGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldSourceUrn, v))
}

// SourceUrnGTE applies the GTE predicate on the "source_urn" field.
func SourceUrnGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldSourceUrn, v))
}

// SourceUrnLT applies the LT predicate on the "source_urn" field.
func SourceUrnLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldSourceUrn, v))
}

// SourceUrnLTE applies the LTE predicate on the "source_urn" field.
func SourceUrnLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldSourceUrn, v))
}

// SourceUrnContains applies the Contains predicate on the "source_urn" field.
func SourceUrnContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldSourceUrn, v))
}

// SourceUrnHasPrefix applies the HasPrefix predicate on the "source_urn" field.
func SourceUrnHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldSourceUrn, v))
}

// SourceUrnHasSuffix applies the HasSuffix predicate on the "source_urn" field.
func SourceUrnHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldSourceUrn, v))
}

// SourceUrnEqualFold applies the EqualFold predicate on the "source_urn" field.
func SourceUrnEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldSourceUrn, v))
}

// SourceUrnContainsFold applies the ContainsFold predicate on the "source_urn" field.
func SourceUrnContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldSourceUrn, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldContent, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldClientID, v))
}

// ClientIDContains applies the Contains predicate on the "client_id" field.
func ClientIDContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldClientID, v))
}

// ClientIDHasPrefix applies the HasPrefix predicate on the "client_id" field.
func ClientIDHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldClientID, v))
}

// ClientIDHasSuffix applies the HasSuffix predicate on the "client_id" field.
func ClientIDHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldClientID, v))
}

// ClientIDEqualFold applies the EqualFold predicate on the "client_id" field.
func ClientIDEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldClientID, v))
}

// ClientIDContainsFold applies the ContainsFold predicate on the "client_id" field.
func ClientIDContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldClientID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldProjectID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldKind, v))
}

// KindIsNil applies the IsNil predicate on the "kind" field.
func KindIsNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIsNull(FieldKind))
}

// KindNotNil applies the NotNil predicate on the "kind" field.
func KindNotNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotNull(FieldKind))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldKind, v))
}

// ChunkIdsIsNil applies the IsNil predicate on the "chunk_ids" field.
func ChunkIdsIsNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIsNull(FieldChunkIds))
}

// ChunkIdsNotNil applies the NotNil predicate on the "chunk_ids" field.
func ChunkIdsNotNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotNull(FieldChunkIds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldAttempts, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotNull(FieldLastAttemptAt))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldWorkerID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionTask) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionTask) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionTask) predicate.ExtractionTask {
	return predicate.ExtractionTask(sql.NotPredicates(p))
}
