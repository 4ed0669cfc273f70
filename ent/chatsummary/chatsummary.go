// Code generated by ent, DO NOT EDIT.

package chatsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatsummary type in the database.
	Label = "chat_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSequenceStart holds the string denoting the sequence_start field in the database.
	FieldSequenceStart = "sequence_start"
	// FieldSequenceEnd holds the string denoting the sequence_end field in the database.
	FieldSequenceEnd = "sequence_end"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldKeyDecisions holds the string denoting the key_decisions field in the database.
	FieldKeyDecisions = "key_decisions"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldIsCheckpoint holds the string denoting the is_checkpoint field in the database.
	FieldIsCheckpoint = "is_checkpoint"
	// FieldCheckpointReason holds the string denoting the checkpoint_reason field in the database.
	FieldCheckpointReason = "checkpoint_reason"
	// FieldMessageCount holds the string denoting the message_count field in the database.
	FieldMessageCount = "message_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the chatsummary in the database.
	Table = "chat_summaries"
)

// Columns holds all SQL columns for chatsummary fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSequenceStart,
	FieldSequenceEnd,
	FieldSummary,
	FieldKeyDecisions,
	FieldTopics,
	FieldIsCheckpoint,
	FieldCheckpointReason,
	FieldMessageCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsCheckpoint holds the default value on creation for the "is_checkpoint" field.
	DefaultIsCheckpoint bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChatSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySequenceStart orders the results by the sequence_start field.
func BySequenceStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceStart, opts...).ToFunc()
}

// BySequenceEnd orders the results by the sequence_end field.
func BySequenceEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceEnd, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByIsCheckpoint orders the results by the is_checkpoint field.
func ByIsCheckpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCheckpoint, opts...).ToFunc()
}

// ByCheckpointReason orders the results by the checkpoint_reason field.
func ByCheckpointReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointReason, opts...).ToFunc()
}

// ByMessageCount orders the results by the message_count field.
func ByMessageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
