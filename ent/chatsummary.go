// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
)

// ChatSummary is the model entity for the ChatSummary schema.
type ChatSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// SequenceStart holds the value of the "sequence_start" field.
	SequenceStart int `json:"sequence_start,omitempty"`
	// SequenceEnd holds the value of the "sequence_end" field.
	SequenceEnd int `json:"sequence_end,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// KeyDecisions holds the value of the "key_decisions" field.
	KeyDecisions []string `json:"key_decisions,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []string `json:"topics,omitempty"`
	// IsCheckpoint holds the value of the "is_checkpoint" field.
	IsCheckpoint bool `json:"is_checkpoint,omitempty"`
	// CheckpointReason holds the value of the "checkpoint_reason" field.
	CheckpointReason *string `json:"checkpoint_reason,omitempty"`
	// MessageCount holds the value of the "message_count" field.
	MessageCount int `json:"message_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatsummary.FieldKeyDecisions, chatsummary.FieldTopics:
			values[i] = new([]byte)
		case chatsummary.FieldIsCheckpoint:
			values[i] = new(sql.NullBool)
		case chatsummary.FieldSequenceStart, chatsummary.FieldSequenceEnd, chatsummary.FieldMessageCount:
			values[i] = new(sql.NullInt64)
		case chatsummary.FieldID, chatsummary.FieldTaskID, chatsummary.FieldSummary, chatsummary.FieldCheckpointReason:
			values[i] = new(sql.NullString)
		case chatsummary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatSummary fields.
func (_m *ChatSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatsummary.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case chatsummary.FieldSequenceStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_start", values[i])
			} else if value.Valid {
				_m.SequenceStart = int(value.Int64)
			}
		case chatsummary.FieldSequenceEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_end", values[i])
			} else if value.Valid {
				_m.SequenceEnd = int(value.Int64)
			}
		case chatsummary.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case chatsummary.FieldKeyDecisions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_decisions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyDecisions); err != nil {
					return fmt.Errorf("unmarshal field key_decisions: %w", err)
				}
			}
		case chatsummary.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case chatsummary.FieldIsCheckpoint:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_checkpoint", values[i])
			} else if value.Valid {
				_m.IsCheckpoint = value.Bool
			}
		case chatsummary.FieldCheckpointReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_reason", values[i])
			} else if value.Valid {
				_m.CheckpointReason = new(string)
				*_m.CheckpointReason = value.String
			}
		case chatsummary.FieldMessageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_count", values[i])
			} else if value.Valid {
				_m.MessageCount = int(value.Int64)
			}
		case chatsummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatSummary.
// This includes values selected through modifiers, order, etc.
func (_m *ChatSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChatSummary.
// Note that you need to call ChatSummary.Unwrap() before calling this method if this ChatSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatSummary) Update() *ChatSummaryUpdateOne {
	return NewChatSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatSummary) Unwrap() *ChatSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatSummary) String() string {
	var builder strings.Builder
	builder.WriteString("ChatSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("sequence_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceStart))
	builder.WriteString(", ")
	builder.WriteString("sequence_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceEnd))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("key_decisions=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyDecisions))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("is_checkpoint=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCheckpoint))
	builder.WriteString(", ")
	if v := _m.CheckpointReason; v != nil {
		builder.WriteString("checkpoint_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatSummaries is a parsable slice of ChatSummary.
type ChatSummaries []*ChatSummary
