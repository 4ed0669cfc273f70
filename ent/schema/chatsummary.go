package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSummary holds the schema definition for the ChatSummary entity.
// One row per compressed block of chat history, covering the message
// sequence range [sequence_start, sequence_end].
type ChatSummary struct {
	ent.Schema
}

// Fields of the ChatSummary.
func (ChatSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.Int("sequence_start"),
		field.Int("sequence_end"),
		field.Text("summary"),
		field.JSON("key_decisions", []string{}).
			Optional(),
		field.JSON("topics", []string{}).
			Optional(),
		field.Bool("is_checkpoint").
			Default(false),
		field.String("checkpoint_reason").
			Optional().
			Nillable(),
		field.Int("message_count"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChatSummary.
func (ChatSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("task_id", "sequence_end"),
	}
}
