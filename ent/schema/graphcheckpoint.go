package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphCheckpoint holds the schema definition for the GraphCheckpoint entity.
// A checkpoint is the full serialized state of a paused orchestration graph,
// keyed by thread_id. Resumption must work across process restarts, so the
// state blob is treated as opaque JSON by everything except the engine.
type GraphCheckpoint struct {
	ent.Schema
}

// Fields of the GraphCheckpoint.
func (GraphCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("client_id"),
		field.JSON("state", map[string]interface{}{}).
			Comment("Opaque serialized graph state"),
		field.JSON("interrupt", map[string]interface{}{}).
			Optional().
			Comment("Pending interrupt request surfaced to the user"),
		field.Enum("status").
			Values("paused", "resumed", "completed", "failed").
			Default("paused"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the GraphCheckpoint.
func (GraphCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "updated_at"),
		index.Fields("task_id"),
	}
}
