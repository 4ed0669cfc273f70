package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractionTask holds the schema definition for the ExtractionTask entity.
// One row per deferred LLM post-processing task (e.g. entity extraction after
// chunk ingest). The table is the persistent, crash-safe FIFO backing the
// extraction queue.
type ExtractionTask struct {
	ent.Schema
}

// Fields of the ExtractionTask.
func (ExtractionTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("source_urn").
			Comment("URN of the source document/chunk this task derives from"),
		field.Text("content").
			Comment("Raw content handed to the extractor"),
		field.String("client_id"),
		field.String("project_id").
			Optional().
			Nillable(),
		field.String("kind").
			Optional().
			Nillable().
			Comment("Extraction kind (e.g. 'entities', 'graph')"),
		field.JSON("chunk_ids", []string{}).
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Time("last_attempt_at").
			Optional().
			Nillable().
			Comment("Claim timestamp; drives stale-claim recovery"),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ExtractionTask.
func (ExtractionTask) Indexes() []ent.Index {
	return []ent.Index{
		// Dequeue scan: oldest pending row under the attempt cap.
		index.Fields("status", "attempts", "created_at"),

		// Stale-claim recovery scans in_progress rows only.
		index.Fields("last_attempt_at").
			Annotations(entsql.IndexWhere("status = 'in_progress'")),
	}
}
