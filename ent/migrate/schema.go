// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_task_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[4]},
			},
		},
	}
	// ChatSummariesColumns holds the columns for the "chat_summaries" table.
	ChatSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "sequence_start", Type: field.TypeInt},
		{Name: "sequence_end", Type: field.TypeInt},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "key_decisions", Type: field.TypeJSON, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "is_checkpoint", Type: field.TypeBool, Default: false},
		{Name: "checkpoint_reason", Type: field.TypeString, Nullable: true},
		{Name: "message_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatSummariesTable holds the schema information for the "chat_summaries" table.
	ChatSummariesTable = &schema.Table{
		Name:       "chat_summaries",
		Columns:    ChatSummariesColumns,
		PrimaryKey: []*schema.Column{ChatSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsummary_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSummariesColumns[1], ChatSummariesColumns[10]},
			},
			{
				Name:    "chatsummary_task_id_sequence_end",
				Unique:  false,
				Columns: []*schema.Column{ChatSummariesColumns[1], ChatSummariesColumns[3]},
			},
		},
	}
	// ExtractionTasksColumns holds the columns for the "extraction_tasks" table.
	ExtractionTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "source_urn", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "client_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeString, Nullable: true},
		{Name: "chunk_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractionTasksTable holds the schema information for the "extraction_tasks" table.
	ExtractionTasksTable = &schema.Table{
		Name:       "extraction_tasks",
		Columns:    ExtractionTasksColumns,
		PrimaryKey: []*schema.Column{ExtractionTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractiontask_status_attempts_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTasksColumns[7], ExtractionTasksColumns[8], ExtractionTasksColumns[12]},
			},
			{
				Name:    "extractiontask_last_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTasksColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'in_progress'",
				},
			},
		},
	}
	// GraphCheckpointsColumns holds the columns for the "graph_checkpoints" table.
	GraphCheckpointsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "interrupt", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"paused", "resumed", "completed", "failed"}, Default: "paused"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GraphCheckpointsTable holds the schema information for the "graph_checkpoints" table.
	GraphCheckpointsTable = &schema.Table{
		Name:       "graph_checkpoints",
		Columns:    GraphCheckpointsColumns,
		PrimaryKey: []*schema.Column{GraphCheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphcheckpoint_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{GraphCheckpointsColumns[5], GraphCheckpointsColumns[7]},
			},
			{
				Name:    "graphcheckpoint_task_id",
				Unique:  false,
				Columns: []*schema.Column{GraphCheckpointsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ChatSummariesTable,
		ExtractionTasksTable,
		GraphCheckpointsTable,
	}
)

func init() {
}
