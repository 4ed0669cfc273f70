// Package extraction provides the crash-safe knowledge extraction queue and
// its worker pool. Tasks survive restarts in Postgres; workers claim them
// atomically and retry failures up to the attempt limit.
package extraction

import (
	"context"
	"errors"
	"time"

	"github.com/jervis-ai/jervis-core/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")
)

// TaskExtractor processes one claimed task: chunk the content, ingest it
// into the knowledge base, and return the produced chunk IDs.
//
// The extractor owns the extraction pipeline internally. The worker only
// handles claiming, execution timeout, and terminal status updates.
type TaskExtractor interface {
	Extract(ctx context.Context, task *ent.ExtractionTask) ([]string, error)
}

// EnqueueInput describes a new extraction task.
type EnqueueInput struct {
	SourceURN string
	Content   string
	ClientID  string
	ProjectID string
	Kind      string
}

// QueueStats is a point-in-time snapshot of queue depth per status.
type QueueStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is the externally visible worker state.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
