package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
)

// Store is the persistence layer for extraction tasks.
type Store struct {
	client *ent.Client
}

// NewStore creates an extraction task store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Enqueue persists a new PENDING task and returns its ID. The task survives
// process restarts; durability is the whole point of this queue.
func (s *Store) Enqueue(ctx context.Context, input EnqueueInput) (string, error) {
	taskID := uuid.New().String()
	create := s.client.ExtractionTask.Create().
		SetID(taskID).
		SetSourceUrn(input.SourceURN).
		SetContent(input.Content).
		SetClientID(input.ClientID).
		SetStatus(extractiontask.StatusPending)
	if input.ProjectID != "" {
		create = create.SetProjectID(input.ProjectID)
	}
	if input.Kind != "" {
		create = create.SetKind(input.Kind)
	}
	if err := create.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to enqueue extraction task: %w", err)
	}
	return taskID, nil
}

// ClaimNext atomically claims the oldest PENDING task using
// FOR UPDATE SKIP LOCKED, so concurrent workers never double-claim.
func (s *Store) ClaimNext(ctx context.Context, workerID string, maxAttempts int) (*ent.ExtractionTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.ExtractionTask.Query().
		Where(
			extractiontask.StatusEQ(extractiontask.StatusPending),
			extractiontask.AttemptsLT(maxAttempts),
		).
		Order(ent.Asc(extractiontask.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	task, err = task.Update().
		SetStatus(extractiontask.StatusInProgress).
		SetWorkerID(workerID).
		SetLastAttemptAt(time.Now()).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return task, nil
}

// MarkCompleted records the produced chunk IDs and completes the task.
func (s *Store) MarkCompleted(ctx context.Context, taskID string, chunkIDs []string) error {
	err := s.client.ExtractionTask.UpdateOneID(taskID).
		SetStatus(extractiontask.StatusCompleted).
		SetChunkIds(chunkIDs).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark task completed: %w", err)
	}
	return nil
}

// MarkFailed records the error. Tasks below the attempt limit return to
// PENDING for retry; at the limit they become terminally FAILED.
func (s *Store) MarkFailed(ctx context.Context, task *ent.ExtractionTask, taskErr error, maxAttempts int) error {
	status := extractiontask.StatusPending
	if task.Attempts >= maxAttempts {
		status = extractiontask.StatusFailed
		slog.Error("Extraction task permanently failed",
			"task_id", task.ID, "source_urn", task.SourceUrn,
			"attempts", task.Attempts, "error", taskErr)
	}

	err := s.client.ExtractionTask.UpdateOneID(task.ID).
		SetStatus(status).
		SetErrorMessage(taskErr.Error()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark task failed: %w", err)
	}
	return nil
}

// RecoverStaleTasks returns IN_PROGRESS tasks older than the threshold to
// PENDING. Run at startup to pick up work orphaned by a crash. Rows that
// never recorded an attempt timestamp count as stale too.
func (s *Store) RecoverStaleTasks(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)
	n, err := s.client.ExtractionTask.Update().
		Where(
			extractiontask.StatusEQ(extractiontask.StatusInProgress),
			extractiontask.Or(
				extractiontask.LastAttemptAtLT(cutoff),
				extractiontask.LastAttemptAtIsNil(),
			),
		).
		SetStatus(extractiontask.StatusPending).
		ClearWorkerID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover stale tasks: %w", err)
	}
	if n > 0 {
		slog.Info("Recovered stale extraction tasks", "count", n, "threshold", threshold.String())
	}
	return n, nil
}

// Get returns one task by ID.
func (s *Store) Get(ctx context.Context, taskID string) (*ent.ExtractionTask, error) {
	task, err := s.client.ExtractionTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("extraction task %s not found", taskID)
		}
		return nil, fmt.Errorf("failed to get extraction task: %w", err)
	}
	return task, nil
}

// Stats counts tasks per status.
func (s *Store) Stats(ctx context.Context) (*QueueStats, error) {
	stats := &QueueStats{}
	counts := []struct {
		status extractiontask.Status
		dest   *int
	}{
		{extractiontask.StatusPending, &stats.Pending},
		{extractiontask.StatusInProgress, &stats.InProgress},
		{extractiontask.StatusCompleted, &stats.Completed},
		{extractiontask.StatusFailed, &stats.Failed},
	}
	for _, c := range counts {
		n, err := s.client.ExtractionTask.Query().
			Where(extractiontask.StatusEQ(c.status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s tasks: %w", c.status, err)
		}
		*c.dest = n
	}
	return stats, nil
}
