package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

// Worker is a single extraction worker that polls for and processes tasks.
type Worker struct {
	id        string
	store     *Store
	config    *config.ExtractionConfig
	extractor TaskExtractor
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new extraction worker.
func NewWorker(id string, store *Store, cfg *config.ExtractionConfig, extractor TaskExtractor) *Worker {
	return &Worker{
		id:           id,
		store:        store,
		config:       cfg,
		extractor:    extractor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Extraction worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Extraction worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, extraction worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing extraction task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one task and runs the extractor on it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Claim next task
	task, err := w.store.ClaimNext(ctx, w.id, w.config.MaxAttempts)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "worker_id", w.id,
		"source_urn", task.SourceUrn, "attempt", task.Attempts)
	log.Info("Extraction task claimed")

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 2. Execute with timeout
	taskCtx, cancel := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancel()

	chunkIDs, extractErr := w.extractor.Extract(taskCtx, task)

	// 3. Timeout becomes a retryable failure like any other error.
	if extractErr == nil && taskCtx.Err() != nil {
		extractErr = fmt.Errorf("extraction timed out after %v", w.config.TaskTimeout)
	}

	// 4. Write terminal status (background context — task ctx may be done)
	if extractErr != nil {
		log.Warn("Extraction task failed", "error", extractErr)
		if err := w.store.MarkFailed(context.Background(), task, extractErr, w.config.MaxAttempts); err != nil {
			return err
		}
		return nil
	}

	if err := w.store.MarkCompleted(context.Background(), task.ID, chunkIDs); err != nil {
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Extraction task complete", "chunks", len(chunkIDs))
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
