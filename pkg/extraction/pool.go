package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

// WorkerPool manages the extraction workers and startup stale-task recovery.
type WorkerPool struct {
	instanceID string
	store      *Store
	config     *config.ExtractionConfig
	extractor  TaskExtractor
	workers    []*Worker
	started    bool
}

// NewWorkerPool creates a new extraction worker pool.
func NewWorkerPool(instanceID string, store *Store, cfg *config.ExtractionConfig, extractor TaskExtractor) *WorkerPool {
	return &WorkerPool{
		instanceID: instanceID,
		store:      store,
		config:     cfg,
		extractor:  extractor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start recovers stale tasks and spawns the worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Extraction pool already started, ignoring duplicate Start call",
			"instance_id", p.instanceID)
		return nil
	}
	p.started = true

	if _, err := p.store.RecoverStaleTasks(ctx, p.config.StaleThreshold); err != nil {
		return fmt.Errorf("startup stale-task recovery failed: %w", err)
	}

	slog.Info("Starting extraction pool",
		"instance_id", p.instanceID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-extract-%d", p.instanceID, i)
		worker := NewWorker(workerID, p.store, p.config, p.extractor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current tasks.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping extraction pool gracefully")
	var wg sync.WaitGroup
	for _, worker := range p.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Stop()
		}(worker)
	}
	wg.Wait()
	slog.Info("Extraction pool stopped")
}

// Health returns per-worker health plus queue depth.
func (p *WorkerPool) Health(ctx context.Context) (*PoolHealth, error) {
	stats, err := p.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	workerStats := make([]WorkerHealth, len(p.workers))
	for i, worker := range p.workers {
		workerStats[i] = worker.Health()
	}
	return &PoolHealth{
		InstanceID: p.instanceID,
		Queue:      *stats,
		Workers:    workerStats,
	}, nil
}

// PoolHealth is the externally visible pool state.
type PoolHealth struct {
	InstanceID string         `json:"instance_id"`
	Queue      QueueStats     `json:"queue"`
	Workers    []WorkerHealth `json:"workers"`
}
