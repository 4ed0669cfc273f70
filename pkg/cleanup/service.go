// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes completed and failed extraction tasks past their retention
//   - Deletes finished orchestration checkpoints past their retention
//
// Paused checkpoints and pending/in-progress extraction tasks are never
// touched. All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	db     *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention sweeper.
func NewService(cfg *config.RetentionConfig, db *ent.Client) *Service {
	return &Service{config: cfg, db: db}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweeper started",
		"extraction_retention", s.config.ExtractionRetention,
		"checkpoint_retention", s.config.CheckpointRetention,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.SweepOnce(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single retention pass.
func (s *Service) SweepOnce(ctx context.Context) {
	s.sweepExtractionTasks(ctx)
	s.sweepCheckpoints(ctx)
}

func (s *Service) sweepExtractionTasks(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.ExtractionRetention)
	count, err := s.db.ExtractionTask.Delete().
		Where(
			extractiontask.StatusIn(extractiontask.StatusCompleted, extractiontask.StatusFailed),
			extractiontask.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: extraction task sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old extraction tasks", "count", count)
	}
}

func (s *Service) sweepCheckpoints(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.CheckpointRetention)
	count, err := s.db.GraphCheckpoint.Delete().
		Where(
			graphcheckpoint.StatusIn(graphcheckpoint.StatusCompleted, graphcheckpoint.StatusFailed),
			graphcheckpoint.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: checkpoint sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted finished checkpoints", "count", count)
	}
}
