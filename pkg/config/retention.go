package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls the background data-retention sweeper.
type RetentionConfig struct {
	// ExtractionRetention is how long completed and failed extraction
	// tasks are kept before deletion. Their chunk IDs remain queryable
	// in the knowledge base; the row is only an audit trail.
	ExtractionRetention time.Duration `yaml:"extraction_retention"`

	// CheckpointRetention is how long finished (completed/failed)
	// orchestration checkpoints are kept. Paused checkpoints are never
	// swept.
	CheckpointRetention time.Duration `yaml:"checkpoint_retention"`

	// SweepInterval is how often the sweeper runs. Sweeps are idempotent
	// and safe to run from multiple pods.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ExtractionRetention: 7 * 24 * time.Hour,
		CheckpointRetention: 30 * 24 * time.Hour,
		SweepInterval:       time.Hour,
	}
}

func (c *RetentionConfig) validate() []error {
	var errs []error
	if c.ExtractionRetention <= 0 {
		errs = append(errs, fmt.Errorf("retention.extraction_retention must be positive, got %s", c.ExtractionRetention))
	}
	if c.CheckpointRetention <= 0 {
		errs = append(errs, fmt.Errorf("retention.checkpoint_retention must be positive, got %s", c.CheckpointRetention))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("retention.sweep_interval must be positive, got %s", c.SweepInterval))
	}
	return errs
}
