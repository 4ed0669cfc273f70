package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

func testExtractionConfig() *config.ExtractionConfig {
	return &config.ExtractionConfig{
		WorkerCount:        2,
		MaxAttempts:        3,
		StaleThreshold:     30 * time.Minute,
		PollInterval:       1 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
		TaskTimeout:        30 * time.Second,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testExtractionConfig()
	w := NewWorker("test-worker", nil, cfg, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testExtractionConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", nil, cfg, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testExtractionConfig()
	w := NewWorker("worker-1", nil, cfg, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
	assert.Equal(t, 0, h.TasksProcessed)

	w.setStatus(WorkerStatusWorking, "task-abc")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "task-abc", h.CurrentTaskID)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	cfg := testExtractionConfig()
	w := NewWorker("worker-1", nil, cfg, nil)

	w.Stop()
	w.Stop()
}
