package agentpool

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

func testPoolConfig() *config.AgentPoolConfig {
	return &config.AgentPoolConfig{
		MaxConcurrent: map[string]int{
			"aider":  2,
			"claude": 1,
		},
		WaitTimeout:               100 * time.Millisecond,
		StuckJobTimeoutMultiplier: 1.5,
		AgentTimeouts: map[string]time.Duration{
			"aider": 5 * time.Minute,
		},
	}
}

func TestAcquireUpToLimit(t *testing.T) {
	pool := New(testPoolConfig())

	require.NoError(t, pool.Acquire(context.Background(), models.AgentTypeAider, PriorityForeground))
	require.NoError(t, pool.Acquire(context.Background(), models.AgentTypeAider, PriorityForeground))

	status := pool.Status()["aider"]
	assert.Equal(t, 2, status.InUse)
	assert.Equal(t, 2, status.Limit)
}

func TestAcquireTimesOutWhenFull(t *testing.T) {
	pool := New(testPoolConfig())
	require.NoError(t, pool.Acquire(context.Background(), models.AgentTypeClaude, PriorityForeground))

	err := pool.Acquire(context.Background(), models.AgentTypeClaude, PriorityBackground)
	require.ErrorIs(t, err, ErrPoolFull)

	status := pool.Status()["claude"]
	assert.Equal(t, 1, status.InUse)
	assert.Equal(t, 0, status.Waiting, "timed-out waiter must be removed from the queue")
}

func TestReleaseTransfersSlotToWaiter(t *testing.T) {
	pool := New(testPoolConfig())
	require.NoError(t, pool.Acquire(context.Background(), models.AgentTypeClaude, PriorityForeground))

	acquired := make(chan error, 1)
	go func() {
		acquired <- pool.Acquire(context.Background(), models.AgentTypeClaude, PriorityForeground)
	}()

	// Let the goroutine queue before releasing.
	require.Eventually(t, func() bool {
		return pool.Status()["claude"].Waiting == 1
	}, time.Second, 5*time.Millisecond)

	pool.Release(models.AgentTypeClaude)

	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter was not signalled")
	}

	// The slot transferred, so the count never dropped.
	assert.Equal(t, 1, pool.Status()["claude"].InUse)
}

func TestForegroundWaiterServedBeforeBackground(t *testing.T) {
	cfg := testPoolConfig()
	cfg.WaitTimeout = 2 * time.Second
	pool := New(cfg)
	require.NoError(t, pool.Acquire(context.Background(), models.AgentTypeClaude, PriorityForeground))

	var order []string
	var mu sync.Mutex
	var wg sync.WaitGroup
	record := func(label string, priority int) {
		defer wg.Done()
		if err := pool.Acquire(context.Background(), models.AgentTypeClaude, priority); err != nil {
			return
		}
		mu.Lock()
		order = append(order, label)
		mu.Unlock()
		pool.Release(models.AgentTypeClaude)
	}

	wg.Add(2)
	go record("background", PriorityBackground)
	require.Eventually(t, func() bool {
		return pool.Status()["claude"].Waiting == 1
	}, time.Second, 5*time.Millisecond)
	go record("foreground", PriorityForeground)
	require.Eventually(t, func() bool {
		return pool.Status()["claude"].Waiting == 2
	}, time.Second, 5*time.Millisecond)

	pool.Release(models.AgentTypeClaude)
	wg.Wait()

	require.Len(t, order, 2)
	assert.Equal(t, "foreground", order[0], "foreground waiters jump ahead of background ones")
}

func TestAcquireContextCancelled(t *testing.T) {
	cfg := testPoolConfig()
	cfg.WaitTimeout = 5 * time.Second
	pool := New(cfg)
	require.NoError(t, pool.Acquire(context.Background(), models.AgentTypeClaude, PriorityForeground))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- pool.Acquire(ctx, models.AgentTypeClaude, PriorityForeground)
	}()
	require.Eventually(t, func() bool {
		return pool.Status()["claude"].Waiting == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("acquire did not observe cancellation")
	}
	assert.Equal(t, 0, pool.Status()["claude"].Waiting)
}

func TestUnknownAgentType(t *testing.T) {
	pool := New(testPoolConfig())
	err := pool.Acquire(context.Background(), models.AgentType("gremlin"), PriorityForeground)
	require.ErrorIs(t, err, ErrUnknownAgentType)
}

func TestReleaseWithoutAcquireIsSafe(t *testing.T) {
	pool := New(testPoolConfig())
	pool.Release(models.AgentTypeAider)
	assert.Equal(t, 0, pool.Status()["aider"].InUse)
}

func TestJobTrackingAndStuckDetection(t *testing.T) {
	pool := New(testPoolConfig())

	pool.MarkStarted("job-fresh", models.AgentTypeAider, "task-1", "thread-1", 10*time.Minute)
	pool.MarkStarted("job-old", models.AgentTypeClaude, "task-2", "thread-2", time.Minute)

	assert.Len(t, pool.ActiveJobs(), 2)
	assert.Empty(t, pool.StuckJobs(time.Now()))

	// 1min timeout * 1.5 multiplier = 90s; two minutes later it is stuck.
	stuck := pool.StuckJobs(time.Now().Add(2 * time.Minute))
	require.Len(t, stuck, 1)
	assert.Equal(t, "job-old", stuck[0].JobName)

	pool.MarkCompleted("job-old", "failed")
	assert.Len(t, pool.ActiveJobs(), 1)
	assert.Empty(t, pool.StuckJobs(time.Now().Add(2*time.Minute)))
}

func TestTimeoutForFallsBack(t *testing.T) {
	pool := New(testPoolConfig())
	assert.Equal(t, 5*time.Minute, pool.TimeoutFor(models.AgentTypeAider))
	assert.Equal(t, 20*time.Minute, pool.TimeoutFor(models.AgentTypeJunie))
}
