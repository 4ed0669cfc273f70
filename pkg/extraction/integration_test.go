package extraction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/pkg/config"
	testdb "github.com/jervis-ai/jervis-core/test/database"
)

// mockExtractor returns canned chunk IDs or a canned error.
type mockExtractor struct {
	mu       sync.Mutex
	seen     []string
	chunkIDs []string
	err      error
	delay    time.Duration
}

func (m *mockExtractor) Extract(ctx context.Context, task *ent.ExtractionTask) ([]string, error) {
	m.mu.Lock()
	m.seen = append(m.seen, task.ID)
	m.mu.Unlock()
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.chunkIDs, m.err
}

func (m *mockExtractor) seenTasks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.seen))
	copy(out, m.seen)
	return out
}

func intTestExtractionConfig() *config.ExtractionConfig {
	return &config.ExtractionConfig{
		WorkerCount:        2,
		MaxAttempts:        3,
		StaleThreshold:     2 * time.Second,
		PollInterval:       100 * time.Millisecond,
		PollIntervalJitter: 0,
		TaskTimeout:        10 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func TestEnqueueAndClaim(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	taskID, err := store.Enqueue(ctx, EnqueueInput{
		SourceURN: "chat:client-1:turn-42",
		Content:   "the user prefers tabs over spaces",
		ClientID:  "client-1",
		ProjectID: "proj-1",
		Kind:      "chat_turn",
	})
	require.NoError(t, err)

	task, err := store.ClaimNext(ctx, "worker-1", 3)
	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, extractiontask.StatusInProgress, task.Status)
	assert.Equal(t, 1, task.Attempts)
	require.NotNil(t, task.WorkerID)
	assert.Equal(t, "worker-1", *task.WorkerID)

	// Nothing else to claim.
	_, err = store.ClaimNext(ctx, "worker-2", 3)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestConcurrentClaimsGetDifferentTasks(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := store.Enqueue(ctx, EnqueueInput{
			SourceURN: fmt.Sprintf("doc:source-%d", i),
			Content:   "content",
			ClientID:  "client-1",
		})
		require.NoError(t, err)
	}

	var mu sync.Mutex
	claimed := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			task, err := store.ClaimNext(ctx, fmt.Sprintf("worker-%d", n), 3)
			if err != nil {
				return
			}
			mu.Lock()
			claimed[task.ID] = true
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Len(t, claimed, 4, "every claim must land on a distinct task")
}

func TestRetryThenPermanentFailure(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	taskID, err := store.Enqueue(ctx, EnqueueInput{
		SourceURN: "doc:flaky",
		Content:   "content",
		ClientID:  "client-1",
	})
	require.NoError(t, err)

	boom := errors.New("kb unreachable")
	for attempt := 1; attempt <= 3; attempt++ {
		task, err := store.ClaimNext(ctx, "worker-1", 3)
		require.NoError(t, err)
		assert.Equal(t, attempt, task.Attempts)
		require.NoError(t, store.MarkFailed(ctx, task, boom, 3))
	}

	task, err := store.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, extractiontask.StatusFailed, task.Status)
	require.NotNil(t, task.ErrorMessage)
	assert.Equal(t, "kb unreachable", *task.ErrorMessage)

	// Terminally failed tasks are never claimed again.
	_, err = store.ClaimNext(ctx, "worker-1", 3)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestMarkCompletedRecordsChunkIDs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	taskID, err := store.Enqueue(ctx, EnqueueInput{
		SourceURN: "doc:ok",
		Content:   "content",
		ClientID:  "client-1",
	})
	require.NoError(t, err)

	task, err := store.ClaimNext(ctx, "worker-1", 3)
	require.NoError(t, err)
	require.NoError(t, store.MarkCompleted(ctx, task.ID, []string{"chunk-1", "chunk-2"}))

	got, err := store.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, extractiontask.StatusCompleted, got.Status)
	assert.Equal(t, []string{"chunk-1", "chunk-2"}, got.ChunkIds)
}

func TestStaleTaskRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	taskID, err := store.Enqueue(ctx, EnqueueInput{
		SourceURN: "doc:orphaned",
		Content:   "content",
		ClientID:  "client-1",
	})
	require.NoError(t, err)

	task, err := store.ClaimNext(ctx, "worker-crashed", 3)
	require.NoError(t, err)

	// Simulate a crash: push the claim timestamp past the threshold.
	err = dbClient.ExtractionTask.UpdateOneID(task.ID).
		SetLastAttemptAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := store.RecoverStaleTasks(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := store.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, extractiontask.StatusPending, got.Status)
	assert.Nil(t, got.WorkerID)

	// Recovered task is claimable again and keeps its attempt count.
	task, err = store.ClaimNext(ctx, "worker-2", 3)
	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, 2, task.Attempts)
}

func TestStaleRecoveryCoversTasksWithoutAttemptTimestamp(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	// A crash between status flip and timestamp write leaves the row
	// IN_PROGRESS with no last_attempt_at.
	err := dbClient.ExtractionTask.Create().
		SetID("task-no-timestamp").
		SetSourceUrn("doc:half-claimed").
		SetContent("content").
		SetClientID("client-1").
		SetStatus(extractiontask.StatusInProgress).
		SetWorkerID("worker-crashed").
		Exec(ctx)
	require.NoError(t, err)

	n, err := store.RecoverStaleTasks(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := store.Get(ctx, "task-no-timestamp")
	require.NoError(t, err)
	assert.Equal(t, extractiontask.StatusPending, got.Status)
	assert.Nil(t, got.WorkerID)
}

func TestPoolEndToEndWithMockExtractor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	extractor := &mockExtractor{chunkIDs: []string{"chunk-a"}}
	pool := NewWorkerPool("test-instance", store, intTestExtractionConfig(), extractor)

	var taskIDs []string
	for i := 0; i < 3; i++ {
		id, err := store.Enqueue(ctx, EnqueueInput{
			SourceURN: fmt.Sprintf("doc:e2e-%d", i),
			Content:   "content",
			ClientID:  "client-1",
		})
		require.NoError(t, err)
		taskIDs = append(taskIDs, id)
	}

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 100*time.Millisecond, "tasks not completed", func() bool {
		stats, err := store.Stats(ctx)
		return err == nil && stats.Completed == len(taskIDs)
	})

	for _, id := range taskIDs {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, extractiontask.StatusCompleted, got.Status)
		assert.Equal(t, []string{"chunk-a"}, got.ChunkIds)
	}
	assert.Len(t, extractor.seenTasks(), 3)
}

func TestStats(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	store := NewStore(dbClient.Client)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, EnqueueInput{SourceURN: "a", Content: "x", ClientID: "c"})
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, EnqueueInput{SourceURN: "b", Content: "x", ClientID: "c"})
	require.NoError(t, err)

	task, err := store.ClaimNext(ctx, "worker-1", 3)
	require.NoError(t, err)
	require.NoError(t, store.MarkCompleted(ctx, task.ID, nil))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 0, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 0, stats.Failed)
}
