package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/pkg/config"
	testdb "github.com/jervis-ai/jervis-core/test/database"
)

func testConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		ExtractionRetention: 24 * time.Hour,
		CheckpointRetention: 24 * time.Hour,
		SweepInterval:       time.Hour,
	}
}

func createTask(t *testing.T, db *ent.Client, status extractiontask.Status, age time.Duration) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.ExtractionTask.Create().
		SetID(id).
		SetSourceUrn("urn:test:" + id).
		SetContent("content").
		SetClientID("client-1").
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestSweepDeletesOldTerminalExtractionTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(testConfig(), client.Client)
	ctx := context.Background()

	createTask(t, client.Client, extractiontask.StatusCompleted, 48*time.Hour)
	createTask(t, client.Client, extractiontask.StatusFailed, 48*time.Hour)
	freshCompleted := createTask(t, client.Client, extractiontask.StatusCompleted, time.Hour)
	oldPending := createTask(t, client.Client, extractiontask.StatusPending, 48*time.Hour)

	svc.SweepOnce(ctx)

	remaining, err := client.Client.ExtractionTask.Query().IDs(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{freshCompleted, oldPending}, remaining)
}

func TestSweepKeepsPausedCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(testConfig(), client.Client)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	state := map[string]interface{}{"task_id": "t1"}

	_, err := client.Client.GraphCheckpoint.Create().
		SetID("thread-done").
		SetTaskID("t1").
		SetClientID("client-1").
		SetState(state).
		SetStatus(graphcheckpoint.StatusCompleted).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Client.GraphCheckpoint.Create().
		SetID("thread-paused").
		SetTaskID("t2").
		SetClientID("client-1").
		SetState(state).
		SetStatus(graphcheckpoint.StatusPaused).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	svc.SweepOnce(ctx)

	ids, err := client.Client.GraphCheckpoint.Query().IDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"thread-paused"}, ids)
}

func TestStartStopIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(testConfig(), client.Client)

	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
}
