package coordinator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

type capturedPush struct {
	path string
	body map[string]any
}

func newCaptureServer(t *testing.T, sink *[]capturedPush) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(data, &body))
		*sink = append(*sink, capturedPush{path: r.URL.Path, body: body})
		w.WriteHeader(http.StatusOK)
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(&config.CoordinatorConfig{BaseURL: baseURL, RequestTimeout: 2 * time.Second})
}

func TestPushStatusUsesStatusEndpoint(t *testing.T) {
	var pushes []capturedPush
	srv := newCaptureServer(t, &pushes)
	defer srv.Close()

	testClient(srv.URL).PushStatus(context.Background(), "task-1", "thread-1", "done")

	require.Len(t, pushes, 1)
	assert.Equal(t, "/internal/orchestrator-status", pushes[0].path)
	assert.Equal(t, "task-1", pushes[0].body["taskId"])
	assert.Equal(t, "thread-1", pushes[0].body["threadId"])
	assert.Equal(t, "done", pushes[0].body["status"])
}

func TestPushStatusUpdateCarriesDetailFields(t *testing.T) {
	var pushes []capturedPush
	srv := newCaptureServer(t, &pushes)
	defer srv.Close()

	testClient(srv.URL).PushStatusUpdate(context.Background(), StatusUpdate{
		TaskID:    "task-1",
		Status:    "done",
		Summary:   "retry added",
		Branch:    "jervis/task-1",
		Artifacts: []string{"sender.go"},
	})

	require.Len(t, pushes, 1)
	body := pushes[0].body
	assert.Equal(t, "retry added", body["summary"])
	assert.Equal(t, "jervis/task-1", body["branch"])
	assert.NotContains(t, body, "error", "empty optional fields must be omitted")
}

func TestPushProgressUsesProgressEndpoint(t *testing.T) {
	var pushes []capturedPush
	srv := newCaptureServer(t, &pushes)
	defer srv.Close()

	testClient(srv.URL).PushProgress(context.Background(), "task-1", "thread-1", "running tier 0")

	require.Len(t, pushes, 1)
	assert.Equal(t, "/internal/orchestrator-progress", pushes[0].path)
	assert.Equal(t, "task-1", pushes[0].body["taskId"])
	assert.Equal(t, "running tier 0", pushes[0].body["message"])
}

func TestPushCorrectionUsesCorrectionEndpoint(t *testing.T) {
	var pushes []capturedPush
	srv := newCaptureServer(t, &pushes)
	defer srv.Close()

	testClient(srv.URL).PushCorrection(context.Background(), CorrectionUpdate{
		MeetingID:  "meeting-1",
		Percent:    40,
		ChunksDone: 2, TotalChunks: 5,
	})

	require.Len(t, pushes, 1)
	assert.Equal(t, "/internal/correction-progress", pushes[0].path)
	assert.Equal(t, "meeting-1", pushes[0].body["meetingId"])
	assert.Equal(t, float64(2), pushes[0].body["chunksDone"])
}

func TestPushAgainstDownCoordinatorDoesNotPanic(t *testing.T) {
	c := testClient("http://localhost:1")
	c.PushStatus(context.Background(), "task-1", "thread-1", "done")
	c.PushProgress(context.Background(), "task-1", "thread-1", "still here")
}
