package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/models"
	"github.com/jervis-ai/jervis-core/pkg/orchestration"
	testdb "github.com/jervis-ai/jervis-core/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newValidationServer() *Server {
	return &Server{}
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHealthWithoutDatabase(t *testing.T) {
	engine := newValidationServer().Engine()
	rec := doRequest(t, engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestChatRejectsMissingFields(t *testing.T) {
	engine := newValidationServer().Engine()

	rec := doRequest(t, engine, http.MethodPost, "/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, engine, http.MethodPost, "/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrchestrateRejectsMissingFields(t *testing.T) {
	engine := newValidationServer().Engine()

	rec := doRequest(t, engine, http.MethodPost, "/orchestrate/stream",
		`{"task":{"id":"t1"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveUnknownThreadReturns404(t *testing.T) {
	client := testdb.NewTestClient(t)
	checkpoints := orchestration.NewCheckpointStore(client.Client)
	engine := orchestration.NewBackgroundEngine(nil, nil, nil, checkpoints, noopPusher{}, nil, nil, nil, nil, nil)

	server := &Server{engine: engine, checkpoints: checkpoints}
	rec := doRequest(t, server.Engine(), http.MethodPost, "/approve/no-such-thread", `{"value":"approve"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApproveBindsApprovalVerdict(t *testing.T) {
	client := testdb.NewTestClient(t)
	checkpoints := orchestration.NewCheckpointStore(client.Client)
	engine := orchestration.NewBackgroundEngine(nil, nil, nil, checkpoints, noopPusher{}, nil, nil, nil, nil, nil)
	server := &Server{engine: engine, checkpoints: checkpoints}

	state := &models.GraphState{Task: models.CodingTask{ID: "task-1", ClientID: "client-1"}}
	interrupt := &models.InterruptRequest{Type: "approval", Action: "dispatch_coding_agent"}
	require.NoError(t, checkpoints.Suspend(context.Background(), "thread-reject", state, interrupt))

	rec := doRequest(t, server.Engine(), http.MethodPost, "/approve/thread-reject",
		`{"approved":false,"reason":"scope too large"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rejected by user: scope too large")
}

func TestApproveAnswersQuestionInterrupt(t *testing.T) {
	client := testdb.NewTestClient(t)
	checkpoints := orchestration.NewCheckpointStore(client.Client)
	engine := orchestration.NewBackgroundEngine(nil, nil, nil, checkpoints, noopPusher{}, nil, nil, nil, nil, nil)
	server := &Server{engine: engine, checkpoints: checkpoints}

	state := &models.GraphState{Task: models.CodingTask{ID: "task-2", ClientID: "client-1"}}
	interrupt := &models.InterruptRequest{Type: "question", Question: "which cluster?"}
	require.NoError(t, checkpoints.Suspend(context.Background(), "thread-question", state, interrupt))

	rec := doRequest(t, server.Engine(), http.MethodPost, "/approve/thread-question",
		`{"approved":true,"value":"use the staging cluster"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, server.Engine(), http.MethodGet, "/status/thread-question", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "completed")
}

func TestThreadStatusUnknownReturns404(t *testing.T) {
	client := testdb.NewTestClient(t)
	checkpoints := orchestration.NewCheckpointStore(client.Client)

	server := &Server{checkpoints: checkpoints}
	rec := doRequest(t, server.Engine(), http.MethodGet, "/status/no-such-thread", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSecurityHeadersSet(t *testing.T) {
	engine := newValidationServer().Engine()
	rec := doRequest(t, engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

type noopPusher struct{}

func (noopPusher) PushStatus(ctx context.Context, taskID, threadID, status string)    {}
func (noopPusher) PushProgress(ctx context.Context, taskID, threadID, message string) {}
