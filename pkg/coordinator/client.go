// Package coordinator is the HTTP client for the coordinator service, which
// fans user-visible progress and status updates out to connected frontends.
package coordinator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

// ProgressUpdate is the orchestrator-progress payload.
type ProgressUpdate struct {
	TaskID     string `json:"taskId"`
	ClientID   string `json:"clientId,omitempty"`
	Node       string `json:"node,omitempty"`
	Message    string `json:"message,omitempty"`
	Percent    int    `json:"percent,omitempty"`
	GoalIndex  int    `json:"goalIndex,omitempty"`
	TotalGoals int    `json:"totalGoals,omitempty"`
	StepIndex  int    `json:"stepIndex,omitempty"`
	TotalSteps int    `json:"totalSteps,omitempty"`
}

// StatusUpdate is the orchestrator-status payload.
type StatusUpdate struct {
	TaskID               string   `json:"taskId"`
	ThreadID             string   `json:"threadId,omitempty"`
	Status               string   `json:"status"`
	Summary              string   `json:"summary,omitempty"`
	Error                string   `json:"error,omitempty"`
	InterruptAction      string   `json:"interruptAction,omitempty"`
	InterruptDescription string   `json:"interruptDescription,omitempty"`
	Branch               string   `json:"branch,omitempty"`
	Artifacts            []string `json:"artifacts,omitempty"`
}

// CorrectionUpdate is the correction-progress payload for the transcript
// correction path.
type CorrectionUpdate struct {
	MeetingID       string `json:"meetingId"`
	ClientID        string `json:"clientId,omitempty"`
	Percent         int    `json:"percent,omitempty"`
	ChunksDone      int    `json:"chunksDone,omitempty"`
	TotalChunks     int    `json:"totalChunks,omitempty"`
	Message         string `json:"message,omitempty"`
	TokensGenerated int    `json:"tokensGenerated,omitempty"`
}

// Client pushes updates to the coordinator. All pushes are best-effort:
// failures are logged, never propagated, so a down coordinator cannot stall
// an orchestration.
type Client struct {
	cfg        *config.CoordinatorConfig
	httpClient *http.Client
}

// NewClient creates a coordinator client.
func NewClient(cfg *config.CoordinatorConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// PushProgressUpdate reports detailed execution progress.
func (c *Client) PushProgressUpdate(ctx context.Context, u ProgressUpdate) {
	c.post(ctx, "/internal/orchestrator-progress", u)
}

// PushStatusUpdate reports a task status transition with its detail fields.
func (c *Client) PushStatusUpdate(ctx context.Context, u StatusUpdate) {
	c.post(ctx, "/internal/orchestrator-status", u)
}

// PushCorrection reports transcript-correction progress.
func (c *Client) PushCorrection(ctx context.Context, u CorrectionUpdate) {
	c.post(ctx, "/internal/correction-progress", u)
}

// PushProgress is the free-form progress form the engine uses. Progress is
// task-scoped on the wire; the thread is carried by the status stream.
func (c *Client) PushProgress(ctx context.Context, taskID, threadID, message string) {
	_ = threadID
	c.PushProgressUpdate(ctx, ProgressUpdate{TaskID: taskID, Message: message})
}

// PushStatus is the minimal status form the engine uses.
func (c *Client) PushStatus(ctx context.Context, taskID, threadID, status string) {
	c.PushStatusUpdate(ctx, StatusUpdate{TaskID: taskID, ThreadID: threadID, Status: status})
}

func (c *Client) post(ctx context.Context, path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Coordinator payload marshal failed", "path", path, "error", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		slog.Warn("Coordinator request build failed", "path", path, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Coordinator push failed", "path", path, "error", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		slog.Warn("Coordinator push rejected",
			"path", path, "status", fmt.Sprintf("%d", resp.StatusCode))
	}
}
