// Package kb is the HTTP client for the external knowledge base service:
// semantic search, chunk ingest, and affair persistence.
package kb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/cenkalti/backoff/v4"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// Client talks to the knowledge base service.
type Client struct {
	cfg        *config.KBConfig
	httpClient *http.Client

	// immediateUnsupported is set after the first 404 from the immediate
	// ingest endpoint, so later flushes skip the extra round trip.
	immediateUnsupported atomic.Bool
}

// NewClient creates a KB client.
func NewClient(cfg *config.KBConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// IngestInput is one chunk of content to persist in the KB.
type IngestInput struct {
	SourceURN string            `json:"source_urn"`
	Content   string            `json:"content"`
	Kind      string            `json:"kind,omitempty"`
	ClientID  string            `json:"client_id,omitempty"`
	ProjectID string            `json:"project_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// IngestResult reports the chunk IDs the KB created.
type IngestResult struct {
	ChunkIDs []string `json:"chunk_ids"`
}

// Search performs a semantic search scoped to a client (and optionally a
// project). Transient failures are retried with exponential backoff.
func (c *Client) Search(ctx context.Context, query, clientID, projectID string, limit int) ([]models.SearchResult, error) {
	payload := map[string]any{
		"query":     query,
		"client_id": clientID,
		"limit":     limit,
	}
	if projectID != "" {
		payload["project_id"] = projectID
	}

	var out struct {
		Results []models.SearchResult `json:"results"`
	}
	if err := c.postRetry(ctx, "/api/v1/search", payload, &out); err != nil {
		return nil, fmt.Errorf("kb search failed: %w", err)
	}
	for i := range out.Results {
		out.Results[i].Origin = "kb"
	}
	return out.Results, nil
}

// Ingest persists content through the standard (queued) ingest endpoint.
func (c *Client) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	var out IngestResult
	if err := c.postRetry(ctx, "/api/v1/ingest", input, &out); err != nil {
		return nil, fmt.Errorf("kb ingest failed: %w", err)
	}
	return &out, nil
}

// IngestImmediate persists content synchronously, bypassing the KB's ingest
// queue. Falls back to the standard endpoint when the KB predates the
// immediate endpoint (404).
func (c *Client) IngestImmediate(ctx context.Context, input IngestInput) (*IngestResult, error) {
	if c.immediateUnsupported.Load() {
		return c.Ingest(ctx, input)
	}

	var out IngestResult
	err := c.postRetry(ctx, "/api/v1/ingest/immediate", input, &out)
	if err != nil {
		var httpErr *statusError
		if asStatusError(err, &httpErr) && httpErr.code == http.StatusNotFound {
			slog.Info("KB immediate ingest endpoint unavailable, using standard ingest")
			c.immediateUnsupported.Store(true)
			return c.Ingest(ctx, input)
		}
		return nil, fmt.Errorf("kb immediate ingest failed: %w", err)
	}
	return &out, nil
}

// QueryAffairs returns a client's affairs with the given statuses. Used by
// the memory agent's cold load path.
func (c *Client) QueryAffairs(ctx context.Context, clientID string, statuses []models.AffairStatus) ([]*models.Affair, error) {
	payload := map[string]any{
		"client_id": clientID,
		"statuses":  statuses,
	}
	var out struct {
		Affairs []*models.Affair `json:"affairs"`
	}
	if err := c.postRetry(ctx, "/api/v1/affairs/query", payload, &out); err != nil {
		return nil, fmt.Errorf("kb affair query failed: %w", err)
	}
	return out.Affairs, nil
}

// statusError carries the HTTP status of a non-2xx KB response.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("kb returned %d: %s", e.code, e.body)
}

func asStatusError(err error, target **statusError) bool {
	for err != nil {
		if se, ok := err.(*statusError); ok {
			*target = se
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

// postRetry POSTs JSON with exponential backoff on transport errors and 5xx.
// 4xx responses are permanent and returned immediately.
func (c *Client) postRetry(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 500 {
			return &statusError{code: resp.StatusCode, body: truncate(string(respBody), 256)}
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(&statusError{code: resp.StatusCode, body: truncate(string(respBody), 256)})
		}
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return backoff.Permanent(fmt.Errorf("failed to parse kb response: %w", err))
			}
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.MaxRetries), ctx)
	return backoff.Retry(operation, policy)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
