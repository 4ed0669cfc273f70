package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Aggregate endpoints present the backend pool as a single Ollama host:
// tags merges and dedupes, ps annotates each model with its backend, show
// and pull return the first success, delete fans out to every backend.

type taggedModel struct {
	raw     json.RawMessage
	name    string
	backend string
}

// AggregateTags merges /api/tags across all healthy backends, deduping by
// model name.
func (r *Router) AggregateTags(ctx context.Context) ([]byte, error) {
	results := r.fanOutGet(ctx, "/api/tags")

	seen := make(map[string]bool)
	var models []json.RawMessage
	for _, body := range results {
		var parsed struct {
			Models []json.RawMessage `json:"models"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			continue
		}
		for _, m := range parsed.Models {
			var probe struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(m, &probe); err != nil || seen[probe.Name] {
				continue
			}
			seen[probe.Name] = true
			models = append(models, m)
		}
	}
	if models == nil {
		models = []json.RawMessage{}
	}
	return json.Marshal(map[string]any{"models": models})
}

// AggregatePS merges /api/ps across all healthy backends, tagging each entry
// with the backend that reported it.
func (r *Router) AggregatePS(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	backends := r.Backends()
	healthy := make([]*Backend, 0, len(backends))
	for _, b := range backends {
		if b.Healthy {
			healthy = append(healthy, b)
		}
	}
	r.mu.Unlock()

	var mu sync.Mutex
	var models []map[string]any
	var wg sync.WaitGroup
	for _, b := range healthy {
		wg.Add(1)
		go func(b *Backend) {
			defer wg.Done()
			body, err := r.getJSON(ctx, b, "/api/ps")
			if err != nil {
				return
			}
			var parsed struct {
				Models []map[string]any `json:"models"`
			}
			if err := json.Unmarshal(body, &parsed); err != nil {
				return
			}
			mu.Lock()
			for _, m := range parsed.Models {
				m["backend"] = b.Name
				models = append(models, m)
			}
			mu.Unlock()
		}(b)
	}
	wg.Wait()

	if models == nil {
		models = []map[string]any{}
	}
	return json.Marshal(map[string]any{"models": models})
}

// FirstSuccess posts the body to each healthy backend in order and returns
// the first non-error response. Used for show and pull.
func (r *Router) FirstSuccess(ctx context.Context, apiPath string, body []byte) ([]byte, int, error) {
	for _, b := range r.healthySnapshot() {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint+apiPath, bytes.NewReader(body))
		if err != nil {
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := r.httpClient.Do(req)
		if err != nil {
			r.MarkUnhealthy(b)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			continue
		}
		if resp.StatusCode < 400 {
			return respBody, resp.StatusCode, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: all backends failed for %s", ErrNoBackendAvailable, apiPath)
}

// FanOutDelete deletes the model from every healthy backend. Succeeds if at
// least one backend had it.
func (r *Router) FanOutDelete(ctx context.Context, body []byte) error {
	var anyOK bool
	for _, b := range r.healthySnapshot() {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, b.Endpoint+"/api/delete", bytes.NewReader(body))
		if err != nil {
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := r.httpClient.Do(req)
		if err != nil {
			r.MarkUnhealthy(b)
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode < 400 {
			anyOK = true
			var probe struct {
				Name string `json:"name"`
			}
			if json.Unmarshal(body, &probe) == nil && probe.Name != "" {
				r.mu.Lock()
				delete(b.LoadedModels, probe.Name)
				r.mu.Unlock()
			}
		}
	}
	if !anyOK {
		return fmt.Errorf("%w: delete failed on all backends", ErrNoBackendAvailable)
	}
	return nil
}

func (r *Router) healthySnapshot() []*Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Backend
	for _, b := range r.Backends() {
		if b.Healthy {
			out = append(out, b)
		}
	}
	return out
}

func (r *Router) fanOutGet(ctx context.Context, apiPath string) [][]byte {
	backends := r.healthySnapshot()
	results := make([][]byte, 0, len(backends))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, b := range backends {
		wg.Add(1)
		go func(b *Backend) {
			defer wg.Done()
			body, err := r.getJSON(ctx, b, apiPath)
			if err != nil {
				return
			}
			mu.Lock()
			results = append(results, body)
			mu.Unlock()
		}(b)
	}
	wg.Wait()
	return results
}

func (r *Router) getJSON(ctx context.Context, b *Backend, apiPath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.Endpoint+apiPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.MarkUnhealthy(b)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("backend %s returned %d for %s", b.Name, resp.StatusCode, apiPath)
	}
	return io.ReadAll(resp.Body)
}
