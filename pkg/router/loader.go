package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// EnsureModelLoaded makes the model resident on the backend, unloading others
// first when VRAM or big-model exclusivity demands it. Load calls for one
// backend are serialized so concurrent preempt and reserve flows cannot
// interleave their load sequences.
func (r *Router) EnsureModelLoaded(ctx context.Context, b *Backend, model string) error {
	mu := r.loadMus[b.Name]
	mu.Lock()
	defer mu.Unlock()

	r.mu.Lock()
	if b.hasModel(model) {
		r.mu.Unlock()
		return nil
	}
	vram := r.vramEstimate(model)
	needsClear := r.isBigModel(model) ||
		(b.Kind == BackendGPU && b.loadedVRAM()+vram > b.VRAMCapacityGB)
	r.mu.Unlock()

	if needsClear {
		if err := r.unloadAllLocked(ctx, b); err != nil {
			slog.Warn("Unload before load failed, loading anyway",
				"backend", b.Name, "model", model, "error", err)
		}
	}

	if err := r.loadModel(ctx, b, model); err != nil {
		modelLoadsTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("%w: %s on %s: %v", ErrModelLoadFailed, model, b.Name, err)
	}
	modelLoadsTotal.WithLabelValues("success").Inc()

	r.mu.Lock()
	b.LoadedModels[model] = vram
	r.mu.Unlock()
	return nil
}

// UnloadAll evicts every resident model from the backend, waiting for active
// requests to drain first (bounded by the drain timeout).
func (r *Router) UnloadAll(ctx context.Context, b *Backend) error {
	mu := r.loadMus[b.Name]
	mu.Lock()
	defer mu.Unlock()
	return r.unloadAllLocked(ctx, b)
}

// unloadAllLocked requires the backend's load mutex. It must NOT hold r.mu.
func (r *Router) unloadAllLocked(ctx context.Context, b *Backend) error {
	r.waitForDrain(ctx, b)

	r.mu.Lock()
	models := make([]string, 0, len(b.LoadedModels))
	for m := range b.LoadedModels {
		models = append(models, m)
	}
	r.mu.Unlock()

	var firstErr error
	for _, m := range models {
		if err := r.unloadModel(ctx, b, m); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.Warn("Model unload failed", "backend", b.Name, "model", m, "error", err)
			continue
		}
		modelUnloadsTotal.Inc()
		r.mu.Lock()
		delete(b.LoadedModels, m)
		r.mu.Unlock()
	}
	return firstErr
}

// waitForDrain blocks until the backend has no active requests or the drain
// timeout elapses. Requests still running after the timeout lose their model.
func (r *Router) waitForDrain(ctx context.Context, b *Backend) {
	deadline := time.Now().Add(r.cfg.UnloadDrainTimeout)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		n := b.activeCount()
		r.mu.Unlock()
		if n == 0 {
			return
		}
		select {
		case <-time.After(250 * time.Millisecond):
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		}
	}
	slog.Warn("Drain timeout elapsed, unloading with requests in flight", "backend", b.Name)
}

// isBigModel reports whether the model demands exclusive backend residency.
func (r *Router) isBigModel(model string) bool {
	return r.cfg.BigModelMarker != "" && strings.Contains(model, r.cfg.BigModelMarker)
}

// loadModel warms the model on the backend. Chat-family models load via an
// empty generate call; embedding models must use the embeddings endpoint.
func (r *Router) loadModel(ctx context.Context, b *Backend, model string) error {
	loadCtx, cancel := context.WithTimeout(ctx, r.cfg.ModelLoadTimeout)
	defer cancel()

	var path string
	var payload map[string]any
	if r.IsEmbeddingModel(model) {
		path = "/api/embeddings"
		payload = map[string]any{
			"model":      model,
			"prompt":     "warmup",
			"keep_alive": r.cfg.DefaultKeepAlive,
		}
	} else {
		path = "/api/generate"
		payload = map[string]any{
			"model":      model,
			"keep_alive": r.cfg.DefaultKeepAlive,
		}
	}
	return r.postJSON(loadCtx, b, path, payload)
}

// unloadModel evicts one model by sending keep_alive: 0 on the endpoint
// family the model belongs to.
func (r *Router) unloadModel(ctx context.Context, b *Backend, model string) error {
	unloadCtx, cancel := context.WithTimeout(ctx, r.cfg.ModelLoadTimeout)
	defer cancel()

	var path string
	var payload map[string]any
	if r.IsEmbeddingModel(model) {
		path = "/api/embeddings"
		payload = map[string]any{
			"model":      model,
			"prompt":     "",
			"keep_alive": 0,
		}
	} else {
		path = "/api/generate"
		payload = map[string]any{
			"model":      model,
			"keep_alive": 0,
		}
	}
	return r.postJSON(unloadCtx, b, path, payload)
}

func (r *Router) postJSON(ctx context.Context, b *Backend, path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.MarkUnhealthy(b)
		return fmt.Errorf("backend call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(msg))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
