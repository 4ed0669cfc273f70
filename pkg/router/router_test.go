package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

// fakeOllama is a minimal Ollama-compatible backend for router tests.
type fakeOllama struct {
	server *httptest.Server

	mu        sync.Mutex
	loadCalls []string
	tags      []string
}

func newFakeOllama(t *testing.T, tags ...string) *fakeOllama {
	t.Helper()
	f := &fakeOllama{tags: tags}
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.mu.Lock()
		f.loadCalls = append(f.loadCalls, payload.Model)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"model": payload.Model, "done": true})
	})
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		models := make([]map[string]any, 0, len(f.tags))
		for _, name := range f.tags {
			models = append(models, map[string]any{"name": name})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"models": models})
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeOllama) loaded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.loadCalls))
	copy(out, f.loadCalls)
	return out
}

func newTestConfig(gpuURLs []string, cpuURL string) *config.RouterConfig {
	cfg := config.DefaultRouterConfig()
	for i, u := range gpuURLs {
		cfg.GPUBackends = append(cfg.GPUBackends, config.GPUBackendConfig{
			Name:   fmt.Sprintf("g%d", i+1),
			URL:    u,
			VRAMGB: 24,
		})
	}
	cfg.CPUBackendURL = cpuURL
	cfg.PreemptGrace = 10 * time.Millisecond
	cfg.UnloadDrainTimeout = 100 * time.Millisecond
	cfg.BackgroundLoadDelay = 20 * time.Millisecond
	cfg.ModelVRAMGB = map[string]float64{
		"small-7b": 5,
		"big-30b":  20,
	}
	return cfg
}

func TestPriorityFor(t *testing.T) {
	cfg := newTestConfig(nil, "http://localhost:1")
	cfg.ModelPriorities = map[string]int{"qwen3:32b": 0}
	r := New(cfg)

	assert.Equal(t, PriorityCritical, r.PriorityFor("anything", "0"))
	assert.Equal(t, PriorityNormal, r.PriorityFor("qwen3:32b", "1"))
	assert.Equal(t, PriorityCritical, r.PriorityFor("qwen3:32b", ""))
	assert.Equal(t, PriorityNormal, r.PriorityFor("small-7b", ""))
}

func TestRouteResidentModelFastPath(t *testing.T) {
	gpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, gpu.server.URL))
	r.gpus[0].LoadedModels["small-7b"] = 5

	b, tr, err := r.Route(context.Background(), "/api/generate", "small-7b", PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, "g1", b.Name)
	assert.Equal(t, StateRunningGPU, tr.State)
	assert.Empty(t, gpu.loaded(), "resident model must not trigger a load")
	r.Finish(b, tr, StateCompleted)
	assert.Empty(t, b.Active)
}

func TestCriticalPreemptsNormal(t *testing.T) {
	gpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, gpu.server.URL))
	r.gpus[0].LoadedModels["small-7b"] = 5

	_, normalTr, err := r.Route(context.Background(), "/api/generate", "small-7b", PriorityNormal)
	require.NoError(t, err)

	b, critTr, err := r.Route(context.Background(), "/api/generate", "qwen3:32b", PriorityCritical)
	require.NoError(t, err)
	assert.Equal(t, "g1", b.Name)

	select {
	case <-normalTr.Preempted():
	default:
		t.Fatal("normal request was not preempted")
	}
	assert.Equal(t, StatePreempted, normalTr.State)
	assert.NotEqual(t, StatePreempted, critTr.State)
	assert.Contains(t, gpu.loaded(), "qwen3:32b")
}

func TestEmbeddingsNotPreemptedByDefault(t *testing.T) {
	gpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, gpu.server.URL))
	r.gpus[0].LoadedModels["nomic-embed-text"] = 1

	_, embTr, err := r.Route(context.Background(), "/api/embeddings", "nomic-embed-text", PriorityNormal)
	require.NoError(t, err)

	_, _, err = r.Route(context.Background(), "/api/generate", "qwen3:32b", PriorityCritical)
	require.NoError(t, err)

	select {
	case <-embTr.Preempted():
		t.Fatal("embedding request must survive preemption by default")
	default:
	}
}

func TestNormalRoutesToCPUUnderReservation(t *testing.T) {
	gpu := newFakeOllama(t)
	cpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, cpu.server.URL))

	loaded, err := r.Announce(context.Background(), "s1", "qwen3:32b")
	require.NoError(t, err)
	assert.True(t, loaded)

	b, _, err := r.Route(context.Background(), "/api/generate", "small-7b", PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, BackendCPU, b.Kind)
}

func TestAnnounceReleaseLifecycle(t *testing.T) {
	gpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, gpu.server.URL))

	loaded, err := r.Announce(context.Background(), "s1", "big-30b")
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "s1", r.gpus[0].ReservedBy)
	assert.Contains(t, gpu.loaded(), "big-30b")

	// Non-owning release is a no-op.
	r.Release("s2")
	assert.Equal(t, "s1", r.gpus[0].ReservedBy)

	r.Release("s1")
	assert.Empty(t, r.gpus[0].ReservedBy)

	// Announce again after release succeeds.
	loaded, err = r.Announce(context.Background(), "s1", "big-30b")
	require.NoError(t, err)
	assert.True(t, loaded)
	r.Release("s1")
}

func TestAnnounceTransfersReservation(t *testing.T) {
	gpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, gpu.server.URL))

	_, err := r.Announce(context.Background(), "s1", "qwen3:32b")
	require.NoError(t, err)
	_, err = r.Announce(context.Background(), "s2", "qwen3:32b")
	require.NoError(t, err)
	assert.Equal(t, "s2", r.gpus[0].ReservedBy)
}

func TestWatchdogReleasesIdleReservation(t *testing.T) {
	gpu := newFakeOllama(t)
	cfg := newTestConfig([]string{gpu.server.URL}, gpu.server.URL)
	cfg.OrchestratorIdleTimeout = 10 * time.Millisecond
	cfg.BackgroundModels = nil
	r := New(cfg)

	_, err := r.Announce(context.Background(), "s1", "qwen3:32b")
	require.NoError(t, err)

	r.mu.Lock()
	r.gpus[0].LastCriticalActivity = time.Now().Add(-time.Minute)
	r.mu.Unlock()

	r.enforceReservationTimeouts()
	assert.Empty(t, r.gpus[0].ReservedBy)
}

func TestWatchdogReleasesExpiredReservation(t *testing.T) {
	gpu := newFakeOllama(t)
	cfg := newTestConfig([]string{gpu.server.URL}, gpu.server.URL)
	cfg.BackgroundModels = nil
	r := New(cfg)

	_, err := r.Announce(context.Background(), "s1", "qwen3:32b")
	require.NoError(t, err)

	r.mu.Lock()
	r.gpus[0].ReservedAt = time.Now().Add(-2 * cfg.OrchestratorReservationTimeout)
	r.mu.Unlock()

	r.enforceReservationTimeouts()
	assert.Empty(t, r.gpus[0].ReservedBy)
}

func TestAllBackendsDown(t *testing.T) {
	r := New(newTestConfig([]string{"http://localhost:1"}, "http://localhost:1"))
	r.gpus[0].Healthy = false
	r.cpu.Healthy = false

	_, _, err := r.Route(context.Background(), "/api/generate", "small-7b", PriorityNormal)
	assert.ErrorIs(t, err, ErrNoBackendAvailable)

	_, _, err = r.Route(context.Background(), "/api/generate", "small-7b", PriorityCritical)
	assert.ErrorIs(t, err, ErrNoBackendAvailable)
}

func TestBigModelGetsExclusiveBackend(t *testing.T) {
	gpu := newFakeOllama(t)
	r := New(newTestConfig([]string{gpu.server.URL}, gpu.server.URL))
	r.gpus[0].LoadedModels["small-7b"] = 5

	err := r.EnsureModelLoaded(context.Background(), r.gpus[0], "big-30b")
	require.NoError(t, err)

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.False(t, r.gpus[0].hasModel("small-7b"), "big model load must clear the backend")
	assert.True(t, r.gpus[0].hasModel("big-30b"))
}

// syncRecorder wraps a ResponseRecorder so the test can safely read the body
// while the proxy goroutine is still writing to it.
type syncRecorder struct {
	mu  sync.Mutex
	rec *httptest.ResponseRecorder
}

func (s *syncRecorder) Header() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Header()
}

func (s *syncRecorder) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Write(p)
}

func (s *syncRecorder) WriteHeader(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.WriteHeader(code)
}

func (s *syncRecorder) Body() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Body.String()
}

func TestStreamPreemptionEmitsTerminalLine(t *testing.T) {
	lines := make(chan string)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		flusher := w.(http.Flusher)
		for line := range lines {
			_, _ = fmt.Fprintln(w, line)
			flusher.Flush()
		}
	}))
	defer upstream.Close()

	r := New(newTestConfig([]string{upstream.URL}, upstream.URL))
	b := r.gpus[0]
	tr := newTrackedRequest("req-1", "small-7b", "/api/generate", PriorityNormal)
	b.Active[tr.ID] = tr

	rec := &syncRecorder{rec: httptest.NewRecorder()}
	done := make(chan error, 1)
	go func() {
		done <- r.Proxy(context.Background(), rec, b, tr, "/api/generate", []byte(`{"model":"small-7b"}`), http.Header{})
	}()

	lines <- `{"response":"hello","done":false}`
	// Wait for the proxy to relay the first line before preempting; the
	// preempt signal is only checked between upstream lines.
	require.Eventually(t, func() bool {
		return strings.Contains(rec.Body(), "hello")
	}, 5*time.Second, time.Millisecond)
	tr.Preempt()
	lines <- `{"response":"world","done":false}`
	close(lines)

	err := <-done
	assert.ErrorIs(t, err, ErrPreempted)
	assert.Contains(t, rec.Body(), `{"error":"preempted","done":true}`)
	assert.Contains(t, rec.Body(), "hello")
}

func TestAggregateTagsDedupes(t *testing.T) {
	g1 := newFakeOllama(t, "small-7b", "shared")
	g2 := newFakeOllama(t, "big-30b", "shared")
	r := New(newTestConfig([]string{g1.server.URL, g2.server.URL}, g1.server.URL))

	body, err := r.AggregateTags(context.Background())
	require.NoError(t, err)

	var parsed struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))

	names := make(map[string]int)
	for _, m := range parsed.Models {
		names[m.Name]++
	}
	assert.Equal(t, 1, names["shared"], "duplicate models must be deduped")
	assert.Equal(t, 1, names["small-7b"])
	assert.Equal(t, 1, names["big-30b"])
}

func TestBackgroundLoadAfterRelease(t *testing.T) {
	gpu := newFakeOllama(t)
	cfg := newTestConfig([]string{gpu.server.URL}, gpu.server.URL)
	cfg.BackgroundModels = []string{"small-7b"}
	r := New(cfg)

	_, err := r.Announce(context.Background(), "s1", "qwen3:32b")
	require.NoError(t, err)
	r.Release("s1")

	assert.Eventually(t, func() bool {
		for _, m := range gpu.loaded() {
			if m == "small-7b" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond, "background set should load after the delay")
}

func TestBackgroundLoadCancelledByReannounce(t *testing.T) {
	gpu := newFakeOllama(t)
	cfg := newTestConfig([]string{gpu.server.URL}, gpu.server.URL)
	cfg.BackgroundModels = []string{"small-7b"}
	cfg.BackgroundLoadDelay = 50 * time.Millisecond
	r := New(cfg)

	_, err := r.Announce(context.Background(), "s1", "qwen3:32b")
	require.NoError(t, err)
	r.Release("s1")
	_, err = r.Announce(context.Background(), "s2", "qwen3:32b")
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)
	for _, m := range gpu.loaded() {
		assert.NotEqual(t, "small-7b", m, "background load must be cancelled by a new reservation")
	}
}
