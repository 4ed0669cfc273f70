package router

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

// Router owns the backend pool and all routing decisions. One mutex guards
// every piece of backend and reservation state; model load/unload HTTP calls
// run outside the lock, serialized per backend by its load mutex.
type Router struct {
	cfg        *config.RouterConfig
	httpClient *http.Client

	mu   sync.Mutex
	gpus []*Backend
	cpu  *Backend

	// loadMus serializes load/unload per backend name.
	loadMus map[string]*sync.Mutex

	// bgLoadTimer is the pending background-set load after a release.
	// Cancelled if a new reservation arrives in the interim.
	bgLoadTimer *time.Timer

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a router over the configured GPU backends and CPU fallback.
func New(cfg *config.RouterConfig) *Router {
	r := &Router{
		cfg: cfg,
		httpClient: &http.Client{
			// No client-level timeout: streaming responses are long-lived.
			// Liveness comes from upstream token heartbeats.
			Timeout: 0,
		},
		loadMus: make(map[string]*sync.Mutex),
		stopCh:  make(chan struct{}),
	}

	for _, b := range cfg.GPUBackends {
		backend := newBackend(b.Name, b.URL, BackendGPU, b.VRAMGB)
		r.gpus = append(r.gpus, backend)
		r.loadMus[b.Name] = &sync.Mutex{}
		backendHealthy.WithLabelValues(b.Name).Set(1)
	}
	r.cpu = newBackend("cpu", cfg.CPUBackendURL, BackendCPU, 0)
	r.loadMus["cpu"] = &sync.Mutex{}
	backendHealthy.WithLabelValues("cpu").Set(1)

	return r
}

// Start launches the reservation watchdog and the health probe loop.
func (r *Router) Start(ctx context.Context) {
	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		r.runWatchdog(ctx)
	}()
	go func() {
		defer r.wg.Done()
		r.runHealthProbes(ctx)
	}()
}

// Stop terminates background loops. Safe to call multiple times.
func (r *Router) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// PriorityFor resolves the effective priority from the X-Ollama-Priority
// header value (empty = absent) and the per-model default table.
func (r *Router) PriorityFor(model, headerValue string) Priority {
	switch strings.TrimSpace(headerValue) {
	case "0":
		return PriorityCritical
	case "1":
		return PriorityNormal
	}
	if p, ok := r.cfg.ModelPriorities[model]; ok && p == 0 {
		return PriorityCritical
	}
	return PriorityNormal
}

// IsEmbeddingModel reports whether the model belongs to the embedding family
// (which must use the embeddings endpoint for load and unload).
func (r *Router) IsEmbeddingModel(model string) bool {
	for _, prefix := range r.cfg.EmbeddingModelPrefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// Route picks a backend for the given request, preempting and loading models
// as required, and registers a TrackedRequest on the chosen backend.
// Callers must pair every successful Route with a Finish.
func (r *Router) Route(ctx context.Context, apiPath, model string, priority Priority) (*Backend, *TrackedRequest, error) {
	log := slog.With("model", model, "priority", priority.String(), "api_path", apiPath)

	r.mu.Lock()

	// 1. A healthy GPU already holding the model wins, unless it is reserved
	//    by another session and the request is not CRITICAL.
	if b := r.residentGPULocked(model, priority); b != nil {
		tr := r.trackLocked(b, model, apiPath, priority)
		r.mu.Unlock()
		log.Debug("Routing to resident model", "backend", b.Name)
		return b, tr, nil
	}

	if priority == PriorityCritical {
		b := r.pickCriticalGPULocked(model)
		if b == nil {
			// No healthy GPU at all: CRITICAL still runs on CPU if possible.
			if !r.cpu.Healthy {
				r.mu.Unlock()
				return nil, nil, ErrNoBackendAvailable
			}
			tr := r.trackLocked(r.cpu, model, apiPath, priority)
			r.mu.Unlock()
			return r.cpu, tr, nil
		}

		preempted := r.preemptNormalLocked(b)
		b.LastCriticalActivity = time.Now()
		needsLoad := !b.hasModel(model)
		tr := r.trackLocked(b, model, apiPath, priority)
		r.mu.Unlock()

		if preempted > 0 {
			log.Info("Preempted background traffic for critical request",
				"backend", b.Name, "count", preempted)
			r.sleepGrace(ctx)
		}
		if needsLoad {
			tr.State = StateLoading
			if err := r.EnsureModelLoaded(ctx, b, model); err != nil {
				log.Warn("Model load failed for critical request, proceeding anyway",
					"backend", b.Name, "error", err)
			}
		}
		return b, tr, nil
	}

	// NORMAL path.
	// 2. Under an active reservation, background traffic goes straight to
	//    CPU and never contends with the orchestrator.
	if r.reservedBackendLocked() != nil {
		if !r.cpu.Healthy {
			r.mu.Unlock()
			return nil, nil, ErrNoBackendAvailable
		}
		tr := r.trackLocked(r.cpu, model, apiPath, priority)
		r.mu.Unlock()
		log.Debug("Reservation active, routing background request to CPU")
		return r.cpu, tr, nil
	}

	// 3. A GPU with free VRAM for the model, else an idle GPU we can clear.
	vram := r.vramEstimate(model)
	var target *Backend
	var clearFirst bool
	for _, b := range r.healthyGPUsLocked() {
		if b.ReservedBy != "" {
			continue
		}
		if b.loadedVRAM()+vram <= b.VRAMCapacityGB {
			target = b
			break
		}
	}
	if target == nil {
		for _, b := range r.healthyGPUsLocked() {
			if b.ReservedBy == "" && b.idle() {
				target = b
				clearFirst = true
				break
			}
		}
	}
	if target == nil {
		// 4. CPU fallback.
		if !r.cpu.Healthy {
			r.mu.Unlock()
			return nil, nil, ErrNoBackendAvailable
		}
		tr := r.trackLocked(r.cpu, model, apiPath, priority)
		r.mu.Unlock()
		log.Debug("No GPU capacity, routing background request to CPU")
		return r.cpu, tr, nil
	}

	tr := r.trackLocked(target, model, apiPath, priority)
	r.mu.Unlock()

	tr.State = StateLoading
	if clearFirst {
		if err := r.UnloadAll(ctx, target); err != nil {
			slog.Warn("Failed to clear idle backend before load",
				"backend", target.Name, "error", err)
		}
	}
	if err := r.EnsureModelLoaded(ctx, target, model); err != nil {
		log.Warn("Model load failed for background request, falling back to CPU",
			"backend", target.Name, "error", err)
		r.Finish(target, tr, StateFailed)
		if !r.cpuHealthy() {
			return nil, nil, ErrNoBackendAvailable
		}
		r.mu.Lock()
		cpuTr := r.trackLocked(r.cpu, model, apiPath, priority)
		r.mu.Unlock()
		return r.cpu, cpuTr, nil
	}
	return target, tr, nil
}

// Finish records the terminal state of a tracked request and untracks it.
func (r *Router) Finish(b *Backend, tr *TrackedRequest, state RequestState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tr.State = state
	delete(b.Active, tr.ID)
	activeRequests.WithLabelValues(b.Name).Set(float64(b.activeCount()))

	outcome := "completed"
	switch state {
	case StatePreempted:
		outcome = "preempted"
	case StateFailed:
		outcome = "failed"
	}
	requestsTotal.WithLabelValues(tr.Priority.String(), b.Name, outcome).Inc()
}

// MarkUnhealthy demotes a backend after a transport error. The health probe
// loop recovers it on the next successful HEAD.
func (r *Router) MarkUnhealthy(b *Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.Healthy {
		slog.Warn("Backend marked unhealthy", "backend", b.Name, "endpoint", b.Endpoint)
	}
	b.Healthy = false
	backendHealthy.WithLabelValues(b.Name).Set(0)
}

// ObserveCriticalActivity refreshes the reservation idle clock. Called for
// every CRITICAL request that touches the reserved GPU.
func (r *Router) ObserveCriticalActivity(b *Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ReservedBy != "" {
		b.LastCriticalActivity = time.Now()
	}
}

// Backends returns all backends, GPU first.
func (r *Router) Backends() []*Backend {
	out := make([]*Backend, 0, len(r.gpus)+1)
	out = append(out, r.gpus...)
	out = append(out, r.cpu)
	return out
}

// --- Internal helpers (Locked suffix = caller holds r.mu) ---

func (r *Router) residentGPULocked(model string, priority Priority) *Backend {
	for _, b := range r.gpus {
		if !b.Healthy || !b.hasModel(model) {
			continue
		}
		if b.ReservedBy != "" && priority != PriorityCritical {
			continue
		}
		return b
	}
	return nil
}

// pickCriticalGPULocked chooses a GPU for CRITICAL traffic by preference:
// already-has-model, then unreserved, then least-busy.
func (r *Router) pickCriticalGPULocked(model string) *Backend {
	healthy := r.healthyGPUsLocked()
	if len(healthy) == 0 {
		return nil
	}
	sort.SliceStable(healthy, func(i, j int) bool {
		hi, hj := healthy[i].hasModel(model), healthy[j].hasModel(model)
		if hi != hj {
			return hi
		}
		ri, rj := healthy[i].ReservedBy == "", healthy[j].ReservedBy == ""
		if ri != rj {
			return ri
		}
		return healthy[i].activeCount() < healthy[j].activeCount()
	})
	return healthy[0]
}

func (r *Router) healthyGPUsLocked() []*Backend {
	out := make([]*Backend, 0, len(r.gpus))
	for _, b := range r.gpus {
		if b.Healthy {
			out = append(out, b)
		}
	}
	return out
}

func (r *Router) reservedBackendLocked() *Backend {
	for _, b := range r.gpus {
		if b.ReservedBy != "" {
			return b
		}
	}
	return nil
}

// preemptNormalLocked signals every preemptable NORMAL request on the
// backend and returns how many were signalled.
func (r *Router) preemptNormalLocked(b *Backend) int {
	count := 0
	for _, tr := range b.Active {
		if tr.Priority != PriorityNormal {
			continue
		}
		if r.isEmbeddingPath(tr.APIPath) && !r.cfg.PreemptEmbeddings {
			continue
		}
		tr.State = StatePreempted
		tr.Preempt()
		preemptionsTotal.Inc()
		count++
	}
	return count
}

func (r *Router) isEmbeddingPath(apiPath string) bool {
	return apiPath == "/api/embeddings" || apiPath == "/api/embed"
}

func (r *Router) trackLocked(b *Backend, model, apiPath string, priority Priority) *TrackedRequest {
	tr := newTrackedRequest(uuid.New().String(), model, apiPath, priority)
	if b.Kind == BackendGPU {
		tr.State = StateRunningGPU
	} else {
		tr.State = StateRunningCPU
	}
	b.Active[tr.ID] = tr
	activeRequests.WithLabelValues(b.Name).Set(float64(b.activeCount()))
	return tr
}

func (r *Router) vramEstimate(model string) float64 {
	if gb, ok := r.cfg.ModelVRAMGB[model]; ok {
		return gb
	}
	// Unknown models get a conservative default.
	return 8
}

func (r *Router) cpuHealthy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cpu.Healthy
}

// sleepGrace waits the preemption grace period so preempted streams can
// drain before the new request claims the GPU.
func (r *Router) sleepGrace(ctx context.Context) {
	select {
	case <-time.After(r.cfg.PreemptGrace):
	case <-ctx.Done():
	case <-r.stopCh:
	}
}

// runHealthProbes periodically HEAD-probes unhealthy backends and restores
// them on success.
func (r *Router) runHealthProbes(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.probeUnhealthy(ctx)
		}
	}
}

func (r *Router) probeUnhealthy(ctx context.Context) {
	r.mu.Lock()
	var down []*Backend
	for _, b := range r.Backends() {
		if !b.Healthy {
			down = append(down, b)
		}
	}
	r.mu.Unlock()

	for _, b := range down {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, b.Endpoint+"/", nil)
		if err != nil {
			cancel()
			continue
		}
		resp, err := r.httpClient.Do(req)
		cancel()
		if err != nil {
			continue
		}
		_ = resp.Body.Close()
		if resp.StatusCode < 500 {
			r.mu.Lock()
			b.Healthy = true
			// Loaded-model state is stale after an outage; resync lazily.
			b.LoadedModels = make(map[string]float64)
			r.mu.Unlock()
			backendHealthy.WithLabelValues(b.Name).Set(1)
			slog.Info("Backend recovered", "backend", b.Name)
		}
	}
}
