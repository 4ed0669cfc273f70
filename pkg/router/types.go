// Package router implements the priority-aware inference router fronting a
// pool of GPU Ollama backends and one CPU fallback. It enforces model
// residency, preempts lower-priority traffic, and manages the orchestrator
// GPU reservation.
package router

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for routing operations.
var (
	// ErrNoBackendAvailable indicates every backend is unhealthy.
	ErrNoBackendAvailable = errors.New("no_backend_available")

	// ErrPreempted indicates the request was cancelled in favor of
	// higher-priority traffic.
	ErrPreempted = errors.New("preempted")

	// ErrModelLoadFailed indicates a model load call failed on the backend.
	ErrModelLoadFailed = errors.New("model load failed")

	// ErrReservationConflict indicates a release by a non-owning session.
	// Logged and accepted as a no-op.
	ErrReservationConflict = errors.New("reservation conflict")
)

// Priority is the effective request priority. Only two levels exist.
type Priority int

// Priorities. CRITICAL traffic must never wait behind NORMAL work.
const (
	PriorityCritical Priority = 0
	PriorityNormal   Priority = 1
)

// String returns the wire representation of the priority.
func (p Priority) String() string {
	if p == PriorityCritical {
		return "critical"
	}
	return "normal"
}

// BackendKind distinguishes GPU backends from the CPU fallback.
type BackendKind string

// Backend kinds.
const (
	BackendGPU BackendKind = "gpu"
	BackendCPU BackendKind = "cpu"
)

// RequestState tracks a proxied request through its lifecycle.
type RequestState string

// Request states. PREEMPTED is reachable from any running state.
const (
	StateQueued     RequestState = "queued"
	StateLoading    RequestState = "loading"
	StateRunningGPU RequestState = "running_gpu"
	StateRunningCPU RequestState = "running_cpu"
	StatePreempted  RequestState = "preempted"
	StateCompleted  RequestState = "completed"
	StateFailed     RequestState = "failed"
)

// TrackedRequest is one in-flight inference request the router knows about.
type TrackedRequest struct {
	ID        string
	Model     string
	Priority  Priority
	APIPath   string
	State     RequestState
	CreatedAt time.Time

	preemptOnce sync.Once
	preemptCh   chan struct{}
}

func newTrackedRequest(id, model, apiPath string, priority Priority) *TrackedRequest {
	return &TrackedRequest{
		ID:        id,
		Model:     model,
		Priority:  priority,
		APIPath:   apiPath,
		State:     StateQueued,
		CreatedAt: time.Now(),
		preemptCh: make(chan struct{}),
	}
}

// Preempt signals the streaming loop to terminate. Safe to call repeatedly.
func (r *TrackedRequest) Preempt() {
	r.preemptOnce.Do(func() { close(r.preemptCh) })
}

// Preempted returns a channel closed when the request has been preempted.
func (r *TrackedRequest) Preempted() <-chan struct{} {
	return r.preemptCh
}

// Backend is the router's in-memory model of one inference endpoint.
// All mutable fields are guarded by the router mutex.
type Backend struct {
	Name     string
	Endpoint string
	Kind     BackendKind

	// VRAMCapacityGB is zero for the CPU backend.
	VRAMCapacityGB float64

	// LoadedModels maps model name to its VRAM estimate in GB. The sum may
	// intentionally exceed capacity after a CRITICAL load (spill to host
	// memory degrades quality, it is not an error).
	LoadedModels map[string]float64

	// Active holds in-flight requests by request ID.
	Active map[string]*TrackedRequest

	// ReservedBy is the session holding the orchestrator reservation, if any.
	ReservedBy string
	ReservedAt time.Time

	// LastCriticalActivity feeds the reservation idle timeout.
	LastCriticalActivity time.Time

	Healthy bool
}

func newBackend(name, endpoint string, kind BackendKind, vramGB float64) *Backend {
	return &Backend{
		Name:           name,
		Endpoint:       endpoint,
		Kind:           kind,
		VRAMCapacityGB: vramGB,
		LoadedModels:   make(map[string]float64),
		Active:         make(map[string]*TrackedRequest),
		Healthy:        true,
	}
}

// loadedVRAM returns the summed VRAM estimate of resident models.
func (b *Backend) loadedVRAM() float64 {
	var total float64
	for _, gb := range b.LoadedModels {
		total += gb
	}
	return total
}

// hasModel reports whether the model is resident on this backend.
func (b *Backend) hasModel(model string) bool {
	_, ok := b.LoadedModels[model]
	return ok
}

// activeCount returns the number of in-flight requests.
func (b *Backend) activeCount() int {
	return len(b.Active)
}

// idle reports whether the backend has no in-flight requests.
func (b *Backend) idle() bool {
	return len(b.Active) == 0
}

// BackendStatus is the externally visible snapshot of one backend.
type BackendStatus struct {
	Name           string             `json:"name"`
	Endpoint       string             `json:"endpoint"`
	Kind           BackendKind        `json:"kind"`
	Healthy        bool               `json:"healthy"`
	VRAMCapacityGB float64            `json:"vram_capacity_gb,omitempty"`
	LoadedModels   map[string]float64 `json:"loaded_models"`
	ActiveRequests []RequestStatus    `json:"active_requests"`
	ReservedBy     string             `json:"reserved_by,omitempty"`
	ReservedAt     *time.Time         `json:"reserved_at,omitempty"`
}

// RequestStatus is the externally visible snapshot of one tracked request.
type RequestStatus struct {
	ID        string       `json:"id"`
	Model     string       `json:"model"`
	Priority  string       `json:"priority"`
	APIPath   string       `json:"api_path"`
	State     RequestState `json:"state"`
	AgeMillis int64        `json:"age_ms"`
}
