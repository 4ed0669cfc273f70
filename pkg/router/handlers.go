package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the Ollama-compatible surface and the router admin
// endpoints onto the gin engine.
func (r *Router) RegisterRoutes(engine *gin.Engine) {
	// Ollama clients probe liveness with HEAD/GET on the root.
	engine.HEAD("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Ollama is running") })

	engine.POST("/api/generate", r.handleInference)
	engine.POST("/api/chat", r.handleInference)
	engine.POST("/api/embeddings", r.handleInference)
	engine.POST("/api/embed", r.handleInference)

	engine.GET("/api/tags", r.handleTags)
	engine.GET("/api/ps", r.handlePS)
	engine.POST("/api/show", r.handleFirstSuccess("/api/show"))
	engine.POST("/api/pull", r.handleFirstSuccess("/api/pull"))
	engine.DELETE("/api/delete", r.handleDelete)

	engine.GET("/router/health", r.handleHealth)
	engine.GET("/router/status", r.handleStatus)
	engine.GET("/router/metrics", gin.WrapH(
		promhttp.HandlerFor(MetricsRegistry(), promhttp.HandlerOpts{})))
}

// handleInference is the shared entry point for generate, chat and both
// embedding endpoints.
func (r *Router) handleInference(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	var probe struct {
		Model string `json:"model"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model is required"})
		return
	}

	apiPath := c.Request.URL.Path
	priority := r.PriorityFor(probe.Model, c.GetHeader("X-Ollama-Priority"))

	backend, tr, err := r.Route(c.Request.Context(), apiPath, probe.Model, priority)
	if err != nil {
		if errors.Is(err, ErrNoBackendAvailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no_backend_available"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if priority == PriorityCritical {
		r.ObserveCriticalActivity(backend)
	}

	err = r.Proxy(c.Request.Context(), c.Writer, backend, tr, apiPath, body, c.Request.Header)
	switch {
	case errors.Is(err, ErrPreempted):
		r.Finish(backend, tr, StatePreempted)
	case err != nil:
		r.Finish(backend, tr, StateFailed)
		// Headers may already be out; only report if the response is untouched.
		if !c.Writer.Written() {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
	default:
		r.Finish(backend, tr, StateCompleted)
	}
}

func (r *Router) handleTags(c *gin.Context) {
	body, err := r.AggregateTags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (r *Router) handlePS(c *gin.Context) {
	body, err := r.AggregatePS(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (r *Router) handleFirstSuccess(apiPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		respBody, status, err := r.FirstSuccess(c.Request.Context(), apiPath, body)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.Data(status, "application/json", respBody)
	}
}

func (r *Router) handleDelete(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if err := r.FanOutDelete(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (r *Router) handleHealth(c *gin.Context) {
	type backendHealth struct {
		Name    string `json:"name"`
		Healthy bool   `json:"healthy"`
	}

	r.mu.Lock()
	gpus := make([]backendHealth, 0, len(r.gpus))
	healthyCount := 0
	for _, b := range r.gpus {
		gpus = append(gpus, backendHealth{Name: b.Name, Healthy: b.Healthy})
		if b.Healthy {
			healthyCount++
		}
	}
	cpu := backendHealth{Name: r.cpu.Name, Healthy: r.cpu.Healthy}
	reserved := r.reservedBackendLocked() != nil
	r.mu.Unlock()

	total := len(gpus)
	if cpu.Healthy {
		healthyCount++
	}
	total++

	status := "healthy"
	code := http.StatusOK
	switch {
	case healthyCount == 0:
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	case healthyCount < total:
		status = "degraded"
	}

	c.JSON(code, gin.H{
		"status":                status,
		"gpu_backends":          gpus,
		"cpu_backend":           cpu,
		"orchestrator_reserved": reserved,
	})
}

// handleStatus returns the full backend snapshot: health, loaded models,
// active requests and the current reservation.
func (r *Router) handleStatus(c *gin.Context) {
	now := time.Now()
	r.mu.Lock()
	statuses := make([]BackendStatus, 0, len(r.gpus)+1)
	for _, b := range r.Backends() {
		s := BackendStatus{
			Name:           b.Name,
			Endpoint:       b.Endpoint,
			Kind:           b.Kind,
			Healthy:        b.Healthy,
			VRAMCapacityGB: b.VRAMCapacityGB,
			LoadedModels:   make(map[string]float64, len(b.LoadedModels)),
			ActiveRequests: make([]RequestStatus, 0, len(b.Active)),
		}
		for m, gb := range b.LoadedModels {
			s.LoadedModels[m] = gb
		}
		for _, tr := range b.Active {
			s.ActiveRequests = append(s.ActiveRequests, RequestStatus{
				ID:        tr.ID,
				Model:     tr.Model,
				Priority:  tr.Priority.String(),
				APIPath:   tr.APIPath,
				State:     tr.State,
				AgeMillis: now.Sub(tr.CreatedAt).Milliseconds(),
			})
		}
		if b.ReservedBy != "" {
			s.ReservedBy = b.ReservedBy
			at := b.ReservedAt
			s.ReservedAt = &at
		}
		statuses = append(statuses, s)
	}
	r.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"backends": statuses})
}
