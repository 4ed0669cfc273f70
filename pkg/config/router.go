package config

import (
	"fmt"
	"time"
)

// GPUBackendConfig describes one GPU inference backend.
type GPUBackendConfig struct {
	Name   string  `yaml:"name"`
	URL    string  `yaml:"url"`
	VRAMGB float64 `yaml:"vram_gb"`
}

// RouterConfig contains the inference router configuration.
type RouterConfig struct {
	// GPUBackends is the pool of GPU-backed Ollama endpoints.
	GPUBackends []GPUBackendConfig `yaml:"gpu_backends"`

	// CPUBackendURL is the CPU fallback Ollama endpoint.
	CPUBackendURL string `yaml:"cpu_backend_url"`

	// OrchestratorModel is the model loaded when the orchestrator reserves a GPU.
	OrchestratorModel string `yaml:"orchestrator_model"`

	// OrchestratorReservationTimeout is the absolute lifetime of a reservation.
	OrchestratorReservationTimeout time.Duration `yaml:"orchestrator_reservation_timeout"`

	// OrchestratorIdleTimeout releases a reservation with no CRITICAL traffic.
	OrchestratorIdleTimeout time.Duration `yaml:"orchestrator_idle_timeout"`

	// ModelLoadTimeout bounds a single model load call.
	ModelLoadTimeout time.Duration `yaml:"model_load_timeout"`

	// BackgroundLoadDelay is how long a released GPU stays empty before the
	// background model set is loaded back (cancellable if re-reserved).
	BackgroundLoadDelay time.Duration `yaml:"background_load_delay"`

	// DefaultKeepAlive is passed to backends on model load (e.g. "10m").
	DefaultKeepAlive string `yaml:"default_keep_alive"`

	// PreemptEmbeddings allows preempting in-flight embedding requests.
	// Off by default: embeddings are short, single-shot calls.
	PreemptEmbeddings bool `yaml:"preempt_embeddings"`

	// PreemptGrace is waited after signalling preemption before the new
	// request claims the freed GPU.
	PreemptGrace time.Duration `yaml:"preempt_grace"`

	// UnloadDrainTimeout is the max wait for active requests to drain before
	// an unload proceeds anyway.
	UnloadDrainTimeout time.Duration `yaml:"unload_drain_timeout"`

	// BigModelMarker marks models that get a backend to themselves on load.
	BigModelMarker string `yaml:"big_model_marker"`

	// ModelVRAMGB estimates resident VRAM per model name.
	ModelVRAMGB map[string]float64 `yaml:"model_vram_gb"`

	// ModelPriorities maps model name to default priority (0=critical, 1=normal)
	// used when the X-Ollama-Priority header is absent.
	ModelPriorities map[string]int `yaml:"model_priorities"`

	// BackgroundModels are loaded onto a GPU after a reservation clears.
	BackgroundModels []string `yaml:"background_models"`

	// EmbeddingModelPrefixes identify embedding-family models, which must use
	// the embeddings endpoint for load/unload.
	EmbeddingModelPrefixes []string `yaml:"embedding_model_prefixes"`

	// HealthCheckInterval is the probe interval for unhealthy backends.
	HealthCheckInterval time.Duration `yaml:"health_check_interval"`

	// WatchdogInterval is how often reservation timeouts are enforced.
	WatchdogInterval time.Duration `yaml:"watchdog_interval"`
}

// DefaultRouterConfig returns the built-in router defaults.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		CPUBackendURL:                  "http://localhost:11434",
		OrchestratorModel:              "qwen3:32b",
		OrchestratorReservationTimeout: 30 * time.Minute,
		OrchestratorIdleTimeout:        5 * time.Minute,
		ModelLoadTimeout:               120 * time.Second,
		BackgroundLoadDelay:            5 * time.Second,
		DefaultKeepAlive:               "10m",
		PreemptEmbeddings:              false,
		PreemptGrace:                   2 * time.Second,
		UnloadDrainTimeout:             60 * time.Second,
		BigModelMarker:                 "30b",
		ModelVRAMGB:                    map[string]float64{},
		ModelPriorities:                map[string]int{},
		EmbeddingModelPrefixes:         []string{"nomic-embed", "mxbai-embed", "bge-", "snowflake-arctic-embed"},
		HealthCheckInterval:            15 * time.Second,
		WatchdogInterval:               30 * time.Second,
	}
}

func (c *RouterConfig) validate() []error {
	var errs []error
	if c.CPUBackendURL == "" {
		errs = append(errs, fmt.Errorf("router.cpu_backend_url is required"))
	}
	seen := map[string]bool{}
	for i, b := range c.GPUBackends {
		if b.URL == "" {
			errs = append(errs, fmt.Errorf("router.gpu_backends[%d].url is required", i))
		}
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("router.gpu_backends[%d].name is required", i))
		}
		if seen[b.Name] {
			errs = append(errs, fmt.Errorf("router.gpu_backends[%d].name %q is duplicated", i, b.Name))
		}
		seen[b.Name] = true
		if b.VRAMGB <= 0 {
			errs = append(errs, fmt.Errorf("router.gpu_backends[%d].vram_gb must be positive", i))
		}
	}
	if c.OrchestratorIdleTimeout > c.OrchestratorReservationTimeout {
		errs = append(errs, fmt.Errorf("router.orchestrator_idle_timeout exceeds the absolute reservation timeout"))
	}
	return errs
}
