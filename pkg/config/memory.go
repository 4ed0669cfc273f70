package config

import (
	"fmt"
	"time"
)

// MemoryConfig controls the Local Quick Memory and the Memory Agent.
type MemoryConfig struct {
	// MaxWarmEntries bounds the per-client affair hot map.
	MaxWarmEntries int `yaml:"max_warm_entries"`

	// WarmTTL evicts hot-map entries untouched for this long.
	WarmTTL time.Duration `yaml:"warm_ttl"`

	// WriteBufferMax bounds the pending-write buffer. Oldest NORMAL entries
	// are evicted first; CRITICAL entries are never evicted before flush.
	WriteBufferMax int `yaml:"write_buffer_max"`

	// SearchCacheTTL expires cached search results.
	SearchCacheTTL time.Duration `yaml:"search_cache_ttl"`

	// ContextSwitchConfidenceThreshold gates LLM context-switch decisions.
	ContextSwitchConfidenceThreshold float64 `yaml:"context_switch_confidence_threshold"`

	// UseProceduralMemory enables procedural memory hints in composed context.
	UseProceduralMemory bool `yaml:"use_procedural_memory"`
}

// DefaultMemoryConfig returns the built-in memory defaults.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		MaxWarmEntries:                   64,
		WarmTTL:                          30 * time.Minute,
		WriteBufferMax:                   256,
		SearchCacheTTL:                   5 * time.Minute,
		ContextSwitchConfidenceThreshold: 0.7,
		UseProceduralMemory:              false,
	}
}

func (c *MemoryConfig) validate() []error {
	var errs []error
	if c.WriteBufferMax <= 0 {
		errs = append(errs, fmt.Errorf("memory.write_buffer_max must be positive"))
	}
	if c.ContextSwitchConfidenceThreshold < 0 || c.ContextSwitchConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("memory.context_switch_confidence_threshold must be in [0,1]"))
	}
	return errs
}

// ExtractionConfig controls the persistent extraction queue and its workers.
type ExtractionConfig struct {
	// WorkerCount is the number of extraction worker goroutines.
	WorkerCount int `yaml:"worker_count"`

	// MaxAttempts before a task transitions to FAILED (terminal, audited).
	MaxAttempts int `yaml:"max_attempts"`

	// StaleThreshold returns IN_PROGRESS tasks older than this to PENDING
	// at startup.
	StaleThreshold time.Duration `yaml:"stale_threshold"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout bounds one extraction execution.
	TaskTimeout time.Duration `yaml:"task_timeout"`
}

// DefaultExtractionConfig returns the built-in extraction queue defaults.
func DefaultExtractionConfig() *ExtractionConfig {
	return &ExtractionConfig{
		WorkerCount:        2,
		MaxAttempts:        3,
		StaleThreshold:     30 * time.Minute,
		PollInterval:       2 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
		TaskTimeout:        5 * time.Minute,
	}
}

func (c *ExtractionConfig) validate() []error {
	var errs []error
	if c.WorkerCount < 0 {
		errs = append(errs, fmt.Errorf("extraction.worker_count must not be negative"))
	}
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("extraction.max_attempts must be positive"))
	}
	return errs
}

// KBConfig points at the external knowledge base service.
type KBConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries     uint64        `yaml:"max_retries"`
}

// DefaultKBConfig returns the built-in KB client defaults.
func DefaultKBConfig() *KBConfig {
	return &KBConfig{
		BaseURL:        "http://localhost:8200",
		RequestTimeout: 30 * time.Second,
		MaxRetries:     3,
	}
}

// CoordinatorConfig points at the external coordinator service.
type CoordinatorConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultCoordinatorConfig returns the built-in coordinator client defaults.
func DefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		BaseURL:        "http://localhost:8300",
		RequestTimeout: 10 * time.Second,
	}
}

// KubernetesConfig controls coding-agent Job dispatch.
type KubernetesConfig struct {
	// Namespace where agent Jobs are created.
	Namespace string `yaml:"namespace"`

	// WorkspacePVC is the PersistentVolumeClaim mounted into agent pods.
	WorkspacePVC string `yaml:"workspace_pvc"`

	// WorkspaceMountPath is the well-known mount path inside the pod.
	WorkspaceMountPath string `yaml:"workspace_mount_path"`

	// AgentImages maps agent type to container image.
	AgentImages map[string]string `yaml:"agent_images"`

	// TTLSecondsAfterFinished cleans up finished Jobs.
	TTLSecondsAfterFinished int32 `yaml:"ttl_seconds_after_finished"`

	// PollInterval is how often Job status is polled.
	PollInterval time.Duration `yaml:"poll_interval"`
}

// DefaultKubernetesConfig returns the built-in Job dispatch defaults.
func DefaultKubernetesConfig() *KubernetesConfig {
	return &KubernetesConfig{
		Namespace:          "jervis-agents",
		WorkspacePVC:       "jervis-workspaces",
		WorkspaceMountPath: "/workspace",
		AgentImages: map[string]string{
			"aider":     "ghcr.io/jervis-ai/agent-aider:latest",
			"openhands": "ghcr.io/jervis-ai/agent-openhands:latest",
			"claude":    "ghcr.io/jervis-ai/agent-claude:latest",
			"junie":     "ghcr.io/jervis-ai/agent-junie:latest",
		},
		TTLSecondsAfterFinished: 600,
		PollInterval:            10 * time.Second,
	}
}
