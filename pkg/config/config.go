// Package config loads and validates the jervis.yaml configuration file.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// JervisYAMLConfig represents the complete jervis.yaml file structure.
type JervisYAMLConfig struct {
	Router        *RouterConfig        `yaml:"router"`
	LLM           *LLMConfig           `yaml:"llm"`
	Orchestration *OrchestrationConfig `yaml:"orchestration"`
	AgentPool     *AgentPoolConfig     `yaml:"agent_pool"`
	Memory        *MemoryConfig        `yaml:"memory"`
	Extraction    *ExtractionConfig    `yaml:"extraction"`
	KB            *KBConfig            `yaml:"kb"`
	Coordinator   *CoordinatorConfig   `yaml:"coordinator"`
	Kubernetes    *KubernetesConfig    `yaml:"kubernetes"`
	Retention     *RetentionConfig     `yaml:"retention"`
}

// Config is the fully resolved runtime configuration.
type Config struct {
	configDir string

	Router        *RouterConfig
	LLM           *LLMConfig
	Orchestration *OrchestrationConfig
	AgentPool     *AgentPoolConfig
	Memory        *MemoryConfig
	Extraction    *ExtractionConfig
	KB            *KBConfig
	Coordinator   *CoordinatorConfig
	Kubernetes    *KubernetesConfig
	Retention     *RetentionConfig
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read jervis.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user config over built-in defaults
//  5. Validate all sections
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"gpu_backends", len(cfg.Router.GPUBackends),
		"llm_tiers", len(cfg.LLM.Tiers),
		"extraction_workers", cfg.Extraction.WorkerCount)

	return cfg, nil
}

// load reads jervis.yaml, expands env vars, and merges user values over the
// built-in defaults. A missing file yields the defaults unchanged.
func load(configDir string) (*Config, error) {
	user := &JervisYAMLConfig{}

	path := filepath.Join(configDir, "jervis.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Warn("jervis.yaml not found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, user); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg := &Config{
		configDir:     configDir,
		Router:        DefaultRouterConfig(),
		LLM:           DefaultLLMConfig(),
		Orchestration: DefaultOrchestrationConfig(),
		AgentPool:     DefaultAgentPoolConfig(),
		Memory:        DefaultMemoryConfig(),
		Extraction:    DefaultExtractionConfig(),
		KB:            DefaultKBConfig(),
		Coordinator:   DefaultCoordinatorConfig(),
		Kubernetes:    DefaultKubernetesConfig(),
		Retention:     DefaultRetentionConfig(),
	}

	// Merge user-provided sections into defaults (non-zero values override).
	sections := []struct {
		name string
		dst  interface{}
		src  interface{}
	}{
		{"router", cfg.Router, user.Router},
		{"llm", cfg.LLM, user.LLM},
		{"orchestration", cfg.Orchestration, user.Orchestration},
		{"agent_pool", cfg.AgentPool, user.AgentPool},
		{"memory", cfg.Memory, user.Memory},
		{"extraction", cfg.Extraction, user.Extraction},
		{"kb", cfg.KB, user.KB},
		{"coordinator", cfg.Coordinator, user.Coordinator},
		{"kubernetes", cfg.Kubernetes, user.Kubernetes},
		{"retention", cfg.Retention, user.Retention},
	}
	for _, s := range sections {
		if isNilSection(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

// isNilSection reports whether a typed-nil section pointer was provided.
func isNilSection(v interface{}) bool {
	switch s := v.(type) {
	case *RouterConfig:
		return s == nil
	case *LLMConfig:
		return s == nil
	case *OrchestrationConfig:
		return s == nil
	case *AgentPoolConfig:
		return s == nil
	case *MemoryConfig:
		return s == nil
	case *ExtractionConfig:
		return s == nil
	case *KBConfig:
		return s == nil
	case *CoordinatorConfig:
		return s == nil
	case *KubernetesConfig:
		return s == nil
	case *RetentionConfig:
		return s == nil
	}
	return v == nil
}

// validate performs comprehensive validation on loaded configuration.
// All errors are collected before returning so misconfigurations surface
// in a single pass.
func (c *Config) validate() error {
	var errs []error

	errs = append(errs, c.Router.validate()...)
	errs = append(errs, c.LLM.validate()...)
	errs = append(errs, c.Orchestration.validate()...)
	errs = append(errs, c.AgentPool.validate()...)
	errs = append(errs, c.Memory.validate()...)
	errs = append(errs, c.Extraction.validate()...)
	errs = append(errs, c.Retention.validate()...)

	if len(errs) == 0 {
		return nil
	}
	return NewValidationErrors(errs)
}
