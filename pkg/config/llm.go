package config

import (
	"fmt"
	"time"
)

// LLMTierConfig describes one model tier the orchestration engine can select.
type LLMTierConfig struct {
	// Model is the model name sent to the router (local tiers) or the cloud
	// provider model identifier (cloud tiers).
	Model string `yaml:"model"`

	// Provider is "local", "anthropic", "openai", or "gemini".
	Provider string `yaml:"provider"`

	// ContextTokens is the model's total context window.
	ContextTokens int `yaml:"context_tokens"`
}

// LLMConfig contains LLM client and tier-selection configuration.
type LLMConfig struct {
	// RouterURL is the base URL of the inference router (local tiers go
	// through it so priority routing and preemption apply).
	RouterURL string `yaml:"router_url"`

	// Tiers is ordered cheapest-first; escalation walks it upward.
	Tiers []LLMTierConfig `yaml:"tiers"`

	// HeartbeatDead aborts a stream with no token for this long.
	HeartbeatDead time.Duration `yaml:"heartbeat_dead"`

	// MaxLocalConcurrent caps concurrent local LLM calls.
	MaxLocalConcurrent int64 `yaml:"max_local_concurrent"`

	// MaxCloudConcurrent caps concurrent cloud LLM calls.
	MaxCloudConcurrent int64 `yaml:"max_cloud_concurrent"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		RouterURL: "http://localhost:11435",
		Tiers: []LLMTierConfig{
			{Model: "qwen3:8b", Provider: "local", ContextTokens: 32768},
			{Model: "qwen3:32b", Provider: "local", ContextTokens: 32768},
			{Model: "claude-sonnet-4-5", Provider: "anthropic", ContextTokens: 200000},
		},
		HeartbeatDead:      300 * time.Second,
		MaxLocalConcurrent: 4,
		MaxCloudConcurrent: 2,
	}
}

// LocalTierCount returns the number of local tiers (always at the front).
func (c *LLMConfig) LocalTierCount() int {
	n := 0
	for _, t := range c.Tiers {
		if t.Provider == "local" {
			n++
		}
	}
	return n
}

func (c *LLMConfig) validate() []error {
	var errs []error
	if c.RouterURL == "" {
		errs = append(errs, fmt.Errorf("llm.router_url is required"))
	}
	if len(c.Tiers) == 0 {
		errs = append(errs, fmt.Errorf("llm.tiers must not be empty"))
	}
	for i, t := range c.Tiers {
		switch t.Provider {
		case "local", "anthropic", "openai", "gemini":
		default:
			errs = append(errs, fmt.Errorf("llm.tiers[%d].provider %q is not supported", i, t.Provider))
		}
		if t.Model == "" {
			errs = append(errs, fmt.Errorf("llm.tiers[%d].model is required", i))
		}
	}
	return errs
}
