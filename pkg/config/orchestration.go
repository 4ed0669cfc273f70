package config

import (
	"fmt"
	"time"
)

// OrchestrationConfig controls the chat and background agentic loops.
type OrchestrationConfig struct {
	// MaxIterationsChat bounds the chat tool loop.
	MaxIterationsChat int `yaml:"max_iterations_chat"`

	// MaxIterationsBackground bounds the background tool loop.
	MaxIterationsBackground int `yaml:"max_iterations_background"`

	// MaxEscalationRetries bounds cloud-escalation retries in background runs.
	MaxEscalationRetries int `yaml:"max_escalation_retries"`

	// CompressThreshold triggers history compression once this many
	// unsummarized messages precede the recent window.
	CompressThreshold int `yaml:"compress_threshold"`

	// StreamChunkChars is the size of final-answer token chunks.
	StreamChunkChars int `yaml:"stream_chunk_chars"`

	// StreamChunkDelay is the inter-chunk delay while streaming the answer.
	StreamChunkDelay time.Duration `yaml:"stream_chunk_delay"`

	// MaxToolResultChars clamps tool results fed back to the LLM.
	MaxToolResultChars int `yaml:"max_tool_result_chars"`

	// ToolExecutionTimeout bounds a single tool call.
	ToolExecutionTimeout time.Duration `yaml:"tool_execution_timeout"`

	// RecentMessageLimit is the max recent messages fetched for context.
	RecentMessageLimit int `yaml:"recent_message_limit"`

	// SummaryLimit is the max summary blocks fetched for context.
	SummaryLimit int `yaml:"summary_limit"`

	// SystemReserveTokens is deducted from the context window for the
	// system prompt.
	SystemReserveTokens int `yaml:"system_reserve_tokens"`

	// ResponseReserveTokens is deducted for the model's answer.
	ResponseReserveTokens int `yaml:"response_reserve_tokens"`

	// MinAnswerChars below which a background answer counts as a quality
	// failure (escalation signal).
	MinAnswerChars int `yaml:"min_answer_chars"`

	// ToolParseFailureRatio above which a background run counts as a
	// quality failure (escalation signal).
	ToolParseFailureRatio float64 `yaml:"tool_parse_failure_ratio"`
}

// DefaultOrchestrationConfig returns the built-in orchestration defaults.
func DefaultOrchestrationConfig() *OrchestrationConfig {
	return &OrchestrationConfig{
		MaxIterationsChat:       15,
		MaxIterationsBackground: 15,
		MaxEscalationRetries:    2,
		CompressThreshold:       20,
		StreamChunkChars:        40,
		StreamChunkDelay:        15 * time.Millisecond,
		MaxToolResultChars:      8000,
		ToolExecutionTimeout:    45 * time.Second,
		RecentMessageLimit:      20,
		SummaryLimit:            15,
		SystemReserveTokens:     2000,
		ResponseReserveTokens:   6000,
		MinAnswerChars:          40,
		ToolParseFailureRatio:   0.5,
	}
}

func (c *OrchestrationConfig) validate() []error {
	var errs []error
	if c.MaxIterationsChat <= 0 {
		errs = append(errs, fmt.Errorf("orchestration.max_iterations_chat must be positive"))
	}
	if c.MaxIterationsBackground <= 0 {
		errs = append(errs, fmt.Errorf("orchestration.max_iterations_background must be positive"))
	}
	if c.StreamChunkChars <= 0 {
		errs = append(errs, fmt.Errorf("orchestration.stream_chunk_chars must be positive"))
	}
	if c.MaxToolResultChars < 100 {
		errs = append(errs, fmt.Errorf("orchestration.max_tool_result_chars must be at least 100"))
	}
	return errs
}

// AgentPoolConfig controls the coding-agent concurrency limiter.
type AgentPoolConfig struct {
	// MaxConcurrent is the per-agent-type slot limit.
	MaxConcurrent map[string]int `yaml:"max_concurrent"`

	// WaitTimeout bounds how long an acquire blocks for a slot.
	WaitTimeout time.Duration `yaml:"wait_timeout"`

	// StuckJobTimeoutMultiplier marks a job stuck once its runtime exceeds
	// timeout × multiplier.
	StuckJobTimeoutMultiplier float64 `yaml:"stuck_job_timeout_multiplier"`

	// AgentTimeouts is the per-agent-type job timeout.
	AgentTimeouts map[string]time.Duration `yaml:"agent_timeouts"`
}

// DefaultAgentPoolConfig returns the built-in agent pool defaults.
func DefaultAgentPoolConfig() *AgentPoolConfig {
	return &AgentPoolConfig{
		MaxConcurrent: map[string]int{
			"aider":     2,
			"openhands": 1,
			"claude":    2,
			"junie":     1,
		},
		WaitTimeout:               10 * time.Minute,
		StuckJobTimeoutMultiplier: 1.5,
		AgentTimeouts: map[string]time.Duration{
			"aider":     20 * time.Minute,
			"openhands": 30 * time.Minute,
			"claude":    20 * time.Minute,
			"junie":     30 * time.Minute,
		},
	}
}

func (c *AgentPoolConfig) validate() []error {
	var errs []error
	for agentType, limit := range c.MaxConcurrent {
		if limit <= 0 {
			errs = append(errs, fmt.Errorf("agent_pool.max_concurrent[%s] must be positive", agentType))
		}
	}
	if c.StuckJobTimeoutMultiplier < 1 {
		errs = append(errs, fmt.Errorf("agent_pool.stuck_job_timeout_multiplier must be at least 1"))
	}
	return errs
}
