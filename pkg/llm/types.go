// Package llm provides the LLM client used by the orchestration engine and
// the memory agent. Local tiers go through the inference router so priority
// routing and preemption apply; cloud tiers call provider APIs directly.
package llm

import (
	"errors"

	"github.com/jervis-ai/jervis-core/pkg/models"
)

// Sentinel errors for LLM calls.
var (
	// ErrHeartbeatDead indicates the stream produced no token within the
	// heartbeat window and was aborted.
	ErrHeartbeatDead = errors.New("llm stream heartbeat dead")

	// ErrPreempted indicates the router cut the stream for higher-priority
	// traffic. Retryable.
	ErrPreempted = errors.New("llm request preempted")

	// ErrNoCloudTier indicates escalation ran out of allowed tiers.
	ErrNoCloudTier = errors.New("no further tier available")
)

// ToolDef describes one tool offered to the model, in Ollama/OpenAI function
// calling shape.
type ToolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Options tunes a single chat call.
type Options struct {
	// Priority 0 routes as CRITICAL through the router; 1 as NORMAL.
	Priority int

	// Tools offered to the model. Empty disables function calling.
	Tools []ToolDef

	// Temperature, when non-nil, overrides the model default.
	Temperature *float64

	// JSONMode asks the model for a single JSON object response.
	JSONMode bool
}

// Response is the accumulated result of one chat call.
type Response struct {
	Content   string
	ToolCalls []models.ToolCall
	Model     string

	// EvalTokens is the completion token count reported by the backend,
	// zero when the provider does not report it.
	EvalTokens int
}
