package orchestration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/masking"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// stopRepeatingPrompt is injected when the model emits the same tool-call
// signature twice in a row. The repeated call is never executed again.
const stopRepeatingPrompt = "STOP - you are repeating the same tool call with the same arguments. Do not call any more tools. Answer the user directly with what you already know."

// Loop drives the shared agentic iteration used by both the chat and the
// background handlers.
type Loop struct {
	llm    ChatLLM
	tools  *Registry
	tokens *llm.TokenCounter
	cfg    *config.OrchestrationConfig
}

// NewLoop creates an agentic loop.
func NewLoop(chatLLM ChatLLM, tools *Registry, tokens *llm.TokenCounter, cfg *config.OrchestrationConfig) *Loop {
	return &Loop{llm: chatLLM, tools: tools, tokens: tokens, cfg: cfg}
}

// LoopInput parameterizes one run.
type LoopInput struct {
	Messages      []models.ChatTurn
	Tier          int
	Background    bool
	MaxIterations int

	// Rules gate cloud tiers during budget-driven tier selection.
	// Foreground chat passes permissive rules; background passes the
	// project's.
	Rules models.ProjectRules

	// Tools overrides the loop's registry for this run, letting handlers
	// scope memory tools to the request's client.
	Tools *Registry

	// Emit receives stream events; nil suppresses streaming.
	Emit func(models.StreamEvent)
}

// LoopOutcome is the result of one run.
type LoopOutcome struct {
	FinalAnswer       string
	Messages          []models.ChatTurn
	Iterations        int
	HitMaxIterations  bool
	Interrupted       bool
	AskUser           *models.InterruptRequest
	ToolCalls         int
	ToolParseFailures int
	ToolOutputs       []string
	Tier              int
}

// Run iterates LLM calls and tool executions until the model produces a
// plain answer, the iteration budget runs out, the caller cancels, or an
// ask_user call suspends the run.
func (l *Loop) Run(ctx context.Context, in LoopInput) (*LoopOutcome, error) {
	out := &LoopOutcome{Messages: in.Messages, Tier: in.Tier}
	emit := in.Emit
	if emit == nil {
		emit = func(models.StreamEvent) {}
	}
	tools := l.tools
	if in.Tools != nil {
		tools = in.Tools
	}
	schemas := tools.Schemas(in.Background)
	priority := 0
	if in.Background {
		priority = 1
	}

	prevSig := ""

	for i := 0; i < in.MaxIterations; i++ {
		if ctx.Err() != nil {
			out.Interrupted = true
			return out, nil
		}
		out.Iterations = i + 1

		tier := l.chooseTier(out.Messages, schemas, in.Tier, in.Rules)
		out.Tier = tier
		resp, err := l.llm.Chat(ctx, tier, out.Messages, llm.Options{
			Priority: priority,
			Tools:    schemas,
		})
		if err != nil {
			if ctx.Err() != nil {
				out.Interrupted = true
				return out, nil
			}
			return out, fmt.Errorf("llm call failed at iteration %d: %w", i+1, err)
		}

		calls, failures := parseToolCalls(resp)
		out.ToolParseFailures += failures

		if len(calls) == 0 {
			out.FinalAnswer = resp.Content
			return out, nil
		}

		sig := callSignature(calls)
		if sig == prevSig {
			slog.Warn("Tool loop detected, forcing textual answer", "signature", sig)
			out.Messages = append(out.Messages, models.ChatTurn{
				Role: models.RoleSystem, Content: stopRepeatingPrompt,
			})
			return l.conclude(ctx, out, tier, priority)
		}
		prevSig = sig

		out.Messages = append(out.Messages, models.ChatTurn{
			Role:      models.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: calls,
		})

		for _, call := range calls {
			if call.Name == askUserToolName && !in.Background {
				out.AskUser = askUserInterrupt(call)
				return out, nil
			}

			emit(models.StreamEvent{Type: models.StreamEventThinking, Content: tools.Thinking(call.Name)})
			emit(models.StreamEvent{
				Type:    models.StreamEventToolCall,
				Content: call.Name,
				Metadata: map[string]interface{}{
					"tool": call.Name,
					"args": json.RawMessage(call.Arguments),
				},
			})

			out.ToolCalls++
			result, err := tools.Execute(ctx, call, l.cfg.ToolExecutionTimeout)
			if err != nil {
				result = fmt.Sprintf("error: %v", err)
			}
			result = masking.Apply(result)
			result = truncateResult(result, l.cfg.MaxToolResultChars)
			out.ToolOutputs = append(out.ToolOutputs, result)

			out.Messages = append(out.Messages, models.ChatTurn{
				Role:       models.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
			emit(models.StreamEvent{
				Type:     models.StreamEventToolResult,
				Content:  result,
				Metadata: map[string]interface{}{"tool": call.Name},
			})

			if call.Name == switchContextToolName {
				emit(scopeChangeEvent(call, result))
			}
		}
	}

	out.HitMaxIterations = true
	return l.conclude(ctx, out, out.Tier, priority)
}

// conclude forces one tool-free LLM call to get a final textual answer.
func (l *Loop) conclude(ctx context.Context, out *LoopOutcome, tier, priority int) (*LoopOutcome, error) {
	resp, err := l.llm.Chat(ctx, tier, out.Messages, llm.Options{Priority: priority})
	if err != nil {
		if ctx.Err() != nil {
			out.Interrupted = true
			return out, nil
		}
		return out, fmt.Errorf("forced conclusion failed: %w", err)
	}
	out.FinalAnswer = resp.Content
	return out, nil
}

// chooseTier picks the lowest tier starting at min whose context window fits
// the estimated prompt plus the response reserve.
func (l *Loop) chooseTier(messages []models.ChatTurn, schemas []llm.ToolDef, min int, rules models.ProjectRules) int {
	estimate := l.cfg.ResponseReserveTokens
	for _, m := range messages {
		estimate += len(m.Content) / 4
	}
	for _, s := range schemas {
		data, _ := json.Marshal(s)
		estimate += len(data) / 4
	}

	tier := min
	for {
		window := l.llm.ContextTokens(tier)
		if window == 0 || estimate <= window {
			return tier
		}
		next, ok := l.llm.NextTier(tier, rules)
		if !ok {
			return tier
		}
		tier = next
	}
}

func askUserInterrupt(call models.ToolCall) *models.InterruptRequest {
	var in struct {
		Question string `json:"question"`
	}
	_ = json.Unmarshal([]byte(call.Arguments), &in)
	if in.Question == "" {
		in.Question = "The assistant needs your input to continue."
	}
	return &models.InterruptRequest{Type: "question", Question: in.Question}
}

func scopeChangeEvent(call models.ToolCall, result string) models.StreamEvent {
	metadata := map[string]interface{}{}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(result), &parsed); err == nil {
		metadata = parsed
	} else {
		_ = json.Unmarshal([]byte(call.Arguments), &metadata)
	}
	return models.StreamEvent{Type: models.StreamEventScopeChange, Metadata: metadata}
}
