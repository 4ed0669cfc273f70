package orchestration

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// askUserToolName is special-cased by the loop: it is never executed, it
// suspends the graph and surfaces a question to the user.
const askUserToolName = "ask_user"

// switchContextToolName marks a scope change the frontend must mirror.
const switchContextToolName = "switch_context"

// ToolFunc executes one tool call.
type ToolFunc func(ctx context.Context, args json.RawMessage) (string, error)

// Tool couples a schema with its implementation.
type Tool struct {
	Def llm.ToolDef
	Run ToolFunc

	// Thinking is the human-readable phrase streamed before execution.
	Thinking string

	// ChatOnly tools are absent from the background tool set.
	ChatOnly bool
}

// Registry holds the tool set offered to the model.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Later registrations with the same name replace
// earlier ones.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Def.Name]; !exists {
		r.order = append(r.order, t.Def.Name)
	}
	r.tools[t.Def.Name] = t
}

// Schemas returns the tool definitions in registration order. background
// mode excludes chat-only tools (ask_user cannot block a background run on
// a human).
func (r *Registry) Schemas(background bool) []llm.ToolDef {
	var out []llm.ToolDef
	for _, name := range r.order {
		t := r.tools[name]
		if background && t.ChatOnly {
			continue
		}
		out = append(out, t.Def)
	}
	return out
}

// Thinking returns the phrase streamed before running the named tool.
func (r *Registry) Thinking(name string) string {
	if t, ok := r.tools[name]; ok && t.Thinking != "" {
		return t.Thinking
	}
	return "Working on it..."
}

// Execute runs one tool call under the given timeout. Unknown tools return
// an error string to the model rather than failing the loop.
func (r *Registry) Execute(ctx context.Context, call models.ToolCall, timeout time.Duration) (string, error) {
	t, ok := r.tools[call.Name]
	if !ok {
		return fmt.Sprintf("error: unknown tool %q", call.Name), nil
	}
	toolCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := t.Run(toolCtx, json.RawMessage(call.Arguments))
	if err != nil {
		if toolCtx.Err() == context.DeadlineExceeded {
			return fmt.Sprintf("error: tool %s timed out after %s", call.Name, timeout), nil
		}
		return "", err
	}
	return result, nil
}

// MemorySearcher is the memory surface the built-in tools need.
type MemorySearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
	Store(ctx context.Context, subject, content, category string, priority models.WritePriority, affairID string)
}

// RegisterBuiltins wires the standard chat tool set over the memory agent.
func (r *Registry) RegisterBuiltins(mem MemorySearcher) {
	r.Register(Tool{
		Def: llm.ToolDef{
			Name:        "search_memory",
			Description: "Search stored knowledge and recent conversation memory.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string"},
					"limit": map[string]any{"type": "integer"},
				},
				"required": []string{"query"},
			},
		},
		Thinking: "Searching memory...",
		Run: func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Query string `json:"query"`
				Limit int    `json:"limit"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "error: invalid arguments", nil
			}
			if in.Limit <= 0 {
				in.Limit = 5
			}
			results, err := mem.Search(ctx, in.Query, in.Limit)
			if err != nil {
				return "", err
			}
			if len(results) == 0 {
				return "No results found.", nil
			}
			data, err := json.Marshal(results)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	})
	r.Register(Tool{
		Def: llm.ToolDef{
			Name:        "store_memory",
			Description: "Store a fact or decision for later recall.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"subject":  map[string]any{"type": "string"},
					"content":  map[string]any{"type": "string"},
					"category": map[string]any{"type": "string"},
				},
				"required": []string{"subject", "content"},
			},
		},
		Thinking: "Noting that down...",
		Run: func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Subject  string `json:"subject"`
				Content  string `json:"content"`
				Category string `json:"category"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "error: invalid arguments", nil
			}
			if in.Category == "" {
				in.Category = "fact"
			}
			mem.Store(ctx, in.Subject, in.Content, in.Category, models.WritePriorityNormal, "")
			return "Stored.", nil
		},
	})
	r.Register(Tool{
		Def: llm.ToolDef{
			Name:        askUserToolName,
			Description: "Ask the user a clarifying question. Use only when you cannot proceed without an answer.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
				},
				"required": []string{"question"},
			},
		},
		ChatOnly: true,
		// Never executed; the loop intercepts it.
		Run: func(ctx context.Context, args json.RawMessage) (string, error) {
			return "", fmt.Errorf("ask_user must be intercepted by the loop")
		},
	})
}

// parseToolCalls extracts tool calls from a response. Native tool_calls win;
// otherwise the content is probed for the structured-JSON fallback some
// local models emit. Malformed entries are dropped and counted.
func parseToolCalls(resp *llm.Response) (calls []models.ToolCall, parseFailures int) {
	if len(resp.ToolCalls) > 0 {
		return validateCalls(resp.ToolCalls)
	}

	var fallback struct {
		ToolCalls []json.RawMessage `json:"tool_calls"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &fallback); err != nil || fallback.ToolCalls == nil {
		return nil, 0
	}
	var raw []models.ToolCall
	for _, entry := range fallback.ToolCalls {
		var call struct {
			Function struct {
				Name      string          `json:"name"`
				Arguments json.RawMessage `json:"arguments"`
			} `json:"function"`
			Name      string          `json:"name"`
			Arguments json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(entry, &call); err != nil {
			parseFailures++
			continue
		}
		name := call.Function.Name
		args := call.Function.Arguments
		if name == "" {
			name = call.Name
			args = call.Arguments
		}
		if len(args) == 0 {
			args = json.RawMessage("{}")
		}
		raw = append(raw, models.ToolCall{Name: name, Arguments: string(args)})
	}
	valid, dropped := validateCalls(raw)
	return valid, parseFailures + dropped
}

func validateCalls(calls []models.ToolCall) ([]models.ToolCall, int) {
	var valid []models.ToolCall
	dropped := 0
	for _, call := range calls {
		if call.Name == "" {
			dropped++
			continue
		}
		if call.Arguments == "" {
			call.Arguments = "{}"
		}
		valid = append(valid, call)
	}
	return valid, dropped
}

// callSignature canonicalizes a tool call list to (name, sorted-args JSON)
// pairs so identical repeats are detected regardless of key order.
func callSignature(calls []models.ToolCall) string {
	parts := make([]string, 0, len(calls))
	for _, call := range calls {
		parts = append(parts, call.Name+":"+canonicalJSON(call.Arguments))
	}
	sort.Strings(parts)
	data, _ := json.Marshal(parts)
	return string(data)
}

func canonicalJSON(raw string) string {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	// json.Marshal sorts map keys.
	data, err := json.Marshal(v)
	if err != nil {
		return raw
	}
	return string(data)
}

// truncateResult clamps a tool result keeping the head and tail, which is
// where structured outputs carry most of their signal.
func truncateResult(result string, maxChars int) string {
	if len(result) <= maxChars {
		return result
	}
	head := maxChars * 2 / 3
	tail := maxChars - head
	return result[:head] + "\n...TRUNCATED...\n" + result[len(result)-tail:]
}
