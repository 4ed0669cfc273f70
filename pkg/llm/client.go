package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// Client issues chat completions against the configured tiers. Concurrency
// is capped separately for local and cloud calls.
type Client struct {
	cfg        *config.LLMConfig
	httpClient *http.Client
	localSem   *semaphore.Weighted
	cloudSem   *semaphore.Weighted
}

// NewClient creates an LLM client.
func NewClient(cfg *config.LLMConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			// Streams are long-lived; liveness comes from the heartbeat watchdog.
			Timeout: 0,
		},
		localSem: semaphore.NewWeighted(cfg.MaxLocalConcurrent),
		cloudSem: semaphore.NewWeighted(cfg.MaxCloudConcurrent),
	}
}

// Chat runs one completion on the given tier and returns the accumulated
// response. Local tiers stream through the router; cloud tiers are
// single-shot provider calls.
func (c *Client) Chat(ctx context.Context, tier int, messages []models.ChatTurn, opts Options) (*Response, error) {
	if tier < 0 || tier >= len(c.cfg.Tiers) {
		return nil, fmt.Errorf("tier %d out of range (%d tiers configured)", tier, len(c.cfg.Tiers))
	}
	tcfg := c.cfg.Tiers[tier]

	if tcfg.Provider == "local" {
		if err := c.localSem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("waiting for local LLM slot: %w", err)
		}
		defer c.localSem.Release(1)
		return c.chatLocal(ctx, tcfg, messages, opts)
	}

	if err := c.cloudSem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for cloud LLM slot: %w", err)
	}
	defer c.cloudSem.Release(1)
	return c.chatCloud(ctx, tcfg, messages, opts)
}

// ollamaMessage is the Ollama chat wire shape for one message.
type ollamaMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	ToolCalls []ollamaToolCall `json:"tool_calls,omitempty"`
	ToolName  string           `json:"tool_name,omitempty"`
}

type ollamaToolCall struct {
	Function ollamaFunction `json:"function"`
}

type ollamaFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type ollamaChunk struct {
	Message   ollamaMessage `json:"message"`
	Done      bool          `json:"done"`
	EvalCount int           `json:"eval_count"`
	Error     string        `json:"error"`
}

// chatLocal streams from the router, accumulating content and tool calls.
// A watchdog aborts the stream when no chunk arrives within the heartbeat
// window (a wedged backend would otherwise hang the orchestration forever).
func (c *Client) chatLocal(ctx context.Context, tcfg config.LLMTierConfig, messages []models.ChatTurn, opts Options) (*Response, error) {
	payload := map[string]any{
		"model":    tcfg.Model,
		"messages": toOllamaMessages(messages),
		"stream":   true,
	}
	if len(opts.Tools) > 0 {
		payload["tools"] = toOllamaTools(opts.Tools)
	}
	if opts.JSONMode {
		payload["format"] = "json"
	}
	if opts.Temperature != nil {
		payload["options"] = map[string]any{"temperature": *opts.Temperature}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.cfg.RouterURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Ollama-Priority", strconv.Itoa(opts.Priority))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("router call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("router returned %d for chat", resp.StatusCode)
	}

	var heartbeatFired atomic.Bool
	watchdog := time.AfterFunc(c.cfg.HeartbeatDead, func() {
		heartbeatFired.Store(true)
		cancel()
	})
	defer watchdog.Stop()

	result := &Response{Model: tcfg.Model}
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		watchdog.Reset(c.cfg.HeartbeatDead)

		var chunk ollamaChunk
		if err := json.Unmarshal(scanner.Bytes(), &chunk); err != nil {
			continue
		}
		if chunk.Error != "" {
			if chunk.Error == "preempted" {
				return nil, ErrPreempted
			}
			return nil, fmt.Errorf("backend error: %s", chunk.Error)
		}
		result.Content += chunk.Message.Content
		for _, tc := range chunk.Message.ToolCalls {
			result.ToolCalls = append(result.ToolCalls, models.ToolCall{
				ID:        fmt.Sprintf("call_%d", len(result.ToolCalls)),
				Name:      tc.Function.Name,
				Arguments: string(tc.Function.Arguments),
			})
		}
		if chunk.Done {
			result.EvalTokens = chunk.EvalCount
			break
		}
	}
	if err := scanner.Err(); err != nil {
		if heartbeatFired.Load() {
			return nil, fmt.Errorf("%w after %v", ErrHeartbeatDead, c.cfg.HeartbeatDead)
		}
		return nil, fmt.Errorf("stream read failed: %w", err)
	}
	return result, nil
}

func toOllamaMessages(messages []models.ChatTurn) []ollamaMessage {
	out := make([]ollamaMessage, 0, len(messages))
	for _, m := range messages {
		om := ollamaMessage{Role: m.Role, Content: m.Content}
		if m.Role == models.RoleTool {
			om.ToolName = m.ToolName
		}
		for _, tc := range m.ToolCalls {
			om.ToolCalls = append(om.ToolCalls, ollamaToolCall{
				Function: ollamaFunction{
					Name:      tc.Name,
					Arguments: json.RawMessage(tc.Arguments),
				},
			})
		}
		out = append(out, om)
	}
	return out
}

func toOllamaTools(tools []ToolDef) []map[string]any {
	out := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		out = append(out, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name,
				"description": t.Description,
				"parameters":  t.Parameters,
			},
		})
	}
	return out
}
