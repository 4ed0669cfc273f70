package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// Cloud provider endpoints. Gemini is reached through its OpenAI-compatible
// surface so one request shape covers both.
const (
	anthropicBaseURL = "https://api.anthropic.com/v1/messages"
	openAIBaseURL    = "https://api.openai.com/v1/chat/completions"
	geminiBaseURL    = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"

	anthropicVersion  = "2023-06-01"
	anthropicMaxToken = 8192
)

// chatCloud dispatches to the provider named by the tier.
func (c *Client) chatCloud(ctx context.Context, tcfg config.LLMTierConfig, messages []models.ChatTurn, opts Options) (*Response, error) {
	switch tcfg.Provider {
	case "anthropic":
		return c.chatAnthropic(ctx, tcfg, messages, opts)
	case "openai":
		return c.chatOpenAI(ctx, openAIBaseURL, os.Getenv("OPENAI_API_KEY"), tcfg, messages, opts)
	case "gemini":
		return c.chatOpenAI(ctx, geminiBaseURL, os.Getenv("GEMINI_API_KEY"), tcfg, messages, opts)
	default:
		return nil, fmt.Errorf("unknown cloud provider %q", tcfg.Provider)
	}
}

func (c *Client) chatAnthropic(ctx context.Context, tcfg config.LLMTierConfig, messages []models.ChatTurn, opts Options) (*Response, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	var system string
	var userMessages []map[string]any
	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			system += m.Content + "\n"
		case models.RoleTool:
			userMessages = append(userMessages, map[string]any{
				"role": "user",
				"content": []map[string]any{{
					"type":        "tool_result",
					"tool_use_id": m.ToolCallID,
					"content":     m.Content,
				}},
			})
		case models.RoleAssistant:
			if len(m.ToolCalls) > 0 {
				content := []map[string]any{}
				if m.Content != "" {
					content = append(content, map[string]any{"type": "text", "text": m.Content})
				}
				for _, tc := range m.ToolCalls {
					content = append(content, map[string]any{
						"type":  "tool_use",
						"id":    tc.ID,
						"name":  tc.Name,
						"input": json.RawMessage(tc.Arguments),
					})
				}
				userMessages = append(userMessages, map[string]any{"role": "assistant", "content": content})
				continue
			}
			userMessages = append(userMessages, map[string]any{"role": "assistant", "content": m.Content})
		default:
			userMessages = append(userMessages, map[string]any{"role": "user", "content": m.Content})
		}
	}

	payload := map[string]any{
		"model":      tcfg.Model,
		"max_tokens": anthropicMaxToken,
		"messages":   userMessages,
	}
	if system != "" {
		payload["system"] = system
	}
	if opts.Temperature != nil {
		payload["temperature"] = *opts.Temperature
	}
	if len(opts.Tools) > 0 {
		tools := make([]map[string]any, 0, len(opts.Tools))
		for _, t := range opts.Tools {
			tools = append(tools, map[string]any{
				"name":         t.Name,
				"description":  t.Description,
				"input_schema": t.Parameters,
			})
		}
		payload["tools"] = tools
	}

	respBody, err := c.postCloud(ctx, anthropicBaseURL, payload, map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": anthropicVersion,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Content []struct {
			Type  string          `json:"type"`
			Text  string          `json:"text"`
			ID    string          `json:"id"`
			Name  string          `json:"name"`
			Input json.RawMessage `json:"input"`
		} `json:"content"`
		Usage struct {
			OutputTokens int `json:"output_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse anthropic response: %w", err)
	}

	result := &Response{Model: tcfg.Model, EvalTokens: parsed.Usage.OutputTokens}
	for _, block := range parsed.Content {
		switch block.Type {
		case "text":
			result.Content += block.Text
		case "tool_use":
			result.ToolCalls = append(result.ToolCalls, models.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	return result, nil
}

func (c *Client) chatOpenAI(ctx context.Context, baseURL, apiKey string, tcfg config.LLMTierConfig, messages []models.ChatTurn, opts Options) (*Response, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key not set for provider %s", tcfg.Provider)
	}

	oaMessages := make([]map[string]any, 0, len(messages))
	for _, m := range messages {
		om := map[string]any{"role": m.Role, "content": m.Content}
		if m.Role == models.RoleTool {
			om["tool_call_id"] = m.ToolCallID
		}
		if len(m.ToolCalls) > 0 {
			calls := make([]map[string]any, 0, len(m.ToolCalls))
			for _, tc := range m.ToolCalls {
				calls = append(calls, map[string]any{
					"id":   tc.ID,
					"type": "function",
					"function": map[string]any{
						"name":      tc.Name,
						"arguments": tc.Arguments,
					},
				})
			}
			om["tool_calls"] = calls
		}
		oaMessages = append(oaMessages, om)
	}

	payload := map[string]any{
		"model":    tcfg.Model,
		"messages": oaMessages,
	}
	if opts.Temperature != nil {
		payload["temperature"] = *opts.Temperature
	}
	if opts.JSONMode {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}
	if len(opts.Tools) > 0 {
		payload["tools"] = toOllamaTools(opts.Tools)
	}

	respBody, err := c.postCloud(ctx, baseURL, payload, map[string]string{
		"Authorization": "Bearer " + apiKey,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content   string `json:"content"`
				ToolCalls []struct {
					ID       string `json:"id"`
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("provider returned no choices")
	}

	result := &Response{
		Model:      tcfg.Model,
		Content:    parsed.Choices[0].Message.Content,
		EvalTokens: parsed.Usage.CompletionTokens,
	}
	for _, tc := range parsed.Choices[0].Message.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, models.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return result, nil
}

func (c *Client) postCloud(ctx context.Context, url string, payload map[string]any, headers map[string]string) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, truncate(string(respBody), 512))
	}
	return respBody, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
