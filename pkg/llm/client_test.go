package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

func testLLMConfig(routerURL string) *config.LLMConfig {
	return &config.LLMConfig{
		RouterURL: routerURL,
		Tiers: []config.LLMTierConfig{
			{Model: "qwen3:8b", Provider: "local", ContextTokens: 32768},
			{Model: "qwen3:32b", Provider: "local", ContextTokens: 32768},
			{Model: "claude-sonnet-4-5", Provider: "anthropic", ContextTokens: 200000},
		},
		HeartbeatDead:      200 * time.Millisecond,
		MaxLocalConcurrent: 2,
		MaxCloudConcurrent: 1,
	}
}

func streamChunks(t *testing.T, lines []string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		flusher := w.(http.Flusher)
		for _, line := range lines {
			_, _ = fmt.Fprintln(w, line)
			flusher.Flush()
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatLocalAccumulatesContent(t *testing.T) {
	srv := streamChunks(t, []string{
		`{"message":{"role":"assistant","content":"Hello"},"done":false}`,
		`{"message":{"role":"assistant","content":" world"},"done":false}`,
		`{"message":{"role":"assistant","content":""},"done":true,"eval_count":12}`,
	})
	c := NewClient(testLLMConfig(srv.URL))

	resp, err := c.Chat(context.Background(), 0, []models.ChatTurn{
		{Role: models.RoleUser, Content: "hi"},
	}, Options{Priority: 0})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", resp.Content)
	assert.Equal(t, 12, resp.EvalTokens)
	assert.Empty(t, resp.ToolCalls)
}

func TestChatLocalParsesToolCalls(t *testing.T) {
	srv := streamChunks(t, []string{
		`{"message":{"role":"assistant","content":"","tool_calls":[{"function":{"name":"search_memory","arguments":{"query":"deploy checklist"}}}]},"done":true}`,
	})
	c := NewClient(testLLMConfig(srv.URL))

	resp, err := c.Chat(context.Background(), 0, []models.ChatTurn{
		{Role: models.RoleUser, Content: "what was the deploy checklist?"},
	}, Options{})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "search_memory", resp.ToolCalls[0].Name)
	assert.JSONEq(t, `{"query":"deploy checklist"}`, resp.ToolCalls[0].Arguments)
}

func TestChatLocalPreempted(t *testing.T) {
	srv := streamChunks(t, []string{
		`{"message":{"role":"assistant","content":"partial"},"done":false}`,
		`{"error":"preempted","done":true}`,
	})
	c := NewClient(testLLMConfig(srv.URL))

	_, err := c.Chat(context.Background(), 0, []models.ChatTurn{
		{Role: models.RoleUser, Content: "hi"},
	}, Options{Priority: 1})
	assert.ErrorIs(t, err, ErrPreempted)
}

func TestChatLocalHeartbeatDead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		flusher := w.(http.Flusher)
		_, _ = fmt.Fprintln(w, `{"message":{"role":"assistant","content":"x"},"done":false}`)
		flusher.Flush()
		// Stall past the heartbeat window without closing.
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(testLLMConfig(srv.URL))
	_, err := c.Chat(context.Background(), 0, []models.ChatTurn{
		{Role: models.RoleUser, Content: "hi"},
	}, Options{})
	assert.ErrorIs(t, err, ErrHeartbeatDead)
}

func TestChatSendsPriorityHeader(t *testing.T) {
	var gotPriority string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPriority = r.Header.Get("X-Ollama-Priority")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"role": "assistant", "content": "ok"},
			"done":    true,
		})
	}))
	defer srv.Close()

	c := NewClient(testLLMConfig(srv.URL))
	_, err := c.Chat(context.Background(), 0, []models.ChatTurn{
		{Role: models.RoleUser, Content: "hi"},
	}, Options{Priority: 0})
	require.NoError(t, err)
	assert.Equal(t, "0", gotPriority)
}

func TestNextTierRespectsProjectRules(t *testing.T) {
	c := NewClient(testLLMConfig("http://localhost:1"))

	noCloud := models.ProjectRules{}
	anthropicOK := models.ProjectRules{AutoUseAnthropic: true}
	openaiOnly := models.ProjectRules{AutoUseOpenAI: true}
	allowlisted := models.ProjectRules{AllowedCloudProviders: []string{"anthropic"}}

	// Local to local always allowed.
	next, ok := c.NextTier(0, noCloud)
	assert.True(t, ok)
	assert.Equal(t, 1, next)

	// Local to cloud gated by rules.
	_, ok = c.NextTier(1, noCloud)
	assert.False(t, ok)

	next, ok = c.NextTier(1, anthropicOK)
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	// Enabling one cloud provider does not unlock a tier on another.
	_, ok = c.NextTier(1, openaiOnly)
	assert.False(t, ok)

	// An allowlist entry works like the auto-use flag.
	next, ok = c.NextTier(1, allowlisted)
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	// Top tier has nowhere to go.
	_, ok = c.NextTier(2, anthropicOK)
	assert.False(t, ok)
}

func TestTokenCounter(t *testing.T) {
	tc := NewTokenCounter()

	n := tc.Count("The quick brown fox jumps over the lazy dog", "qwen3:8b")
	assert.Greater(t, n, 5)
	assert.Less(t, n, 20)

	turns := []models.ChatTurn{
		{Role: models.RoleSystem, Content: "You are a helpful assistant."},
		{Role: models.RoleUser, Content: "Hello there."},
	}
	total := tc.CountTurns(turns, "qwen3:8b")
	assert.Greater(t, total, tc.Count("You are a helpful assistant.", "qwen3:8b"))
}
