package orchestration

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// scriptedLLM returns canned responses in order and records each call.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []*llm.Response
	errs      []error
	calls     []llm.Options
	tiers     []int
	windows   []int
}

func (s *scriptedLLM) Chat(ctx context.Context, tier int, messages []models.ChatTurn, opts llm.Options) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, opts)
	s.tiers = append(s.tiers, tier)
	idx := len(s.calls) - 1
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	if idx >= len(s.responses) {
		return &llm.Response{Content: "default answer, long enough to pass quality checks"}, nil
	}
	return s.responses[idx], nil
}

func (s *scriptedLLM) NextTier(current int, rules models.ProjectRules) (int, bool) {
	windows := s.windowList()
	next := current + 1
	if next >= len(windows) {
		return current, false
	}
	// Tier 2+ counts as an anthropic cloud tier in these tests.
	if next >= 2 && !rules.ProviderAllowed("anthropic") {
		return current, false
	}
	return next, true
}

func (s *scriptedLLM) ContextTokens(tier int) int {
	windows := s.windowList()
	if tier < 0 || tier >= len(windows) {
		return 0
	}
	return windows[tier]
}

func (s *scriptedLLM) ModelFor(tier int) string { return "test-model" }

func (s *scriptedLLM) windowList() []int {
	if len(s.windows) > 0 {
		return s.windows
	}
	return []int{32768, 32768, 200000}
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func testOrchConfig() *config.OrchestrationConfig {
	cfg := config.DefaultOrchestrationConfig()
	cfg.StreamChunkDelay = 0
	return cfg
}

func echoRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.Register(Tool{
		Def:      llm.ToolDef{Name: "echo", Description: "echoes", Parameters: map[string]any{"type": "object"}},
		Thinking: "Echoing...",
		Run: func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Text string `json:"text"`
			}
			_ = json.Unmarshal(args, &in)
			return "echo: " + in.Text, nil
		},
	})
	reg.Register(Tool{
		Def:      llm.ToolDef{Name: askUserToolName, Parameters: map[string]any{"type": "object"}},
		ChatOnly: true,
		Run: func(ctx context.Context, args json.RawMessage) (string, error) {
			t.Fatal("ask_user must never execute")
			return "", nil
		},
	})
	return reg
}

func toolCallResponse(name, args string) *llm.Response {
	return &llm.Response{ToolCalls: []models.ToolCall{{ID: "call_0", Name: name, Arguments: args}}}
}

func TestLoopPlainAnswer(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{{Content: "just an answer"}}}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "just an answer", out.FinalAnswer)
	assert.Equal(t, 1, out.Iterations)
	assert.False(t, out.HitMaxIterations)
}

func TestLoopExecutesToolThenAnswers(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse("echo", `{"text":"ping"}`),
		{Content: "the echo said ping"},
	}}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	var events []models.StreamEvent
	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 5,
		Emit:          func(e models.StreamEvent) { events = append(events, e) },
	})
	require.NoError(t, err)
	assert.Equal(t, "the echo said ping", out.FinalAnswer)
	assert.Equal(t, 1, out.ToolCalls)
	require.Equal(t, []string{"echo: ping"}, out.ToolOutputs)

	var types []models.StreamEventType
	for _, e := range events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []models.StreamEventType{
		models.StreamEventThinking,
		models.StreamEventToolCall,
		models.StreamEventToolResult,
	}, types)

	// The tool exchange is appended to the message list.
	roles := []string{}
	for _, m := range out.Messages {
		roles = append(roles, m.Role)
	}
	assert.Contains(t, roles, models.RoleTool)
}

func TestLoopJSONFallbackToolCalls(t *testing.T) {
	content := `{"tool_calls":[{"function":{"name":"echo","arguments":{"text":"fallback"}}},{"function":{"arguments":{}}}]}`
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: content},
		{Content: "done"},
	}}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "done", out.FinalAnswer)
	assert.Equal(t, []string{"echo: fallback"}, out.ToolOutputs)
	assert.Equal(t, 1, out.ToolParseFailures, "nameless entry must be dropped and counted")
}

func TestLoopDetectsRepeatedToolCalls(t *testing.T) {
	same := func() *llm.Response { return toolCallResponse("echo", `{"text":"again"}`) }
	scripted := &scriptedLLM{responses: []*llm.Response{
		same(), same(),
		{Content: "forced textual answer"},
	}}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "forced textual answer", out.FinalAnswer)
	assert.Equal(t, 1, out.ToolCalls, "a repeated identical call must not execute again")
	assert.Len(t, scripted.calls, 3, "the forced answer arrives on the third call")

	// The stop instruction was injected before the final call.
	var sawStop bool
	for _, m := range out.Messages {
		if m.Role == models.RoleSystem && strings.Contains(m.Content, "STOP") {
			sawStop = true
		}
	}
	assert.True(t, sawStop)
}

func TestLoopSignatureIgnoresArgumentKeyOrder(t *testing.T) {
	a := []models.ToolCall{{Name: "echo", Arguments: `{"a":1,"b":2}`}}
	b := []models.ToolCall{{Name: "echo", Arguments: `{"b":2,"a":1}`}}
	assert.Equal(t, callSignature(a), callSignature(b))
}

func TestLoopMaxIterationsForcesConclusion(t *testing.T) {
	responses := []*llm.Response{}
	for i := 0; i < 3; i++ {
		responses = append(responses, toolCallResponse("echo", `{"text":"`+strings.Repeat("x", i+1)+`"}`))
	}
	responses = append(responses, &llm.Response{Content: "wrap-up"})
	scripted := &scriptedLLM{responses: responses}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 3,
	})
	require.NoError(t, err)
	assert.True(t, out.HitMaxIterations)
	assert.Equal(t, "wrap-up", out.FinalAnswer)
	// The conclusion call carries no tools.
	last := scripted.calls[len(scripted.calls)-1]
	assert.Empty(t, last.Tools)
}

func TestLoopAskUserSuspends(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse(askUserToolName, `{"question":"which repo?"}`),
	}}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 5,
	})
	require.NoError(t, err)
	require.NotNil(t, out.AskUser)
	assert.Equal(t, "question", out.AskUser.Type)
	assert.Equal(t, "which repo?", out.AskUser.Question)
	assert.Empty(t, out.FinalAnswer)
}

func TestBackgroundToolSetExcludesAskUser(t *testing.T) {
	reg := echoRegistry(t)
	for _, def := range reg.Schemas(true) {
		assert.NotEqual(t, askUserToolName, def.Name)
	}
	var names []string
	for _, def := range reg.Schemas(false) {
		names = append(names, def.Name)
	}
	assert.Contains(t, names, askUserToolName)
}

func TestLoopCancelledContext(t *testing.T) {
	scripted := &scriptedLLM{}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := loop.Run(ctx, LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}},
		MaxIterations: 5,
	})
	require.NoError(t, err)
	assert.True(t, out.Interrupted)
	assert.Equal(t, 0, scripted.callCount())
}

func TestChooseTierEscalatesForLargePrompts(t *testing.T) {
	scripted := &scriptedLLM{
		windows:   []int{100, 100, 200000},
		responses: []*llm.Response{{Content: "big answer"}},
	}
	loop := NewLoop(scripted, echoRegistry(t), llm.NewTokenCounter(), testOrchConfig())

	big := strings.Repeat("word ", 5000)
	out, err := loop.Run(context.Background(), LoopInput{
		Messages:      []models.ChatTurn{{Role: models.RoleUser, Content: big}},
		MaxIterations: 2,
		Rules:         models.ProjectRules{AutoUseAnthropic: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, scripted.tiers[0], "prompt too large for local windows must pick the cloud tier")
	assert.Equal(t, "big answer", out.FinalAnswer)
}

func TestTruncateResultKeepsHeadAndTail(t *testing.T) {
	long := strings.Repeat("a", 500) + "MIDDLE" + strings.Repeat("z", 500)
	out := truncateResult(long, 100)
	assert.LessOrEqual(t, len(out), 120)
	assert.Contains(t, out, "...TRUNCATED...")
	assert.True(t, strings.HasPrefix(out, "a"))
	assert.True(t, strings.HasSuffix(out, "z"))
}
