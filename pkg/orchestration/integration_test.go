package orchestration

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/agentpool"
	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/kubejob"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
	testdb "github.com/jervis-ai/jervis-core/test/database"
)

// fakeMemory satisfies MemorySession without a KB.
type fakeMemory struct{}

func (fakeMemory) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	return nil, nil
}
func (fakeMemory) Store(ctx context.Context, subject, content, category string, priority models.WritePriority, affairID string) {
}
func (fakeMemory) LoadSession(ctx context.Context) (*models.SessionContext, error) {
	return &models.SessionContext{}, nil
}
func (fakeMemory) ComposeContext(maxTokens int) string       { return "" }
func (fakeMemory) FlushSession(ctx context.Context) (int, int) { return 0, 0 }

// recordingPusher captures coordinator pushes.
type recordingPusher struct {
	mu       sync.Mutex
	statuses []string
}

func (r *recordingPusher) PushStatus(ctx context.Context, taskID, threadID, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recordingPusher) PushProgress(ctx context.Context, taskID, threadID, message string) {}

func (r *recordingPusher) saw(status string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.statuses {
		if s == status {
			return true
		}
	}
	return false
}

// fakeDispatcher returns a canned job result.
type fakeDispatcher struct {
	mu     sync.Mutex
	specs  []kubejob.DispatchSpec
	result *kubejob.JobResult
	err    error
}

func (f *fakeDispatcher) Run(ctx context.Context, spec kubejob.DispatchSpec) (*kubejob.JobResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.specs = append(f.specs, spec)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestHistoryAppendAllocatesSequences(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := NewHistory(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		msg, err := history.Append(ctx, "task-1", models.RoleUser, fmt.Sprintf("message %d", i), nil)
		require.NoError(t, err)
		assert.Equal(t, i+1, msg.Sequence)
	}

	// A different task starts its own sequence.
	msg, err := history.Append(ctx, "task-2", models.RoleUser, "first", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, msg.Sequence)
}

func TestHistoryConcurrentAppendsStaySequential(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := NewHistory(client.Client)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := history.Append(ctx, "task-race", models.RoleUser, fmt.Sprintf("m%d", n), nil)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	msgs, err := history.Recent(ctx, "task-race", writers)
	require.NoError(t, err)
	require.Len(t, msgs, writers)
	for i, msg := range msgs {
		assert.Equal(t, i+1, msg.Sequence, "sequences must be gapless and unique")
	}
}

func TestHistoryRecentFiltersErrorLikeMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := NewHistory(client.Client)
	ctx := context.Background()

	_, err := history.Append(ctx, "task-1", models.RoleUser, "real question", nil)
	require.NoError(t, err)
	_, err = history.Append(ctx, "task-1", models.RoleAssistant, "error: upstream exploded", nil)
	require.NoError(t, err)
	_, err = history.Append(ctx, "task-1", models.RoleAssistant, `{"error":"llm_call_failed"}`, nil)
	require.NoError(t, err)
	_, err = history.Append(ctx, "task-1", models.RoleAssistant, "real answer", nil)
	require.NoError(t, err)

	msgs, err := history.Recent(ctx, "task-1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "real question", msgs[0].Content)
	assert.Equal(t, "real answer", msgs[1].Content)
}

func TestCompressorFoldsOldHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := NewHistory(client.Client)
	ctx := context.Background()

	cfg := testOrchConfig()
	cfg.CompressThreshold = 5
	cfg.RecentMessageLimit = 3

	for i := 0; i < 10; i++ {
		_, err := history.Append(ctx, "task-1", models.RoleUser, fmt.Sprintf("message %d", i), nil)
		require.NoError(t, err)
	}

	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: `{"summary":"early discussion about messages","key_decisions":["ship it"],"topics":["setup"],"is_checkpoint":false,"checkpoint_reason":""}`},
	}}
	compressor := NewCompressor(history, scripted, cfg)
	compressor.MaybeCompress(ctx, "task-1")

	summaries, err := history.Summaries(ctx, "task-1", 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].SequenceStart)
	assert.Equal(t, 7, summaries[0].SequenceEnd, "the recent window must stay uncompressed")
	assert.Equal(t, []string{"ship it"}, summaries[0].KeyDecisions)

	// Below threshold afterwards: nothing new to compress.
	compressor.MaybeCompress(ctx, "task-1")
	summaries, err = history.Summaries(ctx, "task-1", 10)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestAssemblerBuildsSystemBlockAndRecent(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := NewHistory(client.Client)
	ctx := context.Background()
	cfg := testOrchConfig()

	for i := 0; i < 4; i++ {
		_, err := history.Append(ctx, "task-1", models.RoleUser, fmt.Sprintf("turn %d", i), nil)
		require.NoError(t, err)
	}
	require.NoError(t, history.SaveSummary(ctx, models.SummaryBlock{
		TaskID: "task-1", SequenceStart: 1, SequenceEnd: 2,
		Summary: "they discussed the deploy", MessageCount: 2,
	}))

	assembler := NewAssembler(history, llm.NewTokenCounter(), cfg)
	turns, err := assembler.Assemble(ctx, AssembleInput{
		TaskID:        "task-1",
		SystemPrompt:  "You are a test.",
		MemoryContext: "## Current topic: deploys",
		UserMessage:   "and now?",
		Model:         "test-model",
		ContextWindow: 32768,
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(turns), 3)
	assert.Equal(t, models.RoleSystem, turns[0].Role)
	assert.Contains(t, turns[0].Content, "You are a test.")
	assert.Contains(t, turns[0].Content, "## Current topic: deploys")
	assert.Contains(t, turns[0].Content, "they discussed the deploy")
	assert.Equal(t, "and now?", turns[len(turns)-1].Content)
}

func TestCheckpointSuspendResumeRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewCheckpointStore(client.Client)
	ctx := context.Background()

	state := &models.GraphState{
		Task:   models.CodingTask{ID: "task-1", ClientID: "client-1", Query: "fix it"},
		Branch: "jervis/task-1",
	}
	interrupt := &models.InterruptRequest{Type: "approval", Action: "push", Branch: "jervis/task-1"}
	require.NoError(t, store.Suspend(ctx, "thread-1", state, interrupt))

	loaded, loadedInterrupt, err := store.Load(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, "task-1", loaded.Task.ID)
	assert.Equal(t, "jervis/task-1", loaded.Branch)
	require.NotNil(t, loadedInterrupt)
	assert.Equal(t, "approval", loadedInterrupt.Type)

	require.NoError(t, store.MarkResumed(ctx, "thread-1"))
	// Second resume is rejected.
	require.ErrorIs(t, store.MarkResumed(ctx, "thread-1"), ErrCheckpointNotFound)

	_, _, err = store.Load(ctx, "missing")
	require.ErrorIs(t, err, ErrCheckpointNotFound)
}

func newTestChatHandler(t *testing.T, scripted *scriptedLLM, pusher *recordingPusher) (*ChatHandler, *History) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := testOrchConfig()
	history := NewHistory(client.Client)
	checkpoints := NewCheckpointStore(client.Client)
	tokens := llm.NewTokenCounter()
	loop := NewLoop(scripted, echoRegistry(t), tokens, cfg)
	assembler := NewAssembler(history, tokens, cfg)
	compressor := NewCompressor(history, scripted, cfg)
	factory := func(clientID, projectID string) MemorySession { return fakeMemory{} }
	return NewChatHandler(loop, assembler, history, compressor, checkpoints, pusher, nil, scripted, factory, cfg), history
}

func TestChatHandlerStreamsAnswer(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: strings.Repeat("the answer flows in chunks. ", 5)},
	}}
	pusher := &recordingPusher{}
	handler, history := newTestChatHandler(t, scripted, pusher)

	var mu sync.Mutex
	var events []models.StreamEvent
	handler.Handle(context.Background(), models.ChatRequest{
		SessionID:      "session-1",
		ActiveClientID: "client-1",
		Message:        "what is the answer?",
	}, func(e models.StreamEvent) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	var tokens, done int
	var answer strings.Builder
	for _, e := range events {
		switch e.Type {
		case models.StreamEventToken:
			tokens++
			answer.WriteString(e.Content)
		case models.StreamEventDone:
			done++
		}
	}
	assert.Greater(t, tokens, 1, "the answer must arrive in multiple chunks")
	assert.Equal(t, 1, done)
	assert.Equal(t, strings.Repeat("the answer flows in chunks. ", 5), answer.String())

	assert.True(t, pusher.saw("foreground_active"))

	// User message and answer were persisted in order.
	msgs, err := history.Recent(context.Background(), "session-1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
}

type fakeReserver struct {
	mu        sync.Mutex
	announced []string
	released  []string
}

func (f *fakeReserver) Announce(ctx context.Context, sessionID, model string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.announced = append(f.announced, sessionID)
	return true, nil
}

func (f *fakeReserver) Release(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, sessionID)
}

func TestChatHandlerReservesGPUForSession(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{{Content: "short answer"}}}
	handler, _ := newTestChatHandler(t, scripted, &recordingPusher{})
	gpu := &fakeReserver{}
	handler.gpu = gpu

	handler.Handle(context.Background(), models.ChatRequest{
		SessionID:      "session-1",
		ActiveClientID: "client-1",
		Message:        "quick one",
	}, func(models.StreamEvent) {})

	assert.Equal(t, []string{"session-1"}, gpu.announced)
	assert.Equal(t, []string{"session-1"}, gpu.released, "the reservation is given back when the exchange ends")
}

func TestChatHandlerAskUserPausesWithThreadID(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse(askUserToolName, `{"question":"prod or staging?"}`),
	}}
	handler, _ := newTestChatHandler(t, scripted, &recordingPusher{})

	var events []models.StreamEvent
	handler.Handle(context.Background(), models.ChatRequest{
		SessionID:      "session-1",
		ActiveClientID: "client-1",
		Message:        "deploy it",
	}, func(e models.StreamEvent) { events = append(events, e) })

	last := events[len(events)-1]
	require.Equal(t, models.StreamEventDone, last.Type)
	assert.Equal(t, true, last.Metadata["awaiting_input"])
	assert.NotEmpty(t, last.Metadata["thread_id"])
	assert.Equal(t, "prod or staging?", last.Content)
}

func newTestBackgroundEngine(t *testing.T, scripted *scriptedLLM, pusher *recordingPusher, dispatcher *fakeDispatcher) *BackgroundEngine {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := testOrchConfig()
	history := NewHistory(client.Client)
	checkpoints := NewCheckpointStore(client.Client)
	tokens := llm.NewTokenCounter()
	loop := NewLoop(scripted, echoRegistry(t), tokens, cfg)
	assembler := NewAssembler(history, tokens, cfg)
	pool := agentpool.New(config.DefaultAgentPoolConfig())
	factory := func(clientID, projectID string) MemorySession { return fakeMemory{} }
	return NewBackgroundEngine(loop, assembler, history, checkpoints, pusher, scripted,
		factory, pool, dispatcher, cfg)
}

func TestBackgroundExecutePlainAnswer(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "a thorough background answer that easily clears the minimum length"},
	}}
	pusher := &recordingPusher{}
	engine := newTestBackgroundEngine(t, scripted, pusher, &fakeDispatcher{})

	state, err := engine.Execute(context.Background(), models.CodingTask{
		ID: "task-1", ClientID: "client-1", Query: "summarize the incident",
	}, "thread-1")
	require.NoError(t, err)
	assert.Contains(t, state.FinalResult, "thorough background answer")
	assert.True(t, pusher.saw("completed"))
}

func TestBackgroundEscalationStaysLocalWithoutCloudRules(t *testing.T) {
	// Tier 0 and 1 produce junk; rules forbid cloud, so the run settles for
	// the last local answer instead of escalating to tier 2.
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "nope"},
		{Content: "still nope"},
		{Content: "third"},
	}}
	engine := newTestBackgroundEngine(t, scripted, &recordingPusher{}, &fakeDispatcher{})

	state, err := engine.Execute(context.Background(), models.CodingTask{
		ID: "task-1", ClientID: "client-1", Query: "do a thing",
	}, "thread-1")
	require.NoError(t, err)
	assert.NotEmpty(t, state.FinalResult)
	tiersSeen := scripted.tiers
	for _, tier := range tiersSeen {
		assert.Less(t, tier, 2, "cloud tiers are gated by project rules")
	}
}

func TestBackgroundEscalatesToCloudWhenAllowed(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "short"},
		{Content: "an acceptable second answer with plenty of detail to clear checks"},
	}}
	engine := newTestBackgroundEngine(t, scripted, &recordingPusher{}, &fakeDispatcher{})

	state, err := engine.Execute(context.Background(), models.CodingTask{
		ID: "task-1", ClientID: "client-1", Query: "do a thing",
		Rules: models.ProjectRules{AutoUseAnthropic: true},
	}, "thread-1")
	require.NoError(t, err)
	assert.Contains(t, state.FinalResult, "acceptable second answer")
	assert.Equal(t, 1, scripted.tiers[len(scripted.tiers)-1], "one escalation step expected")
}

func TestBackgroundApprovalGateSuspendsAndResumes(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "plan: touch sender.go and add a retry wrapper around the webhook call"},
	}}
	pusher := &recordingPusher{}
	dispatcher := &fakeDispatcher{result: &kubejob.JobResult{
		Success:      true,
		Summary:      "retry added",
		Branch:       "jervis/task-1",
		ChangedFiles: []string{"sender.go"},
	}}
	engine := newTestBackgroundEngine(t, scripted, pusher, dispatcher)

	task := models.CodingTask{
		ID:              "task-1",
		ClientID:        "client-1",
		WorkspacePath:   "client-1/task-1",
		Query:           "add retry",
		AgentPreference: models.AgentTypeAider,
		Rules:           models.ProjectRules{RequireCommitApproval: true},
	}
	state, err := engine.Execute(context.Background(), task, "thread-1")
	require.NoError(t, err)
	assert.True(t, pusher.saw("awaiting_approval"))
	assert.Empty(t, dispatcher.specs, "no dispatch before approval")
	assert.NotEmpty(t, state.FinalResult)

	resumed, err := engine.Resume(context.Background(), "thread-1", models.ResumeInput{Approved: true})
	require.NoError(t, err)
	require.Len(t, dispatcher.specs, 1)
	assert.Equal(t, models.AgentTypeAider, dispatcher.specs[0].AgentType)
	assert.Equal(t, "jervis/task-1", resumed.Branch)
	assert.Equal(t, "retry added", resumed.FinalResult)
	assert.True(t, pusher.saw("completed"))
}

func TestBackgroundApprovalRejection(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "plan: modify the deployment pipeline configuration for the service"},
	}}
	pusher := &recordingPusher{}
	dispatcher := &fakeDispatcher{}
	engine := newTestBackgroundEngine(t, scripted, pusher, dispatcher)

	task := models.CodingTask{
		ID: "task-1", ClientID: "client-1", Query: "change pipeline",
		AgentPreference: models.AgentTypeClaude,
		Rules:           models.ProjectRules{RequirePushApproval: true},
	}
	_, err := engine.Execute(context.Background(), task, "thread-1")
	require.NoError(t, err)

	state, err := engine.Resume(context.Background(), "thread-1", models.ResumeInput{Approved: false, Reason: "too risky"})
	require.NoError(t, err)
	assert.Equal(t, "rejected by user: too risky", state.Error)
	assert.Empty(t, dispatcher.specs)
	assert.True(t, pusher.saw("rejected"))
}

func TestBackgroundForbiddenFileBlocksEvaluation(t *testing.T) {
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "plan: adjust the secret rotation helper as requested by the task"},
	}}
	dispatcher := &fakeDispatcher{result: &kubejob.JobResult{
		Success:      true,
		ChangedFiles: []string{"secrets/prod.env"},
	}}
	engine := newTestBackgroundEngine(t, scripted, &recordingPusher{}, dispatcher)

	task := models.CodingTask{
		ID: "task-1", ClientID: "client-1", Query: "rotate",
		AgentPreference: models.AgentTypeAider,
		Rules:           models.ProjectRules{ForbiddenFileGlobs: []string{"secrets/*"}},
	}
	state, err := engine.Execute(context.Background(), task, "thread-1")
	require.NoError(t, err)
	require.NotNil(t, state.Evaluation)
	assert.False(t, state.Evaluation.Acceptable())
	assert.Equal(t, "agent result failed evaluation", state.Error)
}
