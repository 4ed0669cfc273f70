package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/kb"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// fakeKB records ingests and serves canned search/affair results.
type fakeKB struct {
	mu              sync.Mutex
	searchResults   []models.SearchResult
	affairs         []*models.Affair
	ingested        []kb.IngestInput
	immediate       []kb.IngestInput
	searchCalls     int
	failIngest      bool
	affairQueryErrs int
}

func (f *fakeKB) Search(ctx context.Context, query, clientID, projectID string, limit int) ([]models.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	return f.searchResults, nil
}

func (f *fakeKB) Ingest(ctx context.Context, input kb.IngestInput) (*kb.IngestResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIngest {
		return nil, errors.New("kb down")
	}
	f.ingested = append(f.ingested, input)
	return &kb.IngestResult{ChunkIDs: []string{"chunk-1"}}, nil
}

func (f *fakeKB) IngestImmediate(ctx context.Context, input kb.IngestInput) (*kb.IngestResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIngest {
		return nil, errors.New("kb down")
	}
	f.immediate = append(f.immediate, input)
	return &kb.IngestResult{ChunkIDs: []string{"chunk-1"}}, nil
}

func (f *fakeKB) QueryAffairs(ctx context.Context, clientID string, statuses []models.AffairStatus) ([]*models.Affair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.affairQueryErrs > 0 {
		f.affairQueryErrs--
		return nil, errors.New("kb down")
	}
	return f.affairs, nil
}

// fakeLLM returns canned responses in order.
type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (f *fakeLLM) Chat(ctx context.Context, tier int, messages []models.ChatTurn, opts llm.Options) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.responses) {
		return &llm.Response{Content: "summary text"}, nil
	}
	resp := f.responses[f.calls]
	f.calls++
	return &llm.Response{Content: resp}, nil
}

func newTestAgent(t *testing.T, knowledge *fakeKB, chat *fakeLLM) (*Agent, *LQM) {
	t.Helper()
	l := NewLQM(testMemoryConfig())
	return NewAgent(l, knowledge, chat, testMemoryConfig(), "client-1", "proj-1"), l
}

func TestLoadSessionColdThenWarm(t *testing.T) {
	knowledge := &fakeKB{affairs: []*models.Affair{
		newAffair("a1", "billing", models.AffairStatusActive),
		newAffair("a2", "onboarding", models.AffairStatusParked),
	}}
	agent, _ := newTestAgent(t, knowledge, &fakeLLM{})

	sess, err := agent.LoadSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess.ActiveAffair)
	assert.Equal(t, "a1", sess.ActiveAffair.ID)
	require.Len(t, sess.ParkedAffairs, 1)

	// Second load is a pure LQM read.
	_, err = agent.LoadSession(context.Background())
	require.NoError(t, err)
	knowledge.mu.Lock()
	defer knowledge.mu.Unlock()
}

func TestReadYourWrites(t *testing.T) {
	knowledge := &fakeKB{searchResults: []models.SearchResult{
		{SourceURN: "kb:old", Content: "old fact", Score: 0.5, Origin: "kb"},
	}}
	agent, _ := newTestAgent(t, knowledge, &fakeLLM{})

	agent.Store(context.Background(), "deploy window", "friday 14:00 UTC", "fact",
		models.WritePriorityNormal, "")

	results, err := agent.Search(context.Background(), "deploy window", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "buffer", results[0].Origin, "unflushed store must be visible via the buffer")
}

func TestStoreInvalidatesOverlappingCache(t *testing.T) {
	knowledge := &fakeKB{searchResults: []models.SearchResult{
		{SourceURN: "kb:1", Content: "stale", Origin: "kb"},
	}}
	agent, l := newTestAgent(t, knowledge, &fakeLLM{})

	_, err := agent.Search(context.Background(), "deploy window", 10)
	require.NoError(t, err)
	_, cached := l.CachedSearch("deploy window")
	require.True(t, cached)

	agent.Store(context.Background(), "deploy", "moved to monday", "fact",
		models.WritePriorityNormal, "")

	_, cached = l.CachedSearch("deploy window")
	assert.False(t, cached, "store must invalidate overlapping cached queries")
}

func TestSwitchContextParksCurrentAtCritical(t *testing.T) {
	knowledge := &fakeKB{}
	chat := &fakeLLM{responses: []string{"billing topic summary"}}
	agent, l := newTestAgent(t, knowledge, chat)

	current := newAffair("a1", "billing", models.AffairStatusActive)
	l.PutAffair("client-1", current)

	affair, err := agent.SwitchContext(context.Background(), SwitchDecision{
		Kind: SwitchNewAffair, Title: "new incident", Confidence: 0.9,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AffairStatusActive, affair.Status)
	assert.Equal(t, "new incident", affair.Title)

	assert.Equal(t, models.AffairStatusParked, current.Status)
	assert.Equal(t, "billing topic summary", current.Summary)

	var foundCritical bool
	for _, pw := range l.SnapshotBuffer() {
		if pw.Kind == "affair" && pw.Priority == models.WritePriorityCritical {
			foundCritical = true
		}
	}
	assert.True(t, foundCritical, "park must enqueue the summary at CRITICAL priority")
}

func TestSwitchContextToParkedAffair(t *testing.T) {
	knowledge := &fakeKB{}
	agent, l := newTestAgent(t, knowledge, &fakeLLM{})

	l.PutAffair("client-1", newAffair("a1", "billing", models.AffairStatusActive))
	l.PutAffair("client-1", newAffair("a2", "onboarding", models.AffairStatusParked))

	affair, err := agent.SwitchContext(context.Background(), SwitchDecision{
		Kind: SwitchTo, TargetID: "a2", Confidence: 0.95,
	})
	require.NoError(t, err)
	assert.Equal(t, "a2", affair.ID)
	assert.Equal(t, models.AffairStatusActive, affair.Status)

	active := l.ActiveAffair("client-1")
	require.NotNil(t, active)
	assert.Equal(t, "a2", active.ID)
}

func TestDetectContextSwitchBelowThresholdStays(t *testing.T) {
	knowledge := &fakeKB{}
	chat := &fakeLLM{responses: []string{
		`{"decision":"SWITCH","target_id":"a2","confidence":0.4}`,
	}}
	agent, l := newTestAgent(t, knowledge, chat)
	l.PutAffair("client-1", newAffair("a1", "billing", models.AffairStatusActive))
	l.PutAffair("client-1", newAffair("a2", "onboarding", models.AffairStatusParked))

	decision, err := agent.DetectContextSwitch(context.Background(), "what about onboarding?")
	require.NoError(t, err)
	assert.Equal(t, SwitchStay, decision.Kind, "low-confidence decisions degrade to STAY")
}

func TestDetectContextSwitchNoActiveAffair(t *testing.T) {
	agent, _ := newTestAgent(t, &fakeKB{}, &fakeLLM{})

	decision, err := agent.DetectContextSwitch(context.Background(), "help me plan the migration")
	require.NoError(t, err)
	assert.Equal(t, SwitchNewAffair, decision.Kind)
	assert.NotEmpty(t, decision.Title)
}

func TestFlushSessionAtLeastOnce(t *testing.T) {
	knowledge := &fakeKB{failIngest: true}
	agent, l := newTestAgent(t, knowledge, &fakeLLM{})

	agent.Store(context.Background(), "fact", "value", "fact", models.WritePriorityNormal, "")
	agent.Store(context.Background(), "urgent", "value", "fact", models.WritePriorityCritical, "")

	flushed, failed := agent.FlushSession(context.Background())
	assert.Equal(t, 0, flushed)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 2, l.BufferLen(), "failed writes must stay buffered")

	// KB recovers; retry drains the buffer.
	knowledge.mu.Lock()
	knowledge.failIngest = false
	knowledge.mu.Unlock()

	flushed, failed = agent.FlushSession(context.Background())
	assert.Equal(t, 2, flushed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 0, l.BufferLen())

	// CRITICAL writes use the immediate endpoint.
	knowledge.mu.Lock()
	defer knowledge.mu.Unlock()
	assert.Len(t, knowledge.immediate, 1)
	assert.Len(t, knowledge.ingested, 1)
}

func TestComposeContextBudget(t *testing.T) {
	agent, l := newTestAgent(t, &fakeKB{}, &fakeLLM{})

	affair := newAffair("a1", "billing migration", models.AffairStatusActive)
	affair.Summary = "Migrating billing to the new rate engine."
	affair.KeyFacts = map[string]string{"cutover": "sept 1", "owner": "finance team"}
	affair.PendingActions = []string{"confirm rollback plan"}
	l.PutAffair("client-1", affair)
	l.PutAffair("client-1", newAffair("a2", "onboarding", models.AffairStatusParked))

	full := agent.ComposeContext(10000)
	assert.Contains(t, full, "billing migration")
	assert.Contains(t, full, "cutover")
	assert.Contains(t, full, "Parked topics")
	assert.Contains(t, full, "onboarding")

	tight := agent.ComposeContext(15)
	assert.Less(t, len(tight), len(full), "tight budget must trim the block")
	assert.Contains(t, tight, "billing migration", "the topic line survives trimming")
}
