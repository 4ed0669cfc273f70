package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/kb"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// KnowledgeBase is the subset of the KB client used by the memory agent.
type KnowledgeBase interface {
	Search(ctx context.Context, query, clientID, projectID string, limit int) ([]models.SearchResult, error)
	Ingest(ctx context.Context, input kb.IngestInput) (*kb.IngestResult, error)
	IngestImmediate(ctx context.Context, input kb.IngestInput) (*kb.IngestResult, error)
	QueryAffairs(ctx context.Context, clientID string, statuses []models.AffairStatus) ([]*models.Affair, error)
}

// ChatLLM is the subset of the LLM client used for classification and
// summarization.
type ChatLLM interface {
	Chat(ctx context.Context, tier int, messages []models.ChatTurn, opts llm.Options) (*llm.Response, error)
}

// SwitchKind is the outcome family of a context-switch classification.
type SwitchKind string

// Switch kinds.
const (
	SwitchStay      SwitchKind = "STAY"
	SwitchTo        SwitchKind = "SWITCH"
	SwitchNewAffair SwitchKind = "NEW_AFFAIR"
)

// SwitchDecision is the classifier verdict for one user message.
type SwitchDecision struct {
	Kind       SwitchKind `json:"decision"`
	TargetID   string     `json:"target_id,omitempty"`
	Title      string     `json:"title,omitempty"`
	Confidence float64    `json:"confidence"`
}

// Agent is the per-orchestration memory facade over the LQM and the KB.
type Agent struct {
	lqm    *LQM
	kb     KnowledgeBase
	llm    ChatLLM
	tokens *llm.TokenCounter
	cfg    *config.MemoryConfig

	clientID  string
	projectID string
}

// NewAgent creates a memory agent scoped to one client and project.
func NewAgent(lqm *LQM, knowledge KnowledgeBase, chat ChatLLM, cfg *config.MemoryConfig, clientID, projectID string) *Agent {
	return &Agent{
		lqm:       lqm,
		kb:        knowledge,
		llm:       chat,
		tokens:    llm.NewTokenCounter(),
		cfg:       cfg,
		clientID:  clientID,
		projectID: projectID,
	}
}

// LoadSession returns the client's session context. Fast path reads the
// LQM hot map; cold path queries the KB for ACTIVE and PARKED affairs and
// populates the LQM.
func (a *Agent) LoadSession(ctx context.Context) (*models.SessionContext, error) {
	if !a.lqm.Loaded(a.clientID) {
		affairs, err := a.kb.QueryAffairs(ctx, a.clientID,
			[]models.AffairStatus{models.AffairStatusActive, models.AffairStatusParked})
		if err != nil {
			return nil, fmt.Errorf("cold affair load failed: %w", err)
		}
		a.lqm.Populate(a.clientID, affairs)
		slog.Debug("Cold-loaded affairs from KB", "client_id", a.clientID, "count", len(affairs))
	}

	return &models.SessionContext{
		ClientID:      a.clientID,
		ProjectID:     a.projectID,
		ActiveAffair:  a.lqm.ActiveAffair(a.clientID),
		ParkedAffairs: a.lqm.ParkedAffairs(a.clientID),
	}, nil
}

const switchClassifierPrompt = `You decide whether a user message continues the current conversation topic or switches to another.
Current topic: %s
Other known topics:
%s
Respond with a single JSON object: {"decision":"STAY"|"SWITCH"|"NEW_AFFAIR","target_id":"<id when SWITCH>","title":"<short title when NEW_AFFAIR>","confidence":<0..1>}`

// DetectContextSwitch classifies whether the user message stays on the
// active topic, switches to a parked one, or opens a new affair. Decisions
// below the confidence threshold degrade to STAY.
func (a *Agent) DetectContextSwitch(ctx context.Context, userMessage string) (SwitchDecision, error) {
	active := a.lqm.ActiveAffair(a.clientID)
	if active == nil {
		// Nothing to stay on: a first message always opens a new affair.
		return SwitchDecision{Kind: SwitchNewAffair, Title: titleFrom(userMessage), Confidence: 1}, nil
	}

	var others strings.Builder
	for _, p := range a.lqm.ParkedAffairs(a.clientID) {
		fmt.Fprintf(&others, "- %s: %s\n", p.ID, p.Title)
	}
	if others.Len() == 0 {
		others.WriteString("(none)\n")
	}

	resp, err := a.llm.Chat(ctx, 0, []models.ChatTurn{
		{Role: models.RoleSystem, Content: fmt.Sprintf(switchClassifierPrompt, active.Title, others.String())},
		{Role: models.RoleUser, Content: userMessage},
	}, llm.Options{Priority: 0, JSONMode: true})
	if err != nil {
		// Classification is advisory: on LLM failure stay on topic.
		slog.Warn("Context-switch classification failed, staying", "error", err)
		return SwitchDecision{Kind: SwitchStay, Confidence: 0}, nil
	}

	var decision SwitchDecision
	if err := json.Unmarshal([]byte(resp.Content), &decision); err != nil {
		slog.Warn("Context-switch classifier returned invalid JSON, staying",
			"content", resp.Content)
		return SwitchDecision{Kind: SwitchStay, Confidence: 0}, nil
	}
	if decision.Confidence < a.cfg.ContextSwitchConfidenceThreshold {
		return SwitchDecision{Kind: SwitchStay, Confidence: decision.Confidence}, nil
	}
	if decision.Kind == SwitchTo && a.lqm.GetAffair(a.clientID, decision.TargetID) == nil {
		slog.Warn("Classifier targeted unknown affair, staying", "target_id", decision.TargetID)
		return SwitchDecision{Kind: SwitchStay, Confidence: decision.Confidence}, nil
	}
	return decision, nil
}

// SwitchContext applies a switch decision: parks the current active affair
// (summary queued at CRITICAL priority), then activates the target or
// creates a new affair.
func (a *Agent) SwitchContext(ctx context.Context, decision SwitchDecision) (*models.Affair, error) {
	if decision.Kind == SwitchStay {
		return a.lqm.ActiveAffair(a.clientID), nil
	}

	if current := a.lqm.ActiveAffair(a.clientID); current != nil {
		if err := a.ParkAffair(ctx, current); err != nil {
			return nil, err
		}
	}

	switch decision.Kind {
	case SwitchTo:
		target := a.lqm.GetAffair(a.clientID, decision.TargetID)
		if target == nil {
			affairs, err := a.kb.QueryAffairs(ctx, a.clientID,
				[]models.AffairStatus{models.AffairStatusParked})
			if err != nil {
				return nil, fmt.Errorf("failed to load switch target: %w", err)
			}
			for _, af := range affairs {
				if af.ID == decision.TargetID {
					target = af
					break
				}
			}
			if target == nil {
				return nil, fmt.Errorf("switch target %s not found", decision.TargetID)
			}
		}
		target.Status = models.AffairStatusActive
		target.UpdatedAt = time.Now()
		a.lqm.PutAffair(a.clientID, target)
		return target, nil

	case SwitchNewAffair:
		now := time.Now()
		affair := &models.Affair{
			ID:        uuid.New().String(),
			Title:     decision.Title,
			Status:    models.AffairStatusActive,
			KeyFacts:  make(map[string]string),
			ClientID:  a.clientID,
			ProjectID: a.projectID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		a.lqm.PutAffair(a.clientID, affair)
		return affair, nil
	}
	return nil, fmt.Errorf("unknown switch decision %q", decision.Kind)
}

// ParkAffair summarizes the affair via the LLM, marks it PARKED, and queues
// the summary write at CRITICAL priority. When ParkAffair returns, the write
// is at least buffered; KB durability arrives with the next flush.
func (a *Agent) ParkAffair(ctx context.Context, affair *models.Affair) error {
	summary, err := a.summarizeAffair(ctx, affair)
	if err != nil {
		slog.Warn("Affair summarization failed, parking with previous summary",
			"affair_id", affair.ID, "error", err)
		summary = affair.Summary
	}
	affair.Summary = summary
	affair.Status = models.AffairStatusParked
	affair.UpdatedAt = time.Now()
	a.lqm.PutAffair(a.clientID, affair)

	a.bufferAffairWrite(affair, models.WritePriorityCritical)
	return nil
}

// ResolveAffair terminally closes an affair; the KB write is queued HIGH.
func (a *Agent) ResolveAffair(ctx context.Context, affair *models.Affair) error {
	summary, err := a.summarizeAffair(ctx, affair)
	if err == nil {
		affair.Summary = summary
	}
	affair.Status = models.AffairStatusResolved
	affair.UpdatedAt = time.Now()
	a.lqm.PutAffair(a.clientID, affair)

	a.bufferAffairWrite(affair, models.WritePriorityHigh)
	return nil
}

func (a *Agent) bufferAffairWrite(affair *models.Affair, priority models.WritePriority) {
	payload, _ := json.Marshal(affair)
	a.lqm.BufferWrite(models.PendingWrite{
		SourceURN: fmt.Sprintf("affair:%s:%s", a.clientID, affair.ID),
		Content:   string(payload),
		Kind:      "affair",
		Metadata:  map[string]string{"status": string(affair.Status)},
		Priority:  priority,
	})
	a.lqm.InvalidateSearchCache(affair.Title)
}

func (a *Agent) summarizeAffair(ctx context.Context, affair *models.Affair) (string, error) {
	var transcript strings.Builder
	for _, m := range affair.Messages {
		fmt.Fprintf(&transcript, "%s: %s\n", m.Role, m.Content)
	}
	resp, err := a.llm.Chat(ctx, 0, []models.ChatTurn{
		{Role: models.RoleSystem, Content: "Summarize this conversation topic in 2-3 sentences. Keep decisions and open items."},
		{Role: models.RoleUser, Content: fmt.Sprintf("Topic: %s\nPrevious summary: %s\nRecent messages:\n%s",
			affair.Title, affair.Summary, transcript.String())},
	}, llm.Options{Priority: 0})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// Search merges write-buffer hits, cached results, and KB results, in that
// order, deduplicated by source URN. Buffer hits win so recent writes are
// always visible.
func (a *Agent) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	merged := a.lqm.SearchBuffer(query)
	seen := make(map[string]bool, len(merged))
	for _, r := range merged {
		seen[r.SourceURN] = true
	}

	appendNew := func(results []models.SearchResult) {
		for _, r := range results {
			if !seen[r.SourceURN] {
				seen[r.SourceURN] = true
				merged = append(merged, r)
			}
		}
	}

	if cached, ok := a.lqm.CachedSearch(query); ok {
		appendNew(cached)
	} else {
		kbResults, err := a.kb.Search(ctx, query, a.clientID, a.projectID, limit)
		if err != nil {
			if len(merged) == 0 {
				return nil, err
			}
			slog.Warn("KB search failed, returning buffer hits only", "error", err)
		} else {
			a.lqm.PutSearchCache(query, kbResults)
			appendNew(kbResults)
		}
	}

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// Store records a fact: updates the active affair's key facts, buffers the
// KB write, and invalidates overlapping cached searches.
func (a *Agent) Store(ctx context.Context, subject, content, category string, priority models.WritePriority, affairID string) {
	affair := a.lqm.ActiveAffair(a.clientID)
	if affairID != "" {
		if target := a.lqm.GetAffair(a.clientID, affairID); target != nil {
			affair = target
		}
	}
	if affair != nil {
		if affair.KeyFacts == nil {
			affair.KeyFacts = make(map[string]string)
		}
		affair.KeyFacts[subject] = content
		affair.UpdatedAt = time.Now()
		a.lqm.PutAffair(a.clientID, affair)
	}

	urn := fmt.Sprintf("memory:%s:%s", a.clientID, uuid.New().String())
	a.lqm.BufferWrite(models.PendingWrite{
		SourceURN: urn,
		Content:   subject + ": " + content,
		Kind:      category,
		Metadata:  map[string]string{"subject": subject},
		Priority:  priority,
	})
	a.lqm.InvalidateSearchCache(subject)
}

// ComposeContext renders the active affair (title, summary, key facts,
// pending actions) plus a brief parked-affair list as a prompt block,
// trimmed to the token budget.
func (a *Agent) ComposeContext(maxTokens int) string {
	var b strings.Builder

	if active := a.lqm.ActiveAffair(a.clientID); active != nil {
		fmt.Fprintf(&b, "## Current topic: %s\n", active.Title)
		if active.Summary != "" {
			fmt.Fprintf(&b, "%s\n", active.Summary)
		}
		if len(active.KeyFacts) > 0 {
			b.WriteString("Key facts:\n")
			for subject, fact := range active.KeyFacts {
				fmt.Fprintf(&b, "- %s: %s\n", subject, fact)
			}
		}
		if len(active.PendingActions) > 0 {
			b.WriteString("Pending actions:\n")
			for _, action := range active.PendingActions {
				fmt.Fprintf(&b, "- %s\n", action)
			}
		}
	}

	if parked := a.lqm.ParkedAffairs(a.clientID); len(parked) > 0 {
		b.WriteString("## Parked topics\n")
		for _, p := range parked {
			fmt.Fprintf(&b, "- %s (%s)\n", p.Title, p.ID)
		}
	}

	text := b.String()
	for maxTokens > 0 && a.tokens.Count(text, "gpt-4") > maxTokens {
		// Trim whole lines from the end until under budget.
		idx := strings.LastIndexByte(strings.TrimRight(text, "\n"), '\n')
		if idx <= 0 {
			break
		}
		text = text[:idx+1]
	}
	return text
}

// FlushSession drains the write buffer. CRITICAL writes use the immediate
// ingest endpoint; everything else the standard one. Failed writes stay
// buffered for the next flush (at-least-once).
func (a *Agent) FlushSession(ctx context.Context) (flushed, failed int) {
	pending := a.lqm.SnapshotBuffer()
	if len(pending) == 0 {
		return 0, 0
	}

	var synced []models.PendingWrite
	for _, pw := range pending {
		input := kb.IngestInput{
			SourceURN: pw.SourceURN,
			Content:   pw.Content,
			Kind:      pw.Kind,
			ClientID:  a.clientID,
			ProjectID: a.projectID,
			Metadata:  pw.Metadata,
		}
		var err error
		if pw.Priority == models.WritePriorityCritical {
			_, err = a.kb.IngestImmediate(ctx, input)
		} else {
			_, err = a.kb.Ingest(ctx, input)
		}
		if err != nil {
			failed++
			slog.Warn("KB flush write failed, will retry next flush",
				"source_urn", pw.SourceURN, "priority", pw.Priority.String(), "error", err)
			continue
		}
		synced = append(synced, pw)
	}

	a.lqm.RemoveSynced(synced)
	return len(synced), failed
}

// titleFrom derives a short affair title from the first user message.
func titleFrom(message string) string {
	title := strings.Join(strings.Fields(message), " ")
	if len(title) > 60 {
		title = title[:60]
	}
	return title
}
