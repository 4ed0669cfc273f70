package orchestration

import (
	"context"
	"fmt"
	"strings"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// summaryBudgetShare is the fraction of the remaining budget summaries may
// consume; recent messages get whatever is left.
const summaryBudgetShare = 0.6

// Assembler builds the LLM message list from history, summaries, and the
// injected memory context, inside the tier's token budget.
type Assembler struct {
	history *History
	tokens  *llm.TokenCounter
	cfg     *config.OrchestrationConfig
}

// NewAssembler creates a context assembler.
func NewAssembler(history *History, tokens *llm.TokenCounter, cfg *config.OrchestrationConfig) *Assembler {
	return &Assembler{history: history, tokens: tokens, cfg: cfg}
}

// AssembleInput parameterizes one assembly.
type AssembleInput struct {
	TaskID        string
	SystemPrompt  string
	MemoryContext string
	UserMessage   string
	Model         string

	// ContextWindow is the tier's total context size in tokens.
	ContextWindow int

	// Seed history passed by the caller (e.g. the request's chat_history)
	// used when the task has no persisted messages yet.
	Seed []models.ChatTurn
}

// Assemble produces the message list: one system block (system prompt,
// memory context, admitted summaries), then the admitted recent messages,
// then the new user message.
func (a *Assembler) Assemble(ctx context.Context, in AssembleInput) ([]models.ChatTurn, error) {
	budget := in.ContextWindow - a.cfg.SystemReserveTokens - a.cfg.ResponseReserveTokens
	if budget < 0 {
		budget = 0
	}
	budget -= a.tokens.Count(in.MemoryContext, in.Model)

	summaries, err := a.history.Summaries(ctx, in.TaskID, a.cfg.SummaryLimit)
	if err != nil {
		return nil, err
	}
	recent, err := a.history.Recent(ctx, in.TaskID, a.cfg.RecentMessageLimit)
	if err != nil {
		return nil, err
	}

	// Summaries arrive newest-first; admit from the newest until the share
	// is spent, then emit oldest-first so the narrative reads forward.
	summaryBudget := int(float64(budget) * summaryBudgetShare)
	var admitted []models.SummaryBlock
	for _, block := range summaries {
		cost := a.tokens.Count(block.Summary, in.Model)
		if cost > summaryBudget {
			break
		}
		summaryBudget -= cost
		budget -= cost
		admitted = append(admitted, block)
	}

	system := a.buildSystemBlock(in.SystemPrompt, in.MemoryContext, admitted)

	// Recent messages are ascending; admit newest-first within the rest of
	// the budget, then emit chronologically.
	var keep []models.StoredMessage
	for i := len(recent) - 1; i >= 0; i-- {
		cost := a.tokens.Count(recent[i].Content, in.Model)
		if cost > budget {
			break
		}
		budget -= cost
		keep = append([]models.StoredMessage{recent[i]}, keep...)
	}

	turns := []models.ChatTurn{{Role: models.RoleSystem, Content: system}}
	if len(keep) == 0 && len(in.Seed) > 0 {
		turns = append(turns, in.Seed...)
	}
	for _, msg := range keep {
		turns = append(turns, models.ChatTurn{Role: msg.Role, Content: msg.Content})
	}
	if in.UserMessage != "" {
		turns = append(turns, models.ChatTurn{Role: models.RoleUser, Content: in.UserMessage})
	}
	return turns, nil
}

func (a *Assembler) buildSystemBlock(systemPrompt, memoryContext string, summaries []models.SummaryBlock) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	if memoryContext != "" {
		b.WriteString("\n\n")
		b.WriteString(memoryContext)
	}
	if len(summaries) > 0 {
		b.WriteString("\n\n## Earlier conversation\n")
		for i := len(summaries) - 1; i >= 0; i-- {
			block := summaries[i]
			fmt.Fprintf(&b, "\n[messages %d-%d] %s\n", block.SequenceStart, block.SequenceEnd, block.Summary)
			for _, decision := range block.KeyDecisions {
				fmt.Fprintf(&b, "- decided: %s\n", decision)
			}
		}
	}
	return b.String()
}
