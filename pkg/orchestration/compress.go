package orchestration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/llm"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

const compressRetries = 2

const compressPrompt = `Summarize the following conversation span into JSON with this exact shape:
{"summary": "...", "key_decisions": ["..."], "topics": ["..."], "is_checkpoint": false, "checkpoint_reason": ""}

Set is_checkpoint true only when the span ends a distinct phase of work (a decision was finalized, a deliverable shipped, the topic closed) and give the reason.

Conversation:
%s`

// ChatLLM is the LLM surface the orchestration engine depends on.
type ChatLLM interface {
	Chat(ctx context.Context, tier int, messages []models.ChatTurn, opts llm.Options) (*llm.Response, error)
	NextTier(current int, rules models.ProjectRules) (int, bool)
	ContextTokens(tier int) int
	ModelFor(tier int) string
}

// Compressor folds old history into summary blocks once enough
// unsummarized messages pile up before the recent window.
type Compressor struct {
	history *History
	llm     ChatLLM
	cfg     *config.OrchestrationConfig
}

// NewCompressor creates a history compressor.
func NewCompressor(history *History, chatLLM ChatLLM, cfg *config.OrchestrationConfig) *Compressor {
	return &Compressor{history: history, llm: chatLLM, cfg: cfg}
}

// MaybeCompress checks the threshold and, when crossed, summarizes the
// eligible span into one block. Intended to run fire-and-forget after an
// exchange; terminal failure is logged, never propagated.
func (c *Compressor) MaybeCompress(ctx context.Context, taskID string) {
	if err := c.compress(ctx, taskID); err != nil {
		slog.Error("History compression failed", "task_id", taskID, "error", err)
	}
}

func (c *Compressor) compress(ctx context.Context, taskID string) error {
	start, end, count, ok, err := c.history.CompressionSpan(ctx, taskID, c.cfg.RecentMessageLimit)
	if err != nil {
		return err
	}
	if !ok || count < c.cfg.CompressThreshold {
		return nil
	}

	span, err := c.history.Span(ctx, taskID, start, end)
	if err != nil {
		return err
	}

	var transcript strings.Builder
	for _, msg := range span {
		fmt.Fprintf(&transcript, "%s: %s\n", msg.Role, msg.Content)
	}

	block, err := c.summarize(ctx, transcript.String())
	if err != nil {
		return err
	}
	block.TaskID = taskID
	block.SequenceStart = start
	block.SequenceEnd = end
	block.MessageCount = count

	if err := c.history.SaveSummary(ctx, *block); err != nil {
		return err
	}
	slog.Info("Compressed chat history",
		"task_id", taskID,
		"sequence_start", start,
		"sequence_end", end,
		"messages", count)
	return nil
}

func (c *Compressor) summarize(ctx context.Context, transcript string) (*models.SummaryBlock, error) {
	prompt := fmt.Sprintf(compressPrompt, transcript)
	var lastErr error
	for attempt := 0; attempt <= compressRetries; attempt++ {
		resp, err := c.llm.Chat(ctx, 0, []models.ChatTurn{
			{Role: models.RoleUser, Content: prompt},
		}, llm.Options{Priority: 1, JSONMode: true})
		if err != nil {
			lastErr = err
			continue
		}

		var parsed struct {
			Summary          string   `json:"summary"`
			KeyDecisions     []string `json:"key_decisions"`
			Topics           []string `json:"topics"`
			IsCheckpoint     bool     `json:"is_checkpoint"`
			CheckpointReason string   `json:"checkpoint_reason"`
		}
		if err := json.Unmarshal([]byte(resp.Content), &parsed); err != nil || parsed.Summary == "" {
			lastErr = fmt.Errorf("unparseable summary response: %w", err)
			continue
		}
		return &models.SummaryBlock{
			Summary:          parsed.Summary,
			KeyDecisions:     parsed.KeyDecisions,
			Topics:           parsed.Topics,
			IsCheckpoint:     parsed.IsCheckpoint,
			CheckpointReason: parsed.CheckpointReason,
		}, nil
	}
	return nil, fmt.Errorf("summarization failed after %d attempts: %w", compressRetries+1, lastErr)
}
