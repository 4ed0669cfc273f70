// Package orchestration implements the chat and background agentic loops:
// context assembly, the tool loop, history persistence with compression,
// graph checkpoints for approval gates, and coding-agent dispatch.
package orchestration

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/ent/chatmessage"
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// appendRetries bounds retries when two writers race for the same sequence
// number; the unique (task_id, sequence) index rejects the loser.
const appendRetries = 3

// History is the persistence layer for conversation messages and summary
// blocks.
type History struct {
	client *ent.Client
}

// NewHistory creates a history store.
func NewHistory(client *ent.Client) *History {
	return &History{client: client}
}

// Append persists one message with the next sequence number for the task.
// Allocation locks the task's newest row inside a transaction so concurrent
// appends to the same session serialize.
func (h *History) Append(ctx context.Context, taskID, role, content string, metadata map[string]interface{}) (*models.StoredMessage, error) {
	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		msg, err := h.appendOnce(ctx, taskID, role, content, metadata)
		if err == nil {
			return msg, nil
		}
		lastErr = err
		if !ent.IsConstraintError(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to allocate message sequence for task %s: %w", taskID, lastErr)
}

func (h *History) appendOnce(ctx context.Context, taskID, role, content string, metadata map[string]interface{}) (*models.StoredMessage, error) {
	tx, err := h.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	last, err := tx.ChatMessage.Query().
		Where(chatmessage.TaskIDEQ(taskID)).
		Order(ent.Desc(chatmessage.FieldSequence)).
		Limit(1).
		ForUpdate().
		First(ctx)
	sequence := 1
	if err == nil {
		sequence = last.Sequence + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read last sequence: %w", err)
	}

	create := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetRole(chatmessage.Role(role)).
		SetContent(content).
		SetSequence(sequence)
	if metadata != nil {
		create = create.SetMetadata(metadata)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}
	return toStoredMessage(row), nil
}

// Recent returns up to limit most recent messages in ascending sequence
// order, with error-like messages filtered out.
func (h *History) Recent(ctx context.Context, taskID string, limit int) ([]models.StoredMessage, error) {
	rows, err := h.client.ChatMessage.Query().
		Where(chatmessage.TaskIDEQ(taskID)).
		Order(ent.Desc(chatmessage.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}

	out := make([]models.StoredMessage, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		msg := toStoredMessage(rows[i])
		if isErrorLike(msg.Content) {
			continue
		}
		out = append(out, *msg)
	}
	return out, nil
}

// Summaries returns up to limit most recent summary blocks, newest first.
func (h *History) Summaries(ctx context.Context, taskID string, limit int) ([]models.SummaryBlock, error) {
	rows, err := h.client.ChatSummary.Query().
		Where(chatsummary.TaskIDEQ(taskID)).
		Order(ent.Desc(chatsummary.FieldSequenceEnd)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	out := make([]models.SummaryBlock, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummaryBlock(row))
	}
	return out, nil
}

// SaveSummary persists one compressed block.
func (h *History) SaveSummary(ctx context.Context, block models.SummaryBlock) error {
	create := h.client.ChatSummary.Create().
		SetID(uuid.New().String()).
		SetTaskID(block.TaskID).
		SetSequenceStart(block.SequenceStart).
		SetSequenceEnd(block.SequenceEnd).
		SetSummary(block.Summary).
		SetKeyDecisions(block.KeyDecisions).
		SetTopics(block.Topics).
		SetIsCheckpoint(block.IsCheckpoint).
		SetMessageCount(block.MessageCount)
	if block.CheckpointReason != "" {
		create = create.SetCheckpointReason(block.CheckpointReason)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save summary block: %w", err)
	}
	return nil
}

// CompressionSpan returns the sequence range not yet summarized and sitting
// before the recent window, plus how many messages it holds. ok is false
// when there is nothing eligible.
func (h *History) CompressionSpan(ctx context.Context, taskID string, recentWindow int) (start, end, count int, ok bool, err error) {
	lastEnd := 0
	latest, err := h.client.ChatSummary.Query().
		Where(chatsummary.TaskIDEQ(taskID)).
		Order(ent.Desc(chatsummary.FieldSequenceEnd)).
		First(ctx)
	if err == nil {
		lastEnd = latest.SequenceEnd
	} else if !ent.IsNotFound(err) {
		return 0, 0, 0, false, fmt.Errorf("failed to query latest summary: %w", err)
	}

	newest, err := h.client.ChatMessage.Query().
		Where(chatmessage.TaskIDEQ(taskID)).
		Order(ent.Desc(chatmessage.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, 0, 0, false, nil
		}
		return 0, 0, 0, false, fmt.Errorf("failed to query newest message: %w", err)
	}

	end = newest.Sequence - recentWindow
	start = lastEnd + 1
	if end < start {
		return 0, 0, 0, false, nil
	}
	count, err = h.client.ChatMessage.Query().
		Where(
			chatmessage.TaskIDEQ(taskID),
			chatmessage.SequenceGTE(start),
			chatmessage.SequenceLTE(end),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, 0, false, fmt.Errorf("failed to count compressible messages: %w", err)
	}
	return start, end, count, count > 0, nil
}

// Span returns the messages in [start, end] in ascending sequence order.
func (h *History) Span(ctx context.Context, taskID string, start, end int) ([]models.StoredMessage, error) {
	rows, err := h.client.ChatMessage.Query().
		Where(
			chatmessage.TaskIDEQ(taskID),
			chatmessage.SequenceGTE(start),
			chatmessage.SequenceLTE(end),
		).
		Order(ent.Asc(chatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query message span: %w", err)
	}
	out := make([]models.StoredMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toStoredMessage(row))
	}
	return out, nil
}

// isErrorLike filters failure artifacts out of assembled context so the
// model never sees raw error payloads as conversation.
func isErrorLike(content string) bool {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(strings.ToLower(trimmed), "error:") {
		return true
	}
	if strings.Contains(trimmed, "llm_call_failed") {
		return true
	}
	if strings.HasPrefix(trimmed, "{") && strings.Contains(trimmed, `"error"`) {
		return true
	}
	return false
}

func toStoredMessage(row *ent.ChatMessage) *models.StoredMessage {
	return &models.StoredMessage{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Role:      string(row.Role),
		Content:   row.Content,
		Sequence:  row.Sequence,
		Metadata:  row.Metadata,
		CreatedAt: row.CreatedAt,
	}
}

func toSummaryBlock(row *ent.ChatSummary) models.SummaryBlock {
	block := models.SummaryBlock{
		ID:            row.ID,
		TaskID:        row.TaskID,
		SequenceStart: row.SequenceStart,
		SequenceEnd:   row.SequenceEnd,
		Summary:       row.Summary,
		KeyDecisions:  row.KeyDecisions,
		Topics:        row.Topics,
		IsCheckpoint:  row.IsCheckpoint,
		MessageCount:  row.MessageCount,
		CreatedAt:     row.CreatedAt,
	}
	if row.CheckpointReason != nil {
		block.CheckpointReason = *row.CheckpointReason
	}
	return block
}
