package llm

import (
	"log/slog"
	"strings"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"github.com/jervis-ai/jervis-core/pkg/models"
)

// TokenCounter estimates prompt sizes for context budgeting. It uses
// tiktoken encodings where available and falls back to a chars/4 estimate
// (local models tokenize close enough for budget purposes).
type TokenCounter struct {
	mu            sync.RWMutex
	encodingCache map[string]*tiktoken.Tiktoken
}

// NewTokenCounter creates a token counter with an empty encoding cache.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{encodingCache: make(map[string]*tiktoken.Tiktoken)}
}

// Count returns the token count of text for the given model.
func (c *TokenCounter) Count(text, model string) int {
	enc, err := c.encodingFor(model)
	if err != nil {
		slog.Debug("Token encoding unavailable, using chars/4 estimate",
			"model", model, "error", err)
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// CountTurns returns the token count of a full message list, including the
// per-message structure overhead of chat-format prompts.
func (c *TokenCounter) CountTurns(turns []models.ChatTurn, model string) int {
	const tokensPerMessage = 4
	total := 3 // reply priming
	for _, turn := range turns {
		total += tokensPerMessage
		total += c.Count(turn.Role, model)
		total += c.Count(turn.Content, model)
		for _, tc := range turn.ToolCalls {
			total += c.Count(tc.Name, model)
			total += c.Count(tc.Arguments, model)
		}
	}
	return total
}

func (c *TokenCounter) encodingFor(model string) (*tiktoken.Tiktoken, error) {
	normalized := normalizeModelName(model)

	c.mu.RLock()
	if enc, ok := c.encodingCache[normalized]; ok {
		c.mu.RUnlock()
		return enc, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if enc, ok := c.encodingCache[normalized]; ok {
		return enc, nil
	}

	enc, err := tiktoken.EncodingForModel(normalized)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}
	c.encodingCache[normalized] = enc
	return enc, nil
}

// normalizeModelName maps local and provider model IDs onto the nearest
// tiktoken-known model family.
func normalizeModelName(model string) string {
	model = strings.ToLower(model)
	if idx := strings.IndexByte(model, ':'); idx > 0 {
		model = model[:idx]
	}
	switch {
	case strings.Contains(model, "gpt-4"):
		return "gpt-4"
	case strings.Contains(model, "gpt-3.5"):
		return "gpt-3.5-turbo"
	default:
		// Qwen, Llama, Claude and friends tokenize close enough to GPT-4
		// for budgeting.
		return "gpt-4"
	}
}
