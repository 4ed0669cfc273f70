package extraction

import (
	"context"
	"fmt"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/pkg/kb"
)

// Ingestor is the knowledge-base surface the extractor needs.
type Ingestor interface {
	Ingest(ctx context.Context, input kb.IngestInput) (*kb.IngestResult, error)
}

// KBExtractor ships task content to the knowledge base, which chunks and
// embeds it, and records the produced chunk IDs.
type KBExtractor struct {
	kb Ingestor
}

// NewKBExtractor creates the production extractor.
func NewKBExtractor(ingestor Ingestor) *KBExtractor {
	return &KBExtractor{kb: ingestor}
}

// Extract implements TaskExtractor.
func (e *KBExtractor) Extract(ctx context.Context, task *ent.ExtractionTask) ([]string, error) {
	input := kb.IngestInput{
		SourceURN: task.SourceUrn,
		Content:   task.Content,
		ClientID:  task.ClientID,
	}
	if task.Kind != nil {
		input.Kind = *task.Kind
	}
	if task.ProjectID != nil {
		input.ProjectID = *task.ProjectID
	}
	result, err := e.kb.Ingest(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("kb ingest failed for %s: %w", task.SourceUrn, err)
	}
	return result.ChunkIDs, nil
}
