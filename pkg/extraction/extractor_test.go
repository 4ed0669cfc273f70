package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/pkg/kb"
)

type capturingIngestor struct {
	got kb.IngestInput
}

func (c *capturingIngestor) Ingest(ctx context.Context, input kb.IngestInput) (*kb.IngestResult, error) {
	c.got = input
	return &kb.IngestResult{ChunkIDs: []string{"chunk-1"}}, nil
}

func TestKBExtractorMapsTaskFields(t *testing.T) {
	ingestor := &capturingIngestor{}
	kind := "chat_turn"
	project := "proj-1"

	chunks, err := NewKBExtractor(ingestor).Extract(context.Background(), &ent.ExtractionTask{
		SourceUrn: "chat:client-1:turn-1",
		Content:   "the user prefers tabs",
		ClientID:  "client-1",
		Kind:      &kind,
		ProjectID: &project,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"chunk-1"}, chunks)
	assert.Equal(t, "chat_turn", ingestor.got.Kind)
	assert.Equal(t, "proj-1", ingestor.got.ProjectID)
}

func TestKBExtractorHandlesUnsetOptionalFields(t *testing.T) {
	ingestor := &capturingIngestor{}

	_, err := NewKBExtractor(ingestor).Extract(context.Background(), &ent.ExtractionTask{
		SourceUrn: "doc:bare",
		Content:   "content",
		ClientID:  "client-1",
	})
	require.NoError(t, err)
	assert.Empty(t, ingestor.got.Kind)
	assert.Empty(t, ingestor.got.ProjectID)
}
