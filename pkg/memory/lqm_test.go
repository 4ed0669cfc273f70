package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

func testMemoryConfig() *config.MemoryConfig {
	return &config.MemoryConfig{
		MaxWarmEntries:                   8,
		WarmTTL:                          time.Hour,
		WriteBufferMax:                   4,
		SearchCacheTTL:                   time.Minute,
		ContextSwitchConfidenceThreshold: 0.7,
	}
}

func newAffair(id, title string, status models.AffairStatus) *models.Affair {
	now := time.Now()
	return &models.Affair{
		ID:        id,
		Title:     title,
		Status:    status,
		ClientID:  "client-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSingleActiveInvariant(t *testing.T) {
	l := NewLQM(testMemoryConfig())

	first := newAffair("a1", "billing migration", models.AffairStatusActive)
	second := newAffair("a2", "incident review", models.AffairStatusActive)
	l.PutAffair("client-1", first)
	l.PutAffair("client-1", second)

	active := l.ActiveAffair("client-1")
	require.NotNil(t, active)
	assert.Equal(t, "a2", active.ID)
	assert.Equal(t, models.AffairStatusParked, first.Status, "previous active must be parked")

	parked := l.ParkedAffairs("client-1")
	require.Len(t, parked, 1)
	assert.Equal(t, "a1", parked[0].ID)
}

func TestWriteBufferEvictsNormalFirst(t *testing.T) {
	l := NewLQM(testMemoryConfig())

	l.BufferWrite(models.PendingWrite{SourceURN: "w1", Priority: models.WritePriorityNormal})
	l.BufferWrite(models.PendingWrite{SourceURN: "w2", Priority: models.WritePriorityCritical})
	l.BufferWrite(models.PendingWrite{SourceURN: "w3", Priority: models.WritePriorityNormal})
	l.BufferWrite(models.PendingWrite{SourceURN: "w4", Priority: models.WritePriorityCritical})
	l.BufferWrite(models.PendingWrite{SourceURN: "w5", Priority: models.WritePriorityNormal})

	urns := map[string]bool{}
	for _, pw := range l.SnapshotBuffer() {
		urns[pw.SourceURN] = true
	}
	assert.False(t, urns["w1"], "oldest NORMAL entry must be evicted first")
	assert.True(t, urns["w2"], "CRITICAL entries must survive eviction")
	assert.True(t, urns["w4"], "CRITICAL entries must survive eviction")
}

func TestWriteBufferNeverEvictsCritical(t *testing.T) {
	l := NewLQM(testMemoryConfig())

	for i := 0; i < 6; i++ {
		l.BufferWrite(models.PendingWrite{
			SourceURN: fmt.Sprintf("crit-%d", i),
			Priority:  models.WritePriorityCritical,
		})
	}

	// Buffer may exceed its bound rather than drop CRITICAL writes.
	assert.Equal(t, 6, l.BufferLen())
}

func TestSearchBufferMatchesPendingWrites(t *testing.T) {
	l := NewLQM(testMemoryConfig())
	l.BufferWrite(models.PendingWrite{
		SourceURN: "memory:client-1:x",
		Content:   "deploy window: friday 14:00 UTC",
		Priority:  models.WritePriorityNormal,
	})

	hits := l.SearchBuffer("deploy window")
	require.Len(t, hits, 1)
	assert.Equal(t, "buffer", hits[0].Origin)

	assert.Empty(t, l.SearchBuffer("unrelated kubernetes"))
}

func TestSearchCacheExpiryAndInvalidation(t *testing.T) {
	cfg := testMemoryConfig()
	cfg.SearchCacheTTL = 50 * time.Millisecond
	l := NewLQM(cfg)

	results := []models.SearchResult{{SourceURN: "kb:1", Content: "x", Origin: "kb"}}
	l.PutSearchCache("deploy schedule", results)

	cached, ok := l.CachedSearch("Deploy  Schedule")
	require.True(t, ok, "lookup must normalize whitespace and case")
	assert.Equal(t, "cache", cached[0].Origin)

	// Overlapping subject invalidates.
	l.PutSearchCache("billing rates", results)
	l.InvalidateSearchCache("billing")
	_, ok = l.CachedSearch("billing rates")
	assert.False(t, ok)

	// TTL expiry.
	time.Sleep(80 * time.Millisecond)
	_, ok = l.CachedSearch("deploy schedule")
	assert.False(t, ok)
}

func TestRemoveSynced(t *testing.T) {
	l := NewLQM(testMemoryConfig())
	l.BufferWrite(models.PendingWrite{SourceURN: "w1", Priority: models.WritePriorityNormal})
	l.BufferWrite(models.PendingWrite{SourceURN: "w2", Priority: models.WritePriorityNormal})

	snapshot := l.SnapshotBuffer()
	l.RemoveSynced(snapshot[:1])

	remaining := l.SnapshotBuffer()
	require.Len(t, remaining, 1)
	assert.Equal(t, "w2", remaining[0].SourceURN)
}

func TestWarmTTLEviction(t *testing.T) {
	cfg := testMemoryConfig()
	cfg.WarmTTL = time.Nanosecond
	l := NewLQM(cfg)

	l.Populate("client-1", []*models.Affair{newAffair("a1", "t", models.AffairStatusActive)})
	time.Sleep(time.Millisecond)
	// Populating another client triggers the sweep.
	l.Populate("client-2", nil)

	assert.False(t, l.Loaded("client-1"), "stale client entry must be TTL-evicted")
}
