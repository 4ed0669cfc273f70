// Package memory implements the Local Quick Memory (a process-global cache
// over the knowledge base) and the per-orchestration Memory Agent that
// manages affairs, context switches, and write-behind KB persistence.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// LQM is the process-global quick memory: an affair hot map, a search
// cache, and a write-behind buffer. One mutex guards all three; every
// operation is a short in-memory transform, never an outbound call.
type LQM struct {
	mu  sync.Mutex
	cfg *config.MemoryConfig

	affairs     map[string]*clientAffairs
	searchCache map[string]*cacheEntry
	writeBuffer []models.PendingWrite
}

type clientAffairs struct {
	all         map[string]*models.Affair
	lastTouched time.Time
}

type cacheEntry struct {
	results   []models.SearchResult
	expiresAt time.Time
}

var (
	global     *LQM
	globalOnce sync.Once
)

// Initialize creates the process-global LQM. Safe to call multiple times;
// only the first call takes effect.
func Initialize(cfg *config.MemoryConfig) *LQM {
	globalOnce.Do(func() {
		global = NewLQM(cfg)
	})
	return global
}

// Global returns the process-global LQM. Panics if Initialize was not called.
func Global() *LQM {
	if global == nil {
		panic("memory: Global called before Initialize")
	}
	return global
}

// NewLQM creates an isolated LQM instance (tests use this directly).
func NewLQM(cfg *config.MemoryConfig) *LQM {
	return &LQM{
		cfg:         cfg,
		affairs:     make(map[string]*clientAffairs),
		searchCache: make(map[string]*cacheEntry),
	}
}

// --- Affair hot map ---

// Loaded reports whether the client's affairs have been populated.
func (l *LQM) Loaded(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.affairs[clientID]
	return ok
}

// Populate replaces the client's affair set. Called after a cold KB load.
func (l *LQM) Populate(clientID string, affairs []*models.Affair) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := &clientAffairs{
		all:         make(map[string]*models.Affair, len(affairs)),
		lastTouched: time.Now(),
	}
	for _, a := range affairs {
		entry.all[a.ID] = a
	}
	l.affairs[clientID] = entry
	l.evictStaleLocked()
}

// PutAffair upserts one affair. Storing an ACTIVE affair parks any other
// affair currently marked ACTIVE for the same client, preserving the
// single-ACTIVE invariant.
func (l *LQM) PutAffair(clientID string, affair *models.Affair) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.affairs[clientID]
	if !ok {
		entry = &clientAffairs{all: make(map[string]*models.Affair)}
		l.affairs[clientID] = entry
	}
	if affair.Status == models.AffairStatusActive {
		for _, other := range entry.all {
			if other.ID != affair.ID && other.Status == models.AffairStatusActive {
				other.Status = models.AffairStatusParked
			}
		}
	}
	entry.all[affair.ID] = affair
	entry.lastTouched = time.Now()
}

// ActiveAffair returns the client's single ACTIVE affair, or nil.
func (l *LQM) ActiveAffair(clientID string) *models.Affair {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.affairs[clientID]
	if !ok {
		return nil
	}
	entry.lastTouched = time.Now()
	for _, a := range entry.all {
		if a.Status == models.AffairStatusActive {
			return a
		}
	}
	return nil
}

// ParkedAffairs returns the client's PARKED affairs, most recent first.
func (l *LQM) ParkedAffairs(clientID string) []*models.Affair {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.affairs[clientID]
	if !ok {
		return nil
	}
	var out []*models.Affair
	for _, a := range entry.all {
		if a.Status == models.AffairStatusParked {
			out = append(out, a)
		}
	}
	sortAffairsByUpdated(out)
	return out
}

// GetAffair returns one affair by ID, or nil.
func (l *LQM) GetAffair(clientID, affairID string) *models.Affair {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.affairs[clientID]
	if !ok {
		return nil
	}
	return entry.all[affairID]
}

// evictStaleLocked drops client entries untouched past the TTL and trims
// per-client affair sets over the count bound (resolved first, then oldest
// parked). Caller holds l.mu.
func (l *LQM) evictStaleLocked() {
	now := time.Now()
	for clientID, entry := range l.affairs {
		if l.cfg.WarmTTL > 0 && now.Sub(entry.lastTouched) > l.cfg.WarmTTL {
			delete(l.affairs, clientID)
			continue
		}
		if l.cfg.MaxWarmEntries > 0 && len(entry.all) > l.cfg.MaxWarmEntries {
			trimAffairs(entry, l.cfg.MaxWarmEntries)
		}
	}
}

func trimAffairs(entry *clientAffairs, max int) {
	var candidates []*models.Affair
	for _, a := range entry.all {
		if a.Status != models.AffairStatusActive {
			candidates = append(candidates, a)
		}
	}
	sortAffairsByUpdated(candidates)
	// Evict from the oldest end, resolved before parked.
	for i := len(candidates) - 1; i >= 0 && len(entry.all) > max; i-- {
		if candidates[i].Status == models.AffairStatusResolved {
			delete(entry.all, candidates[i].ID)
		}
	}
	for i := len(candidates) - 1; i >= 0 && len(entry.all) > max; i-- {
		if _, still := entry.all[candidates[i].ID]; still {
			delete(entry.all, candidates[i].ID)
		}
	}
}

func sortAffairsByUpdated(affairs []*models.Affair) {
	for i := 1; i < len(affairs); i++ {
		for j := i; j > 0 && affairs[j].UpdatedAt.After(affairs[j-1].UpdatedAt); j-- {
			affairs[j], affairs[j-1] = affairs[j-1], affairs[j]
		}
	}
}

// --- Write buffer ---

// BufferWrite appends a pending KB write. When the buffer is full, the
// oldest NORMAL entry is evicted first; CRITICAL entries are never evicted,
// so a buffer full of CRITICAL writes may exceed the bound until flushed.
func (l *LQM) BufferWrite(pw models.PendingWrite) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pw.CreatedAt.IsZero() {
		pw.CreatedAt = time.Now()
	}
	if len(l.writeBuffer) >= l.cfg.WriteBufferMax {
		l.evictOneWriteLocked()
	}
	l.writeBuffer = append(l.writeBuffer, pw)
}

func (l *LQM) evictOneWriteLocked() {
	for _, want := range []models.WritePriority{models.WritePriorityNormal, models.WritePriorityHigh} {
		for i, pw := range l.writeBuffer {
			if pw.Priority == want {
				l.writeBuffer = append(l.writeBuffer[:i], l.writeBuffer[i+1:]...)
				return
			}
		}
	}
}

// SnapshotBuffer returns a copy of the pending writes.
func (l *LQM) SnapshotBuffer() []models.PendingWrite {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.PendingWrite, len(l.writeBuffer))
	copy(out, l.writeBuffer)
	return out
}

// BufferLen returns the number of pending writes.
func (l *LQM) BufferLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.writeBuffer)
}

// RemoveSynced drops writes that have been durably ingested, identified by
// source URN and creation time.
func (l *LQM) RemoveSynced(synced []models.PendingWrite) {
	if len(synced) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := make(map[string]bool, len(synced))
	for _, pw := range synced {
		keys[writeKey(pw)] = true
	}
	kept := l.writeBuffer[:0]
	for _, pw := range l.writeBuffer {
		if !keys[writeKey(pw)] {
			kept = append(kept, pw)
		}
	}
	l.writeBuffer = kept
}

func writeKey(pw models.PendingWrite) string {
	return pw.SourceURN + "|" + pw.CreatedAt.Format(time.RFC3339Nano)
}

// SearchBuffer returns pending writes whose content or source matches the
// query (case-insensitive substring over whitespace-split terms). This is
// what makes recent stores visible before the KB has ingested them.
func (l *LQM) SearchBuffer(query string) []models.SearchResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	terms := strings.Fields(strings.ToLower(query))
	var out []models.SearchResult
	for _, pw := range l.writeBuffer {
		haystack := strings.ToLower(pw.SourceURN + " " + pw.Content)
		if matchesAny(haystack, terms) {
			out = append(out, models.SearchResult{
				SourceURN: pw.SourceURN,
				Content:   pw.Content,
				Score:     1.0,
				Origin:    "buffer",
			})
		}
	}
	return out
}

func matchesAny(haystack string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

// --- Search cache ---

// CachedSearch returns unexpired cached results for the query.
func (l *LQM) CachedSearch(query string) ([]models.SearchResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.searchCache[normalizeQuery(query)]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	out := make([]models.SearchResult, len(entry.results))
	copy(out, entry.results)
	for i := range out {
		out[i].Origin = "cache"
	}
	return out, true
}

// PutSearchCache stores results for the query with the configured TTL.
func (l *LQM) PutSearchCache(query string, results []models.SearchResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	stored := make([]models.SearchResult, len(results))
	copy(stored, results)
	l.searchCache[normalizeQuery(query)] = &cacheEntry{
		results:   stored,
		expiresAt: time.Now().Add(l.cfg.SearchCacheTTL),
	}
}

// InvalidateSearchCache drops cached queries that overlap the subject, so a
// search after a store never returns stale results.
func (l *LQM) InvalidateSearchCache(subject string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	terms := strings.Fields(strings.ToLower(subject))
	for query := range l.searchCache {
		if matchesAny(query, terms) {
			delete(l.searchCache, query)
		}
	}
}

func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
