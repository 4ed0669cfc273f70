// Package models contains the shared domain types passed between the
// orchestration engine, the memory subsystem, and the API layer.
package models

import "time"

// AffairStatus is the lifecycle state of an affair.
type AffairStatus string

// Affair lifecycle states.
const (
	AffairStatusActive   AffairStatus = "active"
	AffairStatusParked   AffairStatus = "parked"
	AffairStatusResolved AffairStatus = "resolved"
)

// Affair is a thematic container for an ongoing conversation topic with a
// client. Per client, at most one affair is ACTIVE at any time.
type Affair struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Summary        string            `json:"summary"`
	Status         AffairStatus      `json:"status"`
	Topics         []string          `json:"topics,omitempty"`
	KeyFacts       map[string]string `json:"key_facts,omitempty"`
	PendingActions []string          `json:"pending_actions,omitempty"`
	Messages       []AffairMessage   `json:"messages,omitempty"`
	ClientID       string            `json:"client_id"`
	ProjectID      string            `json:"project_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AffairMessage is one entry of an affair's bounded recent history.
type AffairMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// WritePriority orders pending KB writes. CRITICAL entries may not be
// evicted from the write buffer before they are flushed.
type WritePriority int

// Write priorities, highest first.
const (
	WritePriorityCritical WritePriority = 0
	WritePriorityHigh     WritePriority = 1
	WritePriorityNormal   WritePriority = 2
)

// String returns the lowercase name of the priority.
func (p WritePriority) String() string {
	switch p {
	case WritePriorityCritical:
		return "critical"
	case WritePriorityHigh:
		return "high"
	default:
		return "normal"
	}
}

// PendingWrite is a queued KB write held in the LQM write buffer until
// flushed. The buffer is searchable so read-your-writes holds before the
// KB has ingested the content.
type PendingWrite struct {
	SourceURN string            `json:"source_urn"`
	Content   string            `json:"content"`
	Kind      string            `json:"kind"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Priority  WritePriority     `json:"priority"`
	CreatedAt time.Time         `json:"created_at"`
}

// UserPreferences carries per-client presentation and behavior preferences
// loaded alongside the session context.
type UserPreferences struct {
	Language      string `json:"language,omitempty"`
	Verbosity     string `json:"verbosity,omitempty"`
	PreferredTier string `json:"preferred_tier,omitempty"`
}

// SessionContext is the per-orchestration view over the memory substrate,
// rebuilt at orchestration start from the LQM hot cache or cold-loaded
// from the KB.
type SessionContext struct {
	ClientID      string          `json:"client_id"`
	ProjectID     string          `json:"project_id,omitempty"`
	ActiveAffair  *Affair         `json:"active_affair,omitempty"`
	ParkedAffairs []*Affair       `json:"parked_affairs,omitempty"`
	Preferences   UserPreferences `json:"user_preferences"`
}

// SearchResult is one hit returned by a memory search, regardless of
// whether it came from the write buffer, the search cache, or the KB.
type SearchResult struct {
	SourceURN string  `json:"source_urn"`
	Content   string  `json:"content"`
	Score     float64 `json:"score"`
	Origin    string  `json:"origin"` // "buffer", "cache", "kb"
}
