// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatSummary is the predicate function for chatsummary builders.
type ChatSummary func(*sql.Selector)

// ExtractionTask is the predicate function for extractiontask builders.
type ExtractionTask func(*sql.Selector)

// GraphCheckpoint is the predicate function for graphcheckpoint builders.
type GraphCheckpoint func(*sql.Selector)
