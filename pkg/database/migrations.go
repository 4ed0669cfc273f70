package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient content search over extraction tasks (audit and
// dashboard queries) and over persisted chat history.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_extraction_tasks_content_gin
		ON extraction_tasks USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create extraction content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_content_gin
		ON chat_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create chat content GIN index: %w", err)
	}

	return nil
}
