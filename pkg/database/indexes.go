package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// These power the session search endpoint over message content and titles;
// Ent schema annotations cannot express them.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_content_gin
		ON chat_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create message content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_conversation_sessions_title_gin
		ON conversation_sessions USING gin(to_tsvector('english', COALESCE(title, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create session title GIN index: %w", err)
	}

	return nil
}
