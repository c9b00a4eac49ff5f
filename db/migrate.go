package db

import (
	"database/sql"
	"fmt"
)

// createTables 如果数据库中不存在必要的表，则创建它们
func createTables(conn *sql.DB) error {
	// 用于创建 'suggestions' 表的 SQL 语句
	createSuggestionsTableSQL := `
	CREATE TABLE IF NOT EXISTS suggestions (
		id INTEGER PRIMARY KEY,
		submitter_id TEXT NOT NULL,
		submitter_handle TEXT,
		content TEXT NOT NULL,
		image_ref TEXT,
		status TEXT NOT NULL,
		submitted_at INTEGER NOT NULL,
		reviewer_id TEXT,
		decided_at INTEGER NOT NULL
	);`

	if _, err := conn.Exec(createSuggestionsTableSQL); err != nil {
		return fmt.Errorf("create suggestions table: %w", err)
	}

	return nil
}
