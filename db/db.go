package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Open opens the SQLite database at path and creates tables if they don't exist.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
