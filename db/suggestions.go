package db

import (
	"database/sql"

	"suggestbox/model"
	"suggestbox/moderation"
)

// Store is the persistence gateway for terminal suggestion outcomes.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database connection.
func NewStore(conn *sql.DB) *Store {
	return &Store{db: conn}
}

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSuggestion scans a row into a Submission struct.
func scanSuggestion(scanner rowScanner) (*model.Submission, error) {
	var sub model.Submission
	var status string
	err := scanner.Scan(
		&sub.ID, &sub.SubmitterID, &sub.SubmitterHandle, &sub.Content,
		&sub.ImageRef, &status, &sub.SubmittedAt, &sub.ReviewerID, &sub.DecidedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	sub.Status = model.Status(status)
	return &sub, nil
}

// Create records a suggestion with its terminal status. The decision
// processor guarantees at most one call per suggestion id.
func (s *Store) Create(sub *model.Submission) error {
	stmt, err := s.db.Prepare(`INSERT INTO suggestions(
		id, submitter_id, submitter_handle, content, image_ref, status, submitted_at, reviewer_id, decided_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &moderation.PersistenceError{Op: "create", Err: err}
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		sub.ID, sub.SubmitterID, sub.SubmitterHandle, sub.Content,
		sub.ImageRef, string(sub.Status), sub.SubmittedAt, sub.ReviewerID, sub.DecidedAt,
	)
	if err != nil {
		return &moderation.PersistenceError{Op: "create", Err: err}
	}

	return nil
}

// GetSuggestion retrieves a recorded suggestion by its ID.
func (s *Store) GetSuggestion(id int64) (*model.Submission, error) {
	row := s.db.QueryRow(`SELECT
		id, submitter_id, COALESCE(submitter_handle, '') as submitter_handle, content,
		COALESCE(image_ref, '') as image_ref, status, submitted_at,
		COALESCE(reviewer_id, '') as reviewer_id, decided_at
	FROM suggestions WHERE id = ?`, id)

	return scanSuggestion(row)
}

// CountByStatus returns the number of recorded suggestions per terminal status.
func (s *Store) CountByStatus() (map[model.Status]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM suggestions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[model.Status(status)] = count
	}

	return counts, rows.Err()
}
