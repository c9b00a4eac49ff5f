package db

import (
	"errors"
	"testing"

	"suggestbox/model"
	"suggestbox/moderation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decidedSuggestion() *model.Submission {
	return &model.Submission{
		ID:              1736418000123,
		SubmitterID:     "42",
		SubmitterHandle: "someone",
		Content:         "Hello",
		ImageRef:        "",
		Status:          model.StatusPublished,
		SubmittedAt:     1736417000,
		ReviewerID:      "mod-1",
		DecidedAt:       1736418000,
	}
}

func TestStoreCreate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewStore(conn)
	sub := decidedSuggestion()

	mock.ExpectPrepare("INSERT INTO suggestions").
		ExpectExec().
		WithArgs(
			sub.ID, sub.SubmitterID, sub.SubmitterHandle, sub.Content,
			sub.ImageRef, string(sub.Status), sub.SubmittedAt, sub.ReviewerID, sub.DecidedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Create(sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreate_Failure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewStore(conn)

	mock.ExpectPrepare("INSERT INTO suggestions").
		ExpectExec().
		WillReturnError(errors.New("database is locked"))

	err = store.Create(decidedSuggestion())
	require.Error(t, err)

	var perr *moderation.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "create", perr.Op)
	assert.Contains(t, perr.Err.Error(), "database is locked")
}

func TestGetSuggestion(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewStore(conn)
	want := decidedSuggestion()

	rows := sqlmock.NewRows([]string{
		"id", "submitter_id", "submitter_handle", "content",
		"image_ref", "status", "submitted_at", "reviewer_id", "decided_at",
	}).AddRow(
		want.ID, want.SubmitterID, want.SubmitterHandle, want.Content,
		want.ImageRef, string(want.Status), want.SubmittedAt, want.ReviewerID, want.DecidedAt,
	)

	mock.ExpectQuery("SELECT").WithArgs(want.ID).WillReturnRows(rows)

	got, err := store.GetSuggestion(want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestGetSuggestion_NotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewStore(conn)

	mock.ExpectQuery("SELECT").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := store.GetSuggestion(99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCountByStatus(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewStore(conn)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("published", 3).
		AddRow("rejected", 1)
	mock.ExpectQuery("SELECT status, COUNT").WillReturnRows(rows)

	counts, err := store.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, map[model.Status]int{
		model.StatusPublished: 3,
		model.StatusRejected:  1,
	}, counts)
}
