package model

import (
	"sync/atomic"
	"time"
)

// Status is the lifecycle state of a submission.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
	// StatusErased marks a submission that was dropped without a trace.
	// It is never written to the database; the submitter is invited to resubmit.
	StatusErased Status = "erased"
)

// Submission represents a user suggestion moving through moderation.
type Submission struct {
	ID              int64
	SubmitterID     string
	SubmitterHandle string // display handle, may be empty
	Content         string
	ImageRef        string // attachment URL, may be empty
	Status          Status
	SubmittedAt     int64
	ReviewerID      string
	DecidedAt       int64
}

// HasImage reports whether the submission carries an attached image.
func (s *Submission) HasImage() bool {
	return s.ImageRef != ""
}

// Terminal reports whether the status ends the submission's active lifecycle.
func (s Status) Terminal() bool {
	return s == StatusPublished || s == StatusRejected || s == StatusErased
}

// lastID is seeded from wall-clock milliseconds on first use and only moves
// forward, so ids stay unique for the process lifetime even when two
// submissions arrive in the same millisecond.
var lastID atomic.Int64

// NewSubmissionID returns a fresh submission id.
func NewSubmissionID() int64 {
	now := time.Now().UnixMilli()
	for {
		last := lastID.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if lastID.CompareAndSwap(last, next) {
			return next
		}
	}
}
