package moderation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySubmission means the submission carried neither text nor an
	// image. Reported back to the submitter, nothing is enqueued.
	ErrEmptySubmission = errors.New("submission has no text and no image")

	// ErrMissingCaption means a photo submission arrived without a caption.
	// Reported back to the submitter, nothing is enqueued.
	ErrMissingCaption = errors.New("photo submission has no caption")

	// ErrStaleAction means a decision referenced an id that is no longer
	// pending: a double click, an already resolved item, or an item from
	// before a restart. A soft failure on the moderation surface.
	ErrStaleAction = errors.New("suggestion is no longer pending")

	// ErrBadToken means an action token did not parse.
	ErrBadToken = errors.New("malformed action token")
)

// PersistenceError wraps a storage-layer fault from the persistence gateway.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
