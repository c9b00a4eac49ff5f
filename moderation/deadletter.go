package moderation

import (
	"sync"
	"time"

	"suggestbox/model"

	"github.com/google/uuid"
)

// DeadLetterEntry is a decided submission whose database write failed,
// retained in memory so the outcome is not silently lost.
type DeadLetterEntry struct {
	Ref        string // operator-facing reference, quoted in the moderator alert
	Submission *model.Submission
	Cause      string
	FailedAt   time.Time
}

// DeadLetter is a bounded in-memory buffer of failed terminal writes.
// It is a best-effort safety net, not a retry queue: entries are only ever
// read back for operator inspection, and the oldest are evicted at capacity.
type DeadLetter struct {
	mu      sync.Mutex
	cap     int
	entries []DeadLetterEntry
}

// NewDeadLetter returns a buffer holding at most capacity entries.
func NewDeadLetter(capacity int) *DeadLetter {
	if capacity <= 0 {
		capacity = 1
	}
	return &DeadLetter{cap: capacity}
}

// Add retains a submission whose persistence failed and returns the entry.
func (d *DeadLetter) Add(sub *model.Submission, cause error) DeadLetterEntry {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry := DeadLetterEntry{
		Ref:        uuid.New().String(),
		Submission: sub,
		Cause:      cause.Error(),
		FailedAt:   time.Now(),
	}

	d.entries = append(d.entries, entry)
	if len(d.entries) > d.cap {
		d.entries = d.entries[len(d.entries)-d.cap:]
	}

	return entry
}

// Len returns the number of retained entries.
func (d *DeadLetter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.entries)
}

// Snapshot returns a copy of the retained entries, oldest first.
func (d *DeadLetter) Snapshot() []DeadLetterEntry {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]DeadLetterEntry, len(d.entries))
	copy(out, d.entries)
	return out
}
