package queue

import (
	"sync"

	"suggestbox/model"
)

// PendingQueue is the in-memory registry of submissions awaiting moderation,
// keyed by submission id. It holds pending submissions only: intake inserts,
// the decision processor removes. The queue is volatile; undecided items do
// not survive a restart.
type PendingQueue struct {
	mu    sync.RWMutex
	items map[int64]*model.Submission
}

// New returns an empty queue.
func New() *PendingQueue {
	return &PendingQueue{items: make(map[int64]*model.Submission)}
}

// Insert adds a submission. Intake guarantees id freshness.
func (q *PendingQueue) Insert(sub *model.Submission) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items[sub.ID] = sub
}

// Lookup returns the pending submission for id, if any.
func (q *PendingQueue) Lookup(id int64) (*model.Submission, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	sub, ok := q.items[id]
	return sub, ok
}

// Take removes and returns the submission for id in one critical section.
// At most one caller wins for a given id; every later Take reports not found.
// This is what makes a moderator decision at-most-once.
func (q *PendingQueue) Take(id int64) (*model.Submission, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	sub, ok := q.items[id]
	if ok {
		delete(q.items, id)
	}
	return sub, ok
}

// Remove deletes the entry for id. Safe to call for an absent id.
func (q *PendingQueue) Remove(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.items, id)
}

// Len returns the number of submissions awaiting moderation.
func (q *PendingQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.items)
}
