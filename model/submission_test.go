package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSubmissionID_Unique(t *testing.T) {
	const n = 1000

	var mu sync.Mutex
	seen := make(map[int64]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewSubmissionID()
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestNewSubmissionID_Monotonic(t *testing.T) {
	prev := NewSubmissionID()
	for i := 0; i < 100; i++ {
		next := NewSubmissionID()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusPublished.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusErased.Terminal())
}
