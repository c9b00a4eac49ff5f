package moderation

import (
	"sync"

	"suggestbox/model"

	"github.com/stretchr/testify/mock"
)

// callLog records the relative order of side effects across mocks.
type callLog struct {
	mu  sync.Mutex
	seq []string
}

func (c *callLog) record(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = append(c.seq, name)
}

func (c *callLog) calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.seq))
	copy(out, c.seq)
	return out
}

type mockStore struct {
	mock.Mock
	log *callLog
}

func (m *mockStore) Create(sub *model.Submission) error {
	if m.log != nil {
		m.log.record("store.Create")
	}
	args := m.Called(sub)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
	log *callLog
}

func (m *mockNotifier) SendPrompt(sub *model.Submission) error {
	if m.log != nil {
		m.log.record("notifier.SendPrompt")
	}
	args := m.Called(sub)
	return args.Error(0)
}

func (m *mockNotifier) NotifySubmitter(userID, text string) error {
	if m.log != nil {
		m.log.record("notifier.NotifySubmitter")
	}
	args := m.Called(userID, text)
	return args.Error(0)
}

func (m *mockNotifier) Publish(sub *model.Submission) (PublishedRef, error) {
	if m.log != nil {
		m.log.record("notifier.Publish")
	}
	args := m.Called(sub)
	return args.Get(0).(PublishedRef), args.Error(1)
}

func (m *mockNotifier) NotifyModerators(text string) error {
	if m.log != nil {
		m.log.record("notifier.NotifyModerators")
	}
	args := m.Called(text)
	return args.Error(0)
}

type mockPrompter struct {
	mock.Mock
	log *callLog
}

func (m *mockPrompter) Ack(text string) error {
	if m.log != nil {
		m.log.record("prompt.Ack")
	}
	args := m.Called(text)
	return args.Error(0)
}

func (m *mockPrompter) EditOutcome(sub *model.Submission) error {
	if m.log != nil {
		m.log.record("prompt.EditOutcome")
	}
	args := m.Called(sub)
	return args.Error(0)
}
