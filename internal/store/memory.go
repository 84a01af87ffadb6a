package store

import (
	"context"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"sync"
	"time"
)

// Memory is a Store kept in process memory.
type Memory struct {
	mu         sync.RWMutex
	recipients map[string]string
	inbox      map[string][]Message
	byID       map[string]Message
}

func NewMemory() *Memory {
	return &Memory{
		recipients: make(map[string]string),
		inbox:      make(map[string][]Message),
		byID:       make(map[string]Message),
	}
}

// Register makes userID reachable as username.
func (m *Memory) Register(username, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipients[username] = userID
}

func (m *Memory) FindRecipient(_ context.Context, username string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.recipients[username]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "recipient %q", username)
	}
	return userID, nil
}

func (m *Memory) ListMessages(_ context.Context, userID string) ([]Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]Message(nil), m.inbox[userID]...), nil
}

func (m *Memory) GetMessage(_ context.Context, id string) (*Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msg, ok := m.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "message %s", id)
	}
	return &msg, nil
}

// SaveMessage assigns an id and a timestamp when the message has none.
func (m *Memory) SaveMessage(_ context.Context, userID string, msg Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Time.IsZero() {
		msg.Time = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.inbox[userID] = append(m.inbox[userID], msg)
	m.byID[msg.ID] = msg
	return nil
}
