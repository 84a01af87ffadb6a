package store

//go:generate mockgen -destination=mock/store.go -package=mock bitbucket.org/sotavant/voice-skill/internal/store Store

import (
	"context"
	"github.com/pkg/errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store keeps the voice messages users leave for each other.
type Store interface {
	// FindRecipient returns the user id registered under username.
	FindRecipient(ctx context.Context, username string) (userID string, err error)
	// ListMessages returns the messages received by userID, oldest first.
	ListMessages(ctx context.Context, userID string) ([]Message, error)
	GetMessage(ctx context.Context, id string) (*Message, error)
	SaveMessage(ctx context.Context, userID string, msg Message) error
}

type Message struct {
	ID      string
	Sender  string
	Time    time.Time
	Payload string
}
