package store

import (
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Register("ann", "u-ann")

	userID, err := m.FindRecipient(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, "u-ann", userID)

	_, err = m.FindRecipient(ctx, "bob")
	assert.True(t, errors.Is(err, ErrNotFound))

	messages, err := m.ListMessages(ctx, "u-ann")
	require.NoError(t, err)
	assert.Empty(t, messages)

	require.NoError(t, m.SaveMessage(ctx, "u-ann", Message{Sender: "u-bob", Payload: "hi"}))
	require.NoError(t, m.SaveMessage(ctx, "u-ann", Message{ID: "fixed", Sender: "u-bob", Payload: "again"}))

	messages, err = m.ListMessages(ctx, "u-ann")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.NotEmpty(t, messages[0].ID)
	assert.False(t, messages[0].Time.IsZero())
	assert.Equal(t, "again", messages[1].Payload)

	msg, err := m.GetMessage(ctx, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "again", msg.Payload)

	_, err = m.GetMessage(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	messages[0].Payload = "changed"
	again, _ := m.ListMessages(ctx, "u-ann")
	assert.Equal(t, "hi", again[0].Payload)
}
