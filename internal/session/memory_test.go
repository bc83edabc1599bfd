package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()

	sid, err := store.Create(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	userID, err := store.Get(context.Background(), sid)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	sid, err := store.Create(context.Background(), 42)
	require.NoError(t, err)

	// Still valid just inside the window.
	current = current.Add(TTL - time.Second)
	userID, err := store.Get(context.Background(), sid)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// The TTL is absolute: reads do not extend it.
	current = current.Add(2 * time.Second)
	_, err = store.Get(context.Background(), sid)
	assert.ErrorIs(t, err, ErrNoSession)

	// Expired sessions stay gone even if the clock rolls back.
	current = current.Add(-time.Minute)
	_, err = store.Get(context.Background(), sid)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStore_Destroy(t *testing.T) {
	store := NewMemoryStore()

	sid, err := store.Create(context.Background(), 42)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(context.Background(), sid))

	_, err = store.Get(context.Background(), sid)
	assert.ErrorIs(t, err, ErrNoSession)

	// Destroying twice is fine.
	assert.NoError(t, store.Destroy(context.Background(), sid))
}
