// Package session tracks logged-in users as an explicit session-id to
// user-id mapping in a pluggable store: in-memory for tests and
// development, Redis-backed in production.
package session

import (
	"context"
	"errors"
	"time"
)

// TTL is the fixed session lifetime. Sessions are not refreshed on
// activity; the expiry is absolute from login.
const TTL = time.Hour

// ErrNoSession is returned when a session id is unknown or expired.
var ErrNoSession = errors.New("no active session")

// Store maps opaque session ids to user ids with a fixed expiry.
type Store interface {
	// Create starts a session for the user and returns its id.
	Create(ctx context.Context, userID uint) (string, error)
	// Get resolves a session id to a user id, or ErrNoSession.
	Get(ctx context.Context, sessionID string) (uint, error)
	// Destroy ends a session. Destroying an unknown id is a no-op.
	Destroy(ctx context.Context, sessionID string) error
}
