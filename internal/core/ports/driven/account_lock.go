package driven

import (
	"context"
	"time"
)

// AccountLock serializes read-modify-write mutations on a single account
// across instances. Token issuance is the security-critical path: without
// this, a login racing a logout can leave the session token in either
// state depending on write order.
type AccountLock interface {
	// Acquire attempts to acquire a named lock with the given TTL.
	// Returns true if acquired, false if already held elsewhere.
	// The lock expires after TTL (implementation dependent).
	Acquire(ctx context.Context, name string, ttl time.Duration) (acquired bool, err error)

	// Release releases a named lock. Best-effort; TTL-based
	// implementations auto-expire anyway. Safe to call when not held.
	Release(ctx context.Context, name string) error

	// Ping checks if the lock backend is healthy.
	Ping(ctx context.Context) error
}
