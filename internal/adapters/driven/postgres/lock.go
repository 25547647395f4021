package postgres

import (
	"context"
	"database/sql"
	"hash/fnv"
	"sync"
	"time"

	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AccountLock = (*AdvisoryLock)(nil)

// AdvisoryLock implements AccountLock using PostgreSQL advisory locks.
//
// Advisory locks are session-scoped: the unlock must run on the same
// connection that took the lock, or PostgreSQL holds the lock until that
// connection dies. Issuing the queries through the pooled sql.DB would
// almost always unlock on the wrong connection, so each acquired lock
// pins a dedicated connection from Acquire through Release.
//
// IMPORTANT LIMITATIONS:
// - The TTL parameter is ignored (locks don't expire automatically)
// - If the pinned connection is lost, the lock is automatically released
//
// For multi-instance deployments, the Redis lock is recommended; this is
// the fallback when Redis is not deployed.
type AdvisoryLock struct {
	db *DB

	mu    sync.Mutex
	conns map[string]*sql.Conn // lock name -> pinned connection
}

// NewAdvisoryLock creates a new PostgreSQL advisory lock adapter
func NewAdvisoryLock(db *DB) *AdvisoryLock {
	return &AdvisoryLock{
		db:    db,
		conns: make(map[string]*sql.Conn),
	}
}

// hashLockName converts a string lock name to a 64-bit integer for
// PostgreSQL advisory locks. Uses FNV-1a for consistent, well-distributed
// values.
func hashLockName(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte("exchange-auth:lock:" + name))
	return int64(h.Sum64())
}

// Acquire attempts to acquire a named advisory lock on a dedicated
// connection. Uses pg_try_advisory_lock which returns immediately without
// blocking. The connection stays pinned until Release.
func (l *AdvisoryLock) Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	_, held := l.conns[name]
	l.mu.Unlock()
	if held {
		// Already pinned by this instance; a second session could never
		// acquire the same lock anyway
		return false, nil
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return false, err
	}

	var acquired bool
	err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", hashLockName(name)).Scan(&acquired)
	if err != nil {
		conn.Close()
		return false, err
	}
	if !acquired {
		conn.Close()
		return false, nil
	}

	l.mu.Lock()
	l.conns[name] = conn
	l.mu.Unlock()
	return true, nil
}

// Release releases a named advisory lock on the connection that acquired
// it, then returns the connection to the pool. Safe to call when the lock
// is not held by this instance.
func (l *AdvisoryLock) Release(ctx context.Context, name string) error {
	l.mu.Lock()
	conn := l.conns[name]
	delete(l.conns, name)
	l.mu.Unlock()

	if conn == nil {
		return nil
	}
	defer conn.Close()

	var released bool
	err := conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock($1)", hashLockName(name)).Scan(&released)
	if err != nil {
		return err
	}
	// released=false means the session no longer held the lock; not an error
	return nil
}

// Ping checks if the PostgreSQL backend is healthy
func (l *AdvisoryLock) Ping(ctx context.Context) error {
	return l.db.PingContext(ctx)
}
