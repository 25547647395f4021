package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
)

// Ensure MockAccountLock implements AccountLock
var _ driven.AccountLock = (*MockAccountLock)(nil)

// MockAccountLock is an in-process mock of AccountLock for testing.
// TTLs are ignored; locks are held until released.
type MockAccountLock struct {
	mu   sync.Mutex
	held map[string]bool

	// AcquireCalls counts Acquire invocations
	AcquireCalls int
	// ReleaseCalls counts Release invocations
	ReleaseCalls int
}

// NewMockAccountLock creates a new MockAccountLock
func NewMockAccountLock() *MockAccountLock {
	return &MockAccountLock{held: make(map[string]bool)}
}

func (m *MockAccountLock) Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AcquireCalls++
	if m.held[name] {
		return false, nil
	}
	m.held[name] = true
	return true, nil
}

func (m *MockAccountLock) Release(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReleaseCalls++
	delete(m.held, name)
	return nil
}

func (m *MockAccountLock) Ping(ctx context.Context) error {
	return nil
}

// Held reports whether the named lock is currently held (test helper)
func (m *MockAccountLock) Held(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[name]
}
