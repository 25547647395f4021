package mocks

import (
	"context"
	"sync"

	"github.com/freckhq/exchange-auth/internal/core/domain"
	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
)

// Ensure MockAccountStore implements AccountStore
var _ driven.AccountStore = (*MockAccountStore)(nil)

// MockAccountStore is a mock implementation of AccountStore for testing
type MockAccountStore struct {
	mu         sync.RWMutex
	accounts   map[string]*domain.Account // keyed by AccountID
	byUsername map[string]string          // username -> AccountID

	// FailNext forces the next call to return ErrStoreUnavailable
	FailNext bool
}

// NewMockAccountStore creates a new MockAccountStore
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		accounts:   make(map[string]*domain.Account),
		byUsername: make(map[string]string),
	}
}

func (m *MockAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		m.FailNext = false
		return nil, domain.ErrStoreUnavailable
	}
	id, ok := m.byUsername[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	// Return a copy so callers mutating the result cannot bypass Save
	cp := *m.accounts[id]
	cp.Permissions = append([]domain.PermissionGrant(nil), m.accounts[id].Permissions...)
	return &cp, nil
}

func (m *MockAccountStore) Save(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		m.FailNext = false
		return domain.ErrStoreUnavailable
	}
	cp := *account
	cp.Permissions = append([]domain.PermissionGrant(nil), account.Permissions...)
	m.accounts[account.AccountID] = &cp
	m.byUsername[account.Username] = account.AccountID
	return nil
}

// Helper methods for testing

func (m *MockAccountStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = make(map[string]*domain.Account)
	m.byUsername = make(map[string]string)
}

func (m *MockAccountStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts)
}
