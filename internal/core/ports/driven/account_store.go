package driven

import (
	"context"

	"github.com/freckhq/exchange-auth/internal/core/domain"
)

// AccountStore handles account persistence (PostgreSQL).
// The engine performs read-modify-write as two separate calls; mutations on
// one account are serialized behind AccountLock, not by the store.
type AccountStore interface {
	// GetByUsername retrieves an account by its login username.
	// Returns domain.ErrAccountNotFound when no account exists.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// Save creates or updates an account, keyed by AccountID.
	// Idempotent overwrite.
	Save(ctx context.Context, account *domain.Account) error
}
