package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freckhq/exchange-auth/internal/core/domain"
	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
	"github.com/freckhq/exchange-auth/internal/core/ports/driving"
)

// Ensure sessionService implements SessionService
var _ driving.SessionService = (*sessionService)(nil)

const (
	// lockTTL bounds how long a crashed holder can block an account
	lockTTL = 30 * time.Second

	// lockRetryInterval is the poll interval while waiting for the lock
	lockRetryInterval = 25 * time.Millisecond

	// lockWait is the total time Login/Logout will wait for the
	// per-account lock before giving up
	lockWait = 3 * time.Second
)

// sessionService implements the SessionService interface.
// All read-modify-write mutations on an account are serialized behind the
// per-account lock; the deliberately slow derivations always run before
// the lock is taken.
type sessionService struct {
	accounts    driven.AccountStore
	lock        driven.AccountLock
	deriver     driven.KeyDeriver
	credentials driving.CredentialService
}

// NewSessionService creates a new SessionService
func NewSessionService(
	accounts driven.AccountStore,
	lock driven.AccountLock,
	deriver driven.KeyDeriver,
	credentials driving.CredentialService,
) driving.SessionService {
	return &sessionService{
		accounts:    accounts,
		lock:        lock,
		deriver:     deriver,
		credentials: credentials,
	}
}

// Login verifies credentials and issues a fresh session token
func (s *sessionService) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Same outward failure as a wrong password: no enumeration
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if !s.credentials.VerifyCredential(password, account.PasswordHash, account.PasswordSalt) {
		return nil, domain.ErrInvalidCredentials
	}

	// The token pre-image is a fresh random identifier, never the password
	// or any existing secret. Both derivations happen before the lock.
	token, tokenSalt := s.deriver.DeriveFresh([]byte(uuid.NewString()))

	var updated *domain.Account
	err = s.withAccountLock(ctx, username, func(ctx context.Context) error {
		current, err := s.accounts.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrInvalidCredentials
			}
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		current.SessionToken = token
		current.SessionTokenSalt = tokenSalt
		current.UpdatedAt = time.Now()
		if err := s.accounts.Save(ctx, current); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Logout clears the session token. Idempotent.
func (s *sessionService) Logout(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrInvalidInput
	}

	return s.withAccountLock(ctx, username, func(ctx context.Context) error {
		account, err := s.accounts.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrAccountNotFound
			}
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		account.SessionToken = ""
		account.SessionTokenSalt = make([]byte, s.deriver.SaltLen())
		account.UpdatedAt = time.Now()
		if err := s.accounts.Save(ctx, account); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return nil
	})
}

// ValidateToken checks the presented token against the stored one.
// The token is opaque: compared verbatim, never re-derived. A logged-out
// account has no valid token.
func (s *sessionService) ValidateToken(ctx context.Context, username, token string) (bool, error) {
	if username == "" || token == "" {
		return false, nil
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if !account.LoggedIn() {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(account.SessionToken)) == 1, nil
}

// withAccountLock runs fn with the per-account lock held. Acquisition polls
// until lockWait elapses or ctx is done; exhaustion surfaces as the store
// being unavailable, since the lock is part of the store infrastructure.
func (s *sessionService) withAccountLock(ctx context.Context, username string, fn func(context.Context) error) error {
	name := "account:" + username

	deadline := time.Now().Add(lockWait)
	for {
		acquired, err := s.lock.Acquire(ctx, name, lockTTL)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		if acquired {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: lock on %s not acquired", domain.ErrStoreUnavailable, username)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
	defer func() { _ = s.lock.Release(context.WithoutCancel(ctx), name) }()

	return fn(ctx)
}
