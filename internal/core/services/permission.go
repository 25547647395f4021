package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/freckhq/exchange-auth/internal/core/domain"
	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
	"github.com/freckhq/exchange-auth/internal/core/ports/driving"
)

// Ensure permissionService implements PermissionService
var _ driving.PermissionService = (*permissionService)(nil)

// permissionService implements the PermissionService interface
type permissionService struct {
	accounts driven.AccountStore
	deriver  driven.KeyDeriver
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(accounts driven.AccountStore, deriver driven.KeyDeriver) driving.PermissionService {
	return &permissionService{accounts: accounts, deriver: deriver}
}

// GrantCommitment derives the commitment pair over the permission type's
// canonical string. The string is public; the commitment only binds the
// grant to the server-held salt.
func (s *permissionService) GrantCommitment(p domain.PermissionType) (string, []byte, error) {
	if !p.Valid() {
		return "", nil, domain.ErrInvalidPermission
	}
	hash, salt := s.deriver.DeriveFresh([]byte(p.String()))
	return hash, salt, nil
}

// HasPermission verifies a grant against the account's CURRENT record.
// The passed-in account contributes only its username; grants are re-read
// from the store so a stale or forged object cannot attest for itself.
func (s *permissionService) HasPermission(ctx context.Context, account *domain.Account, p domain.PermissionType) (bool, error) {
	if account == nil || !p.Valid() {
		return false, nil
	}

	current, err := s.accounts.GetByUsername(ctx, account.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	grant := current.Grant(p)
	if grant == nil {
		return false, nil
	}

	derived := s.deriver.Derive([]byte(p.String()), grant.CommitmentSalt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(grant.CommitmentHash)) == 1, nil
}
