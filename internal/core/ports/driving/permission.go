package driving

import (
	"context"

	"github.com/freckhq/exchange-auth/internal/core/domain"
)

// PermissionService creates and verifies permission commitments.
type PermissionService interface {
	// GrantCommitment derives the commitment pair for a new grant of the
	// given type. Used at grant-creation time by the account-management
	// layer, which persists the pair.
	GrantCommitment(p domain.PermissionType) (hash string, salt []byte, err error)

	// HasPermission reports whether the account currently holds the given
	// permission. The account's grants are re-read from the store, never
	// trusted from the passed-in object, so a forged in-memory Account
	// cannot fabricate a grant without the server-held salt. Absence of
	// the permission (or of the account) is false, not an error.
	HasPermission(ctx context.Context, account *domain.Account, p domain.PermissionType) (bool, error)
}
