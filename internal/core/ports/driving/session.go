package driving

import (
	"context"

	"github.com/freckhq/exchange-auth/internal/core/domain"
)

// SessionService manages the login state machine: LoggedOut (empty session
// token) and LoggedIn (token set). Exactly one live token exists per
// account; each login overwrites the previous token.
type SessionService interface {
	// Login verifies the password and issues a fresh session token.
	// Unknown username and wrong password both return
	// domain.ErrInvalidCredentials so callers cannot enumerate usernames.
	Login(ctx context.Context, username, password string) (*domain.Account, error)

	// Logout clears the session token to the empty sentinel. Idempotent:
	// logging out an already-logged-out account succeeds.
	Logout(ctx context.Context, username string) error

	// ValidateToken reports whether the presented token is the account's
	// current live session token. The token is an opaque bearer value,
	// compared verbatim; no re-derivation occurs.
	ValidateToken(ctx context.Context, username, token string) (bool, error)
}
