package domain

import "time"

// Account represents identity, credential, and session state for one user.
// Plaintext secrets are never stored: PasswordHash and SessionToken are
// hex-encoded derived keys, each bound to its own salt.
type Account struct {
	AccountID    string `json:"account_id"` // Immutable once created
	Username     string `json:"username"`   // Lookup key for login
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never serialize
	PasswordSalt []byte `json:"-"` // Never serialize

	// SessionToken is the current bearer credential, compared verbatim on
	// validation. Empty string is the logged-out sentinel.
	SessionToken string `json:"-"`
	// SessionTokenSalt is retained so the issuing derivation stays
	// reproducible; it is never consulted after issuance.
	SessionTokenSalt []byte `json:"-"`

	// Permissions is maintained by the account-management layer; the
	// engine only verifies grants, never adds or removes them. Unique
	// by Type.
	Permissions []PermissionGrant `json:"permissions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountSummary provides a safe view of account data (no secrets)
type AccountSummary struct {
	AccountID   string           `json:"account_id"`
	Username    string           `json:"username"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	LoggedIn    bool             `json:"logged_in"`
	Permissions []PermissionType `json:"permissions"`
}

// ToSummary converts an Account to AccountSummary
func (a *Account) ToSummary() *AccountSummary {
	perms := make([]PermissionType, 0, len(a.Permissions))
	for _, g := range a.Permissions {
		perms = append(perms, g.Type)
	}
	return &AccountSummary{
		AccountID:   a.AccountID,
		Username:    a.Username,
		Email:       a.Email,
		Name:        a.Name,
		LoggedIn:    a.LoggedIn(),
		Permissions: perms,
	}
}

// LoggedIn reports whether the account currently holds a live session token
func (a *Account) LoggedIn() bool {
	return a.SessionToken != ""
}

// Grant returns the grant for the given type, or nil if absent
func (a *Account) Grant(p PermissionType) *PermissionGrant {
	for i := range a.Permissions {
		if a.Permissions[i].Type == p {
			return &a.Permissions[i]
		}
	}
	return nil
}
