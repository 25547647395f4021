package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/freckhq/exchange-auth/internal/core/domain"
	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AccountStore = (*AccountStore)(nil)

// AccountStore implements driven.AccountStore using PostgreSQL
type AccountStore struct {
	db *DB
}

// NewAccountStore creates a new AccountStore
func NewAccountStore(db *DB) *AccountStore {
	return &AccountStore{db: db}
}

// grantRecord is the storage form of a PermissionGrant. The domain type
// hides the commitment fields from serialization; the store needs them.
type grantRecord struct {
	Type           domain.PermissionType `json:"type"`
	CommitmentHash string                `json:"commitment_hash"`
	CommitmentSalt []byte                `json:"commitment_salt"`
}

func grantsToJSON(grants []domain.PermissionGrant) ([]byte, error) {
	records := make([]grantRecord, 0, len(grants))
	for _, g := range grants {
		records = append(records, grantRecord{
			Type:           g.Type,
			CommitmentHash: g.CommitmentHash,
			CommitmentSalt: g.CommitmentSalt,
		})
	}
	return json.Marshal(records)
}

func grantsFromJSON(data []byte) ([]domain.PermissionGrant, error) {
	var records []grantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	grants := make([]domain.PermissionGrant, 0, len(records))
	for _, r := range records {
		grants = append(grants, domain.PermissionGrant{
			Type:           r.Type,
			CommitmentHash: r.CommitmentHash,
			CommitmentSalt: r.CommitmentSalt,
		})
	}
	return grants, nil
}

// Save creates or updates an account, keyed by account_id
func (s *AccountStore) Save(ctx context.Context, account *domain.Account) error {
	grants, err := grantsToJSON(account.Permissions)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}

	query := `
		INSERT INTO accounts (account_id, username, email, name, password_hash, password_salt,
			session_token, session_token_salt, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (account_id) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			password_hash = EXCLUDED.password_hash,
			password_salt = EXCLUDED.password_salt,
			session_token = EXCLUDED.session_token,
			session_token_salt = EXCLUDED.session_token_salt,
			permissions = EXCLUDED.permissions,
			updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		account.AccountID,
		account.Username,
		account.Email,
		account.Name,
		account.PasswordHash,
		account.PasswordSalt,
		account.SessionToken,
		account.SessionTokenSalt,
		grants,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// GetByUsername retrieves an account by its login username
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT account_id, username, email, name, password_hash, password_salt,
			session_token, session_token_salt, permissions, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`

	var account domain.Account
	var grants []byte

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&account.AccountID,
		&account.Username,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&account.PasswordSalt,
		&account.SessionToken,
		&account.SessionTokenSalt,
		&grants,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	account.Permissions, err = grantsFromJSON(grants)
	if err != nil {
		return nil, fmt.Errorf("unmarshal permissions: %w", err)
	}
	return &account, nil
}
