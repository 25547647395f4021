package services

import (
	"crypto/subtle"

	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
	"github.com/freckhq/exchange-auth/internal/core/ports/driving"
)

// Ensure credentialService implements CredentialService
var _ driving.CredentialService = (*credentialService)(nil)

// credentialService implements the CredentialService interface
type credentialService struct {
	deriver driven.KeyDeriver
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(deriver driven.KeyDeriver) driving.CredentialService {
	return &credentialService{deriver: deriver}
}

// CreateCredential derives a hash/salt pair for a new password.
// Pure derivation; the caller persists the pair.
func (s *credentialService) CreateCredential(password string) (string, []byte) {
	return s.deriver.DeriveFresh([]byte(password))
}

// VerifyCredential re-derives the candidate with the stored salt and
// compares against the stored hash. The comparison is constant-time in the
// hash content; hash length is public, so a length mismatch may return
// early.
func (s *credentialService) VerifyCredential(candidate, storedHash string, storedSalt []byte) bool {
	derived := s.deriver.Derive([]byte(candidate), storedSalt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(storedHash)) == 1
}
