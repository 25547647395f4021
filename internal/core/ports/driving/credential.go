package driving

// CredentialService creates and verifies password credentials.
// Pure derivation: it never touches the account store. The
// account-management layer persists what CreateCredential returns.
type CredentialService interface {
	// CreateCredential derives a hash/salt pair for a new password.
	CreateCredential(password string) (hash string, salt []byte)

	// VerifyCredential re-derives the candidate with the stored salt and
	// compares to the stored hash in constant time. False on any
	// mismatch; absence of the account is the caller's concern.
	VerifyCredential(candidate, storedHash string, storedSalt []byte) bool
}
