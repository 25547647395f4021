package driven

// KeyDeriver is the slow, salted key-derivation primitive behind password
// hashes, session tokens, and permission commitments. Each call site
// supplies its own secret and gets an independent salt; salts and hashes
// are never shared across the three uses.
//
// Derivation is CPU-bound and deliberately slow (hundreds of milliseconds
// at production parameters). Callers must not hold a lock across it.
type KeyDeriver interface {
	// Derive computes the hex-encoded derived key of secret with the
	// given salt. Deterministic: same inputs, same output.
	Derive(secret, salt []byte) string

	// DeriveFresh computes the derived key of secret with a freshly
	// generated random salt and returns both.
	DeriveFresh(secret []byte) (hash string, salt []byte)

	// SaltLen returns the configured salt length in bytes. Logout zeroes
	// the session token salt to a buffer of this length.
	SaltLen() int
}
