package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
)

// Ensure Deriver implements KeyDeriver
var _ driven.KeyDeriver = (*Deriver)(nil)

const (
	// DefaultIterations is the production PBKDF2 iteration count, sized to
	// cost a verifier-class machine on the order of hundreds of
	// milliseconds per derivation.
	DefaultIterations = 350000

	// DefaultKeyLen is the derived key length in bytes (SHA-512 output class)
	DefaultKeyLen = 64

	// DefaultSaltLen is the salt length in bytes
	DefaultSaltLen = 64

	// minSaltLen is the smallest salt the deriver will accept, including
	// for test configurations
	minSaltLen = 8
)

// Params holds the tunable key-derivation parameters. Production uses
// DefaultParams; test suites inject cheap values.
type Params struct {
	Iterations int
	KeyLen     int
	SaltLen    int
}

// DefaultParams returns the production derivation parameters
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		KeyLen:     DefaultKeyLen,
		SaltLen:    DefaultSaltLen,
	}
}

// Deriver implements the hashing primitive with PBKDF2-SHA512.
// Output is uppercase hex of the raw derived bytes, identical across
// creation and verification.
type Deriver struct {
	params Params
}

// NewDeriver creates a deriver with production parameters
func NewDeriver() *Deriver {
	d, _ := NewDeriverWithParams(DefaultParams())
	return d
}

// NewDeriverWithParams creates a deriver with custom parameters.
// Parameter validation happens once here; per-call derivation cannot fail.
func NewDeriverWithParams(p Params) (*Deriver, error) {
	if p.Iterations < 1 {
		return nil, fmt.Errorf("deriver: iterations must be positive, got %d", p.Iterations)
	}
	if p.KeyLen < 1 {
		return nil, fmt.Errorf("deriver: key length must be positive, got %d", p.KeyLen)
	}
	if p.SaltLen < minSaltLen {
		return nil, fmt.Errorf("deriver: salt length must be at least %d bytes, got %d", minSaltLen, p.SaltLen)
	}
	return &Deriver{params: p}, nil
}

// Derive computes the uppercase-hex PBKDF2-SHA512 key of secret with salt
func (d *Deriver) Derive(secret, salt []byte) string {
	key := pbkdf2.Key(secret, salt, d.params.Iterations, d.params.KeyLen, sha512.New)
	return strings.ToUpper(hex.EncodeToString(key))
}

// DeriveFresh derives with a freshly generated random salt.
// The salt comes from crypto/rand, never a counter or timestamp, and is
// never reused across derivations.
func (d *Deriver) DeriveFresh(secret []byte) (string, []byte) {
	salt := make([]byte, d.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		// crypto/rand failure means the platform CSPRNG is broken;
		// minting a credential without entropy is never acceptable.
		panic(fmt.Sprintf("deriver: read random salt: %v", err))
	}
	return d.Derive(secret, salt), salt
}

// SaltLen returns the configured salt length in bytes
func (d *Deriver) SaltLen() int {
	return d.params.SaltLen
}
