package mocks

import (
	"encoding/hex"
	"strings"
	"sync/atomic"

	"github.com/freckhq/exchange-auth/internal/core/ports/driven"
)

// Ensure MockKeyDeriver implements KeyDeriver
var _ driven.KeyDeriver = (*MockKeyDeriver)(nil)

// MockKeyDeriver is a mock implementation of KeyDeriver for testing.
// It concatenates secret and salt as hex instead of running a real KDF,
// so derivations stay deterministic and instant. NOT secure - only for
// testing.
type MockKeyDeriver struct {
	saltSeq atomic.Uint64
}

// NewMockKeyDeriver creates a new MockKeyDeriver
func NewMockKeyDeriver() *MockKeyDeriver {
	return &MockKeyDeriver{}
}

// Derive returns uppercase hex of secret||salt (for testing only)
func (m *MockKeyDeriver) Derive(secret, salt []byte) string {
	return strings.ToUpper(hex.EncodeToString(secret) + hex.EncodeToString(salt))
}

// DeriveFresh derives with a sequential salt so each call is distinct
// without touching a random source
func (m *MockKeyDeriver) DeriveFresh(secret []byte) (string, []byte) {
	n := m.saltSeq.Add(1)
	salt := make([]byte, m.SaltLen())
	for i := 0; i < 8; i++ {
		salt[i] = byte(n >> (8 * i))
	}
	return m.Derive(secret, salt), salt
}

// SaltLen returns a fixed test salt length
func (m *MockKeyDeriver) SaltLen() int {
	return 16
}
