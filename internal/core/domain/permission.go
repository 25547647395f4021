package domain

// PermissionType is the closed set of permissions an account can hold
type PermissionType string

const (
	PermissionAdmin PermissionType = "Admin" // Manage accounts, products, grants
	PermissionUser  PermissionType = "User"  // Buy, sell, view
)

// String returns the canonical form committed to by a PermissionGrant.
// Commitments are derived over exactly this string, so it must never
// change for an existing type.
func (p PermissionType) String() string {
	return string(p)
}

// Valid reports whether the type belongs to the closed set
func (p PermissionType) Valid() bool {
	return p == PermissionAdmin || p == PermissionUser
}

// ParsePermissionType parses the canonical string form. Case-sensitive:
// the parsed value must round-trip through String unchanged.
func ParsePermissionType(s string) (PermissionType, error) {
	p := PermissionType(s)
	if !p.Valid() {
		return "", ErrInvalidPermission
	}
	return p, nil
}

// PermissionGrant is a verifiable commitment that an account holds a
// permission. CommitmentHash is the derived key of Type's canonical string
// with CommitmentSalt; the string itself is public, so the commitment only
// proves the stored record (and its salt) attests to the grant.
type PermissionGrant struct {
	Type           PermissionType `json:"type"`
	CommitmentHash string         `json:"-"` // Never serialize
	CommitmentSalt []byte         `json:"-"` // Never serialize
}
