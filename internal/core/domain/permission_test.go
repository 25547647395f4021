package domain

import (
	"errors"
	"testing"
)

func TestPermissionTypeString(t *testing.T) {
	// Canonical strings are committed to by stored grants and must not drift
	tests := []struct {
		p    PermissionType
		want string
	}{
		{PermissionAdmin, "Admin"},
		{PermissionUser, "User"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParsePermissionType(t *testing.T) {
	tests := []struct {
		input   string
		want    PermissionType
		wantErr bool
	}{
		{"Admin", PermissionAdmin, false},
		{"User", PermissionUser, false},
		{"admin", "", true}, // case-sensitive
		{"USER", "", true},
		{"Root", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePermissionType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPermission) {
					t.Errorf("expected ErrInvalidPermission, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got.String() != tt.input {
				t.Errorf("expected parse/String round-trip, got %q", got.String())
			}
		})
	}
}

func TestPermissionTypeValid(t *testing.T) {
	if !PermissionAdmin.Valid() || !PermissionUser.Valid() {
		t.Error("expected closed-set members to be valid")
	}
	if PermissionType("Root").Valid() || PermissionType("").Valid() {
		t.Error("expected values outside the closed set to be invalid")
	}
}
