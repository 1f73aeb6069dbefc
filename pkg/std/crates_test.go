package std

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsStdCrate(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		ident    string
		expected bool
	}{
		{"std", "std", true},
		{"core", "core", true},
		{"alloc", "alloc", true},
		{"external crate - serde", "serde", false},
		{"external crate - tokio", "tokio", false},
		{"crate-relative - crate", "crate", false},
		{"crate-relative - self", "self", false},
		{"empty string", "", false},
		{"case sensitive", "Std", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsStdCrate(tt.ident)
			req.Equal(tt.expected, result, "IsStdCrate(%q)", tt.ident)
		})
	}
}

func TestIsCrateRelative(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		ident    string
		expected bool
	}{
		{"self", "self", true},
		{"super", "super", true},
		{"crate", "crate", true},
		{"std", "std", false},
		{"external crate", "serde", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsCrateRelative(tt.ident)
			req.Equal(tt.expected, result, "IsCrateRelative(%q)", tt.ident)
		})
	}
}

func TestReservedSetsAreDisjoint(t *testing.T) {
	req := require.New(t)
	for ident := range StdCrates {
		req.False(CrateRelative[ident], "identifier %q appears in both reserved sets", ident)
	}
}
