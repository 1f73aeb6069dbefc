// Package std holds the reserved path-root identifiers that drive import
// categorization.
package std

// StdCrates are the crate roots shipped with the Rust distribution.
var StdCrates = map[string]bool{
	"std":   true,
	"core":  true,
	"alloc": true,
}

// CrateRelative are the path roots that refer back into the current crate.
var CrateRelative = map[string]bool{
	"self":  true,
	"super": true,
	"crate": true,
}

// IsStdCrate checks if an identifier names a standard-distribution crate.
func IsStdCrate(ident string) bool {
	return StdCrates[ident]
}

// IsCrateRelative checks if an identifier is a crate-relative path root.
func IsCrateRelative(ident string) bool {
	return CrateRelative[ident]
}
