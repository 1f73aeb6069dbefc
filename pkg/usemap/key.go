package usemap

import (
	"strings"

	"github.com/tidyuse/tidyuse/pkg/syntax"
)

// NameKind distinguishes the shapes a declaration root can take.
type NameKind int

const (
	NameIdent NameKind = iota
	NameGlob
	NameRename
)

// Name identifies the root of one use declaration: the first path segment,
// a root-level wildcard, or a root-level rename.
type Name struct {
	Kind  NameKind
	Ident string
	To    string // rename alias
}

// Key partitions use items into separately merged output statements. Items
// sharing a key are folded into one declaration; items differing in
// visibility, leading-separator presence or root name are never merged.
// Keying on the root name anchors every output statement to a single path
// root, so the engine can always re-parse its own output.
type Key struct {
	Vis          syntax.Visibility
	LeadingColon bool
	Name         Name
}

// Compare gives the total order used for output statements within one
// category: visibility first (private < restricted < public), then items
// without a leading `::` before items with one, then the root name
// (identifiers in byte order, then wildcards, then renames).
func (k Key) Compare(other Key) int {
	if c := compareVisibility(k.Vis, other.Vis); c != 0 {
		return c
	}
	if c := compareBool(k.LeadingColon, other.LeadingColon); c != 0 {
		return c
	}
	return compareNames(k.Name, other.Name)
}

func compareNames(a, b Name) int {
	if c := int(a.Kind) - int(b.Kind); c != 0 {
		return c
	}
	if c := strings.Compare(a.Ident, b.Ident); c != 0 {
		return c
	}
	return strings.Compare(a.To, b.To)
}

func visRank(kind syntax.VisKind) int {
	switch kind {
	case syntax.VisInherited:
		return 0
	case syntax.VisRestricted:
		return 1
	default:
		return 2
	}
}

func compareVisibility(a, b syntax.Visibility) int {
	if c := visRank(a.Kind) - visRank(b.Kind); c != 0 {
		return c
	}
	if a.Kind != syntax.VisRestricted {
		return 0
	}
	if c := compareBool(a.In, b.In); c != 0 {
		return c
	}
	if c := compareBool(a.LeadingColon, b.LeadingColon); c != 0 {
		return c
	}
	return compareSegments(a.Segments, b.Segments)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func compareSegments(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
