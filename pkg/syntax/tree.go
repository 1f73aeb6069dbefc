// Package syntax models Rust use declarations: the recursive use-tree
// (paths, names, renames, globs and braced groups), item visibility, and
// their textual rendering.
package syntax

// Tree is one node of a use-tree.
type Tree interface {
	isTree()
}

// Path is a path segment followed by a deeper tree, e.g. `a::<tree>`.
type Path struct {
	Ident string
	Tree  Tree
}

// Name is a plain identifier leaf, e.g. `HashMap` or `self`.
type Name struct {
	Ident string
}

// Rename is a renamed leaf, e.g. `Result as IoResult`.
type Rename struct {
	Ident string
	To    string
}

// Glob is a wildcard leaf, `*`.
type Glob struct{}

// Group is a braced list of subtrees, e.g. `{a, b::c}`.
type Group struct {
	Items []Tree
}

func (*Path) isTree()   {}
func (*Name) isTree()   {}
func (*Rename) isTree() {}
func (*Glob) isTree()   {}
func (*Group) isTree()  {}

// VisKind distinguishes the three visibility shapes of a use item.
type VisKind int

const (
	// VisInherited is the default, module-private visibility.
	VisInherited VisKind = iota
	// VisRestricted is a scoped visibility such as pub(crate) or pub(in a::b).
	VisRestricted
	// VisPublic is plain pub.
	VisPublic
)

// Visibility describes who can see a use item. Segments and the two flags
// are only meaningful for VisRestricted.
type Visibility struct {
	Kind         VisKind
	In           bool // pub(in path) rather than pub(crate|self|super)
	LeadingColon bool // pub(in ::path)
	Segments     []string
}

// ItemUse is one complete use declaration.
type ItemUse struct {
	Vis          Visibility
	LeadingColon bool
	Tree         Tree
}
