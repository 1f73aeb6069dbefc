// Package tree implements the prefix-merge tree: many flat (path, leaf)
// pairs are folded into one shared trie and expanded back into minimal
// nested-group use syntax.
package tree

import (
	"sort"
	"strings"

	"github.com/tidyuse/tidyuse/pkg/syntax"
)

// LeafKind distinguishes the terminal import targets.
type LeafKind int

const (
	LeafName LeafKind = iota
	LeafRename
	LeafGlob
)

// Leaf is one terminal import target produced by the walker.
type Leaf struct {
	Kind  LeafKind
	Ident string
	To    string // rename alias
}

type nodeKind int

const (
	nodeLeaf nodeKind = iota
	nodeSelf
	nodeRename
	nodeGlob
	nodeInterior
)

type node struct {
	kind     nodeKind
	ident    string
	to       string
	children []*node
}

// Tree is the merge tree for one import key. Its root is a group of
// top-level nodes; it grows monotonically as pairs are inserted and must be
// treated as read-only once serialized.
type Tree struct {
	roots []*node
}

// New creates an empty merge tree.
func New() *Tree {
	return &Tree{}
}

// Insert folds one (path, leaf) pair into the tree. The final tree content
// does not depend on insertion order; only the pre-sort child ordering
// does, and serialization normalizes that.
//
// path is only read for the duration of the call.
func (t *Tree) Insert(path []string, leaf Leaf) error {
	group := &t.roots
	for _, segment := range path {
		child := findIdent(*group, segment)
		switch {
		case child == nil:
			child = &node{kind: nodeInterior, ident: segment}
			*group = append(*group, child)
		case child.kind == nodeLeaf:
			// The segment was previously imported as a plain name and now
			// turns out to be a prefix. Promote it in place, keeping its
			// old meaning as a self entry.
			child.kind = nodeInterior
			child.children = []*node{{kind: nodeSelf}}
		}
		group = &child.children
	}
	insertLeaf(group, leaf)
	return nil
}

func findIdent(group []*node, ident string) *node {
	for _, n := range group {
		if (n.kind == nodeInterior || n.kind == nodeLeaf) && n.ident == ident {
			return n
		}
	}
	return nil
}

// insertLeaf appends leaf to the group, deduplicating identical leaves. A
// plain name that collides with an existing interior child becomes that
// child's self entry instead of a duplicate sibling.
func insertLeaf(group *[]*node, leaf Leaf) {
	switch leaf.Kind {
	case LeafGlob:
		for _, n := range *group {
			if n.kind == nodeGlob {
				return
			}
		}
		*group = append(*group, &node{kind: nodeGlob})
	case LeafRename:
		for _, n := range *group {
			if n.kind == nodeRename && n.ident == leaf.Ident && n.to == leaf.To {
				return
			}
		}
		*group = append(*group, &node{kind: nodeRename, ident: leaf.Ident, to: leaf.To})
	default:
		if leaf.Ident == "self" {
			insertSelf(group)
			return
		}
		for _, n := range *group {
			if n.ident != leaf.Ident {
				continue
			}
			switch n.kind {
			case nodeLeaf:
				return
			case nodeInterior:
				insertSelf(&n.children)
				return
			}
		}
		*group = append(*group, &node{kind: nodeLeaf, ident: leaf.Ident})
	}
}

func insertSelf(group *[]*node) {
	for _, n := range *group {
		if n.kind == nodeSelf {
			return
		}
	}
	*group = append(*group, &node{kind: nodeSelf})
}

// Syntax expands the merged tree into minimal nested-group syntax with
// canonical sibling ordering. It returns nil for an empty tree.
func (t *Tree) Syntax() syntax.Tree {
	items := groupSyntax(t.roots)
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	default:
		return &syntax.Group{Items: items}
	}
}

func groupSyntax(group []*node) []syntax.Tree {
	items := make([]syntax.Tree, 0, len(group))
	for _, n := range sortedNodes(group) {
		items = append(items, nodeSyntax(n))
	}
	return items
}

func nodeSyntax(n *node) syntax.Tree {
	switch n.kind {
	case nodeSelf:
		return &syntax.Name{Ident: "self"}
	case nodeLeaf:
		return &syntax.Name{Ident: n.ident}
	case nodeRename:
		return &syntax.Rename{Ident: n.ident, To: n.to}
	case nodeGlob:
		return &syntax.Glob{}
	default:
		sorted := sortedNodes(n.children)
		if len(sorted) == 1 {
			if sorted[0].kind == nodeSelf {
				// a::{self} means just a
				return &syntax.Name{Ident: n.ident}
			}
			return &syntax.Path{Ident: n.ident, Tree: nodeSyntax(sorted[0])}
		}
		items := make([]syntax.Tree, 0, len(sorted))
		for _, child := range sorted {
			items = append(items, nodeSyntax(child))
		}
		return &syntax.Path{Ident: n.ident, Tree: &syntax.Group{Items: items}}
	}
}

func sortedNodes(group []*node) []*node {
	sorted := make([]*node, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareNodes(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// compareNodes gives the canonical sibling order: self entries first,
// wildcards last, everything else by identifier byte order with the node
// kind and rename alias as tie-breaks.
func compareNodes(a, b *node) int {
	if c := sortRank(a) - sortRank(b); c != 0 {
		return c
	}
	if c := strings.Compare(a.ident, b.ident); c != 0 {
		return c
	}
	if c := kindOrder(a) - kindOrder(b); c != 0 {
		return c
	}
	return strings.Compare(a.to, b.to)
}

func sortRank(n *node) int {
	switch n.kind {
	case nodeSelf:
		return 0
	case nodeGlob:
		return 2
	default:
		return 1
	}
}

func kindOrder(n *node) int {
	switch n.kind {
	case nodeLeaf:
		return 0
	case nodeRename:
		return 1
	default:
		return 2
	}
}
