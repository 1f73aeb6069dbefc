package tree

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/tidyuse/tidyuse/pkg/syntax"
)

// Walk decomposes a parsed use-tree into its (path segments, leaf) pairs,
// depth first and left to right, exactly mirroring the nesting. A plain
// name with no path yields one pair with an empty path.
//
// The path slice passed to visit is reused between calls; callers must not
// retain it.
func Walk(t syntax.Tree, visit func(path []string, leaf Leaf) error) error {
	return walk(t, nil, visit)
}

func walk(t syntax.Tree, path []string, visit func([]string, Leaf) error) error {
	switch n := t.(type) {
	case *syntax.Path:
		return walk(n.Tree, append(path, n.Ident), visit)
	case *syntax.Name:
		return visit(path, Leaf{Kind: LeafName, Ident: n.Ident})
	case *syntax.Rename:
		return visit(path, Leaf{Kind: LeafRename, Ident: n.Ident, To: n.To})
	case *syntax.Glob:
		return visit(path, Leaf{Kind: LeafGlob})
	case *syntax.Group:
		for _, item := range n.Items {
			if err := walk(item, path, visit); err != nil {
				return err
			}
		}
		return nil
	default:
		return pkgerrors.Errorf("unknown use tree node %T", t)
	}
}
