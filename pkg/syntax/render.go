package syntax

import "strings"

// Render converts a use-tree back into source text. It is a purely
// structural projection; no reordering or merging happens here.
func Render(t Tree) string {
	var b strings.Builder
	renderTree(&b, t)
	return b.String()
}

func renderTree(b *strings.Builder, t Tree) {
	switch n := t.(type) {
	case *Path:
		b.WriteString(n.Ident)
		b.WriteString("::")
		renderTree(b, n.Tree)
	case *Name:
		b.WriteString(n.Ident)
	case *Rename:
		b.WriteString(n.Ident)
		b.WriteString(" as ")
		b.WriteString(n.To)
	case *Glob:
		b.WriteString("*")
	case *Group:
		b.WriteString("{")
		for i, item := range n.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			renderTree(b, item)
		}
		b.WriteString("}")
	}
}

// String renders the visibility with a trailing space, or nothing for the
// inherited kind, so it can prefix a use item directly.
func (v Visibility) String() string {
	switch v.Kind {
	case VisPublic:
		return "pub "
	case VisRestricted:
		var b strings.Builder
		b.WriteString("pub(")
		if v.In {
			b.WriteString("in ")
		}
		if v.LeadingColon {
			b.WriteString("::")
		}
		b.WriteString(strings.Join(v.Segments, "::"))
		b.WriteString(") ")
		return b.String()
	default:
		return ""
	}
}

// String renders the whole declaration, e.g. `pub use std::{a, b};`.
func (item ItemUse) String() string {
	var b strings.Builder
	b.WriteString(item.Vis.String())
	b.WriteString("use ")
	if item.LeadingColon {
		b.WriteString("::")
	}
	renderTree(&b, item.Tree)
	b.WriteString(";")
	return b.String()
}
