// Package usemap buckets parsed use declarations by origin category and
// import key, ready for prefix merging.
package usemap

import (
	"sort"

	pkgerrors "github.com/pkg/errors"

	"github.com/tidyuse/tidyuse/pkg/errors"
	"github.com/tidyuse/tidyuse/pkg/std"
	"github.com/tidyuse/tidyuse/pkg/syntax"
)

// Category classifies a use declaration by the origin of its root segment.
type Category int

const (
	Std Category = iota
	External
	Crate
)

// Categories lists the categories in emission order.
var Categories = [...]Category{Std, External, Crate}

// CategoryOf classifies a root identifier.
func CategoryOf(ident string) Category {
	switch {
	case std.IsStdCrate(ident):
		return Std
	case std.IsCrateRelative(ident):
		return Crate
	default:
		return External
	}
}

// Bucket holds every use item sharing one import key.
type Bucket struct {
	Key   Key
	Items []syntax.ItemUse
}

// UseMap accumulates use items per category and key. The zero value is not
// usable; construct with New.
type UseMap struct {
	buckets map[Category][]*Bucket
}

// New creates an empty UseMap.
func New() *UseMap {
	return &UseMap{buckets: make(map[Category][]*Bucket)}
}

// Add buckets one declaration. A declaration whose tree starts with a bare
// group has no root name to key on and is rejected.
func (m *UseMap) Add(item syntax.ItemUse) error {
	var name Name
	switch root := item.Tree.(type) {
	case *syntax.Path:
		name = Name{Kind: NameIdent, Ident: root.Ident}
	case *syntax.Name:
		name = Name{Kind: NameIdent, Ident: root.Ident}
	case *syntax.Rename:
		name = Name{Kind: NameRename, Ident: root.Ident, To: root.To}
	case *syntax.Glob:
		name = Name{Kind: NameGlob}
	default:
		return pkgerrors.New(errors.ErrMsgRootGroup)
	}

	// a root-level wildcard has no identifier to inspect
	category := External
	if name.Kind != NameGlob {
		category = CategoryOf(name.Ident)
	}

	key := Key{Vis: item.Vis, LeadingColon: item.LeadingColon, Name: name}
	for _, b := range m.buckets[category] {
		if b.Key.Compare(key) == 0 {
			b.Items = append(b.Items, item)
			return nil
		}
	}
	m.buckets[category] = append(m.buckets[category], &Bucket{Key: key, Items: []syntax.ItemUse{item}})
	return nil
}

// Take removes and returns the category's buckets, sorted by key order.
func (m *UseMap) Take(category Category) []*Bucket {
	buckets := m.buckets[category]
	delete(m.buckets, category)
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key.Compare(buckets[j].Key) < 0
	})
	return buckets
}
