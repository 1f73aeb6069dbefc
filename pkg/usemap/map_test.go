package usemap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidyuse/tidyuse/pkg/syntax"
)

func item(tree syntax.Tree) syntax.ItemUse {
	return syntax.ItemUse{Tree: tree}
}

func pathTo(ident, leaf string) syntax.Tree {
	return &syntax.Path{Ident: ident, Tree: &syntax.Name{Ident: leaf}}
}

func TestCategoryOf(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name  string
		ident string
		want  Category
	}{
		{"std", "std", Std},
		{"core", "core", Std},
		{"alloc", "alloc", Std},
		{"crate", "crate", Crate},
		{"self", "self", Crate},
		{"super", "super", Crate},
		{"external crate", "serde", External},
		{"external shadowing case", "Std", External},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, CategoryOf(tt.ident))
		})
	}
}

func TestUseMap_AddAndTake(t *testing.T) {
	req := require.New(t)

	m := New()
	req.NoError(m.Add(item(pathTo("std", "fmt"))))
	req.NoError(m.Add(item(pathTo("serde", "Serialize"))))
	req.NoError(m.Add(item(pathTo("std", "io"))))
	req.NoError(m.Add(item(pathTo("crate", "util"))))
	req.NoError(m.Add(item(&syntax.Name{Ident: "log"})))
	req.NoError(m.Add(item(&syntax.Rename{Ident: "libc", To: "c"})))
	req.NoError(m.Add(item(&syntax.Glob{})))

	stdBuckets := m.Take(Std)
	req.Len(stdBuckets, 1)
	req.Len(stdBuckets[0].Items, 2)

	// each external root gets its own bucket: idents in byte order,
	// then the wildcard, then the rename
	externalBuckets := m.Take(External)
	req.Len(externalBuckets, 4)
	req.Equal(Name{Kind: NameIdent, Ident: "log"}, externalBuckets[0].Key.Name)
	req.Equal(Name{Kind: NameIdent, Ident: "serde"}, externalBuckets[1].Key.Name)
	req.Equal(Name{Kind: NameGlob}, externalBuckets[2].Key.Name)
	req.Equal(Name{Kind: NameRename, Ident: "libc", To: "c"}, externalBuckets[3].Key.Name)

	crateBuckets := m.Take(Crate)
	req.Len(crateBuckets, 1)
	req.Len(crateBuckets[0].Items, 1)

	// taking drains the category
	req.Empty(m.Take(Std))
}

func TestUseMap_keysStaySeparate(t *testing.T) {
	req := require.New(t)

	m := New()
	public := syntax.Visibility{Kind: syntax.VisPublic}

	req.NoError(m.Add(syntax.ItemUse{Tree: pathTo("a", "b")}))
	req.NoError(m.Add(syntax.ItemUse{Vis: public, Tree: pathTo("a", "b")}))
	req.NoError(m.Add(syntax.ItemUse{LeadingColon: true, Tree: pathTo("a", "b")}))

	buckets := m.Take(External)
	req.Len(buckets, 3)

	// key order: private no-colon, private with colon, public
	rootA := Name{Kind: NameIdent, Ident: "a"}
	req.Equal(Key{Name: rootA}, buckets[0].Key)
	req.Equal(Key{LeadingColon: true, Name: rootA}, buckets[1].Key)
	req.Equal(Key{Vis: public, Name: rootA}, buckets[2].Key)
}

func TestUseMap_rootsStaySeparate(t *testing.T) {
	req := require.New(t)

	m := New()
	req.NoError(m.Add(item(pathTo("serde", "Serialize"))))
	req.NoError(m.Add(item(pathTo("log", "info"))))
	req.NoError(m.Add(item(pathTo("serde", "Deserialize"))))

	buckets := m.Take(External)
	req.Len(buckets, 2)
	req.Equal(Name{Kind: NameIdent, Ident: "log"}, buckets[0].Key.Name)
	req.Equal(Name{Kind: NameIdent, Ident: "serde"}, buckets[1].Key.Name)
	req.Len(buckets[1].Items, 2)
}

func TestUseMap_rootGroupRejected(t *testing.T) {
	req := require.New(t)

	m := New()
	err := m.Add(item(&syntax.Group{Items: []syntax.Tree{&syntax.Name{Ident: "a"}}}))
	req.Error(err)
	req.Contains(err.Error(), "not supported")
}
