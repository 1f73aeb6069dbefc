package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRustFile(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"rust source", "main.rs", true},
		{"nested path", "src/lib.rs", true},
		{"go source", "main.go", false},
		{"no extension", "Makefile", false},
		{"rs in the middle", "main.rs.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, IsRustFile(tt.filename))
		})
	}
}

func TestFindRustFiles(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	mustWrite := func(parts ...string) {
		path := filepath.Join(append([]string{dir}, parts...)...)
		req.NoError(os.MkdirAll(filepath.Dir(path), 0755))
		req.NoError(os.WriteFile(path, []byte(""), 0644))
	}

	mustWrite("main.rs")
	mustWrite("src", "lib.rs")
	mustWrite("src", "notes.md")
	mustWrite("target", "debug", "generated.rs")
	mustWrite(".git", "ignored.rs")

	files, err := FindRustFiles(dir)
	req.NoError(err)
	req.ElementsMatch([]string{
		filepath.Join(dir, "main.rs"),
		filepath.Join(dir, "src", "lib.rs"),
	}, files)
}

func TestFindRustFiles_empty(t *testing.T) {
	req := require.New(t)

	files, err := FindRustFiles(t.TempDir())
	req.NoError(err)
	req.Empty(files)
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "main.rs")
	req.NoError(os.WriteFile(file, []byte(""), 0644))

	isDir, err := IsDirectory(dir)
	req.NoError(err)
	req.True(isDir)

	isDir, err = IsDirectory(file)
	req.NoError(err)
	req.False(isDir)

	_, err = IsDirectory(filepath.Join(dir, "missing"))
	req.Error(err)
}
