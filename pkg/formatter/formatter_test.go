package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func formatSource(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Format(src, &buf))
	return buf.String()
}

func TestFormat(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"shared prefixes merge into one statement",
			"use std::b::c;\nuse std::a;\nuse std::b::{d, e};\n\nfn main() {}\n",
			"use std::{a, b::{c, d, e}};\n\nfn main() {}\n",
		},
		{
			"bare prefix and deeper path become a self group",
			"use std::a::c;\nuse std::a;\n\nfn main() {}\n",
			"use std::a::{self, c};\n\nfn main() {}\n",
		},
		{
			"self group regardless of order",
			"use std::a;\nuse std::a::c;\n\nfn main() {}\n",
			"use std::a::{self, c};\n\nfn main() {}\n",
		},
		{
			"categories emit as separate blocks in fixed order",
			"use serde::Serialize;\nuse std::fmt;\nuse crate::util;\n",
			"use std::fmt;\n\nuse serde::Serialize;\n\nuse crate::util;\n\n",
		},
		{
			"different visibility keys never merge",
			"pub use a::b;\nuse a::b;\n",
			"use a::b;\npub use a::b;\n\n",
		},
		{
			"leading colon keeps its own statement",
			"use ::a::b;\nuse a::c;\n",
			"use a::c;\nuse ::a::b;\n\n",
		},
		{
			"each external root keeps its own statement",
			"use serde::Serialize;\nuse log::info;\n",
			"use log::info;\nuse serde::Serialize;\n\n",
		},
		{
			"duplicate declarations collapse",
			"use a::b;\nuse a::b;\n",
			"use a::b;\n\n",
		},
		{
			"surrounding text is preserved",
			"//! doc\n\nfn one() {}\n\nuse b;\nuse a;\n\nfn two() {}\n",
			"//! doc\n\nfn one() {}\n\nuse a;\nuse b;\n\nfn two() {}\n",
		},
		{
			"runs are rewritten independently",
			"use b;\nfn x() {}\nuse a;\n",
			"use b;\n\nfn x() {}\nuse a;\n\n",
		},
		{
			"no use declarations is a passthrough",
			"fn main() {}\n",
			"fn main() {}\n",
		},
		{
			"comments between use items are dropped with the run",
			"use b;\n// trailing note\nuse a;\n",
			"use a;\nuse b;\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, formatSource(t, tt.src))
		})
	}
}

func TestFormat_idempotent(t *testing.T) {
	req := require.New(t)

	src := "use std::io::Read;\n" +
		"use serde::{Serialize, Deserialize};\n" +
		"use std::io;\n" +
		"use log::info;\n" +
		"pub use crate::prelude::*;\n" +
		"use crate::util;\n" +
		"\n" +
		"fn main() {}\n"

	once := formatSource(t, src)
	twice := formatSource(t, once)
	req.Equal(once, twice)

	req.Equal(
		"use std::io::{self, Read};\n\n"+
			"use log::info;\nuse serde::{Deserialize, Serialize};\n\n"+
			"use crate::util;\npub use crate::prelude::*;\n\n"+
			"fn main() {}\n",
		once,
	)
}

func TestFormat_outputReparses(t *testing.T) {
	req := require.New(t)

	// two external roots under the same visibility must stay separate
	// statements, or the rewritten block would not parse again
	once := formatSource(t, "use serde::Serialize;\nuse log::info;\n")
	req.Equal("use log::info;\nuse serde::Serialize;\n\n", once)
	req.Equal(once, formatSource(t, once))
}

func TestFormat_errors(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		src  string
	}{
		{"decorated use", "#[cfg(test)]\nuse std::fmt;\n"},
		{"root group", "use {a, b};\n"},
		{"malformed use", "use std::{a;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req.Error(Format(tt.src, &buf))
		})
	}
}

func TestFormatter_ProcessFileInPlace(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	src := "use std::b;\nuse std::a;\n\nfn main() {}\n"
	req.NoError(os.WriteFile(path, []byte(src), 0644))

	f := New(Config{FilePath: path, InPlace: true, SkipRustfmt: true})
	req.NoError(f.ProcessFile())

	got, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("use std::{a, b};\n\nfn main() {}\n", string(got))
}

func TestFormatter_ProcessFileReadError(t *testing.T) {
	req := require.New(t)

	f := New(Config{FilePath: filepath.Join(t.TempDir(), "missing.rs"), SkipRustfmt: true})
	err := f.ProcessFile()
	req.Error(err)
	req.Contains(err.Error(), "failed to read file")
}

func TestFormatter_ProcessPathDirectory(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "a.rs"), []byte("use std::b;\nuse std::a;\n"), 0644))
	req.NoError(os.MkdirAll(filepath.Join(dir, "src"), 0755))
	req.NoError(os.WriteFile(filepath.Join(dir, "src", "b.rs"), []byte("use x::y;\n"), 0644))

	f := New(Config{InPlace: true, SkipRustfmt: true})
	req.NoError(f.ProcessPath(dir))

	got, err := os.ReadFile(filepath.Join(dir, "a.rs"))
	req.NoError(err)
	req.Equal("use std::{a, b};\n\n", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "src", "b.rs"))
	req.NoError(err)
	req.Equal("use x::y;\n\n", string(got))
}
