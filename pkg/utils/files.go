package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsRustFile checks if a file is a Rust source file
func IsRustFile(filename string) bool {
	return strings.HasSuffix(filename, ".rs")
}

// FindRustFiles recursively finds all Rust source files in a directory
func FindRustFiles(root string) ([]string, error) {
	var rustFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip build output and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "target" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsRustFile(filepath.Base(path)) {
			rustFiles = append(rustFiles, path)
		}

		return nil
	})

	return rustFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
