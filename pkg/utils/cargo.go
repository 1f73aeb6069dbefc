package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type cargoManifest struct {
	Package struct {
		Edition string `toml:"edition"`
	} `toml:"package"`
	Workspace struct {
		Package struct {
			Edition string `toml:"edition"`
		} `toml:"package"`
	} `toml:"workspace"`
}

// CargoEdition walks up from filePath looking for a Cargo.toml and returns
// the Rust edition it declares, or "" when none is found. The result is
// forwarded to rustfmt so it parses the stream with the right grammar.
func CargoEdition(filePath string) string {
	dir, err := filepath.Abs(filePath)
	if err != nil {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		manifestPath := filepath.Join(dir, "Cargo.toml")
		if data, err := os.ReadFile(manifestPath); err == nil {
			var manifest cargoManifest
			if err := toml.Unmarshal(data, &manifest); err == nil {
				if manifest.Package.Edition != "" {
					return manifest.Package.Edition
				}
				if manifest.Workspace.Package.Edition != "" {
					return manifest.Workspace.Package.Edition
				}
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
