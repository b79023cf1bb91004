package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Optional tool manifest. When present, telex.toml names the filter
// configuration to use and the preferred UI mode; flags and arguments win
// over the manifest.
type toolManifest struct {
	Path   string
	Root   string
	Config toolConfig
}

type toolConfig struct {
	Config configSection `toml:"config"`
	UI     uiSection     `toml:"ui"`
}

type configSection struct {
	Path string `toml:"path"`
}

type uiSection struct {
	Mode string `toml:"mode"`
}

func findTelexToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "telex.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadToolManifest(startDir string) (*toolManifest, bool, error) {
	manifestPath, ok, err := findTelexToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg toolConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	m := &toolManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}
	return m, true, nil
}

// configPath resolves the manifest's configuration path relative to the
// manifest location, so a session started in a subdirectory still finds it.
func (m *toolManifest) configPath() string {
	if m == nil || m.Config.Config.Path == "" {
		return ""
	}
	p := filepath.FromSlash(m.Config.Config.Path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}
