// Package theme persists the dark/light preference between runs, the
// terminal counterpart of the browser's localStorage entry.
package theme

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	Dark  = "dark"
	Light = "light"

	// fileName doubles as the preference storage key
	fileName = "commuter-theme"
)

// Store reads and writes the theme preference at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store at the given path. An empty path falls back to
// the user config dir.
func NewStore(path string) *Store {
	if path == "" {
		path = defaultPath()
	}
	return &Store{path: path}
}

// Load returns the saved preference, defaulting to light when the file is
// missing or holds anything unexpected.
func (s *Store) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Light
	}
	if strings.TrimSpace(string(data)) == Dark {
		return Dark
	}
	return Light
}

// Save writes the preference. Values other than "dark" are stored as light.
func (s *Store) Save(value string) error {
	if value != Dark {
		value = Light
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(value+"\n"), 0o600)
}

func defaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(configDir, "route-reviews", fileName)
}
