// Package prefs persists small UI preferences (theme, last visited
// page) between runs. This is cosmetic tooling state, not domain state:
// the session, forum, and timers remain volatile.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Prefs struct {
	Theme    string `toml:"theme"`
	LastPage string `toml:"last_page"`
}

const (
	defaultTheme = "garden"
	defaultPage  = "Home"
)

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, LastPage: defaultPage}
}

// DefaultPath returns the preferences file location under the user's
// config directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "rooftop", "prefs.toml"), nil
}

// Load reads preferences, degrading to defaults on any missing or
// malformed file. Preferences are never worth failing startup over.
func Load(path string) Prefs {
	prefs := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return defaults()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	if strings.TrimSpace(prefs.LastPage) == "" {
		prefs.LastPage = defaultPage
	}

	return prefs
}

// Save writes preferences, creating parent directories as needed.
func Save(path string, p Prefs) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("prefs path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}
