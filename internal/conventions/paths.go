package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default tasklist data directory name (relative to home).
	DefaultDataDir = ".tasklist"
	// ConfigFile is the configuration filename inside the data directory.
	ConfigFile = "config.yaml"
)

// ConfigPath returns the configuration file path for a home directory.
func ConfigPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultDataDir, ConfigFile)
}
