package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvDataDir = "NAVSHELL_DATA_DIR"

	SettingsFile  = "settings.json"
	FavoritesFile = "favorites.json"
	DatabaseFile  = "navshell.db"

	DefaultHomePage = "https://www.google.com"
)

// Config holds the on-disk locations used by the shell.
type Config struct {
	DataDir string
}

// Load resolves the data directory. An explicit dir wins over NAVSHELL_DATA_DIR,
// which wins over the build default.
func Load(dir string) Config {
	if strings.TrimSpace(dir) == "" {
		dir = os.Getenv(EnvDataDir)
	}
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDataDir()
	}
	return Config{DataDir: dir}
}

func (c Config) SettingsPath() string {
	return filepath.Join(c.DataDir, SettingsFile)
}

func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// FavoritesPath returns the favorites file inside folder, or inside the data
// directory when folder is empty.
func (c Config) FavoritesPath(folder string) string {
	if strings.TrimSpace(folder) == "" {
		return filepath.Join(c.DataDir, FavoritesFile)
	}
	return filepath.Join(folder, FavoritesFile)
}
