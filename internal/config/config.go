// Package config loads application settings from a TOML file, falling back
// to defaults when the file or individual keys are absent.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	// DefaultAutosaveInterval is how long after the last edit the workspace
	// is written to disk.
	DefaultAutosaveInterval = 2 * time.Second

	configFileName    = "config.toml"
	workspaceFileName = "workspace.json"
)

type Config struct {
	// WorkspacePath is the workspace JSON file location.
	WorkspacePath string `toml:"workspace_path"`

	// AutosaveInterval is the debounce window for background saves.
	AutosaveInterval time.Duration `toml:"autosave_interval"`

	// Verbose enables development logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file exists. Paths live
// under the user config dir, with a relative fallback when it is unknown.
func Default() Config {
	return Config{
		WorkspacePath:    filepath.Join(baseDir(), workspaceFileName),
		AutosaveInterval: DefaultAutosaveInterval,
	}
}

// Path returns the expected config file location.
func Path() string {
	return filepath.Join(baseDir(), configFileName)
}

// Load reads the config file at path. A missing file yields defaults; a
// present but unparsable file is an error, since silently ignoring explicit
// settings is worse than failing.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return cfg, nil
	case err != nil:
		return cfg, errors.Wrap(err, "read config file")
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config file %s", path)
	}
	if cfg.WorkspacePath == "" {
		cfg.WorkspacePath = Default().WorkspacePath
	}
	if cfg.AutosaveInterval <= 0 {
		cfg.AutosaveInterval = DefaultAutosaveInterval
	}
	return cfg, nil
}

func baseDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".blockpad"
	}
	return filepath.Join(dir, "blockpad")
}
