package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// File config location under the user config directory
const (
	ConfigDirName  = "video-editor"
	ConfigFileName = "config.toml"
)

// FileConfig holds the CLI-mode defaults read from config.toml. Flags given
// on the command line take precedence over these values.
type FileConfig struct {
	DefaultVolume float64 `toml:"default_volume"`
	Overwrite     bool    `toml:"overwrite"`
	KeepPartial   bool    `toml:"keep_partial"`
	FFmpeg        string  `toml:"ffmpeg"`
	FFprobe       string  `toml:"ffprobe"`
}

// DefaultFileConfig returns the configuration used when no config file exists
func DefaultFileConfig() FileConfig {
	return FileConfig{
		DefaultVolume: DefaultVolume,
		Overwrite:     false,
		KeepPartial:   DefaultKeepPartial,
	}
}

// DefaultConfigPath returns the per-user config file location
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// LoadFileConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error and yields the defaults.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.DefaultVolume <= 0 {
		return cfg, fmt.Errorf("config %s: default_volume must be positive, got %v", path, cfg.DefaultVolume)
	}

	return cfg, nil
}
