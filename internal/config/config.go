// Package config loads assay settings from defaults, an optional TOML file
// and ASSAY_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime settings.
type Config struct {
	ExportDir   string `toml:"export_dir"`
	CatalogPath string `toml:"catalog"`
	LogUseCases bool   `toml:"log_use_cases"`
	Accessible  bool   `toml:"accessible"`
	Clipboard   bool   `toml:"clipboard"`
}

// DefaultConfig returns the built-in settings: export to the working
// directory, embedded catalog, no use-case logging, clipboard enabled.
func DefaultConfig() Config {
	return Config{
		ExportDir: ".",
		Clipboard: true,
	}
}

// Path returns the config file location: ASSAY_CONFIG, or
// <user config dir>/assay/config.toml.
func Path() string {
	if v := os.Getenv("ASSAY_CONFIG"); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "assay", "config.toml")
}

// LoadConfig applies the config file (if present) and then environment
// overrides on top of the defaults. A missing file is not an error; a
// malformed one is. Unparseable environment values are ignored.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := Path(); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ASSAY_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("ASSAY_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	applyBoolEnv(&cfg.LogUseCases, "ASSAY_LOG_USE_CASES")
	applyBoolEnv(&cfg.Accessible, "ASSAY_ACCESSIBLE")
	applyBoolEnv(&cfg.Clipboard, "ASSAY_CLIPBOARD")
}

func applyBoolEnv(dst *bool, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return
	}
	*dst = b
}
