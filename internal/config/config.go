package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. STYR_STORAGE_BACKEND.
const EnvPrefix = "STYR"

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config mirrors the on-disk config.yaml schema.
type Config struct {
	DataDir string        `yaml:"dataDir" envconfig:"DATA_DIR"`
	Storage StorageConfig `yaml:"storage"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	Dialog  DialogConfig  `yaml:"dialog"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend" envconfig:"BACKEND"`
	RecordName string `yaml:"recordName" envconfig:"RECORD_NAME"`
}

type StoreConfig struct {
	RequireAbsolute bool `yaml:"requireAbsolute" envconfig:"REQUIRE_ABSOLUTE"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type DialogConfig struct {
	Title            string `yaml:"title" envconfig:"TITLE"`
	DefaultDirectory string `yaml:"defaultDirectory" envconfig:"DEFAULT_DIRECTORY"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		Storage: StorageConfig{Backend: BackendSQLite, RecordName: "styr-config"},
		Log:     LogConfig{Level: "info", Format: "text"},
		Dialog:  DialogConfig{Title: "Select Directory"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/styr/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "styr", "config.yaml")
}

// Load reads path over the defaults, then applies STYR_* environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("apply environment overrides: %w", err)
	}
	cfg.normalise()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalise() {
	c.DataDir = os.ExpandEnv(strings.TrimSpace(c.DataDir))
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Storage.RecordName = strings.TrimSpace(c.Storage.RecordName)
	c.Dialog.DefaultDirectory = os.ExpandEnv(c.Dialog.DefaultDirectory)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.RecordName == "" {
		return errors.New("storage record name is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "zap":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
