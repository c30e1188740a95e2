package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

const (
	// FileName is the settings file inside Dir().
	FileName = "config.yaml"

	// DataFileName is the mood store file inside DataDir().
	DataFileName = "moods.csv"
)

// DefaultTags is the tag checklist suggested when logging an entry.
var DefaultTags = []string{"sleep", "study", "work", "family", "friends", "exercise"}

// Config holds the user settings read from config.yaml. Every field is
// optional; missing fields fall back to the defaults.
type Config struct {
	// DataFile overrides where the mood store CSV lives.
	DataFile string `yaml:"data_file"`

	// DefaultTags replaces the suggested tag checklist.
	DefaultTags []string `yaml:"default_tags"`

	// Recent is the dashboard recent-list size.
	Recent int `yaml:"recent"`

	// Theme selects the accent palette, "dark" or "light".
	Theme string `yaml:"theme"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataFile:    filepath.Join(DataDir(), DataFileName),
		DefaultTags: append([]string(nil), DefaultTags...),
		Recent:      report.DefaultRecent,
		Theme:       output.ThemeDark,
	}
}

// Load reads config.yaml from the configuration directory. A missing
// file yields the defaults; a file that exists but cannot be parsed is
// an error rather than a silent fallback.
func Load() (*Config, error) {
	return loadFrom(filepath.Join(Dir(), FileName))
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, output.NewUserError("invalid config file " + path + ": " + err.Error())
	}

	if cfg.DataFile == "" {
		cfg.DataFile = filepath.Join(DataDir(), DataFileName)
	}
	if cfg.Recent <= 0 {
		cfg.Recent = report.DefaultRecent
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme != output.ThemeLight {
		cfg.Theme = output.ThemeDark
	}
	return cfg, nil
}
