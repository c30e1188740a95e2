package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hearthwood/haven/internal/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HAVEN_DATA_HOME", "/data/haven")

	cfg, err := loadFrom(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.DataFile != filepath.Join("/data/haven", DataFileName) {
		t.Errorf("DataFile = %q, want default under the data dir", cfg.DataFile)
	}
	if cfg.Recent != 4 {
		t.Errorf("Recent = %d, want 4", cfg.Recent)
	}
	if cfg.Theme != output.ThemeDark {
		t.Errorf("Theme = %q, want %q", cfg.Theme, output.ThemeDark)
	}
	if !reflect.DeepEqual(cfg.DefaultTags, DefaultTags) {
		t.Errorf("DefaultTags = %v, want %v", cfg.DefaultTags, DefaultTags)
	}
}

func TestLoadFrom_FullOverride(t *testing.T) {
	path := writeConfig(t, `data_file: /tmp/my-moods.csv
default_tags:
  - reading
  - music
recent: 8
theme: light
`)

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.DataFile != "/tmp/my-moods.csv" {
		t.Errorf("DataFile = %q, want /tmp/my-moods.csv", cfg.DataFile)
	}
	if !reflect.DeepEqual(cfg.DefaultTags, []string{"reading", "music"}) {
		t.Errorf("DefaultTags = %v, want [reading music]", cfg.DefaultTags)
	}
	if cfg.Recent != 8 {
		t.Errorf("Recent = %d, want 8", cfg.Recent)
	}
	if cfg.Theme != output.ThemeLight {
		t.Errorf("Theme = %q, want %q", cfg.Theme, output.ThemeLight)
	}
}

func TestLoadFrom_PartialKeepsDefaults(t *testing.T) {
	t.Setenv("HAVEN_DATA_HOME", "/data/haven")
	path := writeConfig(t, "recent: 6\n")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Recent != 6 {
		t.Errorf("Recent = %d, want 6", cfg.Recent)
	}
	if cfg.DataFile != filepath.Join("/data/haven", DataFileName) {
		t.Errorf("DataFile = %q, want the default", cfg.DataFile)
	}
	if !reflect.DeepEqual(cfg.DefaultTags, DefaultTags) {
		t.Errorf("DefaultTags = %v, want the default checklist", cfg.DefaultTags)
	}
}

func TestLoadFrom_NormalizesValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "zero recent clamps to default",
			content: "recent: 0\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Recent != 4 {
					t.Errorf("Recent = %d, want 4", cfg.Recent)
				}
			},
		},
		{
			name:    "negative recent clamps to default",
			content: "recent: -2\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Recent != 4 {
					t.Errorf("Recent = %d, want 4", cfg.Recent)
				}
			},
		},
		{
			name:    "theme case folded",
			content: "theme: LIGHT\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Theme != output.ThemeLight {
					t.Errorf("Theme = %q, want light", cfg.Theme)
				}
			},
		},
		{
			name:    "unknown theme falls back to dark",
			content: "theme: solarized\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Theme != output.ThemeDark {
					t.Errorf("Theme = %q, want dark", cfg.Theme)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadFrom(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("loadFrom() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := writeConfig(t, "recent: [not a number\n")

	_, err := loadFrom(path)
	if err == nil {
		t.Fatal("loadFrom() expected error for malformed YAML")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
