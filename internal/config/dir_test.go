package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	// Clear overrides
	t.Setenv("HAVEN_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "haven" {
			t.Errorf("Dir() = %q, want path ending in 'haven'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("HAVEN_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("HAVEN_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "haven") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "haven"))
	}
}

func TestDataDir_Default(t *testing.T) {
	t.Setenv("HAVEN_DATA_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	dir := DataDir()
	if dir == "" {
		t.Fatal("DataDir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "haven" {
			t.Errorf("DataDir() = %q, want path ending in 'haven'", dir)
		}
	}
}

func TestDataDir_ExplicitOverride(t *testing.T) {
	t.Setenv("HAVEN_DATA_HOME", "/custom/data")
	if got := DataDir(); got != "/custom/data" {
		t.Errorf("DataDir() = %q, want %q", got, "/custom/data")
	}
}

func TestDataDir_XDGOverride(t *testing.T) {
	t.Setenv("HAVEN_DATA_HOME", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/share")
	if got := DataDir(); got != filepath.Join("/xdg/share", "haven") {
		t.Errorf("DataDir() = %q, want %q", got, filepath.Join("/xdg/share", "haven"))
	}
}
