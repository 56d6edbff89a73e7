package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/theme-toggle/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tooltip != "Theme toggle" {
		t.Errorf("Tooltip = %v, want %v", cfg.Tooltip, "Theme toggle")
	}
	if cfg.Backend != common.BackendAuto {
		t.Errorf("Backend = %v, want %v", cfg.Backend, common.BackendAuto)
	}
	if !cfg.WatchExternalChanges {
		t.Error("WatchExternalChanges should be true by default")
	}
	if !cfg.BroadcastChange {
		t.Error("BroadcastChange should be true by default")
	}
	if cfg.NotifyWriteFailures {
		t.Error("NotifyWriteFailures should be false by default")
	}
	if cfg.LogToFile {
		t.Error("LogToFile should be false by default")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "backend: file\nstate_file: /tmp/state.yaml\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Backend != common.BackendFile {
		t.Errorf("Backend = %v, want %v", cfg.Backend, common.BackendFile)
	}
	if cfg.StateFile != "/tmp/state.yaml" {
		t.Errorf("StateFile = %v, want /tmp/state.yaml", cfg.StateFile)
	}
	if !cfg.BroadcastChange {
		t.Error("BroadcastChange should keep its default")
	}
	if cfg.Tooltip != common.DefaultTooltip {
		t.Errorf("Tooltip = %v, want %v", cfg.Tooltip, common.DefaultTooltip)
	}
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_UnknownField(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "schedule: \"07:00\"\n"))
	if err == nil {
		t.Fatal("LoadFrom() should reject unknown fields")
	}
	if !errors.Is(err, common.ErrConfigLoad) {
		t.Errorf("LoadFrom() error = %v, want ErrConfigLoad", err)
	}
}

func TestLoadFrom_InvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, "backend: gsettings\nlog_level: loud\ntooltip: \"\"\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"backend", cfg.Backend, common.BackendAuto},
		{"log_level", cfg.LogLevel, "info"},
		{"tooltip", cfg.Tooltip, common.DefaultTooltip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	if cfg.Level() != common.LevelDebug {
		t.Errorf("Level() = %v, want %v", cfg.Level(), common.LevelDebug)
	}
}

func TestConfig_StatePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StateFile = "/srv/theme.yaml"

	path, err := cfg.StatePath()
	if err != nil {
		t.Fatalf("StatePath() error = %v", err)
	}
	if path != "/srv/theme.yaml" {
		t.Errorf("StatePath() = %v, want /srv/theme.yaml", path)
	}

	cfg.StateFile = ""
	path, err = cfg.StatePath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(path) != common.StateFileName {
		t.Errorf("StatePath() = %v, want base %v", path, common.StateFileName)
	}
}
