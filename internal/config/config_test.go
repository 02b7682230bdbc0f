package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StartupView != "month" {
		t.Errorf("StartupView = %q, want month", cfg.StartupView)
	}
	if cfg.FirstHour != 8 {
		t.Errorf("FirstHour = %d, want 8", cfg.FirstHour)
	}
	if !cfg.AutoRefresh || cfg.RefreshRate != 30*time.Second {
		t.Errorf("refresh defaults = %v/%v", cfg.AutoRefresh, cfg.RefreshRate)
	}
	if !cfg.ConfirmDelete {
		t.Error("ConfirmDelete should default to true")
	}
	if cfg.KeyBindings["quit"] != "q" {
		t.Errorf("quit binding = %q, want q", cfg.KeyBindings["quit"])
	}
	if filepath.Base(cfg.AppointmentsFile) != "appointments.json" {
		t.Errorf("AppointmentsFile = %q", cfg.AppointmentsFile)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terminrc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `# termin config
set appointments_file /tmp/test-appointments.json
set first_hour 6
set startup_view week
set refresh_rate 10s
set confirm_delete false

bind G today
color header "bold yellow"
`)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	if cfg.AppointmentsFile != "/tmp/test-appointments.json" {
		t.Errorf("AppointmentsFile = %q", cfg.AppointmentsFile)
	}
	if cfg.FirstHour != 6 {
		t.Errorf("FirstHour = %d, want 6", cfg.FirstHour)
	}
	if cfg.StartupView != "week" {
		t.Errorf("StartupView = %q, want week", cfg.StartupView)
	}
	if cfg.RefreshRate != 10*time.Second {
		t.Errorf("RefreshRate = %v, want 10s", cfg.RefreshRate)
	}
	if cfg.ConfirmDelete {
		t.Error("confirm_delete false was not applied")
	}
	if cfg.KeyBindings["today"] != "G" {
		t.Errorf("today binding = %q, want G", cfg.KeyBindings["today"])
	}
	if cfg.Colors["header"] != "bold yellow" {
		t.Errorf("header color = %q", cfg.Colors["header"])
	}

	// Untouched settings keep their defaults
	if cfg.TimeFormat != "15:04" {
		t.Errorf("TimeFormat = %q, want default", cfg.TimeFormat)
	}
}

func TestRefreshRateAsSeconds(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, "set refresh_rate 45\n"))
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.RefreshRate != 45*time.Second {
		t.Errorf("RefreshRate = %v, want 45s", cfg.RefreshRate)
	}
}

func TestInvalidConfigValues(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"first_hour out of range", "set first_hour 25"},
		{"first_hour not a number", "set first_hour noon"},
		{"unknown startup_view", "set startup_view year"},
		{"bad refresh_rate", "set refresh_rate soon"},
		{"unknown variable", "set frobnicate true"},
		{"unknown directive", "unset first_hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigFile(writeConfig(t, tt.line+"\n")); err == nil {
				t.Errorf("LoadConfigFile accepted %q", tt.line)
			}
		})
	}
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, "\n# comment\n\nset first_hour 9\n"))
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.FirstHour != 9 {
		t.Errorf("FirstHour = %d, want 9", cfg.FirstHour)
	}
}
