package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RosterPath != "standards.csv" {
		t.Errorf("default roster path = %q", cfg.RosterPath)
	}
	if cfg.WeakThreshold != 0.70 {
		t.Errorf("default weak threshold = %v", cfg.WeakThreshold)
	}
	if cfg.AdminPassword != "" {
		t.Errorf("admin password should default to unset, got %q", cfg.AdminPassword)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MATHDASH_ROSTER", "/data/grades.csv")
	t.Setenv("MATHDASH_ADMIN_PASSWORD", "hunter2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RosterPath != "/data/grades.csv" {
		t.Errorf("roster path = %q", cfg.RosterPath)
	}
	if cfg.AdminPassword != "hunter2" {
		t.Errorf("admin password = %q", cfg.AdminPassword)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "roster_path: grades.csv\nweak_threshold: 0.6\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RosterPath != "grades.csv" {
		t.Errorf("roster path = %q", cfg.RosterPath)
	}
	if cfg.WeakThreshold != 0.6 {
		t.Errorf("weak threshold = %v", cfg.WeakThreshold)
	}
}

func TestLoad_RejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("weak_threshold: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if _, err := Load(); err == nil {
		t.Error("threshold above 1 should be rejected")
	}
}
