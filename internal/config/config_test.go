package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocalDirFromEnv(t *testing.T) {
	t.Setenv(EnvLocalDir, "/home/iot/iot-local")
	if got := LocalDirFromEnv(); got != "/home/iot/iot-local" {
		t.Errorf("LocalDirFromEnv() = %q", got)
	}
}

func TestLocalDirFromEnvUnset(t *testing.T) {
	t.Setenv(EnvLocalDir, "")
	os.Unsetenv(EnvLocalDir)
	if got := LocalDirFromEnv(); got != "" {
		t.Errorf("LocalDirFromEnv() = %q, want empty", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", tmp, err)
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs = %d, want 1", cfg.Jobs)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want %q", cfg.Format, "text")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoadReadsExisting(t *testing.T) {
	tmp := t.TempDir()
	content := "jobs = 4\nformat = \"json\"\n"
	if err := os.WriteFile(filepath.Join(tmp, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Jobs)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "warn")
	}
}

func TestLoadClampsJobs(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, FileName), []byte("jobs = 0\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs = %d, want 1", cfg.Jobs)
	}
}

func TestLoadMalformed(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, FileName), []byte("jobs = = 2"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(tmp); err == nil {
		t.Fatal("expected error for malformed toml, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	cfg := Default()
	cfg.Jobs = 8
	cfg.LogLevel = "debug"
	if err := cfg.Save(tmp); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load after Save = %+v, want %+v", got, cfg)
	}
}
