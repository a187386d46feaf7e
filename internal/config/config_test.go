package config

import (
	"os"
	"path/filepath"
	"testing"

	tu "defterm/internal/testutil"
)

func TestDir_UsesXDG(t *testing.T) {
	home := tu.ConfigHome(t)
	d, err := Dir()
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if d != filepath.Join(home, "defterm") {
		t.Fatalf("unexpected dir: %s", d)
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tu.ConfigHome(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.WebAddr != DefaultWebAddr || cfg.SSHAddr != DefaultSSHAddr || cfg.Profile.User != "defha" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveThenLoad_FillsEmptyFields(t *testing.T) {
	tu.ConfigHome(t)
	in := Config{WebAddr: ":9000"}
	in.Profile.User = "ana"
	if err := Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !Exists() {
		t.Fatalf("config file should exist after Save")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.WebAddr != ":9000" || cfg.SSHAddr != DefaultSSHAddr || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected addresses: %+v", cfg)
	}
	if cfg.Profile.User != "ana" || cfg.Profile.Host != "dev-arch" {
		t.Fatalf("profile should merge with defaults: %+v", cfg.Profile)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	tu.ConfigHome(t)
	p, _ := Path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("profile: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg.WebAddr != DefaultWebAddr {
		t.Fatalf("defaults should be returned alongside the error")
	}
}
