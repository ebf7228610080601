package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Disks != 3 {
		t.Errorf("expected 3 disks, got %d", cfg.Disks)
	}
	if cfg.Speed != "normal" {
		t.Errorf("expected normal speed, got %s", cfg.Speed)
	}
	if cfg.Theme == "" {
		t.Error("theme should not be empty")
	}
	if cfg.DataDir == "" {
		t.Error("data dir should not be empty")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	content := []byte("disks: 7\nspeed: fast\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Disks != 7 {
		t.Errorf("expected 7 disks, got %d", cfg.Disks)
	}
	if cfg.Speed != "fast" {
		t.Errorf("expected fast, got %s", cfg.Speed)
	}
	// Unset keys keep their defaults.
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	cfg := &Config{Disks: 8, Speed: "slow", Theme: "ocean", DataDir: "runs"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Disks != 5 {
		t.Errorf("expected 5 disks, got %d", cfg.Disks)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
