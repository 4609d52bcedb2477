package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Execution.MaxCycles != 1_000_000 {
		t.Errorf("MaxCycles = %d, want 1000000", cfg.Execution.MaxCycles)
	}
	if cfg.Execution.EntryPoint != "0x08000000" {
		t.Errorf("EntryPoint = %s, want 0x08000000", cfg.Execution.EntryPoint)
	}
	if cfg.Trace.MaxEntries != 100000 {
		t.Errorf("MaxEntries = %d, want 100000", cfg.Trace.MaxEntries)
	}
}

func TestPathEndsInConfigToml(t *testing.T) {
	path := Path()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Path() = %s, want basename config.toml", path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_config.toml")

	cfg := Default()
	cfg.Execution.MaxCycles = 5_000_000
	cfg.Execution.EnableTrace = true
	cfg.Images.ROMPath = "game.bin"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Execution.MaxCycles != 5_000_000 {
		t.Errorf("MaxCycles = %d, want 5000000", loaded.Execution.MaxCycles)
	}
	if !loaded.Execution.EnableTrace {
		t.Error("EnableTrace = false, want true")
	}
	if loaded.Images.ROMPath != "game.bin" {
		t.Errorf("ROMPath = %s, want game.bin", loaded.Images.ROMPath)
	}
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom should not error on a missing file: %v", err)
	}
	if cfg.Execution.MaxCycles != 1_000_000 {
		t.Error("expected default config when file is missing")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invalid.toml")

	invalid := "[execution]\nmax_cycles = \"not a number\"\n"
	if err := os.WriteFile(path, []byte(invalid), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected an error loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir1", "subdir2", "config.toml")

	if err := Default().SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
