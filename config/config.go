// Package config loads and saves arm7tdmi-run's host configuration: how
// many cycles to run, whether to trace, and where the BIOS/ROM images
// live. It has no effect on core or exec semantics; it only
// configures the cmd host that drives them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the host's persisted configuration.
type Config struct {
	Execution struct {
		MaxCycles   uint64 `toml:"max_cycles"`
		EntryPoint  string `toml:"entry_point"`
		EnableTrace bool   `toml:"enable_trace"`
		EnableStats bool   `toml:"enable_stats"`
	} `toml:"execution"`

	Images struct {
		BIOSPath string `toml:"bios_path"`
		ROMPath  string `toml:"rom_path"`
	} `toml:"images"`

	Trace struct {
		OutputFile string `toml:"output_file"`
		MaxEntries int    `toml:"max_entries"`
	} `toml:"trace"`
}

// Default returns a Config with the host's built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Execution.MaxCycles = 1_000_000
	cfg.Execution.EntryPoint = "0x08000000"
	cfg.Execution.EnableTrace = false
	cfg.Execution.EnableStats = false
	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.MaxEntries = 100000
	return cfg
}

// Path returns the platform-specific config file path, creating its
// containing directory if necessary. Falls back to a relative path if
// the platform directory cannot be resolved or created.
func Path() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "arm7tdmi")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config", "arm7tdmi")
	default:
		return "config.toml"
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads the config at Path(), returning defaults if it does not exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, returning defaults if it does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// SaveTo writes c to path as TOML, creating its directory if necessary.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
