package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the optional launcher configuration file, looked up beside the
// launcher executable.
const FileName = "voicebox.yaml"

// Config captures the launcher's runtime settings. Every field has a default
// that reproduces the stock Voicebox deployment, so a missing file is normal.
type Config struct {
	Version     int           `yaml:"version"`
	Interpreter string        `yaml:"interpreter"`
	Backend     BackendConfig `yaml:"backend"`
	Install     InstallConfig `yaml:"install"`
	LogPath     string        `yaml:"log_path"`
}

// BackendConfig describes the supervised Python backend.
type BackendConfig struct {
	// Module is passed to the interpreter as `-m <module>`.
	Module string `yaml:"module"`
	// Packages are probed for importability before launch.
	Packages []string `yaml:"packages"`
}

// InstallConfig controls the guarded dependency installation flow.
type InstallConfig struct {
	// Manifest is the dependency file name expected in the backend directory.
	Manifest string `yaml:"manifest"`
	// ProtectedMarkers are line prefixes excluded from the install manifest,
	// matched case-insensitively against each trimmed line.
	ProtectedMarkers []string `yaml:"protected_markers"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version:     1,
		Interpreter: "python",
		Backend: BackendConfig{
			Module: "backend.main",
			Packages: []string{
				"fastapi",
				"uvicorn",
				"sqlalchemy",
				"alembic",
				"python_multipart",
				"numpy",
			},
		},
		Install: InstallConfig{
			Manifest:         "requirements.txt",
			ProtectedMarkers: []string{"torch"},
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Interpreter == "" {
		c.Interpreter = defaults.Interpreter
	}
	if c.Backend.Module == "" {
		c.Backend.Module = defaults.Backend.Module
	}
	if len(c.Backend.Packages) == 0 {
		c.Backend.Packages = defaults.Backend.Packages
	}
	if c.Install.Manifest == "" {
		c.Install.Manifest = defaults.Install.Manifest
	}
	if len(c.Install.ProtectedMarkers) == 0 {
		c.Install.ProtectedMarkers = defaults.Install.ProtectedMarkers
	}
}
