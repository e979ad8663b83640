package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration used when no quack.yaml exists.
func Default() Config {
	return Config{
		GitHub: GitHub{
			Host:        "github.com",
			GitProtocol: "https",
			CLIVersion:  "2.76.0",
		},
		Defaults: Defaults{
			Visibility: "public",
			Remote:     "origin",
		},
		Scaffold: Scaffold{
			Readme:  true,
			License: true,
		},
	}
}

// LoadConfig reads quack.yaml from the given path and returns the merged
// configuration. A missing file is not an error: the defaults apply as-is.
// A file that exists but cannot be read or parsed is an error, since silently
// ignoring a broken config would surprise the operator.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Scalar fields left empty in the file fall back to the defaults.
	def := Default()
	if cfg.GitHub.Host == "" {
		cfg.GitHub.Host = def.GitHub.Host
	}
	if cfg.GitHub.GitProtocol == "" {
		cfg.GitHub.GitProtocol = def.GitHub.GitProtocol
	}
	if cfg.GitHub.CLIVersion == "" {
		cfg.GitHub.CLIVersion = def.GitHub.CLIVersion
	}
	if cfg.Defaults.Visibility == "" {
		cfg.Defaults.Visibility = def.Defaults.Visibility
	}
	if cfg.Defaults.Remote == "" {
		cfg.Defaults.Remote = def.Defaults.Remote
	}

	return cfg, nil
}
