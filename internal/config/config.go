// Package config holds the paths mcpgen works with.
//
// Values resolve in three layers: built-in defaults, then MCPGEN_*
// environment variables, then command-line flags applied by the caller.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the effective set of paths for a run.
type Config struct {
	// PacksDir holds the agent pack subdirectories.
	PacksDir string `env:"MCPGEN_PACKS_DIR"`

	// CredentialsDir holds one credential file per server name.
	CredentialsDir string `env:"MCPGEN_CREDENTIALS_DIR"`

	// TemplatePath, when set, bypasses pack discovery entirely.
	TemplatePath string `env:"MCPGEN_TEMPLATE"`

	// OutputPath is where the resolved configuration is written.
	OutputPath string `env:"MCPGEN_OUTPUT"`
}

// Default returns the built-in paths, matching the conventional project
// layout: packs and credentials beside the working directory, output under
// .vscode/ where editors pick it up.
func Default() Config {
	return Config{
		PacksDir:       "mcp_agent_packs",
		CredentialsDir: "credentials",
		OutputPath:     ".vscode/mcp.json",
	}
}

// Load builds the config from defaults and environment overrides.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
