// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; forks change the CLI name,
// environment prefix and home directory there without touching code.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	AgentsFile  string `yaml:"agents_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty.
		defaults = brand{
			CLIName:     "stackcraft",
			DisplayName: "Stackcraft",
			Description: "Scaffold a new web project from composable templates",
			HomeDir:     ".stackcraft",
			EnvPrefix:   "STACKCRAFT",
			AgentsFile:  "AGENTS.md",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "stackcraft").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".stackcraft").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "STACKCRAFT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// AgentsFile returns the file name of the contributor guidance document that
// every overlay may contribute a fragment of (e.g., "AGENTS.md").
func AgentsFile() string { load(); return defaults.AgentsFile }
