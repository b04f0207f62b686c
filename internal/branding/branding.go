// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
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
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	GitHubRepo   string `yaml:"github_repo"`
	RegistryFile string `yaml:"registry_file"`
	ConfigFile   string `yaml:"config_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "plugin-registry",
			DisplayName:  "Noctalia Plugin Registry",
			Description:  "Generate the plugin registry index from plugin manifests",
			GitHubRepo:   "noctalia-dev/noctalia-plugins",
			RegistryFile: "registry.json",
			ConfigFile:   ".plugin-registry.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "plugin-registry").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// GitHubRepo returns the "owner/repo" string of the plugin repository.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RegistryFile returns the default registry file name written at the root.
func RegistryFile() string { load(); return defaults.RegistryFile }

// ConfigFile returns the optional per-repository config file name.
func ConfigFile() string { load(); return defaults.ConfigFile }
