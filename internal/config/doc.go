// Package config resolves the settings of a registry build. Values come from
// command-line flags, an optional .plugin-registry.yaml in the plugin root,
// and built-in defaults, in that order of precedence. Environment variables
// are deliberately not consulted.
package config
