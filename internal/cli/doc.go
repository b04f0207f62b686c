// Package cli defines the Cobra command tree for the plugin-registry binary.
// The root command builds the registry; subcommands lint manifests, list an
// existing registry, and print build information. Command implementations
// delegate to internal packages for the work and only handle flags, output
// formatting, and logging setup.
package cli
