// Package logging builds the zap logger used by every command. Diagnostics
// always go to stderr so that command output on stdout stays clean.
package logging
