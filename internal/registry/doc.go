// Package registry builds the plugin registry index. It scans the immediate
// subdirectories of a plugin root for manifests, projects each manifest onto
// the fixed registry entry fields, sorts the entries by id, and writes the
// result as indented JSON.
package registry
