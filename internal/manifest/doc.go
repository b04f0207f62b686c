// Package manifest locates and parses plugin manifests. A manifest is the
// manifest.json (or manifest.yaml) at the top of a plugin directory. Parsing
// is best effort: only the registry fields are kept, each as its literal
// JSON value, and unknown keys are ignored. Validate offers a stricter lint
// against an embedded JSON schema for authors and CI.
package manifest
