package registry

import (
	"encoding/json"
	"fmt"

	"github.com/noctalia-dev/plugin-registry/internal/manifest"
)

// FormatVersion is the version number written at the top of every registry.
const FormatVersion = 1

// Entry is the public projection of a plugin manifest. Fields hold the
// literal JSON value from the manifest; absent fields are omitted when the
// entry is serialized and an explicit null is kept as null.
type Entry struct {
	ID                 json.RawMessage `json:"id,omitempty"`
	Name               json.RawMessage `json:"name,omitempty"`
	Version            json.RawMessage `json:"version,omitempty"`
	Author             json.RawMessage `json:"author,omitempty"`
	Description        json.RawMessage `json:"description,omitempty"`
	Repository         json.RawMessage `json:"repository,omitempty"`
	MinNoctaliaVersion json.RawMessage `json:"minNoctaliaVersion,omitempty"`
	License            json.RawMessage `json:"license,omitempty"`
}

// Registry is the aggregated index written to registry.json.
type Registry struct {
	Version int     `json:"version"`
	Plugins []Entry `json:"plugins"`
}

// Failure records a plugin directory whose manifest could not be used.
type Failure struct {
	Dir string
	Err error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Dir, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// ScanResult holds the outcome of one scan. Entries are in directory
// enumeration order.
type ScanResult struct {
	Entries  []Entry
	Failures []Failure
}

// EntryFromManifest projects a manifest onto the registry entry fields.
func EntryFromManifest(m *manifest.Manifest) Entry {
	return Entry{
		ID:                 m.ID,
		Name:               m.Name,
		Version:            m.Version,
		Author:             m.Author,
		Description:        m.Description,
		Repository:         m.Repository,
		MinNoctaliaVersion: m.MinNoctaliaVersion,
		License:            m.License,
	}
}

// IDString returns the id as a string, or "" when absent or not a string.
func (e Entry) IDString() string { return stringValue(e.ID) }

// NameString returns the name as a string, or "" when absent or not a string.
func (e Entry) NameString() string { return stringValue(e.Name) }

// VersionString returns the version as a string, or "" when absent or not a string.
func (e Entry) VersionString() string { return stringValue(e.Version) }

func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
