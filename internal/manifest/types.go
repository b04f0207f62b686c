package manifest

import (
	"encoding/json"
	"errors"
)

// File names recognized as a plugin manifest, in lookup order.
const (
	FileJSON = "manifest.json"
	FileYAML = "manifest.yaml"
)

// Recognized manifest keys. Everything else in a manifest is ignored.
const (
	KeyID                 = "id"
	KeyName               = "name"
	KeyVersion            = "version"
	KeyAuthor             = "author"
	KeyDescription        = "description"
	KeyRepository         = "repository"
	KeyMinNoctaliaVersion = "minNoctaliaVersion"
	KeyLicense            = "license"
)

var recognizedKeys = []string{
	KeyID, KeyName, KeyVersion, KeyAuthor,
	KeyDescription, KeyRepository, KeyMinNoctaliaVersion, KeyLicense,
}

// ErrNotObject is returned when a manifest document is valid but its
// top-level value is not an object.
var ErrNotObject = errors.New("manifest is not an object")

// Manifest holds the recognized fields of a plugin manifest. Each field is
// the JSON value from the source document with scalars re-encoded in
// canonical form, or nil when the key is absent. Values of any type are
// carried through.
type Manifest struct {
	ID                 json.RawMessage
	Name               json.RawMessage
	Version            json.RawMessage
	Author             json.RawMessage
	Description        json.RawMessage
	Repository         json.RawMessage
	MinNoctaliaVersion json.RawMessage
	License            json.RawMessage

	Path string // file the manifest was read from
}

// IDString returns the id as a string, or "" when absent or not a string.
func (m *Manifest) IDString() string { return stringValue(m.ID) }

// NameString returns the name as a string, or "" when absent or not a string.
func (m *Manifest) NameString() string { return stringValue(m.Name) }

// VersionString returns the version as a string, or "" when absent or not a string.
func (m *Manifest) VersionString() string { return stringValue(m.Version) }

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
