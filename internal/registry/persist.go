package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrStale is returned by Check when the registry file on disk does not
// match what a build would write.
var ErrStale = errors.New("registry is out of date")

// Encode writes reg as JSON with two-space indentation and a single
// trailing newline. HTML characters are written as-is.
func Encode(w io.Writer, reg *Registry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reg); err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	return nil
}

// Marshal returns the exact bytes Write would put on disk.
func Marshal(reg *Registry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, reg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes reg to path, replacing any existing file.
func Write(reg *Registry, path string) error {
	data, err := Marshal(reg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing registry %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a registry file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	return &reg, nil
}

// Check compares the file at path with the serialized form of reg.
// It returns ErrStale when the file is missing or differs.
func Check(reg *Registry, path string) error {
	want, err := Marshal(reg)
	if err != nil {
		return err
	}

	got, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrStale, path)
	}
	if err != nil {
		return fmt.Errorf("reading registry %s: %w", path, err)
	}

	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s", ErrStale, path)
	}
	return nil
}
