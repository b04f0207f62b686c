package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Format identifies the encoding of a manifest file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the decoder for a manifest file by extension.
// Anything that is not .yaml/.yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Find returns the manifest path inside dir. manifest.json takes priority
// over manifest.yaml. Any existing entry with a manifest name is returned,
// so a directory named manifest.json surfaces as a read error in Parse.
func Find(dir string) (string, bool) {
	for _, name := range []string{FileJSON, FileYAML} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Parse reads a manifest file and extracts the recognized fields.
// A document whose top-level value is null yields (nil, nil).
func Parse(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	m, err := ParseBytes(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m != nil {
		m.Path = path
	}
	return m, nil
}

// ParseBytes decodes manifest data in the given format.
func ParseBytes(data []byte, format Format) (*Manifest, error) {
	fields, err := decodeFields(data, format)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, nil
	}
	for _, key := range recognizedKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		norm, err := normalizeJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("normalizing %q: %w", key, err)
		}
		fields[key] = norm
	}

	return &Manifest{
		ID:                 fields[KeyID],
		Name:               fields[KeyName],
		Version:            fields[KeyVersion],
		Author:             fields[KeyAuthor],
		Description:        fields[KeyDescription],
		Repository:         fields[KeyRepository],
		MinNoctaliaVersion: fields[KeyMinNoctaliaVersion],
		License:            fields[KeyLicense],
	}, nil
}

// decodeFields decodes the top-level object of a manifest into raw JSON
// values keyed by name. Keys are matched exactly.
func decodeFields(data []byte, format Format) (map[string]json.RawMessage, error) {
	if format == FormatYAML {
		return decodeYAMLFields(data)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w (found %s)", ErrNotObject, typeErr.Value)
		}
		return nil, err
	}
	return fields, nil
}

// decodeYAMLFields unmarshals YAML into generic values and re-encodes each
// recognized value as JSON so YAML manifests end up in the same form as
// JSON ones.
func decodeYAMLFields(data []byte) (map[string]json.RawMessage, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	obj, ok := normalizeYAML(raw).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w (found %T)", ErrNotObject, raw)
	}

	fields := make(map[string]json.RawMessage, len(obj))
	for k, v := range obj {
		b, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("converting %q to JSON: %w", k, err)
		}
		fields[k] = b
	}
	return fields, nil
}

// encodeValue encodes v as compact JSON without HTML escaping.
func encodeValue(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// normalizeJSON re-encodes a raw JSON value so scalars get one canonical
// spelling: numbers in shortest form, strings with only the escapes JSON
// requires. Object key order is preserved.
func normalizeJSON(raw json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeNormalized(dec, &buf, tok); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNormalized(dec *json.Decoder, buf *bytes.Buffer, tok json.Token) error {
	delim, ok := tok.(json.Delim)
	if !ok {
		return writeScalar(buf, tok)
	}

	isObject := delim == '{'
	buf.WriteByte(byte(delim))
	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if isObject {
			key, err := dec.Token()
			if err != nil {
				return err
			}
			if err := writeScalar(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
		}
		next, err := dec.Token()
		if err != nil {
			return err
		}
		if err := writeNormalized(dec, buf, next); err != nil {
			return err
		}
	}
	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return err
	}
	if isObject {
		buf.WriteByte('}')
	} else {
		buf.WriteByte(']')
	}
	return nil
}

func writeScalar(buf *bytes.Buffer, v interface{}) error {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			// Out of float64 range; keep the literal.
			buf.WriteString(n.String())
			return nil
		}
		if f == 0 {
			f = 0 // drop negative zero
		}
		v = f
	}
	b, err := encodeValue(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// decodeGeneric decodes a whole document into JSON-compatible generic values.
func decodeGeneric(data []byte, format Format) (interface{}, error) {
	var raw interface{}
	if format == FormatYAML {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("unmarshaling YAML: %w", err)
		}
		return normalizeYAML(raw), nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	return raw, nil
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. Maps with non-string keys get their keys stringified.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
