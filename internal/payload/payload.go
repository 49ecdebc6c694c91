// Package payload decodes JSON and YAML documents into glue shapes.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/gluemodel/glue"
)

// Format identifies a payload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for formats other than JSON and YAML.
var ErrUnsupportedFormat = errors.New("unsupported payload format")

// ParseFormat accepts "json", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DetectFormat picks the format from the file extension. Files without a
// recognised extension are treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ToJSON returns data as a JSON document, converting YAML when needed.
func ToJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		normalized, err := normalize(doc)
		if err != nil {
			return nil, err
		}
		out, err := json.Marshal(normalized)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Decode fills shape from data. Enum members are parsed strictly in both
// formats, so an unknown or empty enum string fails the whole decode.
func Decode(data []byte, format Format, shape glue.Shape) error {
	doc, err := ToJSON(data, format)
	if err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("empty %s payload for %s", format, shape.ShapeName())
	}
	if err := json.Unmarshal(doc, shape); err != nil {
		return fmt.Errorf("failed to decode %s: %w", shape.ShapeName(), err)
	}
	return nil
}

// DecodeFile reads path and decodes it into shape using DetectFormat.
func DecodeFile(path string, shape glue.Shape) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}
	return Decode(data, DetectFormat(path), shape)
}

// normalize turns the generic YAML tree into one encoding/json can marshal.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported YAML map key %v", k)
			}
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		for i, item := range t {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	}
	return v, nil
}
