// Package jsonschema renders model shapes as JSON Schema documents and
// validates payloads against them.
//
// Value objects never enforce the length, pattern and range constraints the
// model documents. This package is where those constraints can be checked,
// on request, before a payload is decoded.
package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

const draft202012 = "https://json-schema.org/draft/2020-12/schema"

var (
	// ErrUnknownShape is returned when the requested shape is not in the model.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrInvalidPayload wraps every validation failure.
	ErrInvalidPayload = errors.New("invalid payload")
)

type builder struct {
	model *smithy.Model
	defs  map[string]*jsonschema.Schema
}

// ForShape renders the structure or enum named name as a JSON Schema.
// Nested structures are emitted once under $defs and referenced by $ref.
func ForShape(model *smithy.Model, name string) (*jsonschema.Schema, error) {
	shape, fqn, ok := model.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}

	b := &builder{model: model, defs: map[string]*jsonschema.Schema{}}

	var root *jsonschema.Schema
	var err error
	if shape.Type == "structure" {
		root, err = b.structure(fqn, shape)
	} else {
		root, err = b.schemaFor(fqn)
	}
	if err != nil {
		return nil, err
	}

	root.Schema = draft202012
	root.Title = name
	if len(b.defs) > 0 {
		root.Defs = b.defs
	}
	return root, nil
}

func (b *builder) schemaFor(target string) (*jsonschema.Schema, error) {
	shape, fqn := b.model.Resolve(target)
	if shape == nil {
		if s, ok := preludeSchema(target); ok {
			return s, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, target)
	}

	name := smithy.ShapeName(fqn)
	s := &jsonschema.Schema{Description: shape.Documentation()}

	switch shape.Type {
	case "enum":
		s.Type = "string"
		s.Enum = enumValues(shape)
	case "string":
		s.Type = "string"
		if shape.IsEnum() {
			s.Enum = enumValues(shape)
			break
		}
		s.MinLength, s.MaxLength = shape.Length()
		s.Pattern = shape.Pattern()
	case "byte", "short", "integer", "long":
		s.Type = "integer"
		s.Minimum, s.Maximum = shape.Range()
	case "float", "double":
		s.Type = "number"
		s.Minimum, s.Maximum = shape.Range()
	case "boolean":
		s.Type = "boolean"
	case "timestamp":
		// epoch seconds on the wire, RFC 3339 accepted on input
		s.Types = []string{"number", "string"}
	case "list", "set":
		if shape.Member == nil {
			return nil, fmt.Errorf("list %s has no member", name)
		}
		items, err := b.schemaFor(shape.Member.Target)
		if err != nil {
			return nil, err
		}
		s.Type = "array"
		s.Items = items
		s.MinItems, s.MaxItems = shape.Length()
	case "map":
		if shape.Value == nil {
			return nil, fmt.Errorf("map %s has no value", name)
		}
		values, err := b.schemaFor(shape.Value.Target)
		if err != nil {
			return nil, err
		}
		s.Type = "object"
		s.AdditionalProperties = values
		s.MinProperties, s.MaxProperties = shape.Length()
		if shape.Key != nil {
			keys, err := b.schemaFor(shape.Key.Target)
			if err != nil {
				return nil, err
			}
			keys.Description = ""
			s.PropertyNames = keys
		}
	case "structure":
		if _, done := b.defs[name]; !done {
			// placeholder so recursive shapes terminate
			b.defs[name] = &jsonschema.Schema{}
			def, err := b.structure(fqn, shape)
			if err != nil {
				return nil, err
			}
			b.defs[name] = def
		}
		return &jsonschema.Schema{Ref: "#/$defs/" + name}, nil
	default:
		return nil, fmt.Errorf("shape %s has unsupported type %q", name, shape.Type)
	}

	return s, nil
}

func (b *builder) structure(fqn string, shape *smithy.Shape) (*jsonschema.Schema, error) {
	s := &jsonschema.Schema{
		Type:                 "object",
		Description:          shape.Documentation(),
		Properties:           make(map[string]*jsonschema.Schema, len(shape.Members)),
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	for _, member := range shape.Members {
		property, err := b.schemaFor(member.Target)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", smithy.ShapeName(fqn), member.Name, err)
		}
		if doc, ok := member.Traits[smithy.TraitDocumentation].(string); ok && property.Ref == "" {
			property.Description = doc
		}
		jsonName := member.JSONName(member.Name)
		s.Properties[jsonName] = property
		if member.IsRequired() {
			s.Required = append(s.Required, jsonName)
		}
	}

	return s, nil
}

func enumValues(shape *smithy.Shape) []any {
	values := shape.EnumValues()
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func preludeSchema(target string) (*jsonschema.Schema, bool) {
	name, ok := strings.CutPrefix(target, "smithy.api#")
	if !ok {
		return nil, false
	}
	switch name {
	case "String":
		return &jsonschema.Schema{Type: "string"}, true
	case "Boolean", "PrimitiveBoolean":
		return &jsonschema.Schema{Type: "boolean"}, true
	case "Byte", "Short", "Integer", "Long", "PrimitiveInteger", "PrimitiveLong":
		return &jsonschema.Schema{Type: "integer"}, true
	case "Float", "Double", "PrimitiveFloat", "PrimitiveDouble":
		return &jsonschema.Schema{Type: "number"}, true
	case "Timestamp":
		return &jsonschema.Schema{Types: []string{"number", "string"}}, true
	}
	return nil, false
}

// Validate checks a JSON document against schema.
func Validate(schema *jsonschema.Schema, payload []byte) error {
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("failed to resolve schema: %w", err)
	}

	var instance any
	if err := json.Unmarshal(payload, &instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
