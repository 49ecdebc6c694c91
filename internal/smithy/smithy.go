// Package smithy parses the JSON AST form of a Smithy model.
package smithy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Trait identifiers used by this package.
const (
	TraitRequired      = "smithy.api#required"
	TraitDocumentation = "smithy.api#documentation"
	TraitEnum          = "smithy.api#enum"
	TraitEnumValue     = "smithy.api#enumValue"
	TraitError         = "smithy.api#error"
	TraitHTTPError     = "smithy.api#httpError"
	TraitJSONName      = "smithy.api#jsonName"
	TraitLength        = "smithy.api#length"
	TraitRange         = "smithy.api#range"
	TraitPattern       = "smithy.api#pattern"
)

// Model represents a parsed Smithy model
type Model struct {
	Smithy   string                 `json:"smithy"`
	Metadata map[string]interface{} `json:"metadata"`
	Shapes   map[string]*Shape      `json:"shapes"`
}

// Shape represents a shape in the Smithy model
type Shape struct {
	Type       string                 `json:"type"`
	Members    Members                `json:"members,omitempty"`
	Member     *Member                `json:"member,omitempty"` // list element
	Key        *Member                `json:"key,omitempty"`
	Value      *Member                `json:"value,omitempty"`
	Traits     map[string]interface{} `json:"traits,omitempty"`
	Target     string                 `json:"target,omitempty"`
	Input      *Ref                   `json:"input,omitempty"`
	Output     *Ref                   `json:"output,omitempty"`
	Errors     []Ref                  `json:"errors,omitempty"`
	Operations []Ref                  `json:"operations,omitempty"`
	Version    string                 `json:"version,omitempty"`
}

// Member is a reference from a structure, list or map to another shape.
type Member struct {
	Target string                 `json:"target"`
	Traits map[string]interface{} `json:"traits,omitempty"`
}

// Ref represents a reference to another shape
type Ref struct {
	Target string `json:"target"`
}

// NamedMember is a structure member together with its name.
type NamedMember struct {
	Name string
	*Member
}

// Members keeps structure members in the order they are declared in the
// model document.
type Members []NamedMember

// UnmarshalJSON decodes a members object without losing its key order.
func (m *Members) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("members must be an object, got %v", tok)
	}

	members := Members{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected member key %v", tok)
		}
		var member Member
		if err := dec.Decode(&member); err != nil {
			return fmt.Errorf("member %s: %w", name, err)
		}
		members = append(members, NamedMember{Name: name, Member: &member})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = members
	return nil
}

// Get returns the member called name.
func (m Members) Get(name string) (*Member, bool) {
	for _, nm := range m {
		if nm.Name == name {
			return nm.Member, true
		}
	}
	return nil, false
}

// Parse reads a Smithy JSON AST document.
func Parse(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(model.Shapes) == 0 {
		return nil, fmt.Errorf("model has no shapes")
	}
	return &model, nil
}

// ParseFile parses the Smithy JSON file at filename.
func ParseFile(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Service returns the service shape and its fully qualified name
func (m *Model) Service() (*Shape, string, error) {
	for name, shape := range m.Shapes {
		if shape.Type == "service" {
			return shape, name, nil
		}
	}
	return nil, "", fmt.Errorf("no service shape found")
}

// Operations returns the operation shapes bound to the service, keyed by
// fully qualified name.
func (m *Model) Operations() map[string]*Shape {
	operations := make(map[string]*Shape)

	service, _, err := m.Service()
	if err != nil {
		return operations
	}

	for _, ref := range service.Operations {
		if shape, exists := m.Shapes[ref.Target]; exists && shape.Type == "operation" {
			operations[ref.Target] = shape
		}
	}

	return operations
}

// Resolve follows the target chain to get the actual shape
func (m *Model) Resolve(target string) (*Shape, string) {
	shape, exists := m.Shapes[target]
	if !exists {
		return nil, ""
	}

	if shape.Type == "" && shape.Target != "" {
		return m.Resolve(shape.Target)
	}

	return shape, target
}

// Lookup resolves a shape by its simple name within the model namespace.
func (m *Model) Lookup(name string) (*Shape, string, bool) {
	for fqn, shape := range m.Shapes {
		if ShapeName(fqn) == name {
			return shape, fqn, true
		}
	}
	return nil, "", false
}

// NamesOfType returns the fully qualified names of every shape of type typ,
// sorted by simple name.
func (m *Model) NamesOfType(typ string) []string {
	var names []string
	for fqn, shape := range m.Shapes {
		if shape.Type == typ {
			names = append(names, fqn)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(ShapeName(a), ShapeName(b))
	})
	return names
}

// ShapeName extracts the simple name from a fully qualified shape name
func ShapeName(fqn string) string {
	parts := strings.Split(fqn, "#")
	if len(parts) > 1 {
		return parts[1]
	}
	return fqn
}

// IsRequired checks if a member is required based on its traits
func (m *Member) IsRequired() bool {
	if m.Traits == nil {
		return false
	}
	_, required := m.Traits[TraitRequired]
	return required
}

// JSONName returns the wire name of a member. The AWS JSON protocols use
// the member name unless a jsonName trait overrides it.
func (m *Member) JSONName(fieldName string) string {
	if m.Traits != nil {
		if jsonName, ok := m.Traits[TraitJSONName].(string); ok {
			return jsonName
		}
	}
	return fieldName
}

// IsEnum checks if a shape is an enum
func (s *Shape) IsEnum() bool {
	if s.Type == "enum" {
		return true
	}
	if s.Traits == nil {
		return false
	}
	_, hasEnum := s.Traits[TraitEnum]
	return hasEnum
}

// EnumMember is one member of an enum shape.
type EnumMember struct {
	Name  string
	Value string
}

// EnumMembers returns the members of an enum shape in declaration order.
// Both the Smithy 2.0 enum shape and the 1.0 enum trait are understood.
func (s *Shape) EnumMembers() []EnumMember {
	var members []EnumMember

	if enumTrait, ok := s.Traits[TraitEnum].([]interface{}); ok {
		for _, item := range enumTrait {
			enumItem, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			value, _ := enumItem["value"].(string)
			name, _ := enumItem["name"].(string)
			if name == "" {
				name = value
			}
			members = append(members, EnumMember{Name: name, Value: value})
		}
	}

	if len(members) == 0 && s.Type == "enum" {
		for _, nm := range s.Members {
			value := nm.Name
			if v, ok := nm.Traits[TraitEnumValue].(string); ok {
				value = v
			}
			members = append(members, EnumMember{Name: nm.Name, Value: value})
		}
	}

	return members
}

// EnumValues returns the canonical strings of an enum shape.
func (s *Shape) EnumValues() []string {
	members := s.EnumMembers()
	values := make([]string, len(members))
	for i, m := range members {
		values[i] = m.Value
	}
	return values
}

// IsPrimitive checks if a shape is a primitive type
func (s *Shape) IsPrimitive() bool {
	switch s.Type {
	case "string", "boolean", "byte", "short", "integer", "long",
		"float", "double", "bigInteger", "bigDecimal", "timestamp",
		"blob", "document":
		return true
	}
	return false
}

// IsCollection checks if a shape is a collection type
func (s *Shape) IsCollection() bool {
	return s.Type == "list" || s.Type == "set"
}

// IsMap checks if a shape is a map type
func (s *Shape) IsMap() bool {
	return s.Type == "map"
}

// IsError reports whether a structure carries the error trait.
func (s *Shape) IsError() bool {
	_, ok := s.Traits[TraitError]
	return ok
}

// ErrorFault returns "client" or "server" for error structures.
func (s *Shape) ErrorFault() string {
	fault, _ := s.Traits[TraitError].(string)
	return fault
}

// Documentation returns the documentation trait, if any.
func (s *Shape) Documentation() string {
	doc, _ := s.Traits[TraitDocumentation].(string)
	return doc
}

// Pattern returns the pattern trait, if any.
func (s *Shape) Pattern() string {
	pattern, _ := s.Traits[TraitPattern].(string)
	return pattern
}

// Length returns the bounds of the length trait. A nil bound is open.
func (s *Shape) Length() (min, max *int) {
	return intBounds(s.Traits[TraitLength])
}

// Range returns the bounds of the range trait. A nil bound is open.
func (s *Shape) Range() (min, max *float64) {
	bounds, ok := s.Traits[TraitRange].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	if v, ok := bounds["min"].(float64); ok {
		min = &v
	}
	if v, ok := bounds["max"].(float64); ok {
		max = &v
	}
	return min, max
}

func intBounds(trait interface{}) (min, max *int) {
	bounds, ok := trait.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	if v, ok := bounds["min"].(float64); ok {
		n := int(v)
		min = &n
	}
	if v, ok := bounds["max"].(float64); ok {
		n := int(v)
		max = &n
	}
	return min, max
}
