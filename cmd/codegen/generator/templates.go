package generator

const templates = typesTemplate + accessorsTemplate + shapeMethodsTemplate +
	enumsTemplate + exceptionsTemplate + registryTemplate

const typesTemplate = `{{define "types"}}// Code generated by cmd/codegen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedsMaps}}
	"maps"
{{- end}}
{{- if .NeedsSlices}}
	"slices"
{{- end}}
{{- if .NeedsTime}}
	"time"
{{- end}}
)
{{- range .Types}}

// {{.Name}} {{.Doc}}
{{- if .Fields}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.GoType}} ` + "`" + `json:"{{.JSONName}},omitzero"` + "`" + `
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}
{{- range .Fields}}
{{template "accessors" .}}
{{- end}}
{{template "shapeMethods" .}}
{{- end}}
{{end}}`

const accessorsTemplate = `{{define "accessors"}}
// Get{{.Name}} returns the value of {{.Name}}.
func (s *{{.Owner}}) Get{{.Name}}() {{.GoType}} {
	if s == nil {
		return nil
	}
	return s.{{.Name}}
}
{{- if eq .Kind "list"}}

// Set{{.Name}} replaces {{.Name}} with a copy of v.
func (s *{{.Owner}}) Set{{.Name}}(v {{.GoType}}) {
	s.{{.Name}} = slices.Clone(v)
}

// With{{.Name}} appends v to {{.Name}} and returns s.
func (s *{{.Owner}}) With{{.Name}}(v ...{{.ElemType}}) *{{.Owner}} {
	if s.{{.Name}} == nil {
		s.{{.Name}} = make({{.GoType}}, 0, len(v))
	}
	s.{{.Name}} = append(s.{{.Name}}, v...)
	return s
}
{{- else if eq .Kind "map"}}

// Set{{.Name}} replaces {{.Name}} with a copy of v.
func (s *{{.Owner}}) Set{{.Name}}(v {{.GoType}}) {
	s.{{.Name}} = maps.Clone(v)
}

// With{{.Name}} replaces {{.Name}} with a copy of v and returns s.
func (s *{{.Owner}}) With{{.Name}}(v {{.GoType}}) *{{.Owner}} {
	s.{{.Name}} = maps.Clone(v)
	return s
}

// Add{{.Name}}Entry adds key to {{.Name}}. It fails if key is already present.
func (s *{{.Owner}}) Add{{.Name}}Entry(key string, value {{.ElemType}}) error {
	if s.{{.Name}} == nil {
		s.{{.Name}} = make({{.GoType}})
	}
	if _, ok := s.{{.Name}}[key]; ok {
		return duplicateKeyError("{{.Name}}", key)
	}
	s.{{.Name}}[key] = value
	return nil
}

// Clear{{.Name}}Entries removes every entry of {{.Name}} and returns s.
func (s *{{.Owner}}) Clear{{.Name}}Entries() *{{.Owner}} {
	s.{{.Name}} = nil
	return s
}
{{- else}}

// Set{{.Name}} sets {{.Name}}.
func (s *{{.Owner}}) Set{{.Name}}(v {{.GoType}}) {
	s.{{.Name}} = v
}

// With{{.Name}} sets {{.Name}} and returns s.
{{- if eq .Kind "struct"}}
func (s *{{.Owner}}) With{{.Name}}(v {{.GoType}}) *{{.Owner}} {
	s.{{.Name}} = v
	return s
}
{{- else if eq .Kind "timestamp"}}
func (s *{{.Owner}}) With{{.Name}}(v time.Time) *{{.Owner}} {
	s.{{.Name}} = NewUnixTime(v)
	return s
}
{{- else}}
func (s *{{.Owner}}) With{{.Name}}(v {{.ElemType}}) *{{.Owner}} {
	s.{{.Name}} = &v
	return s
}
{{- end}}
{{- end}}
{{- end}}`

const shapeMethodsTemplate = `{{define "shapeMethods"}}
// ShapeName returns the model name of {{.Name}}.
func (s *{{.Name}}) ShapeName() string {
	return "{{.Name}}"
}

// String renders the fields of s that are set.
func (s *{{.Name}}) String() string {
	if s == nil {
		return "null"
	}
	w := newDebugWriter()
{{- range .Fields}}
	if s.{{.Name}} != nil {
		w.field("{{.Name}}", {{.DebugValue}}, {{.Last}})
	}
{{- end}}
	return w.String()
}

// Hash returns a hash of the field values of s. A nil s hashes to 0.
func (s *{{.Name}}) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := hashSeed
{{- range .Fields}}
	h = hashMix(h, {{.HashFunc}}(s.{{.Name}}))
{{- end}}
	return h
}

// Equal reports whether s and other hold equal field values.
func (s *{{.Name}}) Equal(other *{{.Name}}) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
{{- if .Fields}}
	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}{{$f.EqualExpr}}{{end}}
{{- else}}
	return true
{{- end}}
}
{{- end}}`

const enumsTemplate = `{{define "enums"}}// Code generated by cmd/codegen. DO NOT EDIT.

package {{.Package}}

import (
	"slices"
)
{{- range $e := .Enums}}

// {{$e.Name}} {{$e.Doc}}
type {{$e.Name}} string

// Enum values for {{$e.Name}}
const (
{{- range $e.Members}}
	{{.Const}} {{$e.Name}} = "{{.Value}}"
{{- end}}
)

var {{$e.VarPrefix}}Values = []{{$e.Name}}{
{{- range $e.Members}}
	{{.Const}},
{{- end}}
}

var {{$e.VarPrefix}}Lookup = newEnumLookup({{$e.VarPrefix}}Values)

// Values returns every {{$e.Name}} in declaration order.
func ({{$e.Name}}) Values() []{{$e.Name}} {
	return slices.Clone({{$e.VarPrefix}}Values)
}

// String returns the canonical string of v.
func (v {{$e.Name}}) String() string {
	return string(v)
}

// Parse{{$e.Name}} returns the {{$e.Name}} whose canonical string is value.
func Parse{{$e.Name}}(value string) ({{$e.Name}}, error) {
	return parseEnum("{{$e.Name}}", {{$e.VarPrefix}}Lookup, value)
}

// Parse{{$e.Name}}Ptr is Parse{{$e.Name}} for an optional string. A nil value is rejected like an empty one.
func Parse{{$e.Name}}Ptr(value *string) ({{$e.Name}}, error) {
	if value == nil {
		return Parse{{$e.Name}}("")
	}
	return Parse{{$e.Name}}(*value)
}

// UnmarshalJSON decodes a canonical string and rejects unknown values.
func (v *{{$e.Name}}) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, v, Parse{{$e.Name}})
}
{{- end}}
{{end}}`

const exceptionsTemplate = `{{define "exceptions"}}// Code generated by cmd/codegen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	smithy "github.com/aws/smithy-go"
)
{{- range .Errors}}

// {{.Name}} {{.Doc}}
type {{.Name}} struct {
	Message *string ` + "`" + `json:"Message,omitzero"` + "`" + `
	ErrorCodeOverride *string ` + "`" + `json:"-"` + "`" + `
}

// New{{.Name}} returns {{.Article}} {{.Name}} carrying message.
func New{{.Name}}(message string) *{{.Name}} {
	return &{{.Name}}{Message: &message}
}

func (e *{{.Name}}) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *{{.Name}}) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *{{.Name}}) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "{{.Name}}"
	}
	return *e.ErrorCodeOverride
}

func (e *{{.Name}}) ErrorFault() smithy.ErrorFault {
	return {{.Fault}}
}
{{- end}}

// NewServiceError returns the modeled exception for code, or a generic API
// error when code is not modeled.
func NewServiceError(code, message string) error {
	switch code {
{{- range .Errors}}
	case "{{.Name}}":
		return New{{.Name}}(message)
{{- end}}
	}
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultUnknown}
}
{{end}}`

const registryTemplate = `{{define "registry"}}// Code generated by cmd/codegen. DO NOT EDIT.

package {{.Package}}

import (
	"context"
)

// API is implemented by clients of the operations described by this package.
type API interface {
{{- range $i, $op := .Operations}}
{{- if $i}}
{{end}}
	// {{$op.Doc}}
	{{$op.Name}}(ctx context.Context, input *{{$op.Input}}) (*{{$op.Output}}, error)
{{- end}}
}

var operations = []OperationInfo{
{{- range .Operations}}
	{
		Name: "{{.Name}}",
		Input: "{{.Input}}",
		Output: "{{.Output}}",
		Errors: []string{
{{- range .Errors}}
			"{{.}}",
{{- end}}
		},
	},
{{- end}}
}

// ShapeNames returns the names of every structure in the model.
func ShapeNames() []string {
	return []string{
{{- range .Types}}
		"{{.Name}}",
{{- end}}
	}
}

// NewShape returns a zero value of the structure called name.
func NewShape(name string) (Shape, bool) {
	switch name {
{{- range .Types}}
	case "{{.Name}}":
		return &{{.Name}}{}, true
{{- end}}
	}
	return nil, false
}

// EnumNames returns the names of every enumeration in the model.
func EnumNames() []string {
	return []string{
{{- range .Enums}}
		"{{.Name}}",
{{- end}}
	}
}

// EnumValues returns the canonical strings of the enumeration called name.
func EnumValues(name string) ([]string, bool) {
	switch name {
{{- range .Enums}}
	case "{{.Name}}":
		return enumStrings({{.VarPrefix}}Values), true
{{- end}}
	}
	return nil, false
}

// ParseEnum parses value as a member of the enumeration called name.
func ParseEnum(name, value string) (string, error) {
	switch name {
{{- range .Enums}}
	case "{{.Name}}":
		v, err := Parse{{.Name}}(value)
		return string(v), err
{{- end}}
	}
	return "", unknownEnumError(name)
}

// Invoke calls the operation called name on api. input must be the operation's
// input structure.
func Invoke(ctx context.Context, api API, name string, input Shape) (Shape, error) {
	switch name {
{{- range .Operations}}
	case "{{.Name}}":
		in, ok := input.(*{{.Input}})
		if !ok {
			return nil, inputTypeError(name, "{{.Input}}", input)
		}
		out, err := api.{{.Name}}(ctx, in)
		if err != nil {
			return nil, err
		}
		return out, nil
{{- end}}
	}
	return nil, unknownOperationError(name)
}
{{end}}`
