package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

// Field kinds decide how a member is stored, copied, compared and hashed.
const (
	KindScalar    = "scalar"
	KindEnum      = "enum"
	KindTimestamp = "timestamp"
	KindStruct    = "struct"
	KindList      = "list"
	KindMap       = "map"
)

type modelData struct {
	Package     string
	NeedsMaps   bool
	NeedsSlices bool
	NeedsTime   bool
	Types       []*TypeInfo
	Enums       []*EnumInfo
	Errors      []*ErrorInfo
	Operations  []*OperationInfo
}

// TypeInfo holds information about a generated structure
type TypeInfo struct {
	Name   string
	Doc    string
	Fields []*FieldInfo
}

// FieldInfo holds information about a struct field
type FieldInfo struct {
	Owner        string
	Name         string
	JSONName     string
	Kind         string
	GoType       string
	ElemType     string
	ElemIsStruct bool
	IsRequired   bool
	Last         bool
}

// DebugValue is the expression passed to the debug writer for the field.
func (f *FieldInfo) DebugValue() string {
	switch f.Kind {
	case KindList:
		return "formatList(s." + f.Name + ")"
	case KindMap:
		return "formatMap(s." + f.Name + ")"
	case KindStruct:
		return "s." + f.Name
	}
	return "*s." + f.Name
}

// HashFunc names the helper that hashes the field.
func (f *FieldInfo) HashFunc() string {
	switch f.Kind {
	case KindList:
		return "hashList"
	case KindMap:
		return "hashMap"
	}
	return "hashPtr"
}

// EqualExpr is the expression comparing the field of s and other.
func (f *FieldInfo) EqualExpr() string {
	switch f.Kind {
	case KindList:
		if f.ElemIsStruct {
			return fmt.Sprintf("equalShapes(s.%s, other.%s)", f.Name, f.Name)
		}
		return fmt.Sprintf("equalList(s.%s, other.%s)", f.Name, f.Name)
	case KindMap:
		return fmt.Sprintf("equalMap(s.%s, other.%s)", f.Name, f.Name)
	case KindStruct:
		return fmt.Sprintf("s.%s.Equal(other.%s)", f.Name, f.Name)
	case KindTimestamp:
		return fmt.Sprintf("equalTime(s.%s, other.%s)", f.Name, f.Name)
	}
	if f.ElemType == "float32" || f.ElemType == "float64" {
		return fmt.Sprintf("equalFloat(s.%s, other.%s)", f.Name, f.Name)
	}
	return fmt.Sprintf("equalPtr(s.%s, other.%s)", f.Name, f.Name)
}

// EnumInfo holds information about a generated enumeration
type EnumInfo struct {
	Name      string
	VarPrefix string
	Doc       string
	Members   []EnumMember
}

// EnumMember represents an enum member with its constant name and value
type EnumMember struct {
	Const string
	Value string
}

// ErrorInfo holds information about a modeled exception
type ErrorInfo struct {
	Name    string
	Doc     string
	Article string
	Fault   string
}

// OperationInfo holds information about a service operation
type OperationInfo struct {
	Name   string
	Input  string
	Output string
	Doc    string
	Errors []string
}

func (g *Generator) collect(model *smithy.Model) (*modelData, error) {
	data := &modelData{Package: g.packageName}

	for _, fqn := range model.NamesOfType("structure") {
		shape := model.Shapes[fqn]
		name := smithy.ShapeName(fqn)
		if shape.IsError() {
			data.Errors = append(data.Errors, g.errorInfo(name, shape))
			continue
		}
		typeInfo, err := g.structInfo(name, shape, model)
		if err != nil {
			return nil, err
		}
		for _, f := range typeInfo.Fields {
			switch f.Kind {
			case KindList:
				data.NeedsSlices = true
			case KindMap:
				data.NeedsMaps = true
			case KindTimestamp:
				data.NeedsTime = true
			}
		}
		data.Types = append(data.Types, typeInfo)
	}

	for _, kind := range []string{"enum", "string"} {
		for _, fqn := range model.NamesOfType(kind) {
			shape := model.Shapes[fqn]
			if !shape.IsEnum() {
				continue
			}
			data.Enums = append(data.Enums, g.enumInfo(smithy.ShapeName(fqn), shape))
		}
	}
	sort.Slice(data.Enums, func(i, j int) bool {
		return data.Enums[i].Name < data.Enums[j].Name
	})

	operations, err := g.operationInfos(model)
	if err != nil {
		return nil, err
	}
	data.Operations = operations

	return data, nil
}

// structInfo keeps members in declaration order; the debug rendering and
// hashing depend on it.
func (g *Generator) structInfo(name string, shape *smithy.Shape, model *smithy.Model) (*TypeInfo, error) {
	typeInfo := &TypeInfo{
		Name: name,
		Doc:  docOrDefault(shape, structFallback(name)),
	}

	for i, member := range shape.Members {
		field, err := g.generateField(name, member, model)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, member.Name, err)
		}
		field.Last = i == len(shape.Members)-1
		typeInfo.Fields = append(typeInfo.Fields, field)
	}
	return typeInfo, nil
}

// generateField generates field info for a struct member
func (g *Generator) generateField(owner string, member smithy.NamedMember, model *smithy.Model) (*FieldInfo, error) {
	target, targetName := model.Resolve(member.Target)
	if target == nil {
		return nil, fmt.Errorf("unknown target %s", member.Target)
	}

	field := &FieldInfo{
		Owner:      owner,
		Name:       exportFieldName(member.Name),
		JSONName:   member.JSONName(member.Name),
		IsRequired: member.IsRequired(),
	}

	switch target.Type {
	case "list", "set":
		if target.Member == nil {
			return nil, fmt.Errorf("list %s has no member", targetName)
		}
		kind, elem, err := g.valueType(target.Member.Target, model)
		if err != nil {
			return nil, err
		}
		field.Kind = KindList
		field.ElemType = elem
		field.ElemIsStruct = kind == KindStruct
		field.GoType = "[]" + elem
	case "map":
		if target.Value == nil {
			return nil, fmt.Errorf("map %s has no value", targetName)
		}
		_, elem, err := g.valueType(target.Value.Target, model)
		if err != nil {
			return nil, err
		}
		// keys are carried as strings even when the model constrains them
		// to an enumeration
		field.Kind = KindMap
		field.ElemType = elem
		field.GoType = "map[string]" + elem
	default:
		kind, goType, err := g.valueType(member.Target, model)
		if err != nil {
			return nil, err
		}
		field.Kind = kind
		field.ElemType = goType
		field.GoType = "*" + goType
	}
	return field, nil
}

// valueType returns the kind and Go type of a non-collection shape.
func (g *Generator) valueType(target string, model *smithy.Model) (string, string, error) {
	shape, name := model.Resolve(target)
	if shape == nil {
		return "", "", fmt.Errorf("unknown target %s", target)
	}
	if shape.IsEnum() {
		return KindEnum, smithy.ShapeName(name), nil
	}
	switch shape.Type {
	case "structure":
		return KindStruct, smithy.ShapeName(name), nil
	case "timestamp":
		return KindTimestamp, "UnixTime", nil
	case "list", "set", "map":
		return "", "", fmt.Errorf("nested collection %s is not supported", smithy.ShapeName(name))
	}
	goType, ok := primitiveGoType(shape.Type)
	if !ok {
		return "", "", fmt.Errorf("unsupported shape type %q for %s", shape.Type, smithy.ShapeName(name))
	}
	return KindScalar, goType, nil
}

// primitiveGoType returns the Go type for primitive Smithy types
func primitiveGoType(smithyType string) (string, bool) {
	switch smithyType {
	case "string":
		return "string", true
	case "boolean":
		return "bool", true
	case "byte":
		return "int8", true
	case "short":
		return "int16", true
	case "integer":
		return "int32", true
	case "long":
		return "int64", true
	case "float":
		return "float32", true
	case "double":
		return "float64", true
	}
	return "", false
}

func (g *Generator) enumInfo(name string, shape *smithy.Shape) *EnumInfo {
	info := &EnumInfo{
		Name:      name,
		VarPrefix: strings.ToLower(name[:1]) + name[1:],
		Doc:       docOrDefault(shape, "is the "+name+" enumeration."),
	}
	for _, m := range shape.EnumMembers() {
		info.Members = append(info.Members, EnumMember{
			Const: name + constSuffix(m.Name),
			Value: m.Value,
		})
	}
	return info
}

func (g *Generator) errorInfo(name string, shape *smithy.Shape) *ErrorInfo {
	fault := "smithy.FaultClient"
	if shape.ErrorFault() == "server" {
		fault = "smithy.FaultServer"
	}
	article := "a"
	if strings.ContainsRune("AEIOU", rune(name[0])) {
		article = "an"
	}
	return &ErrorInfo{
		Name:    name,
		Doc:     docOrDefault(shape, "is the "+name+" error."),
		Article: article,
		Fault:   fault,
	}
}

func (g *Generator) operationInfos(model *smithy.Model) ([]*OperationInfo, error) {
	var operations []*OperationInfo
	for fqn, shape := range model.Operations() {
		if shape.Input == nil || shape.Output == nil {
			return nil, fmt.Errorf("operation %s needs an input and an output", smithy.ShapeName(fqn))
		}
		op := &OperationInfo{
			Name:   smithy.ShapeName(fqn),
			Input:  smithy.ShapeName(shape.Input.Target),
			Output: smithy.ShapeName(shape.Output.Target),
			Doc:    shape.Documentation(),
		}
		for _, ref := range shape.Errors {
			op.Errors = append(op.Errors, smithy.ShapeName(ref.Target))
		}
		operations = append(operations, op)
	}
	sort.Slice(operations, func(i, j int) bool {
		return operations[i].Name < operations[j].Name
	})
	return operations, nil
}

func structFallback(name string) string {
	switch {
	case strings.HasSuffix(name, "Request"):
		return "is the input of the " + strings.TrimSuffix(name, "Request") + " operation."
	case strings.HasSuffix(name, "Result"):
		return "is the output of the " + strings.TrimSuffix(name, "Result") + " operation."
	}
	return "is the " + name + " structure."
}

func docOrDefault(shape *smithy.Shape, fallback string) string {
	if doc := strings.TrimSpace(shape.Documentation()); doc != "" {
		return doc
	}
	return fallback
}

// exportFieldName converts a field name to an exported Go field name
func exportFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// constSuffix turns an enum member name such as G_1X or SSEKMS into the
// suffix of its Go constant (G1x, Ssekms).
func constSuffix(member string) string {
	var b strings.Builder
	for _, part := range strings.Split(member, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
