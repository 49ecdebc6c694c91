package smithy

import (
	"strings"
	"testing"
)

const sampleModel = `{
	"smithy": "2.0",
	"shapes": {
		"com.example#Service": {
			"type": "service",
			"operations": [{"target": "com.example#StopRun"}]
		},
		"com.example#StopRun": {
			"type": "operation",
			"input": {"target": "com.example#StopRunRequest"},
			"output": {"target": "com.example#StopRunResult"},
			"errors": [{"target": "com.example#IllegalStateException"}],
			"traits": {"smithy.api#documentation": "Stops a run."}
		},
		"com.example#StopRunRequest": {
			"type": "structure",
			"members": {
				"Zeta": {"target": "com.example#Name", "traits": {"smithy.api#required": {}}},
				"Alpha": {"target": "com.example#Name"},
				"Mode": {"target": "com.example#Mode", "traits": {"smithy.api#jsonName": "mode"}}
			}
		},
		"com.example#StopRunResult": {"type": "structure", "members": {}},
		"com.example#Name": {
			"type": "string",
			"traits": {
				"smithy.api#length": {"min": 1, "max": 255},
				"smithy.api#pattern": "^[a-z]+$"
			}
		},
		"com.example#PageSize": {
			"type": "integer",
			"traits": {"smithy.api#range": {"min": 1, "max": 1000}}
		},
		"com.example#Mode": {
			"type": "enum",
			"members": {
				"SSE_KMS": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "SSE-KMS"}},
				"DISABLED": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "DISABLED"}}
			}
		},
		"com.example#LegacyMode": {
			"type": "string",
			"traits": {"smithy.api#enum": [{"value": "on", "name": "ON"}, {"value": "off"}]}
		},
		"com.example#IllegalStateException": {
			"type": "structure",
			"members": {"Message": {"target": "com.example#Name"}},
			"traits": {"smithy.api#error": "client"}
		}
	}
}`

func parseSample(t *testing.T) *Model {
	t.Helper()
	model, err := Parse(strings.NewReader(sampleModel))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return model
}

func TestMembersKeepDeclarationOrder(t *testing.T) {
	model := parseSample(t)
	shape := model.Shapes["com.example#StopRunRequest"]

	var names []string
	for _, m := range shape.Members {
		names = append(names, m.Name)
	}
	if got := strings.Join(names, ","); got != "Zeta,Alpha,Mode" {
		t.Errorf("member order = %s, want Zeta,Alpha,Mode", got)
	}

	zeta, ok := shape.Members.Get("Zeta")
	if !ok || !zeta.IsRequired() {
		t.Errorf("expected Zeta to be required")
	}
	if alpha, _ := shape.Members.Get("Alpha"); alpha.IsRequired() {
		t.Errorf("expected Alpha to be optional")
	}
	if _, ok := shape.Members.Get("Missing"); ok {
		t.Errorf("expected Missing to be absent")
	}
}

func TestEmptyMembers(t *testing.T) {
	model := parseSample(t)
	shape := model.Shapes["com.example#StopRunResult"]
	if shape.Members == nil || len(shape.Members) != 0 {
		t.Errorf("expected empty non-nil members, got %#v", shape.Members)
	}
}

func TestJSONName(t *testing.T) {
	tests := []struct {
		name      string
		member    *Member
		fieldName string
		expected  string
	}{
		{
			name:      "Should preserve PascalCase field name",
			member:    &Member{},
			fieldName: "ConnectionName",
			expected:  "ConnectionName",
		},
		{
			name:      "Should preserve mixed case field name",
			member:    &Member{},
			fieldName: "KmsKeyArn",
			expected:  "KmsKeyArn",
		},
		{
			name: "Should use jsonName trait when present",
			member: &Member{
				Traits: map[string]interface{}{
					TraitJSONName: "customName",
				},
			},
			fieldName: "OriginalName",
			expected:  "customName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.member.JSONName(tt.fieldName)
			if result != tt.expected {
				t.Errorf("JSONName(%s) = %s, want %s", tt.fieldName, result, tt.expected)
			}
		})
	}
}

func TestEnumMembers(t *testing.T) {
	model := parseSample(t)

	mode := model.Shapes["com.example#Mode"]
	if !mode.IsEnum() {
		t.Fatalf("expected Mode to be an enum")
	}
	members := mode.EnumMembers()
	if len(members) != 2 || members[0].Name != "SSE_KMS" || members[0].Value != "SSE-KMS" {
		t.Errorf("unexpected members %+v", members)
	}
	if got := strings.Join(mode.EnumValues(), ","); got != "SSE-KMS,DISABLED" {
		t.Errorf("EnumValues() = %s", got)
	}

	legacy := model.Shapes["com.example#LegacyMode"]
	if !legacy.IsEnum() {
		t.Fatalf("expected LegacyMode to be an enum")
	}
	members = legacy.EnumMembers()
	if len(members) != 2 || members[0].Name != "ON" || members[1].Name != "off" {
		t.Errorf("unexpected legacy members %+v", members)
	}
}

func TestConstraintTraits(t *testing.T) {
	model := parseSample(t)

	name := model.Shapes["com.example#Name"]
	minLen, maxLen := name.Length()
	if minLen == nil || *minLen != 1 || maxLen == nil || *maxLen != 255 {
		t.Errorf("Length() = %v, %v", minLen, maxLen)
	}
	if name.Pattern() != "^[a-z]+$" {
		t.Errorf("Pattern() = %s", name.Pattern())
	}

	pageSize := model.Shapes["com.example#PageSize"]
	minVal, maxVal := pageSize.Range()
	if minVal == nil || *minVal != 1 || maxVal == nil || *maxVal != 1000 {
		t.Errorf("Range() = %v, %v", minVal, maxVal)
	}

	if lo, hi := pageSize.Length(); lo != nil || hi != nil {
		t.Errorf("expected no length bounds on PageSize")
	}
}

func TestServiceAndOperations(t *testing.T) {
	model := parseSample(t)

	_, name, err := model.Service()
	if err != nil || ShapeName(name) != "Service" {
		t.Fatalf("Service() = %s, %v", name, err)
	}

	ops := model.Operations()
	op, ok := ops["com.example#StopRun"]
	if !ok {
		t.Fatalf("expected StopRun operation")
	}
	if op.Documentation() != "Stops a run." {
		t.Errorf("Documentation() = %s", op.Documentation())
	}

	errShape := model.Shapes["com.example#IllegalStateException"]
	if !errShape.IsError() || errShape.ErrorFault() != "client" {
		t.Errorf("expected client error")
	}
}

func TestNamesOfTypeIsSorted(t *testing.T) {
	model := parseSample(t)
	got := model.NamesOfType("structure")
	want := []string{
		"com.example#IllegalStateException",
		"com.example#StopRunRequest",
		"com.example#StopRunResult",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("NamesOfType() = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	model := parseSample(t)
	shape, fqn, ok := model.Lookup("Mode")
	if !ok || fqn != "com.example#Mode" || shape.Type != "enum" {
		t.Errorf("Lookup(Mode) = %v, %s, %v", shape, fqn, ok)
	}
	if _, _, ok := model.Lookup("Nope"); ok {
		t.Errorf("expected Nope to be missing")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("not json")); err == nil {
		t.Errorf("expected error for invalid JSON")
	}
	if _, err := Parse(strings.NewReader(`{"smithy": "2.0", "shapes": {}}`)); err == nil {
		t.Errorf("expected error for a model without shapes")
	}
	if _, err := Parse(strings.NewReader(`{"shapes": {"a#B": {"type": "structure", "members": []}}}`)); err == nil {
		t.Errorf("expected error for members that are not an object")
	}
	if _, err := ParseFile("does-not-exist.json"); err == nil {
		t.Errorf("expected error for a missing file")
	}
}
