package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/apimodel"
	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

const miniModel = `{
	"smithy": "2.0",
	"shapes": {
		"com.example#Svc": {"type": "service", "operations": [{"target": "com.example#StopRun"}]},
		"com.example#StopRun": {
			"type": "operation",
			"input": {"target": "com.example#StopRunRequest"},
			"output": {"target": "com.example#StopRunResult"},
			"errors": [{"target": "com.example#IllegalStateException"}]
		},
		"com.example#StopRunRequest": {
			"type": "structure",
			"members": {
				"Name": {"target": "com.example#String", "traits": {"smithy.api#required": {}}},
				"Tags": {"target": "com.example#TagList"}
			}
		},
		"com.example#StopRunResult": {"type": "structure", "members": {}},
		"com.example#String": {"type": "string"},
		"com.example#TagList": {"type": "list", "member": {"target": "com.example#String"}},
		"com.example#Mode": {
			"type": "enum",
			"members": {
				"G_1X": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "G.1X"}}
			}
		},
		"com.example#IllegalStateException": {
			"type": "structure",
			"members": {"Message": {"target": "com.example#String"}},
			"traits": {"smithy.api#error": "server"}
		}
	}
}`

func renderMini(t *testing.T) map[string]string {
	t.Helper()
	model, err := smithy.Parse(strings.NewReader(miniModel))
	require.NoError(t, err)

	files, stats, err := New("example", t.TempDir()).Render(model)
	require.NoError(t, err)
	assert.Equal(t, Stats{Structures: 2, Enums: 1, Errors: 1, Operations: 1}, stats)

	out := make(map[string]string, len(files))
	for name, content := range files {
		out[name] = string(content)
	}
	return out
}

func TestRenderProducesValidGo(t *testing.T) {
	files := renderMini(t)
	for _, name := range []string{"types.go", "enums.go", "exceptions.go", "registry.go"} {
		content, ok := files[name]
		require.True(t, ok, name)
		assert.True(t, strings.HasPrefix(content, "// Code generated by cmd/codegen. DO NOT EDIT."), name)
		_, err := parser.ParseFile(token.NewFileSet(), name, content, parser.AllErrors)
		assert.NoError(t, err, name)
	}
}

func TestRenderTypes(t *testing.T) {
	types := renderMini(t)["types.go"]

	assert.Contains(t, types, "package example")
	assert.Contains(t, types, "func (s *StopRunRequest) WithTags(v ...string) *StopRunRequest {")
	assert.Contains(t, types, "s.Tags = slices.Clone(v)")
	assert.Contains(t, types, "type StopRunResult struct{}")
	assert.Contains(t, types, `w.field("Tags", formatList(s.Tags), true)`)
	assert.Contains(t, types, `w.field("Name", *s.Name, false)`)
	assert.NotContains(t, types, `"maps"`)
	assert.NotContains(t, types, `"time"`)

	// members keep model order rather than being sorted
	assert.Less(t, strings.Index(types, "\tName "), strings.Index(types, "\tTags "))
}

func TestRenderEnums(t *testing.T) {
	enums := renderMini(t)["enums.go"]
	assert.Regexp(t, regexp.MustCompile(`ModeG1x\s+Mode = "G.1X"`), enums)
	assert.Contains(t, enums, "func ParseMode(value string) (Mode, error) {")
}

func TestRenderExceptions(t *testing.T) {
	exceptions := renderMini(t)["exceptions.go"]
	assert.Contains(t, exceptions, "return smithy.FaultServer")
	assert.Contains(t, exceptions, "// NewIllegalStateException returns an IllegalStateException carrying message.")
	assert.Contains(t, exceptions, `case "IllegalStateException":`)
}

func TestRenderRegistry(t *testing.T) {
	registry := renderMini(t)["registry.go"]
	assert.Contains(t, registry, "StopRun(ctx context.Context, input *StopRunRequest) (*StopRunResult, error)")
	assert.Contains(t, registry, `"IllegalStateException",`)
	assert.Contains(t, registry, `case "Mode":`)
}

func TestGenerateWritesFiles(t *testing.T) {
	model, err := smithy.Parse(strings.NewReader(miniModel))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	_, err = New("example", dir).Generate(model)
	require.NoError(t, err)

	for _, name := range fileOrder {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRenderEmbeddedModel(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	files, stats, err := New("glue", t.TempDir()).Render(model)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Operations)
	assert.Equal(t, 13, stats.Errors)

	types := string(files["types.go"])
	assert.Contains(t, types, "func (s *JobRun) AddArgumentsEntry(key string, value string) error {")
	assert.Contains(t, types, "func (s *Connection) WithCreationTime(v time.Time) *Connection {")
	assert.Contains(t, types, "equalShapes(s.ConnectionList, other.ConnectionList)")
	assert.Contains(t, types, "equalFloat(s.MaxCapacity, other.MaxCapacity)")
	assert.Contains(t, types, "func (s *CreateJobRequest) AddDefaultArgumentsEntry(key string, value string) error {")

	enums := string(files["enums.go"])
	assert.Regexp(t, regexp.MustCompile(`ConnectionPropertyKeyUserName\s+ConnectionPropertyKey = "USERNAME"`), enums)
}

func TestUnsupportedShapes(t *testing.T) {
	model, err := smithy.Parse(strings.NewReader(`{
		"shapes": {
			"com.example#Bad": {
				"type": "structure",
				"members": {"Blob": {"target": "com.example#Data"}}
			},
			"com.example#Data": {"type": "blob"}
		}
	}`))
	require.NoError(t, err)

	_, _, err = New("example", t.TempDir()).Render(model)
	assert.ErrorContains(t, err, "Bad.Blob")
}

func TestConstSuffix(t *testing.T) {
	tests := map[string]string{
		"SSEKMS":               "Ssekms",
		"G_1X":                 "G1x",
		"USER_NAME":            "UserName",
		"Standard":             "Standard",
		"CREATE_DATABASE":      "CreateDatabase",
		"_LEADING":             "Leading",
		"DATA_LOCATION_ACCESS": "DataLocationAccess",
	}
	for in, want := range tests {
		assert.Equal(t, want, constSuffix(in), in)
	}
}
