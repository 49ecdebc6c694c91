package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/glue/ptr"
	"github.com/nandemo-ya/gluemodel/internal/config"
	"github.com/nandemo-ya/gluemodel/internal/jsonschema"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// run executes the command tree with args against an isolated environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"GLUEMODEL_LOG_LEVEL", "GLUEMODEL_LOG_FORMAT", "GLUEMODEL_OUTPUT_FORMAT", "GLUEMODEL_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE"} {
		t.Setenv(key, "")
	}
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEnumsCommand(t *testing.T) {
	out, err := run(t, "enums", "WorkerType")
	require.NoError(t, err)
	assert.Contains(t, out, "G.1X")
	assert.Contains(t, out, "Standard")

	_, err = run(t, "enums", "Colour")
	assert.ErrorIs(t, err, glue.ErrUnknownEnum)
}

func TestParseEnumCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "canonical value", args: []string{"ConnectionType", "JDBC"}, want: "JDBC\n"},
		{name: "case mismatch", args: []string{"ConnectionType", "jdbc"}, wantErr: glue.ErrUnknownEnumValue},
		{name: "empty value", args: []string{"Permission", ""}, wantErr: glue.ErrEmptyEnumValue},
		{name: "unknown enum", args: []string{"Colour", "RED"}, wantErr: glue.ErrUnknownEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"parse-enum"}, tt.args...)...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, glue.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestOperationsCommandJSON(t *testing.T) {
	out, err := run(t, "operations", "-o", "json")
	require.NoError(t, err)

	var ops []glue.OperationInfo
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	assert.Equal(t, glue.Operations(), ops)
}

func TestShapesCommand(t *testing.T) {
	out, err := run(t, "shapes", "--output", "json")
	require.NoError(t, err)

	var shapes []shapeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &shapes))
	require.Len(t, shapes, len(glue.ShapeNames()))

	kinds := map[string]string{}
	for _, s := range shapes {
		kinds[s.Name] = s.Kind
	}
	assert.Equal(t, "input", kinds["StartWorkflowRunRequest"])
	assert.Equal(t, "output", kinds["StartWorkflowRunResult"])
	assert.Equal(t, "structure", kinds["Connection"])
}

func TestFlagOverridesAreValidated(t *testing.T) {
	_, err := run(t, "shapes", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format: xml")

	out, err := run(t, "operations", "--log-level", "debug", "--output", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestDescribeCommand(t *testing.T) {
	path := writeFile(t, "request.yaml", "Name: nightly\n")

	out, err := run(t, "describe", "StartWorkflowRunRequest", path)
	require.NoError(t, err)
	assert.Contains(t, out, "{Name: nightly}")
	assert.Contains(t, out, "hash: ")

	out, err = run(t, "describe", "StartWorkflowRunRequest", path, "-o", "json")
	require.NoError(t, err)
	var d struct {
		Shape  string `json:"shape"`
		String string `json:"string"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "StartWorkflowRunRequest", d.Shape)
	assert.Equal(t, "{Name: nightly}", d.String)
}

func TestDescribeUnknownShape(t *testing.T) {
	path := writeFile(t, "request.json", `{}`)
	_, err := run(t, "describe", "Nope", path)
	assert.EqualError(t, err, "unknown shape: Nope")
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
	}{
		{
			name: "valid yaml",
			file: "conn.yaml",
			content: `ConnectionInput:
  Name: warehouse
  ConnectionType: JDBC
  ConnectionProperties:
    JDBC_CONNECTION_URL: jdbc:postgresql://db:5432/warehouse
`,
		},
		{
			name:    "missing required member",
			file:    "conn.json",
			content: `{"CatalogId": "123456789012"}`,
			wantErr: true,
		},
		{
			name:    "unknown enum value",
			file:    "conn.json",
			content: `{"ConnectionInput": {"Name": "w", "ConnectionType": "FTP", "ConnectionProperties": {}}}`,
			wantErr: true,
		},
		{
			name:    "unknown property key",
			file:    "conn.json",
			content: `{"ConnectionInput": {"Name": "w", "ConnectionType": "JDBC", "ConnectionProperties": {"COLOUR": "red"}}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			out, err := run(t, "validate", "CreateConnectionRequest", path)
			if tt.wantErr {
				assert.ErrorIs(t, err, jsonschema.ErrInvalidPayload)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "is a valid CreateConnectionRequest")
		})
	}
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "schema", "StartWorkflowRunRequest")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"Name"}, schema["required"])

	_, err = run(t, "schema", "Nope")
	assert.ErrorIs(t, err, jsonschema.ErrUnknownShape)
}

// fakeAPI answers StartWorkflowRun; the embedded interface panics on
// anything else.
type fakeAPI struct {
	glue.API

	input *glue.StartWorkflowRunRequest
	err   error
}

func (f *fakeAPI) StartWorkflowRun(ctx context.Context, input *glue.StartWorkflowRunRequest) (*glue.StartWorkflowRunResult, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &glue.StartWorkflowRunResult{RunId: ptr.String("wr_1")}, nil
}

func stubAPI(t *testing.T, api glue.API) *config.Config {
	t.Helper()
	var seen config.Config
	original := newAPI
	newAPI = func(ctx context.Context, cfg *config.Config) (glue.API, error) {
		seen = *cfg
		return api, nil
	}
	t.Cleanup(func() { newAPI = original })
	return &seen
}

func TestInvokeCommand(t *testing.T) {
	fake := &fakeAPI{}
	seen := stubAPI(t, fake)
	path := writeFile(t, "start.json", `{"Name": "nightly"}`)

	out, err := run(t, "invoke", "StartWorkflowRun", path)
	require.NoError(t, err)
	assert.Equal(t, &glue.StartWorkflowRunRequest{Name: ptr.String("nightly")}, fake.input)
	assert.Equal(t, "us-east-1", seen.AWS.Region)

	var result glue.StartWorkflowRunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "wr_1", *result.RunId)
}

func TestInvokeCommandServiceError(t *testing.T) {
	stubAPI(t, &fakeAPI{err: glue.NewEntityNotFoundException("workflow nightly not found")})
	path := writeFile(t, "start.json", `{"Name": "nightly"}`)

	_, err := run(t, "invoke", "StartWorkflowRun", path)
	var notFound *glue.EntityNotFoundException
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "workflow nightly not found", *notFound.Message)
}

func TestInvokeUnknownOperation(t *testing.T) {
	path := writeFile(t, "start.json", `{}`)
	_, err := run(t, "invoke", "LaunchRocket", path)
	assert.EqualError(t, err, "unknown operation: LaunchRocket")
}

func TestVersionCommandJSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "2017-03-31", info["apiVersion"])
	assert.Contains(t, info, "goVersion")
}
