package payload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
)

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"request.json": FormatJSON,
		"request.yaml": FormatYAML,
		"request.YML":  FormatYAML,
		"request":      FormatJSON,
		"request.txt":  FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, DetectFormat(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeJSON(t *testing.T) {
	req := &glue.GetJobRunRequest{}
	err := Decode([]byte(`{"JobName":"etl","RunId":"jr_1","PredecessorsIncluded":true}`), FormatJSON, req)
	require.NoError(t, err)

	want := (&glue.GetJobRunRequest{}).WithJobName("etl").WithRunId("jr_1").WithPredecessorsIncluded(true)
	assert.True(t, want.Equal(req), req.String())
}

func TestDecodeYAML(t *testing.T) {
	doc := `
Name: nightly
WorkflowRunId: wr_1
Status: RUNNING
StartedOn: 1709296200.5
WorkflowRunProperties:
  day: "2024-03-01"
Graph:
  Nodes:
    - Type: JOB
      Name: load
      UniqueId: n1
  Edges: []
`
	run := &glue.WorkflowRun{}
	require.NoError(t, Decode([]byte(doc), FormatYAML, run))

	assert.Equal(t, "nightly", *run.Name)
	assert.Equal(t, glue.WorkflowRunStatusRunning, *run.Status)
	assert.Equal(t, time.UnixMilli(1709296200500).UTC(), run.StartedOn.Time.UTC())
	assert.Equal(t, map[string]string{"day": "2024-03-01"}, run.WorkflowRunProperties)
	require.Len(t, run.Graph.Nodes, 1)
	assert.Equal(t, glue.NodeTypeJob, *run.Graph.Nodes[0].Type)
	assert.NotNil(t, run.Graph.Edges)
	assert.Empty(t, run.Graph.Edges)
}

func TestDecodeRejectsUnknownEnum(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		var data string
		if format == FormatJSON {
			data = `{"Status":"PAUSED"}`
		} else {
			data = "Status: PAUSED\n"
		}

		err := Decode([]byte(data), format, &glue.WorkflowRun{})
		require.Error(t, err, format)
		assert.ErrorIs(t, err, glue.ErrUnknownEnumValue, format)
		assert.ErrorIs(t, err, glue.ErrInvalidArgument, format)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		assert.Error(t, Decode(nil, FormatJSON, &glue.GetJobRunRequest{}))
		assert.Error(t, Decode([]byte("   \n"), FormatYAML, &glue.GetJobRunRequest{}))
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := Decode([]byte("Name: [oops"), FormatYAML, &glue.StartWorkflowRunRequest{})
		assert.ErrorContains(t, err, "failed to parse YAML")
	})

	t.Run("non-string map key", func(t *testing.T) {
		err := Decode([]byte("Arguments:\n  1: one\n  two: 2\n"), FormatYAML, &glue.JobRun{})
		assert.ErrorContains(t, err, "unsupported YAML map key")
	})

	t.Run("wrong member type", func(t *testing.T) {
		err := Decode([]byte(`{"Name": 12}`), FormatJSON, &glue.StartWorkflowRunRequest{})
		assert.ErrorContains(t, err, "failed to decode StartWorkflowRunRequest")
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := Decode([]byte("{}"), Format("toml"), &glue.StartWorkflowRunRequest{})
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.yml")
	require.NoError(t, os.WriteFile(path, []byte("Name: nightly\n"), 0o644))

	req := &glue.StartWorkflowRunRequest{}
	require.NoError(t, DecodeFile(path, req))
	assert.Equal(t, "nightly", *req.Name)

	err := DecodeFile(filepath.Join(dir, "missing.json"), req)
	assert.ErrorContains(t, err, "failed to read payload")
}
