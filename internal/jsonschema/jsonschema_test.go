package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/apimodel"
)

func TestForShapeStructure(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	schema, err := ForShape(model, "StartWorkflowRunRequest")
	require.NoError(t, err)

	assert.Equal(t, draft202012, schema.Schema)
	assert.Equal(t, "StartWorkflowRunRequest", schema.Title)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"Name"}, schema.Required)

	name := schema.Properties["Name"]
	require.NotNil(t, name)
	assert.Equal(t, "string", name.Type)
	require.NotNil(t, name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, 1, *name.MinLength)
	assert.Equal(t, 255, *name.MaxLength)
	assert.Empty(t, schema.Defs)
}

func TestForShapeNested(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	schema, err := ForShape(model, "CreateConnectionRequest")
	require.NoError(t, err)

	assert.Equal(t, "#/$defs/ConnectionInput", schema.Properties["ConnectionInput"].Ref)
	require.Contains(t, schema.Defs, "ConnectionInput")
	require.Contains(t, schema.Defs, "PhysicalConnectionRequirements")

	input := schema.Defs["ConnectionInput"]
	assert.ElementsMatch(t, []string{"Name", "ConnectionType", "ConnectionProperties"}, input.Required)
	assert.Contains(t, input.Properties["ConnectionType"].Enum, "JDBC")

	properties := input.Properties["ConnectionProperties"]
	assert.Equal(t, "object", properties.Type)
	require.NotNil(t, properties.PropertyNames)
	assert.Contains(t, properties.PropertyNames.Enum, "USERNAME")

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$defs"`)
}

func TestForShapeEnum(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	schema, err := ForShape(model, "WorkerType")
	require.NoError(t, err)
	assert.Equal(t, "string", schema.Type)
	assert.Equal(t, []any{"Standard", "G.1X", "G.2X"}, schema.Enum)
}

func TestForShapeUnknown(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	_, err = ForShape(model, "NoSuchShape")
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestValidate(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	tests := []struct {
		name    string
		shape   string
		payload string
		wantErr bool
	}{
		{
			name:    "valid request",
			shape:   "StartWorkflowRunRequest",
			payload: `{"Name": "nightly"}`,
		},
		{
			name:    "missing required member",
			shape:   "StartWorkflowRunRequest",
			payload: `{}`,
			wantErr: true,
		},
		{
			name:    "empty name violates length",
			shape:   "StartWorkflowRunRequest",
			payload: `{"Name": ""}`,
			wantErr: true,
		},
		{
			name:    "unknown member",
			shape:   "StartWorkflowRunRequest",
			payload: `{"Name": "nightly", "Extra": 1}`,
			wantErr: true,
		},
		{
			name:    "page size out of range",
			shape:   "GetConnectionsRequest",
			payload: `{"MaxResults": 5000}`,
			wantErr: true,
		},
		{
			name:    "nested enum accepted",
			shape:   "CreateSecurityConfigurationRequest",
			payload: `{"Name": "default", "EncryptionConfiguration": {"S3Encryption": [{"S3EncryptionMode": "SSE-S3"}]}}`,
		},
		{
			name:    "nested enum rejected",
			shape:   "CreateSecurityConfigurationRequest",
			payload: `{"Name": "default", "EncryptionConfiguration": {"S3Encryption": [{"S3EncryptionMode": "sse-s3"}]}}`,
			wantErr: true,
		},
		{
			name:    "map key outside enum",
			shape:   "ConnectionInput",
			payload: `{"Name": "db", "ConnectionType": "JDBC", "ConnectionProperties": {"HOSTNAME": "x"}}`,
			wantErr: true,
		},
		{
			name:    "timestamp as epoch seconds",
			shape:   "WorkflowRun",
			payload: `{"Name": "nightly", "StartedOn": 1709296200.5}`,
		},
		{
			name:    "bounded double accepted",
			shape:   "CreateMLTransformRequest",
			payload: `{"Name": "dedupe", "Parameters": {"TransformType": "FIND_MATCHES", "FindMatchesParameters": {"PrecisionRecallTradeoff": 0.9}}}`,
		},
		{
			name:    "bounded double out of range",
			shape:   "CreateMLTransformRequest",
			payload: `{"Name": "dedupe", "Parameters": {"TransformType": "FIND_MATCHES", "FindMatchesParameters": {"PrecisionRecallTradeoff": 1.5}}}`,
			wantErr: true,
		},
		{
			name:    "python version pattern",
			shape:   "CreateJobRequest",
			payload: `{"Name": "etl", "Command": {"Name": "glueetl", "PythonVersion": "4"}}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			shape:   "StartWorkflowRunRequest",
			payload: `{"Name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := ForShape(model, tt.shape)
			require.NoError(t, err)

			err = Validate(schema, []byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
