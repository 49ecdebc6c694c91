package glue_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/glue/ptr"
)

func TestString(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		shape glue.Shape
		want  string
	}{
		{
			name:  "empty structure",
			shape: &glue.Connection{},
			want:  "{}",
		},
		{
			name:  "nil structure",
			shape: (*glue.Connection)(nil),
			want:  "null",
		},
		{
			name:  "trailing comma when later members are unset",
			shape: (&glue.Connection{}).WithName("orders").WithConnectionType(glue.ConnectionTypeJdbc),
			want:  "{Name: orders,ConnectionType: JDBC,}",
		},
		{
			name: "last member set",
			shape: (&glue.PhysicalConnectionRequirements{}).
				WithSubnetId("subnet-1").
				WithSecurityGroupIdList("sg-1", "sg-2").
				WithAvailabilityZone("us-east-1a"),
			want: "{SubnetId: subnet-1,SecurityGroupIdList: [sg-1, sg-2],AvailabilityZone: us-east-1a}",
		},
		{
			name: "map members are sorted",
			shape: (&glue.Column{}).
				WithName("id").
				WithParameters(map[string]string{"b": "2", "a": "1"}),
			want: "{Name: id,Parameters: {a=1, b=2}}",
		},
		{
			name:  "timestamps render as RFC3339",
			shape: (&glue.Partition{}).WithCreationTime(created),
			want:  "{CreationTime: 2024-01-02T03:04:05Z,}",
		},
		{
			name:  "nested structures",
			shape: (&glue.GetConnectionResult{}).WithConnection((&glue.Connection{}).WithName("x")),
			want:  "{Connection: {Name: x,}}",
		},
		{
			name: "lists of structures",
			shape: (&glue.WorkflowGraph{}).WithEdges(
				*(&glue.Edge{}).WithSourceId("a").WithDestinationId("b"),
			),
			want: "{Edges: [{SourceId: a,DestinationId: b}]}",
		},
		{
			name:  "empty list is rendered",
			shape: (&glue.PrincipalPermissions{}).WithPermissions(),
			want:  "{Permissions: []}",
		},
		{
			name:  "numbers and booleans",
			shape: (&glue.GetConnectionsRequest{}).WithHidePassword(true).WithMaxResults(25),
			want:  "{HidePassword: true,MaxResults: 25}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.String())
		})
	}
}

func TestEqualAndHash(t *testing.T) {
	build := func() *glue.Connection {
		return (&glue.Connection{}).
			WithName("orders").
			WithConnectionType(glue.ConnectionTypeJdbc).
			WithMatchCriteria("a", "b").
			WithConnectionProperties(map[string]string{"HOST": "db", "PORT": "5432"}).
			WithPhysicalConnectionRequirements((&glue.PhysicalConnectionRequirements{}).WithSubnetId("subnet-1")).
			WithCreationTime(time.Unix(1700000000, 0))
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(a))

	t.Run("nil handling", func(t *testing.T) {
		var nilConn *glue.Connection
		assert.False(t, a.Equal(nil))
		assert.False(t, nilConn.Equal(a))
		assert.True(t, nilConn.Equal(nil))
		assert.Equal(t, uint64(0), nilConn.Hash())
	})

	t.Run("scalar difference", func(t *testing.T) {
		c := build().WithName("customers")
		assert.False(t, a.Equal(c))
		assert.NotEqual(t, a.Hash(), c.Hash())
	})

	t.Run("unset versus set", func(t *testing.T) {
		c := build()
		c.Description = ptr.String("")
		assert.False(t, a.Equal(c))
	})

	t.Run("nested difference", func(t *testing.T) {
		c := build()
		c.PhysicalConnectionRequirements.SetAvailabilityZone(ptr.String("us-east-1b"))
		assert.False(t, a.Equal(c))
	})

	t.Run("list order matters", func(t *testing.T) {
		c := build()
		c.SetMatchCriteria([]string{"b", "a"})
		assert.False(t, a.Equal(c))
	})

	t.Run("same instant in another zone", func(t *testing.T) {
		c := build().WithCreationTime(time.Unix(1700000000, 0).In(time.FixedZone("JST", 9*3600)))
		assert.True(t, a.Equal(c))
		assert.Equal(t, a.Hash(), c.Hash())
	})

	t.Run("map order does not matter", func(t *testing.T) {
		c := build()
		c.ClearConnectionPropertiesEntries()
		require.NoError(t, c.AddConnectionPropertiesEntry("PORT", "5432"))
		require.NoError(t, c.AddConnectionPropertiesEntry("HOST", "db"))
		assert.True(t, a.Equal(c))
		assert.Equal(t, a.Hash(), c.Hash())
	})

	t.Run("empty structures", func(t *testing.T) {
		assert.True(t, (&glue.CreateConnectionResult{}).Equal(&glue.CreateConnectionResult{}))
		assert.Equal(t, (&glue.StopWorkflowRunResult{}).Hash(), (&glue.StopWorkflowRunResult{}).Hash())
	})
}

func TestFloatEquality(t *testing.T) {
	negativeZero := math.Copysign(0, -1)

	tests := []struct {
		name  string
		a, b  float64
		equal bool
	}{
		{name: "same value", a: 0.25, b: 0.25, equal: true},
		{name: "different values", a: 0.25, b: 0.5, equal: false},
		{name: "NaN equals NaN", a: math.NaN(), b: math.NaN(), equal: true},
		{name: "NaN payloads collapse", a: math.NaN(), b: math.Float64frombits(0x7ff8000000000042), equal: true},
		{name: "zero and negative zero differ", a: 0, b: negativeZero, equal: false},
		{name: "negative zero equals itself", a: negativeZero, b: negativeZero, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := (&glue.JobRun{}).WithId("jr_1").WithMaxCapacity(tt.a)
			b := (&glue.JobRun{}).WithId("jr_1").WithMaxCapacity(tt.b)

			assert.Equal(t, tt.equal, a.Equal(b))
			assert.Equal(t, tt.equal, b.Equal(a))
			if tt.equal {
				assert.Equal(t, a.Hash(), b.Hash())
			}

			sa := (&glue.StringColumnStatisticsData{}).WithAverageLength(tt.a)
			sb := (&glue.StringColumnStatisticsData{}).WithAverageLength(tt.b)
			assert.Equal(t, tt.equal, sa.Equal(sb))
			if tt.equal {
				assert.Equal(t, sa.Hash(), sb.Hash())
			}
		})
	}

	t.Run("nested float members", func(t *testing.T) {
		build := func(f1 float64) *glue.GetMLTransformResult {
			return (&glue.GetMLTransformResult{}).
				WithTransformId("tfm-1").
				WithEvaluationMetrics((&glue.EvaluationMetrics{}).
					WithTransformType(glue.TransformTypeFindMatches).
					WithFindMatchesMetrics((&glue.FindMatchesMetrics{}).WithF1(f1)))
		}
		assert.True(t, build(math.NaN()).Equal(build(math.NaN())))
		assert.Equal(t, build(math.NaN()).Hash(), build(math.NaN()).Hash())
		assert.False(t, build(0).Equal(build(negativeZero)))
	})
}

func TestNilAndEmptyCollections(t *testing.T) {
	unset := &glue.PhysicalConnectionRequirements{}
	empty := (&glue.PhysicalConnectionRequirements{}).WithSecurityGroupIdList()

	assert.Nil(t, unset.GetSecurityGroupIdList())
	assert.NotNil(t, empty.GetSecurityGroupIdList())
	assert.Empty(t, empty.GetSecurityGroupIdList())
	assert.False(t, unset.Equal(empty))

	unset.SetSecurityGroupIdList(nil)
	assert.Nil(t, unset.SecurityGroupIdList)
	unset.SetSecurityGroupIdList([]string{})
	assert.NotNil(t, unset.SecurityGroupIdList)

	col := &glue.Column{}
	col.SetParameters(map[string]string{})
	assert.NotNil(t, col.Parameters)
	col.SetParameters(nil)
	assert.Nil(t, col.Parameters)
}

func TestCopyIn(t *testing.T) {
	groups := []string{"sg-1", "sg-2"}
	req := &glue.PhysicalConnectionRequirements{}
	req.SetSecurityGroupIdList(groups)
	groups[0] = "changed"
	assert.Equal(t, []string{"sg-1", "sg-2"}, req.SecurityGroupIdList)

	values := []string{"2024", "01"}
	part := (&glue.GetPartitionRequest{}).WithPartitionValues(values...)
	values[0] = "1999"
	assert.Equal(t, []string{"2024", "01"}, part.PartitionValues)

	props := map[string]string{"HOST": "db"}
	in := (&glue.ConnectionInput{}).WithConnectionProperties(props)
	props["HOST"] = "other"
	assert.Equal(t, "db", in.ConnectionProperties["HOST"])
}

func TestWithAccumulates(t *testing.T) {
	req := (&glue.GetColumnStatisticsForPartitionRequest{}).
		WithColumnNames("a").
		WithColumnNames("b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, req.ColumnNames)

	req.SetColumnNames([]string{"z"})
	req.WithColumnNames("y")
	assert.Equal(t, []string{"z", "y"}, req.ColumnNames)

	cfg := (&glue.EncryptionConfiguration{}).
		WithS3Encryption(*(&glue.S3Encryption{}).WithS3EncryptionMode(glue.S3EncryptionModeSsekms)).
		WithS3Encryption(*(&glue.S3Encryption{}).WithS3EncryptionMode(glue.S3EncryptionModeSses3))
	require.Len(t, cfg.S3Encryption, 2)
	assert.Equal(t, glue.S3EncryptionModeSses3, *cfg.S3Encryption[1].S3EncryptionMode)
}

func TestAddEntry(t *testing.T) {
	run := &glue.JobRun{}
	require.NoError(t, run.AddArgumentsEntry("--job-bookmark-option", "job-bookmark-enable"))
	require.NoError(t, run.AddArgumentsEntry("--TempDir", "s3://bucket/tmp"))

	err := run.AddArgumentsEntry("--TempDir", "s3://other")
	require.Error(t, err)
	assert.ErrorIs(t, err, glue.ErrDuplicateKey)
	assert.ErrorIs(t, err, glue.ErrInvalidArgument)
	assert.Equal(t, "s3://bucket/tmp", run.Arguments["--TempDir"])

	run.ClearArgumentsEntries()
	assert.Nil(t, run.Arguments)
}

func TestGettersAreNilSafe(t *testing.T) {
	var run *glue.WorkflowRun
	assert.Nil(t, run.GetName())
	assert.Nil(t, run.GetStatistics())
	assert.Nil(t, run.GetGraph().GetNodes())
}

func TestJSON(t *testing.T) {
	t.Run("unset members are omitted", func(t *testing.T) {
		data, err := json.Marshal((&glue.PhysicalConnectionRequirements{}).WithSubnetId("subnet-1"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"SubnetId":"subnet-1"}`, string(data))
	})

	t.Run("empty list is kept", func(t *testing.T) {
		data, err := json.Marshal((&glue.PhysicalConnectionRequirements{}).WithSecurityGroupIdList())
		require.NoError(t, err)
		assert.JSONEq(t, `{"SecurityGroupIdList":[]}`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		run := (&glue.WorkflowRun{}).
			WithName("nightly").
			WithWorkflowRunId("wr_1").
			WithStatus(glue.WorkflowRunStatusCompleted).
			WithStartedOn(time.UnixMilli(1700000000123)).
			WithWorkflowRunProperties(map[string]string{"env": "prod"}).
			WithStatistics((&glue.WorkflowRunStatistics{}).WithTotalActions(3).WithSucceededActions(3)).
			WithGraph((&glue.WorkflowGraph{}).WithNodes(*(&glue.Node{}).WithType(glue.NodeTypeJob).WithName("etl")))

		data, err := json.Marshal(run)
		require.NoError(t, err)

		var decoded glue.WorkflowRun
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, run.Equal(&decoded), "decoded %s", decoded.String())
	})

	t.Run("timestamps are epoch seconds", func(t *testing.T) {
		var cfg glue.SecurityConfiguration
		require.NoError(t, json.Unmarshal([]byte(`{"Name":"sec","CreatedTimeStamp":1700000000.5}`), &cfg))
		require.NotNil(t, cfg.CreatedTimeStamp)
		assert.Equal(t, time.UnixMilli(1700000000500).UTC(), cfg.CreatedTimeStamp.UTC())
	})
}

func TestJobDefinitionShapes(t *testing.T) {
	req := (&glue.CreateJobRequest{}).
		WithName("nightly-etl").
		WithRole("arn:aws:iam::123456789012:role/GlueJobRole").
		WithCommand((&glue.JobCommand{}).WithName("glueetl").WithScriptLocation("s3://scripts/etl.py").WithPythonVersion("3")).
		WithExecutionProperty((&glue.ExecutionProperty{}).WithMaxConcurrentRuns(2)).
		WithConnections((&glue.ConnectionsList{}).WithConnections("warehouse")).
		WithWorkerType(glue.WorkerTypeG2x).
		WithNumberOfWorkers(10)
	require.NoError(t, req.AddDefaultArgumentsEntry("--TempDir", "s3://tmp"))
	assert.ErrorIs(t, req.AddDefaultArgumentsEntry("--TempDir", "s3://other"), glue.ErrDuplicateKey)

	assert.Equal(t,
		"{Name: nightly-etl,Role: arn:aws:iam::123456789012:role/GlueJobRole,"+
			"ExecutionProperty: {MaxConcurrentRuns: 2},"+
			"Command: {Name: glueetl,ScriptLocation: s3://scripts/etl.py,PythonVersion: 3},"+
			"DefaultArguments: {--TempDir=s3://tmp},Connections: {Connections: [warehouse]},"+
			"NumberOfWorkers: 10,WorkerType: G.2X}",
		req.String())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	var decoded glue.CreateJobRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, req.Equal(&decoded))
	assert.Equal(t, req.Hash(), decoded.Hash())
}

func TestDevEndpointJSON(t *testing.T) {
	var endpoint glue.DevEndpoint
	require.NoError(t, json.Unmarshal([]byte(`{
		"EndpointName": "dev",
		"Status": "READY",
		"WorkerType": "G.1X",
		"NumberOfWorkers": 5,
		"PublicKeys": ["ssh-rsa AAA", "ssh-rsa BBB"],
		"Arguments": {"--enable-glue-datacatalog": ""},
		"CreatedTimestamp": 1700000000
	}`), &endpoint))

	assert.Equal(t, glue.WorkerTypeG1x, *endpoint.WorkerType)
	assert.Equal(t, []string{"ssh-rsa AAA", "ssh-rsa BBB"}, endpoint.PublicKeys)
	assert.Equal(t, "", endpoint.Arguments["--enable-glue-datacatalog"])
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), endpoint.CreatedTimestamp.UTC())

	err := json.Unmarshal([]byte(`{"WorkerType": "G.8X"}`), &glue.DevEndpoint{})
	assert.ErrorIs(t, err, glue.ErrUnknownEnumValue)
}

func TestMLTransformShapes(t *testing.T) {
	var result glue.GetMLTransformResult
	require.NoError(t, json.Unmarshal([]byte(`{
		"TransformId": "tfm-1",
		"Status": "READY",
		"InputRecordTables": [{"DatabaseName": "db", "TableName": "people"}],
		"Parameters": {
			"TransformType": "FIND_MATCHES",
			"FindMatchesParameters": {"PrimaryKeyColumnName": "id", "PrecisionRecallTradeoff": 0.9}
		},
		"EvaluationMetrics": {
			"TransformType": "FIND_MATCHES",
			"FindMatchesMetrics": {"F1": 0.8, "ConfusionMatrix": {"NumTruePositives": 40}}
		},
		"Schema": [{"Name": "id", "DataType": "int"}],
		"LabelCount": 3
	}`), &result))

	assert.Equal(t, glue.TransformStatusTypeReady, *result.Status)
	require.Len(t, result.InputRecordTables, 1)
	assert.Equal(t, "people", *result.InputRecordTables[0].TableName)
	assert.Equal(t, 0.9, *result.Parameters.FindMatchesParameters.PrecisionRecallTradeoff)
	assert.Equal(t, int64(40), *result.EvaluationMetrics.FindMatchesMetrics.ConfusionMatrix.NumTruePositives)
	assert.Equal(t, "{Name: id,DataType: int}", result.Schema[0].String())

	req := (&glue.CreateMLTransformRequest{}).
		WithName("dedupe").
		WithRole("GlueRole").
		WithInputRecordTables(*(&glue.GlueTable{}).WithDatabaseName("db").WithTableName("people")).
		WithParameters((&glue.TransformParameters{}).WithTransformType(glue.TransformTypeFindMatches))
	require.NoError(t, req.AddTagsEntry("team", "data"))
	assert.Equal(t, "{Name: dedupe,InputRecordTables: [{DatabaseName: db,TableName: people,}],"+
		"Parameters: {TransformType: FIND_MATCHES,},Role: GlueRole,Tags: {team=data}}", req.String())
}
