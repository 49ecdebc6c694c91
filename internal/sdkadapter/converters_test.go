package sdkadapter

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	gluesdk "github.com/aws/aws-sdk-go-v2/service/glue"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
)

var created = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

var sdkTypes = cmpopts.IgnoreUnexported(
	gluesdk.CreateConnectionInput{},
	gluetypes.ConnectionInput{},
	gluetypes.PhysicalConnectionRequirements{},
	gluesdk.CreateJobInput{},
	gluetypes.ExecutionProperty{},
	gluetypes.JobCommand{},
	gluetypes.ConnectionsList{},
	gluetypes.NotificationProperty{},
	gluesdk.CreateDevEndpointInput{},
	gluesdk.CreateMLTransformInput{},
	gluetypes.GlueTable{},
	gluetypes.TransformParameters{},
	gluetypes.FindMatchesParameters{},
)

func TestConnectionConverters(t *testing.T) {
	t.Run("ToSDKCreateConnectionRequest", func(t *testing.T) {
		req := &glue.CreateConnectionRequest{}
		req.WithCatalogId("123456789012").WithConnectionInput(
			(&glue.ConnectionInput{}).
				WithName("orders-db").
				WithConnectionType(glue.ConnectionTypeJdbc).
				WithMatchCriteria("orders", "prod").
				WithConnectionProperties(map[string]string{
					string(glue.ConnectionPropertyKeyJdbcConnectionUrl): "jdbc:postgresql://db:5432/orders",
					string(glue.ConnectionPropertyKeyUserName):          "etl",
				}).
				WithPhysicalConnectionRequirements((&glue.PhysicalConnectionRequirements{}).
					WithSubnetId("subnet-1").
					WithSecurityGroupIdList("sg-1", "sg-2")),
		)

		want := &gluesdk.CreateConnectionInput{
			CatalogId: aws.String("123456789012"),
			ConnectionInput: &gluetypes.ConnectionInput{
				Name:           aws.String("orders-db"),
				ConnectionType: gluetypes.ConnectionType("JDBC"),
				MatchCriteria:  []string{"orders", "prod"},
				ConnectionProperties: map[string]string{
					"JDBC_CONNECTION_URL": "jdbc:postgresql://db:5432/orders",
					"USERNAME":            "etl",
				},
				PhysicalConnectionRequirements: &gluetypes.PhysicalConnectionRequirements{
					SubnetId:            aws.String("subnet-1"),
					SecurityGroupIdList: []string{"sg-1", "sg-2"},
				},
			},
		}

		got := ToSDKCreateConnectionRequest(req)
		if diff := cmp.Diff(want, got, sdkTypes); diff != "" {
			t.Errorf("ToSDKCreateConnectionRequest() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil request", func(t *testing.T) {
		assert.Equal(t, &gluesdk.GetConnectionInput{}, ToSDKGetConnectionRequest(nil))
		assert.Nil(t, ToSDKConnectionInput(nil))
		assert.Nil(t, ToSDKPhysicalConnectionRequirements(nil))
	})

	t.Run("FromSDKGetConnectionOutput", func(t *testing.T) {
		out := &gluesdk.GetConnectionOutput{
			Connection: &gluetypes.Connection{
				Name:                 aws.String("orders-db"),
				ConnectionType:       gluetypes.ConnectionType("KAFKA"),
				ConnectionProperties: map[string]string{"KAFKA_BOOTSTRAP_SERVERS": "b-1:9092"},
				CreationTime:         aws.Time(created),
				LastUpdatedBy:        aws.String("admin"),
			},
		}

		want := &glue.GetConnectionResult{
			Connection: (&glue.Connection{}).
				WithName("orders-db").
				WithConnectionType(glue.ConnectionTypeKafka).
				WithConnectionProperties(map[string]string{"KAFKA_BOOTSTRAP_SERVERS": "b-1:9092"}).
				WithCreationTime(created).
				WithLastUpdatedBy("admin"),
		}

		got, err := FromSDKGetConnectionOutput(out)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FromSDKGetConnectionOutput() mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, want.Equal(got))
	})

	t.Run("unknown enum value", func(t *testing.T) {
		out := &gluesdk.GetConnectionsOutput{
			ConnectionList: []gluetypes.Connection{
				{Name: aws.String("a"), ConnectionType: gluetypes.ConnectionType("JDBC")},
				{Name: aws.String("b"), ConnectionType: gluetypes.ConnectionType("SALESFORCE")},
			},
		}

		_, err := FromSDKGetConnectionsOutput(out)
		require.Error(t, err)
		assert.ErrorIs(t, err, glue.ErrUnknownEnumValue)
		assert.ErrorIs(t, err, glue.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "ConnectionType")
	})

	t.Run("nil and empty lists stay distinct", func(t *testing.T) {
		got, err := FromSDKGetConnectionsOutput(&gluesdk.GetConnectionsOutput{})
		require.NoError(t, err)
		assert.Nil(t, got.ConnectionList)

		got, err = FromSDKGetConnectionsOutput(&gluesdk.GetConnectionsOutput{ConnectionList: []gluetypes.Connection{}})
		require.NoError(t, err)
		assert.NotNil(t, got.ConnectionList)
		assert.Empty(t, got.ConnectionList)
	})
}

func TestCatalogConverters(t *testing.T) {
	out := &gluesdk.GetDatabaseOutput{
		Database: &gluetypes.Database{
			Name:        aws.String("sales"),
			LocationUri: aws.String("s3://bucket/sales"),
			CreateTime:  aws.Time(created),
			CreateTableDefaultPermissions: []gluetypes.PrincipalPermissions{
				{
					Principal: &gluetypes.DataLakePrincipal{
						DataLakePrincipalIdentifier: aws.String("IAM_ALLOWED_PRINCIPALS"),
					},
					Permissions: []gluetypes.Permission{gluetypes.Permission("ALL")},
				},
			},
		},
	}

	want := &glue.GetDatabaseResult{
		Database: (&glue.Database{}).
			WithName("sales").
			WithLocationUri("s3://bucket/sales").
			WithCreateTime(created).
			WithCreateTableDefaultPermissions(*(&glue.PrincipalPermissions{}).
				WithPrincipal((&glue.DataLakePrincipal{}).WithDataLakePrincipalIdentifier("IAM_ALLOWED_PRINCIPALS")).
				WithPermissions(glue.PermissionAll)),
	}

	got, err := FromSDKGetDatabaseOutput(out)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromSDKGetDatabaseOutput() mismatch (-want +got):\n%s", diff)
	}

	t.Run("partition", func(t *testing.T) {
		out := &gluesdk.GetPartitionOutput{
			Partition: &gluetypes.Partition{
				Values:       []string{"2024", "03"},
				DatabaseName: aws.String("sales"),
				TableName:    aws.String("orders"),
				StorageDescriptor: &gluetypes.StorageDescriptor{
					Columns: []gluetypes.Column{
						{Name: aws.String("id"), Type: aws.String("bigint")},
					},
					Location:        aws.String("s3://bucket/sales/orders/2024/03"),
					NumberOfBuckets: 4,
				},
			},
		}

		got, err := FromSDKGetPartitionOutput(out)
		require.NoError(t, err)
		require.NotNil(t, got.Partition)
		assert.Equal(t, []string{"2024", "03"}, got.Partition.Values)

		descriptor := got.Partition.GetStorageDescriptor()
		require.NotNil(t, descriptor)
		assert.Equal(t, int32(4), *descriptor.NumberOfBuckets)
		assert.False(t, *descriptor.Compressed)
		require.Len(t, descriptor.Columns, 1)
		assert.Equal(t, "bigint", *descriptor.Columns[0].Type)
	})

	t.Run("partition request", func(t *testing.T) {
		req := (&glue.DeletePartitionRequest{}).
			WithDatabaseName("sales").
			WithTableName("orders").
			WithPartitionValues("2024", "03")

		got := ToSDKDeletePartitionRequest(req)
		assert.Equal(t, "sales", aws.ToString(got.DatabaseName))
		assert.Equal(t, []string{"2024", "03"}, got.PartitionValues)

		req.PartitionValues[0] = "1999"
		assert.Equal(t, "2024", got.PartitionValues[0])
	})
}

func TestEncryptionConverters(t *testing.T) {
	configuration := (&glue.EncryptionConfiguration{}).
		WithS3Encryption(*(&glue.S3Encryption{}).WithS3EncryptionMode(glue.S3EncryptionModeSsekms).WithKmsKeyArn("arn:aws:kms:key/1")).
		WithCloudWatchEncryption((&glue.CloudWatchEncryption{}).WithCloudWatchEncryptionMode(glue.CloudWatchEncryptionModeDisabled)).
		WithJobBookmarksEncryption((&glue.JobBookmarksEncryption{}).WithJobBookmarksEncryptionMode(glue.JobBookmarksEncryptionModeCsekms))

	sdk := ToSDKEncryptionConfiguration(configuration)
	require.NotNil(t, sdk)
	require.Len(t, sdk.S3Encryption, 1)
	assert.Equal(t, gluetypes.S3EncryptionMode("SSE-KMS"), sdk.S3Encryption[0].S3EncryptionMode)
	assert.Equal(t, gluetypes.CloudWatchEncryptionMode("DISABLED"), sdk.CloudWatchEncryption.CloudWatchEncryptionMode)
	assert.Equal(t, gluetypes.JobBookmarksEncryptionMode("CSE-KMS"), sdk.JobBookmarksEncryption.JobBookmarksEncryptionMode)

	back, err := FromSDKEncryptionConfiguration(sdk)
	require.NoError(t, err)
	if diff := cmp.Diff(configuration, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	t.Run("data catalog settings", func(t *testing.T) {
		out := &gluesdk.GetDataCatalogEncryptionSettingsOutput{
			DataCatalogEncryptionSettings: &gluetypes.DataCatalogEncryptionSettings{
				EncryptionAtRest: &gluetypes.EncryptionAtRest{
					CatalogEncryptionMode: gluetypes.CatalogEncryptionMode("SSE-KMS"),
					SseAwsKmsKeyId:        aws.String("key-1"),
				},
				ConnectionPasswordEncryption: &gluetypes.ConnectionPasswordEncryption{
					ReturnConnectionPasswordEncrypted: true,
				},
			},
		}

		got, err := FromSDKGetDataCatalogEncryptionSettingsOutput(out)
		require.NoError(t, err)
		settings := got.DataCatalogEncryptionSettings
		assert.Equal(t, glue.CatalogEncryptionModeSsekms, *settings.EncryptionAtRest.CatalogEncryptionMode)
		assert.True(t, *settings.ConnectionPasswordEncryption.ReturnConnectionPasswordEncrypted)
		assert.Nil(t, settings.ConnectionPasswordEncryption.AwsKmsKeyId)
	})

	t.Run("security configuration", func(t *testing.T) {
		out := &gluesdk.GetSecurityConfigurationOutput{
			SecurityConfiguration: &gluetypes.SecurityConfiguration{
				Name:             aws.String("default"),
				CreatedTimeStamp: aws.Time(created),
			},
		}

		got, err := FromSDKGetSecurityConfigurationOutput(out)
		require.NoError(t, err)
		assert.Equal(t, "default", *got.SecurityConfiguration.Name)
		assert.True(t, created.Equal(got.SecurityConfiguration.CreatedTimeStamp.Time))
		assert.Nil(t, got.SecurityConfiguration.EncryptionConfiguration)
	})
}

func TestWorkflowConverters(t *testing.T) {
	out := &gluesdk.GetWorkflowRunOutput{
		Run: &gluetypes.WorkflowRun{
			Name:          aws.String("nightly"),
			WorkflowRunId: aws.String("wr_1"),
			Status:        gluetypes.WorkflowRunStatus("RUNNING"),
			StartedOn:     aws.Time(created),
			Statistics: &gluetypes.WorkflowRunStatistics{
				TotalActions:   3,
				RunningActions: 1,
			},
			Graph: &gluetypes.WorkflowGraph{
				Nodes: []gluetypes.Node{
					{Type: gluetypes.NodeType("JOB"), Name: aws.String("load"), UniqueId: aws.String("n1")},
				},
				Edges: []gluetypes.Edge{
					{SourceId: aws.String("n0"), DestinationId: aws.String("n1")},
				},
			},
		},
	}

	got, err := FromSDKGetWorkflowRunOutput(out)
	require.NoError(t, err)
	run := got.Run
	require.NotNil(t, run)
	assert.Equal(t, glue.WorkflowRunStatusRunning, *run.Status)
	assert.Equal(t, int32(3), *run.Statistics.TotalActions)
	assert.Equal(t, int32(0), *run.Statistics.FailedActions)
	require.Len(t, run.Graph.Nodes, 1)
	assert.Equal(t, glue.NodeTypeJob, *run.Graph.Nodes[0].Type)
	assert.Equal(t, "n1", *run.Graph.Edges[0].DestinationId)

	t.Run("unknown status", func(t *testing.T) {
		out.Run.Status = gluetypes.WorkflowRunStatus("ERROR")
		_, err := FromSDKGetWorkflowRunOutput(out)
		assert.True(t, errors.Is(err, glue.ErrUnknownEnumValue))
	})
}

func TestJobRunConverters(t *testing.T) {
	assert.Equal(t, &gluesdk.GetJobRunInput{
		JobName:              aws.String("etl"),
		RunId:                aws.String("jr_1"),
		PredecessorsIncluded: true,
	}, ToSDKGetJobRunRequest((&glue.GetJobRunRequest{}).
		WithJobName("etl").
		WithRunId("jr_1").
		WithPredecessorsIncluded(true)))

	out := &gluesdk.GetJobRunOutput{
		JobRun: &gluetypes.JobRun{
			Id:              aws.String("jr_1"),
			JobName:         aws.String("etl"),
			Attempt:         1,
			JobRunState:     gluetypes.JobRunState("SUCCEEDED"),
			WorkerType:      gluetypes.WorkerType("G.1X"),
			NumberOfWorkers: aws.Int32(10),
			Arguments:       map[string]string{"--day": "2024-03-01"},
			PredecessorRuns: []gluetypes.Predecessor{
				{JobName: aws.String("extract"), RunId: aws.String("jr_0")},
			},
			NotificationProperty: &gluetypes.NotificationProperty{NotifyDelayAfter: aws.Int32(5)},
		},
	}

	got, err := FromSDKGetJobRunOutput(out)
	require.NoError(t, err)
	run := got.JobRun
	assert.Equal(t, glue.JobRunStateSucceeded, *run.JobRunState)
	assert.Equal(t, glue.WorkerTypeG1x, *run.WorkerType)
	assert.Equal(t, int32(10), *run.NumberOfWorkers)
	assert.Nil(t, run.Timeout)
	assert.Equal(t, "2024-03-01", run.Arguments["--day"])
	assert.Equal(t, []glue.Predecessor{*(&glue.Predecessor{}).WithJobName("extract").WithRunId("jr_0")}, run.PredecessorRuns)
	assert.Equal(t, int32(5), *run.NotificationProperty.NotifyDelayAfter)
}

func TestCreateJobConverters(t *testing.T) {
	req := (&glue.CreateJobRequest{}).
		WithName("etl").
		WithRole("GlueRole").
		WithCommand((&glue.JobCommand{}).
			WithName("glueetl").
			WithScriptLocation("s3://scripts/etl.py").
			WithPythonVersion("3")).
		WithExecutionProperty((&glue.ExecutionProperty{}).WithMaxConcurrentRuns(2)).
		WithConnections((&glue.ConnectionsList{}).WithConnections("orders-db")).
		WithDefaultArguments(map[string]string{"--job-language": "python"}).
		WithMaxRetries(1).
		WithMaxCapacity(2.5).
		WithWorkerType(glue.WorkerTypeG1x).
		WithNumberOfWorkers(4).
		WithNotificationProperty((&glue.NotificationProperty{}).WithNotifyDelayAfter(10))

	want := &gluesdk.CreateJobInput{
		Name: aws.String("etl"),
		Role: aws.String("GlueRole"),
		Command: &gluetypes.JobCommand{
			Name:           aws.String("glueetl"),
			ScriptLocation: aws.String("s3://scripts/etl.py"),
			PythonVersion:  aws.String("3"),
		},
		ExecutionProperty:    &gluetypes.ExecutionProperty{MaxConcurrentRuns: 2},
		Connections:          &gluetypes.ConnectionsList{Connections: []string{"orders-db"}},
		DefaultArguments:     map[string]string{"--job-language": "python"},
		MaxRetries:           1,
		MaxCapacity:          aws.Float64(2.5),
		WorkerType:           gluetypes.WorkerType("G.1X"),
		NumberOfWorkers:      aws.Int32(4),
		NotificationProperty: &gluetypes.NotificationProperty{NotifyDelayAfter: aws.Int32(10)},
	}

	got := ToSDKCreateJobRequest(req)
	if diff := cmp.Diff(want, got, sdkTypes); diff != "" {
		t.Errorf("ToSDKCreateJobRequest() mismatch (-want +got):\n%s", diff)
	}

	result, err := FromSDKCreateJobOutput(&gluesdk.CreateJobOutput{Name: aws.String("etl")})
	require.NoError(t, err)
	assert.Equal(t, "etl", *result.Name)
}

func TestDevEndpointConverters(t *testing.T) {
	t.Run("ToSDKCreateDevEndpointRequest", func(t *testing.T) {
		req := (&glue.CreateDevEndpointRequest{}).
			WithEndpointName("notebook").
			WithRoleArn("arn:aws:iam::123456789012:role/GlueDev").
			WithPublicKeys("ssh-rsa AAA").
			WithNumberOfNodes(3).
			WithArguments(map[string]string{"--enable-glue-datacatalog": ""})

		want := &gluesdk.CreateDevEndpointInput{
			EndpointName:  aws.String("notebook"),
			RoleArn:       aws.String("arn:aws:iam::123456789012:role/GlueDev"),
			PublicKeys:    []string{"ssh-rsa AAA"},
			NumberOfNodes: 3,
			Arguments:     map[string]string{"--enable-glue-datacatalog": ""},
		}
		if diff := cmp.Diff(want, ToSDKCreateDevEndpointRequest(req), sdkTypes); diff != "" {
			t.Errorf("ToSDKCreateDevEndpointRequest() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("FromSDKGetDevEndpointOutput", func(t *testing.T) {
		out := &gluesdk.GetDevEndpointOutput{
			DevEndpoint: &gluetypes.DevEndpoint{
				EndpointName:     aws.String("notebook"),
				Status:           aws.String("READY"),
				NumberOfNodes:    3,
				WorkerType:       gluetypes.WorkerType("G.2X"),
				CreatedTimestamp: aws.Time(created),
				PublicKeys:       []string{"ssh-rsa AAA"},
			},
		}
		got, err := FromSDKGetDevEndpointOutput(out)
		require.NoError(t, err)
		endpoint := got.DevEndpoint
		require.NotNil(t, endpoint)
		assert.Equal(t, "READY", *endpoint.Status)
		assert.Equal(t, int32(3), *endpoint.NumberOfNodes)
		assert.Equal(t, glue.WorkerTypeG2x, *endpoint.WorkerType)
		assert.True(t, created.Equal(endpoint.CreatedTimestamp.Time))
		assert.Nil(t, endpoint.LastModifiedTimestamp)
		assert.Equal(t, []string{"ssh-rsa AAA"}, endpoint.PublicKeys)

		out.DevEndpoint.WorkerType = gluetypes.WorkerType("G.8X")
		_, err = FromSDKGetDevEndpointOutput(out)
		assert.True(t, errors.Is(err, glue.ErrUnknownEnumValue))
	})

	t.Run("FromSDKCreateDevEndpointOutput", func(t *testing.T) {
		got, err := FromSDKCreateDevEndpointOutput(&gluesdk.CreateDevEndpointOutput{
			EndpointName:                       aws.String("notebook"),
			ZeppelinRemoteSparkInterpreterPort: 9007,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(9007), *got.ZeppelinRemoteSparkInterpreterPort)
		assert.Nil(t, got.WorkerType)
	})
}

func TestMLTransformConverters(t *testing.T) {
	t.Run("ToSDKCreateMLTransformRequest", func(t *testing.T) {
		req := (&glue.CreateMLTransformRequest{}).
			WithName("dedupe").
			WithRole("GlueRole").
			WithInputRecordTables(*(&glue.GlueTable{}).WithDatabaseName("db").WithTableName("people")).
			WithParameters((&glue.TransformParameters{}).
				WithTransformType(glue.TransformTypeFindMatches).
				WithFindMatchesParameters((&glue.FindMatchesParameters{}).
					WithPrimaryKeyColumnName("id").
					WithPrecisionRecallTradeoff(0.9))).
			WithMaxRetries(0)

		want := &gluesdk.CreateMLTransformInput{
			Name: aws.String("dedupe"),
			Role: aws.String("GlueRole"),
			InputRecordTables: []gluetypes.GlueTable{
				{DatabaseName: aws.String("db"), TableName: aws.String("people")},
			},
			Parameters: &gluetypes.TransformParameters{
				TransformType: gluetypes.TransformType("FIND_MATCHES"),
				FindMatchesParameters: &gluetypes.FindMatchesParameters{
					PrimaryKeyColumnName:    aws.String("id"),
					PrecisionRecallTradeoff: aws.Float64(0.9),
				},
			},
			MaxRetries: aws.Int32(0),
		}
		if diff := cmp.Diff(want, ToSDKCreateMLTransformRequest(req), sdkTypes); diff != "" {
			t.Errorf("ToSDKCreateMLTransformRequest() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("FromSDKGetMLTransformOutput", func(t *testing.T) {
		out := &gluesdk.GetMLTransformOutput{
			TransformId: aws.String("tfm-1"),
			Status:      gluetypes.TransformStatusType("READY"),
			CreatedOn:   aws.Time(created),
			LabelCount:  12,
			InputRecordTables: []gluetypes.GlueTable{
				{DatabaseName: aws.String("db"), TableName: aws.String("people")},
			},
			Parameters: &gluetypes.TransformParameters{TransformType: gluetypes.TransformType("FIND_MATCHES")},
			EvaluationMetrics: &gluetypes.EvaluationMetrics{
				TransformType: gluetypes.TransformType("FIND_MATCHES"),
				FindMatchesMetrics: &gluetypes.FindMatchesMetrics{
					F1:              aws.Float64(0.87),
					ConfusionMatrix: &gluetypes.ConfusionMatrix{NumTruePositives: aws.Int64(40)},
				},
			},
			Schema: []gluetypes.SchemaColumn{{Name: aws.String("id"), DataType: aws.String("string")}},
		}

		got, err := FromSDKGetMLTransformOutput(out)
		require.NoError(t, err)
		assert.Equal(t, glue.TransformStatusTypeReady, *got.Status)
		assert.Equal(t, int32(12), *got.LabelCount)
		assert.True(t, created.Equal(got.CreatedOn.Time))
		require.Len(t, got.InputRecordTables, 1)
		assert.Equal(t, "people", *got.InputRecordTables[0].TableName)
		assert.Equal(t, glue.TransformTypeFindMatches, *got.Parameters.TransformType)
		assert.Equal(t, 0.87, *got.EvaluationMetrics.FindMatchesMetrics.F1)
		assert.Equal(t, int64(40), *got.EvaluationMetrics.FindMatchesMetrics.ConfusionMatrix.NumTruePositives)
		assert.Equal(t, []glue.SchemaColumn{*(&glue.SchemaColumn{}).WithName("id").WithDataType("string")}, got.Schema)
		assert.Nil(t, got.WorkerType)

		out.Status = gluetypes.TransformStatusType("CLASSIFYING")
		_, err = FromSDKGetMLTransformOutput(out)
		assert.True(t, errors.Is(err, glue.ErrUnknownEnumValue))
	})
}
