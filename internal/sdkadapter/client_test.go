package sdkadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	gluesdk "github.com/aws/aws-sdk-go-v2/service/glue"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	smithy "github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
)

// fakeGlue implements only the calls a test configures; the embedded
// interface panics on anything else.
type fakeGlue struct {
	GlueAPI

	startInput *gluesdk.StartWorkflowRunInput
	startErr   error

	getJobRunOutput *gluesdk.GetJobRunOutput
	getJobRunErr    error

	createJobInput *gluesdk.CreateJobInput
}

func (f *fakeGlue) StartWorkflowRun(ctx context.Context, params *gluesdk.StartWorkflowRunInput, optFns ...func(*gluesdk.Options)) (*gluesdk.StartWorkflowRunOutput, error) {
	f.startInput = params
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &gluesdk.StartWorkflowRunOutput{RunId: aws.String("wr_42")}, nil
}

func (f *fakeGlue) GetJobRun(ctx context.Context, params *gluesdk.GetJobRunInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetJobRunOutput, error) {
	return f.getJobRunOutput, f.getJobRunErr
}

func (f *fakeGlue) CreateJob(ctx context.Context, params *gluesdk.CreateJobInput, optFns ...func(*gluesdk.Options)) (*gluesdk.CreateJobOutput, error) {
	f.createJobInput = params
	return &gluesdk.CreateJobOutput{Name: params.Name}, nil
}

func TestClientStartWorkflowRun(t *testing.T) {
	fake := &fakeGlue{}
	client := New(fake)

	result, err := client.StartWorkflowRun(context.Background(), (&glue.StartWorkflowRunRequest{}).WithName("nightly"))
	require.NoError(t, err)
	assert.Equal(t, "wr_42", *result.RunId)
	require.NotNil(t, fake.startInput)
	assert.Equal(t, "nightly", aws.ToString(fake.startInput.Name))
}

func TestClientMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{
			name: "modelled exception",
			err:  &gluetypes.IllegalWorkflowStateException{Message: aws.String("workflow is not running")},
			check: func(t *testing.T, err error) {
				var illegal *glue.IllegalWorkflowStateException
				require.ErrorAs(t, err, &illegal)
				assert.Equal(t, "workflow is not running", illegal.ErrorMessage())
				assert.Equal(t, smithy.FaultClient, illegal.ErrorFault())
			},
		},
		{
			name: "generic API error with known code",
			err:  &smithy.GenericAPIError{Code: "EntityNotFoundException", Message: "no such workflow"},
			check: func(t *testing.T, err error) {
				var notFound *glue.EntityNotFoundException
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, "EntityNotFoundException: no such workflow", notFound.Error())
			},
		},
		{
			name: "unmodelled code keeps its fault",
			err:  &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down", Fault: smithy.FaultServer},
			check: func(t *testing.T, err error) {
				var generic *smithy.GenericAPIError
				require.ErrorAs(t, err, &generic)
				assert.Equal(t, "ThrottlingException", generic.ErrorCode())
				assert.Equal(t, smithy.FaultServer, generic.ErrorFault())
			},
		},
		{
			name: "transport error is wrapped",
			err:  context.DeadlineExceeded,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Contains(t, err.Error(), "StartWorkflowRun")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(&fakeGlue{startErr: tt.err})
			result, err := client.StartWorkflowRun(context.Background(), (&glue.StartWorkflowRunRequest{}).WithName("nightly"))
			assert.Nil(t, result)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClientConversionFailure(t *testing.T) {
	client := New(&fakeGlue{
		getJobRunOutput: &gluesdk.GetJobRunOutput{
			JobRun: &gluetypes.JobRun{JobRunState: gluetypes.JobRunState("WAITING")},
		},
	})

	_, err := client.GetJobRun(context.Background(), (&glue.GetJobRunRequest{}).WithJobName("etl").WithRunId("jr_1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, glue.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "GetJobRun: failed to convert response")
}

func TestClientUnsupportedOperation(t *testing.T) {
	client := New(&fakeGlue{})

	result, err := client.GetColumnStatisticsForPartition(context.Background(), &glue.GetColumnStatisticsForPartitionRequest{})
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUnsupportedOperation))
}

func TestClientThroughInvoke(t *testing.T) {
	client := New(&fakeGlue{})

	shape, err := glue.Invoke(context.Background(), client, "StartWorkflowRun", (&glue.StartWorkflowRunRequest{}).WithName("nightly"))
	require.NoError(t, err)
	result, ok := shape.(*glue.StartWorkflowRunResult)
	require.True(t, ok)
	assert.Equal(t, "wr_42", *result.RunId)
}

func TestClientCreateJob(t *testing.T) {
	fake := &fakeGlue{}
	client := New(fake)

	shape, err := glue.Invoke(context.Background(), client, "CreateJob", (&glue.CreateJobRequest{}).
		WithName("etl").
		WithRole("GlueRole").
		WithCommand((&glue.JobCommand{}).WithName("glueetl").WithScriptLocation("s3://scripts/etl.py")))
	require.NoError(t, err)
	result, ok := shape.(*glue.CreateJobResult)
	require.True(t, ok)
	assert.Equal(t, "etl", *result.Name)
	require.NotNil(t, fake.createJobInput)
	assert.Equal(t, "s3://scripts/etl.py", aws.ToString(fake.createJobInput.Command.ScriptLocation))
}
