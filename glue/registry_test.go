package glue_test

import (
	"context"
	"encoding/json"
	"testing"

	smithy "github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
)

type workflowAPI struct {
	glue.API
	started *glue.StartWorkflowRunRequest
	stopErr error
}

func (w *workflowAPI) StartWorkflowRun(_ context.Context, input *glue.StartWorkflowRunRequest) (*glue.StartWorkflowRunResult, error) {
	w.started = input
	return (&glue.StartWorkflowRunResult{}).WithRunId("wr_42"), nil
}

func (w *workflowAPI) StopWorkflowRun(_ context.Context, _ *glue.StopWorkflowRunRequest) (*glue.StopWorkflowRunResult, error) {
	return nil, w.stopErr
}

func TestOperations(t *testing.T) {
	ops := glue.Operations()
	require.Len(t, ops, 20)

	for _, op := range ops {
		in, ok := glue.NewShape(op.Input)
		require.True(t, ok, op.Input)
		assert.Equal(t, op.Input, in.ShapeName())

		out, ok := glue.NewShape(op.Output)
		require.True(t, ok, op.Output)
		assert.Equal(t, op.Output, out.ShapeName())

		for _, code := range op.Errors {
			_, isGeneric := glue.NewServiceError(code, "").(*smithy.GenericAPIError)
			assert.False(t, isGeneric, code)
		}
	}

	stop, ok := glue.LookupOperation("StopWorkflowRun")
	require.True(t, ok)
	assert.Contains(t, stop.Errors, "IllegalWorkflowStateException")

	stop.Errors[0] = "mutated"
	again, _ := glue.LookupOperation("StopWorkflowRun")
	assert.NotEqual(t, "mutated", again.Errors[0])

	_, ok = glue.LookupOperation("CreateTable")
	assert.False(t, ok)
}

func TestNewShape(t *testing.T) {
	for _, name := range glue.ShapeNames() {
		s, ok := glue.NewShape(name)
		require.True(t, ok, name)
		assert.Equal(t, name, s.ShapeName())
		assert.Equal(t, "{}", s.String())

		// a zero structure decodes from an empty object
		require.NoError(t, json.Unmarshal([]byte(`{}`), s), name)
	}

	_, ok := glue.NewShape("Table")
	assert.False(t, ok)
}

func TestInvoke(t *testing.T) {
	api := &workflowAPI{}
	ctx := context.Background()

	out, err := glue.Invoke(ctx, api, "StartWorkflowRun", (&glue.StartWorkflowRunRequest{}).WithName("nightly"))
	require.NoError(t, err)
	assert.Equal(t, "nightly", *api.started.Name)
	assert.Equal(t, "{RunId: wr_42}", out.String())

	api.stopErr = glue.NewIllegalWorkflowStateException("not running")
	out, err = glue.Invoke(ctx, api, "StopWorkflowRun", &glue.StopWorkflowRunRequest{})
	assert.Nil(t, out)
	var illegal *glue.IllegalWorkflowStateException
	assert.ErrorAs(t, err, &illegal)

	_, err = glue.Invoke(ctx, api, "StartWorkflowRun", &glue.GetJobRunRequest{})
	assert.ErrorIs(t, err, glue.ErrInputType)
	assert.ErrorIs(t, err, glue.ErrInvalidArgument)

	_, err = glue.Invoke(ctx, api, "DeleteTable", &glue.GetJobRunRequest{})
	assert.ErrorIs(t, err, glue.ErrUnknownOperation)
}
