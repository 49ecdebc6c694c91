package glue_test

import (
	"errors"
	"fmt"
	"testing"

	smithy "github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/glue/ptr"
)

func TestExceptionMessage(t *testing.T) {
	err := glue.NewIllegalWorkflowStateException("workflow run wr_1 is already stopping")

	assert.Equal(t, "workflow run wr_1 is already stopping", err.ErrorMessage())
	assert.Equal(t, "IllegalWorkflowStateException", err.ErrorCode())
	assert.Equal(t, smithy.FaultClient, err.ErrorFault())
	assert.Equal(t, "IllegalWorkflowStateException: workflow run wr_1 is already stopping", err.Error())
}

func TestExceptionWithoutMessage(t *testing.T) {
	err := &glue.EntityNotFoundException{}
	assert.Equal(t, "EntityNotFoundException", err.ErrorMessage())
}

func TestExceptionCodeOverride(t *testing.T) {
	err := &glue.InvalidInputException{
		Message:           ptr.String("bad"),
		ErrorCodeOverride: ptr.String("ValidationException"),
	}
	assert.Equal(t, "ValidationException", err.ErrorCode())
}

func TestExceptionFaults(t *testing.T) {
	assert.Equal(t, smithy.FaultServer, glue.NewInternalServiceException("boom").ErrorFault())
	assert.Equal(t, smithy.FaultClient, glue.NewOperationTimeoutException("slow").ErrorFault())
}

func TestExceptionsAreAPIErrors(t *testing.T) {
	wrapped := fmt.Errorf("stop workflow: %w", glue.NewIllegalWorkflowStateException("not running"))

	var apiErr smithy.APIError
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "IllegalWorkflowStateException", apiErr.ErrorCode())

	var illegal *glue.IllegalWorkflowStateException
	require.True(t, errors.As(wrapped, &illegal))
	assert.Equal(t, "not running", illegal.ErrorMessage())
}

func TestNewServiceError(t *testing.T) {
	err := glue.NewServiceError("ConcurrentRunsExceededException", "too many runs")
	var concurrent *glue.ConcurrentRunsExceededException
	require.True(t, errors.As(err, &concurrent))
	assert.Equal(t, "too many runs", concurrent.ErrorMessage())

	err = glue.NewServiceError("ThrottlingException", "slow down")
	var generic *smithy.GenericAPIError
	require.True(t, errors.As(err, &generic))
	assert.Equal(t, "ThrottlingException", generic.ErrorCode())
	assert.Equal(t, "slow down", generic.ErrorMessage())
}
