// Package sdkadapter plugs the glue model into the AWS SDK v2 Glue client.
package sdkadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	gluesdk "github.com/aws/aws-sdk-go-v2/service/glue"
	smithy "github.com/aws/smithy-go"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/internal/logging"
)

// ErrUnsupportedOperation is returned for operations the adapter does not forward.
var ErrUnsupportedOperation = errors.New("operation not supported by the SDK adapter")

// GlueAPI is the subset of the SDK client used by Client.
type GlueAPI interface {
	CreateConnection(ctx context.Context, params *gluesdk.CreateConnectionInput, optFns ...func(*gluesdk.Options)) (*gluesdk.CreateConnectionOutput, error)
	CreateDevEndpoint(ctx context.Context, params *gluesdk.CreateDevEndpointInput, optFns ...func(*gluesdk.Options)) (*gluesdk.CreateDevEndpointOutput, error)
	CreateJob(ctx context.Context, params *gluesdk.CreateJobInput, optFns ...func(*gluesdk.Options)) (*gluesdk.CreateJobOutput, error)
	CreateMLTransform(ctx context.Context, params *gluesdk.CreateMLTransformInput, optFns ...func(*gluesdk.Options)) (*gluesdk.CreateMLTransformOutput, error)
	CreateSecurityConfiguration(ctx context.Context, params *gluesdk.CreateSecurityConfigurationInput, optFns ...func(*gluesdk.Options)) (*gluesdk.CreateSecurityConfigurationOutput, error)
	DeleteConnection(ctx context.Context, params *gluesdk.DeleteConnectionInput, optFns ...func(*gluesdk.Options)) (*gluesdk.DeleteConnectionOutput, error)
	DeletePartition(ctx context.Context, params *gluesdk.DeletePartitionInput, optFns ...func(*gluesdk.Options)) (*gluesdk.DeletePartitionOutput, error)
	GetConnection(ctx context.Context, params *gluesdk.GetConnectionInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetConnectionOutput, error)
	GetConnections(ctx context.Context, params *gluesdk.GetConnectionsInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetConnectionsOutput, error)
	GetDataCatalogEncryptionSettings(ctx context.Context, params *gluesdk.GetDataCatalogEncryptionSettingsInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetDataCatalogEncryptionSettingsOutput, error)
	GetDatabase(ctx context.Context, params *gluesdk.GetDatabaseInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetDatabaseOutput, error)
	GetDevEndpoint(ctx context.Context, params *gluesdk.GetDevEndpointInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetDevEndpointOutput, error)
	GetJobRun(ctx context.Context, params *gluesdk.GetJobRunInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetJobRunOutput, error)
	GetMLTransform(ctx context.Context, params *gluesdk.GetMLTransformInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetMLTransformOutput, error)
	GetPartition(ctx context.Context, params *gluesdk.GetPartitionInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetPartitionOutput, error)
	GetSecurityConfiguration(ctx context.Context, params *gluesdk.GetSecurityConfigurationInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetSecurityConfigurationOutput, error)
	GetWorkflowRun(ctx context.Context, params *gluesdk.GetWorkflowRunInput, optFns ...func(*gluesdk.Options)) (*gluesdk.GetWorkflowRunOutput, error)
	StartWorkflowRun(ctx context.Context, params *gluesdk.StartWorkflowRunInput, optFns ...func(*gluesdk.Options)) (*gluesdk.StartWorkflowRunOutput, error)
	StopWorkflowRun(ctx context.Context, params *gluesdk.StopWorkflowRunInput, optFns ...func(*gluesdk.Options)) (*gluesdk.StopWorkflowRunOutput, error)
}

var _ GlueAPI = (*gluesdk.Client)(nil)

// Options configures NewFromConfig.
type Options struct {
	Region   string
	Profile  string
	Endpoint string
}

// Client implements glue.API on top of the SDK client.
type Client struct {
	api GlueAPI
}

var _ glue.API = (*Client)(nil)

// New wraps an SDK client, or any fake satisfying GlueAPI.
func New(api GlueAPI) *Client {
	return &Client{api: api}
}

// NewFromConfig loads the shared AWS configuration and builds a Client.
func NewFromConfig(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := gluesdk.NewFromConfig(cfg, func(o *gluesdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	logging.Component("sdkadapter").Debug("Created Glue SDK client", "region", cfg.Region, "endpoint", opts.Endpoint)
	return New(client), nil
}

func invoke[In, Out, SDKIn, SDKOut any](
	ctx context.Context,
	operation string,
	input *In,
	toSDK func(*In) *SDKIn,
	call func(context.Context, *SDKIn, ...func(*gluesdk.Options)) (*SDKOut, error),
	fromSDK func(*SDKOut) (*Out, error),
) (*Out, error) {
	logger := logging.FromContext(logging.WithComponent(ctx, "sdkadapter")).With("operation", operation)
	start := time.Now()

	output, err := call(ctx, toSDK(input))
	if err != nil {
		logger.DebugContext(ctx, "Glue call failed", "duration", time.Since(start), "error", err)
		return nil, toGlueError(operation, err)
	}
	logger.DebugContext(ctx, "Glue call succeeded", "duration", time.Since(start))

	result, err := fromSDK(output)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to convert response: %w", operation, err)
	}
	return result, nil
}

// toGlueError maps service errors onto the modelled exceptions. Anything
// that is not a service error is returned wrapped with the operation name.
func toGlueError(operation string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", operation, err)
	}
	mapped := glue.NewServiceError(apiErr.ErrorCode(), apiErr.ErrorMessage())
	var generic *smithy.GenericAPIError
	if errors.As(mapped, &generic) {
		generic.Fault = apiErr.ErrorFault()
	}
	return mapped
}

func (c *Client) CreateConnection(ctx context.Context, input *glue.CreateConnectionRequest) (*glue.CreateConnectionResult, error) {
	return invoke(ctx, "CreateConnection", input, ToSDKCreateConnectionRequest, c.api.CreateConnection, FromSDKCreateConnectionOutput)
}

func (c *Client) CreateDevEndpoint(ctx context.Context, input *glue.CreateDevEndpointRequest) (*glue.CreateDevEndpointResult, error) {
	return invoke(ctx, "CreateDevEndpoint", input, ToSDKCreateDevEndpointRequest, c.api.CreateDevEndpoint, FromSDKCreateDevEndpointOutput)
}

func (c *Client) CreateJob(ctx context.Context, input *glue.CreateJobRequest) (*glue.CreateJobResult, error) {
	return invoke(ctx, "CreateJob", input, ToSDKCreateJobRequest, c.api.CreateJob, FromSDKCreateJobOutput)
}

func (c *Client) CreateMLTransform(ctx context.Context, input *glue.CreateMLTransformRequest) (*glue.CreateMLTransformResult, error) {
	return invoke(ctx, "CreateMLTransform", input, ToSDKCreateMLTransformRequest, c.api.CreateMLTransform, FromSDKCreateMLTransformOutput)
}

func (c *Client) CreateSecurityConfiguration(ctx context.Context, input *glue.CreateSecurityConfigurationRequest) (*glue.CreateSecurityConfigurationResult, error) {
	return invoke(ctx, "CreateSecurityConfiguration", input, ToSDKCreateSecurityConfigurationRequest, c.api.CreateSecurityConfiguration, FromSDKCreateSecurityConfigurationOutput)
}

func (c *Client) DeleteConnection(ctx context.Context, input *glue.DeleteConnectionRequest) (*glue.DeleteConnectionResult, error) {
	return invoke(ctx, "DeleteConnection", input, ToSDKDeleteConnectionRequest, c.api.DeleteConnection, FromSDKDeleteConnectionOutput)
}

func (c *Client) DeletePartition(ctx context.Context, input *glue.DeletePartitionRequest) (*glue.DeletePartitionResult, error) {
	return invoke(ctx, "DeletePartition", input, ToSDKDeletePartitionRequest, c.api.DeletePartition, FromSDKDeletePartitionOutput)
}

// GetColumnStatisticsForPartition is not forwarded to the service.
func (c *Client) GetColumnStatisticsForPartition(ctx context.Context, input *glue.GetColumnStatisticsForPartitionRequest) (*glue.GetColumnStatisticsForPartitionResult, error) {
	return nil, fmt.Errorf("GetColumnStatisticsForPartition: %w", ErrUnsupportedOperation)
}

func (c *Client) GetConnection(ctx context.Context, input *glue.GetConnectionRequest) (*glue.GetConnectionResult, error) {
	return invoke(ctx, "GetConnection", input, ToSDKGetConnectionRequest, c.api.GetConnection, FromSDKGetConnectionOutput)
}

func (c *Client) GetConnections(ctx context.Context, input *glue.GetConnectionsRequest) (*glue.GetConnectionsResult, error) {
	return invoke(ctx, "GetConnections", input, ToSDKGetConnectionsRequest, c.api.GetConnections, FromSDKGetConnectionsOutput)
}

func (c *Client) GetDataCatalogEncryptionSettings(ctx context.Context, input *glue.GetDataCatalogEncryptionSettingsRequest) (*glue.GetDataCatalogEncryptionSettingsResult, error) {
	return invoke(ctx, "GetDataCatalogEncryptionSettings", input, ToSDKGetDataCatalogEncryptionSettingsRequest, c.api.GetDataCatalogEncryptionSettings, FromSDKGetDataCatalogEncryptionSettingsOutput)
}

func (c *Client) GetDatabase(ctx context.Context, input *glue.GetDatabaseRequest) (*glue.GetDatabaseResult, error) {
	return invoke(ctx, "GetDatabase", input, ToSDKGetDatabaseRequest, c.api.GetDatabase, FromSDKGetDatabaseOutput)
}

func (c *Client) GetDevEndpoint(ctx context.Context, input *glue.GetDevEndpointRequest) (*glue.GetDevEndpointResult, error) {
	return invoke(ctx, "GetDevEndpoint", input, ToSDKGetDevEndpointRequest, c.api.GetDevEndpoint, FromSDKGetDevEndpointOutput)
}

func (c *Client) GetJobRun(ctx context.Context, input *glue.GetJobRunRequest) (*glue.GetJobRunResult, error) {
	return invoke(ctx, "GetJobRun", input, ToSDKGetJobRunRequest, c.api.GetJobRun, FromSDKGetJobRunOutput)
}

func (c *Client) GetMLTransform(ctx context.Context, input *glue.GetMLTransformRequest) (*glue.GetMLTransformResult, error) {
	return invoke(ctx, "GetMLTransform", input, ToSDKGetMLTransformRequest, c.api.GetMLTransform, FromSDKGetMLTransformOutput)
}

func (c *Client) GetPartition(ctx context.Context, input *glue.GetPartitionRequest) (*glue.GetPartitionResult, error) {
	return invoke(ctx, "GetPartition", input, ToSDKGetPartitionRequest, c.api.GetPartition, FromSDKGetPartitionOutput)
}

func (c *Client) GetSecurityConfiguration(ctx context.Context, input *glue.GetSecurityConfigurationRequest) (*glue.GetSecurityConfigurationResult, error) {
	return invoke(ctx, "GetSecurityConfiguration", input, ToSDKGetSecurityConfigurationRequest, c.api.GetSecurityConfiguration, FromSDKGetSecurityConfigurationOutput)
}

func (c *Client) GetWorkflowRun(ctx context.Context, input *glue.GetWorkflowRunRequest) (*glue.GetWorkflowRunResult, error) {
	return invoke(ctx, "GetWorkflowRun", input, ToSDKGetWorkflowRunRequest, c.api.GetWorkflowRun, FromSDKGetWorkflowRunOutput)
}

func (c *Client) StartWorkflowRun(ctx context.Context, input *glue.StartWorkflowRunRequest) (*glue.StartWorkflowRunResult, error) {
	return invoke(ctx, "StartWorkflowRun", input, ToSDKStartWorkflowRunRequest, c.api.StartWorkflowRun, FromSDKStartWorkflowRunOutput)
}

func (c *Client) StopWorkflowRun(ctx context.Context, input *glue.StopWorkflowRunRequest) (*glue.StopWorkflowRunResult, error) {
	return invoke(ctx, "StopWorkflowRun", input, ToSDKStopWorkflowRunRequest, c.api.StopWorkflowRun, FromSDKStopWorkflowRunOutput)
}
