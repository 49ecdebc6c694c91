package sdkadapter

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	gluesdk "github.com/aws/aws-sdk-go-v2/service/glue"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"

	"github.com/nandemo-ya/gluemodel/glue"
)

// Converter functions between glue shapes and AWS SDK v2 types.
//
// ToSDK converters never fail. FromSDK converters parse enum values through
// the glue enumerations, so a value the model does not know is reported as
// an error wrapping glue.ErrInvalidArgument.

func toSDKEnum[T ~string, E ~string](v *E) T {
	if v == nil {
		return ""
	}
	return T(*v)
}

func fromSDKEnum[E ~string, T ~string](field string, v T, parse func(string) (E, error)) (*E, error) {
	if v == "" {
		return nil, nil
	}
	e, err := parse(string(v))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &e, nil
}

func fromSDKList[S, G any](in []S, convert func(*S) (*G, error)) ([]G, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]G, 0, len(in))
	for i := range in {
		v, err := convert(&in[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func toSDKList[G, S any](in []G, convert func(*G) *S) []S {
	if in == nil {
		return nil
	}
	out := make([]S, 0, len(in))
	for i := range in {
		out = append(out, *convert(&in[i]))
	}
	return out
}

// Connections

// ToSDKPhysicalConnectionRequirements converts PhysicalConnectionRequirements to the SDK type
func ToSDKPhysicalConnectionRequirements(in *glue.PhysicalConnectionRequirements) *gluetypes.PhysicalConnectionRequirements {
	if in == nil {
		return nil
	}
	return &gluetypes.PhysicalConnectionRequirements{
		SubnetId:            in.SubnetId,
		SecurityGroupIdList: slices.Clone(in.SecurityGroupIdList),
		AvailabilityZone:    in.AvailabilityZone,
	}
}

// FromSDKPhysicalConnectionRequirements converts the SDK type to PhysicalConnectionRequirements
func FromSDKPhysicalConnectionRequirements(in *gluetypes.PhysicalConnectionRequirements) (*glue.PhysicalConnectionRequirements, error) {
	if in == nil {
		return nil, nil
	}
	return &glue.PhysicalConnectionRequirements{
		SubnetId:            in.SubnetId,
		SecurityGroupIdList: slices.Clone(in.SecurityGroupIdList),
		AvailabilityZone:    in.AvailabilityZone,
	}, nil
}

// ToSDKConnectionInput converts ConnectionInput to the SDK type
func ToSDKConnectionInput(in *glue.ConnectionInput) *gluetypes.ConnectionInput {
	if in == nil {
		return nil
	}
	return &gluetypes.ConnectionInput{
		Name:                           in.Name,
		Description:                    in.Description,
		ConnectionType:                 toSDKEnum[gluetypes.ConnectionType](in.ConnectionType),
		MatchCriteria:                  slices.Clone(in.MatchCriteria),
		ConnectionProperties:           maps.Clone(in.ConnectionProperties),
		PhysicalConnectionRequirements: ToSDKPhysicalConnectionRequirements(in.PhysicalConnectionRequirements),
	}
}

// FromSDKConnection converts the SDK type to Connection
func FromSDKConnection(in *gluetypes.Connection) (*glue.Connection, error) {
	if in == nil {
		return nil, nil
	}
	connectionType, err := fromSDKEnum("ConnectionType", in.ConnectionType, glue.ParseConnectionType)
	if err != nil {
		return nil, err
	}
	requirements, err := FromSDKPhysicalConnectionRequirements(in.PhysicalConnectionRequirements)
	if err != nil {
		return nil, err
	}
	return &glue.Connection{
		Name:                           in.Name,
		Description:                    in.Description,
		ConnectionType:                 connectionType,
		MatchCriteria:                  slices.Clone(in.MatchCriteria),
		ConnectionProperties:           maps.Clone(in.ConnectionProperties),
		PhysicalConnectionRequirements: requirements,
		CreationTime:                   glue.FromTime(in.CreationTime),
		LastUpdatedTime:                glue.FromTime(in.LastUpdatedTime),
		LastUpdatedBy:                  in.LastUpdatedBy,
	}, nil
}

// ToSDKGetConnectionsFilter converts GetConnectionsFilter to the SDK type
func ToSDKGetConnectionsFilter(in *glue.GetConnectionsFilter) *gluetypes.GetConnectionsFilter {
	if in == nil {
		return nil
	}
	return &gluetypes.GetConnectionsFilter{
		MatchCriteria:  slices.Clone(in.MatchCriteria),
		ConnectionType: toSDKEnum[gluetypes.ConnectionType](in.ConnectionType),
	}
}

// ToSDKCreateConnectionRequest converts CreateConnectionRequest to CreateConnectionInput
func ToSDKCreateConnectionRequest(in *glue.CreateConnectionRequest) *gluesdk.CreateConnectionInput {
	if in == nil {
		return &gluesdk.CreateConnectionInput{}
	}
	return &gluesdk.CreateConnectionInput{
		CatalogId:       in.CatalogId,
		ConnectionInput: ToSDKConnectionInput(in.ConnectionInput),
	}
}

// FromSDKCreateConnectionOutput converts CreateConnectionOutput to CreateConnectionResult
func FromSDKCreateConnectionOutput(out *gluesdk.CreateConnectionOutput) (*glue.CreateConnectionResult, error) {
	return &glue.CreateConnectionResult{}, nil
}

// ToSDKDeleteConnectionRequest converts DeleteConnectionRequest to DeleteConnectionInput
func ToSDKDeleteConnectionRequest(in *glue.DeleteConnectionRequest) *gluesdk.DeleteConnectionInput {
	if in == nil {
		return &gluesdk.DeleteConnectionInput{}
	}
	return &gluesdk.DeleteConnectionInput{
		CatalogId:      in.CatalogId,
		ConnectionName: in.ConnectionName,
	}
}

// FromSDKDeleteConnectionOutput converts DeleteConnectionOutput to DeleteConnectionResult
func FromSDKDeleteConnectionOutput(out *gluesdk.DeleteConnectionOutput) (*glue.DeleteConnectionResult, error) {
	return &glue.DeleteConnectionResult{}, nil
}

// ToSDKGetConnectionRequest converts GetConnectionRequest to GetConnectionInput
func ToSDKGetConnectionRequest(in *glue.GetConnectionRequest) *gluesdk.GetConnectionInput {
	if in == nil {
		return &gluesdk.GetConnectionInput{}
	}
	return &gluesdk.GetConnectionInput{
		CatalogId:    in.CatalogId,
		Name:         in.Name,
		HidePassword: aws.ToBool(in.HidePassword),
	}
}

// FromSDKGetConnectionOutput converts GetConnectionOutput to GetConnectionResult
func FromSDKGetConnectionOutput(out *gluesdk.GetConnectionOutput) (*glue.GetConnectionResult, error) {
	if out == nil {
		return &glue.GetConnectionResult{}, nil
	}
	connection, err := FromSDKConnection(out.Connection)
	if err != nil {
		return nil, err
	}
	return &glue.GetConnectionResult{Connection: connection}, nil
}

// ToSDKGetConnectionsRequest converts GetConnectionsRequest to GetConnectionsInput
func ToSDKGetConnectionsRequest(in *glue.GetConnectionsRequest) *gluesdk.GetConnectionsInput {
	if in == nil {
		return &gluesdk.GetConnectionsInput{}
	}
	return &gluesdk.GetConnectionsInput{
		CatalogId:    in.CatalogId,
		Filter:       ToSDKGetConnectionsFilter(in.Filter),
		HidePassword: aws.ToBool(in.HidePassword),
		NextToken:    in.NextToken,
		MaxResults:   in.MaxResults,
	}
}

// FromSDKGetConnectionsOutput converts GetConnectionsOutput to GetConnectionsResult
func FromSDKGetConnectionsOutput(out *gluesdk.GetConnectionsOutput) (*glue.GetConnectionsResult, error) {
	if out == nil {
		return &glue.GetConnectionsResult{}, nil
	}
	connections, err := fromSDKList(out.ConnectionList, FromSDKConnection)
	if err != nil {
		return nil, err
	}
	return &glue.GetConnectionsResult{
		ConnectionList: connections,
		NextToken:      out.NextToken,
	}, nil
}

// Catalog

// FromSDKColumn converts the SDK type to Column
func FromSDKColumn(in *gluetypes.Column) (*glue.Column, error) {
	if in == nil {
		return nil, nil
	}
	return &glue.Column{
		Name:       in.Name,
		Type:       in.Type,
		Comment:    in.Comment,
		Parameters: maps.Clone(in.Parameters),
	}, nil
}

// FromSDKStorageDescriptor converts the SDK type to StorageDescriptor
func FromSDKStorageDescriptor(in *gluetypes.StorageDescriptor) (*glue.StorageDescriptor, error) {
	if in == nil {
		return nil, nil
	}
	columns, err := fromSDKList(in.Columns, FromSDKColumn)
	if err != nil {
		return nil, err
	}
	return &glue.StorageDescriptor{
		Columns:                columns,
		Location:               in.Location,
		InputFormat:            in.InputFormat,
		OutputFormat:           in.OutputFormat,
		Compressed:             aws.Bool(in.Compressed),
		NumberOfBuckets:        aws.Int32(in.NumberOfBuckets),
		BucketColumns:          slices.Clone(in.BucketColumns),
		Parameters:             maps.Clone(in.Parameters),
		StoredAsSubDirectories: aws.Bool(in.StoredAsSubDirectories),
	}, nil
}

// FromSDKPartition converts the SDK type to Partition
func FromSDKPartition(in *gluetypes.Partition) (*glue.Partition, error) {
	if in == nil {
		return nil, nil
	}
	descriptor, err := FromSDKStorageDescriptor(in.StorageDescriptor)
	if err != nil {
		return nil, err
	}
	return &glue.Partition{
		Values:            slices.Clone(in.Values),
		DatabaseName:      in.DatabaseName,
		TableName:         in.TableName,
		CreationTime:      glue.FromTime(in.CreationTime),
		LastAccessTime:    glue.FromTime(in.LastAccessTime),
		StorageDescriptor: descriptor,
		Parameters:        maps.Clone(in.Parameters),
		LastAnalyzedTime:  glue.FromTime(in.LastAnalyzedTime),
		CatalogId:         in.CatalogId,
	}, nil
}

// ToSDKDeletePartitionRequest converts DeletePartitionRequest to DeletePartitionInput
func ToSDKDeletePartitionRequest(in *glue.DeletePartitionRequest) *gluesdk.DeletePartitionInput {
	if in == nil {
		return &gluesdk.DeletePartitionInput{}
	}
	return &gluesdk.DeletePartitionInput{
		CatalogId:       in.CatalogId,
		DatabaseName:    in.DatabaseName,
		TableName:       in.TableName,
		PartitionValues: slices.Clone(in.PartitionValues),
	}
}

// FromSDKDeletePartitionOutput converts DeletePartitionOutput to DeletePartitionResult
func FromSDKDeletePartitionOutput(out *gluesdk.DeletePartitionOutput) (*glue.DeletePartitionResult, error) {
	return &glue.DeletePartitionResult{}, nil
}

// ToSDKGetPartitionRequest converts GetPartitionRequest to GetPartitionInput
func ToSDKGetPartitionRequest(in *glue.GetPartitionRequest) *gluesdk.GetPartitionInput {
	if in == nil {
		return &gluesdk.GetPartitionInput{}
	}
	return &gluesdk.GetPartitionInput{
		CatalogId:       in.CatalogId,
		DatabaseName:    in.DatabaseName,
		TableName:       in.TableName,
		PartitionValues: slices.Clone(in.PartitionValues),
	}
}

// FromSDKGetPartitionOutput converts GetPartitionOutput to GetPartitionResult
func FromSDKGetPartitionOutput(out *gluesdk.GetPartitionOutput) (*glue.GetPartitionResult, error) {
	if out == nil {
		return &glue.GetPartitionResult{}, nil
	}
	partition, err := FromSDKPartition(out.Partition)
	if err != nil {
		return nil, err
	}
	return &glue.GetPartitionResult{Partition: partition}, nil
}

// FromSDKPrincipalPermissions converts the SDK type to PrincipalPermissions
func FromSDKPrincipalPermissions(in *gluetypes.PrincipalPermissions) (*glue.PrincipalPermissions, error) {
	if in == nil {
		return nil, nil
	}
	out := &glue.PrincipalPermissions{}
	if in.Principal != nil {
		out.Principal = &glue.DataLakePrincipal{
			DataLakePrincipalIdentifier: in.Principal.DataLakePrincipalIdentifier,
		}
	}
	if in.Permissions != nil {
		out.Permissions = make([]glue.Permission, 0, len(in.Permissions))
		for _, p := range in.Permissions {
			permission, err := glue.ParsePermission(string(p))
			if err != nil {
				return nil, fmt.Errorf("Permissions: %w", err)
			}
			out.Permissions = append(out.Permissions, permission)
		}
	}
	return out, nil
}

// FromSDKDatabase converts the SDK type to Database
func FromSDKDatabase(in *gluetypes.Database) (*glue.Database, error) {
	if in == nil {
		return nil, nil
	}
	permissions, err := fromSDKList(in.CreateTableDefaultPermissions, FromSDKPrincipalPermissions)
	if err != nil {
		return nil, err
	}
	return &glue.Database{
		Name:                          in.Name,
		Description:                   in.Description,
		LocationUri:                   in.LocationUri,
		Parameters:                    maps.Clone(in.Parameters),
		CreateTime:                    glue.FromTime(in.CreateTime),
		CreateTableDefaultPermissions: permissions,
		CatalogId:                     in.CatalogId,
	}, nil
}

// ToSDKGetDatabaseRequest converts GetDatabaseRequest to GetDatabaseInput
func ToSDKGetDatabaseRequest(in *glue.GetDatabaseRequest) *gluesdk.GetDatabaseInput {
	if in == nil {
		return &gluesdk.GetDatabaseInput{}
	}
	return &gluesdk.GetDatabaseInput{
		CatalogId: in.CatalogId,
		Name:      in.Name,
	}
}

// FromSDKGetDatabaseOutput converts GetDatabaseOutput to GetDatabaseResult
func FromSDKGetDatabaseOutput(out *gluesdk.GetDatabaseOutput) (*glue.GetDatabaseResult, error) {
	if out == nil {
		return &glue.GetDatabaseResult{}, nil
	}
	database, err := FromSDKDatabase(out.Database)
	if err != nil {
		return nil, err
	}
	return &glue.GetDatabaseResult{Database: database}, nil
}

// Encryption

// ToSDKS3Encryption converts S3Encryption to the SDK type
func ToSDKS3Encryption(in *glue.S3Encryption) *gluetypes.S3Encryption {
	if in == nil {
		return nil
	}
	return &gluetypes.S3Encryption{
		S3EncryptionMode: toSDKEnum[gluetypes.S3EncryptionMode](in.S3EncryptionMode),
		KmsKeyArn:        in.KmsKeyArn,
	}
}

// FromSDKS3Encryption converts the SDK type to S3Encryption
func FromSDKS3Encryption(in *gluetypes.S3Encryption) (*glue.S3Encryption, error) {
	if in == nil {
		return nil, nil
	}
	mode, err := fromSDKEnum("S3EncryptionMode", in.S3EncryptionMode, glue.ParseS3EncryptionMode)
	if err != nil {
		return nil, err
	}
	return &glue.S3Encryption{S3EncryptionMode: mode, KmsKeyArn: in.KmsKeyArn}, nil
}

// ToSDKEncryptionConfiguration converts EncryptionConfiguration to the SDK type
func ToSDKEncryptionConfiguration(in *glue.EncryptionConfiguration) *gluetypes.EncryptionConfiguration {
	if in == nil {
		return nil
	}
	out := &gluetypes.EncryptionConfiguration{
		S3Encryption: toSDKList(in.S3Encryption, ToSDKS3Encryption),
	}
	if in.CloudWatchEncryption != nil {
		out.CloudWatchEncryption = &gluetypes.CloudWatchEncryption{
			CloudWatchEncryptionMode: toSDKEnum[gluetypes.CloudWatchEncryptionMode](in.CloudWatchEncryption.CloudWatchEncryptionMode),
			KmsKeyArn:                in.CloudWatchEncryption.KmsKeyArn,
		}
	}
	if in.JobBookmarksEncryption != nil {
		out.JobBookmarksEncryption = &gluetypes.JobBookmarksEncryption{
			JobBookmarksEncryptionMode: toSDKEnum[gluetypes.JobBookmarksEncryptionMode](in.JobBookmarksEncryption.JobBookmarksEncryptionMode),
			KmsKeyArn:                  in.JobBookmarksEncryption.KmsKeyArn,
		}
	}
	return out
}

// FromSDKEncryptionConfiguration converts the SDK type to EncryptionConfiguration
func FromSDKEncryptionConfiguration(in *gluetypes.EncryptionConfiguration) (*glue.EncryptionConfiguration, error) {
	if in == nil {
		return nil, nil
	}
	s3, err := fromSDKList(in.S3Encryption, FromSDKS3Encryption)
	if err != nil {
		return nil, err
	}
	out := &glue.EncryptionConfiguration{S3Encryption: s3}
	if in.CloudWatchEncryption != nil {
		mode, err := fromSDKEnum("CloudWatchEncryptionMode", in.CloudWatchEncryption.CloudWatchEncryptionMode, glue.ParseCloudWatchEncryptionMode)
		if err != nil {
			return nil, err
		}
		out.CloudWatchEncryption = &glue.CloudWatchEncryption{
			CloudWatchEncryptionMode: mode,
			KmsKeyArn:                in.CloudWatchEncryption.KmsKeyArn,
		}
	}
	if in.JobBookmarksEncryption != nil {
		mode, err := fromSDKEnum("JobBookmarksEncryptionMode", in.JobBookmarksEncryption.JobBookmarksEncryptionMode, glue.ParseJobBookmarksEncryptionMode)
		if err != nil {
			return nil, err
		}
		out.JobBookmarksEncryption = &glue.JobBookmarksEncryption{
			JobBookmarksEncryptionMode: mode,
			KmsKeyArn:                  in.JobBookmarksEncryption.KmsKeyArn,
		}
	}
	return out, nil
}

// ToSDKCreateSecurityConfigurationRequest converts CreateSecurityConfigurationRequest to CreateSecurityConfigurationInput
func ToSDKCreateSecurityConfigurationRequest(in *glue.CreateSecurityConfigurationRequest) *gluesdk.CreateSecurityConfigurationInput {
	if in == nil {
		return &gluesdk.CreateSecurityConfigurationInput{}
	}
	return &gluesdk.CreateSecurityConfigurationInput{
		Name:                    in.Name,
		EncryptionConfiguration: ToSDKEncryptionConfiguration(in.EncryptionConfiguration),
	}
}

// FromSDKCreateSecurityConfigurationOutput converts CreateSecurityConfigurationOutput to CreateSecurityConfigurationResult
func FromSDKCreateSecurityConfigurationOutput(out *gluesdk.CreateSecurityConfigurationOutput) (*glue.CreateSecurityConfigurationResult, error) {
	if out == nil {
		return &glue.CreateSecurityConfigurationResult{}, nil
	}
	return &glue.CreateSecurityConfigurationResult{
		Name:             out.Name,
		CreatedTimestamp: glue.FromTime(out.CreatedTimestamp),
	}, nil
}

// ToSDKGetSecurityConfigurationRequest converts GetSecurityConfigurationRequest to GetSecurityConfigurationInput
func ToSDKGetSecurityConfigurationRequest(in *glue.GetSecurityConfigurationRequest) *gluesdk.GetSecurityConfigurationInput {
	if in == nil {
		return &gluesdk.GetSecurityConfigurationInput{}
	}
	return &gluesdk.GetSecurityConfigurationInput{Name: in.Name}
}

// FromSDKGetSecurityConfigurationOutput converts GetSecurityConfigurationOutput to GetSecurityConfigurationResult
func FromSDKGetSecurityConfigurationOutput(out *gluesdk.GetSecurityConfigurationOutput) (*glue.GetSecurityConfigurationResult, error) {
	if out == nil || out.SecurityConfiguration == nil {
		return &glue.GetSecurityConfigurationResult{}, nil
	}
	in := out.SecurityConfiguration
	encryption, err := FromSDKEncryptionConfiguration(in.EncryptionConfiguration)
	if err != nil {
		return nil, err
	}
	return &glue.GetSecurityConfigurationResult{
		SecurityConfiguration: &glue.SecurityConfiguration{
			Name:                    in.Name,
			CreatedTimeStamp:        glue.FromTime(in.CreatedTimeStamp),
			EncryptionConfiguration: encryption,
		},
	}, nil
}

// FromSDKDataCatalogEncryptionSettings converts the SDK type to DataCatalogEncryptionSettings
func FromSDKDataCatalogEncryptionSettings(in *gluetypes.DataCatalogEncryptionSettings) (*glue.DataCatalogEncryptionSettings, error) {
	if in == nil {
		return nil, nil
	}
	out := &glue.DataCatalogEncryptionSettings{}
	if in.EncryptionAtRest != nil {
		mode, err := fromSDKEnum("CatalogEncryptionMode", in.EncryptionAtRest.CatalogEncryptionMode, glue.ParseCatalogEncryptionMode)
		if err != nil {
			return nil, err
		}
		out.EncryptionAtRest = &glue.EncryptionAtRest{
			CatalogEncryptionMode: mode,
			SseAwsKmsKeyId:        in.EncryptionAtRest.SseAwsKmsKeyId,
		}
	}
	if in.ConnectionPasswordEncryption != nil {
		out.ConnectionPasswordEncryption = &glue.ConnectionPasswordEncryption{
			ReturnConnectionPasswordEncrypted: aws.Bool(in.ConnectionPasswordEncryption.ReturnConnectionPasswordEncrypted),
			AwsKmsKeyId:                       in.ConnectionPasswordEncryption.AwsKmsKeyId,
		}
	}
	return out, nil
}

// ToSDKGetDataCatalogEncryptionSettingsRequest converts GetDataCatalogEncryptionSettingsRequest to GetDataCatalogEncryptionSettingsInput
func ToSDKGetDataCatalogEncryptionSettingsRequest(in *glue.GetDataCatalogEncryptionSettingsRequest) *gluesdk.GetDataCatalogEncryptionSettingsInput {
	if in == nil {
		return &gluesdk.GetDataCatalogEncryptionSettingsInput{}
	}
	return &gluesdk.GetDataCatalogEncryptionSettingsInput{CatalogId: in.CatalogId}
}

// FromSDKGetDataCatalogEncryptionSettingsOutput converts GetDataCatalogEncryptionSettingsOutput to GetDataCatalogEncryptionSettingsResult
func FromSDKGetDataCatalogEncryptionSettingsOutput(out *gluesdk.GetDataCatalogEncryptionSettingsOutput) (*glue.GetDataCatalogEncryptionSettingsResult, error) {
	if out == nil {
		return &glue.GetDataCatalogEncryptionSettingsResult{}, nil
	}
	settings, err := FromSDKDataCatalogEncryptionSettings(out.DataCatalogEncryptionSettings)
	if err != nil {
		return nil, err
	}
	return &glue.GetDataCatalogEncryptionSettingsResult{DataCatalogEncryptionSettings: settings}, nil
}

// Workflows

// FromSDKNode converts the SDK type to Node
func FromSDKNode(in *gluetypes.Node) (*glue.Node, error) {
	if in == nil {
		return nil, nil
	}
	nodeType, err := fromSDKEnum("Type", in.Type, glue.ParseNodeType)
	if err != nil {
		return nil, err
	}
	return &glue.Node{Type: nodeType, Name: in.Name, UniqueId: in.UniqueId}, nil
}

// FromSDKEdge converts the SDK type to Edge
func FromSDKEdge(in *gluetypes.Edge) (*glue.Edge, error) {
	if in == nil {
		return nil, nil
	}
	return &glue.Edge{SourceId: in.SourceId, DestinationId: in.DestinationId}, nil
}

// FromSDKWorkflowRun converts the SDK type to WorkflowRun
func FromSDKWorkflowRun(in *gluetypes.WorkflowRun) (*glue.WorkflowRun, error) {
	if in == nil {
		return nil, nil
	}
	status, err := fromSDKEnum("Status", in.Status, glue.ParseWorkflowRunStatus)
	if err != nil {
		return nil, err
	}
	out := &glue.WorkflowRun{
		Name:                  in.Name,
		WorkflowRunId:         in.WorkflowRunId,
		WorkflowRunProperties: maps.Clone(in.WorkflowRunProperties),
		StartedOn:             glue.FromTime(in.StartedOn),
		CompletedOn:           glue.FromTime(in.CompletedOn),
		Status:                status,
	}
	if s := in.Statistics; s != nil {
		out.Statistics = &glue.WorkflowRunStatistics{
			TotalActions:     aws.Int32(s.TotalActions),
			TimeoutActions:   aws.Int32(s.TimeoutActions),
			FailedActions:    aws.Int32(s.FailedActions),
			StoppedActions:   aws.Int32(s.StoppedActions),
			SucceededActions: aws.Int32(s.SucceededActions),
			RunningActions:   aws.Int32(s.RunningActions),
		}
	}
	if in.Graph != nil {
		nodes, err := fromSDKList(in.Graph.Nodes, FromSDKNode)
		if err != nil {
			return nil, err
		}
		edges, err := fromSDKList(in.Graph.Edges, FromSDKEdge)
		if err != nil {
			return nil, err
		}
		out.Graph = &glue.WorkflowGraph{Nodes: nodes, Edges: edges}
	}
	return out, nil
}

// ToSDKStartWorkflowRunRequest converts StartWorkflowRunRequest to StartWorkflowRunInput
func ToSDKStartWorkflowRunRequest(in *glue.StartWorkflowRunRequest) *gluesdk.StartWorkflowRunInput {
	if in == nil {
		return &gluesdk.StartWorkflowRunInput{}
	}
	return &gluesdk.StartWorkflowRunInput{Name: in.Name}
}

// FromSDKStartWorkflowRunOutput converts StartWorkflowRunOutput to StartWorkflowRunResult
func FromSDKStartWorkflowRunOutput(out *gluesdk.StartWorkflowRunOutput) (*glue.StartWorkflowRunResult, error) {
	if out == nil {
		return &glue.StartWorkflowRunResult{}, nil
	}
	return &glue.StartWorkflowRunResult{RunId: out.RunId}, nil
}

// ToSDKStopWorkflowRunRequest converts StopWorkflowRunRequest to StopWorkflowRunInput
func ToSDKStopWorkflowRunRequest(in *glue.StopWorkflowRunRequest) *gluesdk.StopWorkflowRunInput {
	if in == nil {
		return &gluesdk.StopWorkflowRunInput{}
	}
	return &gluesdk.StopWorkflowRunInput{Name: in.Name, RunId: in.RunId}
}

// FromSDKStopWorkflowRunOutput converts StopWorkflowRunOutput to StopWorkflowRunResult
func FromSDKStopWorkflowRunOutput(out *gluesdk.StopWorkflowRunOutput) (*glue.StopWorkflowRunResult, error) {
	return &glue.StopWorkflowRunResult{}, nil
}

// ToSDKGetWorkflowRunRequest converts GetWorkflowRunRequest to GetWorkflowRunInput
func ToSDKGetWorkflowRunRequest(in *glue.GetWorkflowRunRequest) *gluesdk.GetWorkflowRunInput {
	if in == nil {
		return &gluesdk.GetWorkflowRunInput{}
	}
	return &gluesdk.GetWorkflowRunInput{
		Name:         in.Name,
		RunId:        in.RunId,
		IncludeGraph: in.IncludeGraph,
	}
}

// FromSDKGetWorkflowRunOutput converts GetWorkflowRunOutput to GetWorkflowRunResult
func FromSDKGetWorkflowRunOutput(out *gluesdk.GetWorkflowRunOutput) (*glue.GetWorkflowRunResult, error) {
	if out == nil {
		return &glue.GetWorkflowRunResult{}, nil
	}
	run, err := FromSDKWorkflowRun(out.Run)
	if err != nil {
		return nil, err
	}
	return &glue.GetWorkflowRunResult{Run: run}, nil
}

// Jobs

// FromSDKJobRun converts the SDK type to JobRun
func FromSDKJobRun(in *gluetypes.JobRun) (*glue.JobRun, error) {
	if in == nil {
		return nil, nil
	}
	state, err := fromSDKEnum("JobRunState", in.JobRunState, glue.ParseJobRunState)
	if err != nil {
		return nil, err
	}
	workerType, err := fromSDKEnum("WorkerType", in.WorkerType, glue.ParseWorkerType)
	if err != nil {
		return nil, err
	}
	out := &glue.JobRun{
		Id:                    in.Id,
		Attempt:               aws.Int32(in.Attempt),
		PreviousRunId:         in.PreviousRunId,
		TriggerName:           in.TriggerName,
		JobName:               in.JobName,
		StartedOn:             glue.FromTime(in.StartedOn),
		LastModifiedOn:        glue.FromTime(in.LastModifiedOn),
		CompletedOn:           glue.FromTime(in.CompletedOn),
		JobRunState:           state,
		Arguments:             maps.Clone(in.Arguments),
		ErrorMessage:          in.ErrorMessage,
		AllocatedCapacity:     aws.Int32(in.AllocatedCapacity),
		ExecutionTime:         aws.Int32(in.ExecutionTime),
		Timeout:               in.Timeout,
		MaxCapacity:           in.MaxCapacity,
		WorkerType:            workerType,
		NumberOfWorkers:       in.NumberOfWorkers,
		SecurityConfiguration: in.SecurityConfiguration,
		LogGroupName:          in.LogGroupName,
		GlueVersion:           in.GlueVersion,
	}
	if in.PredecessorRuns != nil {
		out.PredecessorRuns = make([]glue.Predecessor, 0, len(in.PredecessorRuns))
		for _, p := range in.PredecessorRuns {
			out.PredecessorRuns = append(out.PredecessorRuns, glue.Predecessor{JobName: p.JobName, RunId: p.RunId})
		}
	}
	if in.NotificationProperty != nil {
		out.NotificationProperty = &glue.NotificationProperty{
			NotifyDelayAfter: in.NotificationProperty.NotifyDelayAfter,
		}
	}
	return out, nil
}

// ToSDKGetJobRunRequest converts GetJobRunRequest to GetJobRunInput
func ToSDKGetJobRunRequest(in *glue.GetJobRunRequest) *gluesdk.GetJobRunInput {
	if in == nil {
		return &gluesdk.GetJobRunInput{}
	}
	return &gluesdk.GetJobRunInput{
		JobName:              in.JobName,
		RunId:                in.RunId,
		PredecessorsIncluded: aws.ToBool(in.PredecessorsIncluded),
	}
}

// FromSDKGetJobRunOutput converts GetJobRunOutput to GetJobRunResult
func FromSDKGetJobRunOutput(out *gluesdk.GetJobRunOutput) (*glue.GetJobRunResult, error) {
	if out == nil {
		return &glue.GetJobRunResult{}, nil
	}
	run, err := FromSDKJobRun(out.JobRun)
	if err != nil {
		return nil, err
	}
	return &glue.GetJobRunResult{JobRun: run}, nil
}

// ToSDKCreateJobRequest converts CreateJobRequest to CreateJobInput
func ToSDKCreateJobRequest(in *glue.CreateJobRequest) *gluesdk.CreateJobInput {
	if in == nil {
		return &gluesdk.CreateJobInput{}
	}
	out := &gluesdk.CreateJobInput{
		Name:                    in.Name,
		Description:             in.Description,
		LogUri:                  in.LogUri,
		Role:                    in.Role,
		DefaultArguments:        maps.Clone(in.DefaultArguments),
		NonOverridableArguments: maps.Clone(in.NonOverridableArguments),
		MaxRetries:              aws.ToInt32(in.MaxRetries),
		AllocatedCapacity:       aws.ToInt32(in.AllocatedCapacity),
		Timeout:                 in.Timeout,
		MaxCapacity:             in.MaxCapacity,
		SecurityConfiguration:   in.SecurityConfiguration,
		Tags:                    maps.Clone(in.Tags),
		GlueVersion:             in.GlueVersion,
		NumberOfWorkers:         in.NumberOfWorkers,
		WorkerType:              toSDKEnum[gluetypes.WorkerType](in.WorkerType),
	}
	if in.ExecutionProperty != nil {
		out.ExecutionProperty = &gluetypes.ExecutionProperty{
			MaxConcurrentRuns: aws.ToInt32(in.ExecutionProperty.MaxConcurrentRuns),
		}
	}
	if in.Command != nil {
		out.Command = &gluetypes.JobCommand{
			Name:           in.Command.Name,
			ScriptLocation: in.Command.ScriptLocation,
			PythonVersion:  in.Command.PythonVersion,
		}
	}
	if in.Connections != nil {
		out.Connections = &gluetypes.ConnectionsList{Connections: slices.Clone(in.Connections.Connections)}
	}
	if in.NotificationProperty != nil {
		out.NotificationProperty = &gluetypes.NotificationProperty{
			NotifyDelayAfter: in.NotificationProperty.NotifyDelayAfter,
		}
	}
	return out
}

// FromSDKCreateJobOutput converts CreateJobOutput to CreateJobResult
func FromSDKCreateJobOutput(out *gluesdk.CreateJobOutput) (*glue.CreateJobResult, error) {
	if out == nil {
		return &glue.CreateJobResult{}, nil
	}
	return &glue.CreateJobResult{Name: out.Name}, nil
}

// Dev endpoints

// FromSDKDevEndpoint converts the SDK type to DevEndpoint
func FromSDKDevEndpoint(in *gluetypes.DevEndpoint) (*glue.DevEndpoint, error) {
	if in == nil {
		return nil, nil
	}
	workerType, err := fromSDKEnum("WorkerType", in.WorkerType, glue.ParseWorkerType)
	if err != nil {
		return nil, err
	}
	return &glue.DevEndpoint{
		EndpointName:                       in.EndpointName,
		RoleArn:                            in.RoleArn,
		SecurityGroupIds:                   slices.Clone(in.SecurityGroupIds),
		SubnetId:                           in.SubnetId,
		YarnEndpointAddress:                in.YarnEndpointAddress,
		PrivateAddress:                     in.PrivateAddress,
		ZeppelinRemoteSparkInterpreterPort: aws.Int32(in.ZeppelinRemoteSparkInterpreterPort),
		PublicAddress:                      in.PublicAddress,
		Status:                             in.Status,
		WorkerType:                         workerType,
		GlueVersion:                        in.GlueVersion,
		NumberOfWorkers:                    in.NumberOfWorkers,
		NumberOfNodes:                      aws.Int32(in.NumberOfNodes),
		AvailabilityZone:                   in.AvailabilityZone,
		VpcId:                              in.VpcId,
		ExtraPythonLibsS3Path:              in.ExtraPythonLibsS3Path,
		ExtraJarsS3Path:                    in.ExtraJarsS3Path,
		FailureReason:                      in.FailureReason,
		LastUpdateStatus:                   in.LastUpdateStatus,
		CreatedTimestamp:                   glue.FromTime(in.CreatedTimestamp),
		LastModifiedTimestamp:              glue.FromTime(in.LastModifiedTimestamp),
		PublicKey:                          in.PublicKey,
		PublicKeys:                         slices.Clone(in.PublicKeys),
		SecurityConfiguration:              in.SecurityConfiguration,
		Arguments:                          maps.Clone(in.Arguments),
	}, nil
}

// ToSDKCreateDevEndpointRequest converts CreateDevEndpointRequest to CreateDevEndpointInput
func ToSDKCreateDevEndpointRequest(in *glue.CreateDevEndpointRequest) *gluesdk.CreateDevEndpointInput {
	if in == nil {
		return &gluesdk.CreateDevEndpointInput{}
	}
	return &gluesdk.CreateDevEndpointInput{
		EndpointName:          in.EndpointName,
		RoleArn:               in.RoleArn,
		SecurityGroupIds:      slices.Clone(in.SecurityGroupIds),
		SubnetId:              in.SubnetId,
		PublicKey:             in.PublicKey,
		PublicKeys:            slices.Clone(in.PublicKeys),
		NumberOfNodes:         aws.ToInt32(in.NumberOfNodes),
		WorkerType:            toSDKEnum[gluetypes.WorkerType](in.WorkerType),
		GlueVersion:           in.GlueVersion,
		NumberOfWorkers:       in.NumberOfWorkers,
		ExtraPythonLibsS3Path: in.ExtraPythonLibsS3Path,
		ExtraJarsS3Path:       in.ExtraJarsS3Path,
		SecurityConfiguration: in.SecurityConfiguration,
		Tags:                  maps.Clone(in.Tags),
		Arguments:             maps.Clone(in.Arguments),
	}
}

// FromSDKCreateDevEndpointOutput converts CreateDevEndpointOutput to CreateDevEndpointResult
func FromSDKCreateDevEndpointOutput(out *gluesdk.CreateDevEndpointOutput) (*glue.CreateDevEndpointResult, error) {
	if out == nil {
		return &glue.CreateDevEndpointResult{}, nil
	}
	workerType, err := fromSDKEnum("WorkerType", out.WorkerType, glue.ParseWorkerType)
	if err != nil {
		return nil, err
	}
	return &glue.CreateDevEndpointResult{
		EndpointName:                       out.EndpointName,
		Status:                             out.Status,
		SecurityGroupIds:                   slices.Clone(out.SecurityGroupIds),
		SubnetId:                           out.SubnetId,
		RoleArn:                            out.RoleArn,
		YarnEndpointAddress:                out.YarnEndpointAddress,
		ZeppelinRemoteSparkInterpreterPort: aws.Int32(out.ZeppelinRemoteSparkInterpreterPort),
		NumberOfNodes:                      aws.Int32(out.NumberOfNodes),
		WorkerType:                         workerType,
		GlueVersion:                        out.GlueVersion,
		NumberOfWorkers:                    out.NumberOfWorkers,
		AvailabilityZone:                   out.AvailabilityZone,
		VpcId:                              out.VpcId,
		ExtraPythonLibsS3Path:              out.ExtraPythonLibsS3Path,
		ExtraJarsS3Path:                    out.ExtraJarsS3Path,
		FailureReason:                      out.FailureReason,
		SecurityConfiguration:              out.SecurityConfiguration,
		CreatedTimestamp:                   glue.FromTime(out.CreatedTimestamp),
		Arguments:                          maps.Clone(out.Arguments),
	}, nil
}

// ToSDKGetDevEndpointRequest converts GetDevEndpointRequest to GetDevEndpointInput
func ToSDKGetDevEndpointRequest(in *glue.GetDevEndpointRequest) *gluesdk.GetDevEndpointInput {
	if in == nil {
		return &gluesdk.GetDevEndpointInput{}
	}
	return &gluesdk.GetDevEndpointInput{EndpointName: in.EndpointName}
}

// FromSDKGetDevEndpointOutput converts GetDevEndpointOutput to GetDevEndpointResult
func FromSDKGetDevEndpointOutput(out *gluesdk.GetDevEndpointOutput) (*glue.GetDevEndpointResult, error) {
	if out == nil {
		return &glue.GetDevEndpointResult{}, nil
	}
	endpoint, err := FromSDKDevEndpoint(out.DevEndpoint)
	if err != nil {
		return nil, err
	}
	return &glue.GetDevEndpointResult{DevEndpoint: endpoint}, nil
}

// Machine learning transforms

// ToSDKGlueTable converts GlueTable to the SDK type
func ToSDKGlueTable(in *glue.GlueTable) *gluetypes.GlueTable {
	return &gluetypes.GlueTable{
		DatabaseName:   in.DatabaseName,
		TableName:      in.TableName,
		CatalogId:      in.CatalogId,
		ConnectionName: in.ConnectionName,
	}
}

// FromSDKGlueTable converts the SDK type to GlueTable
func FromSDKGlueTable(in *gluetypes.GlueTable) (*glue.GlueTable, error) {
	return &glue.GlueTable{
		DatabaseName:   in.DatabaseName,
		TableName:      in.TableName,
		CatalogId:      in.CatalogId,
		ConnectionName: in.ConnectionName,
	}, nil
}

// ToSDKTransformParameters converts TransformParameters to the SDK type
func ToSDKTransformParameters(in *glue.TransformParameters) *gluetypes.TransformParameters {
	if in == nil {
		return nil
	}
	out := &gluetypes.TransformParameters{
		TransformType: toSDKEnum[gluetypes.TransformType](in.TransformType),
	}
	if p := in.FindMatchesParameters; p != nil {
		out.FindMatchesParameters = &gluetypes.FindMatchesParameters{
			PrimaryKeyColumnName:    p.PrimaryKeyColumnName,
			PrecisionRecallTradeoff: p.PrecisionRecallTradeoff,
			AccuracyCostTradeoff:    p.AccuracyCostTradeoff,
			EnforceProvidedLabels:   p.EnforceProvidedLabels,
		}
	}
	return out
}

// FromSDKTransformParameters converts the SDK type to TransformParameters
func FromSDKTransformParameters(in *gluetypes.TransformParameters) (*glue.TransformParameters, error) {
	if in == nil {
		return nil, nil
	}
	transformType, err := fromSDKEnum("TransformType", in.TransformType, glue.ParseTransformType)
	if err != nil {
		return nil, err
	}
	out := &glue.TransformParameters{TransformType: transformType}
	if p := in.FindMatchesParameters; p != nil {
		out.FindMatchesParameters = &glue.FindMatchesParameters{
			PrimaryKeyColumnName:    p.PrimaryKeyColumnName,
			PrecisionRecallTradeoff: p.PrecisionRecallTradeoff,
			AccuracyCostTradeoff:    p.AccuracyCostTradeoff,
			EnforceProvidedLabels:   p.EnforceProvidedLabels,
		}
	}
	return out, nil
}

// FromSDKEvaluationMetrics converts the SDK type to EvaluationMetrics.
// Column importances are not modelled and are dropped.
func FromSDKEvaluationMetrics(in *gluetypes.EvaluationMetrics) (*glue.EvaluationMetrics, error) {
	if in == nil {
		return nil, nil
	}
	transformType, err := fromSDKEnum("TransformType", in.TransformType, glue.ParseTransformType)
	if err != nil {
		return nil, err
	}
	out := &glue.EvaluationMetrics{TransformType: transformType}
	if m := in.FindMatchesMetrics; m != nil {
		out.FindMatchesMetrics = &glue.FindMatchesMetrics{
			AreaUnderPRCurve: m.AreaUnderPRCurve,
			Precision:        m.Precision,
			Recall:           m.Recall,
			F1:               m.F1,
		}
		if cm := m.ConfusionMatrix; cm != nil {
			out.FindMatchesMetrics.ConfusionMatrix = &glue.ConfusionMatrix{
				NumTruePositives:  cm.NumTruePositives,
				NumFalsePositives: cm.NumFalsePositives,
				NumTrueNegatives:  cm.NumTrueNegatives,
				NumFalseNegatives: cm.NumFalseNegatives,
			}
		}
	}
	return out, nil
}

// FromSDKSchemaColumn converts the SDK type to SchemaColumn
func FromSDKSchemaColumn(in *gluetypes.SchemaColumn) (*glue.SchemaColumn, error) {
	return &glue.SchemaColumn{Name: in.Name, DataType: in.DataType}, nil
}

// ToSDKCreateMLTransformRequest converts CreateMLTransformRequest to CreateMLTransformInput
func ToSDKCreateMLTransformRequest(in *glue.CreateMLTransformRequest) *gluesdk.CreateMLTransformInput {
	if in == nil {
		return &gluesdk.CreateMLTransformInput{}
	}
	return &gluesdk.CreateMLTransformInput{
		Name:              in.Name,
		Description:       in.Description,
		InputRecordTables: toSDKList(in.InputRecordTables, ToSDKGlueTable),
		Parameters:        ToSDKTransformParameters(in.Parameters),
		Role:              in.Role,
		GlueVersion:       in.GlueVersion,
		MaxCapacity:       in.MaxCapacity,
		WorkerType:        toSDKEnum[gluetypes.WorkerType](in.WorkerType),
		NumberOfWorkers:   in.NumberOfWorkers,
		Timeout:           in.Timeout,
		MaxRetries:        in.MaxRetries,
		Tags:              maps.Clone(in.Tags),
	}
}

// FromSDKCreateMLTransformOutput converts CreateMLTransformOutput to CreateMLTransformResult
func FromSDKCreateMLTransformOutput(out *gluesdk.CreateMLTransformOutput) (*glue.CreateMLTransformResult, error) {
	if out == nil {
		return &glue.CreateMLTransformResult{}, nil
	}
	return &glue.CreateMLTransformResult{TransformId: out.TransformId}, nil
}

// ToSDKGetMLTransformRequest converts GetMLTransformRequest to GetMLTransformInput
func ToSDKGetMLTransformRequest(in *glue.GetMLTransformRequest) *gluesdk.GetMLTransformInput {
	if in == nil {
		return &gluesdk.GetMLTransformInput{}
	}
	return &gluesdk.GetMLTransformInput{TransformId: in.TransformId}
}

// FromSDKGetMLTransformOutput converts GetMLTransformOutput to GetMLTransformResult
func FromSDKGetMLTransformOutput(out *gluesdk.GetMLTransformOutput) (*glue.GetMLTransformResult, error) {
	if out == nil {
		return &glue.GetMLTransformResult{}, nil
	}
	status, err := fromSDKEnum("Status", out.Status, glue.ParseTransformStatusType)
	if err != nil {
		return nil, err
	}
	workerType, err := fromSDKEnum("WorkerType", out.WorkerType, glue.ParseWorkerType)
	if err != nil {
		return nil, err
	}
	tables, err := fromSDKList(out.InputRecordTables, FromSDKGlueTable)
	if err != nil {
		return nil, err
	}
	parameters, err := FromSDKTransformParameters(out.Parameters)
	if err != nil {
		return nil, err
	}
	metrics, err := FromSDKEvaluationMetrics(out.EvaluationMetrics)
	if err != nil {
		return nil, err
	}
	schema, err := fromSDKList(out.Schema, FromSDKSchemaColumn)
	if err != nil {
		return nil, err
	}
	return &glue.GetMLTransformResult{
		TransformId:       out.TransformId,
		Name:              out.Name,
		Description:       out.Description,
		Status:            status,
		CreatedOn:         glue.FromTime(out.CreatedOn),
		LastModifiedOn:    glue.FromTime(out.LastModifiedOn),
		InputRecordTables: tables,
		Parameters:        parameters,
		EvaluationMetrics: metrics,
		LabelCount:        aws.Int32(out.LabelCount),
		Schema:            schema,
		Role:              out.Role,
		GlueVersion:       out.GlueVersion,
		MaxCapacity:       out.MaxCapacity,
		WorkerType:        workerType,
		NumberOfWorkers:   out.NumberOfWorkers,
		Timeout:           out.Timeout,
		MaxRetries:        out.MaxRetries,
	}, nil
}
