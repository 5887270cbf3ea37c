// This file contains the concrete SDK-backed implementations of the service
// interfaces. Each implementation is a thin pass-through wrapper around the
// corresponding aws-sdk-go-v2 client.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// AgentCoreClientImpl implements AgentCoreClient using the AWS SDK.
type AgentCoreClientImpl struct {
	client *bedrockagentcorecontrol.Client
}

// NewAgentCoreClient creates a new AgentCoreClientImpl instance
func NewAgentCoreClient(client *bedrockagentcorecontrol.Client) *AgentCoreClientImpl {
	return &AgentCoreClientImpl{client: client}
}

func (c *AgentCoreClientImpl) CreateGateway(ctx context.Context, params *bedrockagentcorecontrol.CreateGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateGatewayOutput, error) {
	return c.client.CreateGateway(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) GetGateway(ctx context.Context, params *bedrockagentcorecontrol.GetGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetGatewayOutput, error) {
	return c.client.GetGateway(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) ListGateways(ctx context.Context, params *bedrockagentcorecontrol.ListGatewaysInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListGatewaysOutput, error) {
	return c.client.ListGateways(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) UpdateGateway(ctx context.Context, params *bedrockagentcorecontrol.UpdateGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateGatewayOutput, error) {
	return c.client.UpdateGateway(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) DeleteGateway(ctx context.Context, params *bedrockagentcorecontrol.DeleteGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.DeleteGatewayOutput, error) {
	return c.client.DeleteGateway(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) CreateGatewayTarget(ctx context.Context, params *bedrockagentcorecontrol.CreateGatewayTargetInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateGatewayTargetOutput, error) {
	return c.client.CreateGatewayTarget(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) GetGatewayTarget(ctx context.Context, params *bedrockagentcorecontrol.GetGatewayTargetInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetGatewayTargetOutput, error) {
	return c.client.GetGatewayTarget(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) ListGatewayTargets(ctx context.Context, params *bedrockagentcorecontrol.ListGatewayTargetsInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListGatewayTargetsOutput, error) {
	return c.client.ListGatewayTargets(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) UpdateGatewayTarget(ctx context.Context, params *bedrockagentcorecontrol.UpdateGatewayTargetInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateGatewayTargetOutput, error) {
	return c.client.UpdateGatewayTarget(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) DeleteGatewayTarget(ctx context.Context, params *bedrockagentcorecontrol.DeleteGatewayTargetInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.DeleteGatewayTargetOutput, error) {
	return c.client.DeleteGatewayTarget(ctx, params, optFns...)
}

func (c *AgentCoreClientImpl) CreateApiKeyCredentialProvider(ctx context.Context, params *bedrockagentcorecontrol.CreateApiKeyCredentialProviderInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateApiKeyCredentialProviderOutput, error) {
	return c.client.CreateApiKeyCredentialProvider(ctx, params, optFns...)
}

// S3ClientImpl implements S3Client using the AWS SDK.
type S3ClientImpl struct {
	client *s3.Client
}

// NewS3Client creates a new S3ClientImpl instance
func NewS3Client(client *s3.Client) *S3ClientImpl {
	return &S3ClientImpl{client: client}
}

func (c *S3ClientImpl) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	return c.client.CreateBucket(ctx, params, optFns...)
}

func (c *S3ClientImpl) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return c.client.PutObject(ctx, params, optFns...)
}

// IAMClientImpl implements IAMClient using the AWS SDK.
type IAMClientImpl struct {
	client *iam.Client
}

// NewIAMClient creates a new IAMClientImpl instance
func NewIAMClient(client *iam.Client) *IAMClientImpl {
	return &IAMClientImpl{client: client}
}

func (c *IAMClientImpl) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	return c.client.CreateRole(ctx, params, optFns...)
}

func (c *IAMClientImpl) GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	return c.client.GetRole(ctx, params, optFns...)
}

func (c *IAMClientImpl) PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error) {
	return c.client.PutRolePolicy(ctx, params, optFns...)
}

// STSClientImpl implements STSClient using the AWS SDK.
type STSClientImpl struct {
	client *sts.Client
}

// NewSTSClient creates a new STSClientImpl instance
func NewSTSClient(client *sts.Client) *STSClientImpl {
	return &STSClientImpl{client: client}
}

func (c *STSClientImpl) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return c.client.GetCallerIdentity(ctx, params, optFns...)
}

// CognitoClientImpl implements CognitoClient using the AWS SDK.
type CognitoClientImpl struct {
	client *cognitoidentityprovider.Client
}

// NewCognitoClient creates a new CognitoClientImpl instance
func NewCognitoClient(client *cognitoidentityprovider.Client) *CognitoClientImpl {
	return &CognitoClientImpl{client: client}
}

func (c *CognitoClientImpl) ListUserPools(ctx context.Context, params *cognitoidentityprovider.ListUserPoolsInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolsOutput, error) {
	return c.client.ListUserPools(ctx, params, optFns...)
}

func (c *CognitoClientImpl) CreateUserPool(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolOutput, error) {
	return c.client.CreateUserPool(ctx, params, optFns...)
}

func (c *CognitoClientImpl) ListResourceServers(ctx context.Context, params *cognitoidentityprovider.ListResourceServersInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListResourceServersOutput, error) {
	return c.client.ListResourceServers(ctx, params, optFns...)
}

func (c *CognitoClientImpl) CreateResourceServer(ctx context.Context, params *cognitoidentityprovider.CreateResourceServerInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateResourceServerOutput, error) {
	return c.client.CreateResourceServer(ctx, params, optFns...)
}

func (c *CognitoClientImpl) ListUserPoolClients(ctx context.Context, params *cognitoidentityprovider.ListUserPoolClientsInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolClientsOutput, error) {
	return c.client.ListUserPoolClients(ctx, params, optFns...)
}

func (c *CognitoClientImpl) DescribeUserPoolClient(ctx context.Context, params *cognitoidentityprovider.DescribeUserPoolClientInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.DescribeUserPoolClientOutput, error) {
	return c.client.DescribeUserPoolClient(ctx, params, optFns...)
}

func (c *CognitoClientImpl) CreateUserPoolClient(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolClientInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolClientOutput, error) {
	return c.client.CreateUserPoolClient(ctx, params, optFns...)
}
