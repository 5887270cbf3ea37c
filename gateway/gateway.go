// Package gateway manages AgentCore gateways: the IAM role they assume, the
// create/get/list/update/delete lifecycle, and the Cognito JWT authorizer
// wiring. All state lives in the AgentCore control plane; this service only
// translates between request structs and SDK calls.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/apperr"
	"github.com/gurre/agentcore-gateway/aws"
)

// assumeRolePolicy lets the AgentCore service assume the gateway role.
const assumeRolePolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"Service": "bedrock-agentcore.amazonaws.com"},
      "Action": "sts:AssumeRole"
    }
  ]
}`

// rolePolicy grants the gateway access to targets, spec objects, and
// credential lookups. Broad on purpose for a sample deployment; narrow it
// for production.
const rolePolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Action": [
        "bedrock-agentcore-control:*",
        "s3:GetObject",
        "s3:PutObject",
        "s3:ListBucket",
        "iam:PassRole",
        "cognito-idp:*",
        "sts:GetCallerIdentity"
      ],
      "Resource": "*"
    },
    {
      "Effect": "Allow",
      "Action": [
        "bedrock-agentcore:GetWorkloadAccessToken",
        "bedrock-agentcore:InvokeCredentialProvider",
        "bedrock-agentcore:GetResourceApiKey"
      ],
      "Resource": "*"
    },
    {
      "Effect": "Allow",
      "Action": ["secretsmanager:GetSecretValue"],
      "Resource": "*"
    }
  ]
}`

// Gateway is the transport-safe representation of a gateway assembled from
// the control plane's responses.
type Gateway struct {
	GatewayID               string
	GatewayURL              string
	GatewayArn              string
	Name                    string
	Description             string
	Status                  string
	StatusReasons           []string
	AuthorizerType          string
	ProtocolType            string
	RoleArn                 string
	CreatedAt               *time.Time
	UpdatedAt               *time.Time
	AuthorizerConfiguration actypes.AuthorizerConfiguration
}

// JWTAuthConfig carries the Cognito-issued values needed for a CUSTOM_JWT
// authorizer.
type JWTAuthConfig struct {
	ClientID     string
	DiscoveryURL string
}

// CreateInput describes a gateway to create. Auth nil means the gateway is
// created with no authorizer.
type CreateInput struct {
	Name        string
	Description string
	Auth        *JWTAuthConfig
}

// UpdateInput describes a full gateway update. Name, protocol, authorizer
// type, and role ARN are required by the control plane even when unchanged.
type UpdateInput struct {
	GatewayID               string
	Name                    string
	ProtocolType            string
	AuthorizerType          string
	RoleArn                 string
	Description             string
	AuthorizerConfiguration actypes.AuthorizerConfiguration
}

// Service manages gateways and their IAM role.
type Service struct {
	client   aws.AgentCoreClient
	iam      aws.IAMClient
	roleName string
	logger   zerolog.Logger
}

// NewService creates a gateway Service using roleName for the IAM role
// created or reused for every gateway.
func NewService(client aws.AgentCoreClient, iamClient aws.IAMClient, roleName string, logger zerolog.Logger) *Service {
	return &Service{client: client, iam: iamClient, roleName: roleName, logger: logger}
}

// EnsureRole creates the gateway IAM role or reuses an existing one with the
// same name, then attaches the inline management policy. A policy attach
// failure on an existing role is logged and tolerated so repeated setups
// stay idempotent.
func (s *Service) EnsureRole(ctx context.Context) (string, error) {
	var roleArn string

	out, err := s.iam.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 awssdk.String(s.roleName),
		AssumeRolePolicyDocument: awssdk.String(assumeRolePolicy),
		Description:              awssdk.String("Role for Bedrock AgentCore Gateway"),
	})
	if err != nil {
		var exists *iamtypes.EntityAlreadyExistsException
		if !errors.As(err, &exists) {
			return "", fmt.Errorf("failed to create gateway role %s: %w", s.roleName, err)
		}
		got, err := s.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: awssdk.String(s.roleName)})
		if err != nil {
			return "", fmt.Errorf("failed to look up existing gateway role %s: %w", s.roleName, err)
		}
		roleArn = awssdk.ToString(got.Role.Arn)
	} else {
		roleArn = awssdk.ToString(out.Role.Arn)
	}

	_, err = s.iam.PutRolePolicy(ctx, &iam.PutRolePolicyInput{
		RoleName:       awssdk.String(s.roleName),
		PolicyName:     awssdk.String(s.roleName + "-inline-policy"),
		PolicyDocument: awssdk.String(rolePolicy),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("role", s.roleName).Msg("failed to attach inline policy")
	}

	return roleArn, nil
}

// Create provisions the IAM role and creates a gateway. When the name is
// already taken the existing gateway is retrieved by listing, so setup stays
// idempotent across restarts.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Gateway, error) {
	if in.Name == "" {
		return nil, apperr.New(apperr.BadRequest, "gateway name is required")
	}
	if in.Auth != nil && (in.Auth.ClientID == "" || in.Auth.DiscoveryURL == "") {
		return nil, apperr.New(apperr.BadRequest, "auth config requires client_id and discovery_url")
	}

	roleArn, err := s.EnsureRole(ctx)
	if err != nil {
		return nil, err
	}

	input := &bedrockagentcorecontrol.CreateGatewayInput{
		Name:         awssdk.String(in.Name),
		RoleArn:      awssdk.String(roleArn),
		ProtocolType: actypes.GatewayProtocolTypeMcp,
	}
	if in.Auth != nil {
		input.AuthorizerType = actypes.AuthorizerTypeCustomJwt
		input.AuthorizerConfiguration = &actypes.AuthorizerConfigurationMemberCustomJWTAuthorizer{
			Value: actypes.CustomJWTAuthorizerConfiguration{
				AllowedClients: []string{in.Auth.ClientID},
				DiscoveryUrl:   awssdk.String(in.Auth.DiscoveryURL),
			},
		}
		input.Description = awssdk.String(defaultString(in.Description, "AgentCore Gateway with OpenAPI targets"))
	} else {
		input.AuthorizerType = actypes.AuthorizerTypeNone
		input.Description = awssdk.String(defaultString(in.Description, "AgentCore Gateway without authentication"))
	}

	out, err := s.client.CreateGateway(ctx, input)
	if err != nil {
		var conflict *actypes.ConflictException
		if errors.As(err, &conflict) {
			s.logger.Info().Str("gateway", in.Name).Msg("gateway name exists, retrieving existing gateway")
			return s.findByName(ctx, in.Name)
		}
		return nil, apperr.Classify(err, "failed to create gateway %q", in.Name)
	}

	gw := fromCreateOutput(out)
	if gw.GatewayID == "" || gw.GatewayURL == "" {
		return nil, fmt.Errorf("invalid gateway response for %q: missing id or url", in.Name)
	}

	s.logger.Info().Str("gatewayId", gw.GatewayID).Str("url", gw.GatewayURL).Msg("created gateway")
	return gw, nil
}

// Get retrieves a gateway by id.
func (s *Service) Get(ctx context.Context, gatewayID string) (*Gateway, error) {
	out, err := s.client.GetGateway(ctx, &bedrockagentcorecontrol.GetGatewayInput{
		GatewayIdentifier: awssdk.String(gatewayID),
	})
	if err != nil {
		return nil, apperr.Classify(err, "failed to get gateway %q", gatewayID)
	}
	return fromGetOutput(out), nil
}

// List returns all gateways in the account, following pagination.
func (s *Service) List(ctx context.Context) ([]Gateway, error) {
	var gateways []Gateway
	var nextToken *string
	for {
		out, err := s.client.ListGateways(ctx, &bedrockagentcorecontrol.ListGatewaysInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, apperr.Classify(err, "failed to list gateways")
		}
		for _, item := range out.Items {
			gateways = append(gateways, *fromSummary(item))
		}
		if out.NextToken == nil {
			return gateways, nil
		}
		nextToken = out.NextToken
	}
}

// Update performs a full-replace gateway update.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*Gateway, error) {
	if in.Name == "" {
		return nil, apperr.New(apperr.BadRequest, "gateway name is required")
	}

	input := &bedrockagentcorecontrol.UpdateGatewayInput{
		GatewayIdentifier:       awssdk.String(in.GatewayID),
		Name:                    awssdk.String(in.Name),
		ProtocolType:            actypes.GatewayProtocolType(in.ProtocolType),
		AuthorizerType:          actypes.AuthorizerType(in.AuthorizerType),
		RoleArn:                 awssdk.String(in.RoleArn),
		AuthorizerConfiguration: in.AuthorizerConfiguration,
	}
	if in.Description != "" {
		input.Description = awssdk.String(in.Description)
	}

	out, err := s.client.UpdateGateway(ctx, input)
	if err != nil {
		return nil, apperr.Classify(err, "failed to update gateway %q", in.GatewayID)
	}

	gw := fromUpdateOutput(out)
	s.logger.Info().Str("gatewayId", gw.GatewayID).Str("status", gw.Status).Msg("updated gateway")
	return gw, nil
}

// Delete removes a gateway. Its targets must be deleted first; the control
// plane rejects deletion of a gateway that still has targets.
func (s *Service) Delete(ctx context.Context, gatewayID string) error {
	_, err := s.client.DeleteGateway(ctx, &bedrockagentcorecontrol.DeleteGatewayInput{
		GatewayIdentifier: awssdk.String(gatewayID),
	})
	if err != nil {
		return apperr.Classify(err, "failed to delete gateway %q", gatewayID)
	}
	s.logger.Info().Str("gatewayId", gatewayID).Msg("deleted gateway")
	return nil
}

// findByName resolves a gateway by listing; used for the create conflict
// fallback. The summary lacks the gateway URL so the full record is fetched
// afterwards.
func (s *Service) findByName(ctx context.Context, name string) (*Gateway, error) {
	gateways, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, gw := range gateways {
		if gw.Name == name {
			return s.Get(ctx, gw.GatewayID)
		}
	}
	return nil, apperr.New(apperr.Conflict, "gateway %q conflicts but was not found in list", name)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func fromCreateOutput(out *bedrockagentcorecontrol.CreateGatewayOutput) *Gateway {
	return &Gateway{
		GatewayID:               awssdk.ToString(out.GatewayId),
		GatewayURL:              awssdk.ToString(out.GatewayUrl),
		GatewayArn:              awssdk.ToString(out.GatewayArn),
		Name:                    awssdk.ToString(out.Name),
		Description:             awssdk.ToString(out.Description),
		Status:                  string(out.Status),
		StatusReasons:           out.StatusReasons,
		AuthorizerType:          string(out.AuthorizerType),
		ProtocolType:            string(out.ProtocolType),
		RoleArn:                 awssdk.ToString(out.RoleArn),
		CreatedAt:               out.CreatedAt,
		UpdatedAt:               out.UpdatedAt,
		AuthorizerConfiguration: out.AuthorizerConfiguration,
	}
}

func fromGetOutput(out *bedrockagentcorecontrol.GetGatewayOutput) *Gateway {
	return &Gateway{
		GatewayID:               awssdk.ToString(out.GatewayId),
		GatewayURL:              awssdk.ToString(out.GatewayUrl),
		GatewayArn:              awssdk.ToString(out.GatewayArn),
		Name:                    awssdk.ToString(out.Name),
		Description:             awssdk.ToString(out.Description),
		Status:                  string(out.Status),
		StatusReasons:           out.StatusReasons,
		AuthorizerType:          string(out.AuthorizerType),
		ProtocolType:            string(out.ProtocolType),
		RoleArn:                 awssdk.ToString(out.RoleArn),
		CreatedAt:               out.CreatedAt,
		UpdatedAt:               out.UpdatedAt,
		AuthorizerConfiguration: out.AuthorizerConfiguration,
	}
}

func fromUpdateOutput(out *bedrockagentcorecontrol.UpdateGatewayOutput) *Gateway {
	return &Gateway{
		GatewayID:               awssdk.ToString(out.GatewayId),
		GatewayURL:              awssdk.ToString(out.GatewayUrl),
		GatewayArn:              awssdk.ToString(out.GatewayArn),
		Name:                    awssdk.ToString(out.Name),
		Description:             awssdk.ToString(out.Description),
		Status:                  string(out.Status),
		StatusReasons:           out.StatusReasons,
		AuthorizerType:          string(out.AuthorizerType),
		ProtocolType:            string(out.ProtocolType),
		RoleArn:                 awssdk.ToString(out.RoleArn),
		CreatedAt:               out.CreatedAt,
		UpdatedAt:               out.UpdatedAt,
		AuthorizerConfiguration: out.AuthorizerConfiguration,
	}
}

func fromSummary(item actypes.GatewaySummary) *Gateway {
	return &Gateway{
		GatewayID:      awssdk.ToString(item.GatewayId),
		Name:           awssdk.ToString(item.Name),
		Description:    awssdk.ToString(item.Description),
		Status:         string(item.Status),
		AuthorizerType: string(item.AuthorizerType),
		ProtocolType:   string(item.ProtocolType),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
