// Package cognito provisions the Cognito authentication infrastructure a
// JWT-authorized gateway needs: a user pool, a resource server with gateway
// scopes, and a machine-to-machine client using the client-credentials flow.
// Setup is idempotent; existing resources with the expected names are reused.
package cognito

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/aws"
)

const (
	userPoolName       = "sample-agentcore-gateway-pool"
	resourceServerID   = "sample-agentcore-gateway-id"
	resourceServerName = "sample-agentcore-gateway-name"
	clientName         = "sample-agentcore-gateway-client"

	listPageSize = 60
)

// AuthConfig is everything a gateway needs for a CUSTOM_JWT authorizer plus
// what a caller needs to obtain tokens. ClientSecret is returned exactly
// once by setup and never logged.
type AuthConfig struct {
	UserPoolID   string
	ClientID     string
	ClientSecret string
	DiscoveryURL string
}

// Service provisions Cognito resources.
type Service struct {
	client aws.CognitoClient
	region string
	logger zerolog.Logger
}

// NewService creates a cognito Service.
func NewService(client aws.CognitoClient, region string, logger zerolog.Logger) *Service {
	return &Service{client: client, region: region, logger: logger}
}

// Setup creates or reuses the user pool, resource server, and M2M client,
// and returns the resulting auth configuration.
func (s *Service) Setup(ctx context.Context) (*AuthConfig, error) {
	poolID, err := s.ensureUserPool(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureResourceServer(ctx, poolID); err != nil {
		return nil, err
	}

	clientID, clientSecret, err := s.ensureClient(ctx, poolID)
	if err != nil {
		return nil, err
	}

	cfg := &AuthConfig{
		UserPoolID:   poolID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		DiscoveryURL: fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s/.well-known/openid-configuration", s.region, poolID),
	}

	s.logger.Info().Str("userPoolId", poolID).Str("clientId", clientID).Msg("cognito auth infrastructure ready")
	return cfg, nil
}

func (s *Service) ensureUserPool(ctx context.Context) (string, error) {
	pools, err := s.client.ListUserPools(ctx, &cognitoidentityprovider.ListUserPoolsInput{
		MaxResults: awssdk.Int32(listPageSize),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list user pools: %w", err)
	}
	for _, p := range pools.UserPools {
		if awssdk.ToString(p.Name) == userPoolName {
			return awssdk.ToString(p.Id), nil
		}
	}

	out, err := s.client.CreateUserPool(ctx, &cognitoidentityprovider.CreateUserPoolInput{
		PoolName: awssdk.String(userPoolName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create user pool: %w", err)
	}
	return awssdk.ToString(out.UserPool.Id), nil
}

func (s *Service) ensureResourceServer(ctx context.Context, poolID string) error {
	existing, err := s.client.ListResourceServers(ctx, &cognitoidentityprovider.ListResourceServersInput{
		UserPoolId: awssdk.String(poolID),
		MaxResults: awssdk.Int32(listPageSize),
	})
	if err == nil {
		for _, rs := range existing.ResourceServers {
			if awssdk.ToString(rs.Identifier) == resourceServerID {
				return nil
			}
		}
	}

	_, err = s.client.CreateResourceServer(ctx, &cognitoidentityprovider.CreateResourceServerInput{
		UserPoolId: awssdk.String(poolID),
		Identifier: awssdk.String(resourceServerID),
		Name:       awssdk.String(resourceServerName),
		Scopes: []cognitotypes.ResourceServerScopeType{
			{ScopeName: awssdk.String("gateway:read"), ScopeDescription: awssdk.String("Read access")},
			{ScopeName: awssdk.String("gateway:write"), ScopeDescription: awssdk.String("Write access")},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create resource server: %w", err)
	}
	return nil
}

func (s *Service) ensureClient(ctx context.Context, poolID string) (string, string, error) {
	clients, err := s.client.ListUserPoolClients(ctx, &cognitoidentityprovider.ListUserPoolClientsInput{
		UserPoolId: awssdk.String(poolID),
		MaxResults: awssdk.Int32(listPageSize),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to list user pool clients: %w", err)
	}
	for _, c := range clients.UserPoolClients {
		if awssdk.ToString(c.ClientName) != clientName {
			continue
		}
		// The list response omits the secret; describe the client for it.
		desc, err := s.client.DescribeUserPoolClient(ctx, &cognitoidentityprovider.DescribeUserPoolClientInput{
			UserPoolId: awssdk.String(poolID),
			ClientId:   c.ClientId,
		})
		if err != nil {
			return "", "", fmt.Errorf("failed to describe user pool client: %w", err)
		}
		return awssdk.ToString(c.ClientId), awssdk.ToString(desc.UserPoolClient.ClientSecret), nil
	}

	out, err := s.client.CreateUserPoolClient(ctx, &cognitoidentityprovider.CreateUserPoolClientInput{
		UserPoolId:     awssdk.String(poolID),
		ClientName:     awssdk.String(clientName),
		GenerateSecret: true,
		AllowedOAuthFlows: []cognitotypes.OAuthFlowType{
			cognitotypes.OAuthFlowTypeClientCredentials,
		},
		AllowedOAuthScopes: []string{
			resourceServerID + "/gateway:read",
			resourceServerID + "/gateway:write",
		},
		AllowedOAuthFlowsUserPoolClient: true,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to create user pool client: %w", err)
	}
	return awssdk.ToString(out.UserPoolClient.ClientId), awssdk.ToString(out.UserPoolClient.ClientSecret), nil
}
