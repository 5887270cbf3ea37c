// Package credential manages API key credential providers on the AgentCore
// control plane. Providers hold the secret injected into outbound calls to a
// target's backend.
package credential

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/apperr"
	"github.com/gurre/agentcore-gateway/aws"
)

// Service creates credential providers.
type Service struct {
	client aws.AgentCoreClient
	logger zerolog.Logger
}

// NewService creates a credential Service.
func NewService(client aws.AgentCoreClient, logger zerolog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// CreateAPIKeyProvider creates a credential provider holding the given API
// key and returns its ARN. Provider names are account-unique; a duplicate
// name is a Conflict since the stored key cannot be updated through this
// operation.
func (s *Service) CreateAPIKeyProvider(ctx context.Context, name, apiKey string) (string, error) {
	if name == "" {
		return "", apperr.New(apperr.BadRequest, "credential provider name is required")
	}
	if apiKey == "" {
		return "", apperr.New(apperr.BadRequest, "api key is required")
	}

	out, err := s.client.CreateApiKeyCredentialProvider(ctx, &bedrockagentcorecontrol.CreateApiKeyCredentialProviderInput{
		Name:   awssdk.String(name),
		ApiKey: awssdk.String(apiKey),
	})
	if err != nil {
		return "", apperr.Classify(err, "failed to create credential provider %q", name)
	}

	arn := awssdk.ToString(out.CredentialProviderArn)
	s.logger.Info().Str("provider", name).Str("arn", arn).Msg("created credential provider")
	return arn, nil
}
