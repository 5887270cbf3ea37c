package httpapi

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"

	"github.com/gurre/agentcore-gateway/gateway"
	"github.com/gurre/agentcore-gateway/target"
)

func gatewayToResponse(g *gateway.Gateway, status, message string) GatewayResponse {
	return GatewayResponse{
		Status:         status,
		Message:        message,
		GatewayID:      g.GatewayID,
		GatewayURL:     g.GatewayURL,
		GatewayArn:     g.GatewayArn,
		Name:           g.Name,
		Description:    g.Description,
		GatewayStatus:  g.Status,
		StatusReasons:  g.StatusReasons,
		AuthorizerType: g.AuthorizerType,
		ProtocolType:   g.ProtocolType,
		RoleArn:        g.RoleArn,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func targetToResponse(t *target.Target, gatewayID, status, message string) ToolResponse {
	return ToolResponse{
		Status:                           status,
		Message:                          message,
		ToolName:                         t.Name,
		TargetID:                         t.TargetID,
		GatewayID:                        gatewayID,
		GatewayArn:                       t.GatewayArn,
		Description:                      t.Description,
		TargetStatus:                     t.Status,
		StatusReasons:                    t.StatusReasons,
		CreatedAt:                        t.CreatedAt,
		UpdatedAt:                        t.UpdatedAt,
		LastSynchronizedAt:               t.LastSynchronizedAt,
		TargetConfiguration:              configurationToDTO(t.Configuration),
		CredentialProviderConfigurations: credentialsToDTO(t.Credentials),
	}
}

// configurationToDTO flattens the control plane's nested unions into plain
// structs the JSON encoder can handle.
func configurationToDTO(cfg actypes.TargetConfiguration) *TargetConfigurationDTO {
	mcp, ok := cfg.(*actypes.TargetConfigurationMemberMcp)
	if !ok {
		return nil
	}
	dto := &TargetConfigurationDTO{MCP: &MCPConfigDTO{}}
	schema, ok := mcp.Value.(*actypes.McpTargetConfigurationMemberOpenApiSchema)
	if !ok {
		return dto
	}
	switch api := schema.Value.(type) {
	case *actypes.ApiSchemaConfigurationMemberS3:
		dto.MCP.OpenAPISchema = &APISchemaDTO{S3: &S3LocationDTO{
			URI:                  aws.ToString(api.Value.Uri),
			BucketOwnerAccountID: aws.ToString(api.Value.BucketOwnerAccountId),
		}}
	case *actypes.ApiSchemaConfigurationMemberInlinePayload:
		dto.MCP.OpenAPISchema = &APISchemaDTO{InlinePayload: api.Value}
	}
	return dto
}

// configurationFromDTO rebuilds the union types from a request body. A nil
// DTO yields a nil configuration, which update handling treats as "keep".
func configurationFromDTO(dto *TargetConfigurationDTO) actypes.TargetConfiguration {
	if dto == nil || dto.MCP == nil {
		return nil
	}
	schema := dto.MCP.OpenAPISchema
	if schema == nil {
		return &actypes.TargetConfigurationMemberMcp{}
	}
	var api actypes.ApiSchemaConfiguration
	switch {
	case schema.S3 != nil:
		s3 := actypes.S3Configuration{}
		if schema.S3.URI != "" {
			s3.Uri = aws.String(schema.S3.URI)
		}
		if schema.S3.BucketOwnerAccountID != "" {
			s3.BucketOwnerAccountId = aws.String(schema.S3.BucketOwnerAccountID)
		}
		api = &actypes.ApiSchemaConfigurationMemberS3{Value: s3}
	case schema.InlinePayload != "":
		api = &actypes.ApiSchemaConfigurationMemberInlinePayload{Value: schema.InlinePayload}
	}
	return &actypes.TargetConfigurationMemberMcp{
		Value: &actypes.McpTargetConfigurationMemberOpenApiSchema{
			Value: api,
		},
	}
}

func credentialsToDTO(configs []actypes.CredentialProviderConfiguration) []CredentialProviderConfigDTO {
	if len(configs) == 0 {
		return nil
	}
	out := make([]CredentialProviderConfigDTO, 0, len(configs))
	for _, c := range configs {
		dto := CredentialProviderConfigDTO{
			CredentialProviderType: string(c.CredentialProviderType),
		}
		if apiKey, ok := c.CredentialProvider.(*actypes.CredentialProviderMemberApiKeyCredentialProvider); ok {
			dto.CredentialProvider = &CredentialProviderDTO{
				APIKeyCredentialProvider: &APIKeyCredentialProviderDTO{
					ProviderArn:             aws.ToString(apiKey.Value.ProviderArn),
					CredentialParameterName: aws.ToString(apiKey.Value.CredentialParameterName),
					CredentialLocation:      string(apiKey.Value.CredentialLocation),
					CredentialPrefix:        aws.ToString(apiKey.Value.CredentialPrefix),
				},
			}
		}
		out = append(out, dto)
	}
	return out
}

func credentialsFromDTO(dtos []CredentialProviderConfigDTO) []actypes.CredentialProviderConfiguration {
	out := make([]actypes.CredentialProviderConfiguration, 0, len(dtos))
	for _, dto := range dtos {
		cfg := actypes.CredentialProviderConfiguration{
			CredentialProviderType: actypes.CredentialProviderType(dto.CredentialProviderType),
		}
		if dto.CredentialProvider != nil && dto.CredentialProvider.APIKeyCredentialProvider != nil {
			p := dto.CredentialProvider.APIKeyCredentialProvider
			provider := actypes.GatewayApiKeyCredentialProvider{
				ProviderArn: aws.String(p.ProviderArn),
			}
			if p.CredentialParameterName != "" {
				provider.CredentialParameterName = aws.String(p.CredentialParameterName)
			}
			if p.CredentialLocation != "" {
				provider.CredentialLocation = actypes.ApiKeyCredentialLocation(p.CredentialLocation)
			}
			if p.CredentialPrefix != "" {
				provider.CredentialPrefix = aws.String(p.CredentialPrefix)
			}
			cfg.CredentialProvider = &actypes.CredentialProviderMemberApiKeyCredentialProvider{Value: provider}
		}
		out = append(out, cfg)
	}
	return out
}

func authorizerFromDTO(dto *AuthorizerConfigurationDTO) actypes.AuthorizerConfiguration {
	if dto == nil || dto.CustomJWTAuthorizer == nil {
		return nil
	}
	jwt := actypes.CustomJWTAuthorizerConfiguration{
		DiscoveryUrl:    aws.String(dto.CustomJWTAuthorizer.DiscoveryURL),
		AllowedClients:  dto.CustomJWTAuthorizer.AllowedClients,
		AllowedAudience: dto.CustomJWTAuthorizer.AllowedAudience,
	}
	return &actypes.AuthorizerConfigurationMemberCustomJWTAuthorizer{Value: jwt}
}
