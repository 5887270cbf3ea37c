// Package httpapi is the REST surface of the gateway tools API: a chi
// router, JSON DTOs, and the mapping between service errors and HTTP
// statuses. Request and response bodies use snake_case keys; structures
// passed through from the control plane keep its camelCase field names.
package httpapi

import "time"

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// AuthConfigDTO configures how an API key is injected into backend calls.
type AuthConfigDTO struct {
	APIKey          string `json:"api_key,omitempty"`
	APIKeyParamName string `json:"api_key_param_name,omitempty"`
	APIKeyLocation  string `json:"api_key_location,omitempty"`
}

// AuthDTO describes the credential setup for a tool's backend.
type AuthDTO struct {
	Type         string        `json:"type"`
	ProviderName string        `json:"provider_name,omitempty"`
	Config       AuthConfigDTO `json:"config"`
}

// CognitoAuthConfigDTO carries the Cognito values for a JWT-authorized
// gateway.
type CognitoAuthConfigDTO struct {
	UserPoolID   string `json:"user_pool_id"`
	ClientID     string `json:"client_id"`
	DiscoveryURL string `json:"discovery_url"`
}

// CreateGatewayRequest creates a gateway with JWT authentication.
type CreateGatewayRequest struct {
	GatewayName string               `json:"gateway_name"`
	Description string               `json:"description,omitempty"`
	AuthConfig  CognitoAuthConfigDTO `json:"auth_config"`
}

// CreateGatewayNoAuthRequest creates a gateway without authentication.
type CreateGatewayNoAuthRequest struct {
	GatewayName string `json:"gateway_name"`
	Description string `json:"description,omitempty"`
}

// CustomJWTAuthorizerDTO mirrors the control plane's JWT authorizer
// configuration.
type CustomJWTAuthorizerDTO struct {
	AllowedClients  []string `json:"allowedClients,omitempty"`
	AllowedAudience []string `json:"allowedAudience,omitempty"`
	DiscoveryURL    string   `json:"discoveryUrl,omitempty"`
}

// AuthorizerConfigurationDTO mirrors the control plane's authorizer
// configuration union.
type AuthorizerConfigurationDTO struct {
	CustomJWTAuthorizer *CustomJWTAuthorizerDTO `json:"customJWTAuthorizer,omitempty"`
}

// UpdateGatewayRequest performs a full gateway update. The control plane
// requires name, protocol type, authorizer type, and role ARN even when
// unchanged.
type UpdateGatewayRequest struct {
	Name                    string                      `json:"name"`
	ProtocolType            string                      `json:"protocol_type"`
	AuthorizerType          string                      `json:"authorizer_type"`
	RoleArn                 string                      `json:"role_arn"`
	Description             string                      `json:"description,omitempty"`
	AuthorizerConfiguration *AuthorizerConfigurationDTO `json:"authorizer_configuration,omitempty"`
}

// GatewayResponse is the response shape for all gateway operations.
type GatewayResponse struct {
	Status         string     `json:"status"`
	Message        string     `json:"message,omitempty"`
	GatewayID      string     `json:"gateway_id,omitempty"`
	GatewayURL     string     `json:"gateway_url,omitempty"`
	GatewayArn     string     `json:"gateway_arn,omitempty"`
	Name           string     `json:"name,omitempty"`
	Description    string     `json:"description,omitempty"`
	GatewayStatus  string     `json:"gateway_status,omitempty"`
	StatusReasons  []string   `json:"status_reasons,omitempty"`
	AuthorizerType string     `json:"authorizer_type,omitempty"`
	ProtocolType   string     `json:"protocol_type,omitempty"`
	RoleArn        string     `json:"role_arn,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// ListGatewaysResponse wraps the gateway collection.
type ListGatewaysResponse struct {
	Status   string            `json:"status"`
	Gateways []GatewayResponse `json:"gateways"`
}

// S3LocationDTO mirrors the control plane's S3 spec location.
type S3LocationDTO struct {
	URI                  string `json:"uri"`
	BucketOwnerAccountID string `json:"bucketOwnerAccountId,omitempty"`
}

// APISchemaDTO mirrors the control plane's API schema source union.
type APISchemaDTO struct {
	S3            *S3LocationDTO `json:"s3,omitempty"`
	InlinePayload string         `json:"inlinePayload,omitempty"`
}

// MCPConfigDTO mirrors the control plane's MCP target configuration union.
type MCPConfigDTO struct {
	OpenAPISchema *APISchemaDTO `json:"openApiSchema,omitempty"`
}

// TargetConfigurationDTO mirrors the control plane's target configuration
// union.
type TargetConfigurationDTO struct {
	MCP *MCPConfigDTO `json:"mcp,omitempty"`
}

// APIKeyCredentialProviderDTO mirrors the control plane's API key credential
// provider descriptor.
type APIKeyCredentialProviderDTO struct {
	ProviderArn             string `json:"providerArn"`
	CredentialParameterName string `json:"credentialParameterName,omitempty"`
	CredentialLocation      string `json:"credentialLocation,omitempty"`
	CredentialPrefix        string `json:"credentialPrefix,omitempty"`
}

// CredentialProviderDTO mirrors the control plane's credential provider
// union.
type CredentialProviderDTO struct {
	APIKeyCredentialProvider *APIKeyCredentialProviderDTO `json:"apiKeyCredentialProvider,omitempty"`
}

// CredentialProviderConfigDTO mirrors one entry of the control plane's
// credential provider configuration list.
type CredentialProviderConfigDTO struct {
	CredentialProviderType string                 `json:"credentialProviderType"`
	CredentialProvider     *CredentialProviderDTO `json:"credentialProvider,omitempty"`
}

// CreateToolRequest registers a tool from an inline spec document on the
// gateway named in the URL path.
type CreateToolRequest struct {
	ToolName    string         `json:"tool_name"`
	OpenAPISpec map[string]any `json:"openapi_spec"`
	Auth        *AuthDTO       `json:"auth,omitempty"`
	Description string         `json:"description,omitempty"`
}

// CreateToolFromURLRequest registers a tool from a spec document fetched
// from a URL.
type CreateToolFromURLRequest struct {
	GatewayID      string   `json:"gateway_id"`
	ToolName       string   `json:"tool_name"`
	OpenAPISpecURL string   `json:"openapi_spec_url"`
	Auth           *AuthDTO `json:"auth,omitempty"`
}

// APIInfoDTO describes one HTTP operation for spec generation.
type APIInfoDTO struct {
	Method      string         `json:"method"`
	URL         string         `json:"url"`
	QueryParams map[string]any `json:"query_params,omitempty"`
	Headers     map[string]any `json:"headers,omitempty"`
	BodySchema  map[string]any `json:"body_schema,omitempty"`
	Description string         `json:"description,omitempty"`
}

// CreateToolFromAPIInfoRequest registers a tool from minimal API info.
type CreateToolFromAPIInfoRequest struct {
	GatewayID string     `json:"gateway_id"`
	ToolName  string     `json:"tool_name"`
	APIInfo   APIInfoDTO `json:"api_info"`
	Auth      *AuthDTO   `json:"auth,omitempty"`
}

// CreateToolFromSpecRequest registers a tool from an inline spec document.
type CreateToolFromSpecRequest struct {
	GatewayID   string         `json:"gateway_id"`
	ToolName    string         `json:"tool_name"`
	OpenAPISpec map[string]any `json:"openapi_spec"`
	Auth        *AuthDTO       `json:"auth,omitempty"`
}

// UpdateToolRequest is a partial target update. A nil TargetConfiguration
// or CredentialProviderConfigurations means "keep the current value"; an
// explicitly empty credential list means "remove all credentials". The
// pointer-to-slice is what distinguishes the two on the wire.
type UpdateToolRequest struct {
	Name                             string                         `json:"name"`
	Description                      *string                        `json:"description,omitempty"`
	TargetConfiguration              *TargetConfigurationDTO        `json:"target_configuration,omitempty"`
	CredentialProviderConfigurations *[]CredentialProviderConfigDTO `json:"credential_provider_configurations,omitempty"`
}

// ToolResponse is the response shape for tool operations.
type ToolResponse struct {
	Status                           string                        `json:"status"`
	ToolName                         string                        `json:"tool_name,omitempty"`
	TargetID                         string                        `json:"target_id,omitempty"`
	GatewayID                        string                        `json:"gateway_id,omitempty"`
	GatewayArn                       string                        `json:"gateway_arn,omitempty"`
	OpenAPISpecURI                   string                        `json:"openapi_spec_uri,omitempty"`
	Message                          string                        `json:"message,omitempty"`
	Description                      string                        `json:"description,omitempty"`
	TargetStatus                     string                        `json:"target_status,omitempty"`
	StatusReasons                    []string                      `json:"status_reasons,omitempty"`
	CreatedAt                        *time.Time                    `json:"created_at,omitempty"`
	UpdatedAt                        *time.Time                    `json:"updated_at,omitempty"`
	LastSynchronizedAt               *time.Time                    `json:"last_synchronized_at,omitempty"`
	TargetConfiguration              *TargetConfigurationDTO       `json:"target_configuration,omitempty"`
	CredentialProviderConfigurations []CredentialProviderConfigDTO `json:"credential_provider_configurations,omitempty"`
}

// ListToolsResponse wraps the tool collection for a gateway.
type ListToolsResponse struct {
	Status    string         `json:"status"`
	GatewayID string         `json:"gateway_id"`
	Tools     []ToolResponse `json:"tools"`
}

// AuthSetupResponse is returned by the Cognito setup endpoint. The client
// secret appears here once; it is never logged.
type AuthSetupResponse struct {
	Status       string `json:"status"`
	UserPoolID   string `json:"user_pool_id"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret,omitempty"`
	DiscoveryURL string `json:"discovery_url"`
	Message      string `json:"message"`
}

// ToolsHealthResponse reports readiness of the tool management surface.
type ToolsHealthResponse struct {
	Status     string `json:"status"`
	AWSRegion  string `json:"aws_region"`
	SpecBucket string `json:"spec_bucket,omitempty"`
}
