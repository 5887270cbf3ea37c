package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gurre/agentcore-gateway/apperr"
	"github.com/gurre/agentcore-gateway/gateway"
	"github.com/gurre/agentcore-gateway/openapi"
	"github.com/gurre/agentcore-gateway/target"
)

const (
	authTypeAPIKey = "api_key"

	defaultKeyParamName = "api_key"
	defaultKeyLocation  = "QUERY_PARAMETER"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "AgentCore Gateway Tools API is running",
	})
}

func (s *Server) handleToolsHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ToolsHealthResponse{
		Status:     "ready",
		AWSRegion:  s.region,
		SpecBucket: s.specBucket,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.metrics.GenerateReport())
}

func (s *Server) handleAuthSetup(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.auth.Setup(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, AuthSetupResponse{
		Status:       "success",
		UserPoolID:   cfg.UserPoolID,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		DiscoveryURL: cfg.DiscoveryURL,
		Message:      "Cognito OAuth resources are ready",
	})
}

func (s *Server) handleCreateGateway(w http.ResponseWriter, r *http.Request) {
	var req CreateGatewayRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.AuthConfig.ClientID == "" || req.AuthConfig.DiscoveryURL == "" {
		s.writeError(w, r, apperr.New(apperr.BadRequest,
			"auth_config.client_id and auth_config.discovery_url are required"))
		return
	}

	g, err := s.gateways.Create(r.Context(), gateway.CreateInput{
		Name:        req.GatewayName,
		Description: req.Description,
		Auth: &gateway.JWTAuthConfig{
			ClientID:     req.AuthConfig.ClientID,
			DiscoveryURL: req.AuthConfig.DiscoveryURL,
		},
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, gatewayToResponse(g, "success", "Gateway created"))
}

func (s *Server) handleCreateGatewayNoAuth(w http.ResponseWriter, r *http.Request) {
	var req CreateGatewayNoAuthRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := s.gateways.Create(r.Context(), gateway.CreateInput{
		Name:        req.GatewayName,
		Description: req.Description,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, gatewayToResponse(g, "success", "Gateway created without authentication"))
}

func (s *Server) handleListGateways(w http.ResponseWriter, r *http.Request) {
	gws, err := s.gateways.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := ListGatewaysResponse{Status: "success", Gateways: make([]GatewayResponse, 0, len(gws))}
	for i := range gws {
		resp.Gateways = append(resp.Gateways, gatewayToResponse(&gws[i], "", ""))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetGateway(w http.ResponseWriter, r *http.Request) {
	g, err := s.gateways.Get(r.Context(), chi.URLParam(r, "gatewayID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, gatewayToResponse(g, "success", ""))
}

func (s *Server) handleUpdateGateway(w http.ResponseWriter, r *http.Request) {
	var req UpdateGatewayRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := s.gateways.Update(r.Context(), gateway.UpdateInput{
		GatewayID:               chi.URLParam(r, "gatewayID"),
		Name:                    req.Name,
		ProtocolType:            req.ProtocolType,
		AuthorizerType:          req.AuthorizerType,
		RoleArn:                 req.RoleArn,
		Description:             req.Description,
		AuthorizerConfiguration: authorizerFromDTO(req.AuthorizerConfiguration),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, gatewayToResponse(g, "success", "Gateway updated"))
}

func (s *Server) handleDeleteGateway(w http.ResponseWriter, r *http.Request) {
	gatewayID := chi.URLParam(r, "gatewayID")
	if err := s.gateways.Delete(r.Context(), gatewayID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, GatewayResponse{
		Status:    "success",
		Message:   "Gateway deleted",
		GatewayID: gatewayID,
	})
}

func (s *Server) handleCreateTool(w http.ResponseWriter, r *http.Request) {
	var req CreateToolRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.registerTool(w, r, chi.URLParam(r, "gatewayID"), req.ToolName, req.OpenAPISpec, req.Auth)
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	gatewayID := chi.URLParam(r, "gatewayID")
	targets, err := s.targets.List(r.Context(), gatewayID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := ListToolsResponse{Status: "success", GatewayID: gatewayID, Tools: make([]ToolResponse, 0, len(targets))}
	for i := range targets {
		resp.Tools = append(resp.Tools, targetToResponse(&targets[i], gatewayID, "", ""))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTool(w http.ResponseWriter, r *http.Request) {
	gatewayID := chi.URLParam(r, "gatewayID")
	t, err := s.targets.Get(r.Context(), gatewayID, chi.URLParam(r, "targetID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, targetToResponse(t, gatewayID, "success", ""))
}

func (s *Server) handleUpdateTool(w http.ResponseWriter, r *http.Request) {
	var req UpdateToolRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	gatewayID := chi.URLParam(r, "gatewayID")

	creds := target.KeepCredentials()
	if req.CredentialProviderConfigurations != nil {
		creds = target.ReplaceCredentials(credentialsFromDTO(*req.CredentialProviderConfigurations))
	}

	t, err := s.targets.Update(r.Context(), target.UpdateInput{
		GatewayID:     gatewayID,
		TargetID:      chi.URLParam(r, "targetID"),
		Name:          req.Name,
		Configuration: configurationFromDTO(req.TargetConfiguration),
		Credentials:   creds,
		Description:   req.Description,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, targetToResponse(t, gatewayID, "success", "Tool updated"))
}

func (s *Server) handleDeleteTool(w http.ResponseWriter, r *http.Request) {
	gatewayID := chi.URLParam(r, "gatewayID")
	t, err := s.targets.Delete(r.Context(), gatewayID, chi.URLParam(r, "targetID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, targetToResponse(t, gatewayID, "success", "Tool deleted"))
}

func (s *Server) handleToolFromURL(w http.ResponseWriter, r *http.Request) {
	var req CreateToolFromURLRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.OpenAPISpecURL == "" {
		s.writeError(w, r, apperr.New(apperr.BadRequest, "openapi_spec_url is required"))
		return
	}

	raw, err := s.fetcher.Get(r.Context(), req.OpenAPISpecURL)
	if err != nil {
		s.writeError(w, r, apperr.Wrap(apperr.BadRequest, err, "failed to fetch OpenAPI spec from %q", req.OpenAPISpecURL))
		return
	}
	doc, err := openapi.ParseDocument(raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.registerTool(w, r, req.GatewayID, req.ToolName, doc, req.Auth)
}

func (s *Server) handleToolFromAPIInfo(w http.ResponseWriter, r *http.Request) {
	var req CreateToolFromAPIInfoRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := openapi.Generate(req.ToolName, openapi.APIInfo{
		Method:      req.APIInfo.Method,
		URL:         req.APIInfo.URL,
		QueryParams: req.APIInfo.QueryParams,
		Headers:     req.APIInfo.Headers,
		BodySchema:  req.APIInfo.BodySchema,
		Description: req.APIInfo.Description,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.registerTool(w, r, req.GatewayID, req.ToolName, doc, req.Auth)
}

func (s *Server) handleToolFromSpec(w http.ResponseWriter, r *http.Request) {
	var req CreateToolFromSpecRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.registerTool(w, r, req.GatewayID, req.ToolName, req.OpenAPISpec, req.Auth)
}

// registerTool is the shared pipeline behind every tool creation route:
// validate, upload the spec to S3, provision the credential provider when
// API key auth is requested, and register the target.
func (s *Server) registerTool(w http.ResponseWriter, r *http.Request, gatewayID, toolName string, doc map[string]any, auth *AuthDTO) {
	ctx := r.Context()

	if gatewayID == "" {
		s.writeError(w, r, apperr.New(apperr.BadRequest, "gateway_id is required"))
		return
	}
	if toolName == "" {
		s.writeError(w, r, apperr.New(apperr.BadRequest, "tool_name is required"))
		return
	}
	if err := validateAuth(auth); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := openapi.ValidateDocument(doc); err != nil {
		s.writeError(w, r, err)
		return
	}

	specURI, err := s.specs.Upload(ctx, doc, toolName, gatewayID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var credential *target.APIKeyCredentialRef
	if auth != nil && auth.Type == authTypeAPIKey {
		providerArn, err := s.credentials.CreateAPIKeyProvider(ctx, auth.ProviderName, auth.Config.APIKey)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		credential = &target.APIKeyCredentialRef{
			ProviderArn:   providerArn,
			ParameterName: defaultString(auth.Config.APIKeyParamName, defaultKeyParamName),
			Location:      defaultString(auth.Config.APIKeyLocation, defaultKeyLocation),
		}
	}

	t, err := s.targets.Create(ctx, target.CreateInput{
		GatewayID:  gatewayID,
		Name:       toolName,
		SpecURI:    specURI,
		Credential: credential,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := targetToResponse(t, gatewayID, "success", fmt.Sprintf("Tool %q registered", toolName))
	resp.OpenAPISpecURI = specURI
	s.writeJSON(w, http.StatusOK, resp)
}

// validateAuth rejects unsupported auth types and incomplete API key
// configurations before any AWS call is made.
func validateAuth(auth *AuthDTO) error {
	if auth == nil || auth.Type == "" || auth.Type == "none" {
		return nil
	}
	if auth.Type != authTypeAPIKey {
		return apperr.New(apperr.BadRequest, "unsupported auth type %q", auth.Type)
	}
	if auth.Config.APIKey == "" {
		return apperr.New(apperr.BadRequest, "auth.config.api_key is required for api_key auth")
	}
	if auth.ProviderName == "" {
		return apperr.New(apperr.BadRequest, "auth.provider_name is required for api_key auth")
	}
	switch auth.Config.APIKeyLocation {
	case "", "QUERY_PARAMETER", "HEADER":
	default:
		return apperr.New(apperr.BadRequest, "auth.config.api_key_location must be QUERY_PARAMETER or HEADER")
	}
	return nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
