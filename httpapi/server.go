package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/cognito"
	"github.com/gurre/agentcore-gateway/gateway"
	"github.com/gurre/agentcore-gateway/metrics"
	"github.com/gurre/agentcore-gateway/target"
)

// GatewayService is the gateway lifecycle surface the handlers need.
type GatewayService interface {
	Create(ctx context.Context, in gateway.CreateInput) (*gateway.Gateway, error)
	Get(ctx context.Context, gatewayID string) (*gateway.Gateway, error)
	List(ctx context.Context) ([]gateway.Gateway, error)
	Update(ctx context.Context, in gateway.UpdateInput) (*gateway.Gateway, error)
	Delete(ctx context.Context, gatewayID string) error
}

// TargetService is the target lifecycle surface the handlers need.
type TargetService interface {
	Create(ctx context.Context, in target.CreateInput) (*target.Target, error)
	Get(ctx context.Context, gatewayID, targetID string) (*target.Target, error)
	List(ctx context.Context, gatewayID string) ([]target.Target, error)
	Update(ctx context.Context, in target.UpdateInput) (*target.Target, error)
	Delete(ctx context.Context, gatewayID, targetID string) (*target.Target, error)
}

// CredentialService creates API key credential providers.
type CredentialService interface {
	CreateAPIKeyProvider(ctx context.Context, name, apiKey string) (string, error)
}

// SpecStore persists OpenAPI documents and returns their s3:// URI.
type SpecStore interface {
	Upload(ctx context.Context, doc map[string]any, toolName, gatewayID string) (string, error)
}

// CognitoService provisions the OAuth resources for JWT-authorized gateways.
type CognitoService interface {
	Setup(ctx context.Context) (*cognito.AuthConfig, error)
}

// SpecFetcher retrieves OpenAPI documents over HTTP.
type SpecFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Server wires the services into HTTP handlers.
type Server struct {
	gateways    GatewayService
	targets     TargetService
	credentials CredentialService
	specs       SpecStore
	auth        CognitoService
	fetcher     SpecFetcher
	metrics     *metrics.Metrics
	region      string
	specBucket  string
	logger      zerolog.Logger
}

// ServerConfig collects the dependencies of a Server.
type ServerConfig struct {
	Gateways    GatewayService
	Targets     TargetService
	Credentials CredentialService
	Specs       SpecStore
	Auth        CognitoService
	Fetcher     SpecFetcher
	Metrics     *metrics.Metrics
	Region      string
	SpecBucket  string
	Logger      zerolog.Logger
}

// NewServer creates a Server from its dependencies.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		gateways:    cfg.Gateways,
		targets:     cfg.Targets,
		credentials: cfg.Credentials,
		specs:       cfg.Specs,
		auth:        cfg.Auth,
		fetcher:     cfg.Fetcher,
		metrics:     cfg.Metrics,
		region:      cfg.Region,
		specBucket:  cfg.SpecBucket,
		logger:      cfg.Logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.instrument)

	r.Get("/", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Post("/auth/setup", s.handleAuthSetup)

	r.Route("/gateways", func(r chi.Router) {
		r.Post("/", s.handleCreateGateway)
		r.Post("/no-auth", s.handleCreateGatewayNoAuth)
		r.Get("/", s.handleListGateways)
		r.Route("/{gatewayID}", func(r chi.Router) {
			r.Get("/", s.handleGetGateway)
			r.Put("/", s.handleUpdateGateway)
			r.Delete("/", s.handleDeleteGateway)
			r.Route("/tools", func(r chi.Router) {
				r.Post("/", s.handleCreateTool)
				r.Get("/", s.handleListTools)
				r.Get("/{targetID}", s.handleGetTool)
				r.Put("/{targetID}", s.handleUpdateTool)
				r.Delete("/{targetID}", s.handleDeleteTool)
			})
		})
	})

	r.Route("/tools", func(r chi.Router) {
		r.Get("/health", s.handleToolsHealth)
		r.Post("/from-url", s.handleToolFromURL)
		r.Post("/from-api-info", s.handleToolFromAPIInfo)
		r.Post("/from-spec", s.handleToolFromSpec)
	})

	return r
}
