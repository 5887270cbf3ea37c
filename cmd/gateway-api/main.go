// Package main runs the AgentCore Gateway Tools API: an HTTP server exposing
// gateway, tool, credential, and auth management over the Bedrock AgentCore
// control plane.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/aws"
	"github.com/gurre/agentcore-gateway/cognito"
	"github.com/gurre/agentcore-gateway/config"
	"github.com/gurre/agentcore-gateway/credential"
	"github.com/gurre/agentcore-gateway/fetch"
	"github.com/gurre/agentcore-gateway/gateway"
	"github.com/gurre/agentcore-gateway/httpapi"
	"github.com/gurre/agentcore-gateway/metrics"
	"github.com/gurre/agentcore-gateway/specstore"
	"github.com/gurre/agentcore-gateway/target"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("gateway-api", flag.ExitOnError)

	region := fs.String("region", os.Getenv("AWS_REGION"), "AWS region (defaults to AWS_REGION env)")
	listenAddr := fs.String("listen", ":8080", "Address for the HTTP server to listen on")
	specBucket := fs.String("spec-bucket", os.Getenv("SPEC_BUCKET"), "S3 bucket for OpenAPI documents (derived from account when empty)")
	roleName := fs.String("role-name", "agentcore-sample-gateway-role", "IAM role created for gateways")
	fetchTimeout := fs.Duration("fetch-timeout", 30*time.Second, "Timeout for fetching remote OpenAPI specs")
	shutdownTimeout := fs.Duration("shutdown-timeout", 15*time.Second, "Graceful shutdown timeout")
	debug := fs.Bool("debug", false, "Enable debug logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := &config.Config{
		Region:          *region,
		ListenAddr:      *listenAddr,
		SpecBucket:      *specBucket,
		GatewayRoleName: *roleName,
		FetchTimeout:    *fetchTimeout,
		ShutdownTimeout: *shutdownTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	agentCoreClient := aws.NewAgentCoreClient(bedrockagentcorecontrol.NewFromConfig(awsCfg))
	s3Client := aws.NewS3Client(s3.NewFromConfig(awsCfg))
	iamClient := aws.NewIAMClient(iam.NewFromConfig(awsCfg))
	stsClient := aws.NewSTSClient(sts.NewFromConfig(awsCfg))
	cognitoClient := aws.NewCognitoClient(cognitoidentityprovider.NewFromConfig(awsCfg))

	m := metrics.NewMetrics()
	server := httpapi.NewServer(httpapi.ServerConfig{
		Gateways:    gateway.NewService(agentCoreClient, iamClient, cfg.GatewayRoleName, logger),
		Targets:     target.NewService(agentCoreClient, logger),
		Credentials: credential.NewService(agentCoreClient, logger),
		Specs:       specstore.NewStore(s3Client, stsClient, cfg.Region, cfg.SpecBucket, logger),
		Auth:        cognito.NewService(cognitoClient, cfg.Region, logger),
		Fetcher:     fetch.NewFetcher(cfg.FetchTimeout),
		Metrics:     m,
		Region:      cfg.Region,
		SpecBucket:  cfg.SpecBucket,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Str("region", cfg.Region).Msg("starting server")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
