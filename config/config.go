// Package config implements configuration for the gateway tools API. All
// runtime parameters are collected into an explicit struct at startup so the
// services never read ambient process state.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the API server. The zero value is not
// usable; populate the fields and call Validate before handing it to the
// services.
type Config struct {
	Region          string        // AWS region for all service clients
	ListenAddr      string        // Address the HTTP server binds to (host:port)
	SpecBucket      string        // Optional S3 bucket for spec documents; account-derived default when empty
	GatewayRoleName string        // IAM role name created or reused for gateways
	FetchTimeout    time.Duration // Timeout for downloading spec documents from URLs
	ShutdownTimeout time.Duration // Graceful shutdown timeout for the HTTP server
}

// Validate ensures all required fields are present and have valid values.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is required")
	}
	if !strings.Contains(c.ListenAddr, ":") {
		return fmt.Errorf("listen address must be host:port")
	}

	if c.GatewayRoleName == "" {
		return fmt.Errorf("gateway role name is required")
	}

	// Bucket names never carry a scheme; reject s3:// URIs early since the
	// SDK would fail with a much less helpful message.
	if strings.Contains(c.SpecBucket, "://") {
		return fmt.Errorf("spec bucket must be a bare bucket name, not a URI")
	}

	if c.FetchTimeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}

	if c.ShutdownTimeout < time.Second {
		return fmt.Errorf("shutdown timeout must be at least 1 second")
	}

	return nil
}
