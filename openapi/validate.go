package openapi

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ParseDocument decodes raw bytes into a spec document and checks its shape.
func ParseDocument(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON in OpenAPI spec: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ValidateDocument checks that a decoded document looks like an OpenAPI or
// Swagger spec. Full schema validation is left to the gateway service, which
// rejects malformed documents during target synchronization.
func ValidateDocument(doc map[string]any) error {
	if doc == nil {
		return fmt.Errorf("OpenAPI spec is empty")
	}
	if _, ok := doc["openapi"]; ok {
		return nil
	}
	if _, ok := doc["swagger"]; ok {
		return nil
	}
	return fmt.Errorf("OpenAPI spec must contain 'openapi' or 'swagger' field")
}
