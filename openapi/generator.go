// Package openapi generates OpenAPI 3.0 documents from minimal API
// information and validates documents supplied by callers before they are
// stored and registered as gateway targets.
package openapi

import (
	"fmt"
	"net/url"
	"strings"
)

// APIInfo describes a single HTTP operation in enough detail to generate a
// spec document for it. QueryParams, Headers, and BodySchema are JSON Schema
// objects.
type APIInfo struct {
	Method      string
	URL         string
	QueryParams map[string]any
	Headers     map[string]any
	BodySchema  map[string]any
	Description string
}

// Generate builds a valid OpenAPI 3.0.3 document for the given tool from
// minimal API information. The operation ID is derived from the tool name
// and the URL path so generated tools stay distinguishable on the gateway.
func Generate(toolName string, info APIInfo) (map[string]any, error) {
	if info.Method == "" {
		return nil, fmt.Errorf("method is required")
	}

	baseURL, path, err := splitURL(info.URL)
	if err != nil {
		return nil, err
	}
	method := strings.ToLower(info.Method)

	operationID := toolName + "__root"
	if pathPart := strings.ReplaceAll(strings.Trim(path, "/"), "/", "_"); pathPart != "" {
		operationID = toolName + "__" + toCamelCase(pathPart)
	}

	summary := info.Description
	if summary == "" {
		summary = fmt.Sprintf("%s %s", strings.ToUpper(info.Method), path)
	}

	operation := map[string]any{
		"summary":     summary,
		"operationId": operationID,
		"responses": map[string]any{
			"200": map[string]any{
				"description": "Successful response",
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{"type": "object"},
					},
				},
			},
		},
	}

	var parameters []map[string]any
	parameters = append(parameters, schemaToParameters(info.QueryParams, "query")...)
	parameters = append(parameters, schemaToParameters(info.Headers, "header")...)
	if len(parameters) > 0 {
		operation["parameters"] = parameters
	}

	if info.Description != "" {
		operation["description"] = info.Description
	}

	if info.BodySchema != nil && (method == "post" || method == "put" || method == "patch") {
		operation["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{"schema": info.BodySchema},
			},
		}
	}

	description := info.Description
	if description == "" {
		description = "API spec for " + toolName
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       toolName,
			"description": description,
			"version":     "1.0.0",
		},
		"servers": []map[string]any{{"url": baseURL}},
		"paths": map[string]any{
			path: map[string]any{method: operation},
		},
	}, nil
}

// splitURL separates a full URL into its base (scheme://host) and path.
func splitURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("URL %q must include scheme and host", raw)
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return u.Scheme + "://" + u.Host, path, nil
}

// toCamelCase converts snake_case or kebab-case to camelCase.
func toCamelCase(s string) string {
	parts := strings.Split(strings.ReplaceAll(s, "-", "_"), "_")
	out := strings.ToLower(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		out += strings.ToUpper(p[:1]) + p[1:]
	}
	return out
}

// schemaToParameters converts a JSON Schema object's properties into OpenAPI
// parameter objects for the given location ("query" or "header").
func schemaToParameters(schema map[string]any, location string) []map[string]any {
	if schema == nil {
		return nil
	}

	properties, _ := schema["properties"].(map[string]any)

	required := map[string]bool{}
	if list, ok := schema["required"].([]any); ok {
		for _, name := range list {
			if s, ok := name.(string); ok {
				required[s] = true
			}
		}
	}

	var parameters []map[string]any
	for name, raw := range properties {
		prop, _ := raw.(map[string]any)

		paramType := "string"
		if t, ok := prop["type"].(string); ok {
			paramType = t
		}
		paramSchema := map[string]any{"type": paramType}
		if enum, ok := prop["enum"]; ok {
			paramSchema["enum"] = enum
		}

		param := map[string]any{
			"name":     name,
			"in":       location,
			"required": required[name],
			"schema":   paramSchema,
		}
		if desc, ok := prop["description"]; ok {
			param["description"] = desc
		}

		parameters = append(parameters, param)
	}

	return parameters
}
