// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/fingerprint"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/mcp-server/templates"
)

// handleConfigResource serves cfg as a JSON configuration file that
// passes the configuration schema.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest, cfg *config.Config) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// versionInfo is the document served by info://version.
type versionInfo struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Tools      []string `json:"tools"`
	Algorithms []string `json:"fingerprintAlgorithms"`
	Formats    []string `json:"formats"`
}

// handleVersionResource serves server metadata.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest, version string, toolNames []string) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(versionInfo{
		Name:       serverName,
		Version:    version,
		Tools:      toolNames,
		Algorithms: fingerprint.Algorithms(),
		Formats:    []string{"pem", "der", "base64"},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleCertificateFormatsResource serves the embedded format reference.
func handleCertificateFormatsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("certificate-formats.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate formats: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
