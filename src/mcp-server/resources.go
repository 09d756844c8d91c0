// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
)

// createResources creates the static resources served next to the tools:
// a configuration template, version information and the format reference.
func createResources(cfg *config.Config, version string, toolNames []string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				"config://template",
				"Configuration Template",
				mcp.WithResourceDescription("Configuration file for the X509 certificate parser, filled with the active values"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleConfigResource(ctx, request, cfg)
			},
		},
		{
			Resource: mcp.NewResource(
				"info://version",
				"Version Information",
				mcp.WithResourceDescription("Server name, version, tools and supported fingerprint algorithms"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleVersionResource(ctx, request, version, toolNames)
			},
		},
		{
			Resource: mcp.NewResource(
				"docs://certificate-formats",
				"Certificate Format Documentation",
				mcp.WithResourceDescription("Accepted certificate encodings, output formats and fingerprint rules"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleCertificateFormatsResource,
		},
	}
}
