// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const certificateArgDescription = "Certificate file path, PEM text, or base64-encoded certificate data"

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that read configured defaults
//
// The function defines the following tools:
//   - parse_certificate: Reports the validity window, names and fingerprint
//   - convert_certificate: Re-encodes a certificate as PEM, DER or base64
//   - certificate_fingerprint: Hashes the DER encoding with a named algorithm
//   - list_fingerprint_algorithms: Lists the supported digest names
//
// Parsed certificates are shared through cache, which may be nil.
func createTools(cache *certCache) ([]ToolDefinition, []ToolDefinitionWithConfig) {
	h := &certificateTools{cache: cache}

	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("convert_certificate",
				mcp.WithDescription("Convert a X509 certificate to PEM, DER (returned base64 encoded) or canonical base64"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateArgDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem', 'der', or 'base64' (default: pem)"),
					mcp.DefaultString("pem"),
					mcp.Enum("pem", "der", "base64"),
				),
			),
			Handler: h.handleConvertCertificate,
			Role:    "converter",
		},
		{
			Tool: mcp.NewTool("list_fingerprint_algorithms",
				mcp.WithDescription("List the hash algorithms accepted by the fingerprint tools"),
			),
			Handler: handleListFingerprintAlgorithms,
			Role:    "algorithmLister",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("parse_certificate",
				mcp.WithDescription("Parse a X509 certificate and report its subject, issuer, serial number, validity window and fingerprint as JSON"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateArgDescription),
				),
				mcp.WithString("algorithm",
					mcp.Description("Fingerprint hash algorithm (default: from configuration, sha1)"),
				),
			),
			Handler: h.handleParseCertificate,
			Role:    "parser",
		},
		{
			Tool: mcp.NewTool("certificate_fingerprint",
				mcp.WithDescription("Compute the fingerprint of a X509 certificate over its DER encoding"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateArgDescription),
				),
				mcp.WithString("algorithm",
					mcp.Description("Fingerprint hash algorithm (default: from configuration, sha1)"),
				),
				mcp.WithBoolean("colon",
					mcp.Description("Render the digest as colon-separated uppercase byte pairs (default: from configuration)"),
				),
			),
			Handler: h.handleCertificateFingerprint,
			Role:    "fingerprinter",
		},
	}

	return tools, toolsWithConfig
}
