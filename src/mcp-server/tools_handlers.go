// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/certparser"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/fingerprint"
)

// certificateTools implements the tool handlers over a shared parse cache.
type certificateTools struct {
	cache *certCache
}

// readCertificate parses input as a file path first and falls back to
// treating it as PEM or base64 text.
func (h *certificateTools) readCertificate(input string) (*certparser.Parser, error) {
	data := []byte(input)
	if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
		if data, err = os.ReadFile(input); err != nil {
			return nil, fmt.Errorf("%w: %w", certparser.ErrReadFile, err)
		}
	}
	return h.cache.parse(data)
}

// certificateArgs extracts and parses the required "certificate" argument.
// A non-nil result is the error to return to the client.
func (h *certificateTools) certificateArgs(request mcp.CallToolRequest) (*certparser.Parser, *mcp.CallToolResult) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err))
	}

	p, err := h.readCertificate(certInput)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err))
	}
	return p, nil
}

// algorithmArg returns the requested fingerprint algorithm, or the
// configured default when the argument is absent.
func algorithmArg(request mcp.CallToolRequest, cfg *config.Config) (string, *mcp.CallToolResult) {
	algorithm := request.GetString("algorithm", "")
	if algorithm == "" {
		algorithm = cfg.Defaults.Algorithm
	}
	if !fingerprint.Supported(algorithm) {
		return "", mcp.NewToolResultError(fmt.Sprintf("%v '%s'", fingerprint.ErrUnsupportedAlgorithm, algorithm))
	}
	return algorithm, nil
}

// handleParseCertificate reports the accessors of a certificate as a JSON
// [certparser.Info] document.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: MCP tool call request with "certificate" and optional "algorithm"
//   - cfg: Server configuration supplying the default algorithm and colon form
func (h *certificateTools) handleParseCertificate(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, errResult := h.certificateArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	algorithm, errResult := algorithmArg(request, cfg)
	if errResult != nil {
		return errResult, nil
	}

	info, err := p.Summary(algorithm, cfg.Defaults.Colon)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to summarize certificate: %v", err)), nil
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal certificate summary: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

// handleConvertCertificate re-encodes a certificate. DER output is base64
// encoded since tool results carry text.
func (h *certificateTools) handleConvertCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, errResult := h.certificateArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	switch format := request.GetString("format", "pem"); format {
	case "pem":
		return mcp.NewToolResultText(p.PEM()), nil
	case "der":
		return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(p.DER())), nil
	case "base64":
		return mcp.NewToolResultText(p.Base64()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format '%s': use 'pem', 'der', or 'base64'", format)), nil
	}
}

// handleCertificateFingerprint returns the digest of the DER encoding.
func (h *certificateTools) handleCertificateFingerprint(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, errResult := h.certificateArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	algorithm, errResult := algorithmArg(request, cfg)
	if errResult != nil {
		return errResult, nil
	}

	sum, err := p.Fingerprint(algorithm)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute fingerprint: %v", err)), nil
	}
	if request.GetBool("colon", cfg.Defaults.Colon) {
		sum = fingerprint.Colon(sum)
	}

	return mcp.NewToolResultText(sum), nil
}

// algorithmList is the document returned by list_fingerprint_algorithms.
type algorithmList struct {
	Default    string   `json:"default"`
	Algorithms []string `json:"algorithms"`
}

func handleListFingerprintAlgorithms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(algorithmList{
		Default:    fingerprint.Default,
		Algorithms: fingerprint.Algorithms(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal algorithms: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
