// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/mcp-server/templates"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers.
func createPrompts(cfg *config.Config) []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("certificate-inspection",
				mcp.WithPromptDescription("Inspect a certificate: names, validity window and fingerprint"),
				mcp.WithArgument("certificate",
					mcp.ArgumentDescription(certificateArgDescription),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("algorithm",
					mcp.ArgumentDescription("Fingerprint hash algorithm (default: "+cfg.Defaults.Algorithm+")"),
				),
			),
			Handler: func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return handleCertificateInspectionPrompt(ctx, request, cfg)
			},
		},
	}
}

// promptTemplateData holds the data used to populate prompt templates.
type promptTemplateData struct {
	Certificate string
	Algorithm   string
}

func handleCertificateInspectionPrompt(ctx context.Context, request mcp.GetPromptRequest, cfg *config.Config) (*mcp.GetPromptResult, error) {
	data := promptTemplateData{
		Certificate: request.Params.Arguments["certificate"],
		Algorithm:   request.Params.Arguments["algorithm"],
	}
	if data.Certificate == "" {
		return nil, fmt.Errorf("certificate argument is required")
	}
	if data.Algorithm == "" {
		data.Algorithm = cfg.Defaults.Algorithm
	}

	messages, err := parsePromptTemplate("certificate-inspection", data)
	if err != nil {
		return nil, err
	}

	return mcp.NewGetPromptResult("Certificate inspection workflow", messages), nil
}

// parsePromptTemplate executes the named embedded template and splits the
// result into messages on "### User:" and "### Assistant:" markers.
func parsePromptTemplate(templateName string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	templateContent, err := templates.MagicEmbed.ReadFile(templateName + ".md")
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	var (
		messages       []mcp.PromptMessage
		currentRole    mcp.Role
		currentContent strings.Builder
	)

	flush := func() {
		if text := strings.TrimSpace(currentContent.String()); text != "" && currentRole != "" {
			messages = append(messages, mcp.NewPromptMessage(currentRole, mcp.NewTextContent(text)))
		}
		currentContent.Reset()
	}

	for line := range strings.SplitSeq(buf.String(), "\n") {
		switch strings.TrimSpace(line) {
		case "### User:":
			flush()
			currentRole = mcp.RoleUser
		case "### Assistant:":
			flush()
			currentRole = mcp.RoleAssistant
		default:
			currentContent.WriteString(line)
			currentContent.WriteByte('\n')
		}
	}
	flush()

	return messages, nil
}
