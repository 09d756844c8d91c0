// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/mcp-server/templates"
)

// toolInfo describes one tool to the instructions template.
type toolInfo struct {
	Name        string
	Description string
}

// instructionData is the input of X509_instructions.md.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string
}

// loadInstructions renders the server instructions from the registered
// tools, so the text never drifts from the tool set.
func loadInstructions(tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) (string, error) {
	templateBytes, err := templates.MagicEmbed.ReadFile("X509_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{ToolRoles: make(map[string]string)}
	add := func(name, description, role string) {
		data.Tools = append(data.Tools, toolInfo{Name: name, Description: description})
		if role != "" {
			data.ToolRoles[role] = name
		}
	}
	for _, tool := range toolsWithConfig {
		add(tool.Tool.Name, tool.Tool.Description, tool.Role)
	}
	for _, tool := range tools {
		add(tool.Tool.Name, tool.Tool.Description, tool.Role)
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// toolNames lists the names of every tool in registration order.
func toolNames(tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) []string {
	names := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, tool := range toolsWithConfig {
		names = append(names, tool.Tool.Name)
	}
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	return names
}
