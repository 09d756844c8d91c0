// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/version"
)

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that read defaults from the
// server configuration, such as the fingerprint algorithm.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition holds a tool definition and its handler.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Stable key used by the instructions template to refer to the tool
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition whose handler receives the
// server configuration.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It is used internally by ServerBuilder and should not be instantiated directly.
type ServerDependencies struct {
	Config          *config.Config
	Version         string
	Logger          logger.Logger
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Prompts         []server.ServerPrompt
	Instructions    string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration. A nil config means [config.Default].
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the version string reported during initialization.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger receiving one line per tool call. Stdout
// carries the protocol, so the logger must write elsewhere.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithDefaultTools adds the certificate tools returned by createTools, with
// a parse cache sized by the configuration set so far.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	tools, toolsWithConfig := createTools(newCertCache(cfg))
	return b.WithTools(tools...).WithToolsWithConfig(toolsWithConfig...)
}

// WithResources adds static and dynamic resources, read by clients through
// URIs such as "info://version".
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds predefined prompts for guided workflows.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instructions returned to clients on initialize.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	deps := b.deps
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Version == "" {
		deps.Version = version.Version
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewMCPLogger(io.Discard, true)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(deps.Instructions))
	}

	s := server.NewMCPServer(serverName, deps.Version, opts...)

	for _, tool := range deps.Tools {
		s.AddTool(tool.Tool, withLogging(deps.Logger, tool.Tool.Name, tool.Handler))
	}

	for _, tool := range deps.ToolsWithConfig {
		handler := tool.Handler
		cfg := deps.Config
		s.AddTool(tool.Tool, withLogging(deps.Logger, tool.Tool.Name, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, request, cfg)
		}))
	}

	for _, resource := range deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// withLogging reports the outcome of every call to name.
func withLogging(log logger.Logger, name string, next ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := next(ctx, request)
		switch {
		case err != nil:
			log.Printf("tool %s failed: %v", name, err)
		case result != nil && result.IsError:
			log.Printf("tool %s returned an error result", name)
		default:
			log.Printf("tool %s completed", name)
		}
		return result, err
	}
}
