// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/version"
)

const serverName = "X509 Certificate Parser" // MCP server name

// GetVersion returns the version compiled into the module. Servers built by
// [New] and [Serve] report the version they are given instead.
func GetVersion() string {
	return version.Version
}

// New builds the MCP server with every tool, resource and prompt registered.
// The configuration is loaded from configPath, or from the file named by
// X509_PARSER_CONFIG_FILE when configPath is empty.
func New(version, configPath string, log logger.Logger) (*server.MCPServer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	tools, toolsWithConfig := createTools(newCertCache(cfg))

	instructions, err := loadInstructions(tools, toolsWithConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithResources(createResources(cfg, version, toolNames(tools, toolsWithConfig))...).
		WithPrompts(createPrompts(cfg)...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}
	return s, nil
}

// Run serves the MCP protocol on stdin and stdout until ctx is cancelled or
// the client disconnects.
//
// Error Handling:
//   - Configuration errors: Wrapped with "config error" prefix
//   - Server build errors: Wrapped with "failed to build server" prefix
//   - Shutdown errors: Wrapped with "server shutdown" prefix
func Run(ctx context.Context, version, configPath string, log logger.Logger) error {
	return Serve(ctx, version, configPath, log, os.Stdin, os.Stdout)
}

// Serve is [Run] over arbitrary streams.
func Serve(ctx context.Context, version, configPath string, log logger.Logger, in io.Reader, out io.Writer) error {
	if log == nil {
		log = logger.NewMCPLogger(io.Discard, true)
	}

	s, err := New(version, configPath, log)
	if err != nil {
		return err
	}

	log.Printf("%s %s listening on stdio", serverName, version)

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
