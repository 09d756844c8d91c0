// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

// newCommand builds the server command. Logs go to stderr only when
// --verbose is set since stdout carries the protocol.
func newCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "x509-cert-parser-mcp",
		Short:         "MCP server for X.509 certificate parsing over stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewMCPLogger(os.Stderr, !verbose).WithComponent("mcp-server")
			return mcpserver.Run(cmd.Context(), version, configPath, log)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default: $X509_PARSER_CONFIG_FILE)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log tool calls to stderr as JSON lines")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
