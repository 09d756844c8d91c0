// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the defaults shared by the CLI and the MCP server from
// a JSON or YAML file. Documents are checked against an embedded JSON Schema
// before they are applied, and environment variables take precedence over
// file values.
package config
