// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for [X509] certificate parsing.
// It exposes the parser through four tools:
//
//   - parse_certificate: JSON summary with validity window, names and fingerprint
//   - convert_certificate: PEM, DER (base64 encoded) or canonical base64
//   - certificate_fingerprint: digest of the DER encoding
//   - list_fingerprint_algorithms: supported digest names
//
// It also serves a configuration template, version information and the
// certificate format reference as resources, plus one guided prompt.
// Servers are assembled with [ServerBuilder]; [Run] serves them over stdio.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
