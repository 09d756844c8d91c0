// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown documents served by the MCP server:
//
//   - X509_instructions.md: server instructions, a [text/template] over the registered tools
//   - certificate-formats.md: the accepted input encodings and output formats
//   - certificate-inspection.md: the guided inspection prompt
//
// Files are read through [MagicEmbed].
package templates
