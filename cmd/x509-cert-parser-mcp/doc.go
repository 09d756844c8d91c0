// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-parser-mcp serves the X.509 certificate parser over the Model
// Context Protocol on stdio.
//
// # Usage
//
//	x509-cert-parser-mcp [--config FILE] [--verbose]
//
// # Client configuration
//
//	{
//	  "mcpServers": {
//	    "x509-cert-parser": {
//	      "command": "x509-cert-parser-mcp",
//	      "env": {"X509_PARSER_CONFIG_FILE": "/path/to/config.yaml"}
//	    }
//	  }
//	}
//
// # Tools
//
//	parse_certificate            JSON summary of one certificate
//	convert_certificate          PEM, DER (base64 encoded) or canonical base64
//	certificate_fingerprint      digest of the DER encoding
//	list_fingerprint_algorithms  supported digest names
package main
