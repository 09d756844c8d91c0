// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 certificate parser.
// It implements a Cobra-based CLI that reads a certificate from a file or stdin,
// normalizes it, and prints its validity window, fingerprint and subject in text,
// JSON, YAML or markdown table form, or re-encodes it as PEM, DER or base64.
// PKCS#12 archives are accepted with --pkcs12.
// Defaults come from the shared configuration file and environment.
package cli
