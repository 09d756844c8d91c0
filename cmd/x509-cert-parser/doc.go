// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-parser is a command-line tool that reads one X.509 certificate
// and prints its validity window, fingerprint and subject.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-parser/cmd/x509-cert-parser@latest
//
// # Usage
//
//	x509-cert-parser [-f INPUT_CERT] [FLAGS]
//
// Without -f (or with -f -) the certificate is read from piped stdin.
// Input may be PEM, bare base64 (padded or not, any whitespace) or DER.
//
// # Flags
//
//	-f, --file              Input certificate file ("-" for stdin)
//	-o, --output            Destination file (default: stdout)
//	-a, --algorithm         Fingerprint hash algorithm (default: sha1)
//	    --format            text, json, yaml, table, pem, der or base64 (default: text)
//	    --colon             Print fingerprints as AB:CD:.. byte pairs
//	-b, --bundle            Report every certificate in a PEM, DER or PKCS#7 bundle
//	    --pkcs12            Read the input as a PKCS#12 archive
//	    --password          Password of the PKCS#12 archive
//	-c, --config            Configuration file (JSON or YAML)
//	    --list-algorithms   List supported fingerprint algorithms
//
// # Environment
//
//	X509_PARSER_CONFIG_FILE   Configuration file used when -c is absent
//	X509_PARSER_ALGORITHM     Overrides defaults.algorithm
//	X509_PARSER_FORMAT        Overrides defaults.format
//
// # Examples
//
// Print a summary:
//
//	x509-cert-parser -f cert.pem
//
// SHA-256 fingerprint as JSON:
//
//	x509-cert-parser -f cert.der -a sha256 --format json
//
// Convert base64 from stdin to PEM:
//
//	cat cert.b64 | x509-cert-parser --format pem > cert.pem
//
// Compare with OpenSSL:
//
//	openssl x509 -in cert.pem -noout -fingerprint -sha256
//
// The exit status is 1 on error and 130 when interrupted.
package main
