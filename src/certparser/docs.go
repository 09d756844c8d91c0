// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certparser reads a single [X.509] certificate from PEM text, bare
// base64 or binary DER and exposes its validity window, fingerprint and
// subject common name.
//
// Input is first normalized to one canonical base64 string; the decoding
// itself is delegated to crypto/x509. Nothing here verifies signatures,
// builds chains, checks revocation or enforces key usage.
//
// Example:
//
//	p, err := certparser.FromFile("server.crt")
//	if err != nil {
//		return err
//	}
//
//	sum, err := p.Fingerprint("sha256")
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(p.Name(), p.NotValidAfter(), sum)
//
// [X.509]: https://grokipedia.com/page/X.509
package certparser
