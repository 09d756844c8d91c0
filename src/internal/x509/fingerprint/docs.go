// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package fingerprint computes certificate fingerprints: hex digests over the
// DER encoding under a caller-chosen hash algorithm. Names are looked up with
// Unicode case folding, so "SHA256" and "sha256" select the same hash.
//
// The registry covers the crypto/* hashes plus MD4, RIPEMD-160, SHA-3 and
// BLAKE2 from [golang.org/x/crypto].
//
// [golang.org/x/crypto]: https://pkg.go.dev/golang.org/x/crypto
package fingerprint
