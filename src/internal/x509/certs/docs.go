// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs normalizes and encodes [X.509] certificates.
//
// Input may be [PEM] text, bare base64 with arbitrary whitespace, or binary DER.
// [Normalize] reduces any of these to one canonical padded base64 string, and
// [Certificate.EncodePEM] wraps DER back into 64-column PEM. Decoding is a thin
// call-through to crypto/x509, falling back to Cloudflare's [PKCS7] parser for
// certs-only bundles.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
