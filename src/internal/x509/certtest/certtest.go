// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certtest builds throwaway certificates for tests.
package certtest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Template describes the certificate fields tests care about.
type Template struct {
	Subject   pkix.Name
	NotBefore time.Time
	NotAfter  time.Time
	Serial    int64
}

// DefaultTemplate returns a template valid from 2024-01-01 to 2034-01-01
// with the given common name.
func DefaultTemplate(commonName string) Template {
	return Template{
		Subject: pkix.Name{
			Country:      []string{"ID"},
			Organization: []string{"Example Org"},
			CommonName:   commonName,
		},
		NotBefore: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2034, time.January, 1, 0, 0, 0, 0, time.UTC),
		Serial:    4242,
	}
}

// Generate creates a self-signed ECDSA P-256 certificate from tmpl.
func Generate(tb testing.TB, tmpl Template) *x509.Certificate {
	tb.Helper()

	cert, _ := GenerateWithKey(tb, tmpl)
	return cert
}

// GenerateWithKey is like [Generate] and also returns the private key.
func GenerateWithKey(tb testing.TB, tmpl Template) (*x509.Certificate, *ecdsa.PrivateKey) {
	tb.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(tb, err, "failed to generate key")

	serial := tmpl.Serial
	if serial == 0 {
		serial = 1
	}

	x := &x509.Certificate{
		SerialNumber:          big.NewInt(serial),
		Subject:               tmpl.Subject,
		NotBefore:             tmpl.NotBefore,
		NotAfter:              tmpl.NotAfter,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, x, x, &key.PublicKey, key)
	require.NoError(tb, err, "failed to create certificate")

	cert, err := x509.ParseCertificate(der)
	require.NoError(tb, err, "failed to parse generated certificate")

	return cert, key
}

var (
	oidData       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}
	oidSignedData = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
)

// PKCS7 wraps the given DER certificates in a degenerate (certs-only)
// PKCS#7 SignedData structure. An empty crls set is always written so
// the field order is unambiguous for positional decoders.
func PKCS7(tb testing.TB, ders ...[]byte) []byte {
	tb.Helper()

	var certs []byte
	for _, der := range ders {
		certs = append(certs, der...)
	}

	innerInfo, err := asn1.Marshal(struct{ ContentType asn1.ObjectIdentifier }{oidData})
	require.NoError(tb, err)

	emptySet := asn1.RawValue{Class: asn1.ClassUniversal, Tag: asn1.TagSet, IsCompound: true}

	signed, err := asn1.Marshal(struct {
		Version          int
		DigestAlgorithms asn1.RawValue
		ContentInfo      asn1.RawValue
		Certificates     asn1.RawValue
		CRLs             asn1.RawValue
		SignerInfos      asn1.RawValue
	}{
		Version:          1,
		DigestAlgorithms: emptySet,
		ContentInfo:      asn1.RawValue{FullBytes: innerInfo},
		Certificates:     asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 0, IsCompound: true, Bytes: certs},
		CRLs:             asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 1, IsCompound: true},
		SignerInfos:      emptySet,
	})
	require.NoError(tb, err)

	out, err := asn1.Marshal(struct {
		ContentType asn1.ObjectIdentifier
		Content     asn1.RawValue
	}{
		ContentType: oidSignedData,
		Content:     asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 0, IsCompound: true, Bytes: signed},
	})
	require.NoError(tb, err)

	return out
}
