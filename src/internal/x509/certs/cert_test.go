// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/certtest"
)

// Certificate for www.google.com (valid until February 16, 2026)
const testCertPEM = `
-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`

func TestCertificateOperations(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, decoder *x509certs.Certificate, testCert *x509.Certificate)
	}{
		{
			name: "Decode Multiple Certificates",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, _ *x509.Certificate) {
				certs, err := decoder.DecodeMultiple([]byte(testCertPEM + testCertPEM))
				require.NoError(t, err, "DecodeMultiple() error")

				assert.Len(t, certs, 2, "expected 2 certificates")
			},
		},
		{
			name: "Decode Multiple DER Certificates",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				der := decoder.EncodeMultipleDER([]*x509.Certificate{cert, cert})

				certs, err := decoder.DecodeMultiple(der)
				require.NoError(t, err, "DecodeMultiple() error")

				assert.Len(t, certs, 2, "expected 2 certificates")
			},
		},
		{
			name: "Encode PEM matches encoding/pem",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				want := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})

				assert.Equal(t, string(want), string(decoder.EncodePEM(cert.Raw)))
			},
		},
		{
			name: "Encode Multiple Certificates to PEM",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				encoded := decoder.EncodeMultiplePEM([]*x509.Certificate{cert})
				assert.NotEmpty(t, encoded, "EncodeMultiplePEM() returned empty result")

				decodedBlock, _ := pem.Decode(encoded)
				require.NotNil(t, decodedBlock, "failed to decode encoded certificates PEM")

				decodedCert, err := x509.ParseCertificate(decodedBlock.Bytes)
				require.NoError(t, err, "ParseCertificate() error")

				assert.True(t, cert.Equal(decodedCert), "original and decoded certificates are not equal")
			},
		},
		{
			name: "Decode Certificate",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, _ *x509.Certificate) {
				cert, err := decoder.Decode([]byte(testCertPEM))
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, "www.google.com", cert.Subject.CommonName, "expected CommonName www.google.com")
			},
		},
		{
			name: "Decode-Encode-Decode Round Trip",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				encodedDER := decoder.EncodeDER(cert)
				assert.NotEmpty(t, encodedDER, "EncodeDER() returned empty result")

				decodedCert, err := decoder.Decode(encodedDER)
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decodedCert), "original and decoded certificates are not equal")
			},
		},
		{
			name: "Decode PKCS7 Bundle",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				other := certtest.Generate(t, certtest.DefaultTemplate("second.example.com"))
				bundle := certtest.PKCS7(t, cert.Raw, other.Raw)

				decoded, err := decoder.Decode(bundle)
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decoded), "expected the first certificate of the bundle")
			},
		},
	}

	decoder := x509certs.New()

	block, _ := pem.Decode([]byte(testCertPEM))
	require.NotNil(t, block, "failed to parse certificate PEM for test setup")

	testCert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err, "failed to parse test certificate")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, decoder, testCert)
		})
	}
}

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected error
	}{
		{
			name:     "Invalid PEM Block",
			input:    []byte(invalidPEM),
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Invalid Certificate",
			input:    []byte(invalidCERT),
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Garbage DER",
			input:    []byte{0x30, 0x03, 0x02, 0x01, 0x01},
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Truncated PKCS7",
			input:    []byte{0x30, 0x0d, 0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07, 0x02},
			expected: x509certs.ErrParsePKCS7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := x509certs.New()
			_, err := decoder.Decode(tt.input)
			assert.Equal(t, tt.expected, err, "expected specific error")
		})
	}
}

func TestDecodeMultiple_ForeignBlocks(t *testing.T) {
	decoder := x509certs.New()

	cert, key := certtest.GenerateWithKey(t, certtest.DefaultTemplate("keyed.example.com"))
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})

	tests := []struct {
		name     string
		input    []byte
		count    int
		expected error
	}{
		{
			name:  "certificate followed by key",
			input: append(append([]byte{}, certPEM...), keyPEM...),
			count: 1,
		},
		{
			name:  "key before certificates",
			input: append(append(append([]byte{}, keyPEM...), certPEM...), testCertPEM...),
			count: 2,
		},
		{
			name:  "unknown block type is skipped",
			input: []byte(testCertPEM + invalidPEM),
			count: 1,
		},
		{
			name:     "only foreign blocks",
			input:    append(append([]byte{}, keyPEM...), invalidPEM...),
			expected: x509certs.ErrInvalidBlockType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeMultiple(tt.input)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Empty(t, certs)
				return
			}
			require.NoError(t, err)
			assert.Len(t, certs, tt.count)
		})
	}
}

func TestIsPEM(t *testing.T) {
	decoder := x509certs.New()

	assert.True(t, decoder.IsPEM([]byte(testCertPEM)))
	assert.False(t, decoder.IsPEM([]byte("MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQw")))
}
