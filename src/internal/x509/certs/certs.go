// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/helper/gc"
	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrEmptyInput indicates that no certificate data remained after normalization.
	ErrEmptyInput = errors.New("x509certs: empty certificate data")

	// ErrInvalidBase64 indicates that the normalized text is not valid base64.
	ErrInvalidBase64 = errors.New("x509certs: invalid base64 certificate data")

	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

const (
	// BlockType is the PEM block type written and accepted for certificates.
	BlockType = "CERTIFICATE"

	// LineWidth is the number of base64 characters per PEM body line.
	LineWidth = 64
)

// Certificate provides methods to decode and encode [X.509] certificates.
// It maintains internal configuration such as the certificate block type
// and the PEM line width.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
	lineWidth     int
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: BlockType,
		lineWidth:     LineWidth,
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// DecodeMultiple decodes one or more certificates from data.
// PEM input yields one certificate per CERTIFICATE block and other block
// types (private keys, CSRs) are skipped; anything else is read as a
// concatenation of DER certificates.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		var (
			certs   []*x509.Certificate
			skipped int
		)

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			data = rest

			if block.Type != c.certBlockType {
				skipped++
				continue
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
		}

		if len(certs) == 0 {
			if skipped > 0 {
				return nil, ErrInvalidBlockType
			}
			return nil, ErrEmptyInput
		}

		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(certs) == 0 {
		return nil, ErrEmptyInput
	}

	return certs, nil
}

// Decode decodes a single certificate from data.
//
// Data may be a single PEM block or DER. DER that is not a certificate is
// retried as PKCS#7 SignedData, and the first embedded certificate is returned.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}
	if !looksLikePKCS7(data) {
		return nil, ErrParseCertificate
	}

	certs, err := c.DecodePKCS7(data)
	if err != nil {
		return nil, err
	}

	return certs[0], nil
}

// DecodePKCS7 returns every certificate carried by PKCS#7 SignedData.
// At least one certificate is returned when err is nil.
func (c *Certificate) DecodePKCS7(data []byte) ([]*x509.Certificate, error) {
	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates, nil
}

// EncodePEM encodes DER certificate bytes to PEM format, wrapping the
// base64 body at the configured line width.
func (c *Certificate) EncodePEM(der []byte) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString("-----BEGIN ")
	buf.WriteString(c.certBlockType)
	buf.WriteString("-----\n")
	writeWrapped(buf, ToBase64(der), c.lineWidth)
	buf.WriteString("-----END ")
	buf.WriteString(c.certBlockType)
	buf.WriteString("-----\n")

	return append([]byte(nil), buf.Bytes()...)
}

// EncodeDER encodes a certificate to DER format.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert.Raw)...)
	}

	return data
}

// EncodeMultipleDER encodes multiple certificates to DER format.
func (c *Certificate) EncodeMultipleDER(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodeDER(cert)...)
	}

	return data
}
