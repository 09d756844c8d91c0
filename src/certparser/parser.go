// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certparser

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/fingerprint"
)

var (
	// ErrReadFile indicates that the certificate file could not be read.
	ErrReadFile = errors.New("certparser: unable to read file")

	// ErrParse indicates that the certificate could not be normalized or decoded.
	ErrParse = errors.New("certparser: unable to parse the certificate")

	// ErrUnsupportedAlgorithm aliases the fingerprint registry error so
	// callers need only this package for errors.Is checks.
	ErrUnsupportedAlgorithm = fingerprint.ErrUnsupportedAlgorithm
)

// Parser holds one certificate in canonical form together with the
// decoded fields. A Parser is immutable and safe for concurrent use.
type Parser struct {
	b64  string
	der  []byte
	cert *x509.Certificate
}

// New normalizes data (PEM, bare base64 or binary DER) and decodes it.
//
// PKCS#7 certs-only input is accepted; the first embedded certificate
// becomes the canonical encoding.
func New(data []byte) (*Parser, error) {
	der, err := x509certs.NormalizeDER(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return fromDER(der)
}

// NewFromString is New for text input.
func NewFromString(s string) (*Parser, error) { return New([]byte(s)) }

// FromFile reads and parses the certificate stored in name.
func FromFile(name string) (*Parser, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return New(data)
}

// FromReader reads r to EOF and parses the result.
func FromReader(r io.Reader) (*Parser, error) {
	data, err := gc.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return New(data)
}

// ParseBundle returns one Parser per certificate in data. PEM input is
// split on its blocks; anything else is normalized to binary first and
// read as concatenated DER or, failing that, as a PKCS#7 bundle.
func ParseBundle(data []byte) ([]*Parser, error) {
	decoder := x509certs.New()

	if !decoder.IsPEM(data) {
		der, err := x509certs.NormalizeDER(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		data = der
	}

	certs, err := decoder.DecodeMultiple(data)
	if err != nil {
		var perr error
		if certs, perr = decoder.DecodePKCS7(data); perr != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	}

	parsers := make([]*Parser, 0, len(certs))
	for _, cert := range certs {
		parsers = append(parsers, fromCertificate(cert))
	}
	return parsers, nil
}

func fromDER(der []byte) (*Parser, error) {
	cert, err := x509certs.New().Decode(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromCertificate(cert), nil
}

func fromCertificate(cert *x509.Certificate) *Parser {
	return &Parser{
		b64:  x509certs.ToBase64(cert.Raw),
		der:  cert.Raw,
		cert: cert,
	}
}

// Base64 returns the canonical base64 encoding: padded, no whitespace.
func (p *Parser) Base64() string { return p.b64 }

// DER returns a copy of the binary encoding.
func (p *Parser) DER() []byte { return append([]byte(nil), p.der...) }

// PEM returns the encoding wrapped at 64 columns between
// BEGIN/END CERTIFICATE delimiters, with a trailing newline.
func (p *Parser) PEM() string { return string(x509certs.New().EncodePEM(p.der)) }

// Certificate returns the decoded certificate. Callers must not modify it.
func (p *Parser) Certificate() *x509.Certificate { return p.cert }

// NotValidBefore returns the start of the validity window in UTC.
func (p *Parser) NotValidBefore() time.Time { return p.cert.NotBefore.UTC() }

// NotValidAfter returns the end of the validity window in UTC.
func (p *Parser) NotValidAfter() time.Time { return p.cert.NotAfter.UTC() }

// IsValidAt reports whether t falls inside the validity window, bounds
// included. Only the dates are compared; nothing is verified.
func (p *Parser) IsValidAt(t time.Time) bool {
	return !t.Before(p.cert.NotBefore) && !t.After(p.cert.NotAfter)
}

// Fingerprint returns the lowercase hex digest of the DER encoding under
// algorithm, e.g. "sha1" or "sha256". An empty name selects sha1.
func (p *Parser) Fingerprint(algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = fingerprint.Default
	}
	return fingerprint.Sum(algorithm, p.der)
}

// Name returns the subject common name. It is empty when the subject
// carries none.
func (p *Parser) Name() string { return p.cert.Subject.CommonName }

// Subject returns the subject distinguished name in one-line form,
// e.g. "/C=ID/O=Example Org/CN=example.com".
func (p *Parser) Subject() string { return oneLine(p.cert.Subject) }

// Issuer returns the issuer distinguished name in one-line form.
func (p *Parser) Issuer() string { return oneLine(p.cert.Issuer) }

// SerialNumber returns the serial number in decimal.
func (p *Parser) SerialNumber() string { return p.cert.SerialNumber.String() }

// attributeNames holds the short names OpenSSL prints for common
// distinguished name attributes.
var attributeNames = map[string]string{
	"2.5.4.3":  "CN",
	"2.5.4.5":  "serialNumber",
	"2.5.4.6":  "C",
	"2.5.4.7":  "L",
	"2.5.4.8":  "ST",
	"2.5.4.9":  "street",
	"2.5.4.10": "O",
	"2.5.4.11": "OU",
	"2.5.4.17": "postalCode",

	"1.2.840.113549.1.9.1": "emailAddress",

	"0.9.2342.19200300.100.1.25": "DC",
}

// oneLine renders a name in certificate order as "/TYPE=value" pairs.
func oneLine(name pkix.Name) string {
	var b strings.Builder
	for _, atv := range name.Names {
		b.WriteByte('/')
		b.WriteString(attributeName(atv.Type))
		b.WriteByte('=')
		fmt.Fprint(&b, atv.Value)
	}
	return b.String()
}

func attributeName(oid asn1.ObjectIdentifier) string {
	if short, ok := attributeNames[oid.String()]; ok {
		return short
	}
	return oid.String()
}
