// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certparser

import (
	"crypto/x509"
	"errors"
	"fmt"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrPKCS12 indicates that a PKCS#12 archive could not be opened.
var ErrPKCS12 = errors.New("certparser: unable to decode PKCS#12 data")

// ParsePKCS12 returns one Parser per certificate stored in a PKCS#12
// (.p12/.pfx) archive. Trust stores and key stores are both accepted; for a
// key store the end-entity certificate comes first, followed by its CA
// certificates. Private keys are decoded only to reach the certificates
// and are then discarded.
func ParsePKCS12(data []byte, password string) ([]*Parser, error) {
	certs, err := pkcs12.DecodeTrustStore(data, password)
	if err != nil {
		_, leaf, caCerts, chainErr := pkcs12.DecodeChain(data, password)
		if chainErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrPKCS12, chainErr)
		}
		certs = append([]*x509.Certificate{leaf}, caCerts...)
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("%w: no certificates", ErrPKCS12)
	}

	parsers := make([]*Parser, 0, len(certs))
	for _, cert := range certs {
		parsers = append(parsers, fromCertificate(cert))
	}
	return parsers, nil
}
