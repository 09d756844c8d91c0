// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certparser

import (
	"time"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/fingerprint"
)

// Info is a serializable snapshot of the accessors of a [Parser].
type Info struct {
	CommonName           string    `json:"commonName" yaml:"commonName"`
	Subject              string    `json:"subject" yaml:"subject"`
	Issuer               string    `json:"issuer" yaml:"issuer"`
	SerialNumber         string    `json:"serialNumber" yaml:"serialNumber"`
	NotValidBefore       time.Time `json:"notValidBefore" yaml:"notValidBefore"`
	NotValidAfter        time.Time `json:"notValidAfter" yaml:"notValidAfter"`
	NotValidBeforeUnix   int64     `json:"notValidBeforeUnix" yaml:"notValidBeforeUnix"`
	NotValidAfterUnix    int64     `json:"notValidAfterUnix" yaml:"notValidAfterUnix"`
	FingerprintAlgorithm string    `json:"fingerprintAlgorithm" yaml:"fingerprintAlgorithm"`
	Fingerprint          string    `json:"fingerprint" yaml:"fingerprint"`
}

// Summary collects the accessors into an [Info], fingerprinting with
// algorithm. With colon set the fingerprint is rendered as "AB:CD:..".
func (p *Parser) Summary(algorithm string, colon bool) (*Info, error) {
	if algorithm == "" {
		algorithm = fingerprint.Default
	}

	sum, err := p.Fingerprint(algorithm)
	if err != nil {
		return nil, err
	}
	if colon {
		sum = fingerprint.Colon(sum)
	}

	notBefore, notAfter := p.NotValidBefore(), p.NotValidAfter()

	return &Info{
		CommonName:           p.Name(),
		Subject:              p.Subject(),
		Issuer:               p.Issuer(),
		SerialNumber:         p.SerialNumber(),
		NotValidBefore:       notBefore,
		NotValidAfter:        notAfter,
		NotValidBeforeUnix:   notBefore.Unix(),
		NotValidAfterUnix:    notAfter.Unix(),
		FingerprintAlgorithm: algorithm,
		Fingerprint:          sum,
	}, nil
}
