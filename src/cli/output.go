// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/certparser"
	x509certs "github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/certs"
)

func certificates(parsers []*certparser.Parser) []*x509.Certificate {
	certs := make([]*x509.Certificate, 0, len(parsers))
	for _, p := range parsers {
		certs = append(certs, p.Certificate())
	}
	return certs
}

// render formats parsers in format. Structured formats emit a single object
// unless bundle is set, in which case they emit a list.
func render(parsers []*certparser.Parser, format, algorithm string, colon, bundle bool) ([]byte, error) {
	switch format {
	case "pem":
		return x509certs.New().EncodeMultiplePEM(certificates(parsers)), nil
	case "der":
		return x509certs.New().EncodeMultipleDER(certificates(parsers)), nil
	case "base64":
		var b strings.Builder
		for _, p := range parsers {
			b.WriteString(p.Base64())
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil
	}

	infos, err := summaries(parsers, algorithm, colon)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		var data []byte
		if bundle {
			data, err = json.MarshalIndent(infos, "", "  ")
		} else {
			data, err = json.MarshalIndent(infos[0], "", "  ")
		}
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		if bundle {
			return yaml.Marshal(infos)
		}
		return yaml.Marshal(infos[0])
	case "table":
		table, err := renderTable(infos)
		if err != nil {
			return nil, err
		}
		return []byte(table), nil
	case "text":
		return []byte(renderText(infos)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func summaries(parsers []*certparser.Parser, algorithm string, colon bool) ([]*certparser.Info, error) {
	infos := make([]*certparser.Info, 0, len(parsers))
	for _, p := range parsers {
		info, err := p.Summary(algorithm, colon)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// renderText prints one indented block per certificate.
func renderText(infos []*certparser.Info) string {
	var b strings.Builder
	for i, info := range infos {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Certificate %d:\n", i+1)
		fmt.Fprintf(&b, "  Common Name: %s\n", info.CommonName)
		fmt.Fprintf(&b, "  Subject: %s\n", info.Subject)
		fmt.Fprintf(&b, "  Issuer: %s\n", info.Issuer)
		fmt.Fprintf(&b, "  Serial Number: %s\n", info.SerialNumber)
		fmt.Fprintf(&b, "  Not Valid Before: %s (%d)\n", info.NotValidBefore.Format(time.RFC3339), info.NotValidBeforeUnix)
		fmt.Fprintf(&b, "  Not Valid After: %s (%d)\n", info.NotValidAfter.Format(time.RFC3339), info.NotValidAfterUnix)
		fmt.Fprintf(&b, "  Fingerprint (%s): %s\n", info.FingerprintAlgorithm, info.Fingerprint)
	}
	return b.String()
}

// renderTable renders the summaries as a markdown table.
func renderTable(infos []*certparser.Info) (string, error) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)

	headers := []string{"#", "Common Name", "Not Valid Before", "Not Valid After", "Fingerprint"}
	table.Header(headers)

	var rows [][]string
	for i, info := range infos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			info.CommonName,
			info.NotValidBefore.Format("2006-01-02 15:04:05"),
			info.NotValidAfter.Format("2006-01-02 15:04:05"),
			info.FingerprintAlgorithm + ":" + info.Fingerprint,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return "", err
	}
	if err := table.Render(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
