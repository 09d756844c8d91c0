// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"encoding/base64"
	"regexp"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/helper/gc"
)

var (
	// beginDelimiter and endDelimiter match the armor lines with any run of dashes.
	beginDelimiter = regexp.MustCompile(`-+BEGIN CERTIFICATE-+`)
	endDelimiter   = regexp.MustCompile(`-+END CERTIFICATE-+`)

	// DER encoding of the PKCS#7 signedData content type (1.2.840.113549.1.7.2).
	oidSignedData = []byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07, 0x02}
)

// isStripped reports whether b is removed during normalization.
func isStripped(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', 0x00, 0x0b:
		return true
	}
	return false
}

// IsBinary reports whether data holds raw DER rather than text. Any byte
// outside printable ASCII that is not stripped whitespace marks binary input.
func IsBinary(data []byte) bool {
	for _, b := range data {
		if isStripped(b) {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return true
		}
	}
	return false
}

// StripArmor removes the BEGIN/END CERTIFICATE delimiters and every space,
// tab, newline, carriage return, NUL and vertical tab from data.
func StripArmor(data []byte) string {
	data = beginDelimiter.ReplaceAll(data, nil)
	data = endDelimiter.ReplaceAll(data, nil)

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, b := range data {
		if !isStripped(b) {
			buf.WriteByte(b)
		}
	}

	return buf.String()
}

// Normalize returns the canonical base64 form of a certificate given as
// PEM text, bare base64 text or binary DER. The result is always padded
// standard base64 with no whitespace.
func Normalize(data []byte) (string, error) {
	der, err := NormalizeDER(data)
	if err != nil {
		return "", err
	}
	return ToBase64(der), nil
}

// NormalizeDER is like [Normalize] but returns the binary encoding.
func NormalizeDER(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if IsBinary(data) {
		return append([]byte(nil), data...), nil
	}

	stripped := StripArmor(data)
	if stripped == "" {
		return nil, ErrEmptyInput
	}

	return ToDER(stripped)
}

// ToDER decodes base64 text to binary. Both padded and unpadded standard
// encodings are accepted.
func ToDER(b64 string) ([]byte, error) {
	der, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		der, err = base64.RawStdEncoding.DecodeString(b64)
		if err != nil {
			return nil, ErrInvalidBase64
		}
	}
	if len(der) == 0 {
		return nil, ErrEmptyInput
	}
	return der, nil
}

// ToBase64 encodes binary data as padded standard base64.
func ToBase64(der []byte) string { return base64.StdEncoding.EncodeToString(der) }

// WrapLines splits s into lines of at most width characters, each
// terminated by a newline.
func WrapLines(s string, width int) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	writeWrapped(buf, s, width)
	return buf.String()
}

func writeWrapped(buf gc.Buffer, s string, width int) {
	if width <= 0 {
		width = LineWidth
	}
	for len(s) > width {
		buf.WriteString(s[:width])
		buf.WriteByte('\n')
		s = s[width:]
	}
	if len(s) > 0 {
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
}

// looksLikePKCS7 reports whether the leading bytes carry the signedData
// content type, so unrelated garbage is not handed to the PKCS#7 parser.
func looksLikePKCS7(data []byte) bool {
	head := data
	if len(head) > 32 {
		head = head[:32]
	}
	return bytes.Contains(head, oidSignedData)
}
