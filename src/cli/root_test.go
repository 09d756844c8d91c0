// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"software.sslmate.com/src/go-pkcs12"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/certparser"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/cli"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/certtest"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/logger"
)

const version = "1.3.3.7-testing"

// isolate clears configuration coming from the environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvAlgorithm, "")
	t.Setenv(config.EnvFormat, "")
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin io.Reader, args ...string) ([]byte, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&stderr)

	cmd := cli.NewCommand(version, log, stdin, &stdout)
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.Bytes(), err
}

type fixture struct {
	der     []byte
	pemText string
	path    string
}

func newFixture(t *testing.T, commonName string) fixture {
	t.Helper()

	cert := certtest.Generate(t, certtest.DefaultTemplate(commonName))
	pemText := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}))

	path := filepath.Join(t.TempDir(), commonName+".pem")
	require.NoError(t, os.WriteFile(path, []byte(pemText), 0644))

	return fixture{der: cert.Raw, pemText: pemText, path: path}
}

func TestExecute_NoInput(t *testing.T) {
	isolate(t)

	_, err := execute(t, nil)
	assert.ErrorIs(t, err, cli.ErrInputFileRequired)

	_, err = execute(t, bytes.NewReader(nil))
	assert.ErrorIs(t, err, cli.ErrInputFileRequired)
}

func TestExecute_InvalidFile(t *testing.T) {
	isolate(t)

	tmpFile := filepath.Join(t.TempDir(), "invalid.cer")
	require.NoError(t, os.WriteFile(tmpFile, []byte("invalid data"), 0644))

	_, err := execute(t, nil, "-f", tmpFile)
	assert.ErrorIs(t, err, certparser.ErrParse)
}

func TestExecute_NonExistentFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, nil, "-f", filepath.Join(t.TempDir(), "nonexistent.cer"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecute_Formats(t *testing.T) {
	isolate(t)
	fx := newFixture(t, "cli.example.com")

	sum := sha256.Sum256(fx.der)
	sha256Hex := hex.EncodeToString(sum[:])

	tests := []struct {
		name     string
		args     []string
		testFunc func(t *testing.T, out []byte)
	}{
		{
			name: "Text",
			args: []string{"-f", fx.path},
			testFunc: func(t *testing.T, out []byte) {
				text := string(out)
				assert.Contains(t, text, "Common Name: cli.example.com")
				assert.Contains(t, text, "Not Valid Before: 2024-01-01T00:00:00Z")
				assert.Contains(t, text, "Not Valid After: 2034-01-01T00:00:00Z")
				assert.Contains(t, text, "Fingerprint (sha1): ")
			},
		},
		{
			name: "JSON with algorithm",
			args: []string{"-f", fx.path, "--format", "json", "-a", "sha256"},
			testFunc: func(t *testing.T, out []byte) {
				var info certparser.Info
				require.NoError(t, json.Unmarshal(out, &info))
				assert.Equal(t, "cli.example.com", info.CommonName)
				assert.Equal(t, "sha256", info.FingerprintAlgorithm)
				assert.Equal(t, sha256Hex, info.Fingerprint)
			},
		},
		{
			name: "JSON with colon fingerprint",
			args: []string{"-f", fx.path, "--format", "json", "-a", "sha256", "--colon"},
			testFunc: func(t *testing.T, out []byte) {
				var info certparser.Info
				require.NoError(t, json.Unmarshal(out, &info))
				assert.Equal(t, strings.ToUpper(sha256Hex[:2])+":", info.Fingerprint[:3])
			},
		},
		{
			name: "YAML",
			args: []string{"-f", fx.path, "--format", "yaml"},
			testFunc: func(t *testing.T, out []byte) {
				var doc map[string]any
				require.NoError(t, yaml.Unmarshal(out, &doc))
				assert.Equal(t, "cli.example.com", doc["commonName"])
				assert.Equal(t, "sha1", doc["fingerprintAlgorithm"])
			},
		},
		{
			name: "Table",
			args: []string{"-f", fx.path, "--format", "table"},
			testFunc: func(t *testing.T, out []byte) {
				assert.Contains(t, string(out), "cli.example.com")
				assert.Contains(t, string(out), "|")
			},
		},
		{
			name: "PEM",
			args: []string{"-f", fx.path, "--format", "pem"},
			testFunc: func(t *testing.T, out []byte) {
				assert.Equal(t, fx.pemText, string(out))
			},
		},
		{
			name: "DER",
			args: []string{"-f", fx.path, "--format", "der"},
			testFunc: func(t *testing.T, out []byte) {
				assert.Equal(t, fx.der, out)
			},
		},
		{
			name: "Base64",
			args: []string{"-f", fx.path, "--format", "base64"},
			testFunc: func(t *testing.T, out []byte) {
				assert.Equal(t, base64.StdEncoding.EncodeToString(fx.der)+"\n", string(out))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, nil, tt.args...)
			require.NoError(t, err)
			tt.testFunc(t, out)
		})
	}
}

func TestExecute_Stdin(t *testing.T) {
	isolate(t)
	fx := newFixture(t, "stdin.example.com")

	for _, input := range [][]byte{fx.der, []byte(fx.pemText), []byte(base64.StdEncoding.EncodeToString(fx.der))} {
		out, err := execute(t, bytes.NewReader(input), "--format", "base64")
		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString(fx.der)+"\n", string(out))
	}

	out, err := execute(t, strings.NewReader(fx.pemText), "-f", "-", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"commonName": "stdin.example.com"`)
}

func TestExecute_Bundle(t *testing.T) {
	isolate(t)
	first := newFixture(t, "first.example.com")
	second := newFixture(t, "second.example.com")

	path := filepath.Join(t.TempDir(), "bundle.pem")
	require.NoError(t, os.WriteFile(path, []byte(first.pemText+second.pemText), 0644))

	out, err := execute(t, nil, "-f", path, "-b", "--format", "json")
	require.NoError(t, err)

	var infos []certparser.Info
	require.NoError(t, json.Unmarshal(out, &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "first.example.com", infos[0].CommonName)
	assert.Equal(t, "second.example.com", infos[1].CommonName)

	_, err = execute(t, nil, "-f", path)
	assert.ErrorIs(t, err, certparser.ErrParse, "bundles need -b")
}

func TestExecute_BundleEncodings(t *testing.T) {
	isolate(t)
	first := newFixture(t, "first.example.com")
	second := newFixture(t, "second.example.com")

	_, key := certtest.GenerateWithKey(t, certtest.DefaultTemplate("key.example.com"))
	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	keyPEM := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}))

	path := filepath.Join(t.TempDir(), "server.pem")
	require.NoError(t, os.WriteFile(path, []byte(first.pemText+keyPEM+second.pemText), 0600))

	out, err := execute(t, nil, "-f", path, "-b", "--format", "pem")
	require.NoError(t, err)
	assert.Equal(t, first.pemText+second.pemText, string(out), "key blocks are dropped from the bundle")

	out, err = execute(t, nil, "-f", path, "-b", "--format", "der")
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte(nil), first.der...), second.der...), out)
}

func TestExecute_OutputFile(t *testing.T) {
	isolate(t)
	fx := newFixture(t, "out.example.com")

	outPath := filepath.Join(t.TempDir(), "out.der")
	stdout, err := execute(t, nil, "-f", fx.path, "--format", "der", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, fx.der, data)
	assert.True(t, cli.OperationPerformed)
	assert.True(t, cli.OperationPerformedSuccessfully)
}

func TestExecute_InvalidOptions(t *testing.T) {
	isolate(t)
	fx := newFixture(t, "opts.example.com")

	_, err := execute(t, nil, "-f", fx.path, "--format", "xml")
	assert.ErrorIs(t, err, cli.ErrUnsupportedFormat)

	_, err = execute(t, nil, "-f", fx.path, "-a", "crc32")
	assert.ErrorIs(t, err, certparser.ErrUnsupportedAlgorithm)

	_, err = execute(t, nil, "-f", fx.path, "unexpected-arg")
	assert.Error(t, err)
}

func TestExecute_Config(t *testing.T) {
	isolate(t)
	fx := newFixture(t, "config.example.com")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("defaults:\n  algorithm: md5\n  format: json\n"), 0644))

	out, err := execute(t, nil, "-f", fx.path, "-c", cfgPath)
	require.NoError(t, err)

	var info certparser.Info
	require.NoError(t, json.Unmarshal(out, &info))
	assert.Equal(t, "md5", info.FingerprintAlgorithm)
	assert.Len(t, info.Fingerprint, 32)

	// Explicit flags take precedence over the file.
	out, err = execute(t, nil, "-f", fx.path, "-c", cfgPath, "-a", "sha1", "--format", "base64")
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(fx.der)+"\n", string(out))

	_, err = execute(t, nil, "-f", fx.path, "-c", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestExecute_ListAlgorithms(t *testing.T) {
	isolate(t)

	out, err := execute(t, nil, "--list-algorithms")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Contains(t, lines, "sha1")
	assert.Contains(t, lines, "sha3-256")
}

func TestExecute_PKCS12(t *testing.T) {
	isolate(t)

	leaf := certtest.Generate(t, certtest.DefaultTemplate("p12-leaf.example.com"))
	ca := certtest.Generate(t, certtest.DefaultTemplate("p12-ca.example.com"))

	data, err := pkcs12.Modern.EncodeTrustStore([]*x509.Certificate{leaf, ca}, "secret")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "store.p12")
	require.NoError(t, os.WriteFile(path, data, 0644))

	out, err := execute(t, nil, "-f", path, "--pkcs12", "--password", "secret", "--format", "pem")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "-----BEGIN CERTIFICATE-----"))

	out, err = execute(t, nil, "-f", path, "--pkcs12", "--password", "secret", "-b", "--format", "json")
	require.NoError(t, err)
	var infos []certparser.Info
	require.NoError(t, json.Unmarshal(out, &infos))
	require.Len(t, infos, 2)
	assert.ElementsMatch(t, []string{"p12-leaf.example.com", "p12-ca.example.com"},
		[]string{infos[0].CommonName, infos[1].CommonName})

	_, err = execute(t, nil, "-f", path, "--pkcs12", "--password", "wrong")
	assert.ErrorIs(t, err, certparser.ErrPKCS12)
}
