// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/fingerprint"
)

const (
	// EnvConfigFile names the environment variable holding the config file path.
	EnvConfigFile = "X509_PARSER_CONFIG_FILE"
	// EnvAlgorithm overrides defaults.algorithm.
	EnvAlgorithm = "X509_PARSER_ALGORITHM"
	// EnvFormat overrides defaults.format.
	EnvFormat = "X509_PARSER_FORMAT"
)

// ErrInvalidConfig indicates that the configuration failed schema validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema string

// Formats lists the output formats accepted by defaults.format.
var Formats = []string{"text", "json", "yaml", "table", "pem", "der", "base64"}

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the configuration shared by the CLI and the MCP server.
type Config struct {
	// Defaults: Default settings for certificate operations
	Defaults struct {
		// Algorithm: Fingerprint hash algorithm
		Algorithm string `json:"algorithm" yaml:"algorithm"`
		// Format: Output format for the CLI
		Format string `json:"format" yaml:"format"`
		// Colon: Render fingerprints as colon-separated byte pairs
		Colon bool `json:"colon" yaml:"colon"`
	} `json:"defaults" yaml:"defaults"`

	// MCP: Settings for the MCP server
	MCP struct {
		// CacheSize: Parsed certificates kept between tool calls (0 disables the cache)
		CacheSize int `json:"cacheSize" yaml:"cacheSize"`
		// CacheTTLSeconds: Lifetime of a cached certificate
		CacheTTLSeconds int `json:"cacheTTLSeconds" yaml:"cacheTTLSeconds"`
	} `json:"mcp" yaml:"mcp"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	config := &Config{}
	config.Defaults.Algorithm = fingerprint.Default
	config.Defaults.Format = "text"
	config.MCP.CacheSize = 128
	config.MCP.CacheTTLSeconds = 300
	return config
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// toJSON converts configuration data to JSON so one schema covers both formats.
func toJSON(data []byte, format configFormat) ([]byte, error) {
	if format == configFormatJSON {
		return data, nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML config file: %w", err)
	}
	return out, nil
}

// validate checks a JSON document against the embedded schema.
func validate(doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to parse JSON config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Parse decodes configuration data in the given file format on top of
// the defaults. The document is validated before it is applied.
func Parse(data []byte, configPath string) (*Config, error) {
	doc, err := toJSON(data, detectConfigFormat(configPath))
	if err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(doc, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
	}

	if config.Defaults.Algorithm == "" {
		config.Defaults.Algorithm = fingerprint.Default
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	return config, nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_PARSER_CONFIG_FILE is checked if configPath is empty
//  3. Config file values override defaults
//  4. X509_PARSER_ALGORITHM and X509_PARSER_FORMAT override both
//
// The algorithm is checked against the fingerprint registry after all
// sources are merged.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if config, err = Parse(data, configPath); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvAlgorithm); v != "" {
		config.Defaults.Algorithm = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		config.Defaults.Format = v
	}

	if !fingerprint.Supported(config.Defaults.Algorithm) {
		return nil, fmt.Errorf("%w: unsupported algorithm '%s'", ErrInvalidConfig, config.Defaults.Algorithm)
	}
	if !ValidFormat(config.Defaults.Format) {
		return nil, fmt.Errorf("%w: unsupported format '%s'", ErrInvalidConfig, config.Defaults.Format)
	}

	return config, nil
}

// ValidFormat reports whether format is one of [Formats].
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
