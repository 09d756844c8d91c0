// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"crypto/sha256"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/certparser"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
)

// certCache keeps parsed certificates between tool calls, keyed by the
// SHA-256 of the raw input. Clients tend to call several tools on the same
// certificate in a row. A nil *certCache parses every time.
type certCache struct {
	lru *expirable.LRU[[sha256.Size]byte, *certparser.Parser]
}

// newCertCache returns a cache sized by cfg, or nil when caching is disabled.
func newCertCache(cfg *config.Config) *certCache {
	if cfg == nil || cfg.MCP.CacheSize <= 0 {
		return nil
	}

	ttl := time.Duration(cfg.MCP.CacheTTLSeconds) * time.Second
	return &certCache{
		lru: expirable.NewLRU[[sha256.Size]byte, *certparser.Parser](cfg.MCP.CacheSize, nil, ttl),
	}
}

// parse returns the cached parser for data or parses and stores it.
// Failures are not cached.
func (c *certCache) parse(data []byte) (*certparser.Parser, error) {
	if c == nil {
		return certparser.New(data)
	}

	key := sha256.Sum256(data)
	if p, ok := c.lru.Get(key); ok {
		return p, nil
	}

	p, err := certparser.New(data)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, p)
	return p, nil
}

// Len reports the number of cached certificates.
func (c *certCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
