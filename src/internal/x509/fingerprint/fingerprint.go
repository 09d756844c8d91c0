// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package fingerprint

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/cases"
)

// ErrUnsupportedAlgorithm is returned for algorithm names missing from the registry.
var ErrUnsupportedAlgorithm = errors.New("fingerprint: unsupported algorithm")

// Default is the algorithm used when the caller does not choose one.
const Default = "sha1"

// registry maps case-folded algorithm names to hash constructors.
var registry = map[string]func() hash.Hash{
	"md4":         md4.New,
	"md5":         md5.New,
	"sha1":        sha1.New,
	"sha224":      sha256.New224,
	"sha256":      sha256.New,
	"sha384":      sha512.New384,
	"sha512":      sha512.New,
	"sha512/224":  sha512.New512_224,
	"sha512/256":  sha512.New512_256,
	"sha3-224":    sha3.New224,
	"sha3-256":    sha3.New256,
	"sha3-384":    sha3.New384,
	"sha3-512":    sha3.New512,
	"ripemd160":   ripemd160.New,
	"blake2b-256": unkeyed(blake2b.New256),
	"blake2b-384": unkeyed(blake2b.New384),
	"blake2b-512": unkeyed(blake2b.New512),
	"blake2s-256": unkeyed(blake2s.New256),
}

// unkeyed adapts a keyed BLAKE2 constructor. A nil key never fails.
func unkeyed(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// canonical folds the algorithm name so lookups are case-insensitive.
// A Caser carries state, so each call gets its own.
func canonical(algorithm string) string {
	return cases.Fold().String(strings.TrimSpace(algorithm))
}

// Supported reports whether algorithm names a registered hash.
func Supported(algorithm string) bool {
	_, ok := registry[canonical(algorithm)]
	return ok
}

// New returns a fresh hash for algorithm.
func New(algorithm string) (hash.Hash, error) {
	fn, ok := registry[canonical(algorithm)]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedAlgorithm, algorithm)
	}
	return fn(), nil
}

// Sum returns the lowercase hex digest of data under algorithm.
func Sum(algorithm string, data []byte) (string, error) {
	h, err := New(algorithm)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Colon renders a hex digest as uppercase byte pairs separated by colons,
// e.g. "ab01ff" becomes "AB:01:FF". A trailing odd nibble forms its own
// group, so no input character is dropped.
func Colon(hexDigest string) string {
	upper := strings.ToUpper(hexDigest)

	var b strings.Builder
	b.Grow(len(upper) + len(upper)/2)
	for i := 0; i < len(upper); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(upper[i:min(i+2, len(upper))])
	}
	return b.String()
}
