// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// GetExecutableName returns the name the program was invoked as, taken from
// os.Args[0], or fallback when it is unavailable.
func GetExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return ExecutableName(os.Args[0], fallback)
}

// ExecutableName strips the directory and a trailing ".exe" from argv0.
// Both '/' and '\' count as separators. An argv0 with no name component
// yields fallback.
func ExecutableName(argv0, fallback string) string {
	if i := strings.LastIndexAny(argv0, `/\`); i >= 0 {
		argv0 = argv0[i+1:]
	}

	name := strings.TrimSuffix(argv0, ".exe")
	if name == "" || name == "." || name == ".." {
		return fallback
	}
	return name
}
