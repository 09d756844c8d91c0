// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers for presenting the running program the way
// a [POSIX] shell user invoked it.
//
// The CLI uses [GetExecutableName] in its usage line, so a renamed binary
// reports its own name:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName("x509-cert-parser") + " [-f FILE]",
//	}
//
// Both separators are honored regardless of the host, so a Windows-style
// argv[0] such as "C:\bin\x509-cert-parser.exe" yields "x509-cert-parser"
// on Linux as well.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
