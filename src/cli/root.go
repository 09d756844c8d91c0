// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-parser/src/certparser"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/internal/x509/fingerprint"
	"github.com/H0llyW00dzZ/x509-cert-parser/src/logger"
)

var (
	// ErrInputFileRequired is returned when neither -f nor piped stdin supplies a certificate.
	ErrInputFileRequired = errors.New("cli: input file is required (use -f FILE or pipe a certificate on stdin)")

	// ErrUnsupportedFormat is returned for an unknown --format value.
	ErrUnsupportedFormat = errors.New("cli: unsupported output format")
)

var (
	// OperationPerformed is set once a certificate has been parsed.
	OperationPerformed bool
	// OperationPerformedSuccessfully is set once output has been written.
	OperationPerformedSuccessfully bool
)

// options holds the flag values of one command invocation.
type options struct {
	inputFile      string
	outputFile     string
	algorithm      string
	format         string
	configPath     string
	bundle         bool
	pkcs12         bool
	password       string
	colon          bool
	listAlgorithms bool
}

// Execute runs the root command against os.Args, stdin and stdout.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewCommand(version, log, os.Stdin, os.Stdout)
	return cmd.ExecuteContext(ctx)
}

// NewCommand builds the root command. Input is read from stdin when -f is
// absent (or "-") and stdin is not a terminal.
func NewCommand(version string, log logger.Logger, stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName("x509-cert-parser") + " [-f FILE]",
		Short: "X.509 certificate parser",
		Long: `Read a certificate in PEM, base64 or DER form, normalize it, and print its
validity window, fingerprint and subject common name.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, log, stdin, stdout)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.inputFile, "file", "f", "", "read certificate from FILE (\"-\" for stdin)")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	flags.StringVarP(&opts.algorithm, "algorithm", "a", fingerprint.Default, "fingerprint hash algorithm")
	flags.StringVar(&opts.format, "format", "text", "output format: "+strings.Join(config.Formats, ", "))
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file (JSON or YAML)")
	flags.BoolVarP(&opts.bundle, "bundle", "b", false, "report every certificate in the input")
	flags.BoolVar(&opts.pkcs12, "pkcs12", false, "read the input as a PKCS#12 (.p12/.pfx) archive")
	flags.StringVar(&opts.password, "password", "", "password of the PKCS#12 archive")
	flags.BoolVar(&opts.colon, "colon", false, "print fingerprints as colon-separated byte pairs")
	flags.BoolVar(&opts.listAlgorithms, "list-algorithms", false, "list supported fingerprint algorithms and exit")

	return rootCmd
}

// run processes the command-line input: it loads configuration, reads the
// certificate, parses it and writes the rendered result.
func run(cmd *cobra.Command, opts *options, log logger.Logger, stdin io.Reader, stdout io.Writer) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if opts.listAlgorithms {
		_, err := fmt.Fprintln(stdout, strings.Join(fingerprint.Algorithms(), "\n"))
		return err
	}

	// Flags win over configuration only when given explicitly.
	algorithm, format, colon := cfg.Defaults.Algorithm, cfg.Defaults.Format, cfg.Defaults.Colon
	if cmd.Flags().Changed("algorithm") {
		algorithm = opts.algorithm
	}
	if cmd.Flags().Changed("format") {
		format = opts.format
	}
	if cmd.Flags().Changed("colon") {
		colon = opts.colon
	}

	if !config.ValidFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if !fingerprint.Supported(algorithm) {
		return fmt.Errorf("%w '%s'", certparser.ErrUnsupportedAlgorithm, algorithm)
	}

	data, err := readInput(opts.inputFile, stdin)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	parsers, err := parse(data, opts)
	if err != nil {
		return fmt.Errorf("error decoding certificate: %w", err)
	}
	OperationPerformed = true

	output, err := render(parsers, format, algorithm, colon, opts.bundle)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}

	if opts.outputFile != "" {
		if err := os.WriteFile(opts.outputFile, output, 0644); err != nil {
			return fmt.Errorf("error writing to output file: %w", err)
		}
		log.Printf("Wrote %d certificate(s) to %s", len(parsers), opts.outputFile)
	} else if _, err := stdout.Write(output); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	OperationPerformedSuccessfully = true
	return nil
}

// readInput reads the certificate from name, or from stdin when name is
// empty or "-". An interactive terminal on stdin is never read.
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name != "" && name != "-" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}
		return data, nil
	}

	if stdin == nil || (name == "" && isTerminal(stdin)) {
		return nil, ErrInputFileRequired
	}

	data, err := gc.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrInputFileRequired
	}
	return data, nil
}

// isTerminal reports whether r is a character device such as a TTY.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// parse decodes data according to opts. Without --bundle only the first
// certificate of a PKCS#12 archive is reported.
func parse(data []byte, opts *options) ([]*certparser.Parser, error) {
	if opts.pkcs12 {
		parsers, err := certparser.ParsePKCS12(data, opts.password)
		if err != nil {
			return nil, err
		}
		if !opts.bundle {
			parsers = parsers[:1]
		}
		return parsers, nil
	}

	if opts.bundle {
		return certparser.ParseBundle(data)
	}

	p, err := certparser.New(data)
	if err != nil {
		return nil, err
	}
	return []*certparser.Parser{p}, nil
}
