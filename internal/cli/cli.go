package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// CLIArgs are the command-line arguments for a one-shot analysis or the API
// server. Keep this small; add fields as commands need them.
type CLIArgs struct {
	// URL is the page to analyze. Required unless Serve is set.
	URL string

	// Serve runs the HTTP API server instead of a one-shot analysis.
	Serve bool

	// Addr is the listen address when Serve is set.
	Addr string

	// Timeout bounds page navigation; 0 means "use config default".
	Timeout time.Duration

	// Suggest enables remediation suggestions in the output.
	Suggest bool

	// AIKey enables the upstream AI provider for suggestions when set.
	AIKey string

	// AIModel overrides the default AI model.
	AIModel string

	// Verbose enables debug logging.
	Verbose bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not read
// os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("aria", flag.ContinueOnError)
	var (
		url     = fs.String("url", "", "Page URL to analyze (required unless -serve)")
		serve   = fs.Bool("serve", false, "Run the HTTP API server")
		addr    = fs.String("addr", ":8080", "Listen address for -serve")
		timeout = fs.Duration("timeout", 0, "Page navigation timeout (0=use default)")
		suggest = fs.Bool("suggest", false, "Include remediation suggestions in the report")
		aiKey   = fs.String("ai-key", "", "API key for AI-generated suggestions (empty=static fallback)")
		aiModel = fs.String("ai-model", "", "AI model for suggestions (empty=use default)")
		verbose = fs.Bool("v", false, "Enable debug logging")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if !*serve && strings.TrimSpace(*url) == "" {
		return nil, fmt.Errorf("missing required -url argument")
	}

	return &CLIArgs{
		URL:     *url,
		Serve:   *serve,
		Addr:    *addr,
		Timeout: *timeout,
		Suggest: *suggest,
		AIKey:   *aiKey,
		AIModel: *aiModel,
		Verbose: *verbose,
		RawArgs: args,
	}, nil
}
