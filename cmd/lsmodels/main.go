// Command lsmodels lists the models available from an LLM provider.
//
// Usage:
//
//	lsmodels --provider OpenAI
//	lsmodels --provider VertexAI --region europe-west4
//
// Credentials come from the environment or a .env file in the working
// directory; the environment wins:
//
//	OPENAI_API_KEY       - OpenAI
//	GOOGLE_API_KEY       - GoogleAI (Gemini API)
//	GOOGLE_CLOUD_PROJECT - VertexAI, with Application Default Credentials
//	ANTHROPIC_API_KEY    - Anthropic
//	XAI_API_KEY          - xAI
//	LSMODELS_LOG_LEVEL   - Diagnostic log level (default: warn)
//
// The exit status is 0 on success, 1 when the credential is missing or the
// provider call fails, and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/provider/vertex"
	"github.com/spetersoncode/lsmodels/lister"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...lister.Option) int {
	cfg, err := LoadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, vertex.ErrInvalidRegion) {
			printRegionHelp(stderr)
		}
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	if cfg.Region != "" && cfg.Provider != lsmodels.ProviderVertexAI {
		logger.Warn("--region is ignored for this provider", "provider", cfg.Provider.String())
	}

	src, err := lister.SourceFor(cfg.Provider, lister.SourceOptions{
		Region:           cfg.Region,
		IncludeFineTuned: cfg.IncludeFineTuned,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	l := lister.New(append([]lister.Option{lister.WithEnv(cfg.Env), lister.WithLogger(logger)}, opts...)...)
	listing, err := l.List(ctx, src)
	if err != nil {
		reportError(stderr, err)
		return exitError
	}

	if _, err := listing.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// reportError prints err, adding a hint for the common failure kinds.
func reportError(w io.Writer, err error) {
	var authErr *lsmodels.AuthError
	if errors.As(err, &authErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		if authErr.Provider == lsmodels.ProviderVertexAI && authErr.EnvVar == "" {
			fmt.Fprintln(w, "Run 'gcloud auth application-default login' or set GOOGLE_APPLICATION_CREDENTIALS.")
		}
		return
	}

	fmt.Fprintf(w, "Error listing models: %v\n", err)
	if errors.Is(err, vertex.ErrInvalidRegion) {
		printRegionHelp(w)
	}
}

func printRegionHelp(w io.Writer) {
	fmt.Fprintln(w, "\nCommon Vertex AI regions:")
	fmt.Fprintf(w, "  %s\n", strings.Join(vertex.CommonRegions[:3], ", "))
	fmt.Fprintf(w, "  %s\n", strings.Join(vertex.CommonRegions[3:5], ", "))
	fmt.Fprintf(w, "  %s\n", strings.Join(vertex.CommonRegions[5:], ", "))
	fmt.Fprintln(w, "\nSee: https://cloud.google.com/vertex-ai/docs/general/locations")
}
