package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/provider/vertex"
	"github.com/spetersoncode/lsmodels/lister"
)

// Config holds the command configuration from flags and environment.
type Config struct {
	Provider         lsmodels.Provider
	Region           string
	IncludeFineTuned bool
	LogLevel         string // debug, info, warn, error

	// Env resolves variables from the process environment, then .env.
	Env lister.Env
}

// LoadConfig parses args into a Config. Variables in a .env file in the
// working directory are visible through Config.Env; the process
// environment is left untouched and takes precedence.
func LoadConfig(args []string, output io.Writer) (*Config, error) {
	dotenv, err := readDotEnv()
	if err != nil {
		return nil, err
	}
	env := lookupEnv(dotenv)

	fs := flag.NewFlagSet("lsmodels", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usage(fs) }

	provider := fs.String("provider", "", "the LLM provider backend: "+lsmodels.ProviderNames())
	region := fs.String("region", "", "Google Cloud region for VertexAI (default "+vertex.DefaultRegion+"); ignored for other providers")
	fineTuned := fs.Bool("fine-tuned", false, "also list fine-tuned OpenAI models")
	logLevel := fs.String("log-level", getEnvOrDefault(env, "LSMODELS_LOG_LEVEL", "warn"), "diagnostic log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	name := *provider
	switch {
	case name == "" && fs.NArg() == 1:
		name = fs.Arg(0)
	case fs.NArg() > 1 || (name != "" && fs.NArg() > 0):
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if name == "" {
		return nil, fmt.Errorf("--provider is required (%s)", lsmodels.ProviderNames())
	}

	p, err := lsmodels.ParseProvider(name)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider:         p,
		Region:           strings.TrimSpace(*region),
		IncludeFineTuned: *fineTuned,
		LogLevel:         *logLevel,
		Env:              env,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option combinations that can be rejected locally.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Provider == lsmodels.ProviderVertexAI && c.Region != "" {
		if err := vertex.ValidateRegion(c.Region); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
	}
	return level, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "List available LLM models from various providers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: lsmodels --provider <name> [--region <region>] [--fine-tuned]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Providers and credentials:")
	fmt.Fprintln(w, "  OpenAI     OPENAI_API_KEY")
	fmt.Fprintln(w, "  Anthropic  ANTHROPIC_API_KEY")
	fmt.Fprintln(w, "  xAI        XAI_API_KEY")
	fmt.Fprintln(w, "  GoogleAI   GOOGLE_API_KEY (Google AI Studio, auto-routed region)")
	fmt.Fprintln(w, "  VertexAI   GOOGLE_CLOUD_PROJECT + Application Default Credentials (region-specific)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

// readDotEnv reads .env if present.
func readDotEnv() (map[string]string, error) {
	vars, err := godotenv.Read()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	return vars, nil
}

// lookupEnv returns an Env that prefers non-empty process variables over dotenv.
func lookupEnv(dotenv map[string]string) lister.Env {
	return func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}
}

func getEnvOrDefault(env lister.Env, key, defaultValue string) string {
	if value, ok := env(key); ok && value != "" {
		return value
	}
	return defaultValue
}
