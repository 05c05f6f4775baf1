package lister

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"
	"github.com/spetersoncode/lsmodels"
)

// cloudPlatformScope is the OAuth scope Vertex AI requests need.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Env looks up an environment variable, reporting whether it is set.
type Env func(key string) (string, bool)

// Lister resolves credentials and lists models for one Source at a time.
// It holds no state between calls.
type Lister struct {
	env             Env
	httpClient      *http.Client
	logger          *slog.Logger
	googleCreds     *auth.Credentials
	detectGoogleADC func() (*auth.Credentials, error)
}

// Option configures a Lister.
type Option func(*Lister)

// WithEnv sets where credentials are read from. The default is the process environment.
func WithEnv(env Env) Option {
	return func(l *Lister) {
		l.env = env
	}
}

// WithHTTPClient sets the HTTP client handed to every provider SDK.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *Lister) {
		l.httpClient = hc
	}
}

// WithLogger sets the logger for diagnostics. Credentials are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lister) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithGoogleCredentials sets the credentials used for Vertex AI instead of
// discovering Application Default Credentials.
func WithGoogleCredentials(creds *auth.Credentials) Option {
	return func(l *Lister) {
		l.googleCreds = creds
	}
}

// New creates a Lister.
func New(opts ...Option) *Lister {
	l := &Lister{
		env:    os.LookupEnv,
		logger: slog.New(slog.DiscardHandler),
		detectGoogleADC: func() (*auth.Credentials, error) {
			return credentials.DetectDefault(&credentials.DetectOptions{
				Scopes: []string{cloudPlatformScope},
			})
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List resolves src's credential and returns its models sorted by id.
// Errors are *lsmodels.AuthError or *lsmodels.ProviderError. A missing
// credential is reported before any network call.
func (l *Lister) List(ctx context.Context, src Source) (*Listing, error) {
	log := l.logger.With("provider", src.Provider().String())
	log.Debug("listing models")

	listing, err := src.list(ctx, l)
	if err != nil {
		log.Debug("listing failed", "error", err)
		return nil, err
	}

	lsmodels.SortRecords(listing.Models)
	log.Debug("listed models", "count", len(listing.Models))
	return listing, nil
}

// credential reads envVar, failing closed when it is unset or blank.
func (l *Lister) credential(p lsmodels.Provider, envVar string) (string, error) {
	value, ok := l.env(envVar)
	if !ok || strings.TrimSpace(value) == "" {
		return "", &lsmodels.AuthError{Provider: p, EnvVar: envVar}
	}
	l.logger.Debug("resolved credential", "provider", p.String(), "env", envVar)
	return value, nil
}

// googleCredentials returns the configured credentials or discovers ADC.
func (l *Lister) googleCredentials() (*auth.Credentials, error) {
	if l.googleCreds != nil {
		return l.googleCreds, nil
	}
	creds, err := l.detectGoogleADC()
	if err != nil {
		return nil, &lsmodels.AuthError{Provider: lsmodels.ProviderVertexAI, Cause: err}
	}
	return creds, nil
}
