package lister

import (
	"context"
	"fmt"

	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/provider/anthropic"
	"github.com/spetersoncode/lsmodels/internal/provider/google"
	"github.com/spetersoncode/lsmodels/internal/provider/openai"
	"github.com/spetersoncode/lsmodels/internal/provider/vertex"
	"github.com/spetersoncode/lsmodels/internal/provider/xai"
)

// Credential environment variables.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvGoogleKey     = "GOOGLE_API_KEY"
	EnvGoogleProject = "GOOGLE_CLOUD_PROJECT"
	EnvAnthropicKey  = "ANTHROPIC_API_KEY"
	EnvXAIKey        = "XAI_API_KEY"
)

// Source is a model-listing backend. Each implementation owns how its
// credential is resolved and how its client is built. The set is closed:
// only the types in this package implement it.
type Source interface {
	Provider() lsmodels.Provider
	list(ctx context.Context, l *Lister) (*Listing, error)
}

// OpenAI lists models from the OpenAI API.
type OpenAI struct {
	// IncludeFineTuned also lists fine-tuned ("ft:") models.
	IncludeFineTuned bool
}

// GoogleAI lists models from the Gemini API (Google AI Studio).
type GoogleAI struct{}

// VertexAI lists models from Google Cloud Vertex AI.
type VertexAI struct {
	// Region pins the regional endpoint; empty means vertex.DefaultRegion.
	Region string
}

// Anthropic lists models from the Anthropic API.
type Anthropic struct{}

// XAI lists models from the xAI API.
type XAI struct{}

// SourceOptions carries the flags that only some sources use.
type SourceOptions struct {
	Region           string
	IncludeFineTuned bool
}

// SourceFor returns the Source for p.
func SourceFor(p lsmodels.Provider, opts SourceOptions) (Source, error) {
	switch p {
	case lsmodels.ProviderOpenAI:
		return OpenAI{IncludeFineTuned: opts.IncludeFineTuned}, nil
	case lsmodels.ProviderGoogleAI:
		return GoogleAI{}, nil
	case lsmodels.ProviderVertexAI:
		return VertexAI{Region: opts.Region}, nil
	case lsmodels.ProviderAnthropic:
		return Anthropic{}, nil
	case lsmodels.ProviderXAI:
		return XAI{}, nil
	default:
		return nil, fmt.Errorf("%w %q", lsmodels.ErrUnknownProvider, p)
	}
}

// Provider returns lsmodels.ProviderOpenAI.
func (OpenAI) Provider() lsmodels.Provider { return lsmodels.ProviderOpenAI }

func (s OpenAI) list(ctx context.Context, l *Lister) (*Listing, error) {
	key, err := l.credential(lsmodels.ProviderOpenAI, EnvOpenAIKey)
	if err != nil {
		return nil, err
	}
	client := openai.New(key,
		openai.WithHTTPClient(l.httpClient),
		openai.WithFineTuned(s.IncludeFineTuned),
	)
	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Provider: lsmodels.ProviderOpenAI,
		Banner:   "Listing available OpenAI models...",
		Models:   models,
	}, nil
}

// Provider returns lsmodels.ProviderGoogleAI.
func (GoogleAI) Provider() lsmodels.Provider { return lsmodels.ProviderGoogleAI }

func (GoogleAI) list(ctx context.Context, l *Lister) (*Listing, error) {
	key, err := l.credential(lsmodels.ProviderGoogleAI, EnvGoogleKey)
	if err != nil {
		return nil, err
	}
	client, err := google.New(ctx, key, google.WithHTTPClient(l.httpClient))
	if err != nil {
		return nil, err
	}
	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Provider: lsmodels.ProviderGoogleAI,
		Banner:   "Listing available Google AI Studio models (auto-routed region)...",
		Models:   models,
	}, nil
}

// Provider returns lsmodels.ProviderVertexAI.
func (VertexAI) Provider() lsmodels.Provider { return lsmodels.ProviderVertexAI }

func (s VertexAI) list(ctx context.Context, l *Lister) (*Listing, error) {
	project, err := l.credential(lsmodels.ProviderVertexAI, EnvGoogleProject)
	if err != nil {
		return nil, err
	}
	client, err := vertex.New(ctx, project, s.Region,
		vertex.WithCredentialsFunc(l.googleCredentials),
		vertex.WithHTTPClient(l.httpClient),
	)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("vertex endpoint", "project", project, "region", client.Region(), "endpoint", client.Endpoint())

	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Provider: lsmodels.ProviderVertexAI,
		Banner:   fmt.Sprintf("Listing available Vertex AI models (project: %s, region: %s)...", project, client.Region()),
		Models:   models,
	}, nil
}

// Provider returns lsmodels.ProviderAnthropic.
func (Anthropic) Provider() lsmodels.Provider { return lsmodels.ProviderAnthropic }

func (Anthropic) list(ctx context.Context, l *Lister) (*Listing, error) {
	key, err := l.credential(lsmodels.ProviderAnthropic, EnvAnthropicKey)
	if err != nil {
		return nil, err
	}
	client := anthropic.New(key, anthropic.WithHTTPClient(l.httpClient))
	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Provider: lsmodels.ProviderAnthropic,
		Banner:   "Listing available Anthropic models...",
		Models:   models,
	}, nil
}

// Provider returns lsmodels.ProviderXAI.
func (XAI) Provider() lsmodels.Provider { return lsmodels.ProviderXAI }

func (XAI) list(ctx context.Context, l *Lister) (*Listing, error) {
	key, err := l.credential(lsmodels.ProviderXAI, EnvXAIKey)
	if err != nil {
		return nil, err
	}
	client := xai.New(key, xai.WithHTTPClient(l.httpClient))
	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Provider: lsmodels.ProviderXAI,
		Banner:   "Listing available xAI models...",
		Advisory: xai.Advisory,
		Models:   models,
	}, nil
}

var (
	_ Source = OpenAI{}
	_ Source = GoogleAI{}
	_ Source = VertexAI{}
	_ Source = Anthropic{}
	_ Source = XAI{}
)
