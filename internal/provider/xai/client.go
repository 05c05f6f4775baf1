// Package xai lists models through the xAI API.
//
// xAI speaks the OpenAI wire protocol, so the client is the openai
// provider pointed at [BaseURL]. Some ids xAI returns are aliases that
// the API resolves to a dated model; they are listed as returned.
package xai

import (
	"context"
	"net/http"

	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/provider/openai"
)

// BaseURL is the xAI API root.
const BaseURL = "https://api.x.ai/v1/"

// Advisory explains how xAI model aliases behave.
const Advisory = "NOTE: xAI uses aliases, so some ids (e.g. grok-4) are accepted API names " +
	"that resolve server-side to a dated model (e.g. grok-4-0709). Ids are shown as returned."

// Client lists xAI models.
type Client struct {
	client     *openai.Client
	httpClient *http.Client
}

// New creates a new xAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	c.client = openai.New(apiKey,
		openai.WithProvider(lsmodels.ProviderXAI),
		openai.WithBaseURL(BaseURL),
		openai.WithHTTPClient(c.httpClient),
		openai.WithFineTuned(true),
	)
	return c
}

// ClientOption configures the xAI client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// ListModels returns the models and aliases visible to the API key.
func (c *Client) ListModels(ctx context.Context) ([]lsmodels.ModelRecord, error) {
	return c.client.ListModels(ctx)
}
