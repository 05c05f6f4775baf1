package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/lsmodels"
)

// fineTunedPrefix marks ids of fine-tuned models.
const fineTunedPrefix = "ft:"

// Client wraps the OpenAI SDK to list models.
type Client struct {
	client           *openai.Client
	provider         lsmodels.Provider
	includeFineTuned bool
	requestOptions   []option.RequestOption
}

// New creates a new OpenAI client with the given API key.
// SDK retries are disabled: a failed listing is reported, not repeated.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		provider: lsmodels.ProviderOpenAI,
	}
	for _, opt := range opts {
		opt(c)
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	client := openai.NewClient(append(requestOptions, c.requestOptions...)...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithBaseURL points the client at an OpenAI-compatible API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.requestOptions = append(c.requestOptions, option.WithBaseURL(baseURL))
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.requestOptions = append(c.requestOptions, option.WithHTTPClient(hc))
		}
	}
}

// WithProvider sets the provider that errors are attributed to.
func WithProvider(p lsmodels.Provider) ClientOption {
	return func(c *Client) {
		c.provider = p
	}
}

// WithFineTuned controls whether fine-tuned ("ft:") models are listed.
func WithFineTuned(include bool) ClientOption {
	return func(c *Client) {
		c.includeFineTuned = include
	}
}

// ListModels returns the models visible to the API key, in the order the
// API returned them.
func (c *Client) ListModels(ctx context.Context) ([]lsmodels.ModelRecord, error) {
	iter := c.client.Models.ListAutoPaging(ctx)

	var records []lsmodels.ModelRecord
	for iter.Next() {
		m := iter.Current()
		if !c.includeFineTuned && strings.HasPrefix(m.ID, fineTunedPrefix) {
			continue
		}
		records = append(records, lsmodels.ModelRecord{ID: m.ID})
	}
	if err := iter.Err(); err != nil {
		return nil, wrapError(c.provider, err)
	}
	return records, nil
}
