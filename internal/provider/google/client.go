package google

import (
	"context"
	"net/http"

	"github.com/spetersoncode/lsmodels"
	"google.golang.org/genai"
)

// Client wraps the Google GenAI SDK to list Gemini API models.
type Client struct {
	client     *genai.Client
	httpClient *http.Client
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return nil, WrapError(lsmodels.ProviderGoogleAI, err)
	}
	c.client = client
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// ListModels returns the base models available to the API key.
func (c *Client) ListModels(ctx context.Context) ([]lsmodels.ModelRecord, error) {
	return ListModels(ctx, c.client, lsmodels.ProviderGoogleAI)
}

// ListModels iterates every page of client's model listing. It is shared
// by the Gemini API and Vertex AI backends; provider attributes errors.
func ListModels(ctx context.Context, client *genai.Client, provider lsmodels.Provider) ([]lsmodels.ModelRecord, error) {
	var records []lsmodels.ModelRecord
	for m, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, WrapError(provider, err)
		}
		if m == nil {
			continue
		}
		records = append(records, ConvertModel(m))
	}
	return records, nil
}
