package anthropic

import (
	"context"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spetersoncode/lsmodels"
)

// Client wraps the Anthropic SDK to list models.
type Client struct {
	client         *anthropic.Client
	requestOptions []option.RequestOption
}

// New creates a new Anthropic client with the given API key.
// SDK retries are disabled: a failed listing is reported, not repeated.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	client := anthropic.NewClient(append(requestOptions, c.requestOptions...)...)
	c.client = &client
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.requestOptions = append(c.requestOptions, option.WithHTTPClient(hc))
		}
	}
}

// ListModels returns every model with its id and display label.
// A model without a label from the API is labelled with its id.
func (c *Client) ListModels(ctx context.Context) ([]lsmodels.ModelRecord, error) {
	iter := c.client.Models.ListAutoPaging(ctx, anthropic.ModelListParams{})

	var records []lsmodels.ModelRecord
	for iter.Next() {
		m := iter.Current()
		label := m.DisplayName
		if label == "" {
			label = m.ID
		}
		records = append(records, lsmodels.ModelRecord{
			ID:          m.ID,
			DisplayName: label,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, wrapError(err)
	}
	return records, nil
}
