package vertex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/httptransport"
	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/provider/google"
	"google.golang.org/genai"
)

// DefaultRegion is used when no region is given.
const DefaultRegion = "us-central1"

// GlobalRegion selects the multi-region endpoint.
const GlobalRegion = "global"

// ErrInvalidRegion is wrapped by errors for malformed region names.
var ErrInvalidRegion = errors.New("invalid region")

// regionPattern matches <continent>-<location><number>, e.g. europe-west4.
var regionPattern = regexp.MustCompile(`^[a-z]+-[a-z]+[0-9]+$`)

// CommonRegions lists frequently used Vertex AI regions.
var CommonRegions = []string{
	"us-central1", "us-east4", "us-west1",
	"europe-west1", "europe-west4",
	"asia-northeast1", "asia-southeast1",
}

// ValidateRegion checks that region is well formed. It does not check
// that the region offers Vertex AI; the API reports that.
func ValidateRegion(region string) error {
	if region == GlobalRegion || regionPattern.MatchString(region) {
		return nil
	}
	return fmt.Errorf("%w %q: expected <continent>-<location><number> (e.g. 'us-central1', 'europe-west4')",
		ErrInvalidRegion, region)
}

// Endpoint returns the Vertex AI API root for region.
func Endpoint(region string) string {
	if region == GlobalRegion {
		return "https://aiplatform.googleapis.com/"
	}
	return fmt.Sprintf("https://%s-aiplatform.googleapis.com/", region)
}

// Client wraps the Google GenAI SDK configured for the Vertex AI backend.
type Client struct {
	client      *genai.Client
	project     string
	region      string
	credentials *auth.Credentials
	credsFunc   func() (*auth.Credentials, error)
	httpClient  *http.Client
}

// New creates a new Vertex AI client for project in region. An empty
// region selects DefaultRegion. A malformed region is reported before
// any credential is resolved. Without WithCredentials or
// WithCredentialsFunc the SDK uses Application Default Credentials.
func New(ctx context.Context, project, region string, opts ...ClientOption) (*Client, error) {
	if region == "" {
		region = DefaultRegion
	}
	if err := ValidateRegion(region); err != nil {
		return nil, &lsmodels.ProviderError{
			Provider: lsmodels.ProviderVertexAI,
			Cat:      lsmodels.ErrorUserInput,
			Cause:    err,
		}
	}

	c := &Client{
		project: project,
		region:  region,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.credentials == nil && c.credsFunc != nil {
		creds, err := c.credsFunc()
		if err != nil {
			return nil, err
		}
		c.credentials = creds
	}

	cfg, err := c.clientConfig()
	if err != nil {
		return nil, google.WrapError(lsmodels.ProviderVertexAI, err)
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, google.WrapError(lsmodels.ProviderVertexAI, err)
	}
	c.client = client
	return c, nil
}

// ClientOption configures the Vertex AI client.
type ClientOption func(*Client)

// WithCredentials sets the Google Cloud credentials used for requests.
func WithCredentials(creds *auth.Credentials) ClientOption {
	return func(c *Client) {
		c.credentials = creds
	}
}

// WithCredentialsFunc defers credential lookup until the region has been
// validated. Errors from fn are returned by New unchanged.
func WithCredentialsFunc(fn func() (*auth.Credentials, error)) ClientOption {
	return func(c *Client) {
		c.credsFunc = fn
	}
}

// WithHTTPClient sets the HTTP client whose transport carries requests.
// Credentials given with WithCredentials are layered on top of it.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// clientConfig builds the genai configuration with the regional endpoint
// as the request target.
func (c *Client) clientConfig() (*genai.ClientConfig, error) {
	cfg := &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     c.project,
		Location:    c.region,
		Credentials: c.credentials,
		HTTPOptions: genai.HTTPOptions{BaseURL: Endpoint(c.region)},
	}
	if c.httpClient != nil && c.credentials != nil {
		// genai sends through a supplied client as-is, so attach auth here.
		hc, err := httptransport.NewClient(&httptransport.Options{
			Credentials:      c.credentials,
			BaseRoundTripper: c.httpClient.Transport,
		})
		if err != nil {
			return nil, err
		}
		cfg.HTTPClient = hc
	} else if c.httpClient != nil {
		cfg.HTTPClient = c.httpClient
	}
	return cfg, nil
}

// Region returns the region requests are sent to.
func (c *Client) Region() string { return c.region }

// Endpoint returns the API root requests are sent to.
func (c *Client) Endpoint() string { return Endpoint(c.region) }

// ListModels returns the Google publisher models served in the client's region.
func (c *Client) ListModels(ctx context.Context) ([]lsmodels.ModelRecord, error) {
	return google.ListModels(ctx, c.client, lsmodels.ProviderVertexAI)
}
