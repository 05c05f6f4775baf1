package openai

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/fakehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelsBody = `{
	"object": "list",
	"data": [
		{"id": "gpt-3.5-turbo", "object": "model", "created": 1677610602, "owned_by": "openai"},
		{"id": "ft:gpt-4o-mini:acme::abc123", "object": "model", "created": 1721172717, "owned_by": "acme"},
		{"id": "dall-e-2", "object": "model", "created": 1698798177, "owned_by": "system"}
	]
}`

func TestListModels(t *testing.T) {
	t.Run("returns models in API order without fine-tuned ids", func(t *testing.T) {
		transport := fakehttp.New(http.StatusOK, modelsBody)
		client := New("sk-test", WithHTTPClient(transport.Client()))

		records, err := client.ListModels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []lsmodels.ModelRecord{{ID: "gpt-3.5-turbo"}, {ID: "dall-e-2"}}, records)

		require.Equal(t, 1, transport.Count())
		req := transport.Requests()[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/v1/models", req.URL.Path)
		assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
	})

	t.Run("includes fine-tuned ids when asked", func(t *testing.T) {
		transport := fakehttp.New(http.StatusOK, modelsBody)
		client := New("sk-test", WithHTTPClient(transport.Client()), WithFineTuned(true))

		records, err := client.ListModels(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "ft:gpt-4o-mini:acme::abc123", records[1].ID)
	})

	t.Run("uses the configured base URL", func(t *testing.T) {
		transport := fakehttp.New(http.StatusOK, `{"object":"list","data":[]}`)
		client := New("key", WithHTTPClient(transport.Client()), WithBaseURL("https://api.x.ai/v1/"))

		records, err := client.ListModels(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)

		require.Equal(t, 1, transport.Count())
		req := transport.Requests()[0]
		assert.Equal(t, "api.x.ai", req.URL.Host)
		assert.Equal(t, "/v1/models", req.URL.Path)
	})
}

func TestListModelsErrors(t *testing.T) {
	t.Run("auth failure is a permanent provider error", func(t *testing.T) {
		transport := fakehttp.New(http.StatusUnauthorized,
			`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
		client := New("sk-bad", WithHTTPClient(transport.Client()))

		_, err := client.ListModels(context.Background())
		require.Error(t, err)

		var pe *lsmodels.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, lsmodels.ProviderOpenAI, pe.Provider)
		assert.Equal(t, lsmodels.ErrorPermanent, pe.Category())
		assert.Equal(t, http.StatusUnauthorized, pe.StatusCode())
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})

	t.Run("server errors are not retried", func(t *testing.T) {
		transport := fakehttp.New(http.StatusInternalServerError, `{"error":{"message":"boom"}}`)
		client := New("sk-test", WithHTTPClient(transport.Client()))

		_, err := client.ListModels(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, transport.Count())
		assert.Equal(t, lsmodels.ErrorTransient, lsmodels.CategoryOf(err))
	})

	t.Run("errors are attributed to the configured provider", func(t *testing.T) {
		transport := fakehttp.New(http.StatusForbidden, `{"error":{"message":"forbidden"}}`)
		client := New("key", WithHTTPClient(transport.Client()), WithProvider(lsmodels.ProviderXAI))

		_, err := client.ListModels(context.Background())
		var pe *lsmodels.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, lsmodels.ProviderXAI, pe.Provider)
	})
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, wrapError(lsmodels.ProviderOpenAI, nil))

	netErr := errors.New("dial tcp: connection refused")
	err := wrapError(lsmodels.ProviderOpenAI, netErr)
	assert.True(t, errors.Is(err, netErr))
	assert.Equal(t, 0, lsmodels.StatusCodeOf(err))
	assert.Equal(t, lsmodels.ErrorTransient, lsmodels.CategoryOf(err))
}
