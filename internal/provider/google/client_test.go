package google

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/spetersoncode/lsmodels"
	"github.com/spetersoncode/lsmodels/internal/fakehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const modelsBody = `{
	"models": [
		{
			"name": "models/gemini-2.5-flash",
			"displayName": "Gemini 2.5 Flash",
			"supportedGenerationMethods": ["generateContent", "countTokens"]
		},
		{
			"name": "models/embedding-001",
			"displayName": "Embedding 001",
			"supportedGenerationMethods": ["embedContent"]
		}
	]
}`

func TestListModels(t *testing.T) {
	t.Run("returns names, labels and methods", func(t *testing.T) {
		transport := fakehttp.New(http.StatusOK, modelsBody)
		client, err := New(context.Background(), "gemini-test", WithHTTPClient(transport.Client()))
		require.NoError(t, err)

		records, err := client.ListModels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []lsmodels.ModelRecord{
			{ID: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", Methods: []string{"generateContent", "countTokens"}},
			{ID: "models/embedding-001", DisplayName: "Embedding 001", Methods: []string{"embedContent"}},
		}, records)

		require.Equal(t, 1, transport.Count())
		req := transport.Requests()[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.True(t, strings.HasSuffix(req.URL.Path, "/models"), "unexpected path %s", req.URL.Path)
		assert.Equal(t, "gemini-test", req.Header.Get("x-goog-api-key"))
	})

	t.Run("invalid key is a provider error with the vendor message", func(t *testing.T) {
		transport := fakehttp.New(http.StatusBadRequest,
			`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`)
		client, err := New(context.Background(), "bad", WithHTTPClient(transport.Client()))
		require.NoError(t, err)

		_, err = client.ListModels(context.Background())
		require.Error(t, err)

		var pe *lsmodels.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, lsmodels.ProviderGoogleAI, pe.Provider)
		assert.Equal(t, http.StatusBadRequest, pe.StatusCode())
		assert.Equal(t, lsmodels.ErrorUserInput, pe.Category())
		assert.Contains(t, err.Error(), "API key not valid")
	})
}

func TestConvertModel(t *testing.T) {
	t.Run("copies methods", func(t *testing.T) {
		m := &genai.Model{Name: "models/gemini-2.5-pro", DisplayName: "Gemini 2.5 Pro", SupportedActions: []string{"generateContent"}}
		r := ConvertModel(m)
		m.SupportedActions[0] = "mutated"
		assert.Equal(t, []string{"generateContent"}, r.Methods)
	})

	t.Run("handles missing fields", func(t *testing.T) {
		r := ConvertModel(&genai.Model{Name: "publishers/google/models/gemini-2.5-flash"})
		assert.Equal(t, "publishers/google/models/gemini-2.5-flash", r.ID)
		assert.Empty(t, r.DisplayName)
		assert.Nil(t, r.Methods)
	})
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(lsmodels.ProviderGoogleAI, nil))

	t.Run("API error keeps its code", func(t *testing.T) {
		err := WrapError(lsmodels.ProviderVertexAI, genai.APIError{Code: 403, Message: "Permission denied on project", Status: "PERMISSION_DENIED"})
		var pe *lsmodels.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, lsmodels.ProviderVertexAI, pe.Provider)
		assert.Equal(t, 403, pe.StatusCode())
		assert.Equal(t, lsmodels.ErrorPermanent, pe.Category())
	})

	t.Run("other errors have no code", func(t *testing.T) {
		cause := errors.New("dial tcp: lookup generativelanguage.googleapis.com: no such host")
		err := WrapError(lsmodels.ProviderGoogleAI, cause)
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, 0, lsmodels.StatusCodeOf(err))
	})
}
