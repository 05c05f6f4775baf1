package anthropic

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
	"data": [
		{"type": "model", "id": "claude-opus-4-1-20250805", "display_name": "Claude Opus 4.1", "created_at": "2025-08-05T00:00:00Z"},
		{"type": "model", "id": "claude-sonnet-4-5-20250929", "display_name": "Claude Sonnet 4.5", "created_at": "2025-09-29T00:00:00Z"},
		{"type": "model", "id": "claude-internal-preview", "display_name": "", "created_at": "2025-01-01T00:00:00Z"}
	],
	"has_more": false,
	"first_id": "claude-opus-4-1-20250805",
	"last_id": "claude-internal-preview"
}`

func TestListModels(t *testing.T) {
	t.Run("returns ids with display labels", func(t *testing.T) {
		transport := fakehttp.New(http.StatusOK, modelsBody)
		client := New("sk-ant-test", WithHTTPClient(transport.Client()))

		records, err := client.ListModels(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, lsmodels.ModelRecord{ID: "claude-opus-4-1-20250805", DisplayName: "Claude Opus 4.1"}, records[0])
		assert.Equal(t, lsmodels.ModelRecord{ID: "claude-sonnet-4-5-20250929", DisplayName: "Claude Sonnet 4.5"}, records[1])

		for _, r := range records {
			assert.NotEmpty(t, r.ID)
			assert.NotEmpty(t, r.DisplayName, "record %s has no label", r.ID)
		}
		assert.Equal(t, "claude-internal-preview", records[2].DisplayName)

		require.Equal(t, 1, transport.Count())
		req := transport.Requests()[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/v1/models", req.URL.Path)
		assert.Equal(t, "sk-ant-test", req.Header.Get("X-Api-Key"))
	})
}

func TestListModelsErrors(t *testing.T) {
	t.Run("invalid key is a permanent provider error", func(t *testing.T) {
		transport := fakehttp.New(http.StatusUnauthorized,
			`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
		client := New("bad", WithHTTPClient(transport.Client()))

		_, err := client.ListModels(context.Background())
		require.Error(t, err)

		var pe *lsmodels.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, lsmodels.ProviderAnthropic, pe.Provider)
		assert.Equal(t, lsmodels.ErrorPermanent, pe.Category())
		assert.Equal(t, http.StatusUnauthorized, pe.StatusCode())
		assert.Contains(t, err.Error(), "invalid x-api-key")
	})

	t.Run("overload is not retried", func(t *testing.T) {
		transport := fakehttp.New(529, `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`)
		client := New("sk-ant-test", WithHTTPClient(transport.Client()))

		_, err := client.ListModels(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, transport.Count())
		assert.Equal(t, lsmodels.ErrorTransient, lsmodels.CategoryOf(err))
	})
}
