package lsmodels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input    string
		expected Provider
	}{
		{"OpenAI", ProviderOpenAI},
		{"openai", ProviderOpenAI},
		{"GoogleAI", ProviderGoogleAI},
		{"vertexai", ProviderVertexAI},
		{" Anthropic ", ProviderAnthropic},
		{"xAI", ProviderXAI},
		{"XAI", ProviderXAI},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseProvider(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseProvider("mistral")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownProvider))
		assert.Contains(t, err.Error(), `"mistral"`)
		assert.Contains(t, err.Error(), "OpenAI, Anthropic, xAI, GoogleAI, VertexAI")
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := ParseProvider("")
		assert.True(t, errors.Is(err, ErrUnknownProvider))
	})
}

func TestProvidersAreDistinct(t *testing.T) {
	seen := map[Provider]bool{}
	for _, p := range Providers() {
		assert.False(t, seen[p], "duplicate provider %s", p)
		seen[p] = true
	}
	assert.Len(t, seen, 5)
}
