package openai

import (
	"errors"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/lsmodels"
)

// wrapError wraps an OpenAI SDK error in a ProviderError.
// The status code is extracted from API errors; anything else
// (network failures, cancellation) is kept with a zero code.
func wrapError(provider lsmodels.Provider, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return lsmodels.NewProviderError(provider, apiErr.StatusCode, err)
	}
	return lsmodels.NewProviderError(provider, 0, err)
}
