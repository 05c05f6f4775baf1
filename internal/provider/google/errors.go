package google

import (
	"errors"

	"github.com/spetersoncode/lsmodels"
	"google.golang.org/genai"
)

// WrapError wraps a Google GenAI error in a ProviderError for provider.
// Note: genai.APIError doesn't expose the HTTP response, only its code.
func WrapError(provider lsmodels.Provider, err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return lsmodels.NewProviderError(provider, apiErr.Code, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return lsmodels.NewProviderError(provider, apiErrPtr.Code, err)
	}
	// Not an API error, likely network failure or invalid configuration
	return lsmodels.NewProviderError(provider, 0, err)
}
