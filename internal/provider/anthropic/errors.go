package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/lsmodels"
)

// wrapError wraps an Anthropic SDK error in a ProviderError.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return lsmodels.NewProviderError(lsmodels.ProviderAnthropic, apiErr.StatusCode, err)
	}
	// Not an API error: network failure or cancellation
	return lsmodels.NewProviderError(lsmodels.ProviderAnthropic, 0, err)
}
