package lsmodels

import (
	"errors"
	"fmt"
	"strings"
)

// Provider identifies an LLM vendor that exposes a model-listing API.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI    Provider = "OpenAI"
	ProviderGoogleAI  Provider = "GoogleAI"
	ProviderVertexAI  Provider = "VertexAI"
	ProviderAnthropic Provider = "Anthropic"
	ProviderXAI       Provider = "xAI"
)

// ErrUnknownProvider is returned by ParseProvider for names that match no provider.
var ErrUnknownProvider = errors.New("unknown provider")

// Providers returns every supported provider in display order.
func Providers() []Provider {
	return []Provider{
		ProviderOpenAI,
		ProviderAnthropic,
		ProviderXAI,
		ProviderGoogleAI,
		ProviderVertexAI,
	}
}

// ParseProvider resolves a provider name, ignoring case.
func ParseProvider(name string) (Provider, error) {
	name = strings.TrimSpace(name)
	for _, p := range Providers() {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q (must be one of %s)", ErrUnknownProvider, name, ProviderNames())
}

// ProviderNames returns the comma separated list of provider names.
func ProviderNames() string {
	providers := Providers()
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
