package account

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Provider identifies the shipping provider a carrier account belongs to.
// It is a closed enumeration: adapter constructors are registered per
// provider tag at startup, so an unknown tag can never reach a live call.
type Provider string

const (
	// ProviderMock is the deterministic simulation provider used for
	// development and for provider slots without a live integration.
	ProviderMock Provider = "mock"
	// ProviderFedEx is the FedEx shipping provider.
	ProviderFedEx Provider = "fedex"
	// ProviderUPS is the UPS shipping provider.
	ProviderUPS Provider = "ups"
)

// getValidProviders returns the set of provider tags accepted by the system.
func getValidProviders() map[Provider]struct{} {
	return map[Provider]struct{}{
		ProviderMock:  {},
		ProviderFedEx: {},
		ProviderUPS:   {},
	}
}

// ParseProvider converts a raw string into a Provider.
// Input is normalized to lower case. Unknown tags are rejected.
func ParseProvider(raw string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(raw)))
	if err := provider.Validate(); err != nil {
		return "", err
	}
	return provider, nil
}

// Validate checks if the Provider value is one of the known tags.
func (p Provider) Validate() error {
	if _, ok := getValidProviders()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("provider",
			fmt.Errorf("%q is not a supported provider", string(p)))
	}
	return nil
}

// String returns the lower case tag of the provider.
func (p Provider) String() string {
	return string(p)
}
