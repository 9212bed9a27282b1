package kernel

import (
	"strings"

	"freight/internal/pkg/errs"
)

// countryCodeLength is the length of an ISO 3166-1 alpha-2 country code.
const countryCodeLength = 2

// ErrCountryCodeIsNotConstructed is returned when attempting to use an improperly initialized CountryCode.
// Country codes must be created via the NewCountryCode constructor to ensure validity.
var ErrCountryCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"country code must be created via NewCountryCode constructor")

// CountryCode represents an ISO 3166-1 alpha-2 country code such as "US" or "CA".
// It is an immutable value object used for shipment origin and destination routing.
// The zero value is invalid and fails validation - use NewCountryCode to create instances.
//
// Example:
//
//	origin, err := kernel.NewCountryCode("us")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(origin.String()) // "US"
type CountryCode struct {
	code string
}

// NewCountryCode creates a CountryCode from its string form.
// Input is normalized to upper case; it must be exactly two ASCII letters.
func NewCountryCode(code string) (CountryCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return CountryCode{}, errs.NewValueIsRequiredError("country code")
	}
	if len(normalized) != countryCodeLength || !isASCIILetters(normalized) {
		return CountryCode{}, errs.NewValueIsInvalidError("country code")
	}

	return CountryCode{code: normalized}, nil
}

// String returns the two-letter upper case representation of the country code.
func (c CountryCode) String() string {
	return c.code
}

// IsEqual compares two country codes for equality.
func (c CountryCode) IsEqual(other CountryCode) bool {
	return c.code == other.code
}

// Validate checks if the CountryCode was properly constructed.
// Returns ErrCountryCodeIsNotConstructed for the zero value.
func (c CountryCode) Validate() error {
	if c.code == "" {
		return ErrCountryCodeIsNotConstructed
	}
	return nil
}

// isASCIILetters reports whether s consists only of upper case ASCII letters.
func isASCIILetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
