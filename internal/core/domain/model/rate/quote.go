package rate

import (
	"errors"
	"sort"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for rate quote operations.
var (
	// ErrAmountIsNegative is returned when a quote carries a negative amount.
	ErrAmountIsNegative = errs.NewValueIsInvalidError("amount must be non-negative")
	// ErrCurrencyIsInvalid is returned when the currency is not a 3-letter ISO 4217 code.
	ErrCurrencyIsInvalid = errs.NewValueIsInvalidError("currency must be a 3-letter ISO 4217 code")
	// ErrTransitDaysAreNegative is returned when the transit estimate is negative.
	ErrTransitDaysAreNegative = errs.NewValueIsInvalidError("estimated transit days must be non-negative")
	// ErrQuoteIsNotConstructed is returned when using an improperly initialized Quote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
)

// Quote is a single carrier rate offer for a shipment. Quotes are
// point-in-time estimates aggregated across carrier accounts; they carry
// no reservation and expire with the cache entry they were stored under.
//
// Amounts use decimal arithmetic so that prices survive JSON round-trips
// through the cache and the persisted snapshot without float drift.
type Quote struct {
	// carrierAccountID is the account the quote was fetched through
	carrierAccountID kernel.UUID
	// provider is the carrier integration that produced the quote
	provider account.Provider
	// serviceCode is the carrier service identifier, e.g. GROUND or EXPRESS
	serviceCode string
	// serviceName is the human-readable service name
	serviceName string
	// amount is the quoted price, non-negative
	amount decimal.Decimal
	// currency is the 3-letter ISO 4217 currency code
	currency string
	// estimatedTransitDays is the carrier transit estimate, non-negative
	estimatedTransitDays int
	// guard ensures the quote was properly constructed
	guard guard.ConstructorGuard
}

// NewQuote creates a validated rate Quote.
func NewQuote(
	carrierAccountID kernel.UUID,
	provider account.Provider,
	serviceCode string,
	serviceName string,
	amount decimal.Decimal,
	currency string,
	estimatedTransitDays int,
) (Quote, error) {
	q := Quote{
		serviceName: serviceName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setCarrierAccountID(carrierAccountID),
		q.setProvider(provider),
		q.setServiceCode(serviceCode),
		q.setAmount(amount),
		q.setCurrency(currency),
		q.setEstimatedTransitDays(estimatedTransitDays),
	); err != nil {
		return Quote{}, err
	}

	return q, nil
}

// Validate checks if the Quote was properly constructed.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// CarrierAccountID returns the account the quote was fetched through.
func (q Quote) CarrierAccountID() kernel.UUID {
	return q.carrierAccountID
}

// Provider returns the carrier integration that produced the quote.
func (q Quote) Provider() account.Provider {
	return q.provider
}

// ServiceCode returns the carrier service identifier.
func (q Quote) ServiceCode() string {
	return q.serviceCode
}

// ServiceName returns the human-readable service name.
func (q Quote) ServiceName() string {
	return q.serviceName
}

// Amount returns the quoted price.
func (q Quote) Amount() decimal.Decimal {
	return q.amount
}

// Currency returns the 3-letter ISO 4217 currency code.
func (q Quote) Currency() string {
	return q.currency
}

// EstimatedTransitDays returns the carrier transit estimate.
func (q Quote) EstimatedTransitDays() int {
	return q.estimatedTransitDays
}

// setCarrierAccountID sets the source account with validation.
func (q *Quote) setCarrierAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.carrierAccountID = id
	return nil
}

// setProvider sets the carrier provider with validation.
func (q *Quote) setProvider(provider account.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	q.provider = provider
	return nil
}

// setServiceCode sets the carrier service identifier with validation.
func (q *Quote) setServiceCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("service code")
	}

	q.serviceCode = code
	return nil
}

// setAmount sets the quoted price with validation.
func (q *Quote) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountIsNegative
	}

	q.amount = amount
	return nil
}

// setCurrency sets the currency code with validation.
func (q *Quote) setCurrency(currency string) error {
	if len(currency) != 3 {
		return ErrCurrencyIsInvalid
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return ErrCurrencyIsInvalid
		}
	}

	q.currency = currency
	return nil
}

// setEstimatedTransitDays sets the transit estimate with validation.
func (q *Quote) setEstimatedTransitDays(days int) error {
	if days < 0 {
		return ErrTransitDaysAreNegative
	}

	q.estimatedTransitDays = days
	return nil
}

// SortQuotes orders quotes cheapest-first: ascending amount, then fewer
// transit days, then provider tag for a stable total order. The slice is
// sorted in place.
func SortQuotes(quotes []Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		if cmp := quotes[i].amount.Cmp(quotes[j].amount); cmp != 0 {
			return cmp < 0
		}
		if quotes[i].estimatedTransitDays != quotes[j].estimatedTransitDays {
			return quotes[i].estimatedTransitDays < quotes[j].estimatedTransitDays
		}
		return quotes[i].provider < quotes[j].provider
	})
}
