package services

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"
)

// ErrQuoteNotFound is returned when no quote in the shipment's snapshot
// matches the requested carrier account and service level. Bookings must
// reference a quote the user was actually shown; a stale or fabricated
// selection is rejected rather than priced on the fly.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteSelector is a domain service that picks the quote to book from a
// shipment's rate snapshot.
//
// Business rules:
//   - The shipment must be valid and still bookable
//   - The selection must match an existing snapshot quote exactly
//     (same carrier account and service code)
//   - Ties never occur: a snapshot holds at most one quote per
//     account/service pair
//
// Example usage:
//
//	selector := services.NewQuoteSelector()
//	quote, err := selector.Select(shp, quotes, accountID, "EXPRESS")
//	if errors.Is(err, services.ErrQuoteNotFound) {
//	    // The user picked an option that is no longer quoted
//	    return
//	}
type QuoteSelector struct{}

// NewQuoteSelector creates a new QuoteSelector instance.
func NewQuoteSelector() QuoteSelector {
	return QuoteSelector{}
}

// Select finds the snapshot quote matching the requested carrier account
// and service code.
//
// Returns ErrQuoteNotFound when no quote matches, or validation errors
// when the shipment or a quote was not properly constructed.
func (q QuoteSelector) Select(
	shp *shipment.Shipment,
	quotes []rate.Quote,
	carrierAccountID kernel.UUID,
	serviceCode string,
) (rate.Quote, error) {
	if err := shp.Validate(); err != nil {
		return rate.Quote{}, err
	}
	if err := carrierAccountID.Validate(); err != nil {
		return rate.Quote{}, err
	}

	for _, quote := range quotes {
		if err := quote.Validate(); err != nil {
			return rate.Quote{}, err
		}

		if quote.CarrierAccountID().IsEqual(carrierAccountID) && quote.ServiceCode() == serviceCode {
			return quote, nil
		}
	}

	return rate.Quote{}, ErrQuoteNotFound
}

// Cheapest returns the lowest-priced quote in the snapshot, using the
// standard quote ordering for tie-breaks. The input slice is not modified.
//
// Returns ErrQuoteNotFound for an empty snapshot.
func (q QuoteSelector) Cheapest(quotes []rate.Quote) (rate.Quote, error) {
	if len(quotes) == 0 {
		return rate.Quote{}, ErrQuoteNotFound
	}

	sorted := make([]rate.Quote, len(quotes))
	copy(sorted, quotes)
	rate.SortQuotes(sorted)

	return sorted[0], nil
}
