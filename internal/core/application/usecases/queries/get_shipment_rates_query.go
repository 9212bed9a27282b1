package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/pkg/guard"
)

var (
	ErrGetShipmentRatesQueryIsNotConstructed = errors.New(
		"GetShipmentRatesQuery must be created via NewGetShipmentRatesQuery constructor",
	)
)

// GetShipmentRatesQuery retrieves the last persisted rate snapshot for a
// shipment. The snapshot is whatever the most recent rate-shopping run wrote,
// without triggering new carrier calls.
//
// Example:
//
//	query, err := NewGetShipmentRatesQuery(shipmentID, userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetShipmentRatesQueryHandler(db)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve rates: %w", err)
//	}
//
//	for _, quote := range snapshot.Quotes {
//	    fmt.Printf("%s %s: %s %s\n",
//	        quote.Provider(), quote.ServiceCode(), quote.Amount(), quote.Currency())
//	}
type GetShipmentRatesQuery struct {
	shipmentID kernel.UUID
	userID     kernel.UUID
	guard      guard.ConstructorGuard
}

// NewGetShipmentRatesQuery creates a query to retrieve the rate snapshot for
// a shipment on behalf of the given user.
func NewGetShipmentRatesQuery(shipmentID kernel.UUID, userID kernel.UUID) (GetShipmentRatesQuery, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		userID.Validate(),
	); err != nil {
		return GetShipmentRatesQuery{}, err
	}

	return GetShipmentRatesQuery{
		shipmentID: shipmentID,
		userID:     userID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment whose snapshot is being read.
func (q GetShipmentRatesQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// UserID returns the user requesting the snapshot.
func (q GetShipmentRatesQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentRatesQueryIsNotConstructed if validation fails.
func (q GetShipmentRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentRatesQueryIsNotConstructed)
}

// GetShipmentRatesQueryResponse represents the persisted rate snapshot in the
// read model, decoded back into domain quotes.
type GetShipmentRatesQueryResponse struct {
	ShipmentID kernel.UUID
	Quotes     []rate.Quote
}
