package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"
)

// BookingConfirmation is the result of a successful carrier booking.
type BookingConfirmation struct {
	// TrackingNumber is the carrier-issued tracking number.
	TrackingNumber string
	// CarrierCode is the provider tag of the booking carrier.
	CarrierCode string
	// ServiceLevelCode is the booked service, e.g. GROUND or EXPRESS.
	ServiceLevelCode string
	// BookedAt is when the carrier accepted the booking.
	BookedAt time.Time
}

// TrackingUpdate is a point-in-time carrier tracking report.
type TrackingUpdate struct {
	// TrackingNumber identifies the tracked parcel.
	TrackingNumber string
	// Status is the carrier-reported status text.
	Status string
	// CheckedAt is when the carrier was polled.
	CheckedAt time.Time
}

// CarrierAdapter is the uniform interface every carrier integration
// implements. An adapter instance is bound to a single carrier account
// whose credentials were unsealed during resolution; it never receives
// ciphertext.
type CarrierAdapter interface {
	// GetRates fetches rate quotes for a shipment through the bound account.
	GetRates(ctx context.Context, shp *shipment.Shipment) ([]rate.Quote, error)

	// BookShipment books a shipment at the given service level.
	BookShipment(ctx context.Context, shp *shipment.Shipment, serviceCode string) (BookingConfirmation, error)

	// TrackShipment polls the carrier for the current tracking status.
	TrackShipment(ctx context.Context, trackingNumber string) (TrackingUpdate, error)
}

// AdapterFactory resolves carrier accounts into ready-to-use adapters.
// Resolution enforces that the account is active and unseals its
// credentials before handing them to the provider integration.
type AdapterFactory interface {
	// Resolve builds an adapter for an already loaded account.
	// Returns account.ErrAccountInactive for deactivated accounts.
	Resolve(ctx context.Context, acc *account.CarrierAccount) (CarrierAdapter, error)

	// ResolveByID loads the account by ID and resolves an adapter for it.
	// Returns an errs.ObjectNotFoundError when the account does not exist.
	ResolveByID(ctx context.Context, accountID kernel.UUID) (CarrierAdapter, error)
}
