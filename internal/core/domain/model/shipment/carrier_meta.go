package shipment

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrMetaIsNotConstructed is returned when using an improperly initialized CarrierMeta.
var ErrMetaIsNotConstructed = errors.New("CarrierMeta must be created via NewCarrierMeta constructor")

// CarrierMeta holds the carrier-facing state of one shipment: the latest
// aggregated rate snapshot plus the booking and tracking fields filled in
// once a carrier accepts the shipment. There is exactly one row per
// shipment, written with last-writer-wins upsert semantics - a rate
// snapshot is a point-in-time estimate, so no locking is needed.
type CarrierMeta struct {
	// shipmentID is the upsert key; one meta row exists per shipment
	shipmentID kernel.UUID
	// rateQuoteJSON is the latest aggregated rate snapshot as a JSON array
	rateQuoteJSON string
	// carrierAccountID is the account the shipment was booked through
	carrierAccountID *kernel.UUID
	// trackingNumber is the carrier-issued tracking number
	trackingNumber string
	// carrierCode is the provider tag of the booking carrier
	carrierCode string
	// serviceLevelCode is the booked service, e.g. GROUND or EXPRESS
	serviceLevelCode string
	// bookedAt is when the booking completed
	bookedAt *time.Time
	// trackingStatus is the last carrier-reported status text
	trackingStatus string
	// trackedAt is when the tracking status was last refreshed
	trackedAt *time.Time
	// guard ensures the meta was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrierMeta creates an empty CarrierMeta for a shipment.
func NewCarrierMeta(shipmentID kernel.UUID) (*CarrierMeta, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	return &CarrierMeta{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCarrierMeta reconstructs a CarrierMeta from persistent storage.
func RestoreCarrierMeta(
	shipmentID kernel.UUID,
	rateQuoteJSON string,
	carrierAccountID *kernel.UUID,
	trackingNumber string,
	carrierCode string,
	serviceLevelCode string,
	bookedAt *time.Time,
	trackingStatus string,
	trackedAt *time.Time,
) (*CarrierMeta, error) {
	meta, err := NewCarrierMeta(shipmentID)
	if err != nil {
		return nil, err
	}

	if carrierAccountID != nil {
		if err = carrierAccountID.Validate(); err != nil {
			return nil, err
		}
	}

	meta.rateQuoteJSON = rateQuoteJSON
	meta.carrierAccountID = carrierAccountID
	meta.trackingNumber = trackingNumber
	meta.carrierCode = carrierCode
	meta.serviceLevelCode = serviceLevelCode
	meta.bookedAt = bookedAt
	meta.trackingStatus = trackingStatus
	meta.trackedAt = trackedAt

	return meta, nil
}

// Validate checks if the CarrierMeta was properly constructed.
func (m *CarrierMeta) Validate() error {
	if m == nil {
		return ErrMetaIsNotConstructed
	}
	return m.guard.Validate(ErrMetaIsNotConstructed)
}

// ShipmentID returns the shipment this meta row belongs to.
func (m *CarrierMeta) ShipmentID() kernel.UUID {
	return m.shipmentID
}

// RateQuoteJSON returns the latest aggregated rate snapshot.
func (m *CarrierMeta) RateQuoteJSON() string {
	return m.rateQuoteJSON
}

// CarrierAccountID returns the account used for booking, or nil before booking.
func (m *CarrierMeta) CarrierAccountID() *kernel.UUID {
	return m.carrierAccountID
}

// TrackingNumber returns the carrier-issued tracking number, empty before booking.
func (m *CarrierMeta) TrackingNumber() string {
	return m.trackingNumber
}

// CarrierCode returns the provider tag of the booking carrier.
func (m *CarrierMeta) CarrierCode() string {
	return m.carrierCode
}

// ServiceLevelCode returns the booked service code.
func (m *CarrierMeta) ServiceLevelCode() string {
	return m.serviceLevelCode
}

// BookedAt returns when the booking completed, or nil before booking.
func (m *CarrierMeta) BookedAt() *time.Time {
	return m.bookedAt
}

// TrackingStatus returns the last carrier-reported status text.
func (m *CarrierMeta) TrackingStatus() string {
	return m.trackingStatus
}

// TrackedAt returns when tracking was last refreshed, or nil if never.
func (m *CarrierMeta) TrackedAt() *time.Time {
	return m.trackedAt
}

// IsBooked reports whether a booking has been recorded.
func (m *CarrierMeta) IsBooked() bool {
	return m.trackingNumber != ""
}

// RecordQuotes stores the latest aggregated rate snapshot.
// Called on every rate refresh regardless of cache outcome, so the
// persisted snapshot always reflects what was returned to the caller.
func (m *CarrierMeta) RecordQuotes(rateQuoteJSON string) {
	m.rateQuoteJSON = rateQuoteJSON
}

// RecordBooking stores the carrier booking result.
func (m *CarrierMeta) RecordBooking(
	carrierAccountID kernel.UUID,
	trackingNumber string,
	carrierCode string,
	serviceLevelCode string,
	bookedAt time.Time,
) error {
	if err := carrierAccountID.Validate(); err != nil {
		return err
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	m.carrierAccountID = &carrierAccountID
	m.trackingNumber = trackingNumber
	m.carrierCode = carrierCode
	m.serviceLevelCode = serviceLevelCode
	m.bookedAt = &bookedAt

	return nil
}

// RecordTracking stores the latest carrier-reported tracking status.
func (m *CarrierMeta) RecordTracking(status string, trackedAt time.Time) {
	m.trackingStatus = status
	m.trackedAt = &trackedAt
}
