package shipment

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrWeightIsNegative is returned when a shipment carries a negative total weight.
	ErrWeightIsNegative = errs.NewValueIsInvalidError("total weight must be non-negative")
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents a freight shipment in the system. The carrier gateway
// treats it as a mostly read-only input: origin/destination countries, total
// weight and the ordered line-item set drive rate fingerprinting, while the
// status field is only mutated by booking and delivery transitions.
//
// Invariants:
//   - Origin and destination are valid ISO country codes
//   - Total weight is non-negative
//   - Line-item order is preserved exactly as provided
//   - Status transitions follow the Draft -> Booked -> Delivered machine
type Shipment struct {
	// id uniquely identifies the shipment
	id kernel.UUID
	// ownerID is the user who created the shipment
	ownerID kernel.UUID
	// originCountry is the country the shipment departs from
	originCountry kernel.CountryCode
	// destinationCountry is the country the shipment is delivered to
	destinationCountry kernel.CountryCode
	// totalWeightKg is the total chargeable weight in kilograms
	totalWeightKg float64
	// lineItemIDs is the ordered set of line-item identifiers
	lineItemIDs []kernel.UUID
	// status is the current lifecycle state
	status Status
	// guard ensures the shipment was properly constructed
	guard guard.ConstructorGuard
}

// NewShipment creates a Shipment in Draft status.
func NewShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	originCountry kernel.CountryCode,
	destinationCountry kernel.CountryCode,
	totalWeightKg float64,
	lineItemIDs []kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setOriginCountry(originCountry),
		s.setDestinationCountry(destinationCountry),
		s.setTotalWeightKg(totalWeightKg),
		s.setLineItemIDs(lineItemIDs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistent storage,
// including its lifecycle status.
func RestoreShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	originCountry kernel.CountryCode,
	destinationCountry kernel.CountryCode,
	totalWeightKg float64,
	lineItemIDs []kernel.UUID,
	status Status,
) (*Shipment, error) {
	s, err := NewShipment(id, ownerID, originCountry, destinationCountry, totalWeightKg, lineItemIDs)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status

	return s, nil
}

// Validate checks if the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// ID returns the unique identifier of the shipment.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identifier of the user who created the shipment.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// OriginCountry returns the departure country.
func (s *Shipment) OriginCountry() kernel.CountryCode {
	return s.originCountry
}

// DestinationCountry returns the delivery country.
func (s *Shipment) DestinationCountry() kernel.CountryCode {
	return s.destinationCountry
}

// TotalWeightKg returns the total chargeable weight in kilograms.
func (s *Shipment) TotalWeightKg() float64 {
	return s.totalWeightKg
}

// LineItemIDs returns the ordered line-item identifiers.
// The returned slice is a copy to prevent external modification.
func (s *Shipment) LineItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(s.lineItemIDs))
	copy(out, s.lineItemIDs)
	return out
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// IsInternational reports whether origin and destination countries differ.
// International routes carry longer transit estimates.
func (s *Shipment) IsInternational() bool {
	return !s.originCountry.IsEqual(s.destinationCountry)
}

// Book transitions the shipment to Booked after a successful carrier booking.
func (s *Shipment) Book() error {
	newStatus, err := s.status.Book()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Deliver transitions the shipment to Delivered once the carrier reports
// final delivery.
func (s *Shipment) Deliver() error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// setID sets the shipment identifier with validation.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setOwnerID sets the owning user identifier with validation.
func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	s.ownerID = ownerID
	return nil
}

// setOriginCountry sets the departure country with validation.
func (s *Shipment) setOriginCountry(code kernel.CountryCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	s.originCountry = code
	return nil
}

// setDestinationCountry sets the delivery country with validation.
func (s *Shipment) setDestinationCountry(code kernel.CountryCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	s.destinationCountry = code
	return nil
}

// setTotalWeightKg sets the total weight with validation.
func (s *Shipment) setTotalWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return ErrWeightIsNegative
	}

	s.totalWeightKg = weightKg
	return nil
}

// setLineItemIDs sets the ordered line-item identifiers with validation.
// An empty set is allowed: a shipment can be rated before items are attached.
func (s *Shipment) setLineItemIDs(lineItemIDs []kernel.UUID) error {
	for _, itemID := range lineItemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	s.lineItemIDs = make([]kernel.UUID, len(lineItemIDs))
	copy(s.lineItemIDs, lineItemIDs)
	return nil
}
