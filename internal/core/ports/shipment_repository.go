package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The carrier gateway only reads shipments and advances their status; it
// never creates them.
type ShipmentRepository interface {
	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetAllInBookedStatus retrieves all shipments with an active carrier booking.
	// Used by the tracking refresh job to poll carriers for status updates.
	GetAllInBookedStatus(ctx context.Context) ([]*shipment.Shipment, error)
}

// CarrierMetaRepository defines the persistence contract for the per-shipment
// carrier meta row. Writes are last-writer-wins upserts keyed by shipment ID.
type CarrierMetaRepository interface {
	// Upsert inserts or overwrites the meta row for the shipment.
	Upsert(ctx context.Context, meta *shipment.CarrierMeta) error

	// GetByShipmentID retrieves the meta row for a shipment.
	GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*shipment.CarrierMeta, error)
}
