// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"encoding/json"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Line item IDs are stored as a JSON array of UUID strings to
// preserve their order exactly as provided.
type ShipmentDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID `gorm:"type:uuid;index"`
	OriginCountry      string    `gorm:"type:char(2)"`
	DestinationCountry string    `gorm:"type:char(2)"`
	TotalWeightKg      float64
	LineItemIDs        string `gorm:"type:text"`
	Status             int    `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	lineItemIDs, err := encodeLineItemIDs(aggregate.LineItemIDs())
	if err != nil {
		return ShipmentDTO{}, err
	}

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		OriginCountry:      aggregate.OriginCountry().String(),
		DestinationCountry: aggregate.DestinationCountry().String(),
		TotalWeightKg:      aggregate.TotalWeightKg(),
		LineItemIDs:        lineItemIDs,
		Status:             int(aggregate.Status()),
	}, nil
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewCountryCode(dto.OriginCountry)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCountryCode(dto.DestinationCountry)
	if err != nil {
		return nil, err
	}

	lineItemIDs, err := decodeLineItemIDs(dto.LineItemIDs)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, ownerID, origin, destination,
		dto.TotalWeightKg, lineItemIDs, shipment.Status(dto.Status))
}

// encodeLineItemIDs serializes line item IDs as a JSON array of UUID strings.
func encodeLineItemIDs(ids []kernel.UUID) (string, error) {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, id.String())
	}

	data, err := json.Marshal(strs)
	if err != nil {
		return "", fmt.Errorf("encode line item IDs: %w", err)
	}
	return string(data), nil
}

// decodeLineItemIDs parses a JSON array of UUID strings. An empty column
// decodes to no line items.
func decodeLineItemIDs(encoded string) ([]kernel.UUID, error) {
	if encoded == "" {
		return nil, nil
	}

	var strs []string
	if err := json.Unmarshal([]byte(encoded), &strs); err != nil {
		return nil, fmt.Errorf("decode line item IDs: %w", err)
	}

	ids := make([]kernel.UUID, 0, len(strs))
	for _, s := range strs {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
