// Package metarepo provides data transfer objects and mapping functions for
// carrier meta persistence. Carrier meta is keyed by shipment ID and written
// with upsert semantics: the latest rate snapshot, booking details, and
// tracking state all live in a single row per shipment.
package metarepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// CarrierMetaDTO represents the database structure for persisting carrier
// meta. Booking fields are nullable because a shipment may carry a rate
// snapshot long before it is ever booked.
type CarrierMetaDTO struct {
	ShipmentID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RateQuoteJSON    string    `gorm:"type:text"`
	CarrierAccountID *uuid.UUID `gorm:"type:uuid"`
	TrackingNumber   string    `gorm:"type:varchar(64)"`
	CarrierCode      string    `gorm:"type:varchar(32)"`
	ServiceLevelCode string    `gorm:"type:varchar(32)"`
	BookedAt         *time.Time
	TrackingStatus   string `gorm:"type:varchar(32)"`
	TrackedAt        *time.Time
}

// TableName specifies the database table name for carrier meta entities.
func (CarrierMetaDTO) TableName() string {
	return "carrier_meta"
}

// fromDomain converts a carrier meta entity to its database representation.
func fromDomain(meta *shipment.CarrierMeta) CarrierMetaDTO {
	var carrierAccountID *uuid.UUID
	if id := meta.CarrierAccountID(); id != nil {
		raw := id.Bytes()
		carrierAccountID = &raw
	}

	return CarrierMetaDTO{
		ShipmentID:       meta.ShipmentID().Bytes(),
		RateQuoteJSON:    meta.RateQuoteJSON(),
		CarrierAccountID: carrierAccountID,
		TrackingNumber:   meta.TrackingNumber(),
		CarrierCode:      meta.CarrierCode(),
		ServiceLevelCode: meta.ServiceLevelCode(),
		BookedAt:         meta.BookedAt(),
		TrackingStatus:   meta.TrackingStatus(),
		TrackedAt:        meta.TrackedAt(),
	}
}

// toDomain converts a database DTO to a carrier meta entity.
func toDomain(dto CarrierMetaDTO) (*shipment.CarrierMeta, error) {
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var carrierAccountID *kernel.UUID
	if dto.CarrierAccountID != nil {
		id, err := kernel.UUIDFromBytes(dto.CarrierAccountID[:])
		if err != nil {
			return nil, err
		}
		carrierAccountID = &id
	}

	return shipment.RestoreCarrierMeta(shipmentID, dto.RateQuoteJSON,
		carrierAccountID, dto.TrackingNumber, dto.CarrierCode,
		dto.ServiceLevelCode, dto.BookedAt, dto.TrackingStatus, dto.TrackedAt)
}
