package metarepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierMetaRepository implements CarrierMetaRepository using GORM.
type GormCarrierMetaRepository struct {
	db *gorm.DB
}

// NewGormCarrierMetaRepository creates a new GORM carrier meta repository.
func NewGormCarrierMetaRepository(db *gorm.DB) *GormCarrierMetaRepository {
	return &GormCarrierMetaRepository{
		db: db,
	}
}

// Upsert writes the carrier meta row for a shipment, inserting it on first
// write and overwriting all columns on subsequent writes. Last writer wins.
func (r *GormCarrierMetaRepository) Upsert(ctx context.Context, meta *shipment.CarrierMeta) error {
	if err := meta.Validate(); err != nil {
		return err
	}

	dto := fromDomain(meta)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shipment_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetByShipmentID retrieves the carrier meta row for a shipment.
func (r *GormCarrierMetaRepository) GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*shipment.CarrierMeta, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierMetaDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier meta", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
