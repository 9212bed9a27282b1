package accountrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierAccountRepository implements CarrierAccountRepository using GORM.
type GormCarrierAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierAccountRepository creates a new GORM carrier account repository.
func NewGormCarrierAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierAccountRepository {
	return &GormCarrierAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier account to the database.
func (r *GormCarrierAccountRepository) Add(ctx context.Context, aggregate *account.CarrierAccount) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier account to the database.
func (r *GormCarrierAccountRepository) Update(ctx context.Context, aggregate *account.CarrierAccount) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select lists every column so that flipping is_active to false is not
	// dropped by GORM's zero-value handling in Updates.
	result := r.db.WithContext(ctx).Model(&CarrierAccountDTO{}).
		Where("id = ?", dto.ID).
		Select("user_id", "provider", "credentials_ciphertext", "account_number", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier account by ID.
func (r *GormCarrierAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.CarrierAccount, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierAccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveByUser retrieves all active carrier accounts owned by a user.
func (r *GormCarrierAccountRepository) GetAllActiveByUser(ctx context.Context, userID kernel.UUID) ([]*account.CarrierAccount, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CarrierAccountDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "user_id = ? AND is_active = ?", userID.Bytes(), true).Error; err != nil {
		return nil, err
	}

	accounts := make([]*account.CarrierAccount, 0, len(dtos))
	for _, dto := range dtos {
		acc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}
