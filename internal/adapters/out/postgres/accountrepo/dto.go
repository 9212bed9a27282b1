// Package accountrepo provides data transfer objects and mapping functions
// for carrier account persistence. This package implements the repository
// pattern for the carrier account aggregate, handling the conversion between
// domain entities and database representations.
package accountrepo

import (
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierAccountDTO represents the database structure for persisting carrier
// account aggregates. The credentials column only ever holds vault-sealed
// tokens (or legacy plaintext from before sealing was introduced).
type CarrierAccountDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	Provider              string    `gorm:"type:varchar(32)"`
	CredentialsCiphertext string    `gorm:"type:text"`
	AccountNumber         string    `gorm:"type:varchar(64)"`
	IsActive              bool      `gorm:"index"`
}

// TableName specifies the database table name for carrier account entities.
func (CarrierAccountDTO) TableName() string {
	return "carrier_accounts"
}

// fromDomain converts a carrier account aggregate to its database representation.
func fromDomain(aggregate *account.CarrierAccount) CarrierAccountDTO {
	return CarrierAccountDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		Provider:              aggregate.Provider().String(),
		CredentialsCiphertext: aggregate.CredentialsCiphertext(),
		AccountNumber:         aggregate.AccountNumber(),
		IsActive:              aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a carrier account aggregate.
func toDomain(dto CarrierAccountDTO) (*account.CarrierAccount, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	provider, err := account.ParseProvider(dto.Provider)
	if err != nil {
		return nil, err
	}

	return account.RestoreCarrierAccount(id, userID, provider,
		dto.CredentialsCiphertext, dto.AccountNumber, dto.IsActive)
}
