// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the rate cache and the
// carrier adapter family. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
)

// CarrierAccountRepository defines the persistence contract for carrier
// account aggregates. Credentials are stored only in their sealed form;
// the repository never sees plaintext.
type CarrierAccountRepository interface {
	// Add persists a new carrier account aggregate to storage.
	Add(ctx context.Context, aggregate *account.CarrierAccount) error

	// Update persists changes to an existing carrier account aggregate.
	Update(ctx context.Context, aggregate *account.CarrierAccount) error

	// Get retrieves a carrier account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.CarrierAccount, error)

	// GetAllActiveByUser retrieves every active carrier account owned by a user.
	// Deactivated accounts are excluded, so rate shopping never touches them.
	GetAllActiveByUser(ctx context.Context, userID kernel.UUID) ([]*account.CarrierAccount, error)
}
