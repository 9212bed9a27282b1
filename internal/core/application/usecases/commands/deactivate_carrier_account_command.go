package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeactivateCarrierAccountCommandIsNotConstructed = errors.New(
	"DeactivateCarrierAccountCommand must be created via NewDeactivateCarrierAccountCommand constructor",
)

// DeactivateCarrierAccountCommand represents a request to deactivate a
// carrier account. Deactivation is a soft delete: the row and its sealed
// credentials remain, but the account stops participating in rate shopping
// and refuses bookings.
type DeactivateCarrierAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateCarrierAccountCommand creates a command to deactivate a
// carrier account on behalf of its owner.
func NewDeactivateCarrierAccountCommand(accountID, userID kernel.UUID) (DeactivateCarrierAccountCommand, error) {
	command := DeactivateCarrierAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setUserID(userID),
	); err != nil {
		return DeactivateCarrierAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateCarrierAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCarrierAccountCommandIsNotConstructed)
}

// AccountID returns the carrier account ID from the command.
func (c DeactivateCarrierAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// UserID returns the requesting user ID from the command.
func (c DeactivateCarrierAccountCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeactivateCarrierAccountCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *DeactivateCarrierAccountCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
