package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrShopRatesCommandIsNotConstructed = errors.New(
	"ShopRatesCommand must be created via NewShopRatesCommand constructor",
)

// ShopRatesCommand represents a request to collect rate quotes for a
// shipment across all of the user's active carrier accounts.
type ShopRatesCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	userID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewShopRatesCommand creates a command to rate-shop a shipment on behalf
// of its owner.
func NewShopRatesCommand(shipmentID, userID kernel.UUID) (ShopRatesCommand, error) {
	command := ShopRatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setUserID(userID),
	); err != nil {
		return ShopRatesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ShopRatesCommand) Validate() error {
	return c.guard.Validate(ErrShopRatesCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c ShopRatesCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// UserID returns the requesting user ID from the command.
func (c ShopRatesCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ShopRatesCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *ShopRatesCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
