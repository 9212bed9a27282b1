package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrBookShipmentCommandIsNotConstructed = errors.New(
	"BookShipmentCommand must be created via NewBookShipmentCommand constructor",
)

// BookShipmentCommand represents a request to book a shipment through a
// specific carrier account. The selection must match a quote from the
// shipment's last rate snapshot; an empty service code books the account's
// cheapest quoted service.
type BookShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	userID           kernel.UUID
	carrierAccountID kernel.UUID
	serviceCode      string

	guard guard.ConstructorGuard
}

// NewBookShipmentCommand creates a command to book a shipment.
func NewBookShipmentCommand(
	shipmentID kernel.UUID,
	userID kernel.UUID,
	carrierAccountID kernel.UUID,
	serviceCode string,
) (BookShipmentCommand, error) {
	command := BookShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setUserID(userID),
		command.setCarrierAccountID(carrierAccountID),
		command.setServiceCode(serviceCode),
	); err != nil {
		return BookShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BookShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c BookShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// UserID returns the requesting user ID from the command.
func (c BookShipmentCommand) UserID() kernel.UUID {
	return c.userID
}

// CarrierAccountID returns the selected carrier account ID from the command.
func (c BookShipmentCommand) CarrierAccountID() kernel.UUID {
	return c.carrierAccountID
}

// ServiceCode returns the selected service level from the command.
// Empty means the cheapest quoted service of the selected account.
func (c BookShipmentCommand) ServiceCode() string {
	return c.serviceCode
}

func (c *BookShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *BookShipmentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *BookShipmentCommand) setCarrierAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierAccountID = id
	return nil
}

func (c *BookShipmentCommand) setServiceCode(serviceCode string) error {
	c.serviceCode = serviceCode
	return nil
}
