package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

// UpdateTrackingCommand triggers a tracking refresh for all booked shipments.
// This batch operation polls each shipment's carrier and records the latest
// reported status, completing shipments the carrier reports as delivered.
//
// Example:
//
//	cmd := NewUpdateTrackingCommand()
//	handler := NewUpdateTrackingCommandHandler(uowFactory, adapterFactory, nil)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Tracking refresh failed: %v", err)
//	}
type UpdateTrackingCommand struct {
	guard guard.ConstructorGuard
}

var ErrUpdateTrackingCommandIsNotConstructed = errors.New(
	"UpdateTrackingCommand must be created via NewUpdateTrackingCommand constructor",
)

// NewUpdateTrackingCommand creates a command to trigger a tracking refresh.
// This is a parameterless command that processes all booked shipments.
func NewUpdateTrackingCommand() UpdateTrackingCommand {
	command := UpdateTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateTrackingCommandIsNotConstructed if validation fails.
func (c *UpdateTrackingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingCommandIsNotConstructed)
}
