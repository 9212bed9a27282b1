package commands

import (
	"context"
	"errors"
)

// ErrAccountAccessDenied is returned when a user operates on a carrier
// account owned by someone else. Ownership is checked inside the handler
// rather than the query, so the error does not leak whether the account exists.
var ErrAccountAccessDenied = errors.New("carrier account access denied")

// DeactivateCarrierAccountCommandHandler handles the business logic for
// account deactivation. Verifies ownership before flipping the activity
// flag; deactivation is idempotent.
//
// Example:
//
//	handler := NewDeactivateCarrierAccountCommandHandler(uowFactory)
//	cmd, _ := NewDeactivateCarrierAccountCommand(accountID, userID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrAccountAccessDenied):
//	    // 403
//	case err != nil:
//	    // 500
//	}
type DeactivateCarrierAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewDeactivateCarrierAccountCommandHandler creates a handler for account deactivation.
func NewDeactivateCarrierAccountCommandHandler(uowFactory AccountUoWFactory) DeactivateCarrierAccountCommandHandler {
	return DeactivateCarrierAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account deactivation command.
// Loads the account, verifies the requesting user owns it, deactivates it
// and persists the change within a transaction.
func (h DeactivateCarrierAccountCommandHandler) Handle(ctx context.Context, cmd DeactivateCarrierAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.CarrierAccountRepository()

	accountEntity, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if !accountEntity.IsOwnedBy(cmd.UserID()) {
		return ErrAccountAccessDenied
	}

	accountEntity.Deactivate()

	if err = accountRepo.Update(ctx, accountEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
