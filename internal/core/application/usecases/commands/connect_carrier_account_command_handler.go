package commands

import (
	"context"

	"freight/internal/core/domain/model/account"
	"freight/internal/pkg/vault"
)

// ConnectCarrierAccountCommandHandler handles the business logic for
// connecting carrier accounts. Seals the plaintext credentials with the
// credential vault before anything touches storage, so the repository
// layer only ever sees ciphertext.
//
// Example:
//
//	handler := NewConnectCarrierAccountCommandHandler(uowFactory, credentialVault)
//	cmd, _ := NewConnectCarrierAccountCommand(userID, account.ProviderMock, apiKey, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("account connection failed: %w", err)
//	}
type ConnectCarrierAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	vault      *vault.Vault
}

// NewConnectCarrierAccountCommandHandler creates a handler for account connection.
// Requires an AccountUoWFactory for transactional persistence and the
// credential vault for sealing.
func NewConnectCarrierAccountCommandHandler(uowFactory AccountUoWFactory, v *vault.Vault) ConnectCarrierAccountCommandHandler {
	return ConnectCarrierAccountCommandHandler{
		uowFactory: uowFactory,
		vault:      v,
	}
}

// Handle processes the account connection command.
// Seals the credentials, creates the account aggregate in active state and
// persists it within a transaction.
func (h ConnectCarrierAccountCommandHandler) Handle(ctx context.Context, cmd ConnectCarrierAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ciphertext, err := h.vault.Encrypt(cmd.Credentials())
	if err != nil {
		return err
	}

	accountEntity, err := account.NewCarrierAccount(
		cmd.AccountID(), cmd.UserID(), cmd.Provider(), ciphertext, cmd.AccountNumber())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CarrierAccountRepository().Add(ctx, accountEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
