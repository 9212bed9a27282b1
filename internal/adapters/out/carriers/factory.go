package carriers

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/vault"
)

// Factory resolves carrier accounts into provider adapters. Resolution
// enforces the account gate in a fixed order: the account must exist, be
// active, and have credentials that unseal cleanly; only then is the
// provider dispatched through the registry.
type Factory struct {
	registry   *Registry
	vault      *vault.Vault
	uowFactory ports.UnitOfWorkFactory
}

// NewFactory creates an adapter factory.
func NewFactory(registry *Registry, v *vault.Vault, uowFactory ports.UnitOfWorkFactory) (*Factory, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if v == nil {
		return nil, fmt.Errorf("vault is required")
	}
	if uowFactory == nil {
		return nil, fmt.Errorf("unit of work factory is required")
	}

	return &Factory{
		registry:   registry,
		vault:      v,
		uowFactory: uowFactory,
	}, nil
}

// Resolve builds an adapter for an already loaded account.
func (f *Factory) Resolve(_ context.Context, acc *account.CarrierAccount) (ports.CarrierAdapter, error) {
	if err := acc.Validate(); err != nil {
		return nil, err
	}
	if err := acc.EnsureUsable(); err != nil {
		return nil, err
	}

	credentials, err := f.vault.Decrypt(acc.CredentialsCiphertext())
	if err != nil {
		return nil, fmt.Errorf("unseal credentials for account %s: %w", acc.ID(), err)
	}

	return f.registry.Resolve(ResolvedAccount{
		AccountID:     acc.ID(),
		Provider:      acc.Provider(),
		AccountNumber: acc.AccountNumber(),
		Credentials:   credentials,
	})
}

// ResolveByID loads the account and resolves an adapter for it.
func (f *Factory) ResolveByID(ctx context.Context, accountID kernel.UUID) (ports.CarrierAdapter, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	uow := f.uowFactory.Create()
	acc, err := uow.CarrierAccountRepository().Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return f.Resolve(ctx, acc)
}
