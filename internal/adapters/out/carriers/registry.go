package carriers

import (
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

// ResolvedAccount is a carrier account with its credentials unsealed,
// ready to be handed to a provider integration. Instances are built by
// the adapter factory and live only for the duration of one operation;
// they are never persisted.
type ResolvedAccount struct {
	// AccountID identifies the source carrier account.
	AccountID kernel.UUID
	// Provider is the carrier integration tag.
	Provider account.Provider
	// AccountNumber is the customer's number at the carrier.
	AccountNumber string
	// Credentials is the unsealed credential payload.
	Credentials string
}

// Constructor builds a provider adapter bound to a resolved account.
type Constructor func(acc ResolvedAccount) (ports.CarrierAdapter, error)

// Registry maps provider tags to adapter constructors. Dispatch is by
// exact provider match; an unregistered provider yields
// ErrUnsupportedProvider.
type Registry struct {
	constructors map[account.Provider]Constructor
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[account.Provider]Constructor),
	}
}

// NewDefaultRegistry creates a registry with all shipped integrations
// registered. Currently that is the deterministic mock carrier; the
// fedex and ups tags stay resolvable as accounts but fail dispatch
// until their integrations land.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(account.ProviderMock, func(acc ResolvedAccount) (ports.CarrierAdapter, error) {
		return NewMockAdapter(acc), nil
	})
	return r
}

// Register binds a constructor to a provider tag, replacing any previous
// binding.
func (r *Registry) Register(provider account.Provider, constructor Constructor) {
	r.constructors[provider] = constructor
}

// Resolve builds an adapter for the resolved account's provider.
// Returns ErrUnsupportedProvider when no constructor is registered.
func (r *Registry) Resolve(acc ResolvedAccount) (ports.CarrierAdapter, error) {
	constructor, ok := r.constructors[acc.Provider]
	if !ok {
		return nil, NewAdapterError(acc.Provider, "resolve", ErrUnsupportedProvider)
	}
	return constructor(acc)
}
