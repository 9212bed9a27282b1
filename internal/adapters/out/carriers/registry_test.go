package carriers_test

import (
	"testing"

	"freight/internal/adapters/out/carriers"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Run("default_registry_resolves_mock", func(t *testing.T) {
		registry := carriers.NewDefaultRegistry()

		adapter, err := registry.Resolve(resolvedMockAccount())

		require.NoError(t, err)
		assert.IsType(t, &carriers.MockAdapter{}, adapter)
	})

	t.Run("unregistered_provider_is_unsupported", func(t *testing.T) {
		registry := carriers.NewDefaultRegistry()
		acc := resolvedMockAccount()
		acc.Provider = account.ProviderFedEx

		_, err := registry.Resolve(acc)

		require.ErrorIs(t, err, carriers.ErrUnsupportedProvider)

		var adapterErr *carriers.AdapterError
		require.ErrorAs(t, err, &adapterErr)
		assert.Equal(t, account.ProviderFedEx, adapterErr.Provider)
	})

	t.Run("register_binds_constructor", func(t *testing.T) {
		registry := carriers.NewRegistry()
		acc := carriers.ResolvedAccount{
			AccountID: kernel.NewUUID(),
			Provider:  account.ProviderUPS,
		}
		registry.Register(account.ProviderUPS, func(resolved carriers.ResolvedAccount) (ports.CarrierAdapter, error) {
			assert.Equal(t, acc.AccountID, resolved.AccountID)
			return carriers.NewMockAdapter(resolved), nil
		})

		adapter, err := registry.Resolve(acc)

		require.NoError(t, err)
		assert.NotNil(t, adapter)
	})

	t.Run("empty_registry_resolves_nothing", func(t *testing.T) {
		registry := carriers.NewRegistry()

		_, err := registry.Resolve(resolvedMockAccount())

		require.ErrorIs(t, err, carriers.ErrUnsupportedProvider)
	})
}
