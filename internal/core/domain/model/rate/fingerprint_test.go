package rate_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildShipment(t *testing.T, origin, destination string, weightKg float64, lineItemIDs []kernel.UUID) *shipment.Shipment {
	t.Helper()
	originCode, err := kernel.NewCountryCode(origin)
	require.NoError(t, err)
	destinationCode, err := kernel.NewCountryCode(destination)
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(),
		originCode, destinationCode, weightKg, lineItemIDs)
	require.NoError(t, err)
	return s
}

func TestNewFingerprint(t *testing.T) {
	lineItems := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	accounts := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	t.Run("is_deterministic", func(t *testing.T) {
		s := buildShipment(t, "US", "CA", 10, lineItems)

		first, err := rate.NewFingerprint(s, accounts)
		require.NoError(t, err)
		second, err := rate.NewFingerprint(s, accounts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first.String(), 64)
	})

	t.Run("ignores_account_order", func(t *testing.T) {
		s := buildShipment(t, "US", "CA", 10, lineItems)

		first, err := rate.NewFingerprint(s, []kernel.UUID{accounts[0], accounts[1]})
		require.NoError(t, err)
		second, err := rate.NewFingerprint(s, []kernel.UUID{accounts[1], accounts[0]})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("changes_with_weight", func(t *testing.T) {
		light := buildShipment(t, "US", "CA", 10, nil)
		heavy := buildShipment(t, "US", "CA", 11, nil)

		lightPrint, err := rate.NewFingerprint(light, accounts)
		require.NoError(t, err)
		heavyPrint, err := rate.NewFingerprint(heavy, accounts)
		require.NoError(t, err)

		assert.NotEqual(t, lightPrint, heavyPrint)
	})

	t.Run("changes_with_route", func(t *testing.T) {
		domestic := buildShipment(t, "US", "US", 10, nil)
		international := buildShipment(t, "US", "CA", 10, nil)

		domesticPrint, err := rate.NewFingerprint(domestic, accounts)
		require.NoError(t, err)
		internationalPrint, err := rate.NewFingerprint(international, accounts)
		require.NoError(t, err)

		assert.NotEqual(t, domesticPrint, internationalPrint)
	})

	t.Run("changes_with_account_set", func(t *testing.T) {
		s := buildShipment(t, "US", "CA", 10, lineItems)

		allAccounts, err := rate.NewFingerprint(s, accounts)
		require.NoError(t, err)
		oneAccount, err := rate.NewFingerprint(s, accounts[:1])
		require.NoError(t, err)

		assert.NotEqual(t, allAccounts, oneAccount)
	})

	t.Run("rejects_unconstructed_shipment", func(t *testing.T) {
		var s shipment.Shipment
		_, err := rate.NewFingerprint(&s, accounts)
		require.Error(t, err)
	})
}

func TestFingerprint_CacheKey(t *testing.T) {
	s := buildShipment(t, "US", "CA", 10, nil)

	print, err := rate.NewFingerprint(s, nil)
	require.NoError(t, err)

	key := print.CacheKey(s.ID())
	assert.Equal(t, "rates:"+s.ID().String()+":"+print.String(), key)
}
