package commands_test

import (
	"testing"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Shared fixtures for the command handler tests.

func newTestShipment(t *testing.T, ownerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	origin, err := kernel.NewCountryCode("US")
	require.NoError(t, err)
	destination, err := kernel.NewCountryCode("CA")
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), ownerID,
		origin, destination, 10, []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)
	return s
}

func newTestAccount(t *testing.T, userID kernel.UUID) *account.CarrierAccount {
	t.Helper()
	acc, err := account.NewCarrierAccount(kernel.NewUUID(), userID,
		account.ProviderMock, "sealed-credentials", "ACME-001")
	require.NoError(t, err)
	return acc
}

func newTestQuote(t *testing.T, accountID kernel.UUID, serviceCode, amount string, transitDays int) rate.Quote {
	t.Helper()
	q, err := rate.NewQuote(accountID, account.ProviderMock,
		serviceCode, "", decimal.RequireFromString(amount), "USD", transitDays)
	require.NoError(t, err)
	return q
}

func encodeQuotes(t *testing.T, quotes []rate.Quote) string {
	t.Helper()
	encoded, err := rate.EncodeQuotes(quotes)
	require.NoError(t, err)
	return encoded
}
