package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookShipmentCommand(t *testing.T) {
	shipmentID := kernel.NewUUID()
	userID := kernel.NewUUID()
	accountID := kernel.NewUUID()

	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewBookShipmentCommand(shipmentID, userID, accountID, "GROUND")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, shipmentID, cmd.ShipmentID())
		assert.Equal(t, userID, cmd.UserID())
		assert.Equal(t, accountID, cmd.CarrierAccountID())
		assert.Equal(t, "GROUND", cmd.ServiceCode())
	})

	t.Run("allows_empty_service_code_for_default_selection", func(t *testing.T) {
		cmd, err := commands.NewBookShipmentCommand(shipmentID, userID, accountID, "")

		require.NoError(t, err)
		assert.Empty(t, cmd.ServiceCode())
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		_, err := commands.NewBookShipmentCommand(kernel.UUID{}, userID, accountID, "GROUND")
		require.Error(t, err)

		_, err = commands.NewBookShipmentCommand(shipmentID, kernel.UUID{}, accountID, "GROUND")
		require.Error(t, err)

		_, err = commands.NewBookShipmentCommand(shipmentID, userID, kernel.UUID{}, "GROUND")
		require.Error(t, err)
	})

	t.Run("zero_value_command_is_invalid", func(t *testing.T) {
		var cmd commands.BookShipmentCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrBookShipmentCommandIsNotConstructed)
	})
}
