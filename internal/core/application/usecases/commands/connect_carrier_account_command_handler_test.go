package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommandTestVault(t *testing.T) *vault.Vault {
	t.Helper()
	v, err := vault.NewWithTestKey("commands-test")
	require.NoError(t, err)
	return v
}

func TestConnectCarrierAccountCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := newCommandTestVault(t)
	userID := kernel.NewUUID()

	cmd, err := commands.NewConnectCarrierAccountCommand(
		userID, account.ProviderMock, `{"apiKey":"secret"}`, "ACME-001")
	require.NoError(t, err)

	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	var stored *account.CarrierAccount
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CarrierAccountRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*account.CarrierAccount")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*account.CarrierAccount)
			}).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewConnectCarrierAccountCommandHandler(mockFactory, v)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive())
	assert.Equal(t, userID, stored.UserID())

	assert.NotEqual(t, `{"apiKey":"secret"}`, stored.CredentialsCiphertext(),
		"plaintext never reaches the repository")
	assert.True(t, v.IsSealed(stored.CredentialsCiphertext()))

	plaintext, err := v.Decrypt(stored.CredentialsCiphertext())
	require.NoError(t, err)
	assert.Equal(t, `{"apiKey":"secret"}`, plaintext)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestConnectCarrierAccountCommandHandler_Handle_RepositoryFailure(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewConnectCarrierAccountCommand(
		kernel.NewUUID(), account.ProviderMock, "key", "")
	require.NoError(t, err)

	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CarrierAccountRepository").Return(mockRepo).Once()
	mockRepo.On("Add", ctx, mock.AnythingOfType("*account.CarrierAccount")).
		Return(errors.New("duplicate key")).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewConnectCarrierAccountCommandHandler(mockFactory, newCommandTestVault(t))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConnectCarrierAccountCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	handler := commands.NewConnectCarrierAccountCommandHandler(
		new(MockAccountUoWFactory), newCommandTestVault(t))

	err := handler.Handle(t.Context(), commands.ConnectCarrierAccountCommand{})

	require.ErrorIs(t, err, commands.ErrConnectCarrierAccountCommandIsNotConstructed)
}
