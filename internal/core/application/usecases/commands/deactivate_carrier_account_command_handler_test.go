package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeactivateCarrierAccountCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()
	acc := newTestAccount(t, userID)

	cmd, err := commands.NewDeactivateCarrierAccountCommand(acc.ID(), userID)
	require.NoError(t, err)

	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CarrierAccountRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, acc.ID()).Return(acc, nil).Once(),
		mockRepo.On("Update", ctx, acc).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeactivateCarrierAccountCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, acc.IsActive())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeactivateCarrierAccountCommandHandler_Handle_ForeignAccount(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	intruderID := kernel.NewUUID()
	acc := newTestAccount(t, ownerID)

	cmd, err := commands.NewDeactivateCarrierAccountCommand(acc.ID(), intruderID)
	require.NoError(t, err)

	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CarrierAccountRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, acc.ID()).Return(acc, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeactivateCarrierAccountCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrAccountAccessDenied)
	assert.True(t, acc.IsActive(), "foreign requests must not deactivate the account")
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeactivateCarrierAccountCommandHandler_Handle_AccountNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	accountID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewDeactivateCarrierAccountCommand(accountID, userID)
	require.NoError(t, err)

	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CarrierAccountRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, accountID).
		Return(nil, errs.NewObjectNotFoundError("accountID", accountID)).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeactivateCarrierAccountCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeactivateCarrierAccountCommandHandler_Handle_IsIdempotent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()
	acc := newTestAccount(t, userID)
	acc.Deactivate()

	cmd, err := commands.NewDeactivateCarrierAccountCommand(acc.ID(), userID)
	require.NoError(t, err)

	mockRepo := new(MockAccountRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAccountUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CarrierAccountRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, acc.ID()).Return(acc, nil).Once()
	mockRepo.On("Update", ctx, acc).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeactivateCarrierAccountCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, acc.IsActive())
}
