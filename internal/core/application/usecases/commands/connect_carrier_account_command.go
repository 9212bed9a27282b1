package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrConnectCarrierAccountCommandIsNotConstructed = errors.New(
		"ConnectCarrierAccountCommand must be created via NewConnectCarrierAccountCommand constructor",
	)
	ErrCredentialsAreRequired = errors.New("credentials are required")
)

// ConnectCarrierAccountCommand represents a request to connect a user's
// carrier account to the gateway. Carries the plaintext credentials exactly
// once, from the API boundary to the handler that seals them; they are
// never persisted or logged in this form.
//
// Example:
//
//	cmd, err := NewConnectCarrierAccountCommand(userID, account.ProviderMock,
//	    `{"apiKey":"..."}`, "ACME-001")
//	if err != nil {
//	    return fmt.Errorf("invalid account data: %w", err)
//	}
//
//	handler := NewConnectCarrierAccountCommandHandler(uowFactory, credentialVault)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to connect account: %w", err)
//	}
//	fmt.Printf("Connected account %s", cmd.AccountID())
type ConnectCarrierAccountCommand struct { //nolint:recvcheck //using for validation
	accountID     kernel.UUID
	userID        kernel.UUID
	provider      account.Provider
	credentials   string
	accountNumber string

	guard guard.ConstructorGuard
}

// NewConnectCarrierAccountCommand creates a command to connect a carrier account.
// Automatically generates a unique ID for the account.
// Validates that the user ID, provider and credentials are present.
func NewConnectCarrierAccountCommand(
	userID kernel.UUID,
	provider account.Provider,
	credentials string,
	accountNumber string,
) (ConnectCarrierAccountCommand, error) {
	command := ConnectCarrierAccountCommand{
		accountNumber: accountNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(kernel.NewUUID()),
		command.setUserID(userID),
		command.setProvider(provider),
		command.setCredentials(credentials),
	); err != nil {
		return ConnectCarrierAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConnectCarrierAccountCommand) Validate() error {
	return c.guard.Validate(ErrConnectCarrierAccountCommandIsNotConstructed)
}

// AccountID returns the generated carrier account ID.
func (c ConnectCarrierAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// UserID returns the owning user ID from the command.
func (c ConnectCarrierAccountCommand) UserID() kernel.UUID {
	return c.userID
}

// Provider returns the carrier provider from the command.
func (c ConnectCarrierAccountCommand) Provider() account.Provider {
	return c.provider
}

// Credentials returns the plaintext credentials from the command.
func (c ConnectCarrierAccountCommand) Credentials() string {
	return c.credentials
}

// AccountNumber returns the customer's number at the carrier, may be empty.
func (c ConnectCarrierAccountCommand) AccountNumber() string {
	return c.accountNumber
}

func (c *ConnectCarrierAccountCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *ConnectCarrierAccountCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ConnectCarrierAccountCommand) setProvider(provider account.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	c.provider = provider
	return nil
}

func (c *ConnectCarrierAccountCommand) setCredentials(credentials string) error {
	if credentials == "" {
		return ErrCredentialsAreRequired
	}

	c.credentials = credentials
	return nil
}
