// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetCarrierAccountsQueryIsNotConstructed = errors.New(
		"GetCarrierAccountsQuery must be created via NewGetCarrierAccountsQuery constructor",
	)
)

// GetCarrierAccountsQuery retrieves the carrier accounts owned by a user.
// Returns account identities and connection state for account management
// screens. Sealed credentials never leave the write side: the read model
// exposes only the account number and status.
//
// Example:
//
//	query, err := NewGetCarrierAccountsQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCarrierAccountsQueryHandler(db)
//
//	accounts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve accounts: %w", err)
//	}
//
//	for _, acc := range accounts {
//	    fmt.Printf("Account %s via %s (active=%v)\n",
//	        acc.AccountNumber, acc.Provider, acc.IsActive)
//	}
type GetCarrierAccountsQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetCarrierAccountsQuery creates a query to retrieve all carrier accounts
// owned by the given user.
func NewGetCarrierAccountsQuery(userID kernel.UUID) (GetCarrierAccountsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCarrierAccountsQuery{}, err
	}

	return GetCarrierAccountsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the owner whose accounts are being listed.
func (q GetCarrierAccountsQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCarrierAccountsQueryIsNotConstructed if validation fails.
func (q GetCarrierAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierAccountsQueryIsNotConstructed)
}

// GetCarrierAccountsQueryResponse represents carrier account information in
// the read model. Deliberately omits the sealed credentials column.
type GetCarrierAccountsQueryResponse struct {
	ID            kernel.UUID
	Provider      string
	AccountNumber string
	IsActive      bool
}
