package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierAccountsQueryHandler retrieves carrier account information from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetCarrierAccountsQueryHandler(db)
//	query, _ := NewGetCarrierAccountsQuery(userID)
//
//	accounts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get accounts: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d accounts\n", len(accounts))
type GetCarrierAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierAccountsQueryHandler creates a handler for carrier account
// retrieval queries. Requires a GORM database connection for query execution.
func NewGetCarrierAccountsQueryHandler(db *gorm.DB) GetCarrierAccountsQueryHandler {
	return GetCarrierAccountsQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's carrier accounts.
// Returns a slice of account read models sorted by account number.
// The credentials column is never selected.
func (h GetCarrierAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierAccountsQuery,
) ([]GetCarrierAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]GetCarrierAccountsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			provider,
			account_number,
			is_active
		FROM carrier_accounts
		WHERE user_id = ?
		ORDER BY account_number
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var acc GetCarrierAccountsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&acc.Provider,
			&acc.AccountNumber,
			&acc.IsActive,
		)
		if err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		acc.ID = accountID
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
