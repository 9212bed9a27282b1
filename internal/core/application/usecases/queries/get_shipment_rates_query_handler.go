package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSnapshotAccessDenied is returned when a user reads the rate snapshot of
// a shipment they do not own.
var ErrSnapshotAccessDenied = errors.New("shipment does not belong to the requesting user")

// GetShipmentRatesQueryHandler retrieves the persisted rate snapshot for a
// shipment. The ownership check rides along in the same SQL statement via a
// join against the shipments table.
type GetShipmentRatesQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentRatesQueryHandler creates a handler for rate snapshot
// retrieval queries. Requires a GORM database connection for query execution.
func NewGetShipmentRatesQueryHandler(db *gorm.DB) GetShipmentRatesQueryHandler {
	return GetShipmentRatesQueryHandler{db: db}
}

// Handle executes the query to retrieve a shipment's rate snapshot.
// Returns ErrObjectNotFound when the shipment has never been rate-shopped
// and ErrSnapshotAccessDenied when it is owned by another user.
func (h GetShipmentRatesQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentRatesQuery,
) (GetShipmentRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentRatesQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.owner_id,
			m.rate_quote_json
		FROM shipments s
		LEFT JOIN carrier_meta m ON m.shipment_id = s.id
		WHERE s.id = ?
	`, query.ShipmentID().Bytes()).Row()

	var ownerID uuid.UUID
	var rateQuoteJSON sql.NullString

	err := row.Scan(&ownerID, &rateQuoteJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentRatesQueryResponse{},
			errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}
	if err != nil {
		return GetShipmentRatesQueryResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetShipmentRatesQueryResponse{}, err
	}
	if !owner.IsEqual(query.UserID()) {
		return GetShipmentRatesQueryResponse{}, ErrSnapshotAccessDenied
	}

	if !rateQuoteJSON.Valid || rateQuoteJSON.String == "" {
		return GetShipmentRatesQueryResponse{},
			errs.NewObjectNotFoundError("rate snapshot", query.ShipmentID().String())
	}

	quotes, err := rate.DecodeQuotes(rateQuoteJSON.String)
	if err != nil {
		return GetShipmentRatesQueryResponse{}, err
	}

	return GetShipmentRatesQueryResponse{
		ShipmentID: query.ShipmentID(),
		Quotes:     quotes,
	}, nil
}
