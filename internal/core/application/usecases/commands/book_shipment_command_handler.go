package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// ErrShipmentAccessDenied is returned when a user books a shipment owned
// by someone else.
var ErrShipmentAccessDenied = errors.New("shipment access denied")

// BookShipmentCommandHandler orchestrates the booking workflow. Unlike
// rate shopping, every failure here is fatal: a booking either completes
// against the carrier and is persisted atomically, or the command fails
// and the shipment stays bookable.
//
// The selected account/service pair must match a quote from the
// shipment's last persisted rate snapshot; stale selections surface as
// services.ErrQuoteNotFound. A command without a service code books the
// account's cheapest quoted service instead.
//
// Example:
//
//	handler := NewBookShipmentCommandHandler(uowFactory, adapterFactory)
//	cmd, _ := NewBookShipmentCommand(shipmentID, userID, accountID, "EXPRESS")
//	confirmation, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrQuoteNotFound) {
//	    // the selection no longer matches the snapshot
//	}
type BookShipmentCommandHandler struct {
	uowFactory     UoWFactory
	adapterFactory ports.AdapterFactory
}

// NewBookShipmentCommandHandler creates a handler for shipment booking.
func NewBookShipmentCommandHandler(uowFactory UoWFactory, adapterFactory ports.AdapterFactory) BookShipmentCommandHandler {
	return BookShipmentCommandHandler{
		uowFactory:     uowFactory,
		adapterFactory: adapterFactory,
	}
}

// Handle processes the booking command.
//
// Verifies ownership of both the shipment and the carrier account,
// validates the selection against the persisted snapshot, books through
// the carrier and persists the status transition and booking record in
// one transaction.
func (h BookShipmentCommandHandler) Handle(ctx context.Context, cmd BookShipmentCommand) (ports.BookingConfirmation, error) {
	if err := cmd.Validate(); err != nil {
		return ports.BookingConfirmation{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.BookingConfirmation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	metaRepo := uow.CarrierMetaRepository()

	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return ports.BookingConfirmation{}, err
	}
	if !shp.OwnerID().IsEqual(cmd.UserID()) {
		return ports.BookingConfirmation{}, ErrShipmentAccessDenied
	}

	acc, err := uow.CarrierAccountRepository().Get(ctx, cmd.CarrierAccountID())
	if err != nil {
		return ports.BookingConfirmation{}, err
	}
	if !acc.IsOwnedBy(cmd.UserID()) {
		return ports.BookingConfirmation{}, ErrAccountAccessDenied
	}

	meta, err := metaRepo.GetByShipmentID(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.BookingConfirmation{}, services.ErrQuoteNotFound
	}
	if err != nil {
		return ports.BookingConfirmation{}, err
	}

	quotes, err := decodeSnapshot(meta.RateQuoteJSON())
	if err != nil {
		return ports.BookingConfirmation{}, err
	}

	selector := services.NewQuoteSelector()

	var selected rate.Quote
	if cmd.ServiceCode() == "" {
		selected, err = selector.Cheapest(accountQuotes(quotes, cmd.CarrierAccountID()))
	} else {
		selected, err = selector.Select(shp, quotes, cmd.CarrierAccountID(), cmd.ServiceCode())
	}
	if err != nil {
		return ports.BookingConfirmation{}, err
	}

	// Validate the status transition before spending a carrier call.
	if err = shp.Book(); err != nil {
		return ports.BookingConfirmation{}, err
	}

	adapter, err := h.adapterFactory.Resolve(ctx, acc)
	if err != nil {
		return ports.BookingConfirmation{}, err
	}

	confirmation, err := adapter.BookShipment(ctx, shp, selected.ServiceCode())
	if err != nil {
		return ports.BookingConfirmation{}, err
	}

	if err = meta.RecordBooking(acc.ID(), confirmation.TrackingNumber,
		confirmation.CarrierCode, confirmation.ServiceLevelCode, confirmation.BookedAt); err != nil {
		return ports.BookingConfirmation{}, err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return ports.BookingConfirmation{}, err
	}

	if err = metaRepo.Upsert(ctx, meta); err != nil {
		return ports.BookingConfirmation{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.BookingConfirmation{}, err
	}

	return confirmation, nil
}

// decodeSnapshot parses a persisted rate snapshot. A shipment that was
// never rate-shopped has an empty snapshot and therefore no bookable quotes.
func decodeSnapshot(encoded string) ([]rate.Quote, error) {
	if encoded == "" {
		return nil, nil
	}
	return rate.DecodeQuotes(encoded)
}

// accountQuotes filters a snapshot down to the quotes of one carrier account.
func accountQuotes(quotes []rate.Quote, carrierAccountID kernel.UUID) []rate.Quote {
	filtered := make([]rate.Quote, 0, len(quotes))
	for _, quote := range quotes {
		if quote.CarrierAccountID().IsEqual(carrierAccountID) {
			filtered = append(filtered, quote)
		}
	}
	return filtered
}
