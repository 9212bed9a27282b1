package commands

import (
	"context"
	"log/slog"
	"strings"

	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
)

// deliveredTrackingStatus is the carrier status that completes a shipment.
const deliveredTrackingStatus = "DELIVERED"

// UpdateTrackingCommandHandler refreshes tracking state for all booked
// shipments. One shipment's carrier failing does not stop the sweep; the
// failure is logged and the shipment is retried on the next run.
type UpdateTrackingCommandHandler struct {
	uowFactory     TrackingUoWFactory
	adapterFactory ports.AdapterFactory
	logger         *slog.Logger
}

// NewUpdateTrackingCommandHandler creates a handler for tracking refresh operations.
func NewUpdateTrackingCommandHandler(
	uowFactory TrackingUoWFactory,
	adapterFactory ports.AdapterFactory,
	logger *slog.Logger,
) UpdateTrackingCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return UpdateTrackingCommandHandler{
		uowFactory:     uowFactory,
		adapterFactory: adapterFactory,
		logger:         logger,
	}
}

// Handle processes the tracking refresh command.
// Polls the carrier for every booked shipment, records the reported status
// on the meta row and delivers shipments the carrier reports as delivered.
func (h UpdateTrackingCommandHandler) Handle(ctx context.Context, cmd UpdateTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments, err := uow.ShipmentRepository().GetAllInBookedStatus(ctx)
	if err != nil {
		return err
	}

	for _, shp := range shipments {
		if err = h.refreshShipment(ctx, uow, shp); err != nil {
			h.logger.Warn("tracking refresh failed for shipment",
				"shipmentID", shp.ID(), "error", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// refreshShipment polls the carrier for one shipment and persists the result.
func (h UpdateTrackingCommandHandler) refreshShipment(ctx context.Context, uow TrackingUoW, shp *shipment.Shipment) error {
	metaRepo := uow.CarrierMetaRepository()

	meta, err := metaRepo.GetByShipmentID(ctx, shp.ID())
	if err != nil {
		return err
	}
	if !meta.IsBooked() || meta.CarrierAccountID() == nil {
		// Status says booked but the meta row disagrees; skip rather than guess.
		return nil
	}

	adapter, err := h.adapterFactory.ResolveByID(ctx, *meta.CarrierAccountID())
	if err != nil {
		return err
	}

	update, err := adapter.TrackShipment(ctx, meta.TrackingNumber())
	if err != nil {
		return err
	}

	meta.RecordTracking(update.Status, update.CheckedAt)
	if err = metaRepo.Upsert(ctx, meta); err != nil {
		return err
	}

	if strings.EqualFold(update.Status, deliveredTrackingStatus) {
		if err = shp.Deliver(); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, shp); err != nil {
			return err
		}
	}

	return nil
}
