package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// trackingUpdateSchedule runs the tracking sweep every five minutes. Carrier
// tracking feeds update on the order of hours, so a tighter schedule would
// only burn carrier API quota.
const trackingUpdateSchedule = "0 */5 * * * *"

// TrackingUpdateJob manages the scheduled tracking refresh for booked
// shipments. Each run sweeps every shipment in Booked status, polls its
// carrier for the latest status and marks delivered shipments.
type TrackingUpdateJob struct {
	handler commands.UpdateTrackingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingUpdateJob creates a new job for refreshing tracking statuses.
// Uses UpdateTrackingCommandHandler to process the sweep on each tick.
func NewTrackingUpdateJob(handler commands.UpdateTrackingCommandHandler, logger *slog.Logger) *TrackingUpdateJob {
	return &TrackingUpdateJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_update_job"),
	}
}

// Start begins the tracking update job on its five-minute schedule.
func (j *TrackingUpdateJob) Start() error {
	_, err := j.cron.AddFunc(trackingUpdateSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewUpdateTrackingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Tracking update job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking update job started (running every five minutes)")
	return nil
}

// Stop stops the tracking update job.
func (j *TrackingUpdateJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking update job stopped")
}
