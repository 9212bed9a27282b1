// Package jobs provides scheduled background tasks for the carrier gateway.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the rate-shopping service.
//
// # Available Jobs
//
// 1. TrackingUpdateJob - Runs every five minutes to refresh carrier tracking
// statuses for booked shipments and mark delivered ones
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(updateTrackingHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tracking job uses the cron expression "0 */5 * * * *" (every five
// minutes). Carrier tracking feeds move slowly, so a tighter schedule would
// only spend carrier API quota without surfacing new information.
//
// # Error Handling
//
// - Per-shipment carrier failures are logged and skipped inside the handler,
// so one misbehaving carrier never stalls the whole sweep
// - Failures of the sweep itself are logged by the job and retried on the
// next tick
package jobs
