// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds-enabled
// schedules ("*/30 * * * * *" runs every 30 seconds).
//
// # Available Jobs
//
// 1. VesselTrackingJob - refreshes the destination position of every open
// mission whose customer registered a vessel callsign
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(logger, jobs.NewVesselTrackingJob(schedule, handler, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to
// start stops the jobs started before it.
package jobs
