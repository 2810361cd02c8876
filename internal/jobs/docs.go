// Package jobs provides scheduled background tasks for the coordination
// service, built on github.com/robfig/cron/v3.
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(registryStatsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// The registry snapshot job runs once a minute and only reads, so a failed
// run is logged and retried on the next tick rather than aborting anything.
package jobs
