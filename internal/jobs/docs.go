// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CostingSweepJob - Periodically re-publishes costing requests for parcels
// whose shipping cost was never calculated. The creation consumer publishes a
// costing message on a best-effort basis; when that publish is lost, the sweep
// picks the parcel up and feeds it back into the pipeline.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep logs and continues on per-parcel publish failures; a parcel that
// could not be re-published stays uncosted and is retried on the next run.
package jobs
