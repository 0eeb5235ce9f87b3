// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the engine without an operator when the HTTP server runs.
//
// # Available Jobs
//
// 1. MissionPlanningJob - matches queued parcels to available drones
// 2. MissionLaunchJob - launches the next planned mission, one per tick
//
// Missions are never completed automatically; completion stays an explicit command.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(planHandler, launchHandler, "@every 5s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are parsed with seconds enabled: "*/5 * * * * *" and "@every 5s"
// are equivalent.
//
// # Error Handling
//
// - Empty queues and missing planned missions are not errors and are not logged
// - Handler errors are logged and the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
