// Package jobs provides scheduled background tasks of the order service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - warns about kitchen orders that have been waiting
// longer than their estimated preparation time. Runs every minute unless
// configured otherwise.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(overdueHandler, "0 * * * * *", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err = jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. Failed job starts
// stop any already running jobs.
package jobs
