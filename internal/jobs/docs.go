// Package jobs provides scheduled background tasks for the portal client.
//
// Two cron-based jobs (github.com/robfig/cron/v3) keep the client's cached
// server data fresh:
//
// 1. BoundaryRefreshJob - reloads the service-area polygon
// 2. CatalogRefreshJob - reloads the medication list
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(controller, "0 */10 * * * *", "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Both refreshes are best-effort: failures are logged and the previously
// loaded data stays in use until the next run.
package jobs
