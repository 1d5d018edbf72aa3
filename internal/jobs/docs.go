// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipment lifecycle service.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Runs every ten minutes to surface shipments past
// their delivery estimate that have not reached a terminal status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The overdue scan logs query failures and reports overdue shipments as
// warnings; it performs no writes, so a failed run has no side effects
package jobs
