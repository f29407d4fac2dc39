package jobs

import (
	"fmt"
	"log/slog"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/portal"
)

// JobManager coordinates all scheduled jobs in the client.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boundaryRefreshJob *BoundaryRefreshJob
	catalogRefreshJob  *CatalogRefreshJob
}

// NewJobManager creates a job manager wiring both refresh jobs to the
// session controller.
func NewJobManager(
	controller *portal.Controller,
	boundarySchedule string,
	catalogSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boundaryRefreshJob: NewBoundaryRefreshJob(controller, boundarySchedule, logger),
		catalogRefreshJob:  NewCatalogRefreshJob(controller, catalogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boundaryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start boundary refresh job: %w", err)
	}

	if err := jm.catalogRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.boundaryRefreshJob.Stop()
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogRefreshJob.Stop()
	jm.boundaryRefreshJob.Stop()
}
