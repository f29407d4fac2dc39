package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/portal"
)

// BoundaryRefreshJob periodically reloads the service-area boundary so a
// long-running client picks up server-side changes. The load itself is
// best-effort; a failed refresh keeps the previous boundary.
type BoundaryRefreshJob struct {
	controller *portal.Controller
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewBoundaryRefreshJob creates a job refreshing the boundary on the given
// cron schedule (with seconds field).
func NewBoundaryRefreshJob(controller *portal.Controller, schedule string, logger *slog.Logger) *BoundaryRefreshJob {
	return &BoundaryRefreshJob{
		controller: controller,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "boundary_refresh_job"),
	}
}

// Start begins the scheduled boundary refresh.
func (j *BoundaryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.controller.LoadServiceArea(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Boundary refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the boundary refresh job.
func (j *BoundaryRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Boundary refresh job stopped")
}
