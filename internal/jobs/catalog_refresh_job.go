package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/portal"
)

// CatalogRefreshJob periodically reloads the medication list so stock
// levels shown to the customer stay current.
type CatalogRefreshJob struct {
	controller *portal.Controller
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCatalogRefreshJob creates a job refreshing the catalog on the given
// cron schedule (with seconds field).
func NewCatalogRefreshJob(controller *portal.Controller, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		controller: controller,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "catalog_refresh_job"),
	}
}

// Start begins the scheduled catalog refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.controller.RefreshCatalog(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the catalog refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
