package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/in/kafka"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/out/portalapi"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/out/postgres/historyrepo"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/out/render"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/portal"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/jobs"
)

// CompositionRoot wires every adapter into the session controller.
// Everything is constructed explicitly here; no package-level singletons.
type CompositionRoot struct {
	Controller *portal.Controller
	Renderer   *render.JournalRenderer
	Consumer   *kafka.PositionConsumer
	Jobs       *jobs.JobManager
}

// NewCompositionRoot builds the full object graph from config.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := portalapi.NewClient(config.PortalBaseURL, config.BoundaryFile, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("portal client: %w", err)
	}

	history, err := historyrepo.NewGormOrderHistoryRepository(gormDB)
	if err != nil {
		return nil, fmt.Errorf("history repository: %w", err)
	}
	if err := history.Migrate(); err != nil {
		return nil, fmt.Errorf("history migration: %w", err)
	}

	renderer := render.NewJournalRenderer(logger)

	controller, err := portal.NewController(
		client, client, client, client, client,
		history,
		renderer,
		portal.DefaultSearchDebounce,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("session controller: %w", err)
	}

	consumer, err := kafka.NewPositionConsumer(
		[]string{config.KafkaHost},
		config.KafkaConsumerGroup,
		config.KafkaPositionTopic,
		controller,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("position consumer: %w", err)
	}

	jobManager := jobs.NewJobManager(controller,
		config.BoundaryRefreshCron, config.CatalogRefreshCron, logger)

	return &CompositionRoot{
		Controller: controller,
		Renderer:   renderer,
		Consumer:   consumer,
		Jobs:       jobManager,
	}, nil
}

// DSN builds the Postgres connection string for the history database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
