package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/catx1/Medi-Drone-Delivery-System/cmd"
	statushttp "github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to history database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Controller.LoadServiceArea(ctx)
	if err := app.Controller.RefreshCatalog(ctx); err != nil {
		logger.Warn("initial catalog load failed", "error", err)
	}

	if err := app.Jobs.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer app.Jobs.StopAll()

	go app.Consumer.Run(ctx)
	defer app.Consumer.Close()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		PortalBaseURL:       goDotEnvVariable("PORTAL_BASE_URL"),
		BoundaryFile:        goDotEnvVariable("BOUNDARY_FILE"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:           goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:  goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPositionTopic:  goDotEnvVariable("KAFKA_POSITION_TOPIC"),
		BoundaryRefreshCron: goDotEnvVariable("BOUNDARY_REFRESH_CRON"),
		CatalogRefreshCron:  goDotEnvVariable("CATALOG_REFRESH_CRON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	statushttp.NewServer(app.Controller).Register(e)

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			logger.Error("status server shutdown failed", "error", err)
		}
	}()

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
