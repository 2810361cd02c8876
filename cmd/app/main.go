package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"logistics/cmd"
	httpserver "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/carrierrepo"
	"logistics/internal/adapters/out/postgres/counter"
	"logistics/internal/adapters/out/postgres/optimizationrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/schedulerepo"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateGetRegistryStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := buildWebServer(&app)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	})
	group.Go(func() error {
		<-ctx.Done()
		return e.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(
		&counter.CounterDTO{},
		&carrierrepo.CarrierDTO{},
		&routerepo.RouteDTO{},
		&schedulerepo.ScheduleDTO{},
		&optimizationrepo.OptimizationDTO{},
	); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func buildWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateRegisterCarrierCommandHandler(),
		app.CreateSetCarrierAvailabilityCommandHandler(),
		app.CreateUpdateCarrierLocationCommandHandler(),
		app.CreateAddRouteCommandHandler(),
		app.CreateCreateScheduleCommandHandler(),
		app.CreateUpdateSchedulePriorityCommandHandler(),
		app.CreateSubmitOptimizationCommandHandler(),
		app.CreateGetCarrierQueryHandler(),
		app.CreateGetCarrierCapacityQueryHandler(),
		app.CreateGetAvailableCarriersQueryHandler(),
		app.CreateGetRouteQueryHandler(),
		app.CreateGetScheduleQueryHandler(),
		app.CreateGetOptimizationQueryHandler(),
		app.CreateGetLatestOptimizationQueryHandler(),
		app.CreateGetRegistryStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}
