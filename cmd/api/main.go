package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	competitionsHttp "league-stats-service/internal/competitions/adapters/http/fiber"
	competitionsRepoPg "league-stats-service/internal/competitions/adapters/postgres"
	competitionsUsecase "league-stats-service/internal/competitions/core/usecase"

	rostersHttp "league-stats-service/internal/rosters/adapters/http/fiber"
	rostersRepoPg "league-stats-service/internal/rosters/adapters/postgres"
	rostersUsecase "league-stats-service/internal/rosters/core/usecase"

	"league-stats-service/internal/platform/config"
	"league-stats-service/internal/platform/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "league-stats-service/docs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer logging.SafeClose(db, logger, "close postgres")

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.QueryTimeout)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	// Repositories
	rosterRepository := rostersRepoPg.NewRosterRepository(rostersRepoPg.NewSQLDB(db))
	competitionRepository := competitionsRepoPg.NewCompetitionRepository(competitionsRepoPg.NewSQLDB(db))

	// Usecases
	rosterSummaryUC := rostersUsecase.NewGetRosterSummaryUseCase(rosterRepository)
	leagueSummaryUC := competitionsUsecase.NewGetLeagueSummaryUseCase(competitionRepository)
	listTournamentsUC := competitionsUsecase.NewListTournamentsUseCase(competitionRepository)
	getTournamentUC := competitionsUsecase.NewGetTournamentUseCase(competitionRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "league-stats-service",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(logger))

	withTimeout := func(h fiber.Handler) fiber.Handler {
		return timeout.NewWithContext(h, cfg.QueryTimeout)
	}

	app.Get("/healthz", withTimeout(healthHandler(db, logger)))

	// roster endpoints
	rosterHandler := rostersHttp.NewRosterHandler(rosterSummaryUC, logger)
	app.Get("/teams/:id/summary", withTimeout(rosterHandler.GetTeamSummary))
	app.Get("/crews/:id/summary", withTimeout(rosterHandler.GetCrewSummary))

	// competition endpoints
	competitionHandler := competitionsHttp.NewCompetitionHandler(leagueSummaryUC, listTournamentsUC, getTournamentUC, logger)
	app.Get("/leagues/:id/summary", withTimeout(competitionHandler.GetLeagueSummary))
	app.Get("/tournaments", withTimeout(competitionHandler.ListTournaments))
	app.Get("/tournaments/:id", withTimeout(competitionHandler.GetTournament))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
	return nil
}
