package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/config"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/mongodb"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/roster"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/sheets"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/scheduler"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/server/handlers"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/server/router"
	eventsvc "github.com/DylanJDombrowski/pizzai-dashboard/internal/service/events"
	forecastsvc "github.com/DylanJDombrowski/pizzai-dashboard/internal/service/forecast"
	laborsvc "github.com/DylanJDombrowski/pizzai-dashboard/internal/service/labor"
	schedulingsvc "github.com/DylanJDombrowski/pizzai-dashboard/internal/service/scheduling"
	"github.com/DylanJDombrowski/pizzai-dashboard/pkg/clients/anthropic"
	"github.com/DylanJDombrowski/pizzai-dashboard/pkg/clients/weather"
	"github.com/DylanJDombrowski/pizzai-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var rosterProvider roster.Provider
	if cfg.SheetsEnabled() {
		sheetRoster, err := sheets.NewSheetRoster(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheet roster", zap.Error(err))
		}
		rosterProvider = sheetRoster
	} else {
		baseLogger.Warn("roster sheet not configured, using built-in dev roster")
		rosterProvider = roster.NewStaticRoster()
	}

	var forecastProvider forecastsvc.Provider
	if cfg.Weather.APIKey != "" {
		weatherClient := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.Latitude, cfg.Weather.Longitude)
		forecastProvider = forecastsvc.NewWeatherProvider(weatherClient, baseLogger.Named("svc.forecast"))
	} else {
		baseLogger.Warn("openweathermap api key missing, using baseline forecasts")
		forecastProvider = forecastsvc.NewStaticProvider()
	}

	calendar := eventsvc.NewStaticCalendar()
	eventsService := eventsvc.NewService(calendar, baseLogger.Named("svc.events"))
	analyzer := laborsvc.NewAnalyzer(baseLogger.Named("svc.labor"))

	// A missing API key disables the primary path; every request then takes
	// the deterministic fallback and says so in its warnings.
	var proposer schedulingsvc.ShiftProposer
	if cfg.AI.AnthropicKey != "" {
		proposer = anthropic.NewClient(cfg.AI.AnthropicKey)
		baseLogger.Info("anthropic shift proposer enabled")
	} else {
		baseLogger.Warn("anthropic api key missing, ai scheduling disabled")
	}

	schedulingService := schedulingsvc.NewService(
		proposer,
		eventsService,
		analyzer,
		schedulingsvc.Options{
			OrdersPerStaff:       cfg.Scheduling.OrdersPerStaff,
			DinnerOrderThreshold: cfg.Scheduling.DinnerOrderThreshold,
		},
		baseLogger.Named("svc.scheduling"),
	)

	constraints := models.DefaultConstraints()
	constraints.MaxLaborCostPercent = cfg.Scheduling.TargetLaborPercent

	scheduleHandler := handlers.NewScheduleHandler(
		schedulingService,
		mongoRepo,
		rosterProvider,
		forecastProvider,
		calendar,
		calendar,
		constraints,
		baseLogger.Named("handlers.schedule"),
	)
	engine := router.New(scheduleHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(
		cfg.Scheduling,
		schedulingService,
		mongoRepo,
		rosterProvider,
		forecastProvider,
		calendar,
		constraints,
		baseLogger.Named("scheduler"),
	)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
