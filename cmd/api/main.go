package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/config"
	appHTTP "github.com/bakersinn/despatch-dashboard/internal/handler/http"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/cron"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/sse"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/storage"
	"github.com/bakersinn/despatch-dashboard/internal/repository/spreadsheet"
	dashboardService "github.com/bakersinn/despatch-dashboard/internal/service/dashboard"
	datasetService "github.com/bakersinn/despatch-dashboard/internal/service/dataset"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logLevel, _ := config.ParseLogLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "despatch-dashboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fileStorage, err := storage.NewLocalStorage(cfg.Data.Dir)
	if err != nil {
		log.Fatal("Failed to initialize data directory: ", err)
	}

	sourceRepo := spreadsheet.NewSourceRepository(fileStorage, spreadsheet.Sources{
		Orders:    spreadsheet.Source{File: cfg.Data.Orders.File, Sheet: cfg.Data.Orders.Sheet},
		Despatch:  spreadsheet.Source{File: cfg.Data.Despatch.File, Sheet: cfg.Data.Despatch.Sheet},
		DateIndex: spreadsheet.Source{File: cfg.Data.DateIndex.File, Sheet: cfg.Data.DateIndex.Sheet},
	})

	hub := sse.NewHub()
	datasetSvc := datasetService.NewDatasetService(sourceRepo, hub)

	// Nothing can be rendered without the three sources
	if _, err := datasetSvc.Reload(ctx); err != nil {
		log.Fatal("Failed to load dataset: ", err)
	}

	dashboardSvc, err := dashboardService.NewDashboardService(datasetSvc, cfg.Cache.ViewSize)
	if err != nil {
		log.Fatal("Failed to initialize dashboard service: ", err)
	}

	scheduler := cron.NewScheduler(ctx)
	cron.NewDatasetJobs(datasetSvc, cfg.Data.RefreshInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			LogLevel:       slog.LevelDebug,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewDatasetHandler(datasetSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+server.Addr, "data_dir", cfg.Data.Dir)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
