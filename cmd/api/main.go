package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/bundakue/titipan/internal/auth"
	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/config"
	"github.com/bundakue/titipan/internal/consignment"
	"github.com/bundakue/titipan/internal/export"
	titipanHttp "github.com/bundakue/titipan/internal/http"
	authHandler "github.com/bundakue/titipan/internal/http/auth"
	catalogHandler "github.com/bundakue/titipan/internal/http/catalog"
	consignmentHandler "github.com/bundakue/titipan/internal/http/consignment"
	exportHandler "github.com/bundakue/titipan/internal/http/export"
	importHandler "github.com/bundakue/titipan/internal/http/importcsv"
	reportHandler "github.com/bundakue/titipan/internal/http/report"
	"github.com/bundakue/titipan/internal/importer"
	"github.com/bundakue/titipan/internal/report"
	"github.com/bundakue/titipan/internal/seed"
	"github.com/bundakue/titipan/internal/store/memory"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store := memory.New()

	var (
		sessionService     = auth.NewService(cfg.Session.Username, cfg.Session.Password, cfg.Session.Secret, cfg.Session.TTL)
		catalogService     = catalog.NewService(store)
		consignmentService = consignment.NewService(store)
		reportService      = report.NewService(store, store)
		importService      = importer.NewService()
		exportService      = export.NewService(reportService)
	)

	if cfg.Seed.DemoData {
		if err := seed.Load(context.Background(), catalogService, consignmentService); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	var (
		authH        = authHandler.NewHandler(sessionService)
		catalogH     = catalogHandler.NewHandler(catalogService)
		consignmentH = consignmentHandler.NewHandler(consignmentService)
		reportH      = reportHandler.NewHandler(reportService)
		exportH      = exportHandler.NewHandler(exportService)
		importH      = importHandler.NewHandler(importService, catalogService)
	)

	router := titipanHttp.New(sessionService, authH, catalogH, consignmentH, reportH, exportH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
