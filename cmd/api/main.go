package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pablolacamera1/ventaspanel/internal/config"
	"github.com/pablolacamera1/ventaspanel/internal/export"
	panelHttp "github.com/pablolacamera1/ventaspanel/internal/http"
	customersHandler "github.com/pablolacamera1/ventaspanel/internal/http/customers"
	dashboardHandler "github.com/pablolacamera1/ventaspanel/internal/http/dashboard"
	productsHandler "github.com/pablolacamera1/ventaspanel/internal/http/products"
	reportsHandler "github.com/pablolacamera1/ventaspanel/internal/http/reports"
	salesHandler "github.com/pablolacamera1/ventaspanel/internal/http/sales"
	"github.com/pablolacamera1/ventaspanel/internal/importer"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
	"github.com/pablolacamera1/ventaspanel/internal/sale/seed"
	"github.com/pablolacamera1/ventaspanel/internal/sale/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		slog.Error("failed to initialize data source", "source", cfg.Data.Source, "error", err)
		os.Exit(1)
	}

	exportService := export.NewService()

	var (
		dashboardH = dashboardHandler.NewHandler(provider)
		salesH     = salesHandler.NewHandler(provider)
		customersH = customersHandler.NewHandler(provider)
		productsH  = productsHandler.NewHandler(provider)
		reportsH   = reportsHandler.NewHandler(provider, exportService)
	)

	router := panelHttp.New(dashboardH, salesH, customersH, productsH, reportsH, cfg.CORS.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "source", cfg.Data.Source)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// newProvider selects the snapshot source. Postgres serves a fresh
// snapshot per request; CSV and seed data load once and stay fixed for
// the lifetime of the process.
func newProvider(cfg *config.Config) (sale.Provider, error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		return store.New(cfg.ConnectionString())
	case config.SourceCSV:
		snap, err := importer.LoadDir(cfg.Data.CSVDir)
		if err != nil {
			return nil, err
		}

		return sale.Static{Snap: snap}, nil
	case config.SourceSeed:
		return sale.Static{Snap: seed.Snapshot(cfg.Data.Seed, cfg.Data.Records, time.Now())}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}
