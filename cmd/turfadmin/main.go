package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/turf-admin/internal/api"
	"github.com/example/turf-admin/internal/config"
	"github.com/example/turf-admin/internal/export"
	"github.com/example/turf-admin/internal/geo"
	"github.com/example/turf-admin/internal/logging"
	"github.com/example/turf-admin/internal/notify"
	"github.com/example/turf-admin/internal/observability"
	"github.com/example/turf-admin/internal/store"
	"github.com/example/turf-admin/internal/token"
)

// app bundles the stores the subcommands operate on. It is built once in
// main and passed down; no package-level state.
type app struct {
	cfg    config.App
	logger *slog.Logger
	tokens token.Store

	auth      *store.Auth
	users     *store.Users
	vendors   *store.Vendors
	venues    *store.Venues
	amenities *store.Amenities
	rules     *store.Rules
	dashboard *store.Dashboard
	exporter  *export.Exporter
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel)

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := observability.ServeMetrics(cfg.MetricsAddr, logger); err != nil {
				logger.Warn("metrics listener stopped", "error", err)
			}
		}()
	}

	ctx := context.Background()
	a.auth.Rehydrate(ctx)

	if err := a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg config.App, logger *slog.Logger) (*app, error) {
	var tokens token.Store
	if cfg.RedisAddr != "" {
		tokens = token.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.TokenKey)
	} else {
		fs, err := token.NewFileStore(cfg.TokenKey)
		if err != nil {
			return nil, fmt.Errorf("token store: %w", err)
		}
		tokens = fs
	}

	client := api.NewClient(cfg.APIBaseURL, tokens, logger)
	resolver := geo.NewResolver(logger)
	notifier := &notify.LogNotifier{Logger: logger}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		tokens:    tokens,
		auth:      store.NewAuth(client, tokens, logger),
		users:     store.NewUsers(client),
		vendors:   store.NewVendors(client, resolver, notifier),
		venues:    store.NewVenues(client, notifier),
		amenities: store.NewAmenities(client, notifier),
		rules:     store.NewRules(client, notifier),
		dashboard: store.NewDashboard(client),
		exporter:  export.NewExporter(export.DirSink{Dir: exportDir}, notifier, logger),
	}, nil
}
