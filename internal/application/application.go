// Package application wires the launch dashboard: it loads the launch table
// from the configured source and runs the dashboard, probe and metrics
// servers until the context is cancelled.
package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/service/launch"
	"launchdash/internal/infrastructure/dataset"
	"launchdash/internal/infrastructure/persistence"
	"launchdash/internal/server"
	"launchdash/pkg/application/connectors"
	"launchdash/pkg/application/modules"
	"launchdash/pkg/httpx"
	"launchdash/pkg/logx"
	"launchdash/pkg/metrics"
	"launchdash/pkg/middlewarex"
	"launchdash/pkg/rest"
)

func Run(ctx context.Context, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	registry := metrics.NewRegistry()

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	probeServer := modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	handler, err := startup(ctx, cfg, registry)
	if err != nil {
		cancel()

		return errors.Join(err, g.Wait())
	}

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}.Run(ctx, g, handler)

	probeServer.SetReady()

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func startup(ctx context.Context, cfg config.Config, registry *prometheus.Registry) (http.Handler, error) {
	svc, app, err := NewDashboard(ctx, cfg, registry)
	if err != nil {
		return nil, err
	}

	pageServer, err := server.NewPageServer(app, server.ChartSize{
		Width:  cfg.Dashboard.ChartWidth,
		Height: cfg.Dashboard.ChartHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("server.NewPageServer: %w", err)
	}

	apiServer := server.NewAPIServer(svc, rest.Slider{
		Min:  cfg.Dashboard.SliderMin,
		Max:  cfg.Dashboard.SliderMax,
		Step: cfg.Dashboard.SliderStep,
	})

	return server.NewRouter(server.NewServer(pageServer, apiServer), server.RouterOptions{
		Logging: middlewarex.Logging{
			Masker:      logx.NewSensitiveDataMasker(),
			FieldMaxLen: cfg.Log.FieldMaxLen,
			Bodies:      cfg.HTTP.LogBodies,
		},
		Registerer: registry,
		Namespace:  cfg.Metrics.Namespace,
	}), nil
}

// NewDashboard loads the launch table and builds the dashboard over it.
func NewDashboard(
	ctx context.Context,
	cfg config.Config,
	registerer prometheus.Registerer,
) (*launch.Service, *dashboard.App, error) {
	table, err := loadTable(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("loadTable: %w", err)
	}

	svc := launch.NewService(table)

	app, err := dashboard.NewLaunchApp(svc, dashboard.SliderBounds{
		Min:  cfg.Dashboard.SliderMin,
		Max:  cfg.Dashboard.SliderMax,
		Step: cfg.Dashboard.SliderStep,
	}, registerer, cfg.Metrics.Namespace)
	if err != nil {
		return nil, nil, fmt.Errorf("dashboard.NewLaunchApp: %w", err)
	}

	return svc, app, nil
}

func loadTable(ctx context.Context, cfg config.Config) (entity.Table, error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceHTTP:
		return dataset.Load(ctx, dataset.HTTPSource{
			URL: cfg.Dataset.URL,
			Client: &http.Client{
				Timeout: cfg.Dataset.HTTPTimeout,
				Transport: httpx.NewLoggingRoundTripper(
					http.DefaultTransport,
					httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
					httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
					httpx.WithResponseBody(false),
				),
			},
		})
	case config.DatasetSourcePostgres:
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		// The table is read once; the pool is not needed afterwards.
		defer pg.Close(ctx)

		db, err := pg.Client(ctx)
		if err != nil {
			return entity.Table{}, fmt.Errorf("pg.Client: %w", err)
		}

		return dataset.Load(ctx, persistence.NewLaunchRepository(db))
	default:
		return dataset.Load(ctx, dataset.FileSource{Path: cfg.Dataset.Path})
	}
}
