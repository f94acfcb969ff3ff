// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

// Command server runs the Avesmap backend: a small HTTP service that
// proxies the browser's eBird API requests, moving the credential out of
// the URL and into the header the upstream expects.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avesmap/avesmap/internal/api"
	"github.com/avesmap/avesmap/internal/config"
	"github.com/avesmap/avesmap/internal/logging"
	"github.com/avesmap/avesmap/internal/supervisor"
	"github.com/avesmap/avesmap/internal/supervisor/services"
	"github.com/avesmap/avesmap/internal/upstream"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("upstream", cfg.EBird.BaseURL).
		Bool("circuit_breaker", cfg.EBird.CircuitBreaker).
		Msg("Starting avesmap server")

	var forwarder upstream.Forwarder = upstream.NewClient(cfg.EBird.BaseURL, cfg.EBird.Timeout)
	if cfg.EBird.CircuitBreaker {
		forwarder = upstream.NewCircuitBreakerClient(forwarder)
	}

	handler := api.NewHandler(forwarder, version)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	tree.Add(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor exited with error")
		os.Exit(1)
	}

	if report, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop before timeout")
		}
	}

	logging.Info().Msg("Server stopped")
}
