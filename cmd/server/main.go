package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"cedula/internal/mrz"
	"cedula/internal/platform/config"
	"cedula/internal/platform/httpserver"
	"cedula/internal/platform/logger"
	"cedula/internal/scanner"
	"cedula/internal/scanner/awsclient"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Parsing logic lives in internal/mrz.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cedula: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parserOpts, err := scanner.ParserOptions(cfg.StrictLocality, cfg.LocalitiesFile)
	if err != nil {
		return err
	}

	deps := dependencies{
		cfg:      cfg,
		logger:   log,
		parser:   mrz.NewParser(parserOpts...),
		registry: prometheus.DefaultRegisterer,
		gatherer: prometheus.DefaultGatherer,
	}
	if cfg.AWS.AnalysisEnabled() {
		clients, err := awsclient.New(ctx, cfg.AWS.Region)
		if err != nil {
			return err
		}
		deps.textract = clients.Textract
		deps.store = clients.Store
	} else {
		log.Warn("AWS bucket not configured, image analysis disabled")
	}

	router, err := newRouter(deps)
	if err != nil {
		return err
	}
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting cedula", "addr", cfg.Addr, "analysis_enabled", cfg.AWS.AnalysisEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		return err
	}
	return nil
}
