package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cedula/internal/mrz"
	"cedula/internal/platform/config"
	platformmetrics "cedula/internal/platform/metrics"
	"cedula/internal/scanner"
	"cedula/internal/scanner/handler"
	scannermetrics "cedula/internal/scanner/metrics"
	"cedula/pkg/platform/circuit"
	"cedula/pkg/platform/httputil"
	"cedula/pkg/platform/middleware/metadata"
	"cedula/pkg/platform/middleware/requestid"
	"cedula/pkg/platform/middleware/requesttime"
)

type dependencies struct {
	cfg      config.Server
	logger   *slog.Logger
	parser   *mrz.Parser
	registry prometheus.Registerer
	gatherer prometheus.Gatherer

	// Both nil when image analysis is disabled.
	textract scanner.TextractClient
	store    scanner.ObjectStore
}

func newRouter(d dependencies) (http.Handler, error) {
	httpMetrics := platformmetrics.New(d.registry)
	scanMetrics := scannermetrics.New(d.registry)

	svc, err := scanner.NewService(d.parser,
		scanner.WithLogger(d.logger),
		scanner.WithMetrics(scanMetrics),
	)
	if err != nil {
		return nil, err
	}

	var analyzer scanner.DocumentAnalyzer
	if d.textract != nil && d.store != nil {
		textract := scanner.WithBreaker(d.textract, circuit.New("textract"))
		analyzer, err = scanner.NewTextractAnalyzer(d.store, textract, svc, d.cfg.AWS.Bucket,
			scanner.WithLogger(d.logger),
			scanner.WithMetrics(scanMetrics),
			scanner.WithTimeout(d.cfg.AWS.AnalyzeTimeout),
		)
		if err != nil {
			return nil, err
		}
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(httpMetrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))

	handler.New(svc, analyzer, d.logger, d.cfg.MaxUploadBytes).Register(r)
	return r, nil
}
