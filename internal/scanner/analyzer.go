package scanner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cedula/internal/mrz"
	"cedula/internal/scanner/metrics"
	"cedula/pkg/requestcontext"
)

// TextractAnalyzer uploads card images to object storage, runs identity
// analysis on them and parses the MRZ found in the result.
type TextractAnalyzer struct {
	store    ObjectStore
	textract TextractClient
	service  *Service
	bucket   string
	newKey   func() string

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	timeout time.Duration
}

// NewTextractAnalyzer wires an analyzer. All collaborators and the bucket
// are required.
func NewTextractAnalyzer(store ObjectStore, client TextractClient, service *Service, bucket string, opts ...Option) (*TextractAnalyzer, error) {
	if store == nil {
		return nil, errors.New("object store is required")
	}
	if client == nil {
		return nil, errors.New("textract client is required")
	}
	if service == nil {
		return nil, errors.New("parse service is required")
	}
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}
	o := buildOptions(opts)
	return &TextractAnalyzer{
		store:    store,
		textract: client,
		service:  service,
		bucket:   bucket,
		newKey:   uuid.NewString,
		logger:   o.logger,
		metrics:  o.metrics,
		tracer:   o.tracer,
		timeout:  o.timeout,
	}, nil
}

// Analyze runs the upload, analyze, extract and parse stages in order. Stage
// failures are returned as *AnalysisError; MRZ rejections come back from the
// parse service unchanged.
func (a *TextractAnalyzer) Analyze(ctx context.Context, image []byte) (mrz.Document, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	ctx, span := a.tracer.Start(ctx, "scanner.analyze", trace.WithAttributes(
		attribute.Int("image.bytes", len(image)),
	))
	defer span.End()

	doc, err := a.analyze(ctx, image)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var ae *AnalysisError
		if errors.As(err, &ae) {
			a.metrics.IncAnalysisFailure(string(ae.Category))
			a.logger.WarnContext(ctx, "document analysis failed",
				"request_id", requestcontext.RequestID(ctx),
				"stage", ae.Stage,
				"category", ae.Category,
				"retryable", ae.Retryable,
				"error", err,
			)
		}
		return mrz.Document{}, err
	}
	return doc, nil
}

func (a *TextractAnalyzer) analyze(ctx context.Context, image []byte) (mrz.Document, error) {
	key := a.newKey()

	err := a.stage(ctx, StageUpload, func(ctx context.Context) error {
		return a.store.PutObject(ctx, a.bucket, key, image)
	})
	if err != nil {
		return mrz.Document{}, NewAnalysisError(classify(err), StageUpload, "failed to store image", err)
	}

	var resp *AnalyzeIDResponse
	err = a.stage(ctx, StageAnalyze, func(ctx context.Context) error {
		var err error
		resp, err = a.textract.AnalyzeID(ctx, a.bucket, key)
		return err
	})
	if err != nil {
		return mrz.Document{}, NewAnalysisError(classify(err), StageAnalyze, "identity analysis failed", err)
	}

	ext, err := ExtractMRZText(resp)
	if err != nil {
		return mrz.Document{}, err
	}
	a.logger.DebugContext(ctx, "mrz located",
		"request_id", requestcontext.RequestID(ctx),
		"object_key", key,
		"hint_score", ext.HintScore,
	)

	var doc mrz.Document
	err = a.stage(ctx, StageParse, func(ctx context.Context) error {
		var err error
		doc, err = a.service.ParseText(ctx, ext.Text())
		return err
	})
	return doc, err
}

// stage runs fn inside a child span and records its duration.
func (a *TextractAnalyzer) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, "scanner."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	a.metrics.ObserveStage(name, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
