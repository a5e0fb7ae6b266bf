package scanner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cedula/internal/mrz"
	"cedula/internal/scanner/metrics"
	dErrors "cedula/pkg/domain-errors"
	"cedula/pkg/requestcontext"
)

// Analysis stages, used as span names, metric labels and AnalysisError.Stage.
const (
	StageUpload  = metrics.StageUpload
	StageAnalyze = metrics.StageAnalyze
	StageExtract = "extract"
	StageParse   = metrics.StageParse
)

const tracerName = "cedula/scanner"

// Service parses MRZ text. The century pivot is taken from the request
// clock so a single request sees a single "now".
type Service struct {
	parser  *mrz.Parser
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service or a TextractAnalyzer.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	timeout time.Duration
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithTimeout bounds a whole analysis. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewService creates a text parsing service.
func NewService(parser *mrz.Parser, opts ...Option) (*Service, error) {
	if parser == nil {
		return nil, errors.New("parser is required")
	}
	o := buildOptions(opts)
	return &Service{
		parser:  parser,
		logger:  o.logger,
		metrics: o.metrics,
		tracer:  o.tracer,
	}, nil
}

// ParseText parses a newline separated MRZ.
func (s *Service) ParseText(ctx context.Context, text string) (mrz.Document, error) {
	return s.parse(ctx, func(p *mrz.Parser) (mrz.Document, error) {
		return p.Parse(text)
	})
}

// ParseLines parses three already separated MRZ lines.
func (s *Service) ParseLines(ctx context.Context, l1, l2, l3 string) (mrz.Document, error) {
	return s.parse(ctx, func(p *mrz.Parser) (mrz.Document, error) {
		return p.ParseLines(l1, l2, l3)
	})
}

func (s *Service) parse(ctx context.Context, fn func(*mrz.Parser) (mrz.Document, error)) (mrz.Document, error) {
	ctx, span := s.tracer.Start(ctx, "mrz.parse")
	defer span.End()

	doc, err := fn(s.parser.At(requestcontext.Now(ctx)))
	s.metrics.ObserveParse(doc, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.InfoContext(ctx, "mrz rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return mrz.Document{}, toDomainError(err)
	}

	span.SetAttributes(
		attribute.Float64("mrz.confidence", doc.Metadata.Confidence),
		attribute.Int("mrz.error_count", len(doc.Fields.Errors)),
	)
	s.logger.DebugContext(ctx, "mrz parsed",
		"request_id", requestcontext.RequestID(ctx),
		"confidence", doc.Metadata.Confidence,
		"error_count", len(doc.Fields.Errors),
	)
	return doc, nil
}

// toDomainError reports hard field errors as unprocessable input.
func toDomainError(err error) error {
	var fe *mrz.FieldError
	if errors.As(err, &fe) {
		return dErrors.Wrap(err, dErrors.CodeUnprocessable, fe.Error())
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to parse MRZ")
}
