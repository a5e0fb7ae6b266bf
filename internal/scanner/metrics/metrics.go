// Package metrics exposes Prometheus instruments for MRZ parsing and document
// analysis. Every method is safe to call on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cedula/internal/mrz"
)

// Parse outcomes.
const (
	OutcomeClean      = "clean"
	OutcomeSoftErrors = "soft_errors"
	OutcomeRejected   = "rejected"
)

// Analysis stages.
const (
	StageUpload  = "upload"
	StageAnalyze = "analyze"
	StageParse   = "parse"
)

type Metrics struct {
	ParsesTotal      *prometheus.CounterVec
	Confidence       prometheus.Histogram
	SoftErrorsTotal  *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	AnalysisFailures *prometheus.CounterVec
}

// New creates and registers the scanner metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cedula_mrz_parses_total",
			Help: "MRZ parses by outcome (clean, soft_errors, rejected)",
		}, []string{"outcome"}),

		Confidence: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cedula_mrz_confidence",
			Help:    "Confidence score of parsed documents",
			Buckets: prometheus.LinearBuckets(20, 10, 10),
		}),

		SoftErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cedula_mrz_soft_errors_total",
			Help: "Soft field errors recorded on parsed documents, by kind",
		}, []string{"kind"}),

		AnalysisDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cedula_analysis_duration_seconds",
			Help:    "Duration of each document analysis stage",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),

		AnalysisFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cedula_analysis_failures_total",
			Help: "Failed document analyses by error category",
		}, []string{"category"}),
	}
}

// ObserveParse records the outcome of one parse.
func (m *Metrics) ObserveParse(doc mrz.Document, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ParsesTotal.WithLabelValues(OutcomeRejected).Inc()
		return
	}
	m.Confidence.Observe(doc.Metadata.Confidence)
	if !doc.HasErrors() {
		m.ParsesTotal.WithLabelValues(OutcomeClean).Inc()
		return
	}
	m.ParsesTotal.WithLabelValues(OutcomeSoftErrors).Inc()
	for _, fe := range doc.Fields.Errors {
		m.SoftErrorsTotal.WithLabelValues(string(fe.Kind)).Inc()
	}
}

// ObserveStage records how long an analysis stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.AnalysisDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// IncAnalysisFailure counts a failed analysis.
func (m *Metrics) IncAnalysisFailure(category string) {
	if m == nil {
		return
	}
	m.AnalysisFailures.WithLabelValues(category).Inc()
}
