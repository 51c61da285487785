// Package metrics holds the Prometheus collectors exported by the web server.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/palette"
)

const (
	MetricHTTPRequestsTotal   = "contrastx_http_requests_total"
	MetricHTTPRequestDuration = "contrastx_http_request_duration_seconds"
	MetricAnalyses            = "contrastx_analyses_total"
	MetricConversions         = "contrastx_conversions_total"
	MetricParseErrors         = "contrastx_parse_errors_total"
)

// Parse error reasons used as the "reason" label.
const (
	ReasonInvalidHex  = "invalid_hex"
	ReasonUnknownName = "unknown_name"
	ReasonRange       = "out_of_range"
	ReasonTooMany     = "too_many"
	ReasonOther       = "other"
)

// Metrics is safe for concurrent use.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	analyses     *prometheus.CounterVec
	conversions  prometheus.Counter
	parseErrors  *prometheus.CounterVec
}

// NewMetrics builds unregistered collectors; call Register to expose them.
func NewMetrics() *Metrics {
	return &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"method", "path", "status"},
		),
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricAnalyses,
				Help: "Palette analyses computed, by suppress mode",
			},
			[]string{"suppress"},
		),
		conversions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricConversions,
				Help: "RGB to HSV/HSL round-trip conversions served",
			},
		),
		parseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricParseErrors,
				Help: "Rejected colour inputs by reason",
			},
			[]string{"reason"},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	labels := prometheus.Labels{"method": method, "path": path, "status": status}
	m.httpRequests.With(labels).Inc()
	m.httpDuration.With(labels).Observe(seconds)
}

func (m *Metrics) IncAnalyses(suppress bool) {
	label := "false"
	if suppress {
		label = "true"
	}
	m.analyses.WithLabelValues(label).Inc()
}

func (m *Metrics) IncConversions() {
	m.conversions.Inc()
}

// IncParseErrors counts every leaf of a joined palette error separately.
func (m *Metrics) IncParseErrors(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			m.IncParseErrors(e)
		}
		return
	}
	m.parseErrors.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a parse failure onto a bounded label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, colorutil.ErrInvalidHex):
		return ReasonInvalidHex
	case errors.Is(err, colorutil.ErrUnknownColorName):
		return ReasonUnknownName
	case errors.Is(err, colorutil.ErrChannelRange):
		return ReasonRange
	case errors.Is(err, palette.ErrTooManyColours):
		return ReasonTooMany
	}
	return ReasonOther
}

// Collectors returns every collector, mainly for tests.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.httpRequests,
		m.httpDuration,
		m.analyses,
		m.conversions,
		m.parseErrors,
	}
}
