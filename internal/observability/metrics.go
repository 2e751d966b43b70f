package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resolution method labels for the intent_resolutions_total counter.
const (
	ResolutionCarryOver = "carry_over"
	ResolutionCache     = "cache"
	ResolutionSemantic  = "semantic"
	ResolutionKeyword   = "keyword"
	ResolutionFallback  = "fallback"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	Inquiries          *prometheus.CounterVec
	IntentResolutions  *prometheus.CounterVec
	RateLimited        prometheus.Counter
	UpstreamFailures   *prometheus.CounterVec
	ProcessingDuration prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Inquiries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inquiries_total",
			Help:      "Processed inquiries by resolved intent and outcome.",
		}, []string{"intent", "outcome"}),
		IntentResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intent_resolutions_total",
			Help:      "Intent resolutions by method (carry-over, cache, semantic, keyword, fallback).",
		}, []string{"method"}),
		RateLimited: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-user rate limiter.",
		}),
		UpstreamFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_failures_total",
			Help:      "External collaborator failures by service.",
		}, []string{"service"}),
		ProcessingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inquiry_processing_ms",
			Help:      "End-to-end inquiry processing time in milliseconds.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2000, 4000, 8000},
		}),
	}
}

func (m *Metrics) ObserveProcessing(d time.Duration) {
	if m == nil {
		return
	}
	m.ProcessingDuration.Observe(float64(d.Milliseconds()))
}

// CountInquiry is nil-safe so tests can run without a registry.
func (m *Metrics) CountInquiry(intent, outcome string) {
	if m == nil {
		return
	}
	m.Inquiries.WithLabelValues(intent, outcome).Inc()
}

// CountIntentResolution records which path classified a message.
func (m *Metrics) CountIntentResolution(method string) {
	if m == nil {
		return
	}
	m.IntentResolutions.WithLabelValues(method).Inc()
}

func (m *Metrics) CountRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

func (m *Metrics) CountUpstreamFailure(service string) {
	if m == nil {
		return
	}
	m.UpstreamFailures.WithLabelValues(service).Inc()
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
