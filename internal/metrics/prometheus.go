// Package metrics records Prometheus metrics for calls made to the remote book API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder observes upstream API calls.
type Recorder interface {
	ObserveRequest(family, method string, status int, duration time.Duration)
}

// PrometheusRecorder implements Recorder on its own registry so that several
// instances can coexist in one process.
type PrometheusRecorder struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder with a fresh registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookmanager_api_requests_total",
				Help: "Total number of remote API requests by resource family, method and status",
			},
			[]string{"family", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookmanager_api_request_duration_seconds",
				Help:    "Duration of remote API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"family", "method"},
		),
	}
}

// ObserveRequest records a completed call. A zero status marks a transport failure.
func (p *PrometheusRecorder) ObserveRequest(family, method string, status int, duration time.Duration) {
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	p.requestsTotal.WithLabelValues(family, method, label).Inc()
	p.requestDuration.WithLabelValues(family, method).Observe(duration.Seconds())
}

// Handler exposes the recorder's registry in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Nop discards observations.
type Nop struct{}

func (Nop) ObserveRequest(string, string, int, time.Duration) {}
