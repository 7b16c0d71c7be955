// Package metrics records generation, extraction and HTTP counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Extraction results.
const (
	ResultSuccess = "success"
	ResultSample  = "sample"
	ResultFailed  = "failed"
)

// Recorder receives observability hooks. NoopRecorder is the default.
type Recorder interface {
	ObserveGeneration(language, level string, d time.Duration)
	IncExtraction(result string)
	IncUpstreamRetry()
	IncHTTPRequest(route string, status int)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(string, string, time.Duration) {}
func (NoopRecorder) IncExtraction(string)                            {}
func (NoopRecorder) IncUpstreamRetry()                               {}
func (NoopRecorder) IncHTTPRequest(string, int)                      {}

// PrometheusRecorder implements Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	generations        *prom.CounterVec
	generationDuration prom.Histogram
	extractions        *prom.CounterVec
	upstreamRetries    prom.Counter
	httpRequests       *prom.CounterVec
}

// NewPrometheusRecorder creates the collectors and registers them on reg. A
// nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) (pr *PrometheusRecorder) {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr = &PrometheusRecorder{
		generations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "brand_weaver",
			Name:      "generations_total",
			Help:      "Generated sites by language and aesthetic level",
		}, []string{"language", "level"}),
		generationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "brand_weaver",
			Name:      "generation_duration_seconds",
			Help:      "Time spent rendering one site bundle",
			Buckets:   prom.DefBuckets,
		}),
		extractions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "brand_weaver",
			Name:      "extractions_total",
			Help:      "Profile extractions by result",
		}, []string{"result"}),
		upstreamRetries: prom.NewCounter(prom.CounterOpts{
			Namespace: "brand_weaver",
			Name:      "upstream_retries_total",
			Help:      "Retried requests to the profile data API",
		}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "brand_weaver",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"route", "status"}),
	}

	reg.MustRegister(pr.generations, pr.generationDuration, pr.extractions, pr.upstreamRetries, pr.httpRequests)

	return pr
}

func (p *PrometheusRecorder) ObserveGeneration(language, level string, d time.Duration) {
	if p == nil {
		return
	}
	p.generations.WithLabelValues(language, level).Inc()
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncExtraction(result string) {
	if p == nil {
		return
	}
	p.extractions.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) IncUpstreamRetry() {
	if p == nil {
		return
	}
	p.upstreamRetries.Inc()
}

func (p *PrometheusRecorder) IncHTTPRequest(route string, status int) {
	if p == nil {
		return
	}
	p.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// HTTPHandler serves the metrics gathered by reg.
func HTTPHandler(reg *prom.Registry) (h http.Handler) {
	h = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return h
}
