package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported on /metrics
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// HTTP metrics, labelled by route template
var (
	HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Domain counters
var (
	LeadsCreatedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "leads_created_total",
		Help: "Leads created, by source.",
	}, []string{"source"})

	RegistrationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "registrations_total",
		Help: "User registrations, by role.",
	}, []string{"role"})

	MarketingCounterIncrementsTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "marketing_counter_increments_total",
		Help: "Marketing counter increment operations.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the Prometheus exposition of Registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
