// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instruments for the HTTP API: request
// counts and latencies per route, authentication outcomes and login results.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth outcomes recorded by [Recorder.ObserveAuth].
const (
	AuthAuthenticated     = "authenticated"
	AuthNoToken           = "no_token"
	AuthInvalidToken      = "invalid_token"
	AuthPrincipalNotFound = "principal_not_found"
	AuthPrincipalDisabled = "principal_disabled"
	AuthForbidden         = "forbidden"
	AuthError             = "error"
)

// Login results recorded by [Recorder.ObserveLogin].
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginInactive           = "inactive"
	LoginError              = "error"
)

// UnmatchedRoute labels requests no route pattern matched.
const UnmatchedRoute = "unmatched"

type config struct {
	namespace string
	buckets   []float64
	registry  prometheus.Registerer
	gatherer  prometheus.Gatherer
}

// Option configures a [Recorder].
type Option func(*config)

// WithNamespace sets the metric name prefix. Default "gatherly".
func WithNamespace(namespace string) Option {
	return func(c *config) {
		c.namespace = namespace
	}
}

// WithBuckets sets the latency histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *config) {
		c.buckets = buckets
	}
}

// WithRegistry registers the instruments on registry and serves them from it
// instead of the process-wide default registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = registry
		c.gatherer = registry
	}
}

// Recorder owns the API's Prometheus instruments.
type Recorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	auth     *prometheus.CounterVec
	logins   *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// New registers the instruments and returns a Recorder. Registering twice on
// the same registry panics.
func New(opts ...Option) *Recorder {
	cfg := config{
		namespace: "gatherly",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
		gatherer:  prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.registry)

	return &Recorder{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds by method and route pattern.",
			Buckets:   cfg.buckets,
		}, []string{"method", "route"}),

		auth: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Subsystem: "auth",
			Name:      "outcomes_total",
			Help:      "Bearer authentication and authorization outcomes.",
		}, []string{"outcome"}),

		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),

		gatherer: cfg.gatherer,
	}
}

// ObserveRequest records one served request. route is the registered
// pattern, never the raw path.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveAuth(outcome string) {
	r.auth.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveLogin(result string) {
	r.logins.WithLabelValues(result).Inc()
}

// Handler serves the gathered metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
