// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics for the notes server and
// exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "notes_keeper"

//go:generate mockgen -source=metrics.go -destination=../mock/metrics_mock.go -package=mock

// Recorder is the metrics surface used by services and HTTP middlewares.
type Recorder interface {
	RecordResolveOutcome(outcome models.ResolveOutcome)
	RecordAuthFailure(reason string)
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordRateLimited()
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	resolveOutcomes *prometheus.CounterVec
	authFailures    *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	rateLimited     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		resolveOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_resolve_total",
			Help:      "Identity resolutions by outcome (created, linked, existing).",
		}, []string{"outcome"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected bearer tokens by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		c.resolveOutcomes,
		c.authFailures,
		c.httpRequests,
		c.httpDuration,
		c.rateLimited,
	)

	return c
}

// RecordResolveOutcome counts one identity resolution.
func (c *Collector) RecordResolveOutcome(outcome models.ResolveOutcome) {
	c.resolveOutcomes.WithLabelValues(string(outcome)).Inc()
}

// RecordAuthFailure counts one rejected bearer token.
func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest counts one served request and observes its latency.
// route is the matched route pattern, not the raw path.
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRateLimited counts one request rejected with 429.
func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

// Nop returns a Recorder that drops everything.
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) RecordResolveOutcome(models.ResolveOutcome)           {}
func (nopRecorder) RecordAuthFailure(string)                             {}
func (nopRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (nopRecorder) RecordRateLimited()                                   {}
