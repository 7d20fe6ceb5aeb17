// Package metrics owns the prometheus registry of family-web programs.
package metrics

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "family_web"

type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	treeCache     *prometheus.CounterVec
	messages      *prometheus.CounterVec
	duplicates    *prometheus.CounterVec
	workerEvents  *prometheus.CounterVec
	streamClients prometheus.Gauge
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: namespace}),
		prometheus.NewGoCollector(),
	)

	labels := prometheus.Labels{"service": service}
	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by route, method and status.",
			ConstLabels: labels,
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by route.",
			ConstLabels: labels,
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method"}),
		treeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "tree_cache_lookups_total",
			Help:        "Tree projection lookups by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "chat_messages_appended_total",
			Help:        "Messages appended to channel views by source.",
			ConstLabels: labels,
		}, []string{"source"}),
		duplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "chat_duplicates_suppressed_total",
			Help:        "Messages dropped because their id was already shown.",
			ConstLabels: labels,
		}, []string{"source"}),
		workerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "worker_events_total",
			Help:        "Bus events handled by workers.",
			ConstLabels: labels,
		}, []string{"topic", "result"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "stream_clients",
			Help:        "Open browser channel relays.",
			ConstLabels: labels,
		}),
	}
	registry.MustRegister(m.requests, m.duration, m.treeCache, m.messages, m.duplicates, m.workerEvents, m.streamClients)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware labels requests with the chi route pattern so ids do not blow up
// cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) TreeCacheLookup(hit bool) {
	if hit {
		m.treeCache.WithLabelValues("hit").Inc()
		return
	}
	m.treeCache.WithLabelValues("miss").Inc()
}

func (m *Metrics) MessageAppended(source string) {
	m.messages.WithLabelValues(source).Inc()
}

func (m *Metrics) DuplicateSuppressed(source string) {
	m.duplicates.WithLabelValues(source).Inc()
}

func (m *Metrics) WorkerEvent(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.workerEvents.WithLabelValues(topic, result).Inc()
}

func (m *Metrics) StreamOpened() { m.streamClients.Inc() }

func (m *Metrics) StreamClosed() { m.streamClients.Dec() }

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack keeps websocket upgrades working behind the middleware.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}
