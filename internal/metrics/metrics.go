// Package metrics exposes the progression counters scraped from /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

const namespace = "learnquest"

// Metrics holds the registered collectors. The zero value is not usable;
// construct with New.
type Metrics struct {
	registry *prometheus.Registry

	xpGranted          *prometheus.CounterVec
	activitiesRecorded *prometheus.CounterVec
	checkIns           *prometheus.CounterVec
	badgesAwarded      prometheus.Counter
	xpDuplicates       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	httpPanics         prometheus.Counter
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		xpGranted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "xp_granted_total",
			Help:      "XP credited to users.",
		}, []string{"activity_type"}),
		activitiesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activities_recorded_total",
			Help:      "Activity rows appended to the ledger.",
		}, []string{"activity_type"}),
		checkIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Daily check-in attempts by outcome.",
		}, []string{"outcome"}),
		badgesAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badges_awarded_total",
			Help:      "Badges newly granted.",
		}),
		xpDuplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "xp_duplicates_total",
			Help:      "AddXP deliveries recognised as duplicates.",
		}, []string{"match"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		}, []string{"method"}),
		httpPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_total",
			Help:      "Handler panics recovered by the HTTP middleware.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.xpGranted,
		m.activitiesRecorded,
		m.checkIns,
		m.badgesAwarded,
		m.xpDuplicates,
		m.httpRequests,
		m.httpDuration,
		m.httpPanics,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ActivityRecorded(kind domain.ActivityType, xp int) {
	m.activitiesRecorded.WithLabelValues(kind.String()).Inc()
	if xp > 0 {
		m.xpGranted.WithLabelValues(kind.String()).Add(float64(xp))
	}
}

func (m *Metrics) DuplicateXP(match string) {
	m.xpDuplicates.WithLabelValues(match).Inc()
}

func (m *Metrics) CheckIn(outcome domain.CheckInOutcome) {
	m.checkIns.WithLabelValues(outcome.String()).Inc()
}

func (m *Metrics) BadgesAwarded(n int) {
	if n > 0 {
		m.badgesAwarded.Add(float64(n))
	}
}

func (m *Metrics) HTTPRequest(method string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(seconds)
}

func (m *Metrics) HTTPPanic() {
	m.httpPanics.Inc()
}

// Nop discards every observation. Used by commands and tests that do not
// expose /metrics.
type Nop struct{}

func (Nop) ActivityRecorded(domain.ActivityType, int) {}
func (Nop) DuplicateXP(string)                        {}
func (Nop) CheckIn(domain.CheckInOutcome)             {}
func (Nop) BadgesAwarded(int)                         {}
func (Nop) HTTPRequest(string, int, float64)          {}
func (Nop) HTTPPanic()                                {}
