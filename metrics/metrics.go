// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "clarity"

	OutcomeSuccess   = "success"
	OutcomeMalformed = "malformed"
	OutcomeTransport = "transport"
)

// Metrics exposes Prometheus collectors that report quiz activity.
type Metrics struct {
	sessionsCreated  prometheus.Counter
	quizzesStarted   *prometheus.CounterVec
	quizzesCompleted *prometheus.CounterVec
	insightRequests  *prometheus.CounterVec
	insightDuration  prometheus.Histogram
	restarts         prometheus.Counter
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Tests should pass a fresh prometheus.NewRegistry(). A nil registerer falls
// back to the default one. Registration errors other than duplicates panic.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "created_total",
			Help:      "Number of quiz sessions created.",
		}),
		quizzesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "started_total",
			Help:      "Number of quizzes started, by question count.",
		}, []string{"question_count"}),
		quizzesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "completed_total",
			Help:      "Number of quizzes answered to the end, by personality code.",
		}, []string{"code"}),
		insightRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "insights",
			Name:      "requests_total",
			Help:      "Insight generation requests, by outcome.",
		}, []string{"outcome"}),
		insightDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "insights",
			Name:      "request_duration_seconds",
			Help:      "Time spent waiting for the insight generator.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "restarts_total",
			Help:      "Number of sessions restarted by the user.",
		}),
	}

	m.sessionsCreated = register(reg, m.sessionsCreated)
	m.quizzesStarted = register(reg, m.quizzesStarted)
	m.quizzesCompleted = register(reg, m.quizzesCompleted)
	m.insightRequests = register(reg, m.insightRequests)
	m.insightDuration = register(reg, m.insightDuration)
	m.restarts = register(reg, m.restarts)
	return m
}

// register adds c to reg, reusing an existing collector of the same shape
// when one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// IncSessionsCreated counts a new session.
func (m *Metrics) IncSessionsCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}

// IncQuizStarted counts a quiz started with n questions.
func (m *Metrics) IncQuizStarted(n int) {
	if m == nil {
		return
	}
	m.quizzesStarted.WithLabelValues(strconv.Itoa(n)).Inc()
}

// IncQuizCompleted counts a fully answered quiz that scored as code.
func (m *Metrics) IncQuizCompleted(code string) {
	if m == nil {
		return
	}
	m.quizzesCompleted.WithLabelValues(code).Inc()
}

// ObserveInsightRequest records the outcome and latency of one insight fetch.
func (m *Metrics) ObserveInsightRequest(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.insightRequests.WithLabelValues(outcome).Inc()
	m.insightDuration.Observe(d.Seconds())
}

// IncRestarts counts a user-initiated restart.
func (m *Metrics) IncRestarts() {
	if m == nil {
		return
	}
	m.restarts.Inc()
}
