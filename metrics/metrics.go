// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for vote decisions, admin
// transitions and live observers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quickly_vote"

// Metrics owns its registry so several servers (and tests) can coexist in
// one process. A nil *Metrics discards everything.
type Metrics struct {
	registry *prometheus.Registry

	decisions   *prometheus.CounterVec
	transitions *prometheus.CounterVec
	observers   prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vote_decisions_total",
				Help:      "Vote submissions by decision",
			},
			[]string{"decision"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_transitions_total",
				Help:      "Admin lifecycle calls by transition and result",
			},
			[]string{"transition", "result"},
		),
		observers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "live_observers",
				Help:      "Connected live result observers",
			},
		),
	}

	m.registry.MustRegister(m.decisions)
	m.registry.MustRegister(m.transitions)
	m.registry.MustRegister(m.observers)
	m.registry.MustRegister(collectors.NewGoCollector())
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// VoteDecision counts one submission. decision is "accepted", a rejection
// reason, or "error".
func (m *Metrics) VoteDecision(decision string) {
	if m == nil {
		return
	}
	m.decisions.With(prometheus.Labels{"decision": decision}).Inc()
}

// AdminTransition counts one lifecycle call.
func (m *Metrics) AdminTransition(transition, result string) {
	if m == nil {
		return
	}
	m.transitions.With(prometheus.Labels{"transition": transition, "result": result}).Inc()
}

// SetObservers records the live observer count.
func (m *Metrics) SetObservers(n int) {
	if m == nil {
		return
	}
	m.observers.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
