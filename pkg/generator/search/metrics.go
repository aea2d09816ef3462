package search

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Metrics exports search counters to Prometheus. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	attempts *prometheus.CounterVec
	sessions *prometheus.CounterVec
	active   *prometheus.GaugeVec
}

// NewMetrics creates the search collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vanity",
			Name:      "attempts_total",
			Help:      "Keypairs sampled without a match.",
		}, []string{"network"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vanity",
			Name:      "sessions_total",
			Help:      "Finished searches by outcome.",
		}, []string{"network", "outcome"}),
		active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "vanity",
			Name:      "sessions_active",
			Help:      "Searches currently running.",
		}, []string{"network"}),
	}

	reg.MustRegister(m.attempts, m.sessions, m.active)

	return m
}

func (m *Metrics) addAttempts(network generator.Network, n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.attempts.WithLabelValues(network.String()).Add(float64(n))
}

func (m *Metrics) sessionStarted(network generator.Network) {
	if m == nil {
		return
	}
	m.active.WithLabelValues(network.String()).Inc()
}

func (m *Metrics) sessionFinished(network generator.Network, status Status) {
	if m == nil {
		return
	}
	m.active.WithLabelValues(network.String()).Dec()
	m.sessions.WithLabelValues(network.String(), status.String()).Inc()
}
