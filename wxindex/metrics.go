package wxindex

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for batch calculations.
type Metrics struct {
	Records       *prometheus.CounterVec   // labels: quantity={vpd,wbgt,rh,rhx,rhave}
	NonFinite     *prometheus.CounterVec   // labels: quantity
	BatchDuration *prometheus.HistogramVec // labels: quantity
}

// NewMetrics creates the batch metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.Records, m.NonFinite, m.BatchDuration)
	return m
}

// NewMetricsForTesting creates Metrics on a fresh registry so tests can build
// as many as they like.
func NewMetricsForTesting() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewMetrics(reg), reg
}

func newMetrics() *Metrics {
	return &Metrics{
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wxindex",
			Name:      "records_total",
			Help:      "Values produced by batch calculations.",
		}, []string{"quantity"}),
		NonFinite: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wxindex",
			Name:      "nonfinite_total",
			Help:      "Produced values that are NaN or infinite.",
		}, []string{"quantity"}),
		BatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wxindex",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a batch calculation.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		}, []string{"quantity"}),
	}
}

// observe is safe on a nil receiver, which is the default when no metrics
// were supplied.
func (m *Metrics) observe(quantity string, out []float64, start time.Time) {
	if m == nil {
		return
	}
	nonFinite := 0
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			nonFinite++
		}
	}
	m.Records.WithLabelValues(quantity).Add(float64(len(out)))
	m.NonFinite.WithLabelValues(quantity).Add(float64(nonFinite))
	m.BatchDuration.WithLabelValues(quantity).Observe(time.Since(start).Seconds())
}
