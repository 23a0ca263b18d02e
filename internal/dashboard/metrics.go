package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type callbackMetrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

func newCallbackMetrics(registerer prometheus.Registerer, namespace string) *callbackMetrics {
	m := &callbackMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "callback_duration_seconds",
			Help:      "Time spent computing a figure, by output.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"output"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "callback_errors_total",
			Help:      "Failed figure computations, by output.",
		}, []string{"output"}),
	}

	registerer.MustRegister(m.duration, m.errors)

	return m
}

func (m *callbackMetrics) observe(output string, elapsed time.Duration, err error) {
	m.duration.WithLabelValues(output).Observe(elapsed.Seconds())

	if err != nil {
		m.errors.WithLabelValues(output).Inc()
	}
}
