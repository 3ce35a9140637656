package notifyclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.SummaryVec
}

func registerMetrics(reg *prometheus.Registry, c *notifyClient) {
	c.metrics = &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notify",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "total count of api requests",
		}, []string{"op", "status"}),
		duration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "notify",
			Subsystem: "client",
			Name:      "duration_seconds",
			Objectives: map[float64]float64{
				0.5:  0.5,
				0.85: 0.01,
				0.95: 0.0005,
				0.99: 0.0001,
			},
		}, []string{"op"}),
	}
	reg.MustRegister(c.metrics.requests, c.metrics.duration)
}

func (m *metrics) observe(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if status == "" {
		status = "error"
	}
	m.requests.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(dur.Seconds())
}
