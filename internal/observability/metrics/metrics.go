package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the contact-form pipeline.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	deliveryLatency  prometheus.Histogram
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vistaroofing",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"status"}),
		deliveryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vistaroofing",
			Subsystem: "contact",
			Name:      "delivery_latency_seconds",
			Help:      "Latency of notification email delivery attempts",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.deliveryLatency)
	return m
}

// ObserveSubmission records one submission outcome: accepted, rejected or
// delivery_failed.
func (m *IntakeMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

// ObserveDeliveryLatency records how long one delivery attempt took.
func (m *IntakeMetrics) ObserveDeliveryLatency(seconds float64) {
	if m == nil {
		return
	}
	m.deliveryLatency.Observe(seconds)
}
