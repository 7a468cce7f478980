package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements crypto.Recorder and counts gateway requests.
type Metrics struct {
	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
	requests   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edsign_operations_total",
			Help: "Number of completed signing service operations",
		}, []string{"operation", "result"}),

		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edsign_validation_failures_total",
			Help: "Number of operations rejected because of malformed input",
		}, []string{"operation", "reason"}),

		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edsign_gateway_requests_total",
			Help: "Number of gateway HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}

	if reg != nil {
		reg.MustRegister(m.operations, m.rejections, m.requests)
	}

	return m
}

func (m *Metrics) Operation(operation string, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) Rejection(operation string, reason string) {
	m.rejections.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) Request(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
