package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sherryshare/Naiad/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// It instruments the worker-group event stream: per-kind event counters, the
// subscriber gauge, record throughput totals, and isolated handler panics.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	eventsRaised  *prometheus.CounterVec
	subscribers   prometheus.Gauge
	recordsSent   prometheus.Counter
	recordsRecv   prometheus.Counter
	handlerPanics prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "naiad" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "naiad"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.eventsRaised = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker_group",
			Name:      "events_total",
			Help:      "Total worker lifecycle events raised, by kind.",
		}, []string{"kind"})

		p.subscribers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "worker_group",
			Name:      "subscribers",
			Help:      "Current number of event subscribers.",
		})

		p.recordsSent = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker_group",
			Name:      "records_sent_total",
			Help:      "Total records observed leaving workers.",
		})

		p.recordsRecv = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker_group",
			Name:      "records_received_total",
			Help:      "Total records observed arriving at workers.",
		})

		p.handlerPanics = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker_group",
			Name:      "handler_panics_total",
			Help:      "Total subscriber handler panics isolated by the group.",
		})

		p.reg.MustRegister(
			p.eventsRaised,
			p.subscribers,
			p.recordsSent,
			p.recordsRecv,
			p.handlerPanics,
		)
	})
}

// RecordEventRaised increments the per-kind event counter.
func (p *PrometheusCollector) RecordEventRaised(kind types.EventKind) {
	p.ensureRegistered()
	p.eventsRaised.WithLabelValues(kind.String()).Inc()
}

// SetSubscriberCount sets the subscriber gauge.
func (p *PrometheusCollector) SetSubscriberCount(count int) {
	p.ensureRegistered()
	p.subscribers.Set(float64(count))
}

// RecordRecordsSent adds to the sent-records total.
func (p *PrometheusCollector) RecordRecordsSent(count int64) {
	p.ensureRegistered()
	p.recordsSent.Add(float64(count))
}

// RecordRecordsReceived adds to the received-records total.
func (p *PrometheusCollector) RecordRecordsReceived(count int64) {
	p.ensureRegistered()
	p.recordsRecv.Add(float64(count))
}

// RecordHandlerPanic increments the isolated-panic counter.
func (p *PrometheusCollector) RecordHandlerPanic() {
	p.ensureRegistered()
	p.handlerPanics.Inc()
}
