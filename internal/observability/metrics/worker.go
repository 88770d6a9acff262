package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	processTotal    *prometheus.CounterVec
	processDuration *prometheus.HistogramVec
	processInFlight prometheus.Gauge
	queueLag        prometheus.Histogram
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	processTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docuscan",
			Subsystem: "worker",
			Name:      "documents_processed_total",
			Help:      "Total documents processed by the worker.",
		},
		[]string{"service", "status", "document_type"},
	)
	processDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docuscan",
			Subsystem: "worker",
			Name:      "document_process_duration_seconds",
			Help:      "Per-document processing duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"service", "status"},
	)
	processInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docuscan",
			Subsystem: "worker",
			Name:      "documents_in_flight",
			Help:      "Number of documents currently being processed.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docuscan",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Time between document upload and start of processing.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	registry.MustRegister(processTotal, processDuration, processInFlight, queueLag)

	return &WorkerMetrics{
		registry:        registry,
		processTotal:    processTotal,
		processDuration: processDuration,
		processInFlight: processInFlight,
		queueLag:        queueLag,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartDocument() func(service, status, documentType string) {
	start := time.Now()
	m.processInFlight.Inc()

	return func(service, status, documentType string) {
		m.processInFlight.Dec()
		if documentType == "" {
			documentType = "unknown"
		}
		m.processTotal.WithLabelValues(service, status, documentType).Inc()
		m.processDuration.WithLabelValues(service, status).Observe(time.Since(start).Seconds())
	}
}

func (m *WorkerMetrics) ObserveQueueLag(uploadedAt time.Time) {
	if uploadedAt.IsZero() {
		return
	}
	lag := time.Since(uploadedAt)
	if lag < 0 {
		lag = 0
	}
	m.queueLag.Observe(lag.Seconds())
}
