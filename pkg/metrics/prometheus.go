// Package metrics provides Prometheus metrics for the shaft catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Row outcome label values.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Manager manages all Prometheus metrics for the catalog.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Ingestion
	sourcesRead       *prometheus.CounterVec
	rowsNormalized    *prometheus.CounterVec
	rowFailures       *prometheus.CounterVec
	unmappedValues    *prometheus.CounterVec
	duplicatesDropped prometheus.Counter
	ingestDuration    prometheus.Histogram

	// Store
	storeRecords      prometheus.Gauge
	storeLoadDuration prometheus.Histogram
	storeSaveDuration prometheus.Histogram
	storeReloads      *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	errorsByComponent *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "shaftdb",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) histogram(name, help string) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sourcesRead = m.counterVec("sources_read_total",
		"Source files read during ingestion by outcome", "outcome")
	m.rowsNormalized = m.counterVec("rows_normalized_total",
		"Spec-sheet rows processed by the row normalizer by outcome", "outcome")
	m.rowFailures = m.counterVec("row_failures_total",
		"Rejected rows by the field that caused the rejection", "field")
	m.unmappedValues = m.counterVec("normalize_unmapped_values_total",
		"Non-empty optional values that matched no canonical label", "field")
	m.duplicatesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duplicates_dropped_total",
		Help:        "Records dropped because their display name was already seen",
		ConstLabels: m.constLabels,
	})
	m.ingestDuration = m.histogram("ingest_duration_milliseconds",
		"Duration of a full ingestion run in milliseconds")

	m.storeRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_records",
		Help:        "Number of records in the loaded catalog snapshot",
		ConstLabels: m.constLabels,
	})
	m.storeLoadDuration = m.histogram("store_load_duration_milliseconds",
		"Duration of store loads in milliseconds")
	m.storeSaveDuration = m.histogram("store_save_duration_milliseconds",
		"Duration of store saves in milliseconds")
	m.storeReloads = m.counterVec("store_reloads_total",
		"Catalog snapshot reloads by outcome", "outcome")

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = m.counterVec("errors_total",
		"Errors by component and type", "component", "error_type")
}

// RecordSourceRead counts one source file read with the given outcome.
func (m *Manager) RecordSourceRead(outcome string) { m.sourcesRead.WithLabelValues(outcome).Inc() }

// RecordRowNormalized counts one successfully normalized row.
func (m *Manager) RecordRowNormalized() { m.rowsNormalized.WithLabelValues(OutcomeOK).Inc() }

// RecordRowFailure counts one rejected row, labelled by the failing field.
func (m *Manager) RecordRowFailure(field string) {
	m.rowsNormalized.WithLabelValues(OutcomeFailed).Inc()
	m.rowFailures.WithLabelValues(field).Inc()
}

// RecordUnmappedValue counts an optional value that was dropped as unrecognized.
func (m *Manager) RecordUnmappedValue(field string) { m.unmappedValues.WithLabelValues(field).Inc() }

// RecordDuplicates adds n dropped duplicates.
func (m *Manager) RecordDuplicates(n int) { m.duplicatesDropped.Add(float64(n)) }

// RecordIngestDuration observes a full ingestion run.
func (m *Manager) RecordIngestDuration(ms float64) { m.ingestDuration.Observe(ms) }

// UpdateStoreRecords sets the size of the loaded snapshot.
func (m *Manager) UpdateStoreRecords(n int) { m.storeRecords.Set(float64(n)) }

// RecordStoreLoad observes a store load.
func (m *Manager) RecordStoreLoad(ms float64) { m.storeLoadDuration.Observe(ms) }

// RecordStoreSave observes a store save.
func (m *Manager) RecordStoreSave(ms float64) { m.storeSaveDuration.Observe(ms) }

// RecordReload counts a snapshot reload with the given outcome.
func (m *Manager) RecordReload(outcome string) { m.storeReloads.WithLabelValues(outcome).Inc() }

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordError records an error with component and type labels.
func (m *Manager) RecordError(component, errorType string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordSourceRead counts one source file read on the global manager.
func RecordSourceRead(outcome string) { globalManager.RecordSourceRead(outcome) }

// RecordRowNormalized counts a normalized row on the global manager.
func RecordRowNormalized() { globalManager.RecordRowNormalized() }

// RecordRowFailure counts a rejected row on the global manager.
func RecordRowFailure(field string) { globalManager.RecordRowFailure(field) }

// RecordUnmappedValue counts an unrecognized optional value on the global manager.
func RecordUnmappedValue(field string) { globalManager.RecordUnmappedValue(field) }

// RecordDuplicates adds dropped duplicates on the global manager.
func RecordDuplicates(n int) { globalManager.RecordDuplicates(n) }

// RecordIngestDuration observes an ingestion run on the global manager.
func RecordIngestDuration(ms float64) { globalManager.RecordIngestDuration(ms) }

// UpdateStoreRecords sets the snapshot size on the global manager.
func UpdateStoreRecords(n int) { globalManager.UpdateStoreRecords(n) }

// RecordStoreLoad observes a store load on the global manager.
func RecordStoreLoad(ms float64) { globalManager.RecordStoreLoad(ms) }

// RecordStoreSave observes a store save on the global manager.
func RecordStoreSave(ms float64) { globalManager.RecordStoreSave(ms) }

// RecordReload counts a reload on the global manager.
func RecordReload(outcome string) { globalManager.RecordReload(outcome) }

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

// RecordHTTPRequestDuration records HTTP request duration on the global manager.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, ms)
}

// RecordError records an error on the global manager.
func RecordError(component, errorType string) { globalManager.RecordError(component, errorType) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
