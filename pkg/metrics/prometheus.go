package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	rowsIngested *prometheus.CounterVec
	tablesLoaded *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	queryRuns    prometheus.Counter
	classCount   *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		rowsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintab_rows_ingested_total",
				Help: "Total number of data rows ingested per table",
			},
			[]string{"table"},
		),
		tablesLoaded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintab_tables_loaded_total",
				Help: "Total number of tables loaded per table name",
			},
			[]string{"table"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintab_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		queryRuns: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fintab_query_runs_total",
				Help: "Total number of evaluation runs",
			},
		),
		classCount: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fintab_class_count",
				Help: "Qualifying trade count per asset class from the last run",
			},
			[]string{"class"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintab_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRowsIngested counts data rows stored for a table.
func (r *Recorder) RecordRowsIngested(table string, n int) {
	r.rowsIngested.WithLabelValues(table).Add(float64(n))
}

// RecordTableLoaded counts one finished table load.
func (r *Recorder) RecordTableLoaded(table string) {
	r.tablesLoaded.WithLabelValues(table).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordQueryRun counts one evaluation run.
func (r *Recorder) RecordQueryRun() {
	r.queryRuns.Inc()
}

// RecordClassCount exposes the last per-class result.
func (r *Recorder) RecordClassCount(class string, count int64) {
	r.classCount.WithLabelValues(class).Set(float64(count))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
