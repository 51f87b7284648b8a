package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"github.com/percona/percona-dllist/errors"
	"github.com/percona/percona-dllist/list"
)

const metricNamespace = "percona_dllist"

// Counters.
var (
	//nolint:gochecknoglobals
	elementsLoadedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "elements_loaded_total",
		Help:      "Total number of elements loaded into lists.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	elementsWrittenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "elements_written_total",
		Help:      "Total number of elements written out of lists.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operations_total",
		Help:      "Total number of list operations by kind.",
		Namespace: metricNamespace,
	}, []string{"op"})

	//nolint:gochecknoglobals
	operationErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operation_errors_total",
		Help:      "Total number of failed list operations by kind and reason.",
		Namespace: metricNamespace,
	}, []string{"op", "reason"})
)

// Gauges.
var (
	//nolint:gochecknoglobals
	listSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "list_size",
		Help:      "Number of nodes in the most recently built list.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	sortDurationSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "sort_duration_seconds",
		Help:      "Duration of the most recent sort in seconds.",
		Namespace: metricNamespace,
	})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: metricNamespace,
	}))

	reg.MustRegister(
		elementsLoadedTotal,
		elementsWrittenTotal,
		operationsTotal,
		operationErrorsTotal,

		listSize,
		sortDurationSeconds,
	)
}

// AddElementsLoaded increments the total number of loaded elements.
func AddElementsLoaded(v int) {
	elementsLoadedTotal.Add(float64(v))
}

// AddElementsWritten increments the total number of written elements.
func AddElementsWritten(v int) {
	elementsWrittenTotal.Add(float64(v))
}

// AddOperations increments the operation counter for op.
func AddOperations(op string, v int) {
	operationsTotal.WithLabelValues(op).Add(float64(v))
}

// AddOperationError increments the error counter for op, labeled by the kind of err.
func AddOperationError(op string, err error) {
	operationErrorsTotal.WithLabelValues(op, ErrorReason(err)).Inc()
}

// SetListSize sets the list size gauge.
func SetListSize(v int) {
	listSize.Set(float64(v))
}

// SetSortDuration sets the sort duration gauge.
func SetSortDuration(dur time.Duration) {
	sortDurationSeconds.Set(dur.Seconds())
}

// ErrorReason maps a list error to a metric label.
func ErrorReason(err error) string {
	switch {
	case errors.Is(err, list.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, list.ErrAllocation):
		return "allocation"
	case errors.Is(err, list.ErrUndefinedCapability):
		return "undefined_capability"
	default:
		return "other"
	}
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather")
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "write %s", mf.GetName())
		}
	}

	return nil
}
