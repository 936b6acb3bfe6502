package pyprof

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LinearMetrics counts the records parsed by ParseLinear,
// see UseMetrics.
type LinearMetrics struct {
	records *prometheus.CounterVec
	errors  *prometheus.CounterVec
}

// NewLinearMetrics creates LinearMetrics registered to the given registerer,
// a nil registerer leaves them unregistered.
//
// Registering twice to the same registerer panics.
func NewLinearMetrics(reg prometheus.Registerer) *LinearMetrics {
	f := promauto.With(reg)
	return &LinearMetrics{
		records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pyprof_linear_records_total",
			Help: "Total number of linear layer records parsed, by kernel role",
		}, []string{"op"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pyprof_linear_errors_total",
			Help: "Total number of linear layer records rejected, by reason",
		}, []string{"reason"}),
	}
}

// errorReason returns the metric label of the given error.
func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrMarkerFormat):
		return "marker_format"
	case errors.Is(err, ErrShapeMismatch):
		return "shape_mismatch"
	case errors.Is(err, ErrUnknownKernel):
		return "unknown_kernel"
	default:
		return "other"
	}
}

func (lm *LinearMetrics) observe(l *Linear, err error) {
	if err != nil {
		lm.errors.WithLabelValues(errorReason(err)).Inc()
		return
	}
	lm.records.WithLabelValues(string(l.op)).Inc()
}
