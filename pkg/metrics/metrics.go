package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK         = "ok"
	OutcomeEmptyInput = "empty_input"
	OutcomeFailed     = "failed"
)

var (
	AdvisorRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_runs_total",
			Help: "Total number of advisor chain runs by outcome",
		},
		[]string{"advisor", "outcome"},
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_completion_duration_seconds",
			Help:    "Duration of a single completion call in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"stage", "status"},
	)
)

// ObserveCompletion matches chain.Observer.
func ObserveCompletion(stage int, took time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CompletionDuration.WithLabelValues(stageLabel(stage), status).Observe(took.Seconds())
}

func stageLabel(stage int) string {
	switch stage {
	case 1:
		return "name"
	case 2:
		return "list"
	default:
		return "unknown"
	}
}
