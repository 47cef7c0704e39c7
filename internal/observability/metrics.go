package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hpungsan/caltrack/internal/tracker"
)

var (
	dispatchCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "caltrack",
		Subsystem: "tracker",
		Name:      "dispatches_total",
		Help:      "Number of actions dispatched to the activity store, by action kind.",
	}, []string{"action"})

	danglingSaveCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "caltrack",
		Subsystem: "tracker",
		Name:      "dangling_saves_total",
		Help:      "Number of saves dispatched while the selected activity no longer existed.",
	})

	activitiesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "caltrack",
		Subsystem: "tracker",
		Name:      "activities",
		Help:      "Number of activities in the current snapshot.",
	})

	caloriesGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "caltrack",
		Subsystem: "tracker",
		Name:      "calories",
		Help:      "Calorie totals of the current snapshot (consumed, burned, net).",
	}, []string{"kind"})

	saveFailureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "caltrack",
		Subsystem: "storage",
		Name:      "save_failures_total",
		Help:      "Number of snapshot writes that failed.",
	})

	lastSavedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "caltrack",
		Subsystem: "storage",
		Name:      "last_saved_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful snapshot write.",
	})
)

func init() {
	prometheus.MustRegister(
		dispatchCounter,
		danglingSaveCounter,
		activitiesGauge,
		caloriesGauge,
		saveFailureCounter,
		lastSavedGauge,
	)
}

// RecordDispatch counts a dispatched action.
func RecordDispatch(kind string) {
	dispatchCounter.WithLabelValues(kind).Inc()
}

// RecordDanglingSave counts a save that targeted a missing activity.
func RecordDanglingSave() {
	danglingSaveCounter.Inc()
}

// RecordSnapshot publishes the size and calorie balance of a snapshot.
func RecordSnapshot(state tracker.State) {
	activitiesGauge.Set(float64(len(state.Activities)))
	totals := tracker.Aggregate(state.Activities)
	caloriesGauge.WithLabelValues("consumed").Set(float64(totals.Consumed))
	caloriesGauge.WithLabelValues("burned").Set(float64(totals.Burned))
	caloriesGauge.WithLabelValues("net").Set(float64(totals.Net))
}

// RecordSaved updates the persistence watermark gauge.
func RecordSaved(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastSavedGauge.Set(float64(ts.Unix()))
}

// RecordSaveFailure counts a failed snapshot write.
func RecordSaveFailure() {
	saveFailureCounter.Inc()
}
