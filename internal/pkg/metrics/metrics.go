package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auction"

// Recorder holds the sync engine metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	resyncTotal    *prometheus.CounterVec
	resyncDuration prometheus.Histogram
	snapshotAsOf   prometheus.Gauge
	historySize    prometheus.Gauge
	lastSuccess    prometheus.Gauge
	actionsTotal   *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		resyncTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "resync_total",
			Help:      "Snapshot rebuilds by result (ok, partial_read, unavailable, stale).",
		}, []string{"result"}),
		resyncDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "resync_duration_seconds",
			Help:      "Time spent reading one snapshot from the ledger.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
		snapshotAsOf: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "snapshot_as_of",
			Help:      "Logical tick of the published snapshot.",
		}),
		historySize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "history_size",
			Help:      "Number of finished auctions in the published snapshot.",
		}),
		lastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "last_success_unix",
			Help:      "Unix time of the last published snapshot.",
		}),
		actionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "actions",
			Name:      "total",
			Help:      "Performed actions by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
}

func (r *Recorder) ObserveResync(result string, took time.Duration) {
	if r == nil {
		return
	}
	r.resyncTotal.WithLabelValues(result).Inc()
	r.resyncDuration.Observe(took.Seconds())
}

func (r *Recorder) SnapshotPublished(asOf uint64, historySize int, at time.Time) {
	if r == nil {
		return
	}
	r.snapshotAsOf.Set(float64(asOf))
	r.historySize.Set(float64(historySize))
	r.lastSuccess.Set(float64(at.Unix()))
}

func (r *Recorder) ObserveAction(kind, outcome string) {
	if r == nil {
		return
	}
	r.actionsTotal.WithLabelValues(kind, outcome).Inc()
}
