package collector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "loveuad_admin",
			Name:      "collector_runs_total",
			Help:      "Collector runs by outcome.",
		},
		[]string{"collector", "outcome"},
	)

	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "loveuad_admin",
			Name:      "collector_duration_seconds",
			Help:      "Time spent in each collector.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"collector"},
	)
)

// Register adds the collector instruments to reg. Call once at startup.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{RunsTotal, RunDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func observe(name string, started time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RunsTotal.WithLabelValues(name, outcome).Inc()
	RunDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
}
