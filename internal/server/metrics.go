package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ukaji3/rvustruct/pkg/rvustruct"
)

// LoadDuration records extraction latency and outcome for a Loader observer.
type LoadDuration struct {
	hist *prometheus.HistogramVec
}

// NewLoadDuration creates and registers the extraction latency histogram.
func NewLoadDuration(registry prometheus.Registerer) *LoadDuration {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rvustruct_extract_duration_seconds",
		Help:    "Time spent extracting the revenue export.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
	registry.MustRegister(hist)
	return &LoadDuration{hist: hist}
}

// Observer returns a LoadObserver feeding the histogram.
func (d *LoadDuration) Observer() rvustruct.LoadObserver {
	return func(_ string, elapsed time.Duration, err error) {
		result := "ok"
		if err != nil {
			result = "error"
		}
		d.hist.WithLabelValues(result).Observe(elapsed.Seconds())
	}
}
