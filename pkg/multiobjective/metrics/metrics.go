// Package metrics exports run statistics of the evolutionary loop as
// Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mihai-snyk/ibea/pkg/multiobjective/algorithms"
)

const namespace = "ibea"

// Recorder holds the run metrics and implements algorithms.Observer.
type Recorder struct {
	Generations       prometheus.Counter
	Evaluations       prometheus.Gauge
	ArchiveSize       prometheus.Gauge
	UnionSize         prometheus.Gauge
	MaxIndicatorValue prometheus.Gauge
	GenerationSeconds prometheus.Histogram
}

var _ algorithms.Observer = &Recorder{}

// NewRecorder creates the metrics and registers them with reg. The problem
// name is attached as a constant label.
func NewRecorder(reg prometheus.Registerer, problem string) (*Recorder, error) {
	labels := prometheus.Labels{"problem": problem}
	r := &Recorder{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "generations_total",
			Help:        "Total number of completed generations",
			ConstLabels: labels,
		}),
		Evaluations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "evaluations",
			Help:        "Number of objective evaluations spent so far",
			ConstLabels: labels,
		}),
		ArchiveSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "archive_size",
			Help:        "Size of the archive after truncation",
			ConstLabels: labels,
		}),
		UnionSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "union_size",
			Help:        "Size of the population and archive union before truncation",
			ConstLabels: labels,
		}),
		MaxIndicatorValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "max_indicator_value",
			Help:        "Largest absolute indicator value of the last generation",
			ConstLabels: labels,
		}),
		GenerationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "generation_duration_seconds",
			Help:        "Wall time of one generation in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{
		r.Generations, r.Evaluations, r.ArchiveSize, r.UnionSize, r.MaxIndicatorValue, r.GenerationSeconds,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveGeneration implements algorithms.Observer.
func (r *Recorder) ObserveGeneration(s algorithms.GenerationStats) {
	r.Generations.Inc()
	r.Evaluations.Set(float64(s.Evaluations))
	r.ArchiveSize.Set(float64(s.ArchiveSize))
	r.UnionSize.Set(float64(s.UnionSize))
	r.MaxIndicatorValue.Set(s.MaxIndicatorValue)
	r.GenerationSeconds.Observe(s.Duration.Seconds())
}
