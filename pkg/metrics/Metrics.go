package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NAMESPACE prefixes every series, a name of "deploys_total" is exported as
// deployer_deploys_total.
const NAMESPACE = "deployer"

// DeployBuckets cover a start from a cached image up to a slow pull.
var DeployBuckets = prometheus.ExponentialBuckets(0.25, 2, 10)

func NewCounter(name string, help string, labels []string) *Counter {
	counter := &Counter{
		metric: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      name,
			Help:      help,
		}, labels),
	}

	counter.metric = register(counter.metric)
	return counter
}

func NewGauge(name string, help string, labels []string) *Gauge {
	gauge := &Gauge{
		metric: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: NAMESPACE,
			Name:      name,
			Help:      help,
		}, labels),
	}

	gauge.metric = register(gauge.metric)
	return gauge
}

// NewHistogram falls back to prometheus.DefBuckets when buckets is empty.
func NewHistogram(name string, help string, buckets []float64, labels []string) *Histogram {
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	histogram := &Histogram{
		metric: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NAMESPACE,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		}, labels),
	}

	histogram.metric = register(histogram.metric)
	return histogram
}

// register returns the collector already registered under the same descriptor
// so two constructors for one series share their values.
func register[T prometheus.Collector](collector T) T {
	err := prometheus.Register(collector)

	if err != nil {
		var registered prometheus.AlreadyRegisteredError

		if errors.As(err, &registered) {
			if existing, ok := registered.ExistingCollector.(T); ok {
				return existing
			}
		}

		panic(err)
	}

	return collector
}
