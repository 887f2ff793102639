package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounterIncrement(t *testing.T) {
	counter := NewCounter("test_counter_total", "test counter", []string{"outcome"})

	counter.Increment(OUTCOME_SUCCESS)
	counter.Increment(OUTCOME_SUCCESS)
	counter.Increment(OUTCOME_FAILURE)

	assert.Equal(t, float64(2), testutil.ToFloat64(counter.Get().WithLabelValues(OUTCOME_SUCCESS)))
	assert.Equal(t, float64(1), testutil.ToFloat64(counter.Get().WithLabelValues(OUTCOME_FAILURE)))
	assert.Contains(t, counter.Get().WithLabelValues(OUTCOME_SUCCESS).Desc().String(), `"deployer_test_counter_total"`)
}

func TestGaugeAdd(t *testing.T) {
	gauge := NewGauge("test_gauge", "test gauge", []string{})

	gauge.Add(3)
	gauge.Add(-1)

	assert.Equal(t, float64(2), testutil.ToFloat64(gauge.Get().WithLabelValues()))
}

func TestHistogramBuckets(t *testing.T) {
	histogram := NewHistogram("test_duration_seconds", "test histogram", DeployBuckets, []string{"outcome"})
	histogram.Observe(1.5, OUTCOME_SUCCESS)

	assert.Equal(t, 1, testutil.CollectAndCount(histogram.Get()))

	defaults := NewHistogram("test_default_seconds", "test histogram", nil, []string{})
	defaults.Observe(0.1)

	assert.Equal(t, 1, testutil.CollectAndCount(defaults.Get()))
	assert.Equal(t, 10, len(DeployBuckets))
	assert.NotEqual(t, prometheus.DefBuckets, DeployBuckets)
}

func TestRegisterTwiceSharesSeries(t *testing.T) {
	var first, second *Counter

	assert.NotPanics(t, func() {
		first = NewCounter("test_twice_total", "test counter", []string{})
		second = NewCounter("test_twice_total", "test counter", []string{})
	})

	first.Increment()
	second.Increment()

	assert.Equal(t, float64(2), testutil.ToFloat64(first.Get().WithLabelValues()))
	assert.Same(t, first.Get(), second.Get())
}
