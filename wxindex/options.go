package wxindex

import "runtime"

// batch calculation settings
type config struct {
	workers   int
	rangeMode RangeMode
	metrics   *Metrics
}

// Option changes how a batch calculation runs.
type Option func(*config)

// WithWorkers sets the number of goroutines a batch calculation may use.
// n <= 1 computes inline on the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithRangeMode selects how the WBGT correction tests the Fahrenheit range.
func WithRangeMode(m RangeMode) Option {
	return func(c *config) {
		c.rangeMode = m
	}
}

// WithMetrics records batch sizes, durations and non-finite outputs in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

func newConfig(opts []Option) config {
	c := config{
		workers:   runtime.GOMAXPROCS(0),
		rangeMode: IntegerRange,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
