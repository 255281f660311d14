package geopattern

import (
	"log/slog"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/hash"
	"github.com/hupe1980/geopattern/siatechf"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	seeds            *hash.Seeds
	precision        int
	maxPoints        int
	memoryLimit      int64
}

// Option configures Discover and Search.
type Option func(*options)

// WithMetricsCollector sets a custom metrics collector.
// Pass nil to disable metrics collection (uses NoopMetricsCollector).
//
// Example:
//
//	metrics := &geopattern.BasicMetricsCollector{}
//	d, _ := geopattern.Discover(score, 1.5, geopattern.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Discoveries: %d, Avg latency: %dns\n", stats.DiscoverCount, stats.DiscoverAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := geopattern.NewJSONLogger(slog.LevelDebug)
//	d, _ := geopattern.Discover(score, 1.5, geopattern.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSeeds sets the hash coefficient provider used for points.
// Defaults to the process-wide hash.Default(); pass a seeded provider for
// reproducible hashing in tests.
func WithSeeds(seeds *hash.Seeds) Option {
	return func(o *options) {
		o.seeds = seeds
	}
}

// WithPrecision sets the number of decimal places onset offsets are rounded to
// before comparison. Defaults to geometry.DefaultPrecision.
func WithPrecision(digits int) Option {
	return func(o *options) {
		o.precision = digits
	}
}

// WithMaxPoints sets the largest number of onsets Discover accepts.
// A value <= 0 disables the limit. Defaults to siatechf.DefaultMaxPoints.
func WithMaxPoints(n int) Option {
	return func(o *options) {
		o.maxPoints = n
	}
}

// WithMemoryLimit bounds the estimated memory of the difference index.
// 0 (the default) means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		precision:        geometry.DefaultPrecision,
		maxPoints:        siatechf.DefaultMaxPoints,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

func (o options) layout() (*geometry.Layout, error) {
	return geometry.NewLayout(geometry.MusicComponents(),
		geometry.WithPrecision(o.precision),
		geometry.WithSeeds(o.seeds),
	)
}
