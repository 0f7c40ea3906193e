package strvec

import (
	"log/slog"

	"github.com/hupe1980/strvec/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
}

// Option configures a Vector.
//
// Options are inherited by vectors derived from another one (Clone, Sublist).
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &strvec.BasicMetricsCollector{}
//	v, _ := strvec.New(strvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, Inserted: %d\n", stats.GrowCount, stats.InsertCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := strvec.NewJSONLogger(slog.LevelDebug)
//	v, _ := strvec.New(strvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMemoryController reserves every allocation of the vector against rc.
// When rc refuses a reservation the operation returns an error wrapping
// ErrAllocation. A nil controller means allocations always succeed.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v, _ := strvec.New(strvec.WithMemoryController(rc))
func WithMemoryController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
