package veclist

import "log/slog"

type options struct {
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a List at construction.
type Option func(*options)

// WithInitialCapacity reserves room for n nodes in the arena.
// It is a performance hint only; the list grows past it as needed.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector for list operations.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &veclist.BasicMetricsCollector{}
//	l := veclist.New[int](veclist.WithMetricsCollector(metrics))
//	// ... use l ...
//	fmt.Println(metrics.Snapshot().Reused)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging of arena growth, slot reuse and
// handle misuse. Pass nil to disable logging.
//
// Example:
//
//	logger := veclist.NewJSONLogger(slog.LevelDebug)
//	l := veclist.New[string](veclist.WithLogger(logger))
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
