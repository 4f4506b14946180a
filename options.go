package bisect

import "log/slog"

// DefaultProbeBudget is the probe budget applied when none is configured.
// 64 midpoint comparisons cover any addressable slice length, so the
// default never turns a reachable key into a miss.
const DefaultProbeBudget = 64

type options struct {
	probeBudget      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Set construction.
type Option func(*options)

// WithProbeBudget sets the maximum number of midpoint comparisons a single
// search may spend before it reports exhaustion. The budget exists so a
// search over a broken comparator or an absent key always terminates; it is
// not a tuning knob for correct inputs.
func WithProbeBudget(budget int) Option {
	return func(o *options) {
		o.probeBudget = budget
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// lookups. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bisect.BasicMetricsCollector{}
//	set, _ := bisect.New(keys, bisect.WithMetricsCollector(metrics))
//	// ... use set ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Max probes: %d\n", stats.SearchCount, stats.SearchMaxProbes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for lookups.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bisect.NewJSONLogger(slog.LevelDebug)
//	set, _ := bisect.New(keys, bisect.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		probeBudget:      DefaultProbeBudget,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
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
