package sievego

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures sieve constructor behavior.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures the collector that receives operation
// metrics.
//
// If nil is passed, metrics stay disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metricsCollector = mc
		}
	}
}
