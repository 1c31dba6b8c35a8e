package naiad

import (
	"io"
	"net"
	"os"

	"github.com/sherryshare/Naiad/internal/logger"
	"github.com/sherryshare/Naiad/internal/metrics"
	"github.com/sherryshare/Naiad/types"
)

// Option configures a Builder or WorkerGroup with optional dependencies.
//
// Every dependency is injected explicitly; there is no process-wide
// configuration or logger singleton anywhere in this module.
type Option func(*options)

// options holds optional dependencies shared by the constructors.
type options struct {
	logger   types.Logger
	metrics  types.MetricsCollector
	resolver types.Resolver
	out      io.Writer
}

func defaultOptions() *options {
	return &options{
		logger:   logger.NewNop(),
		metrics:  metrics.NewNop(),
		resolver: net.DefaultResolver,
		out:      os.Stderr,
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - l: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewBuilder and NewWorkerGroup
//
// Example:
//
//	b := naiad.NewBuilder(naiad.WithLogger(logging.NewSlogDefault()))
func WithLogger(l types.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets a metrics collector. Only WorkerGroup records metrics.
//
// Parameters:
//   - m: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewWorkerGroup
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "myapp")
//	g := naiad.NewWorkerGroup(cfg.WorkerCount, naiad.WithMetrics(collector))
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithResolver sets the name-resolution facility used for endpoint
// resolution. The default is net.DefaultResolver; tests inject a static
// resolver so configuration building never touches real DNS.
//
// Parameters:
//   - r: Resolver implementation
//
// Returns:
//   - Option: Functional option for NewBuilder
func WithResolver(r types.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithDiagnosticOutput sets the writer the usage summary is printed to.
// The default is os.Stderr.
//
// Parameters:
//   - w: Destination for on-demand diagnostics
//
// Returns:
//   - Option: Functional option for NewBuilder
func WithDiagnosticOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}
