package naiad

import "github.com/sherryshare/Naiad/types"

// ProcessContext bundles the process-lifetime dependencies that a few
// consumers (notably generated operator code) cannot receive one by one.
//
// It replaces the ambient configuration singleton found in comparable
// runtimes: the context is created exactly once at startup, immediately
// after the configuration is built, and is then passed explicitly to every
// component that needs it. Nothing in this module looks configuration up
// through package-level state.
//
// The embedded Config pointer is read-only by contract; see Config.
type ProcessContext struct {
	config  *Config
	logger  types.Logger
	metrics types.MetricsCollector
}

// NewProcessContext creates the process-lifetime context.
//
// Parameters:
//   - cfg: The frozen configuration returned by Builder.Build
//   - opts: Optional dependencies (logger, metrics)
//
// Returns:
//   - *ProcessContext: Context to thread through component constructors
//   - error: ErrInvalidConfig if cfg is nil or fails validation
//
// Example:
//
//	cfg, rest, err := naiad.NewBuilder().Build(ctx, os.Args[1:])
//	if err != nil { ... }
//	pctx, err := naiad.NewProcessContext(cfg, naiad.WithLogger(log))
func NewProcessContext(cfg *Config, opts ...Option) (*ProcessContext, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &ProcessContext{
		config:  cfg,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// Config returns the frozen process configuration.
func (p *ProcessContext) Config() *Config {
	return p.config
}

// Logger returns the process logger.
func (p *ProcessContext) Logger() types.Logger {
	return p.logger
}

// Metrics returns the process metrics collector.
func (p *ProcessContext) Metrics() types.MetricsCollector {
	return p.metrics
}

// NewWorkerGroup creates the event surface for this process's workers,
// inheriting the context's logger and metrics collector.
//
// Returns:
//   - *WorkerGroup: Group sized to Config().WorkerCount
//   - error: ErrInvalidConfig if the worker count is invalid
func (p *ProcessContext) NewWorkerGroup() (*WorkerGroup, error) {
	return NewWorkerGroup(p.config.WorkerCount, WithLogger(p.logger), WithMetrics(p.metrics))
}
