package sugiyama

import (
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/internal/log"
	"github.com/katalvlaran/cfgraph/ordering"
)

// Config bundles the sub-packages' own options plus the logger Run
// passes down to simplex and coordinate for diagnostic messages.
type Config struct {
	Logger       *log.Logger
	CoordOptions []coordinate.Option
	OrderOptions []ordering.Option
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithLogger routes simplex/coordinate diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithCoordinateOptions forwards options to package coordinate.
func WithCoordinateOptions(opts ...coordinate.Option) Option {
	return func(c *Config) { c.CoordOptions = opts }
}

// WithOrderingOptions forwards options to package ordering.
func WithOrderingOptions(opts ...ordering.Option) Option {
	return func(c *Config) { c.OrderOptions = opts }
}

func newConfig(opts ...Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Nop("sugiyama")
	}
	return cfg
}
