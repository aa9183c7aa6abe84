package coordinate

// Defaults for the spacing constants spec.md §4.9 names but does not
// pin numerically; callers needing different spacing use the Option
// functions below.
const (
	DefaultEdgeHeight = 8
	DefaultXGutter    = 24
	DefaultYGutter    = 48
	DefaultXPasses    = 5
)

// Config holds the resolved spacing and pass-count settings Assign and
// its sub-steps run with.
type Config struct {
	EdgeHeight int
	XGutter    int
	YGutter    int
	XPasses    int
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithGutters overrides the horizontal and vertical spacing constants.
func WithGutters(xGutter, yGutter int) Option {
	return func(c *Config) {
		c.XGutter = xGutter
		c.YGutter = yGutter
	}
}

// WithEdgeHeight overrides the per-edge channel height.
func WithEdgeHeight(h int) Option {
	return func(c *Config) { c.EdgeHeight = h }
}

// WithXPasses overrides the number of X-relaxation sweeps.
func WithXPasses(n int) Option {
	return func(c *Config) { c.XPasses = n }
}

// ResolveConfig applies opts over the package defaults and returns the
// resulting Config, for callers (package sugiyama) that need to share
// one resolved Config across several coordinate calls.
func ResolveConfig(opts ...Option) Config {
	return newConfig(opts...)
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		EdgeHeight: DefaultEdgeHeight,
		XGutter:    DefaultXGutter,
		YGutter:    DefaultYGutter,
		XPasses:    DefaultXPasses,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
