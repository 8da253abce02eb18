package bcnum

// Config carries the few knobs an embedding interpreter may want to tune.
// Most callers should pass DefaultConfig() to InitNumbers.
type Config struct {
	// Pow10CacheSize controls how many powers of ten are precomputed and
	// cached; scales beyond this fall back to math/big.Int.Exp on demand.
	Pow10CacheSize int
	// Diagnostics receives Warn/Error callbacks from operations that can
	// produce them (Raise, RaiseMod). Defaults to DefaultDiagnostics.
	Diagnostics Diagnostics
}

// Option configures a Config built by NewConfig.
type Option func(*Config)

// WithPow10CacheSize overrides the number of cached powers of ten.
func WithPow10CacheSize(n int) Option {
	return func(c *Config) { c.Pow10CacheSize = n }
}

// WithDiagnostics overrides the default diagnostics sink.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *Config) { c.Diagnostics = d }
}

// DefaultConfig returns the default configuration (a 64-entry pow10 cache
// and DefaultDiagnostics); NewConfig with no options returns the same.
func DefaultConfig() Config {
	return Config{
		Pow10CacheSize: defaultPow10CacheSize,
		Diagnostics:    DefaultDiagnostics,
	}
}

// NewConfig builds a Config starting from DefaultConfig and applying opts
// in order.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
