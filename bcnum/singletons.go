package bcnum

// Zero, One, and Two are the package's singleton handles. They are valid
// only after InitNumbers has been called; callers copy from them (Zero.Copy())
// rather than constructing literal small values, per spec §6.
var (
	Zero Number
	One  Number
	Two  Number
)

var (
	globalDiagnostics Diagnostics
	numbersReady      bool
)

// InitNumbers performs the one-time setup spec §9 requires explicitly
// rather than relying on implicit package initialization: it sizes the
// power-of-ten cache, installs the diagnostics sink, and creates the Zero,
// One, and Two singletons. It is idempotent: calling it again refreshes the
// pow10 cache size and diagnostics sink but leaves the singletons' identity
// unchanged, so handles callers already hold a share of remain valid.
func InitNumbers(cfg Config) {
	size := cfg.Pow10CacheSize
	if size <= 0 {
		size = defaultPow10CacheSize
	}
	pow10Cache = buildPow10Cache(size)
	globalDiagnostics = diagOrDefault(cfg.Diagnostics)

	if numbersReady {
		return
	}
	Zero = newSingleton(0, 0)
	One = newSingleton(0, 1)
	Two = newSingleton(0, 2)
	numbersReady = true
}

func newSingleton(scale uint32, v int64) Number {
	inner := &numInner{scale: scale, refs: 1, singleton: true}
	inner.value.SetInt64(v)
	return Number{n: inner}
}
