package tile

// Option configures a Set.
type Option func(*options)

type options struct {
	tolerance uint8
}

// WithTolerance sets the per-channel difference under which two tiles are
// merged into one entry.
func WithTolerance(n uint8) Option {
	return func(o *options) {
		o.tolerance = n
	}
}
