package blit

// BlitOption configures a transparent blit.
//
// Example:
//
//	dst.TransBlitFrom(sprite, image.Pt(10, 20), key,
//	    blit.WithFlipHorizontal(),
//	    blit.WithAlpha(128))
type BlitOption func(*blitOptions)

// blitOptions holds the optional parameters of TransBlitFrom.
type blitOptions struct {
	flip        bool
	override    uint32
	hasOverride bool
	alpha       uint8
}

// defaultBlitOptions returns fully opaque, unflipped options.
func defaultBlitOptions() blitOptions {
	return blitOptions{alpha: 0xFF}
}

func newBlitOptions(opts []BlitOption) blitOptions {
	o := defaultBlitOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFlipHorizontal mirrors the source: destination column j samples
// source column width-1-j.
func WithFlipHorizontal() BlitOption {
	return func(o *blitOptions) {
		o.flip = true
	}
}

// WithFlip sets horizontal mirroring on or off.
func WithFlip(flip bool) BlitOption {
	return func(o *blitOptions) {
		o.flip = flip
	}
}

// WithOverrideColor draws every non-transparent source pixel as c, given in
// the destination format. Used for silhouettes and hit flashes.
func WithOverrideColor(c uint32) BlitOption {
	return func(o *blitOptions) {
		o.override = c
		o.hasOverride = true
	}
}

// WithAlpha blends non-transparent pixels with uniform opacity a using
// conventional alpha: 255 is opaque, 0 leaves the destination unchanged.
// Ignored on indexed destinations.
func WithAlpha(a uint8) BlitOption {
	return func(o *blitOptions) {
		o.alpha = a
	}
}
