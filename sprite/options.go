// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import "image"

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	clip image.Rectangle
}

// WithClip sets the initial clip rectangle. The default is the whole
// destination.
func WithClip(r image.Rectangle) Option {
	return func(o *options) {
		o.clip = r
	}
}
