// SPDX-License-Identifier: MIT

package figure

import (
	"strings"

	"gonum.org/v1/plot/vg"
)

const (
	// DefaultSize is the default width and height of a rendered figure.
	DefaultSize = 6 * vg.Inch

	// DefaultFormat is the default output format.
	DefaultFormat = "png"
)

const (
	panicSizeInvalid   = "figure: WithSize: width and height must be > 0"
	panicFormatInvalid = "figure: WithFormat: format must be non-empty"
)

// Option configures Render.
type Option func(*Options)

// Options holds the resolved render settings.
type Options struct {
	width, height vg.Length
	format        string
}

// WithSize sets the canvas size. Panics when either side is not positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithFormat selects the image format by name ("png", "svg", "pdf", ...).
// A leading dot and letter case are ignored. Panics on an empty name.
func WithFormat(format string) Option {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if f == "" {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{width: DefaultSize, height: DefaultSize, format: DefaultFormat}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Size returns the resolved width and height.
func (o Options) Size() (vg.Length, vg.Length) { return o.width, o.height }

// Format returns the resolved format name.
func (o Options) Format() string { return o.format }
