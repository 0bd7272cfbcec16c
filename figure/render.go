// SPDX-License-Identifier: MIT

package figure

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
)

// Render draws p onto a canvas of the configured size and format and writes
// the encoded image to w. It returns the number of bytes written.
//
// Defaults: 6in × 6in, png.
//
// Errors:
//   - ErrNilPlot for a nil plot.
//   - ErrUnsupportedFormat when no canvas is registered for the format.
//   - any error from w, wrapped.
func Render(p *plot.Plot, w io.Writer, opts ...Option) (int64, error) {
	if p == nil {
		return 0, figureErrorf(opRender, ErrNilPlot)
	}
	o := NewOptions(opts...)
	width, height := o.Size()

	wt, err := p.WriterTo(width, height, o.Format())
	if err != nil {
		return 0, figureErrorf(opRender, fmt.Errorf("%w %q: %v", ErrUnsupportedFormat, o.Format(), err))
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, figureErrorf(opRender, err)
	}

	return n, nil
}
