// SPDX-License-Identifier: MIT

package figure

import (
	"errors"
	"fmt"
)

var (
	// ErrLabelCount is returned when points and labels differ in length.
	ErrLabelCount = errors.New("figure: number of labels does not match number of points")

	// ErrNoPoints is returned when a point set is empty.
	ErrNoPoints = errors.New("figure: no points")

	// ErrNilPlot is returned by Render for a nil plot.
	ErrNilPlot = errors.New("figure: nil plot")

	// ErrUnsupportedFormat is returned by Render for an unknown image format.
	ErrUnsupportedFormat = errors.New("figure: unsupported format")
)

const (
	opTangents    = "Tangents"
	opParabolas   = "ParabolaRegion"
	opLatusRectum = "LatusRectumTangents"
	opPoints      = "Points"
	opRender      = "Render"
)

func figureErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
