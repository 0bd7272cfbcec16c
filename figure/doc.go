// SPDX-License-Identifier: MIT

// Package figure draws the geometry constructions of matgeo as gonum/plot
// plots: the two tangents from an external point to a circle, the region
// enclosed by y² = 4ax and x² = 4by, the tangents at the ends of a latus
// rectum, and plain labelled point sets.
//
// Builders return a *plot.Plot so callers can restyle it before rendering.
// Render writes the plot to any io.Writer; nothing here touches the file
// system.
//
//	p, err := figure.Tangents(geometry.Point{}, 1, geometry.Point{X: 2})
//	if err != nil { ... }
//	_, err = figure.Render(p, w, figure.WithFormat("svg"))
//
// Geometry errors from the builders are returned wrapped, so errors.Is
// against geometry.ErrInsideCircle and friends works.
package figure
