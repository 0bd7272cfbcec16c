// SPDX-License-Identifier: MIT

package figure

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/matgeo/geometry"
)

const (
	circleSamples = 256
	curveSamples  = 200

	// margin is the fraction of the scene added around it on every side.
	margin = 0.15
)

var (
	markerColor = color.Black
	regionFill  = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x55}
	dashes      = []vg.Length{vg.Points(5), vg.Points(3)}
)

// Tangents draws the circle of the given centre and radius, the external
// point, the two tangent points, the tangent segments and the radii to the
// tangent points.
//
// Errors: those of geometry.TangentPoints, wrapped.
func Tangents(center geometry.Point, radius float64, external geometry.Point) (*plot.Plot, error) {
	t1, t2, err := geometry.TangentPoints(center, radius, external)
	if err != nil {
		return nil, figureErrorf(opTangents, err)
	}

	circle := sample(0, 2*math.Pi, circleSamples, func(th float64) geometry.Point {
		return center.Add(geometry.Point{X: math.Cos(th), Y: math.Sin(th)}.Scale(radius))
	})

	p := newPlot("Tangents from an external point")
	if err = addLine(p, "circle", circle, 0, false); err != nil {
		return nil, figureErrorf(opTangents, err)
	}
	if err = addSegments(p, "tangents", 1, false, [2]geometry.Point{external, t1}, [2]geometry.Point{external, t2}); err != nil {
		return nil, figureErrorf(opTangents, err)
	}
	if err = addSegments(p, "radii", 2, true, [2]geometry.Point{center, t1}, [2]geometry.Point{center, t2}); err != nil {
		return nil, figureErrorf(opTangents, err)
	}
	if err = addMarkers(p, []geometry.Point{center, external, t1, t2}, []string{"O", "P", "T1", "T2"}); err != nil {
		return nil, figureErrorf(opTangents, err)
	}
	fitSquare(p, append(circle, toXYs(external)...))

	return p, nil
}

// ParabolaRegion draws y² = 4ax and x² = 4by, shades the region they enclose
// and marks the origin and the second intersection point. The legend carries
// the enclosed area 16ab/3.
//
// Errors: those of geometry.ParabolaIntersection, wrapped.
func ParabolaRegion(a, b float64) (*plot.Plot, error) {
	meet, err := geometry.ParabolaIntersection(a, b)
	if err != nil {
		return nil, figureErrorf(opParabolas, err)
	}
	area, err := geometry.EnclosedParabolaArea(a, b)
	if err != nil {
		return nil, figureErrorf(opParabolas, err)
	}

	extent := 1.25 * math.Max(meet.X, meet.Y)
	first := sample(-extent, extent, curveSamples, func(y float64) geometry.Point {
		return geometry.Point{X: y * y / (4 * a), Y: y}
	})
	second := sample(-extent, extent, curveSamples, func(x float64) geometry.Point {
		return geometry.Point{X: x, Y: x * x / (4 * b)}
	})

	// Outline of the region: along the upper curve out to the meeting
	// point, then back along the lower one.
	upper := sample(0, meet.X, curveSamples, func(x float64) geometry.Point {
		return geometry.Point{X: x, Y: 2 * math.Sqrt(a*x)}
	})
	lower := sample(meet.X, 0, curveSamples, func(x float64) geometry.Point {
		return geometry.Point{X: x, Y: x * x / (4 * b)}
	})
	region, err := plotter.NewPolygon(append(upper, lower...))
	if err != nil {
		return nil, figureErrorf(opParabolas, err)
	}
	region.Color = regionFill
	region.LineStyle.Width = 0

	p := newPlot("Region between two parabolas")
	p.Add(region)
	p.Legend.Add(fmt.Sprintf("area %.4g", area), region)
	if err = addLine(p, fmt.Sprintf("y² = %gx", 4*a), first, 0, false); err != nil {
		return nil, figureErrorf(opParabolas, err)
	}
	if err = addLine(p, fmt.Sprintf("x² = %gy", 4*b), second, 1, false); err != nil {
		return nil, figureErrorf(opParabolas, err)
	}
	if err = addMarkers(p, []geometry.Point{{}, meet}, []string{"O", "P"}); err != nil {
		return nil, figureErrorf(opParabolas, err)
	}
	fitSquare(p, toXYs(geometry.Point{X: -extent, Y: -extent}, geometry.Point{X: extent, Y: extent}))

	return p, nil
}

// LatusRectumTangents draws y² = 4ax with its focus, directrix and latus
// rectum, plus the tangents at both ends of the latus rectum, which meet on
// the directrix at (−a, 0).
//
// Errors:
//   - geometry.ErrNonFinite for a NaN or infinite a.
//   - geometry.ErrNonPositiveParameter for a ≤ 0.
func LatusRectumTangents(a float64) (*plot.Plot, error) {
	switch {
	case math.IsNaN(a) || math.IsInf(a, 0):
		return nil, figureErrorf(opLatusRectum, geometry.ErrNonFinite)
	case a <= 0:
		return nil, figureErrorf(opLatusRectum, geometry.ErrNonPositiveParameter)
	}

	// The latus rectum ends sit at parameters t = ±1.
	l1, l2 := geometry.ParabolaPoint(a, 1), geometry.ParabolaPoint(a, -1)
	meet, err := geometry.ParabolaTangentIntersection(a, 1, -1)
	if err != nil {
		return nil, figureErrorf(opLatusRectum, err)
	}
	focus := geometry.Point{X: a}

	curve := sample(-2.5, 2.5, curveSamples, func(t float64) geometry.Point {
		return geometry.ParabolaPoint(a, t)
	})
	directrix := [2]geometry.Point{{X: -a, Y: -5 * a}, {X: -a, Y: 5 * a}}

	p := newPlot("Tangents at the ends of the latus rectum")
	if err = addLine(p, fmt.Sprintf("y² = %gx", 4*a), curve, 0, false); err != nil {
		return nil, figureErrorf(opLatusRectum, err)
	}
	if err = addSegments(p, "latus rectum", 1, false, [2]geometry.Point{l1, l2}); err != nil {
		return nil, figureErrorf(opLatusRectum, err)
	}
	if err = addSegments(p, "tangents", 2, false, [2]geometry.Point{l1, meet}, [2]geometry.Point{l2, meet}); err != nil {
		return nil, figureErrorf(opLatusRectum, err)
	}
	if err = addSegments(p, "directrix", 3, true, directrix); err != nil {
		return nil, figureErrorf(opLatusRectum, err)
	}
	if err = addMarkers(p, []geometry.Point{focus, l1, l2, meet}, []string{"F", "L", "L'", "Q"}); err != nil {
		return nil, figureErrorf(opLatusRectum, err)
	}
	fitSquare(p, append(curve, toXYs(directrix[0], directrix[1])...))

	return p, nil
}

// Points draws a labelled point set joined in order by a dashed polyline.
//
// Errors:
//   - ErrNoPoints for an empty set.
//   - ErrLabelCount when len(labels) != len(pts).
//   - a wrapped plotter error for NaN or infinite coordinates.
func Points(pts []geometry.Point, labels []string) (*plot.Plot, error) {
	if len(pts) == 0 {
		return nil, figureErrorf(opPoints, ErrNoPoints)
	}
	if len(labels) != len(pts) {
		return nil, figureErrorf(opPoints, ErrLabelCount)
	}

	p := newPlot("")
	xys := toXYs(pts...)
	if len(pts) > 1 {
		if err := addLine(p, "", xys, 0, true); err != nil {
			return nil, figureErrorf(opPoints, err)
		}
	}
	if err := addMarkers(p, pts, labels); err != nil {
		return nil, figureErrorf(opPoints, err)
	}
	fitSquare(p, xys)

	return p, nil
}

// ---------- helpers ----------

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	return p
}

func toXYs(pts ...geometry.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, q := range pts {
		xys[i].X, xys[i].Y = q.X, q.Y
	}

	return xys
}

// sample evaluates f at n evenly spaced parameters from lo to hi inclusive.
func sample(lo, hi float64, n int, f func(float64) geometry.Point) plotter.XYs {
	ts := floats.Span(make([]float64, n), lo, hi)
	xys := make(plotter.XYs, n)
	for i, t := range ts {
		q := f(t)
		xys[i].X, xys[i].Y = q.X, q.Y
	}

	return xys
}

// addLine adds a polyline in palette colour i. An empty name skips the legend.
func addLine(p *plot.Plot, name string, xys plotter.XYs, i int, dashed bool) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = plotutil.Color(i)
	l.LineStyle.Width = vg.Points(1.5)
	if dashed {
		l.LineStyle.Dashes = dashes
	}
	p.Add(l)
	if name != "" {
		p.Legend.Add(name, l)
	}

	return nil
}

// addSegments draws every segment in one style under a single legend entry.
func addSegments(p *plot.Plot, name string, i int, dashed bool, segs ...[2]geometry.Point) error {
	for k, s := range segs {
		label := ""
		if k == 0 {
			label = name
		}
		if err := addLine(p, label, toXYs(s[0], s[1]), i, dashed); err != nil {
			return err
		}
	}

	return nil
}

func addMarkers(p *plot.Plot, pts []geometry.Point, labels []string) error {
	xys := toXYs(pts...)
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: markerColor, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	lbl.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
	p.Add(sc, lbl)

	return nil
}

// fitSquare sets equal x and y ranges covering xys plus a margin, so circles
// render round on a square canvas.
func fitSquare(p *plot.Plot, xys plotter.XYs) {
	xmin, xmax, ymin, ymax := plotter.XYRange(xys)
	half := math.Max(xmax-xmin, ymax-ymin) / 2
	if half == 0 {
		half = 1
	}
	half *= 1 + margin
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2

	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}
