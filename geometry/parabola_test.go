// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgeo/geometry"
)

func TestLatusRectumTangentIntersection(t *testing.T) {
	for _, a := range []float64{1, 0.25, 3, -2} {
		got, err := geometry.LatusRectumTangentIntersection(a)
		require.NoError(t, err)
		assert.Equal(t, geometry.Point{X: -a}, got)

		viaParams, err := geometry.ParabolaTangentIntersection(a, 1, -1)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(got, viaParams, approx))
	}
}

// TestParabolaTangentIntersection_MatchesLines compares the closed form with
// solving the two tangent-line equations.
func TestParabolaTangentIntersection_MatchesLines(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	for k := 0; k < 200; k++ {
		a := rng.Float64()*4 + 0.1
		t1 := rng.Float64()*6 - 3
		t2 := t1 + 0.1 + rng.Float64()*3

		got, err := geometry.ParabolaTangentIntersection(a, t1, t2)
		require.NoError(t, err)

		l1 := geometry.ParabolaTangentLine(a, t1)
		l2 := geometry.ParabolaTangentLine(a, t2)
		ref, err := l1.Intersect(l2)
		require.NoError(t, err)
		if diff := cmp.Diff(ref, got, approx); diff != "" {
			t.Fatalf("a=%g t1=%g t2=%g (-lines +closed):\n%s", a, t1, t2, diff)
		}
		require.True(t, l1.Contains(got, 1e-8))
		require.True(t, l2.Contains(got, 1e-8))
	}
}

func TestParabolaTangentIntersection_Parallel(t *testing.T) {
	_, err := geometry.ParabolaTangentIntersection(1, 2, 2)
	require.ErrorIs(t, err, geometry.ErrParallelTangents)
}

func TestParabolaTangentLine_TouchesCurve(t *testing.T) {
	for _, tt := range []float64{-2, -0.5, 0, 1, 3} {
		p := geometry.ParabolaPoint(1.5, tt)
		assert.InDelta(t, 4*1.5*p.X, p.Y*p.Y, tol, "point must lie on y²=4ax")
		assert.True(t, geometry.ParabolaTangentLine(1.5, tt).Contains(p, tol))
	}
}

func TestLineIntersect(t *testing.T) {
	// x + y = 2, x − y = 0
	p, err := geometry.Line{A: 1, B: 1, C: -2}.Intersect(geometry.Line{A: 1, B: -1})
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 1, Y: 1}, p)

	_, err = geometry.Line{A: 1, B: 2, C: 3}.Intersect(geometry.Line{A: 2, B: 4, C: 1})
	assert.ErrorIs(t, err, geometry.ErrParallelLines)
}

func TestParabola_NonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name string
		call func() error
	}{
		{"tangent intersection NaN a", func() error {
			_, err := geometry.ParabolaTangentIntersection(nan, 1, 2)
			return err
		}},
		{"tangent intersection Inf t2", func() error {
			_, err := geometry.ParabolaTangentIntersection(1, 1, inf)
			return err
		}},
		{"latus rectum Inf", func() error {
			_, err := geometry.LatusRectumTangentIntersection(inf)
			return err
		}},
		{"latus rectum NaN", func() error {
			_, err := geometry.LatusRectumTangentIntersection(nan)
			return err
		}},
		{"line NaN coefficient", func() error {
			_, err := geometry.Line{A: nan, B: 1}.Intersect(geometry.Line{A: 1, B: -1})
			return err
		}},
		{"line Inf constant", func() error {
			_, err := geometry.Line{A: 1, B: 1}.Intersect(geometry.Line{A: 1, B: -1, C: -inf})
			return err
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), geometry.ErrNonFinite)
		})
	}
}
