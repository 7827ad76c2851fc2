package layout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phantomgen"
	"github.com/katalvlaran/phantomgen/latin"
	"github.com/katalvlaran/phantomgen/layout"
)

const tol = 1e-12

func mustSquare(t *testing.T, n, shuffles int, seed int64) *latin.Square {
	t.Helper()
	sq, err := latin.Build(n, shuffles, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return sq
}

func TestMapSizes_TwoByTwo(t *testing.T) {
	sq := mustSquare(t, 2, 0, 1)
	g, err := layout.MapSizes(sq, 0.5)
	require.NoError(t, err)

	radii := g.DistinctRadii()
	require.Len(t, radii, 2)
	require.Equal(t, radii[0], 2*radii[1], "ratio 0.5 must halve the radius exactly")

	r00, _ := g.Radii.At(0, 0)
	r01, _ := g.Radii.At(0, 1)
	require.Equal(t, radii[0], r00, "symbol 0 gets the largest radius")
	require.Equal(t, radii[1], r01)

	// p = [0.175, 0.525] shifted by 0.15.
	x0, _ := g.X.At(0, 0)
	x1, _ := g.X.At(0, 1)
	y1, _ := g.Y.At(1, 0)
	require.InDelta(t, 0.325, x0, tol)
	require.InDelta(t, 0.675, x1, tol)
	require.InDelta(t, 0.675, y1, tol)
}

func TestMapSizes_RadiusMonotonicAndBounded(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for _, ratio := range []float64{0.1, 0.5, 0.9, 1} {
			g, err := layout.MapSizes(mustSquare(t, n, 6, int64(n)), ratio)
			require.NoError(t, err)

			limit := layout.DefaultFillFraction / (2 * float64(n))
			for _, p := range g.Points() {
				require.Greater(t, p.Radius, 0.0)
				require.LessOrEqual(t, p.Radius, limit)
			}
			for v := 0; v+1 < n; v++ {
				a, err := g.RadiusFor(v)
				require.NoError(t, err)
				b, err := g.RadiusFor(v + 1)
				require.NoError(t, err)
				if ratio < 1 {
					require.Greater(t, a, b, "n=%d ratio=%g v=%d", n, ratio, v)
				} else {
					require.Equal(t, a, b)
				}
			}
			if ratio < 1 {
				require.Len(t, g.DistinctRadii(), n)
			} else {
				require.Len(t, g.DistinctRadii(), 1)
			}
		}
	}
}

func TestMapSizes_BalancedAndDecorrelated(t *testing.T) {
	const n = 5
	g, err := layout.MapSizes(mustSquare(t, n, 9, 7), 0.5)
	require.NoError(t, err)

	counts := map[float64]int{}
	for _, p := range g.Points() {
		counts[p.Radius]++
		want, err := g.RadiusFor(p.Value)
		require.NoError(t, err)
		require.Equal(t, want, p.Radius, "radius must be the exact per-symbol value")
	}
	require.Len(t, counts, n)
	for r, c := range counts {
		require.Equal(t, n, c, "radius %g", r)
	}

	for i := 0; i < n; i++ {
		for j := 0; j+1 < n; j++ {
			a, _ := g.Radii.At(i, j)
			b, _ := g.Radii.At(i, j+1)
			require.NotEqual(t, a, b, "row neighbours (%d,%d)", i, j)
			a, _ = g.Radii.At(j, i)
			b, _ = g.Radii.At(j+1, i)
			require.NotEqual(t, a, b, "column neighbours (%d,%d)", j, i)
		}
	}
}

func TestMapSizes_CenteredGrid(t *testing.T) {
	const n = 5
	g, err := layout.MapSizes(mustSquare(t, n, 0, 1), 0.5)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, _ := g.X.At(i, j)
			xm, _ := g.X.At(i, n-1-j)
			y, _ := g.Y.At(i, j)
			ym, _ := g.Y.At(n-1-i, j)
			require.InDelta(t, 1.0, x+xm, tol, "x mirror symmetric about 0.5")
			require.InDelta(t, 1.0, y+ym, tol, "y mirror symmetric about 0.5")
			yr, _ := g.Y.At(i, 0)
			require.Equal(t, yr, y, "y is constant along a row")
		}
	}

	b := g.Bounds()
	require.GreaterOrEqual(t, b.LLx, 0.15-tol)
	require.LessOrEqual(t, b.URx, 0.85+tol)
	require.InDelta(t, 1.0, b.LLx+b.URx, tol)
}

func TestMapSizes_Options(t *testing.T) {
	sq := mustSquare(t, 4, 0, 1)
	g, err := layout.MapSizes(sq, 1, layout.WithFillFraction(1), layout.WithEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, 1.0, g.Fill)
	r, _ := g.RadiusFor(0)
	require.Equal(t, 1.0/8, r, "with ε=0 and f=1 discs exactly fill their cells")
	x0, _ := g.X.At(0, 0)
	require.InDelta(t, 0.125, x0, tol)

	require.Panics(t, func() { layout.WithFillFraction(0) })
	require.Panics(t, func() { layout.WithFillFraction(1.5) })
	require.Panics(t, func() { layout.WithEpsilon(-1) })
	require.Panics(t, func() { layout.WithEpsilon(math.NaN()) })
}

func TestMapSizes_InvalidParameters(t *testing.T) {
	sq := mustSquare(t, 3, 0, 1)
	for _, ratio := range []float64{0, -0.5, 1.0001, math.NaN(), math.Inf(1)} {
		_, err := layout.MapSizes(sq, ratio)
		require.ErrorIs(t, err, phantomgen.ErrInvalidParameter, "ratio %g", ratio)
	}
	_, err := layout.MapSizes(nil, 0.5)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)

	big := mustSquare(t, 3, 0, 1)
	_, err = layout.MapSizes(big, 1e-200)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter, "ratio² underflows to zero")

	g, err := layout.MapSizes(sq, 0.5)
	require.NoError(t, err)
	_, err = g.RadiusFor(3)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)
}

func TestMapSizes_RatioNearOneKeepsSizeClasses(t *testing.T) {
	sq := mustSquare(t, 5, 0, 1)
	_, err := layout.MapSizes(sq, math.Nextafter(1, 0))
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter, "adjacent symbols would share a radius")

	g, err := layout.MapSizes(sq, 0.999)
	require.NoError(t, err)
	require.Len(t, g.DistinctRadii(), 5)

	g, err = layout.MapSizes(sq, 1)
	require.NoError(t, err)
	require.Len(t, g.DistinctRadii(), 1)
}

func TestSizeGrid_PointsMatchTables(t *testing.T) {
	g, err := layout.MapSizes(mustSquare(t, 4, 5, 3), 0.5)
	require.NoError(t, err)

	pts := g.Points()
	require.Len(t, pts, 16)
	for k, p := range pts {
		require.Equal(t, k/4, p.Row)
		require.Equal(t, k%4, p.Col)
		r, _ := g.Radii.At(p.Row, p.Col)
		x, _ := g.X.At(p.Row, p.Col)
		y, _ := g.Y.At(p.Row, p.Col)
		require.Equal(t, r, p.Radius)
		require.Equal(t, x, p.Center.X)
		require.Equal(t, y, p.Center.Y)
		v, _ := g.Square.At(p.Row, p.Col)
		require.Equal(t, v, p.Value)
	}
}
