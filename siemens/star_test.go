package siemens_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/phantomgen"
	"github.com/katalvlaran/phantomgen/siemens"
)

func TestBuild_Counts(t *testing.T) {
	for n := 2; n <= 40; n++ {
		s, err := siemens.Build(n, 0.4)
		require.NoError(t, err)
		require.Len(t, s.Points, 2*n)
		require.Len(t, s.Triangles, n)
		require.Len(t, s.Polygons(), n)

		for _, p := range s.Points {
			require.InDelta(t, 0.4, p.Length(), 1e-12, "boundary points lie on the circle")
		}
		for i, tri := range s.Triangles {
			require.Equal(t, s.Points[2*i], tri[0])
			require.Equal(t, s.Points[2*i+1], tri[1])
			require.Equal(t, vec.Vec2{}, tri[2])
		}
	}
}

func TestBuild_StartsAtAngleZeroAndExcludesEndpoint(t *testing.T) {
	s, err := siemens.Build(4, 2)
	require.NoError(t, err)
	require.Equal(t, vec.Vec2{X: 2, Y: 0}, s.Points[0])

	step := 2 * math.Pi / 8
	for k, p := range s.Points {
		require.InDelta(t, 2*math.Cos(float64(k)*step), p.X, 1e-12)
		require.InDelta(t, 2*math.Sin(float64(k)*step), p.Y, 1e-12)
	}
	last := s.Points[len(s.Points)-1]
	require.Greater(t, last.Sub(s.Points[0]).Length(), 0.1, "2π is not repeated")
	require.InDelta(t, math.Pi/4, s.WedgeAngle(), 1e-15)
}

func TestFrequencyAt_FourSectors(t *testing.T) {
	s, err := siemens.Build(4, 1.0)
	require.NoError(t, err)
	f, err := s.FrequencyAt(1.0)
	require.NoError(t, err)
	require.InDelta(t, 0.63662, f, 1e-5)
	require.Equal(t, f, s.OuterFrequency())
}

func TestFrequencyRadiusRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 7, 20, 144} {
		s, err := siemens.Build(n, 0.5)
		require.NoError(t, err)
		for _, v := range []float64{1e-6, 0.01, 0.4, 1, 3.5, 1e6} {
			r, err := s.RadiusAt(v)
			require.NoError(t, err)
			f, err := s.FrequencyAt(r)
			require.NoError(t, err)
			require.InEpsilon(t, v, f, 1e-14, "f→r→f n=%d v=%g", n, v)

			f, err = s.FrequencyAt(v)
			require.NoError(t, err)
			r, err = s.RadiusAt(f)
			require.NoError(t, err)
			require.InEpsilon(t, v, r, 1e-14, "r→f→r n=%d v=%g", n, v)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	_, err := siemens.Build(1, 1.0)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)
	_, err = siemens.Build(0, 1.0)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = siemens.Build(4, r)
		require.ErrorIs(t, err, phantomgen.ErrInvalidParameter, "radius %g", r)
	}

	s, err := siemens.Build(4, 1)
	require.NoError(t, err)
	_, err = s.FrequencyAt(0)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)
	_, err = s.RadiusAt(-2)
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)
}

func TestOutline(t *testing.T) {
	s, err := siemens.Build(5, 1)
	require.NoError(t, err)
	p := s.Outline()
	require.Len(t, p.Cmds, 4*5)
	require.Len(t, p.Coords, 3*5)
	for i := 0; i < 5; i++ {
		require.True(t, p.Cmds[4*i] == path.CmdMoveTo, "cmd %d", 4*i)
		require.True(t, p.Cmds[4*i+1] == path.CmdLineTo, "cmd %d", 4*i+1)
		require.True(t, p.Cmds[4*i+2] == path.CmdLineTo, "cmd %d", 4*i+2)
		require.True(t, p.Cmds[4*i+3] == path.CmdClose, "cmd %d", 4*i+3)
		require.Equal(t, s.Triangles[i][0], p.Coords[3*i])
	}
}

func TestBounds(t *testing.T) {
	s, err := siemens.Build(2, 1)
	require.NoError(t, err)
	// Sectors span [0, π/2] and [π, 3π/2].
	b := s.Bounds()
	require.InDelta(t, -1, b.LLx, 1e-12)
	require.InDelta(t, -1, b.LLy, 1e-12)
	require.InDelta(t, 1, b.URx, 1e-12)
	require.InDelta(t, 1, b.URy, 1e-12)
}

func ExampleStar_RadiusAt() {
	s, _ := siemens.Build(20, 0.4)
	r, _ := s.RadiusAt(10)
	fmt.Printf("outer frequency %.4f, 10 cycles/unit at r=%.4f\n", s.OuterFrequency(), r)
	// Output: outer frequency 7.9577, 10 cycles/unit at r=0.3183
}
