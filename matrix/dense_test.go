package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phantomgen/matrix"
)

// values collects m in row-major order through Do.
func values(m *matrix.Dense) []float64 {
	var out []float64
	m.Do(func(_, _ int, v float64) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_DoAndApply(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Apply(func(i, j int, _ float64) float64 { return float64(2*i + j + 1) }))
	require.Equal(t, []float64{1, 2, 3, 4}, values(m))

	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen, "Do stops when f returns false")

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, []float64{10, 20, 30, 40}, values(m))

	err = m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return v
	})
	require.True(t, errors.Is(err, matrix.ErrNaNInf))
	require.Equal(t, []float64{10, 20, 30, 40}, values(m), "row 0 rewritten unchanged, row 1 untouched")
}

func TestValidators(t *testing.T) {
	sq, _ := matrix.NewDense(2, 2)
	sq2, _ := matrix.NewDense(2, 2)
	rect, _ := matrix.NewDense(2, 3)
	var nilDense *matrix.Dense

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(sq, nilDense), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSameShape(sq, sq2))
}
