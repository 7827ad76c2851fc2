package phantomgen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phantomgen"
)

func TestErrNeedRandSourceIsInvalidParameter(t *testing.T) {
	require.True(t, errors.Is(phantomgen.ErrNeedRandSource, phantomgen.ErrInvalidParameter))
	require.False(t, errors.Is(phantomgen.ErrInvalidParameter, phantomgen.ErrNeedRandSource))
}

func TestErrorf(t *testing.T) {
	err := phantomgen.Errorf("Build", phantomgen.ErrInvalidParameter, "n=%d must be ≥ %d", 0, 1)
	require.EqualError(t, err, "Build: n=0 must be ≥ 1: phantomgen: invalid parameter")
	require.ErrorIs(t, err, phantomgen.ErrInvalidParameter)
	require.NotErrorIs(t, err, phantomgen.ErrEmptyGeometry)

	wrapped := phantomgen.Errorf("Jittered", phantomgen.ErrNeedRandSource, "count=%d", 3)
	require.ErrorIs(t, wrapped, phantomgen.ErrNeedRandSource)
	require.ErrorIs(t, wrapped, phantomgen.ErrInvalidParameter)
}
