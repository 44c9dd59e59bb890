package tween

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorReconstruct(t *testing.T) {
	v, err := Pt(3, 4).Vectorize()
	require.NoError(t, err)

	got, err := v.Interpolatable()
	require.NoError(t, err)
	require.Equal(t, Pt(3, 4), got)

	// reconstruction is a pure function of the current values
	again, err := v.Interpolatable()
	require.NoError(t, err)
	require.Equal(t, got, again)

	// mutating the values changes what gets reconstructed
	v.Values[0] = 30
	got, err = v.Interpolatable()
	require.NoError(t, err)
	require.Equal(t, Pt(30, 4), got)
}

func TestVectorClone(t *testing.T) {
	v, err := Sz(10, 20).Vectorize()
	require.NoError(t, err)

	c := v.Clone()
	c.Values[0] = 99

	require.Equal(t, []float64{10, 20}, v.Values)
	require.Equal(t, []float64{99, 20}, c.Values)

	// the clone reconstructs to the same concrete type
	got, err := c.Interpolatable()
	require.NoError(t, err)
	require.Equal(t, Sz(99, 20), got)
}

func TestVectorUnbound(t *testing.T) {
	var v Vector
	_, err := v.Interpolatable()
	require.ErrorIs(t, err, ErrUnboundVector)
}

func TestVectorResizedValues(t *testing.T) {
	v, err := Pt(1, 2).Vectorize()
	require.NoError(t, err)

	v.Values = []float64{1, 2, 3}
	_, err = v.Interpolatable()
	var am *ErrArityMismatch
	require.ErrorAs(t, err, &am)
	require.Equal(t, 2, am.Expected)
	require.Equal(t, 3, am.Actual)
}
