package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caryan/paranormal/params"
)

func TestRange_Complete(t *testing.T) {
	t.Parallel()

	assert.True(t, params.Triple(0, 10, 5).Complete())
	assert.False(t, params.Range{params.Num(0), nil, params.Num(15)}.Complete())
	assert.False(t, params.Range{}.Complete())
	assert.True(t, params.Range{}.Empty())
	assert.False(t, params.Range{params.Num(0), nil, nil}.Empty())
}

func TestRange_Slots(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{0.0, nil, 15.0}, params.Range{params.Num(0), nil, params.Num(15)}.Slots())
	assert.Equal(t, "[0 nil 15]", params.Range{params.Num(0), nil, params.Num(15)}.String())
}

func TestRange_MaterializeArange(t *testing.T) {
	t.Parallel()

	got, err := params.Triple(0, 100, 5).Materialize(params.RangeArange)
	require.NoError(t, err)

	// stop is exclusive
	require.Len(t, got, 20)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 5.0, got[1])
	assert.Equal(t, 95.0, got[19])

	got, err = params.Triple(0, 3, 1).Materialize(params.RangeArange)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, got)

	// descending with a negative step
	got, err = params.Triple(3, 0, -1).Materialize(params.RangeArange)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, got)

	// empty when the step walks away from stop
	got, err = params.Triple(0, 3, -1).Materialize(params.RangeArange)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = params.Triple(0, 3, 0).Materialize(params.RangeArange)
	assert.Error(t, err)
}

func TestRange_MaterializeLinspace(t *testing.T) {
	t.Parallel()

	got, err := params.Triple(0, 10, 5).Materialize(params.RangeLinspace)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, got)

	got, err = params.Triple(0, 10, 11).Materialize(params.RangeLinspace)
	require.NoError(t, err)
	require.Len(t, got, 11)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 6.0, got[6])
	assert.Equal(t, 10.0, got[10])

	got, err = params.Triple(42, 99, 1).Materialize(params.RangeLinspace)
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, got)

	got, err = params.Triple(42, 99, 0).Materialize(params.RangeLinspace)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = params.Triple(0, 10, 2.5).Materialize(params.RangeLinspace)
	assert.Error(t, err)

	_, err = params.Triple(0, 10, -3).Materialize(params.RangeLinspace)
	assert.Error(t, err)
}

func TestRange_MaterializeGeomspace(t *testing.T) {
	t.Parallel()

	got, err := params.Triple(1, 8, 4).Materialize(params.RangeGeomspace)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 2.0, got[1], 1e-12)
	assert.InDelta(t, 4.0, got[2], 1e-12)
	assert.Equal(t, 8.0, got[3])

	// both endpoints negative mirrors the positive sequence
	got, err = params.Triple(-1, -8, 4).Materialize(params.RangeGeomspace)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, got[1], 1e-12)
	assert.Equal(t, -8.0, got[3])

	_, err = params.Triple(0, 8, 4).Materialize(params.RangeGeomspace)
	assert.Error(t, err)

	_, err = params.Triple(-1, 8, 4).Materialize(params.RangeGeomspace)
	assert.Error(t, err)
}

func TestRange_MaterializeSpanArange(t *testing.T) {
	t.Parallel()

	// center 50, width 20, step 5 covers [40, 60)
	got, err := params.Triple(50, 20, 5).Materialize(params.RangeSpanArange)
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 45, 50, 55}, got)
}

func TestRange_MaterializeIncomplete(t *testing.T) {
	t.Parallel()

	_, err := params.Range{params.Num(0), nil, params.Num(15)}.Materialize(params.RangeLinspace)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unset slot")
}
