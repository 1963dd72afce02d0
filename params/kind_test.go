package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caryan/paranormal/params"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     params.Kind
		expected string
	}{
		{params.KindBool, "bool"},
		{params.KindInt, "int"},
		{params.KindFloat, "float"},
		{params.KindString, "string"},
		{params.KindEnum, "enum"},
		{params.KindList, "list"},
		{params.KindRange, "range"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}

	assert.Equal(t, "Kind(0)", params.Kind(0).String())
}

func TestKind_IsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, params.KindInt.IsNumeric())
	assert.True(t, params.KindFloat.IsNumeric())
	assert.False(t, params.KindBool.IsNumeric())
	assert.False(t, params.KindString.IsNumeric())
	assert.False(t, params.KindEnum.IsNumeric())
	assert.False(t, params.KindRange.IsNumeric())
}

func TestRangeKind_Slots(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [3]string{"start", "stop", "num"}, params.RangeLinspace.Slots())
	assert.Equal(t, [3]string{"start", "stop", "num"}, params.RangeGeomspace.Slots())
	assert.Equal(t, [3]string{"start", "stop", "step"}, params.RangeArange.Slots())
	assert.Equal(t, [3]string{"center", "width", "step"}, params.RangeSpanArange.Slots())
}

func TestRangeKind_SlotKinds(t *testing.T) {
	t.Parallel()

	// count-based kinds carry an integer point count in the third slot
	kinds := params.RangeLinspace.SlotKinds()
	assert.Equal(t, params.KindFloat, kinds[0])
	assert.Equal(t, params.KindFloat, kinds[1])
	assert.Equal(t, params.KindInt, kinds[2])

	kinds = params.RangeArange.SlotKinds()
	assert.Equal(t, params.KindFloat, kinds[2])
}

func TestRangeKind_SlotUnits(t *testing.T) {
	t.Parallel()

	// a point count has no unit, a step keeps the parameter's unit
	assert.Equal(t, [3]string{"MHz", "MHz", ""}, params.RangeLinspace.SlotUnits("MHz"))
	assert.Equal(t, [3]string{"ns", "ns", "ns"}, params.RangeArange.SlotUnits("ns"))
	assert.Equal(t, [3]string{"us", "us", "us"}, params.RangeSpanArange.SlotUnits("us"))
}
