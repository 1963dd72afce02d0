package params

import (
	"fmt"
	"math"
	"strings"
)

// Range is the raw slot form of a range parameter's value: the three
// numbers that describe the swept interval before materialization. A nil
// slot is an explicit "unset" sentinel, distinct from zero, and passes
// through flattening and serialization untouched.
type Range [3]*float64

// Num returns a pointer to v, for filling individual Range slots.
func Num(v float64) *float64 { return &v }

// Triple builds a fully specified Range.
func Triple(start, stop, third float64) Range {
	return Range{Num(start), Num(stop), Num(third)}
}

// Complete reports whether every slot is set.
func (r Range) Complete() bool {
	return r[0] != nil && r[1] != nil && r[2] != nil
}

// Empty reports whether no slot is set.
func (r Range) Empty() bool {
	return r[0] == nil && r[1] == nil && r[2] == nil
}

// Slots returns the slot values with nil for unset slots, in a form
// ready for plain-mapping serialization.
func (r Range) Slots() []any {
	out := make([]any, 3)
	for i, p := range r {
		if p != nil {
			out[i] = *p
		}
	}
	return out
}

func (r Range) String() string {
	parts := make([]string, 3)
	for i, p := range r {
		if p == nil {
			parts[i] = "nil"
			continue
		}

		parts[i] = fmt.Sprintf("%v", *p)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Materialize produces the concrete point sequence described by a
// complete range. The rule depends on the kind: arange is stop-exclusive
// stepping, linspace and geomspace span [start, stop] inclusively with a
// point count, and span_arange recenters an arange around its midpoint.
func (r Range) Materialize(kind RangeKind) ([]float64, error) {
	if !r.Complete() {
		return nil, fmt.Errorf("cannot materialize %s range %s: unset slot", kind, r)
	}

	switch kind {
	default:
		return nil, fmt.Errorf("cannot materialize range of kind %s", kind)
	case RangeArange:
		return arange(*r[0], *r[1], *r[2])
	case RangeSpanArange:
		center, width := *r[0], *r[1]
		return arange(center-width/2, center+width/2, *r[2])
	case RangeLinspace:
		n, err := countSlot(kind, *r[2])
		if err != nil {
			return nil, err
		}

		return linspace(*r[0], *r[1], n), nil
	case RangeGeomspace:
		n, err := countSlot(kind, *r[2])
		if err != nil {
			return nil, err
		}

		return geomspace(*r[0], *r[1], n)
	}
}

// countSlot validates the third slot of a count-based range: it must be a
// non-negative integer even though it travels as a float.
func countSlot(kind RangeKind, v float64) (int, error) {
	n := int(v)
	if float64(n) != v {
		return 0, fmt.Errorf("%s count must be an integer, got %v", kind, v)
	}

	if n < 0 {
		return 0, fmt.Errorf("%s count must not be negative, got %d", kind, n)
	}

	return n, nil
}

func arange(start, stop, step float64) ([]float64, error) {
	if step == 0 {
		return nil, fmt.Errorf("arange step must not be zero")
	}

	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 0 {
		return out
	}

	if num == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// pin the endpoint so it is exact rather than accumulated
	out[num-1] = stop
	return out
}

func geomspace(start, stop float64, num int) ([]float64, error) {
	if start == 0 || stop == 0 {
		return nil, fmt.Errorf("geomspace endpoints must not be zero")
	}

	if (start < 0) != (stop < 0) {
		return nil, fmt.Errorf("geomspace endpoints must share a sign")
	}

	out := make([]float64, num)
	if num == 0 {
		return out, nil
	}

	if num == 1 {
		out[0] = start
		return out, nil
	}

	sign := 1.0
	if start < 0 {
		sign = -1.0
		start, stop = -start, -stop
	}

	ratio := math.Pow(stop/start, 1/float64(num-1))
	for i := range out {
		out[i] = sign * start * math.Pow(ratio, float64(i))
	}
	out[num-1] = sign * stop
	return out, nil
}
