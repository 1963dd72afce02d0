package params

// Equal compares two parameter values loosely: numeric values compare
// by magnitude regardless of the carrying type, so an int 20 equals a
// float 20.0. Lists compare elementwise, ranges compare slotwise, and
// enum members compare by identity.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := asNumber(a); ok {
		fb, ok := asNumber(b)
		return ok && fa == fb
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Member:
		bv, ok := b.(Member)
		return ok && av == bv
	case Range:
		bv, ok := b.(Range)
		return ok && rangeEqual(av, bv)
	}

	la, ok := asList(a)
	if !ok {
		return false
	}

	lb, ok := asList(b)
	if !ok || len(la) != len(lb) {
		return false
	}

	for i := range la {
		if !Equal(la[i], lb[i]) {
			return false
		}
	}
	return true
}

func rangeEqual(a, b Range) bool {
	for i := range a {
		if (a[i] == nil) != (b[i] == nil) {
			return false
		}

		if a[i] != nil && *a[i] != *b[i] {
			return false
		}
	}
	return true
}

// asNumber widens any supported numeric carrier to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	default:
		return 0, false
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
}

// asList widens any supported slice carrier to []any.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	default:
		return nil, false
	case []any:
		return l, true
	case []int:
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = e
		}
		return out, true
	case []float64:
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = e
		}
		return out, true
	case []string:
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = e
		}
		return out, true
	case []bool:
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = e
		}
		return out, true
	}
}
