package params

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports a value rejected by a parameter.
type ValidationError struct {
	Name string
	Kind Kind
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter %q (%s): %s", e.Name, e.Kind, e.Msg)
}

func (s Spec) reject(format string, args ...any) error {
	return &ValidationError{Name: s.Name, Kind: s.Kind, Msg: fmt.Sprintf(format, args...)}
}

// Coerce converts raw into the canonical carrying type for the spec's
// kind, or returns a *ValidationError. Canonical forms are bool, int,
// float64, string, Member, typed element slices and Range. A nil raw is
// accepted for every kind and stays nil, meaning explicitly unset.
func (s Spec) Coerce(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	v, err := s.coerceKind(raw)
	if err != nil {
		return nil, err
	}

	if err := s.checkChoices(v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s Spec) coerceKind(raw any) (any, error) {
	switch s.Kind {
	default:
		return nil, s.reject("unsupported kind")
	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, s.reject("expected a bool, got %T", raw)
		}

		return b, nil
	case KindInt:
		return s.coerceInt(raw)
	case KindFloat:
		return s.coerceFloat(raw)
	case KindString:
		str, ok := raw.(string)
		if !ok {
			return nil, s.reject("expected a string, got %T", raw)
		}

		return str, nil
	case KindEnum:
		return s.coerceEnum(raw)
	case KindList:
		return s.coerceList(raw)
	case KindRange:
		return s.coerceRange(raw)
	}
}

func (s Spec) coerceInt(raw any) (any, error) {
	switch v := raw.(type) {
	default:
		return nil, s.reject("expected an integer, got %T", raw)
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return nil, s.reject("expected an integer, got %v", v)
		}

		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, s.reject("cannot parse %q as an integer", v)
		}

		return n, nil
	}
}

func (s Spec) coerceFloat(raw any) (any, error) {
	switch v := raw.(type) {
	default:
		return nil, s.reject("expected a number, got %T", raw)
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, s.reject("cannot parse %q as a number", v)
		}

		return f, nil
	}
}

func (s Spec) coerceEnum(raw any) (any, error) {
	switch v := raw.(type) {
	default:
		return nil, s.reject("expected a member of %s, got %T", s.EnumType.Name(), raw)
	case Member:
		if v.Enum() != s.EnumType {
			return nil, s.reject("member %s belongs to enum %s, not %s",
				v.Name(), v.Enum().Name(), s.EnumType.Name())
		}

		return v, nil
	case string:
		m, err := s.EnumType.Member(v)
		if err != nil {
			return nil, s.reject("%v", err)
		}

		return m, nil
	}
}

func (s Spec) coerceList(raw any) (any, error) {
	elems, ok := asList(raw)
	if !ok {
		return nil, s.reject("expected a list, got %T", raw)
	}

	elem := Spec{Name: s.Name, Kind: s.Subtype}
	switch s.Subtype {
	default:
		return nil, s.reject("unsupported element kind %s", s.Subtype)
	case KindBool:
		return coerceElems[bool](elem, elems)
	case KindInt:
		return coerceElems[int](elem, elems)
	case KindFloat:
		return coerceElems[float64](elem, elems)
	case KindString:
		return coerceElems[string](elem, elems)
	}
}

func coerceElems[T any](elem Spec, raw []any) ([]T, error) {
	out := make([]T, len(raw))
	for i, e := range raw {
		v, err := elem.coerceKind(e)
		if err != nil {
			return nil, err
		}

		out[i] = v.(T)
	}
	return out, nil
}

func (s Spec) coerceRange(raw any) (any, error) {
	var r Range
	switch v := raw.(type) {
	default:
		elems, ok := asList(v)
		if !ok {
			return nil, s.reject("expected a range triple, got %T", raw)
		}

		if len(elems) != 3 {
			return nil, s.reject("expected 3 range slots, got %d", len(elems))
		}

		for i, e := range elems {
			if e == nil {
				continue
			}

			f, ok := asNumber(e)
			if !ok {
				return nil, s.reject("range slot %d: expected a number, got %T", i, e)
			}

			r[i] = Num(f)
		}
	case Range:
		r = v
	case *Range:
		if v == nil {
			return nil, nil
		}

		r = *v
	}

	if err := s.validateRange(r); err != nil {
		return nil, err
	}

	return r, nil
}

// validateRange checks the slots that can be judged in isolation, so a
// later Materialize on a complete range cannot fail.
func (s Spec) validateRange(r Range) error {
	switch s.RangeKind {
	default:
	case RangeArange, RangeSpanArange:
		if r[2] != nil && *r[2] == 0 {
			return s.reject("%s step must not be zero", s.RangeKind)
		}
	case RangeLinspace, RangeGeomspace:
		if r[2] != nil {
			if _, err := countSlot(s.RangeKind, *r[2]); err != nil {
				return s.reject("%v", err)
			}
		}
	}

	if s.RangeKind == RangeGeomspace {
		for i := 0; i < 2; i++ {
			if r[i] != nil && *r[i] == 0 {
				return s.reject("geomspace endpoints must not be zero")
			}
		}
		if r[0] != nil && r[1] != nil && (*r[0] < 0) != (*r[1] < 0) {
			return s.reject("geomspace endpoints must share a sign")
		}
	}

	return nil
}

func (s Spec) checkChoices(v any) error {
	if len(s.Choices) == 0 {
		return nil
	}

	for _, c := range s.Choices {
		cc, err := s.coerceKind(c)
		if err != nil {
			cc = c
		}

		if Equal(v, cc) {
			return nil
		}
	}

	return s.reject("value %v is not one of the allowed choices %v", v, s.Choices)
}
