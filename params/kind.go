package params

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind discriminates the value shape a Spec coerces to.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindBool   // bool
	KindInt    // int
	KindFloat  // float
	KindString // string
	KindEnum   // enum
	KindList   // list
	KindRange  // range

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsNumeric reports whether values of this kind parse from numeric tokens.
func (k Kind) IsNumeric() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat, KindRange:
		return true
	}
}

// RangeKind selects the slot layout and materialization rule of a range
// parameter.
type RangeKind int

const (
	RangeNone RangeKind = iota

	RangeArange
	RangeLinspace
	RangeGeomspace
	RangeSpanArange
)

func (rk RangeKind) String() string {
	switch rk {
	default:
		return "none"
	case RangeArange:
		return "arange"
	case RangeLinspace:
		return "linspace"
	case RangeGeomspace:
		return "geomspace"
	case RangeSpanArange:
		return "span_arange"
	}
}

// Slots returns the three flat field names a range of this kind expands
// into, before any prefix is applied.
func (rk RangeKind) Slots() [3]string {
	switch rk {
	default:
		return [3]string{"start", "stop", "num"}
	case RangeArange:
		return [3]string{"start", "stop", "step"}
	case RangeSpanArange:
		return [3]string{"center", "width", "step"}
	}
}

// SlotKinds returns the primitive kind of each expanded slot. The count
// slot of linspace and geomspace ranges is an integer, everything else
// is a float.
func (rk RangeKind) SlotKinds() [3]Kind {
	switch rk {
	default:
		return [3]Kind{KindFloat, KindFloat, KindInt}
	case RangeArange, RangeSpanArange:
		return [3]Kind{KindFloat, KindFloat, KindFloat}
	}
}

// SlotUnits maps a range parameter's unit onto its expanded slots. The
// count slot of linspace and geomspace ranges is unitless.
func (rk RangeKind) SlotUnits(unit string) [3]string {
	switch rk {
	default:
		return [3]string{unit, unit, ""}
	case RangeArange, RangeSpanArange:
		return [3]string{unit, unit, unit}
	}
}
