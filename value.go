package hud

import "strconv"

// ValueKind discriminates the variants of a Value.
type ValueKind int

// Value kinds. The zero Value is Absent.
const (
	KindAbsent ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// Value is a tagged union over the types a generic field slot can carry:
// boolean, integer, float, string, or nothing at all. Hosts with untyped
// attribute systems marshal into this instead of interface{} so that the
// formatter can dispatch exhaustively.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool creates a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int creates an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float creates a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str creates a string Value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the variant of the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value holds nothing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// String renders the value for substitution into a template.
// Absent values render empty; the formatter substitutes its own
// placeholder for those before rendering.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	}
	return ""
}

// AsFloat returns the numeric value of the variant: floats and ints
// directly, booleans as 0 or 1. The second result is false for strings
// and absent values.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AsInt returns the value as an integer, truncating floats.
// The second result is false for strings and absent values.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		return int64(v.f), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Values is the runtime value dictionary: named scalars and strings the
// host rebuilds every evaluation (camera name, frame number, lens data).
// The resolver only reads it.
type Values map[string]Value
