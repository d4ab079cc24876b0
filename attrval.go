package delta

import (
	"fmt"
	"sort"
	"strings"
)

// valKind tags which alternative an AttrVal currently holds.
type valKind int

const (
	kindNull valKind = iota
	kindBool
	kindNumber
	kindString
	kindMap
)

// AttrVal is a closed tagged union over the values an attribute (or an
// insert operation's payload) may hold: Null, Bool, Number, String, or a
// nested AttrMap. Arrays are never a valid alternative.
//
// AttrVal is a value type: copying it copies the tag and, for Map, the
// underlying map reference (AttrMap is itself a map type) — callers that
// need an independent copy of a nested map should build one explicitly.
type AttrVal struct {
	kind valKind
	b    bool
	n    uint64
	s    string
	m    AttrMap
}

// NullValue returns the Null alternative.
func NullValue() AttrVal { return AttrVal{kind: kindNull} }

// BoolValue returns the Bool alternative.
func BoolValue(b bool) AttrVal { return AttrVal{kind: kindBool, b: b} }

// NumberValue returns the Number alternative. Numbers are unsigned.
func NumberValue(n uint64) AttrVal { return AttrVal{kind: kindNumber, n: n} }

// StringValue returns the String alternative.
func StringValue(s string) AttrVal { return AttrVal{kind: kindString, s: s} }

// MapValue returns the Map alternative.
func MapValue(m AttrMap) AttrVal { return AttrVal{kind: kindMap, m: m} }

// IsNull reports whether v holds Null.
func (v AttrVal) IsNull() bool { return v.kind == kindNull }

// IsBool reports whether v holds Bool.
func (v AttrVal) IsBool() bool { return v.kind == kindBool }

// IsNumber reports whether v holds Number.
func (v AttrVal) IsNumber() bool { return v.kind == kindNumber }

// IsString reports whether v holds String.
func (v AttrVal) IsString() bool { return v.kind == kindString }

// IsMap reports whether v holds Map.
func (v AttrVal) IsMap() bool { return v.kind == kindMap }

// Bool returns the Bool payload, or ErrWrongValueType if v does not hold Bool.
func (v AttrVal) Bool() (bool, error) {
	if v.kind != kindBool {
		return false, fmt.Errorf("%w: bool", ErrWrongValueType)
	}
	return v.b, nil
}

// Number returns the Number payload, or ErrWrongValueType if v does not
// hold Number.
func (v AttrVal) Number() (uint64, error) {
	if v.kind != kindNumber {
		return 0, fmt.Errorf("%w: number", ErrWrongValueType)
	}
	return v.n, nil
}

// Str returns the String payload, or ErrWrongValueType if v does not
// hold String. Named Str rather than String so AttrVal can separately
// implement fmt.Stringer for debug output.
func (v AttrVal) Str() (string, error) {
	if v.kind != kindString {
		return "", fmt.Errorf("%w: string", ErrWrongValueType)
	}
	return v.s, nil
}

// Map returns the Map payload, or ErrWrongValueType if v does not hold Map.
func (v AttrVal) Map() (AttrMap, error) {
	if v.kind != kindMap {
		return nil, fmt.Errorf("%w: map", ErrWrongValueType)
	}
	return v.m, nil
}

// RuneLen returns the length this value contributes to an insert
// operation: the rune count for a String, 1 for every other alternative
// (an embed is opaque and indivisible).
func (v AttrVal) RuneLen() uint64 {
	if v.kind == kindString {
		return uint64(len([]rune(v.s)))
	}
	return 1
}

// Equal reports structural equality between two AttrVal values.
func (v AttrVal) Equal(other AttrVal) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindNull:
		return true
	case kindBool:
		return v.b == other.b
	case kindNumber:
		return v.n == other.n
	case kindString:
		return v.s == other.s
	case kindMap:
		return v.m.Equal(other.m)
	default:
		return false
	}
}

// String implements fmt.Stringer for debug/test output. It is not the
// typed string accessor — use Str for that.
func (v AttrVal) String() string {
	switch v.kind {
	case kindNull:
		return "null"
	case kindBool:
		return fmt.Sprintf("%t", v.b)
	case kindNumber:
		return fmt.Sprintf("%d", v.n)
	case kindString:
		return v.s
	case kindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s:%s", k, v.m[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "?"
	}
}
