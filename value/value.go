package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// Invalid is the zero Kind. It stands for an absent or null value.
	Invalid Kind = iota
	String
	Number
	Boolean
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Value is a template variable value. The zero Value is invalid.
type Value struct {
	kind Kind
	num  numForm
	str  string
	i    int64
	u    uint64
	f    float64
	b    bool
	m    map[string]Value
	seq  []Value
}

// numForm records how a Number was set so it prints back exactly.
type numForm uint8

const (
	numFloat numForm = iota
	numInt
	numUint
	numFloat32
)

// Str returns a String value.
func Str(s string) Value {
	return Value{kind: String, str: s}
}

// Int returns an integral Number value.
func Int(i int64) Value {
	return Value{kind: Number, num: numInt, i: i}
}

// Uint returns an unsigned integral Number value.
func Uint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}

	return Value{kind: Number, num: numUint, u: u}
}

// Float returns a floating point Number value.
func Float(f float64) Value {
	return Value{kind: Number, f: f}
}

// Float32 returns a Number value printed with single precision, so
// Float32(0.1) renders as "0.1".
func Float32(f float32) Value {
	return Value{kind: Number, num: numFloat32, f: float64(f)}
}

// Bool returns a Boolean value.
func Bool(b bool) Value {
	return Value{kind: Boolean, b: b}
}

// Map returns a Mapping value holding a copy of m.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for key, val := range m {
		cp[key] = val
	}

	return Value{kind: Mapping, m: cp}
}

// Seq returns a Sequence value holding a copy of items.
func Seq(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)

	return Value{kind: Sequence, seq: cp}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds one of the five value variants.
func (v Value) IsValid() bool {
	return v.kind != Invalid
}

// Field looks up key in a Mapping. It returns false for any other kind.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}

	val, ok := v.m[key]

	return val, ok
}

// Len returns the number of entries of a Mapping or Sequence, the byte
// length of a String and zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Mapping:
		return len(v.m)
	case Sequence:
		return len(v.seq)
	case String:
		return len(v.str)
	default:
		return 0
	}
}

// Index returns the i-th element of a Sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Sequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}

	return v.seq[i], true
}

// Keys returns the keys of a Mapping in sorted order.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}

	keys := make([]string, 0, len(v.m))
	for key := range v.m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// String stringifies v for template output.
//
// Strings render as themselves and numbers in canonical decimal form,
// without exponent, so large floats print all their digits. NaN and the
// infinities render as "NAN", "INF" and "-INF". true renders as "1" and
// false as "". Sequences concatenate their elements with no separator;
// mappings concatenate their values in key order. Invalid values render
// as "".
func (v Value) String() string {
	switch v.kind {
	case String:
		return v.str
	case Number:
		return v.formatNumber()
	case Boolean:
		if v.b {
			return "1"
		}

		return ""
	case Sequence:
		var sb strings.Builder
		for _, item := range v.seq {
			sb.WriteString(item.String())
		}

		return sb.String()
	case Mapping:
		var sb strings.Builder
		for _, key := range v.Keys() {
			sb.WriteString(v.m[key].String())
		}

		return sb.String()
	default:
		return ""
	}
}

// Interface converts v back into plain Go data: string, int64, uint64
// (above math.MaxInt64 only), float64, bool, map[string]any and []any.
// Invalid values become nil. The result shares no memory with v.
func (v Value) Interface() any {
	switch v.kind {
	case String:
		return v.str
	case Number:
		switch v.num {
		case numInt:
			return v.i
		case numUint:
			return v.u
		case numFloat32:
			f, _ := strconv.ParseFloat(v.formatNumber(), 64)

			return f
		default:
			return v.f
		}
	case Boolean:
		return v.b
	case Mapping:
		out := make(map[string]any, len(v.m))
		for key, val := range v.m {
			out[key] = val.Interface()
		}

		return out
	case Sequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}

		return out
	default:
		return nil
	}
}

func (v Value) formatNumber() string {
	switch v.num {
	case numInt:
		return strconv.FormatInt(v.i, 10)
	case numUint:
		return strconv.FormatUint(v.u, 10)
	}

	switch {
	case math.IsNaN(v.f):
		return "NAN"
	case math.IsInf(v.f, 1):
		return "INF"
	case math.IsInf(v.f, -1):
		return "-INF"
	case v.num == numFloat32:
		return strconv.FormatFloat(v.f, 'f', -1, 32)
	default:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
}
