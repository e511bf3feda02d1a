package value

import (
	"fmt"
	"reflect"
)

// number is satisfied by json.Number from both encoding/json and
// goccy/go-json.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// FromAny converts plain Go data into a Value.
//
// Scalars map onto their variant, maps of any key type become Mappings
// (keys are formatted with fmt.Sprint) and slices or arrays become
// Sequences. A nil input, nil pointer or nil interface gives an invalid
// Value. Anything else is formatted with fmt.Sprint into a String.
func FromAny(in any) Value {
	switch t := in.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return Str(t)
	case []byte:
		return Str(string(t))
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Uint(uint64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return Uint(t)
	case float32:
		return Float32(t)
	case float64:
		return Float(t)
	case number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}

		if f, err := t.Float64(); err == nil {
			return Float(f)
		}

		return Str(t.String())
	case map[string]any:
		m := make(map[string]Value, len(t))
		for key, val := range t {
			m[key] = FromAny(val)
		}

		return Value{kind: Mapping, m: m}
	case []any:
		seq := make([]Value, len(t))
		for i, item := range t {
			seq[i] = FromAny(item)
		}

		return Value{kind: Sequence, seq: seq}
	case []string:
		seq := make([]Value, len(t))
		for i, item := range t {
			seq[i] = Str(item)
		}

		return Value{kind: Sequence, seq: seq}
	case map[string]string:
		m := make(map[string]Value, len(t))
		for key, val := range t {
			m[key] = Str(val)
		}

		return Value{kind: Mapping, m: m}
	case fmt.Stringer:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Value{}
		}

		return Str(t.String())
	}

	return fromReflect(reflect.ValueOf(in))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}

		return FromAny(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return Value{}
		}

		m := make(map[string]Value, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = FromAny(iter.Value().Interface())
		}

		return Value{kind: Mapping, m: m}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}
		}

		seq := make([]Value, rv.Len())
		for i := range seq {
			seq[i] = FromAny(rv.Index(i).Interface())
		}

		return Value{kind: Sequence, seq: seq}
	case reflect.String:
		return Str(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint())
	case reflect.Float32:
		return Float32(float32(rv.Float()))
	case reflect.Float64:
		return Float(rv.Float())
	default:
		return Str(fmt.Sprint(rv.Interface()))
	}
}
