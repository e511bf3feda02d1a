package templating

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/template_kit/value"
)

var leadingNumber = regexp.MustCompile(
	`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`,
)

// IntFilter coerces its input to an int64. Strings contribute their leading
// numeric prefix, floats are truncated toward zero, booleans give 0 or 1 and
// collections give 1 when non-empty. Anything unparsable gives 0.
func IntFilter(val any, _ ...any) (any, error) {
	return toInt(val), nil
}

func toInt(val any) int64 {
	switch t := val.(type) {
	case nil:
		return 0
	case value.Value:
		return toInt(t.Interface())
	case bool:
		if t {
			return 1
		}

		return 0
	case string:
		return parseInt(t)
	case []byte:
		return parseInt(string(t))
	case float32:
		return truncate(float64(t))
	case float64:
		return truncate(t)
	case fmt.Stringer:
		return parseInt(t.String())
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64
		}

		return int64(u)
	case reflect.Float32, reflect.Float64:
		return truncate(rv.Float())
	case reflect.String:
		return parseInt(rv.String())
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() > 0 {
			return 1
		}

		return 0
	default:
		return 0
	}
}

func parseInt(s string) int64 {
	s = strings.TrimSpace(s)

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		return 0
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}

	return truncate(f)
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// JSONDecodeFilter decodes a JSON document held in a string. Objects decode
// to map[string]any, arrays to []any, integral numbers to int64 and other
// numbers to float64. Invalid JSON decodes to nil.
func JSONDecodeFilter(val any, _ ...any) (any, error) {
	var raw []byte

	switch t := val.(type) {
	case string:
		raw = []byte(t)
	case []byte:
		raw = t
	case value.Value:
		raw = []byte(t.String())
	case nil:
		return nil, nil
	default:
		raw = []byte(fmt.Sprint(t))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, nil //nolint:nilerr // invalid documents decode to null
	}

	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, nil
	}

	return normalizeNumbers(out), nil
}

// normalizeNumbers turns json.Number leaves into int64 when the literal is
// integral and fits, float64 otherwise.
func normalizeNumbers(in any) any {
	switch t := in.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}

		f, _ := t.Float64()

		return f
	case map[string]any:
		for key, val := range t {
			t[key] = normalizeNumbers(val)
		}

		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeNumbers(val)
		}

		return t
	default:
		return in
	}
}
