package value_test

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/template_kit/value"
)

func TestString_scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   value.Value
		want string
	}{
		{"string", value.Str("hello"), "hello"},
		{"empty string", value.Str(""), ""},
		{"int", value.Int(123), "123"},
		{"negative int", value.Int(-7), "-7"},
		{"zero", value.Int(0), "0"},
		{"float", value.Float(1.5), "1.5"},
		{"whole float", value.Float(3), "3"},
		{"float32", value.Float32(0.1), "0.1"},
		{"max uint64", value.Uint(math.MaxUint64), "18446744073709551615"},
		{"small uint", value.Uint(7), "7"},
		{"large float", value.Float(1e21), "1000000000000000000000"},
		{"nan", value.Float(math.NaN()), "NAN"},
		{"inf", value.Float(math.Inf(1)), "INF"},
		{"negative inf", value.Float(math.Inf(-1)), "-INF"},
		{"true", value.Bool(true), "1"},
		{"false", value.Bool(false), ""},
		{"invalid", value.Value{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestString_sequence_concatenates(t *testing.T) {
	t.Parallel()

	seq := value.Seq(
		value.Str("a"),
		value.Int(1),
		value.Bool(true),
		value.Bool(false),
		value.Seq(value.Str("x"), value.Str("y")),
	)

	assert.Equal(t, "a11xy", seq.String())
	assert.Empty(t, value.Seq().String())
}

func TestString_mapping_in_key_order(t *testing.T) {
	t.Parallel()

	m := value.Map(map[string]value.Value{
		"b": value.Str("2"),
		"a": value.Str("1"),
		"c": value.Str("3"),
	})

	assert.Equal(t, "123", m.String())
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestFromAny_nested(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"user": map[string]any{
			"name":  "alice",
			"age":   30,
			"admin": false,
			"tags":  []string{"x", "y"},
		},
		"ratio": 0.25,
		"none":  nil,
	}

	got := value.FromAny(in)
	require.Equal(t, value.Mapping, got.Kind())

	user, ok := got.Field("user")
	require.True(t, ok)
	assert.Equal(t, value.Mapping, user.Kind())

	name, ok := user.Field("name")
	require.True(t, ok)
	assert.Equal(t, "alice", name.String())

	age, ok := user.Field("age")
	require.True(t, ok)
	assert.Equal(t, value.Number, age.Kind())
	assert.Equal(t, "30", age.String())

	tags, ok := user.Field("tags")
	require.True(t, ok)
	assert.Equal(t, value.Sequence, tags.Kind())
	assert.Equal(t, 2, tags.Len())

	first, ok := tags.Index(0)
	require.True(t, ok)
	assert.Equal(t, "x", first.String())

	_, ok = tags.Index(2)
	assert.False(t, ok)

	none, ok := got.Field("none")
	require.True(t, ok)
	assert.False(t, none.IsValid())
}

func TestFromAny_does_not_alias_input(t *testing.T) {
	t.Parallel()

	in := map[string]any{"k": "before"}
	list := []any{"a"}

	m := value.FromAny(in)
	s := value.FromAny(list)

	in["k"] = "after"
	list[0] = "b"

	k, ok := m.Field("k")
	require.True(t, ok)
	assert.Equal(t, "before", k.String())
	assert.Equal(t, "a", s.String())
}

func TestFromAny_json_number(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", value.FromAny(json.Number("42")).String())
	assert.Equal(t, "4.5", value.FromAny(json.Number("4.5")).String())
}

func TestFromAny_reflect_types(t *testing.T) {
	t.Parallel()

	type label string

	in := map[any]any{
		1:   []int{1, 2},
		"b": [2]label{"p", "q"},
	}

	got := value.FromAny(in)
	require.Equal(t, value.Mapping, got.Kind())

	one, ok := got.Field("1")
	require.True(t, ok)
	assert.Equal(t, "12", one.String())

	b, ok := got.Field("b")
	require.True(t, ok)
	assert.Equal(t, "pq", b.String())

	var nilPtr *int
	assert.False(t, value.FromAny(nilPtr).IsValid())
}

func TestFromAny_exact_numbers(t *testing.T) {
	t.Parallel()

	got := value.FromAny(map[string]any{
		"f32":  float32(0.1),
		"u64":  uint64(math.MaxUint64),
		"uint": uint(42),
	})

	f32, ok := got.Field("f32")
	require.True(t, ok)
	assert.Equal(t, "0.1", f32.String())
	assert.InDelta(t, 0.1, f32.Interface(), 1e-15)

	u64, ok := got.Field("u64")
	require.True(t, ok)
	assert.Equal(t, "18446744073709551615", u64.String())
	assert.Equal(t, uint64(math.MaxUint64), u64.Interface())

	small, ok := got.Field("uint")
	require.True(t, ok)
	assert.Equal(t, int64(42), small.Interface())

	type celsius float32

	assert.Equal(t, "0.1", value.FromAny(celsius(0.1)).String())
}

func TestFromAny_nil_stringer_pointer(t *testing.T) {
	t.Parallel()

	var u *url.URL

	got := value.FromAny(u)
	assert.False(t, got.IsValid())
	assert.Empty(t, got.String())

	link := value.FromAny(&url.URL{Scheme: "https", Host: "example.com"})
	assert.Equal(t, "https://example.com", link.String())
}

func TestInterface_round_trip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"s": "x",
		"n": int64(3),
		"f": 1.25,
		"b": true,
		"l": []any{"a", int64(1)},
		"m": map[string]any{"k": "v"},
	}

	assert.Equal(t, in, value.FromAny(in).Interface())
	assert.Nil(t, value.Value{}.Interface())
}

func TestMap_copies_input(t *testing.T) {
	t.Parallel()

	src := map[string]value.Value{"a": value.Str("1")}
	m := value.Map(src)
	src["a"] = value.Str("2")

	a, ok := m.Field("a")
	require.True(t, ok)
	assert.Equal(t, "1", a.String())

	_, ok = value.Str("x").Field("a")
	assert.False(t, ok)
}
