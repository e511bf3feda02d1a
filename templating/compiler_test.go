package templating_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/template_kit/templating"
	"github.com/byte4ever/template_kit/vars"
)

func compile(
	tb testing.TB,
	src string,
	m map[string]any,
) string {
	tb.Helper()

	out, err := templating.TagCompiler{}.Compile(src, vars.FromMap(m))
	require.NoError(tb, err)

	return out
}

func TestTagCompiler_substitution(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"name":  "World",
		"items": []string{"a", "b", "c"},
		"count": 123,
		"ratio": 0.5,
		"on":    true,
		"off":   false,
		"zero":  0,
		"empty": "",
		"none":  nil,
		"user": map[string]any{
			"profile": map[string]any{
				"email": "a@b.com",
			},
		},
	}

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"simple", "Hello, {{ name }}!", "Hello, World!"},
		{"no whitespace", "{{name}}", "World"},
		{"wide whitespace", "{{   name   }}", "World"},
		{"tabs and newlines", "{{\tname\n}}", "World"},
		{"nested path", "{{ user.profile.email }}", "a@b.com"},
		{"nested path tight", "{{user.profile.email}}", "a@b.com"},
		{"missing nested", "{{ user.profile.missing }}", "{{ user.profile.missing }}"},
		{"missing top level", "Hi {{ x }}", "Hi {{ x }}"},
		{"sequence", "{{ items }}", "abc"},
		{"integer", "{{ count }}", "123"},
		{"float", "{{ ratio }}", "0.5"},
		{"true", "[{{ on }}]", "[1]"},
		{"false", "[{{ off }}]", "[]"},
		{"zero", "[{{ zero }}]", "[0]"},
		{"empty string", "[{{ empty }}]", "[]"},
		{"null keeps tag", "{{ none }}", "{{ none }}"},
		{"multiple", "{{ name }}: {{ count }}", "World: 123"},
		{"invalid path chars", "{{ na-me }}", "{{ na-me }}"},
		{"leading dot", "{{ .name }}", "{{ .name }}"},
		{"trailing dot", "{{ name. }}", "{{ name. }}"},
		{"double dot", "{{ user..profile }}", "{{ user..profile }}"},
		{"empty tag", "{{}}", "{{}}"},
		{"blank tag", "{{   }}", "{{   }}"},
		{"unterminated", "{{ name", "{{ name"},
		{"lone closer", "name }}", "name }}"},
		{"stray opener before tag", "{{ x {{ name }}", "{{ x World"},
		{"triple brace", "{{{ name }}}", "{World}"},
		{"quad brace", "{{{{name}}", "{{World"},
		{"sequence index not addressable", "{{ items.0 }}", "{{ items.0 }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, compile(t, tt.src, m))
		})
	}
}

func TestTagCompiler_identity_without_tags(t *testing.T) {
	t.Parallel()

	m := map[string]any{"a": "x", "b": "y"}

	for _, src := range []string{
		"",
		"plain text",
		"<p>{ single }</p>",
		"a } b { c",
		strings.Repeat("lorem ipsum ", 100),
	} {
		assert.Equal(t, src, compile(t, src, m))
	}
}

func TestTagCompiler_no_recursive_expansion(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"evil":   "{{ secret }}",
		"secret": "leaked",
	}

	assert.Equal(t, "{{ secret }}", compile(t, "{{ evil }}", m))
}

func TestTagCompiler_whitespace_insensitive(t *testing.T) {
	t.Parallel()

	m := map[string]any{"key": "v"}

	want := compile(t, "{{key}}", m)
	assert.Equal(t, want, compile(t, "{{ key }}", m))
	assert.Equal(t, want, compile(t, "{{   key   }}", m))
}

func FuzzTagCompiler(f *testing.F) {
	f.Add("Hello {{name}}!", "name", "World")
	f.Add("{{a}}{{b}}", "a", "x")
	f.Add("no tags here", "key", "val")
	f.Add("{{", "k", "v")
	f.Add("}}", "k", "v")
	f.Add("{{{{ k }}}}", "k", "{{ k }}")
	f.Add("", "key", "val")

	f.Fuzz(func(
		t *testing.T,
		src string,
		key string,
		val string,
	) {
		out, err := templating.TagCompiler{}.Compile(
			src, vars.FromMap(map[string]any{key: val}),
		)
		require.NoError(t, err)

		if !strings.Contains(src, "{{") {
			assert.Equal(t, src, out)
		}
	})
}
