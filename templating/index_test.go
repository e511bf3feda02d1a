package templating_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/template_kit/templating"
	"github.com/byte4ever/template_kit/value"
)

func TestIndex_title_and_content(t *testing.T) {
	t.Parallel()

	ix := templating.NewIndex(templating.NewMemory(
		"<title>{{ meta.title }}</title><body>{{ content }}</body>",
		nil,
	))

	ix.Title("Home").Title("")
	ix.AddContent("<p>one</p>")

	out, err := ix.Render("<p>two</p>", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "<title>Home</title><body><p>one</p><p>two</p></body>", out)

	content, ok := ix.Get("content")
	require.True(t, ok)
	assert.Equal(t, value.String, content.Kind())
}

func TestIndex_scalar_content_becomes_first_fragment(t *testing.T) {
	t.Parallel()

	tp := templating.NewMemory("{{ content }}", map[string]any{"content": "a"})
	ix := templating.NewIndex(tp)
	ix.AddContent("b")

	var buf bytes.Buffer
	require.NoError(t, ix.Execute(&buf, "c"))
	assert.Equal(t, "abc", buf.String())
}

func TestIndex_meta_starts_empty(t *testing.T) {
	t.Parallel()

	ix := templating.NewIndex(templating.NewMemory("[{{ meta }}]", nil))

	meta, ok := ix.Get("meta")
	require.True(t, ok)
	assert.Equal(t, value.Mapping, meta.Kind())

	out, err := ix.Render()
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestIndex_render_keeps_zero_fragment(t *testing.T) {
	t.Parallel()

	ix := templating.NewIndex(templating.NewMemory("<{{ content }}>", nil))

	out, err := ix.Render("0", "", 0, false)
	require.NoError(t, err)
	assert.Equal(t, "<00>", out)
}
