package templating

import (
	"fmt"
	"io"

	"github.com/byte4ever/template_kit/value"
)

// Index is a page-level Template helper. It keeps a "meta" mapping and
// accumulates body fragments under "content"; Render joins the fragments
// into a single string before compiling.
type Index struct {
	*Template
}

// NewIndex wraps tp and initialises an empty "meta" mapping.
func NewIndex(tp *Template) *Index {
	tp.Set("meta", value.Map(nil))

	return &Index{Template: tp}
}

// Title sets meta.title. Empty titles are ignored.
func (ix *Index) Title(title string) *Index {
	if title == "" {
		return ix
	}

	fields := make(map[string]value.Value)

	if meta, ok := ix.Get("meta"); ok {
		for _, key := range meta.Keys() {
			fields[key], _ = meta.Field(key)
		}
	}

	fields["title"] = value.Str(title)
	ix.Set("meta", value.Map(fields))

	return ix
}

// AddContent appends a fragment to "content". A scalar already stored under
// "content" becomes the first fragment.
func (ix *Index) AddContent(fragment any) {
	var parts []value.Value

	if cur, ok := ix.Get("content"); ok {
		if cur.Kind() == value.Sequence {
			for i := range cur.Len() {
				item, _ := cur.Index(i)
				parts = append(parts, item)
			}
		} else {
			parts = append(parts, cur)
		}
	}

	parts = append(parts, value.FromAny(fragment))
	ix.Set("content", value.Seq(parts...))
}

// Render appends the fragments that stringify to a non-empty text,
// flattens "content" into one string and renders. "0" counts as non-empty.
func (ix *Index) Render(fragments ...any) (string, error) {
	for _, fragment := range fragments {
		if v := value.FromAny(fragment); v.IsValid() && v.String() != "" {
			ix.AddContent(v)
		}
	}

	if content, ok := ix.Get("content"); ok {
		ix.Set("content", content.String())
	}

	return ix.Template.Render()
}

// Execute renders like Render and writes the result into w.
func (ix *Index) Execute(w io.Writer, fragments ...any) error {
	out, err := ix.Render(fragments...)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing rendered index: %w", err)
	}

	return nil
}
