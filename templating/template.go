package templating

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/byte4ever/template_kit/value"
	"github.com/byte4ever/template_kit/vars"
)

// Template pairs a SourceProvider and a Compiler over a variable store.
// Each render loads the current source and compiles it against the current
// variables; there is no caching between renders. A Template must not be
// mutated from several goroutines at once.
type Template struct {
	store    *vars.Store
	source   SourceProvider
	compiler Compiler
	logger   *slog.Logger
}

type options struct {
	text       string
	file       string
	fileBacked bool
	vars       map[string]any
	provider   SourceProvider
	compiler   Compiler
	logger     *slog.Logger
}

// Option configures a Template built by New.
type Option func(*options)

// WithSource sets an in-memory source text. It overrides an earlier
// WithFile.
func WithSource(text string) Option {
	return func(o *options) {
		o.text = text
		o.fileBacked = false
	}
}

// WithFile makes the Template read its source from path at every render.
// An empty path is accepted; rendering then fails with ErrConfiguration
// until SetFile is called. It overrides an earlier WithSource.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
		o.fileBacked = true
	}
}

// WithVars seeds the variable store.
func WithVars(m map[string]any) Option {
	return func(o *options) {
		o.vars = m
	}
}

// WithSourceProvider installs a custom SourceProvider. It takes precedence
// over WithSource and WithFile.
func WithSourceProvider(sp SourceProvider) Option {
	return func(o *options) {
		o.provider = sp
	}
}

// WithCompiler replaces the default TagCompiler.
func WithCompiler(c Compiler) Option {
	return func(o *options) {
		o.compiler = c
	}
}

// WithLogger sets the logger used on failure paths.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New builds a Template. Without options it has an empty in-memory source,
// no variables and a TagCompiler.
func New(opts ...Option) *Template {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = discardLogger()
	}

	tp := &Template{
		store:    vars.FromMap(o.vars),
		source:   o.provider,
		compiler: o.compiler,
		logger:   o.logger,
	}

	if tp.source == nil {
		if o.fileBacked {
			tp.source = NewFileSource(o.file, o.logger)
		} else {
			tp.source = NewMemorySource(o.text)
		}
	}

	if tp.compiler == nil {
		tp.compiler = TagCompiler{}
	}

	return tp
}

// NewMemory returns a Template substituting tags in text.
func NewMemory(text string, m map[string]any) *Template {
	return New(WithSource(text), WithVars(m))
}

// NewFile returns a Template substituting tags in the content of path,
// re-read on every render.
func NewFile(path string, m map[string]any, opts ...Option) *Template {
	return New(append([]Option{WithFile(path), WithVars(m)}, opts...)...)
}

// Set inserts or overwrites a top-level variable.
func (tp *Template) Set(key string, val any) {
	tp.store.Set(key, value.FromAny(val))
}

// SetAll sets every entry of m.
func (tp *Template) SetAll(m map[string]any) {
	for key, val := range m {
		tp.Set(key, val)
	}
}

// Has reports whether a top-level variable named key is set.
func (tp *Template) Has(key string) bool {
	return tp.store.Has(key)
}

// Get returns a top-level variable.
func (tp *Template) Get(key string) (value.Value, bool) {
	return tp.store.Get(key)
}

// Vars returns a snapshot of the variables.
func (tp *Template) Vars() map[string]value.Value {
	return tp.store.All()
}

// Store exposes the variable store.
func (tp *Template) Store() *vars.Store {
	return tp.store
}

// Compiler returns the active Compiler.
func (tp *Template) Compiler() Compiler {
	return tp.compiler
}

// SetSource switches the Template to the in-memory text.
func (tp *Template) SetSource(text string) {
	if ms, ok := tp.source.(*MemorySource); ok {
		ms.Set(text)

		return
	}

	tp.source = NewMemorySource(text)
}

// SetFile switches the Template to reading path at every render. A blank
// path is rejected with ErrConfiguration and the current source is kept.
func (tp *Template) SetFile(path string) error {
	if fsrc, ok := tp.source.(*FileSource); ok {
		return fsrc.SetFile(path)
	}

	fsrc := NewFileSource("", tp.logger)
	if err := fsrc.SetFile(path); err != nil {
		return err
	}

	tp.source = fsrc

	return nil
}

// File returns the template file path, or "" for non file-backed sources.
func (tp *Template) File() string {
	if fsrc, ok := tp.source.(*FileSource); ok {
		return fsrc.File()
	}

	return ""
}

// Source loads the current source text.
func (tp *Template) Source() (string, error) {
	return tp.source.Load()
}

// Render loads the source and compiles it. Source errors are wrapped;
// compiler errors are returned unchanged. Nothing is returned alongside an
// error.
func (tp *Template) Render() (string, error) {
	const errCtx = "rendering template"

	src, err := tp.source.Load()
	if err != nil {
		tp.logger.Debug("template source unavailable", "error", err)

		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	out, err := tp.compiler.Compile(src, tp.store)
	if err != nil {
		tp.logger.Debug("template compilation failed", "error", err)

		return "", err
	}

	return out, nil
}

// Execute renders the Template into w.
func (tp *Template) Execute(w io.Writer) error {
	out, err := tp.Render()
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing rendered template: %w", err)
	}

	return nil
}
