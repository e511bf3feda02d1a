package templating

// EngineTemplate is a Template compiled by an external Engine. The filter,
// function and global registration methods of its DelegateCompiler are
// promoted.
type EngineTemplate struct {
	*Template
	*DelegateCompiler
}

// NewEngineTemplate returns an EngineTemplate reading its source from path
// at every render. opts may override the source, for instance with
// WithSource; WithCompiler is ignored.
func NewEngineTemplate(
	engine Engine,
	path string,
	m map[string]any,
	opts ...Option,
) *EngineTemplate {
	dc := NewDelegateCompiler(engine)

	all := make([]Option, 0, len(opts)+3)
	all = append(all, WithFile(path), WithVars(m))
	all = append(all, opts...)
	all = append(all, WithCompiler(dc))

	return &EngineTemplate{
		Template:         New(all...),
		DelegateCompiler: dc,
	}
}
