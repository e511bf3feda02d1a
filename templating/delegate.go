package templating

// FilterFunc transforms a value inside an engine template, as in
// {{ value|name(args) }}.
type FilterFunc func(val any, args ...any) (any, error)

// FunctionFunc is callable from an engine template, as in
// {{ name(args) }}.
type FunctionFunc func(args ...any) (any, error)

// Engine is a full-featured template engine the DelegateCompiler hands
// compilation off to. Render receives the raw template text and the whole
// variable mapping.
type Engine interface {
	Render(source string, data map[string]any) (string, error)
	RegisterFilter(name string, fn FilterFunc)
	RegisterFunction(name string, fn FunctionFunc)
	AddGlobal(name string, val any)
}

// DelegateCompiler is a Compiler that performs no tag handling of its own.
// Output and errors of the engine are returned as they are.
type DelegateCompiler struct {
	engine Engine
}

// NewDelegateCompiler returns a DelegateCompiler over engine with the "int"
// and "json_decode" filters registered.
func NewDelegateCompiler(engine Engine) *DelegateCompiler {
	engine.RegisterFilter("int", IntFilter)
	engine.RegisterFilter("json_decode", JSONDecodeFilter)

	return &DelegateCompiler{engine: engine}
}

// Engine returns the underlying engine.
func (dc *DelegateCompiler) Engine() Engine {
	return dc.engine
}

// RegisterFilter forwards to the engine.
func (dc *DelegateCompiler) RegisterFilter(name string, fn FilterFunc) {
	dc.engine.RegisterFilter(name, fn)
}

// RegisterFunction forwards to the engine.
func (dc *DelegateCompiler) RegisterFunction(name string, fn FunctionFunc) {
	dc.engine.RegisterFunction(name, fn)
}

// AddGlobal forwards to the engine.
func (dc *DelegateCompiler) AddGlobal(name string, val any) {
	dc.engine.AddGlobal(name, val)
}

// Compile implements Compiler.
func (dc *DelegateCompiler) Compile(source string, scope Scope) (string, error) {
	return dc.engine.Render(source, scope.Native())
}
