package jinja

import (
	"github.com/deicod/gojinja/runtime"

	"github.com/byte4ever/template_kit/templating"
)

// templateName is the name under which every source is parsed.
const templateName = "result"

// Engine renders template text with a gojinja environment.
type Engine struct {
	env     *runtime.Environment
	globals map[string]any
}

var _ templating.Engine = (*Engine)(nil)

// New returns an Engine with autoescaping disabled.
func New() *Engine {
	env := runtime.NewEnvironment()
	env.SetAutoescape(false)

	return &Engine{
		env:     env,
		globals: make(map[string]any),
	}
}

// Environment exposes the gojinja environment for settings this package
// does not wrap.
func (en *Engine) Environment() *runtime.Environment {
	return en.env
}

// Render parses source as an anonymous template and executes it against
// data merged over the registered globals. Parse and execution errors are
// returned as gojinja reports them.
func (en *Engine) Render(
	source string,
	data map[string]any,
) (string, error) {
	tmpl, err := en.env.NewTemplateWithName(source, templateName)
	if err != nil {
		return "", err
	}

	ctx := make(map[string]any, len(en.globals)+len(data))
	for key, val := range en.globals {
		ctx[key] = val
	}

	for key, val := range data {
		ctx[key] = val
	}

	return en.env.ExecuteToString(tmpl, ctx)
}

// RegisterFilter makes fn available as {{ value|name }}.
func (en *Engine) RegisterFilter(
	name string,
	fn templating.FilterFunc,
) {
	en.env.AddFilter(
		name,
		func(_ *runtime.Context, val any, args ...any) (any, error) {
			return fn(val, args...)
		},
	)
}

// RegisterFunction makes fn callable as {{ name(args) }}.
func (en *Engine) RegisterFunction(
	name string,
	fn templating.FunctionFunc,
) {
	en.env.AddGlobal(
		name,
		runtime.GlobalFunc(
			func(_ *runtime.Context, args ...any) (any, error) {
				return fn(args...)
			},
		),
	)
}

// AddGlobal makes val visible to every render as name. Render data with
// the same name takes precedence.
func (en *Engine) AddGlobal(name string, val any) {
	en.globals[name] = val
}
