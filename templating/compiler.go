package templating

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/template_kit/value"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// tagPath matches the inside of a tag: optional whitespace, dot separated
// identifiers, optional whitespace.
var tagPath = regexp.MustCompile(
	`^[ \t\n\r\f\v]*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)[ \t\n\r\f\v]*$`,
)

// Scope is the variable view a Compiler renders against. *vars.Store
// implements it.
type Scope interface {
	ResolvePath(path string) (value.Value, bool)
	Native() map[string]any
}

// Compiler turns template text and variables into output.
type Compiler interface {
	Compile(source string, scope Scope) (string, error)
}

// TagCompiler substitutes {{ path }} tags in a single pass. Tags whose path
// does not resolve are left verbatim, and substituted text is never scanned
// again.
type TagCompiler struct{}

// Compile implements Compiler. It never fails.
func (TagCompiler) Compile(source string, scope Scope) (string, error) {
	const errCtx = "compiling tags"

	out, err := fasttemplate.ExecuteFuncStringWithErr(
		source, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			return writeTag(w, tag, scope)
		},
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

// writeTag handles the text fasttemplate found between the first "{{" and
// the next "}}". When that text holds another "{{", only the last one can
// open a valid tag; everything before it is literal.
func writeTag(w io.Writer, tag string, scope Scope) (int, error) {
	raw := startTag + tag

	var written int

	if i := strings.LastIndex(raw, startTag); i > 0 {
		n, err := io.WriteString(w, raw[:i])
		written += n

		if err != nil {
			return written, err
		}

		raw = raw[i:]
	}

	repl := raw + endTag

	if m := tagPath.FindStringSubmatch(raw[len(startTag):]); m != nil {
		if val, ok := scope.ResolvePath(m[1]); ok {
			repl = val.String()
		}
	}

	n, err := io.WriteString(w, repl)

	return written + n, err
}
