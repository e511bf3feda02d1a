// Package templating renders text templates from a variable store. A
// Template is assembled from a SourceProvider, which supplies the template
// text on every render (an in-memory string or a file re-read each time),
// and a Compiler, which turns that text plus the variables into output.
//
// TagCompiler substitutes "{{ path }}" tags with stringified variables and
// leaves unresolved tags untouched. DelegateCompiler hands the text and the
// full variable mapping to an external Engine supporting loops,
// conditionals, filters and functions.
package templating
