// Package jinja implements templating.Engine on top of the gojinja runtime,
// giving file or memory templates Jinja2 syntax: conditionals, loops,
// filters, functions and macros. Autoescaping is off; callers escape what
// they need to.
package jinja
