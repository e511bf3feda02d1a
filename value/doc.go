// Package value defines the closed set of variable values a template can
// hold: strings, numbers, booleans, mappings and sequences. Values nest to
// any depth and are immutable once built; FromAny deep-copies arbitrary Go
// data (including decoded JSON and YAML trees) into this representation.
//
// Value.String implements the stringification rules used when a value is
// substituted into template output.
package value
