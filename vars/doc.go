// Package vars holds the variable store a template renders against. The
// store maps top-level names to value.Value entries and resolves
// dot-delimited paths such as "user.profile.email" by descending into
// nested mappings.
package vars
