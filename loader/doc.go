// Package loader gathers template variables from the places a render
// command gets them: YAML or JSON variable files, workspace stamp files
// ("KEY VALUE" lines) and NAME=VALUE assignments whose values may reference
// stamps with {KEY} placeholders.
package loader
