package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// Sources lists where variables come from. Load applies them in field
// order, later entries overriding earlier ones.
type Sources struct {
	VarsFiles   []string
	StampFiles  []string
	Assignments []string
}

// Load merges every source into one variable map.
func (src Sources) Load() (map[string]any, error) {
	const errCtx = "loading variables"

	out := make(map[string]any)

	for _, pa := range src.VarsFiles {
		m, err := LoadFile(pa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		for key, val := range m {
			out[key] = val
		}
	}

	stamps, err := LoadStamps(src.StampFiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	for key, val := range stamps {
		out[key] = val
	}

	assigned, err := ParseAssignments(src.Assignments, stamps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	for key, val := range assigned {
		out[key] = val
	}

	return out, nil
}

// LoadFile decodes a variables file. ".json" files are read as JSON,
// ".yaml" and ".yml" files as YAML. The document must be a mapping.
func LoadFile(pa string) (map[string]any, error) {
	const errCtx = "loading variables file"

	content, err := os.ReadFile(pa) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var m map[string]any

	switch strings.ToLower(filepath.Ext(pa)) {
	case ".json":
		err = json.Unmarshal(content, &m)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(bytes.NewReader(content)).Decode(&m)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf(
			"%s: %s: unsupported extension, want .json, .yaml or .yml",
			errCtx, pa,
		)
	}

	if err != nil {
		return nil, fmt.Errorf(
			"%s: decoding %s: %w",
			errCtx, pa, err,
		)
	}

	if m == nil {
		m = make(map[string]any)
	}

	return m, nil
}

// LoadStamps reads the files given with --stamp_info_file.
// Every "KEY VALUE" line becomes a top-level template
// variable and a {KEY} expansion for ParseAssignments. A
// later file overrides an earlier one; CRLF endings are
// accepted and lines holding no space are ignored.
func LoadStamps(
	infoFiles []string,
) (map[string]any, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]any)

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", errCtx, sf, err)
		}

		for line := range strings.Lines(string(content)) {
			key, val, ok := strings.Cut(strings.TrimRight(line, "\r\n"), " ")
			if !ok {
				continue
			}

			stamps[key] = val
		}
	}

	return stamps, nil
}

// ParseAssignments parses NAME=VALUE pairs. Each value is
// expanded against stamps using single-brace {KEY} tags;
// unknown stamps are left as they are.
func ParseAssignments(
	assignments []string,
	stamps map[string]any,
) (map[string]any, error) {
	const errCtx = "parsing assignments"

	out := make(map[string]any, len(assignments))

	for _, as := range assignments {
		name, val, ok := strings.Cut(as, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf(
				"%s: variable must be NAME=VALUE, got %q",
				errCtx, as,
			)
		}

		out[name] = expandStamps(val, stamps)
	}

	return out, nil
}

func expandStamps(val string, stamps map[string]any) string {
	if len(stamps) == 0 {
		return val
	}

	return fasttemplate.ExecuteStringStd(val, "{", "}", stamps)
}
