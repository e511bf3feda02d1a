package templating

import "errors"

// Error kinds returned by file-backed sources. Match them with errors.Is.
var (
	// ErrConfiguration reports a missing or blank template file path.
	ErrConfiguration = errors.New("template configuration")

	// ErrNotFound reports a template path that is not an existing,
	// readable file.
	ErrNotFound = errors.New("template file not found")

	// ErrRead reports a template file whose content could not be read.
	ErrRead = errors.New("template file unreadable")
)
