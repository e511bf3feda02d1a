package templating

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// SourceProvider produces the current template text.
type SourceProvider interface {
	Load() (string, error)
}

// MemorySource is a SourceProvider holding the text in memory.
type MemorySource struct {
	text string
}

// NewMemorySource returns a MemorySource holding text.
func NewMemorySource(text string) *MemorySource {
	return &MemorySource{text: text}
}

// Set replaces the held text.
func (ms *MemorySource) Set(text string) {
	ms.text = text
}

// Load returns the held text. It never fails.
func (ms *MemorySource) Load() (string, error) {
	return ms.text, nil
}

// FileSource is a SourceProvider reading a file on every Load, so edits to
// the file show up on the next render. No handle is kept between calls.
type FileSource struct {
	path   string
	logger *slog.Logger

	stat     func(name string) (fs.FileInfo, error)
	readFile func(name string) ([]byte, error)
}

// NewFileSource returns a FileSource for path. An empty path is accepted
// here and reported as ErrConfiguration by Load. A nil logger discards
// output.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = discardLogger()
	}

	return &FileSource{
		path:     path,
		logger:   logger,
		stat:     os.Stat,
		readFile: os.ReadFile,
	}
}

// SetFile replaces the file path. Blank paths are rejected with
// ErrConfiguration and leave the current path in place.
func (fsrc *FileSource) SetFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf(
			"setting template file: %w: must provide filename",
			ErrConfiguration,
		)
	}

	fsrc.path = path

	return nil
}

// File returns the configured path.
func (fsrc *FileSource) File() string {
	return fsrc.path
}

// Load reads the whole file.
func (fsrc *FileSource) Load() (string, error) {
	const errCtx = "loading template file"

	if strings.TrimSpace(fsrc.path) == "" {
		return "", fmt.Errorf(
			"%s: %w: must provide filename",
			errCtx, ErrConfiguration,
		)
	}

	info, err := fsrc.stat(fsrc.path)
	if err != nil {
		fsrc.logger.Debug(
			"template file not accessible",
			"path", fsrc.path,
			"error", err,
		)

		return "", fmt.Errorf(
			"%s: %w: %s: %w",
			errCtx, ErrNotFound, fsrc.path, err,
		)
	}

	if info.IsDir() {
		fsrc.logger.Debug(
			"template path is a directory",
			"path", fsrc.path,
		)

		return "", fmt.Errorf(
			"%s: %w: %s is a directory",
			errCtx, ErrNotFound, fsrc.path,
		)
	}

	content, err := fsrc.readFile(fsrc.path)
	if err != nil {
		fsrc.logger.Debug(
			"template file read failed",
			"path", fsrc.path,
			"error", err,
		)

		kind := ErrRead
		if errors.Is(err, fs.ErrNotExist) ||
			errors.Is(err, fs.ErrPermission) {
			kind = ErrNotFound
		}

		return "", fmt.Errorf(
			"%s: %w: %s: %w",
			errCtx, kind, fsrc.path, err,
		)
	}

	return string(content), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
