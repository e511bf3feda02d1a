// Binary render expands a template file with variables taken from
// variable files, stamp info files and NAME=VALUE flags.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/byte4ever/template_kit/jinja"
	"github.com/byte4ever/template_kit/loader"
	"github.com/byte4ever/template_kit/templating"
)

const (
	engineSimple = "simple"
	engineJinja  = "jinja"
)

var version = "dev"

type renderFlags struct {
	template   string
	output     string
	engine     string
	varsFiles  []string
	stampFiles []string
	variables  []string
	executable bool
	logLevel   string
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(os.Stdout, os.Stderr),
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fl renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template file",
		Long: `Render reads a template file, fills it with variables and writes the result.

The simple engine substitutes {{ path }} tags and keeps unknown tags as they
are. The jinja engine supports conditionals, loops, filters and functions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(fl, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fl.template, "template", "", "Input template file path")
	flags.StringVar(&fl.output, "output", "", "Output file path (stdout if empty)")
	flags.StringVar(&fl.engine, "engine", engineSimple, "Template engine: simple or jinja")
	flags.StringArrayVar(&fl.varsFiles, "vars", nil, "YAML or JSON variables file (repeatable)")
	flags.StringArrayVar(&fl.stampFiles, "stamp_info_file", nil, "Stamp info file path (repeatable)")
	flags.StringArrayVar(&fl.variables, "variable", nil, "Variable in NAME=VALUE format (repeatable)")
	flags.BoolVar(&fl.executable, "executable", false, "Set executable bit on output file")
	flags.StringVar(&fl.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	_ = cmd.MarkFlagRequired("template") //nolint:errcheck // flag defined above

	return cmd
}

func run(fl renderFlags, stdout, stderr io.Writer) error {
	const errCtx = "rendering"

	logger, err := newLogger(stderr, fl.logLevel)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	m, err := loader.Sources{
		VarsFiles:   fl.varsFiles,
		StampFiles:  fl.stampFiles,
		Assignments: fl.variables,
	}.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	logger.Debug(
		"variables loaded",
		"count", len(m),
		"engine", fl.engine,
	)

	tp, err := newTemplate(fl, m, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	out, err := tp.Render()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := writeOutput(fl.output, out, fl.executable, stdout); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	logger.Info("template rendered", "template", fl.template, "output", fl.output)

	return nil
}

func newTemplate(
	fl renderFlags,
	m map[string]any,
	logger *slog.Logger,
) (*templating.Template, error) {
	switch fl.engine {
	case engineSimple:
		return templating.NewFile(
			fl.template, m, templating.WithLogger(logger),
		), nil
	case engineJinja:
		et := templating.NewEngineTemplate(
			jinja.New(), fl.template, m, templating.WithLogger(logger),
		)

		return et.Template, nil
	default:
		return nil, fmt.Errorf(
			"unknown engine %q, want %s or %s",
			fl.engine, engineSimple, engineJinja,
		)
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}),
	), nil
}

// writeOutput writes out to stdout when outPath is empty,
// otherwise replaces outPath atomically.
func writeOutput(
	outPath string,
	out string,
	executable bool,
	stdout io.Writer,
) error {
	const errCtx = "writing output"

	if outPath == "" {
		if _, err := io.WriteString(stdout, out); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if err := atomic.WriteFile(outPath, strings.NewReader(out)); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	var perm os.FileMode = 0o644
	if executable {
		perm = 0o755
	}

	if err := os.Chmod(outPath, perm); err != nil { //nolint:gosec // paths from CLI flags
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
