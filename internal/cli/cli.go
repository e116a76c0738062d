// Package cli maps a convargs parse outcome onto process behavior: printing
// help, version, and diagnostic text, choosing exit codes, and handing a
// successful resolution to the host tool's conversion entrypoint.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stackvity/convargs/internal/cli/ui"
	"github.com/stackvity/convargs/pkg/convargs"
)

// Exit codes returned by Run. Help and version requests exit zero; usage
// errors are recoverable user mistakes; configuration errors mean the tool
// itself is wired up wrong.
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitConfig = 2
)

// Handler receives the outcome of a successful parse. This is the seam where
// the actual conversion logic of a host tool plugs in; the parser never reads
// or writes file contents itself.
type Handler interface {
	// OnDirectory is invoked in directory mode. The handler is expected to
	// enumerate the directory's files itself.
	OnDirectory(source string, flags map[string]bool) error
	// OnFile is invoked in file mode with both paths resolved.
	OnFile(source, target string, flags map[string]bool) error
}

// LogHandler is a Handler that only logs what a real conversion tool would
// do. It backs the fileconv demonstration binary.
type LogHandler struct {
	Logger *slog.Logger
	Out    io.Writer
}

// OnDirectory implements Handler.
func (h *LogHandler) OnDirectory(source string, flags map[string]bool) error {
	h.Logger.Info("directory mode resolved", slog.String("source", source))
	fmt.Fprintln(h.Out, ui.Summary(source, ""))
	return nil
}

// OnFile implements Handler.
func (h *LogHandler) OnFile(source, target string, flags map[string]bool) error {
	h.Logger.Info("file mode resolved",
		slog.String("source", source),
		slog.String("target", target),
		slog.Bool("convert", flags["convert"]),
		slog.Bool("translate", flags["translate"]))
	fmt.Fprintln(h.Out, ui.Summary(source, target))
	return nil
}

// Run performs one parse of args and maps the result onto process behavior.
// Informational text goes to stdout, diagnostics to stderr, and the returned
// exit code is ready for os.Exit.
func Run(p *convargs.Parser, args []string, h Handler, logger *slog.Logger, stdout, stderr io.Writer) int {
	log := logger.With(slog.String("run_id", uuid.NewString()))
	log.Debug("parsing arguments", slog.Int("count", len(args)))

	res, err := convargs.ParseGlobal(p, args)
	if err != nil {
		fmt.Fprintln(stderr, ui.Errorf("%v", err))
		if errors.Is(err, convargs.ErrConfigValidation) {
			log.Error("parser misconfigured", slog.Any("error", err))
			return ExitConfig
		}
		log.Warn("argument parsing failed", slog.Any("error", err))
		return ExitUsage
	}

	switch res.Outcome {
	case convargs.OutcomeShowHelp:
		fmt.Fprint(stdout, p.HelpText())
		return ExitOK
	case convargs.OutcomeShowVersion:
		fmt.Fprintln(stdout, p.VersionText())
		return ExitOK
	}

	if res.DirectoryMode {
		if err := h.OnDirectory(res.Source, res.Flags); err != nil {
			fmt.Fprintln(stderr, ui.Errorf("%v", err))
			log.Error("directory handler failed", slog.Any("error", err))
			return ExitUsage
		}
		return ExitOK
	}
	if err := h.OnFile(res.Source, res.Target, res.Flags); err != nil {
		fmt.Fprintln(stderr, ui.Errorf("%v", err))
		log.Error("file handler failed", slog.Any("error", err))
		return ExitUsage
	}
	return ExitOK
}
