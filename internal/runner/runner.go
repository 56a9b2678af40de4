// Package runner executes programs in the three run modes of the
// interpreter: interactive console, script file and one-shot command.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/retroenv/ibfgo/internal/interpreter"
	"github.com/retroenv/ibfgo/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Run creates a session bound to stdin/stdout and dispatches to the command,
// file or console runner. With no file and no command given, a terminal on
// stdin selects the interactive console while piped input runs as a script.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, limits options.Session) error {
	sess := interpreter.New(limits, bufio.NewReader(os.Stdin), byteWriter{os.Stdout})

	switch {
	case opts.Command != "":
		return runWithDump(logger, opts, sess, func() error {
			return RunCommand(sess, opts.Command)
		})

	case opts.Input != "" && opts.Input != "-":
		file, err := os.Open(opts.Input)
		if err != nil {
			return fmt.Errorf("opening file %s: %w", opts.Input, err)
		}
		defer func() { _ = file.Close() }()
		return runWithDump(logger, opts, sess, func() error {
			return RunFile(ctx, logger, sess, limits, file)
		})

	case term.IsTerminal(int(os.Stdin.Fd())):
		return RunConsole(logger, sess, opts, limits)

	default:
		return runWithDump(logger, opts, sess, func() error {
			return RunFile(ctx, logger, sess, limits, os.Stdin)
		})
	}
}

// PrintBanner prints interpreter and version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("ibfgo",
		log.String("version", buildinfo.Version(version, commit, date)),
		log.String("go", runtime.Version()),
		log.String("os", runtime.GOOS),
	)
}

// runWithDump runs fn and dumps the final interpreter state if requested.
func runWithDump(logger *log.Logger, opts options.Program, sess *interpreter.Session, fn func() error) error {
	err := fn()
	if opts.DumpState {
		sess.DumpState(os.Stderr)
	}
	if err == nil {
		logger.Debug("Run finished")
	}
	return err
}

// byteWriter adapts an io.Writer to the io.ByteWriter output capability.
// Output bytes are written unbuffered so that interactive programs show
// their output immediately.
type byteWriter struct {
	w io.Writer
}

func (b byteWriter) WriteByte(c byte) error {
	_, err := b.w.Write([]byte{c})
	return err
}
