package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/retroenv/ibfgo/internal/interpreter"
	"github.com/retroenv/ibfgo/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const (
	promptMain = ">>> "
	promptCont = "... "

	historyFile = ".ibfgo_history"
)

// RunConsole runs the interactive read-eval-print loop. Each line is fed
// into the session as it is entered, a loop construct left open on one line
// continues on the next under the continuation prompt. Errors are reported
// and the loop keeps accepting lines, only the pending loop state is reset
// after a failure, tape and data pointer survive.
func RunConsole(logger *log.Logger, sess *interpreter.Session, opts options.Program,
	limits options.Session) error {
	fmt.Println(`Type "help", "exit" or "quit" for more information.`)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	loadHistory(ln, histPath)
	defer saveHistory(ln, histPath)

	for {
		prompt := promptMain
		if sess.Depth() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			sess.ResetPending()
			continue
		case err != nil:
			return fmt.Errorf("reading line: %w", err)
		}

		if sess.Depth() == 0 {
			handled, quit := handleMetaWord(line)
			if quit {
				return nil
			}
			if handled {
				continue
			}
		}

		if !feedConsoleLine(logger, sess, limits, line) {
			continue
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if opts.DumpState {
			sess.DumpState(os.Stderr)
		}
	}
}

// feedConsoleLine feeds one console line into the session, enforcing the
// maximum line length and the report-and-continue error policy. A too long
// line is rejected without feeding any of its characters, a feed error
// resets the pending loop state while tape and data pointer survive. It
// reports whether the line was accepted.
func feedConsoleLine(logger *log.Logger, sess *interpreter.Session,
	limits options.Session, line string) bool {

	if len(line) > limits.MaxLineLength {
		logger.Error("Error", log.Err(ErrLineTooLong))
		return false
	}

	if err := sess.FeedLine(line); err != nil {
		logger.Error("Error", log.Err(err))
		sess.ResetPending()
		return false
	}
	return true
}

// handleMetaWord processes the console meta words outside of open loop
// constructs. It reports whether the line was handled and whether the
// console should quit.
func handleMetaWord(line string) (handled, quit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "help":
		fmt.Println("Instructions: + - < > , . [ ]  all other characters are comments.")
		fmt.Println("A loop construct may span multiple lines and runs once it is closed.")
		fmt.Println(`Type "exit" or "quit" to leave.`)
		return true, false
	case "exit", "quit":
		return true, true
	default:
		return false, false
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func loadHistory(ln *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	_, _ = ln.ReadHistory(f)
	_ = f.Close()
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	_, _ = ln.WriteHistory(f)
	_ = f.Close()
}
