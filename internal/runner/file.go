package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/ibfgo/internal/interpreter"
	"github.com/retroenv/ibfgo/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ErrLineTooLong is reported when an input line exceeds the configured
// maximum line length. It is a concern of the line reading layer, not of the
// feed interpreter, but shares the error taxonomy for consistent reporting.
var ErrLineTooLong = errors.New("max line length exceeded")

// RunFile feeds a script line by line into the session. A loop construct may
// span multiple lines, but a loop still open after the last line is an
// unmatched loop start and fatal for the run. Any feed error aborts the run.
func RunFile(ctx context.Context, logger *log.Logger, sess *interpreter.Session,
	limits options.Session, r io.Reader) error {

	scanner := bufio.NewScanner(r)
	// The scanner buffer holds the line terminator too, so a line of exactly
	// the maximum length must still fit with a trailing CR LF.
	scanner.Buffer(make([]byte, 0, limits.MaxLineLength+2), limits.MaxLineLength+2)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		text := scanner.Text()
		if len(text) > limits.MaxLineLength {
			return fmt.Errorf("line %d: %w", line, ErrLineTooLong)
		}
		if err := sess.FeedLine(text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d: %w", line+1, ErrLineTooLong)
		}
		return fmt.Errorf("reading input: %w", err)
	}

	if err := sess.EndOfInput(); err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}

	logger.Debug("Script executed", log.Int("lines", line))
	return nil
}
