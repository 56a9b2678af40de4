package runner

import (
	"fmt"

	"github.com/retroenv/ibfgo/internal/interpreter"
)

// RunCommand executes a one-shot command string. The whole string must
// contain balanced loop delimiters, verified before any instruction runs,
// an imbalance fails fast without touching the tape.
func RunCommand(sess *interpreter.Session, command string) error {
	if err := sess.FeedString(command); err != nil {
		return fmt.Errorf("executing command: %w", err)
	}
	return nil
}
