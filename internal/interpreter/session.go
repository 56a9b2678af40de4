// Package interpreter implements the incremental feed interpreter of the
// tape-machine language. Characters are consumed one at a time: instructions
// outside of a loop construct execute immediately against the tape, while an
// open loop defers execution and buffers its body until the construct closes,
// which allows a loop to span multiple REPL lines.
package interpreter

import (
	"io"

	"github.com/retroenv/ibfgo/internal/options"
	"github.com/retroenv/ibfgo/internal/tape"
	"github.com/retroenv/ibfgo/internal/token"
)

// Session is one live interpreter instance: the tape with its data pointer,
// the pending loop buffer and the unmatched depth counter. A session is
// created once per run and is not safe for concurrent use, each feed call
// runs to completion before the next character is processed.
type Session struct {
	tape   *tape.Tape
	limits options.Session

	pending []byte // buffered characters of the currently open loop construct
	depth   int    // unmatched loop starts since pending was last empty
}

// New creates a session with the given limits and byte I/O capabilities.
func New(limits options.Session, input io.ByteReader, output io.ByteWriter) *Session {
	return &Session{
		tape:   tape.New(limits.TapeSize, input, output),
		limits: limits,
	}
}

// Feed consumes a single character. Instructions outside of an open loop
// construct execute immediately, once a loop start has been seen characters
// are buffered until the construct closes and is then run to completion.
// Non-instruction characters are ignored as commentary.
func (s *Session) Feed(c byte) error {
	if s.depth == 0 {
		return s.feedImmediate(c)
	}
	return s.feedBuffered(c)
}

// FeedLine feeds every character of one input line, in order. Loop state
// persists across calls, an unterminated loop construct is legitimate state
// between lines of a REPL session.
func (s *Session) FeedLine(line string) error {
	for i := 0; i < len(line); i++ {
		if err := s.Feed(line[i]); err != nil {
			return err
		}
	}
	return nil
}

// FeedString executes a one-shot command string. Unlike line feeding the
// whole string must contain balanced loop delimiters, the balance is
// verified before any instruction executes.
func (s *Session) FeedString(command string) error {
	if err := CheckBalanced(command); err != nil {
		return err
	}
	return s.FeedLine(command)
}

// CheckBalanced verifies that all loop constructs in the program string are
// balanced, failing fast without executing anything.
func CheckBalanced(program string) error {
	depth := 0
	for i := 0; i < len(program); i++ {
		switch program[i] {
		case token.LoopStart:
			depth++
		case token.LoopEnd:
			if depth == 0 {
				return ErrUnmatchedLoopEnd
			}
			depth--
		}
	}
	if depth != 0 {
		return ErrUnmatchedLoopStart
	}
	return nil
}

// EndOfInput verifies that no loop construct is left open after the last
// character of a script or command has been fed. A file runner treats the
// returned ErrUnmatchedLoopStart as fatal for the run. The pending state is
// kept so that a REPL can continue feeding the open construct.
func (s *Session) EndOfInput() error {
	if s.depth != 0 {
		return ErrUnmatchedLoopStart
	}
	return nil
}

// ResetPending discards the buffered loop construct and closes all open
// loops. Tape and data pointer are left untouched, a REPL calls this after
// reporting a syntax error so the next line starts from a clean parse state.
func (s *Session) ResetPending() {
	s.pending = s.pending[:0]
	s.depth = 0
}

// Depth returns the number of currently open, not yet closed loop starts.
func (s *Session) Depth() int {
	return s.depth
}

// Tape returns the tape of the session.
func (s *Session) Tape() *tape.Tape {
	return s.tape
}

// feedImmediate dispatches a character while no loop construct is open.
func (s *Session) feedImmediate(c byte) error {
	switch c {
	case token.LoopStart:
		return s.openLoop()
	case token.LoopEnd:
		return ErrUnmatchedLoopEnd
	default:
		return s.execute(c)
	}
}

// feedBuffered records a character while a loop construct is open. Closing
// the outermost loop runs the buffered construct to completion, the buffer
// is reset afterwards regardless of the execution outcome.
func (s *Session) feedBuffered(c byte) error {
	switch c {
	case token.LoopStart:
		return s.openLoop()
	case token.LoopEnd:
		s.depth--
		if err := s.enqueue(c); err != nil {
			return err
		}
		if s.depth > 0 {
			return nil
		}
		err := s.runPending()
		s.pending = s.pending[:0]
		return err
	default:
		if !token.IsInstruction(c) {
			return nil
		}
		return s.enqueue(c)
	}
}

// execute runs a single non-loop instruction against the tape.
func (s *Session) execute(c byte) error {
	switch c {
	case token.Plus:
		s.tape.Plus()
	case token.Minus:
		s.tape.Minus()
	case token.Previous:
		s.tape.Previous()
	case token.Next:
		s.tape.Next()
	case token.Input:
		return s.tape.Input()
	case token.Output:
		return s.tape.Output()
	}
	return nil
}

// openLoop opens one more loop construct and records its start token.
func (s *Session) openLoop() error {
	if s.depth == s.limits.MaxLoopDepth {
		return ErrLoopDepthExceeded
	}
	s.depth++
	return s.enqueue(token.LoopStart)
}

// enqueue appends one character to the pending loop buffer.
func (s *Session) enqueue(c byte) error {
	if len(s.pending) == s.limits.LoopBufferSize {
		return ErrLoopBufferFull
	}
	s.pending = append(s.pending, c)
	return nil
}
