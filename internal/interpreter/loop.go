package interpreter

import "github.com/retroenv/ibfgo/internal/token"

// runPending replays the buffered loop construct against the live tape. The
// buffer holds one balanced construct starting with a loop start and ending
// with its matching loop end. A cursor walks the buffer while an explicit
// stack records the positions of the currently open loop starts: a loop end
// jumps back behind the matching start while the cell at the data pointer is
// non-zero and exits the loop level once it is zero. The executor performs
// no I/O beyond what input/output instructions inside the body trigger and
// does not detect non-terminating loops.
func (s *Session) runPending() error {
	if s.tape.Cell() == 0 {
		// The outer loop body never runs, nothing to replay.
		return nil
	}

	stack := make([]int, 0, s.limits.MaxLoopDepth)
	cursor := 0
	for cursor < len(s.pending) {
		switch c := s.pending[cursor]; c {
		case token.LoopStart:
			if s.tape.Cell() == 0 {
				cursor = s.skipLoop(cursor)
				continue
			}
			stack = append(stack, cursor)
			cursor++

		case token.LoopEnd:
			if s.tape.Cell() != 0 {
				// Re-enter the loop body behind the matching start.
				cursor = stack[len(stack)-1] + 1
				continue
			}
			stack = stack[:len(stack)-1]
			cursor++

		default:
			if err := s.execute(c); err != nil {
				return err
			}
			cursor++
		}
	}
	return nil
}

// skipLoop returns the cursor position just past the loop construct starting
// at start, scanning over nested constructs without executing anything.
func (s *Session) skipLoop(start int) int {
	depth := 0
	for i := start; i < len(s.pending); i++ {
		switch s.pending[i] {
		case token.LoopStart:
			depth++
		case token.LoopEnd:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	// Unreachable for a balanced buffer.
	return len(s.pending)
}
