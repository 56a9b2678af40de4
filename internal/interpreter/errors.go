package interpreter

import "errors"

// Error kinds of the feed interpreter. All of them are reported to the
// immediate caller, a REPL style runner reports the message and continues
// with the next line while a file or command runner treats them as fatal.
var (
	// ErrUnmatchedLoopEnd is returned when a loop end is fed while no loop
	// construct is open.
	ErrUnmatchedLoopEnd = errors.New("unmatched loop end")

	// ErrUnmatchedLoopStart is reported when the input ends while at least
	// one loop construct is still open.
	ErrUnmatchedLoopStart = errors.New("unmatched loop start")

	// ErrLoopDepthExceeded is returned when opening a loop would exceed the
	// configured maximum nesting depth.
	ErrLoopDepthExceeded = errors.New("max loop depth exceeded")

	// ErrLoopBufferFull is returned when the pending loop buffer has reached
	// its configured capacity.
	ErrLoopBufferFull = errors.New("max loop buffer size exceeded")
)
