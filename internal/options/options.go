// Package options contains the program options.
package options

// Program contains the command line options of the interpreter.
type Program struct {
	Command string // program string passed with -c, executed as one-shot command
	Input   string // script file to run, "-" or empty selects stdin

	Debug     bool // enable debug logging
	DumpState bool // dump the interpreter state after each line / at end of run
	Quiet     bool // quiet mode
	Version   bool // print version and exit
}

// Session defines the limits of one interpreter session.
type Session struct {
	TapeSize       int // number of cells on the tape
	LoopBufferSize int // maximum number of buffered loop characters
	MaxLoopDepth   int // maximum nesting of open loop constructs
	MaxLineLength  int // maximum length of one input line in bytes
}

// NewSession returns the session limits of the reference interpreter.
func NewSession() Session {
	return Session{
		TapeSize:       30000,
		LoopBufferSize: 30000,
		MaxLoopDepth:   1000,
		MaxLineLength:  1000,
	}
}
