// Package token defines the instruction character set of the tape-machine language.
package token

// Instruction characters. Any other character is treated as commentary.
const (
	Plus      = '+' // increment the cell at the data pointer
	Minus     = '-' // decrement the cell at the data pointer
	Previous  = '<' // move the data pointer one cell to the left
	Next      = '>' // move the data pointer one cell to the right
	Input     = ',' // read one byte into the cell at the data pointer
	Output    = '.' // write the cell at the data pointer as one byte
	LoopStart = '[' // open a loop construct
	LoopEnd   = ']' // close a loop construct
)

// IsInstruction reports whether c is one of the eight instruction characters.
func IsInstruction(c byte) bool {
	switch c {
	case Plus, Minus, Previous, Next, Input, Output, LoopStart, LoopEnd:
		return true
	default:
		return false
	}
}
