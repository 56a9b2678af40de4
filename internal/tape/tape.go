// Package tape implements the data memory of the tape machine: a fixed
// number of unsigned 8 bit cells and a circular data pointer, with one
// operation per instruction of the language. The tape has no knowledge of
// loop constructs, those are handled by the interpreter package.
package tape

import (
	"errors"
	"fmt"
	"io"
)

// DefaultSize is the canonical tape capacity in cells.
const DefaultSize = 30000

var (
	// ErrUnexpectedEndOfInput is returned by the input instruction when the
	// input byte source is exhausted.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrOutputFailure is returned by the output instruction when the output
	// byte sink rejects a write.
	ErrOutputFailure = errors.New("output failure")
)

// Tape is the data memory of one interpreter session. All cells are zero
// initialized and wrap around at 255, the data pointer wraps around at both
// ends of the tape. Byte input and output go through the injected
// capabilities, the tape itself performs no other I/O.
type Tape struct {
	cells   []byte
	pointer int

	input  io.ByteReader
	output io.ByteWriter
}

// New creates a zero filled tape with the data pointer on the first cell.
// A size of 0 or less selects DefaultSize.
func New(size int, input io.ByteReader, output io.ByteWriter) *Tape {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tape{
		cells:  make([]byte, size),
		input:  input,
		output: output,
	}
}

// Plus increments the cell at the data pointer, wrapping 255 to 0.
func (t *Tape) Plus() {
	t.cells[t.pointer]++
}

// Minus decrements the cell at the data pointer, wrapping 0 to 255.
func (t *Tape) Minus() {
	t.cells[t.pointer]--
}

// Previous moves the data pointer one cell to the left, wrapping from the
// first cell to the last one.
func (t *Tape) Previous() {
	if t.pointer == 0 {
		t.pointer = len(t.cells) - 1
		return
	}
	t.pointer--
}

// Next moves the data pointer one cell to the right, wrapping from the last
// cell to the first one.
func (t *Tape) Next() {
	if t.pointer == len(t.cells)-1 {
		t.pointer = 0
		return
	}
	t.pointer++
}

// Input reads one byte from the input capability into the cell at the data
// pointer. An exhausted source is reported as ErrUnexpectedEndOfInput, the
// tape never terminates the process itself.
func (t *Tape) Input() error {
	b, err := t.input.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return ErrUnexpectedEndOfInput
	case err != nil:
		return fmt.Errorf("reading input byte: %w", err)
	}
	t.cells[t.pointer] = b
	return nil
}

// Output writes the cell at the data pointer to the output capability.
func (t *Tape) Output() error {
	if err := t.output.WriteByte(t.cells[t.pointer]); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputFailure, err)
	}
	return nil
}

// Pointer returns the current data pointer position.
func (t *Tape) Pointer() int {
	return t.pointer
}

// Cell returns the value of the cell at the data pointer.
func (t *Tape) Cell() byte {
	return t.cells[t.pointer]
}

// CellAt returns the value of the cell at the given position.
func (t *Tape) CellAt(position int) byte {
	return t.cells[position]
}

// Size returns the tape capacity in cells.
func (t *Tape) Size() int {
	return len(t.cells)
}
