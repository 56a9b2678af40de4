package interpreter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dumpCells is the number of leading tape cells shown by DumpState.
const dumpCells = 10

// DumpState writes a diagnostic view of the interpreter state to w: the
// values of the first tape cells, a caret under the pointed-at cell if it is
// within the shown range, and the pointer, depth and pending buffer counters.
func (s *Session) DumpState(w io.Writer) {
	cells := dumpCells
	if s.tape.Size() < cells {
		cells = s.tape.Size()
	}

	var values, marker strings.Builder
	for i := 0; i < cells; i++ {
		field := strconv.Itoa(int(s.tape.CellAt(i))) + " "
		values.WriteString(field)

		switch {
		case i < s.tape.Pointer():
			marker.WriteString(strings.Repeat(" ", len(field)))
		case i == s.tape.Pointer():
			marker.WriteString("^")
		}
	}

	fmt.Fprintln(w, values.String())
	if s.tape.Pointer() < cells {
		fmt.Fprintln(w, marker.String())
	}
	fmt.Fprintf(w, "pointer=%d depth=%d pending=%d\n",
		s.tape.Pointer(), s.depth, len(s.pending))
}
