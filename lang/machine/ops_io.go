package machine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execRead handles READ: Arg1 = a value of kind Arg2 parsed from the next
// line of stdin. End-of-input yields nil for every requested type, and so
// does a line that is not a valid int when an int is requested; a bool
// line other than "true" (in any case) reads as false, and any line is a
// valid string. None of these is a fault.
func (m *Machine) execRead(ins *Instruction) error {
	line, atEOF, err := m.readLine()
	if err != nil {
		return err
	}

	var v Value
	switch {
	case atEOF && line == "":
		v = Nil
	case ins.Arg2.Name == "int":
		n, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if perr != nil {
			v = Nil
		} else {
			v = Int(n)
		}
	case ins.Arg2.Name == "bool":
		v = Bool(strings.EqualFold(strings.TrimSpace(line), "true"))
	case ins.Arg2.Name == "string":
		v = NewString(line)
	default:
		panic("machine: READ called with unknown type argument " + ins.Arg2.Name) // loader rejects any other type argument text
	}

	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, v)
}

// readLine reads one newline-terminated line from stdin, with the
// terminator stripped. atEOF is true when the stream ended, whether or not
// a final unterminated line was also returned.
func (m *Machine) readLine() (line string, atEOF bool, err error) {
	line, rerr := m.stdin.ReadString('\n')
	if rerr != nil {
		if !errors.Is(rerr, io.EOF) {
			return "", false, rerr
		}
		atEOF = true
	}
	line = strings.TrimRight(line, "\r\n")
	return line, atEOF, nil
}

// execWrite handles WRITE: print Arg1 to stdout. Nil prints as the empty
// string.
func (m *Machine) execWrite(ins *Instruction) error {
	v, err := m.symbol(ins.Arg1)
	if err != nil {
		return err
	}
	fmt.Fprint(m.stdout, v.String())
	return nil
}

// execDprint handles DPRINT: print Arg1 to stderr, for interactive
// debugging of a running program.
func (m *Machine) execDprint(ins *Instruction) error {
	v, err := m.symbol(ins.Arg1)
	if err != nil {
		return err
	}
	fmt.Fprint(m.stderr, v.String())
	return nil
}
