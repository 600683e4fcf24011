package machine

import (
	"fmt"
	"strings"
)

// execBreak dumps the machine's current state to stderr: the instruction
// position, the contents of each frame, the depth of the call stack and the
// contents of the data stack. TF
// and LF are reported as "none" when absent, "empty" when present but
// holding no variables, and their contents otherwise — unlike the frame
// dump this was adapted from, which printed "empty" for a present-but-
// nonempty temporary frame too.
func (m *Machine) execBreak(pc int) error {
	fmt.Fprintf(m.stderr, "Position: %d\n", pc+1)
	fmt.Fprintf(m.stderr, "GF: %s\n", dumpFrame(m.frames.gf))
	fmt.Fprintf(m.stderr, "TF: %s\n", dumpOptionalFrame(m.frames.tf))
	var top *Frame
	if n := len(m.frames.lf); n > 0 {
		top = m.frames.lf[n-1]
	}
	fmt.Fprintf(m.stderr, "LF: %s\n", dumpOptionalFrame(top))
	fmt.Fprintf(m.stderr, "Calls: %d\n", len(m.calls.pcs))
	fmt.Fprintf(m.stderr, "Stack:\n%s", dumpDataStack(m.data.vals))
	return nil
}

// dumpDataStack renders one "value of kind" line per data-stack element,
// bottom of stack first, matching print_internal's iteration order.
func dumpDataStack(vals []Value) string {
	if len(vals) == 0 {
		return "  empty\n"
	}
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "  %s of %s\n", v.String(), v.Type())
	}
	return b.String()
}

func dumpOptionalFrame(f *Frame) string {
	if f == nil {
		return "none"
	}
	return dumpFrame(f)
}

func dumpFrame(f *Frame) string {
	names := f.sortedNames()
	if len(names) == 0 {
		return "empty"
	}
	parts := make([]string, len(names))
	for i, name := range names {
		v, _ := f.get(name)
		parts[i] = fmt.Sprintf("%s=%s(%s)", name, v.String(), v.Type())
	}
	return strings.Join(parts, ", ")
}
