package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/opcode"
)

// buildLabels makes a single pass over instrs, which must already be sorted
// by Order, recording the dense index of each LABEL instruction under its
// name. A label name used twice is a SEMANTIC error.
func buildLabels(instrs []Instruction) (map[string]int, error) {
	labels := make(map[string]int, len(instrs))
	for i, ins := range instrs {
		if ins.Op != opcode.LABEL {
			continue
		}
		name := ins.Arg1.Name
		if _, ok := labels[name]; ok {
			return nil, ipperr.New(ipperr.Semantic, "label %q already defined", name)
		}
		labels[name] = i
	}
	return labels, nil
}

// lookupLabel resolves a label name to its instruction index. Jumping or
// calling an undefined label is a SEMANTIC error.
func lookupLabel(labels map[string]int, name string) (int, error) {
	idx, ok := labels[name]
	if !ok {
		return 0, ipperr.New(ipperr.Semantic, "label %q does not exist", name)
	}
	return idx, nil
}
