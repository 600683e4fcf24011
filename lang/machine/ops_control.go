package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/opcode"
)

// execJumpIf handles JUMPIFEQ/JUMPIFNEQ: jump to Arg1 iff Arg2 and Arg3
// compare (un)equal, using EQ's nil-aware equality.
func (m *Machine) execJumpIf(ins *Instruction, pc int) (int, error) {
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return 0, err
	}
	b, err := m.symbol(ins.Arg3)
	if err != nil {
		return 0, err
	}
	eq, err := valuesEqual(ins.Op.String(), a, b)
	if err != nil {
		return 0, err
	}
	take := eq
	if ins.Op == opcode.JUMPIFNEQ {
		take = !eq
	}
	if !take {
		return pc, nil
	}
	return lookupLabel(m.labels, ins.Arg1.Name)
}

// execJumpIfS handles JUMPIFEQS/JUMPIFNEQS: pop two operands and jump to
// Arg1 iff they compare (un)equal.
func (m *Machine) execJumpIfS(ins *Instruction, pc int) (int, error) {
	b, err := m.data.pop()
	if err != nil {
		return 0, err
	}
	a, err := m.data.pop()
	if err != nil {
		return 0, err
	}
	eq, err := valuesEqual(ins.Op.String(), a, b)
	if err != nil {
		return 0, err
	}
	take := eq
	if ins.Op == opcode.JUMPIFNEQS {
		take = !eq
	}
	if !take {
		return pc, nil
	}
	return lookupLabel(m.labels, ins.Arg1.Name)
}

// exitMin and exitMax bound the process exit code EXIT may request.
const (
	exitMin = 0
	exitMax = 49
)

// execExit handles EXIT: Arg1 must be an int in [0, 49]; the Run loop
// turns the returned code into a haltSignal.
func (m *Machine) execExit(ins *Instruction) (int, error) {
	v, err := m.symbol(ins.Arg1)
	if err != nil {
		return 0, err
	}
	i, err := requireInt("EXIT", v)
	if err != nil {
		return 0, err
	}
	if i < exitMin || i > exitMax {
		return 0, ipperr.New(ipperr.InvValue, "EXIT: code %d out of range [%d, %d]", i, exitMin, exitMax)
	}
	return int(i), nil
}
