package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/opcode"
)

// execArith handles ADD/SUB/MUL/IDIV: Arg1 = Arg2 <op> Arg3.
func (m *Machine) execArith(ins *Instruction) error {
	name := ins.Op.String()
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	b, err := m.symbol(ins.Arg3)
	if err != nil {
		return err
	}
	result, err := arith(name, ins.Op, a, b)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, result)
}

// execArithS handles ADDS/SUBS/MULS/IDIVS: pop two operands, push the
// result. The second operand popped (deeper in the stack) is the left side.
func (m *Machine) execArithS(ins *Instruction) error {
	name := ins.Op.String()
	b, err := m.data.pop()
	if err != nil {
		return err
	}
	a, err := m.data.pop()
	if err != nil {
		return err
	}
	var plain opcode.Opcode
	switch ins.Op {
	case opcode.ADDS:
		plain = opcode.ADD
	case opcode.SUBS:
		plain = opcode.SUB
	case opcode.MULS:
		plain = opcode.MUL
	case opcode.IDIVS:
		plain = opcode.IDIV
	}
	result, err := arith(name, plain, a, b)
	if err != nil {
		return err
	}
	m.data.push(result)
	return nil
}

func arith(name string, op opcode.Opcode, a, b Value) (Value, error) {
	x, err := requireInt(name, a)
	if err != nil {
		return nil, err
	}
	y, err := requireInt(name, b)
	if err != nil {
		return nil, err
	}
	switch op {
	case opcode.ADD:
		return x + y, nil
	case opcode.SUB:
		return x - y, nil
	case opcode.MUL:
		return x * y, nil
	case opcode.IDIV:
		if y == 0 {
			return nil, ipperr.New(ipperr.InvValue, "%s: division by zero", name)
		}
		return Int(floorDiv(int64(x), int64(y))), nil
	default:
		panic("machine: arith called with non-arithmetic opcode")
	}
}

// floorDiv implements integer division rounding towards negative infinity,
// matching the original interpreter's use of Python's // operator.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
