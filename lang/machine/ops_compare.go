package machine

import "ippcode22/lang/opcode"

// execCompare handles LT/GT/EQ: Arg1 = Arg2 <op> Arg3.
func (m *Machine) execCompare(ins *Instruction) error {
	name := ins.Op.String()
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	b, err := m.symbol(ins.Arg3)
	if err != nil {
		return err
	}
	result, err := compare(name, ins.Op, a, b)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, Bool(result))
}

// execCompareS handles LTS/GTS/EQS: pop two operands, push the bool result.
func (m *Machine) execCompareS(ins *Instruction) error {
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
	case opcode.LTS:
		plain = opcode.LT
	case opcode.GTS:
		plain = opcode.GT
	case opcode.EQS:
		plain = opcode.EQ
	}
	result, err := compare(name, plain, a, b)
	if err != nil {
		return err
	}
	m.data.push(Bool(result))
	return nil
}

func compare(name string, op opcode.Opcode, a, b Value) (bool, error) {
	switch op {
	case opcode.LT:
		c, err := orderCompare(name, a, b)
		return c < 0, err
	case opcode.GT:
		c, err := orderCompare(name, a, b)
		return c > 0, err
	case opcode.EQ:
		return valuesEqual(name, a, b)
	default:
		panic("machine: compare called with non-comparison opcode")
	}
}
