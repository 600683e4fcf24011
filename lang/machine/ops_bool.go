package machine

import "ippcode22/lang/opcode"

// execBool handles AND/OR (Arg1 = Arg2 <op> Arg3) and NOT (Arg1 = !Arg2).
func (m *Machine) execBool(ins *Instruction) error {
	name := ins.Op.String()
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	x, err := requireBool(name, a)
	if err != nil {
		return err
	}

	var result Bool
	if ins.Op == opcode.NOT {
		result = !x
	} else {
		b, err := m.symbol(ins.Arg3)
		if err != nil {
			return err
		}
		y, err := requireBool(name, b)
		if err != nil {
			return err
		}
		if ins.Op == opcode.AND {
			result = x && y
		} else {
			result = x || y
		}
	}

	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, result)
}

// execBoolS handles ANDS/ORS/NOTS: NOTS pops and pushes one value; ANDS/ORS
// pop two and push one.
func (m *Machine) execBoolS(ins *Instruction) error {
	name := ins.Op.String()

	if ins.Op == opcode.NOTS {
		v, err := m.data.pop()
		if err != nil {
			return err
		}
		x, err := requireBool(name, v)
		if err != nil {
			return err
		}
		m.data.push(!x)
		return nil
	}

	b, err := m.data.pop()
	if err != nil {
		return err
	}
	a, err := m.data.pop()
	if err != nil {
		return err
	}
	x, err := requireBool(name, a)
	if err != nil {
		return err
	}
	y, err := requireBool(name, b)
	if err != nil {
		return err
	}
	var result Bool
	if ins.Op == opcode.ANDS {
		result = x && y
	} else {
		result = x || y
	}
	m.data.push(result)
	return nil
}
