package machine

// execMove evaluates Arg2 and stores it in Arg1.
func (m *Machine) execMove(ins *Instruction) error {
	v, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, v)
}

// execDefvar creates Arg1 as a fresh, uninitialized slot.
func (m *Machine) execDefvar(ins *Instruction) error {
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.define(ins.Arg1.Name)
}
