package machine

// execPushs evaluates Arg1 and pushes it onto the data stack.
func (m *Machine) execPushs(ins *Instruction) error {
	v, err := m.symbol(ins.Arg1)
	if err != nil {
		return err
	}
	m.data.push(v)
	return nil
}

// execPops pops the data stack into Arg1.
func (m *Machine) execPops(ins *Instruction) error {
	v, err := m.data.pop()
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, v)
}
