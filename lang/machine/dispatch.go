package machine

import "ippcode22/lang/opcode"

// execute runs the single instruction at pc and returns the new program
// counter, which Run then advances by one to get the next instruction to
// run, or a halt/error signal. Control-flow opcodes compute it directly
// since they are the only ones allowed to set it to anything but pc; every
// other opcode is handled by dispatch and simply falls through to pc+1.
func (m *Machine) execute(ins *Instruction, pc int) (int, error) {
	switch ins.Op {
	case opcode.LABEL:
		return pc, nil

	case opcode.JUMP:
		idx, err := lookupLabel(m.labels, ins.Arg1.Name)
		if err != nil {
			return 0, err
		}
		return idx, nil

	case opcode.CALL:
		idx, err := lookupLabel(m.labels, ins.Arg1.Name)
		if err != nil {
			return 0, err
		}
		m.calls.push(pc)
		return idx, nil

	case opcode.RETURN:
		idx, err := m.calls.pop()
		if err != nil {
			return 0, err
		}
		return idx, nil

	case opcode.JUMPIFEQ, opcode.JUMPIFNEQ:
		return m.execJumpIf(ins, pc)

	case opcode.JUMPIFEQS, opcode.JUMPIFNEQS:
		return m.execJumpIfS(ins, pc)

	case opcode.EXIT:
		code, err := m.execExit(ins)
		if err != nil {
			return 0, err
		}
		return 0, haltSignal{code: code}

	case opcode.BREAK:
		return pc, m.execBreak(pc)

	default:
		if err := m.dispatch(ins); err != nil {
			return 0, err
		}
		return pc, nil
	}
}

// dispatch handles every opcode whose effect never touches the program
// counter directly.
func (m *Machine) dispatch(ins *Instruction) error {
	switch ins.Op {
	case opcode.MOVE:
		return m.execMove(ins)
	case opcode.CREATEFRAME:
		m.frames.createTemp()
		return nil
	case opcode.PUSHFRAME:
		return m.frames.pushLocal()
	case opcode.POPFRAME:
		return m.frames.popLocal()
	case opcode.DEFVAR:
		return m.execDefvar(ins)

	case opcode.PUSHS:
		return m.execPushs(ins)
	case opcode.POPS:
		return m.execPops(ins)
	case opcode.CLEARS:
		m.data.clear()
		return nil

	case opcode.ADD, opcode.SUB, opcode.MUL, opcode.IDIV:
		return m.execArith(ins)
	case opcode.ADDS, opcode.SUBS, opcode.MULS, opcode.IDIVS:
		return m.execArithS(ins)

	case opcode.LT, opcode.GT, opcode.EQ:
		return m.execCompare(ins)
	case opcode.LTS, opcode.GTS, opcode.EQS:
		return m.execCompareS(ins)

	case opcode.AND, opcode.OR, opcode.NOT:
		return m.execBool(ins)
	case opcode.ANDS, opcode.ORS, opcode.NOTS:
		return m.execBoolS(ins)

	case opcode.INT2CHAR:
		return m.execInt2Char(ins)
	case opcode.STRI2INT:
		return m.execStri2Int(ins)
	case opcode.INT2CHARS:
		return m.execInt2CharS(ins)
	case opcode.STRI2INTS:
		return m.execStri2IntS(ins)
	case opcode.CONCAT:
		return m.execConcat(ins)
	case opcode.STRLEN:
		return m.execStrlen(ins)
	case opcode.GETCHAR:
		return m.execGetchar(ins)
	case opcode.SETCHAR:
		return m.execSetchar(ins)
	case opcode.TYPE:
		return m.execType(ins)

	case opcode.READ:
		return m.execRead(ins)
	case opcode.WRITE:
		return m.execWrite(ins)
	case opcode.DPRINT:
		return m.execDprint(ins)

	default:
		panic("machine: unhandled opcode " + ins.Op.String()) // loader guarantees a known opcode
	}
}
