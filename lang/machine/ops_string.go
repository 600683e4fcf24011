package machine

import (
	"unicode/utf8"

	"ippcode22/lang/ipperr"
)

// execInt2Char handles INT2CHAR: Arg1 = the one-character string whose
// code point is Arg2.
func (m *Machine) execInt2Char(ins *Instruction) error {
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	result, err := int2char(a)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, result)
}

func (m *Machine) execInt2CharS(ins *Instruction) error {
	v, err := m.data.pop()
	if err != nil {
		return err
	}
	result, err := int2char(v)
	if err != nil {
		return err
	}
	m.data.push(result)
	return nil
}

func int2char(v Value) (String, error) {
	i, err := requireInt("INT2CHAR", v)
	if err != nil {
		return nil, err
	}
	r := rune(i)
	if i < 0 || i > utf8.MaxRune || !utf8.ValidRune(r) {
		return nil, ipperr.New(ipperr.String, "INT2CHAR: %d is not a valid code point", i)
	}
	return String{r}, nil
}

// execStri2Int handles STRI2INT: Arg1 = the code point of Arg2 at index
// Arg3.
func (m *Machine) execStri2Int(ins *Instruction) error {
	s, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	idx, err := m.symbol(ins.Arg3)
	if err != nil {
		return err
	}
	result, err := stri2int(s, idx)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, result)
}

func (m *Machine) execStri2IntS(ins *Instruction) error {
	idx, err := m.data.pop()
	if err != nil {
		return err
	}
	s, err := m.data.pop()
	if err != nil {
		return err
	}
	result, err := stri2int(s, idx)
	if err != nil {
		return err
	}
	m.data.push(result)
	return nil
}

func stri2int(sv, iv Value) (Int, error) {
	s, err := requireString("STRI2INT", sv)
	if err != nil {
		return 0, err
	}
	i, err := requireInt("STRI2INT", iv)
	if err != nil {
		return 0, err
	}
	if i < 0 || int(i) >= s.Len() {
		return 0, ipperr.New(ipperr.String, "STRI2INT: index %d out of range", i)
	}
	return Int(s[i]), nil
}

// execConcat handles CONCAT: Arg1 = Arg2 ++ Arg3.
func (m *Machine) execConcat(ins *Instruction) error {
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	b, err := m.symbol(ins.Arg3)
	if err != nil {
		return err
	}
	x, err := requireString("CONCAT", a)
	if err != nil {
		return err
	}
	y, err := requireString("CONCAT", b)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, x.concat(y))
}

// execStrlen handles STRLEN: Arg1 = len(Arg2).
func (m *Machine) execStrlen(ins *Instruction) error {
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	s, err := requireString("STRLEN", a)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, Int(s.Len()))
}

// execGetchar handles GETCHAR: Arg1 = the one-character string at index
// Arg3 of Arg2.
func (m *Machine) execGetchar(ins *Instruction) error {
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	b, err := m.symbol(ins.Arg3)
	if err != nil {
		return err
	}
	s, err := requireString("GETCHAR", a)
	if err != nil {
		return err
	}
	i, err := requireInt("GETCHAR", b)
	if err != nil {
		return err
	}
	if i < 0 || int(i) >= s.Len() {
		return ipperr.New(ipperr.String, "GETCHAR: index %d out of range", i)
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, String{s[i]})
}

// execSetchar handles SETCHAR: Arg1 (a string variable) has the code point
// at index Arg2 replaced by the first code point of Arg3.
func (m *Machine) execSetchar(ins *Instruction) error {
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	cur, err := f.read(ins.Arg1.Name)
	if err != nil {
		return err
	}
	dst, err := requireString("SETCHAR", cur)
	if err != nil {
		return err
	}
	a, err := m.symbol(ins.Arg2)
	if err != nil {
		return err
	}
	i, err := requireInt("SETCHAR", a)
	if err != nil {
		return err
	}
	b, err := m.symbol(ins.Arg3)
	if err != nil {
		return err
	}
	src, err := requireString("SETCHAR", b)
	if err != nil {
		return err
	}
	if i < 0 || int(i) >= dst.Len() || src.Len() == 0 {
		return ipperr.New(ipperr.String, "SETCHAR: index %d out of range", i)
	}
	return f.set(ins.Arg1.Name, dst.withRuneAt(int(i), src[0]))
}

// execType handles TYPE: Arg1 = the type name of Arg2, or "" if Arg2 is an
// uninitialized variable.
func (m *Machine) execType(ins *Instruction) error {
	v, err := m.symbolRaw(ins.Arg2)
	if err != nil {
		return err
	}
	f, err := m.destination(ins.Arg1)
	if err != nil {
		return err
	}
	return f.set(ins.Arg1.Name, NewString(v.Type()))
}
