package machine

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/opcode"
)

// program is a small builder so each test case reads as a flat instruction
// list instead of a wall of repeated Instruction{...} literals.
type program struct {
	instrs []Instruction
}

func (p *program) add(op opcode.Opcode, args ...*Argument) *program {
	ins := Instruction{Op: op, Order: len(p.instrs)}
	if len(args) > 0 {
		ins.Arg1 = args[0]
	}
	if len(args) > 1 {
		ins.Arg2 = args[1]
	}
	if len(args) > 2 {
		ins.Arg3 = args[2]
	}
	p.instrs = append(p.instrs, ins)
	return p
}

func gvar(name string) *Argument  { return NewVarArg(GF, name) }
func tvar(name string) *Argument  { return NewVarArg(TF, name) }
func lvar(name string) *Argument  { return NewVarArg(LF, name) }
func cint(n int64) *Argument      { return NewConstArg(Int(n)) }
func cbool(b bool) *Argument      { return NewConstArg(Bool(b)) }
func cstr(s string) *Argument     { return NewConstArg(NewString(s)) }
func cnil() *Argument             { return NewConstArg(Nil) }
func label(name string) *Argument { return NewLabelArg(name) }

func run(t *testing.T, p *program, stdin string) (stdout, stderr string, code int, err error) {
	t.Helper()
	m := New()
	var out, errOut bytes.Buffer
	m.Stdout = &out
	m.Stderr = &errOut
	m.Stdin = strings.NewReader(stdin)
	require.NoError(t, m.Load(p.instrs))
	code, err = m.Run(context.Background())
	return out.String(), errOut.String(), code, err
}

func TestArithmeticAndWrite(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("x")).
		add(opcode.DEFVAR, gvar("y")).
		add(opcode.DEFVAR, gvar("z")).
		add(opcode.MOVE, gvar("x"), cint(2)).
		add(opcode.MOVE, gvar("y"), cint(3)).
		add(opcode.ADD, gvar("z"), gvar("x"), gvar("y")).
		add(opcode.WRITE, gvar("z"))

	out, _, code, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "5", out)
}

func TestIdivFloorsTowardsNegativeInfinity(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("q")).
		add(opcode.IDIV, gvar("q"), cint(-7), cint(2)).
		add(opcode.WRITE, gvar("q"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "-4", out)
}

func TestIdivByZero(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("q")).
		add(opcode.IDIV, gvar("q"), cint(1), cint(0))

	_, _, code, err := run(t, p, "")
	require.Error(t, err)
	require.Equal(t, int(ipperr.InvValue), code)
}

func TestFrameProtocol(t *testing.T) {
	p := (&program{}).
		add(opcode.CREATEFRAME).
		add(opcode.DEFVAR, tvar("x")).
		add(opcode.MOVE, tvar("x"), cint(9)).
		add(opcode.PUSHFRAME).
		add(opcode.WRITE, lvar("x")).
		add(opcode.POPFRAME).
		add(opcode.WRITE, tvar("x"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "99", out)
}

func TestJumpSkipsOverIntermediateInstructions(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("x")).
		add(opcode.MOVE, gvar("x"), cint(1)).
		add(opcode.JUMP, label("skip")).
		add(opcode.MOVE, gvar("x"), cint(99)). // must be skipped
		add(opcode.LABEL, label("skip")).
		add(opcode.WRITE, gvar("x"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "1", out)
}

func TestCallReturn(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("x")).
		add(opcode.MOVE, gvar("x"), cint(1)).
		add(opcode.CALL, label("inc")).
		add(opcode.WRITE, gvar("x")).
		add(opcode.JUMP, label("end")).
		add(opcode.LABEL, label("inc")).
		add(opcode.ADD, gvar("x"), gvar("x"), cint(1)).
		add(opcode.RETURN).
		add(opcode.LABEL, label("end"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "2", out)
}

func TestReturnWithEmptyCallStack(t *testing.T) {
	p := (&program{}).add(opcode.RETURN)
	_, _, code, err := run(t, p, "")
	require.Error(t, err)
	require.Equal(t, int(ipperr.NoValue), code)
}

func TestEqualityIsNilAware(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("a")).
		add(opcode.DEFVAR, gvar("b")).
		add(opcode.EQ, gvar("a"), cnil(), cnil()).
		add(opcode.WRITE, gvar("a")).
		add(opcode.EQ, gvar("b"), cnil(), cint(0)).
		add(opcode.WRITE, gvar("b"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "truefalse", out)
}

func TestEqualityTypeMismatchIsAnError(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("a")).
		add(opcode.EQ, gvar("a"), cint(1), cbool(true))

	_, _, code, err := run(t, p, "")
	require.Error(t, err)
	require.Equal(t, int(ipperr.Type), code)
}

func TestStackForm(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("r")).
		add(opcode.PUSHS, cint(2)).
		add(opcode.PUSHS, cint(3)).
		add(opcode.ADDS).
		add(opcode.POPS, gvar("r")).
		add(opcode.WRITE, gvar("r"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "5", out)
}

func TestJumpifeqsTakesTheBranch(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("x")).
		add(opcode.MOVE, gvar("x"), cint(1)).
		add(opcode.PUSHS, cint(1)).
		add(opcode.PUSHS, cint(1)).
		add(opcode.JUMPIFEQS, label("hit")).
		add(opcode.MOVE, gvar("x"), cint(99)).
		add(opcode.LABEL, label("hit")).
		add(opcode.WRITE, gvar("x"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "1", out)
}

func TestExitRequestsHalt(t *testing.T) {
	p := (&program{}).
		add(opcode.EXIT, cint(9)).
		add(opcode.WRITE, cstr("unreachable"))

	out, _, code, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, 9, code)
	require.Empty(t, out)
}

func TestExitOutOfRange(t *testing.T) {
	p := (&program{}).add(opcode.EXIT, cint(50))
	_, _, code, err := run(t, p, "")
	require.Error(t, err)
	require.Equal(t, int(ipperr.InvValue), code)
}

func TestJumpToUndefinedLabel(t *testing.T) {
	p := (&program{}).add(opcode.JUMP, label("nope"))
	_, _, code, err := run(t, p, "")
	require.Error(t, err)
	require.Equal(t, int(ipperr.Semantic), code)
}

func TestTypeOnUninitializedVariableReturnsEmptyString(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("x")).
		add(opcode.DEFVAR, gvar("t")).
		add(opcode.TYPE, gvar("t"), gvar("x")).
		add(opcode.WRITE, gvar("t"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestReadIntThenEOFYieldsNil(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("a")).
		add(opcode.DEFVAR, gvar("b")).
		add(opcode.READ, gvar("a"), NewTypeArg("int")).
		add(opcode.READ, gvar("b"), NewTypeArg("int")).
		add(opcode.WRITE, gvar("a")).
		add(opcode.TYPE, gvar("b"), gvar("b")).
		add(opcode.WRITE, gvar("b"))

	out, _, _, err := run(t, p, "42\n")
	require.NoError(t, err)
	require.Equal(t, "42nil", out)
}

func TestStringOps(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("n")).
		add(opcode.DEFVAR, gvar("c")).
		add(opcode.DEFVAR, gvar("i")).
		add(opcode.DEFVAR, gvar("s")).
		add(opcode.STRLEN, gvar("n"), cstr("hello")).
		add(opcode.GETCHAR, gvar("c"), cstr("hello"), cint(1)).
		add(opcode.STRI2INT, gvar("i"), cstr("hello"), cint(1)).
		add(opcode.CONCAT, gvar("s"), cstr("foo"), cstr("bar")).
		add(opcode.WRITE, gvar("n")).
		add(opcode.WRITE, gvar("c")).
		add(opcode.WRITE, gvar("i")).
		add(opcode.WRITE, gvar("s"))

	out, _, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "5e101foobar", out)
}

func TestSetcharOutOfRange(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("s")).
		add(opcode.MOVE, gvar("s"), cstr("ab")).
		add(opcode.SETCHAR, gvar("s"), cint(5), cstr("z"))

	_, _, code, err := run(t, p, "")
	require.Error(t, err)
	require.Equal(t, int(ipperr.String), code)
}

func TestBreakReportsFrameState(t *testing.T) {
	p := (&program{}).
		add(opcode.DEFVAR, gvar("x")).
		add(opcode.MOVE, gvar("x"), cint(7)).
		add(opcode.BREAK)

	_, errOut, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Contains(t, errOut, "GF: x=7(int)")
	require.Contains(t, errOut, "TF: none")
}

func TestBreakReportsDataStackContents(t *testing.T) {
	p := (&program{}).
		add(opcode.PUSHS, cint(1)).
		add(opcode.PUSHS, cstr("hi")).
		add(opcode.BREAK)

	_, errOut, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Contains(t, errOut, "Stack:\n  1 of int\n  hi of string\n")
}

func TestBreakReportsEmptyDataStack(t *testing.T) {
	p := (&program{}).add(opcode.BREAK)

	_, errOut, _, err := run(t, p, "")
	require.NoError(t, err)
	require.Contains(t, errOut, "Stack:\n  empty\n")
}
