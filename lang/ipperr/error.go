// Package ipperr defines the error-code taxonomy shared by the loader, the
// machine and the CLI. It is the Go counterpart of the original
// interpreter's utils.error module: a fixed table of numeric exit codes and
// a single error type that carries one of them.
package ipperr

import "fmt"

// Code is one of the numeric process exit codes defined by the IPPcode22
// interpreter contract. Values below 10 are reserved for success and for
// the EXIT instruction, which is not represented by a Code.
type Code int

const (
	CLIArg    Code = 10 // invalid or missing CLI argument
	File      Code = 11 // source or input path not openable
	XMLFormat Code = 31 // program XML is not well-formed
	XMLStruct Code = 32 // bad XML structure, unknown opcode, negative order
	Semantic  Code = 52 // duplicate label, undefined label, duplicate DEFVAR
	Type      Code = 53 // operand kinds do not match an opcode's contract
	NoVar     Code = 54 // variable lookup in a valid frame misses
	NoFrame   Code = 55 // operation requires a frame that is absent
	NoValue   Code = 56 // read of uninitialized variable, empty stack pop
	InvValue  Code = 57 // integer divide by zero, EXIT code out of range
	String    Code = 58 // string indexing out of range, bad code point
)

// Error is a diagnosed interpreter failure. Its message is printed verbatim
// after an "ERROR: " prefix, and its Code becomes the process exit code.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// New builds an *Error with the given code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}
