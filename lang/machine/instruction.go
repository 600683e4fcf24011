package machine

import "ippcode22/lang/opcode"

// Instruction is a single decoded IPPcode22 instruction, as delivered by the
// loader: an opcode, the order key used to establish execution sequence,
// and up to three operands. Absent operands are nil.
type Instruction struct {
	Op    opcode.Opcode
	Order int
	Arg1  *Argument
	Arg2  *Argument
	Arg3  *Argument
}
