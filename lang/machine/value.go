// Package machine implements the IPPcode22 execution engine: the
// value/variable model, the frame system, the data and call stacks, the
// label index, and the dispatch of each opcode.
package machine

// Value is the interface implemented by every runtime value manipulated by
// the machine: Int, Bool, String, NilType and the uninitialized sentinel.
type Value interface {
	// String returns the value's textual representation, as written by
	// WRITE/DPRINT.
	String() string
	// Type returns the IPPcode22 type name ("int", "bool", "string", "nil"),
	// or "" for the uninitialized sentinel.
	Type() string
}

// Ordered is implemented by value kinds that support LT/GT. Comparing two
// values of different Ordered types is a caller error (TYPE), checked by
// the caller before Cmp is invoked.
type Ordered interface {
	Value
	// Cmp returns negative if the receiver is less than y, positive if
	// greater, zero if equal. y is guaranteed by the caller to be of the
	// same concrete type.
	Cmp(y Value) int
}
