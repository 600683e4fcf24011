package machine

import "strconv"

// Int is the type of an IPPcode22 integer value: a signed integer of at
// least 64 bits.
type Int int64

var (
	_ Value   = Int(0)
	_ Ordered = Int(0)
)

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Type() string   { return "int" }

func (i Int) Cmp(y Value) int {
	j := y.(Int) // ok to panic otherwise, caller already checked kinds match
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}
