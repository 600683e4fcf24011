package machine

// NilType is the type of the nil sentinel. Its only legal value is Nil. It
// is represented as a byte, not struct{}, so that Nil can be a constant.
type NilType byte

// Nil is the single IPPcode22 nil value.
const Nil = NilType(0)

var _ Value = Nil

func (NilType) String() string { return "" }
func (NilType) Type() string   { return "nil" }
