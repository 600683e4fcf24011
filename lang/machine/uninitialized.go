package machine

// uninitializedType is the sentinel occupying a variable slot between
// DEFVAR and its first assignment. Reading it is a NOVALUE error; TYPE is
// the one opcode that may observe it directly, and reports it as "".
type uninitializedType byte

// Uninitialized is the value a freshly defined variable holds.
const Uninitialized = uninitializedType(0)

var _ Value = Uninitialized

func (uninitializedType) String() string { return "" }
func (uninitializedType) Type() string   { return "" }
