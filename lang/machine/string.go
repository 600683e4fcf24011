package machine

import "strings"

// String is the type of an IPPcode22 text value: an ordered sequence of
// Unicode code points. It is stored as a code-point vector rather than as a
// raw Go string so that length and indexing, both defined by spec in units
// of code points, are O(1) instead of requiring a UTF-8 scan.
type String []rune

var (
	_ Value   = String(nil)
	_ Ordered = String(nil)
)

// NewString decodes a Go string (already escape-decoded by the loader) into
// a code-point vector.
func NewString(s string) String { return String([]rune(s)) }

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }

// Len returns the number of code points in s.
func (s String) Len() int { return len(s) }

// Cmp compares two strings lexicographically by code point.
func (s String) Cmp(y Value) int {
	o := y.(String) // ok to panic otherwise, caller already checked kinds match
	return strings.Compare(string(s), string(o))
}

// concat returns a freshly allocated string holding s followed by o. A new
// backing array is always allocated so that neither operand's slice can be
// observed to change through the result.
func (s String) concat(o String) String {
	out := make(String, 0, len(s)+len(o))
	out = append(out, s...)
	out = append(out, o...)
	return out
}

// withRuneAt returns a copy of s with the code point at index i replaced by
// r. The caller must have validated 0 <= i < s.Len(). A fresh backing array
// is allocated, so the original s is left untouched (no frame slot ever
// aliases another's storage).
func (s String) withRuneAt(i int, r rune) String {
	out := make(String, len(s))
	copy(out, s)
	out[i] = r
	return out
}
