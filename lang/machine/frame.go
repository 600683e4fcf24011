package machine

import (
	"sort"

	"github.com/dolthub/swiss"
	"ippcode22/lang/ipperr"
)

// frameInitialCap is the initial capacity handed to a fresh frame's backing
// map. IPPcode22 programs rarely define more than a handful of variables per
// frame; swiss.Map grows on demand past this anyway.
const frameInitialCap = 8

// Frame is a mapping from variable name to Value. Variable names are unique
// within a frame (enforced by define).
type Frame struct {
	vars *swiss.Map[string, Value]
}

func newFrame() *Frame {
	return &Frame{vars: swiss.NewMap[string, Value](frameInitialCap)}
}

// define creates name as an uninitialized slot. It is a SEMANTIC error to
// define a name that already exists in this frame.
func (f *Frame) define(name string) error {
	if f.vars.Has(name) {
		return ipperr.New(ipperr.Semantic, "variable %q already defined in frame", name)
	}
	f.vars.Put(name, Uninitialized)
	return nil
}

// get returns the current value of name, uninitialized or not. It is a
// NOVAR error if name was never defined in this frame.
func (f *Frame) get(name string) (Value, error) {
	v, ok := f.vars.Get(name)
	if !ok {
		return nil, ipperr.New(ipperr.NoVar, "variable %q does not exist", name)
	}
	return v, nil
}

// read is like get but additionally requires the value to be initialized
// (NOVALUE otherwise).
func (f *Frame) read(name string) (Value, error) {
	v, err := f.get(name)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(uninitializedType); ok {
		return nil, ipperr.New(ipperr.NoValue, "variable %q is not initialized", name)
	}
	return v, nil
}

// set overwrites name's kind and payload wholesale. name must already be
// defined in this frame (NOVAR otherwise); it need not be initialized.
func (f *Frame) set(name string, v Value) error {
	if !f.vars.Has(name) {
		return ipperr.New(ipperr.NoVar, "variable %q does not exist", name)
	}
	f.vars.Put(name, v)
	return nil
}

// empty reports whether the frame holds no variables.
func (f *Frame) empty() bool { return f.vars.Count() == 0 }

// sortedNames returns the frame's variable names in ascending order, for
// deterministic BREAK output (Go map iteration, unlike CPython dict
// iteration, carries no ordering guarantee).
func (f *Frame) sortedNames() []string {
	names := make([]string, 0, f.vars.Count())
	f.vars.Iter(func(k string, _ Value) bool {
		names = append(names, k)
		return false
	})
	sort.Strings(names)
	return names
}
