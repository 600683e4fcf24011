package machine

import "ippcode22/lang/ipperr"

// requireInt type-asserts v as Int, returning a TYPE error tagged with op
// otherwise.
func requireInt(op string, v Value) (Int, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, ipperr.New(ipperr.Type, "%s: expected int operand, got %s", op, v.Type())
	}
	return i, nil
}

// requireBool type-asserts v as Bool, returning a TYPE error tagged with op
// otherwise.
func requireBool(op string, v Value) (Bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, ipperr.New(ipperr.Type, "%s: expected bool operand, got %s", op, v.Type())
	}
	return b, nil
}

// requireString type-asserts v as String, returning a TYPE error tagged
// with op otherwise.
func requireString(op string, v Value) (String, error) {
	s, ok := v.(String)
	if !ok {
		return nil, ipperr.New(ipperr.Type, "%s: expected string operand, got %s", op, v.Type())
	}
	return s, nil
}

// valuesEqual implements EQ's nil-aware equality: nil equals only nil, and
// two non-nil values must share a concrete type to be compared at all.
func valuesEqual(op string, a, b Value) (bool, error) {
	_, aNil := a.(NilType)
	_, bNil := b.(NilType)
	if aNil || bNil {
		return aNil && bNil, nil
	}
	if a.Type() != b.Type() {
		return false, ipperr.New(ipperr.Type, "%s: operand type mismatch (%s vs %s)", op, a.Type(), b.Type())
	}
	ao, ok := a.(Ordered)
	if !ok {
		return false, ipperr.New(ipperr.Type, "%s: type %s is not comparable", op, a.Type())
	}
	return ao.Cmp(b) == 0, nil
}

// orderCompare implements LT/GT's comparison: nil is never orderable, and
// the two operands must share a concrete Ordered type.
func orderCompare(op string, a, b Value) (int, error) {
	if _, ok := a.(NilType); ok {
		return 0, ipperr.New(ipperr.Type, "%s: nil operand is not orderable", op)
	}
	if _, ok := b.(NilType); ok {
		return 0, ipperr.New(ipperr.Type, "%s: nil operand is not orderable", op)
	}
	if a.Type() != b.Type() {
		return 0, ipperr.New(ipperr.Type, "%s: operand type mismatch (%s vs %s)", op, a.Type(), b.Type())
	}
	ao, ok := a.(Ordered)
	if !ok {
		return 0, ipperr.New(ipperr.Type, "%s: type %s is not orderable", op, a.Type())
	}
	return ao.Cmp(b), nil
}
