package machine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ippcode22/lang/ipperr"
)

func TestFrameDefineGetSet(t *testing.T) {
	f := newFrame()
	require.True(t, f.empty())

	require.NoError(t, f.define("x"))
	require.False(t, f.empty())

	v, err := f.get("x")
	require.NoError(t, err)
	require.Equal(t, Uninitialized, v)

	_, err = f.read("x")
	requireCode(t, err, ipperr.NoValue)

	require.NoError(t, f.set("x", Int(42)))
	v, err = f.read("x")
	require.NoError(t, err)
	require.Equal(t, Int(42), v)
}

func TestFrameDefineDuplicate(t *testing.T) {
	f := newFrame()
	require.NoError(t, f.define("x"))
	requireCode(t, f.define("x"), ipperr.Semantic)
}

func TestFrameGetSetUndefined(t *testing.T) {
	f := newFrame()
	_, err := f.get("x")
	requireCode(t, err, ipperr.NoVar)
	requireCode(t, f.set("x", Int(1)), ipperr.NoVar)
}

func TestFrameSortedNames(t *testing.T) {
	f := newFrame()
	require.NoError(t, f.define("b"))
	require.NoError(t, f.define("a"))
	require.NoError(t, f.define("c"))
	require.Equal(t, []string{"a", "b", "c"}, f.sortedNames())
}

func requireCode(t *testing.T, err error, want ipperr.Code) {
	t.Helper()
	require.Error(t, err)
	ie, ok := err.(*ipperr.Error)
	require.True(t, ok, "expected *ipperr.Error, got %T", err)
	require.Equal(t, want, ie.Code)
}
