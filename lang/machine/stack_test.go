package machine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ippcode22/lang/ipperr"
)

func TestCallStack(t *testing.T) {
	var c callStack
	_, err := c.pop()
	requireCode(t, err, ipperr.NoValue)

	c.push(3)
	c.push(7)
	pc, err := c.pop()
	require.NoError(t, err)
	require.Equal(t, 7, pc)

	pc, err = c.pop()
	require.NoError(t, err)
	require.Equal(t, 3, pc)
}

func TestDataStack(t *testing.T) {
	var d dataStack
	_, err := d.pop()
	requireCode(t, err, ipperr.NoValue)

	d.push(Int(1))
	d.push(NewString("a"))
	v, err := d.pop()
	require.NoError(t, err)
	require.Equal(t, NewString("a"), v)

	d.clear()
	_, err = d.pop()
	requireCode(t, err, ipperr.NoValue)
}
