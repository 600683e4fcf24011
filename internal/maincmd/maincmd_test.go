package maincmd

import (
	"bytes"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"ippcode22/lang/ipperr"
)

func TestMainUnknownFlagIsCLIArgError(t *testing.T) {
	var c Cmd
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	code := c.Main([]string{"ippi", "--not-a-real-flag"}, stdio)

	require.Equal(t, mainer.ExitCode(ipperr.CLIArg), code)
	require.Equal(t, 10, int(code))
	require.NotEmpty(t, errOut.String())
}

func TestMainNeitherSourceNorInputIsCLIArgError(t *testing.T) {
	var c Cmd
	var out, errOut bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

	code := c.Main([]string{"ippi"}, stdio)

	require.Equal(t, mainer.ExitCode(ipperr.CLIArg), code)
}
