// Package maincmd wires the CLI flags, the loader and the machine into the
// single "run a program" command the ippi binary exposes.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/loader"
	"ippcode22/lang/machine"
)

const binName = "ippi"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [--source <file>] [--input <file>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [--source <file>] [--input <file>]
       %[1]s -h|--help

Interpreter for the IPPcode22 instruction language.

Valid flag options are:
       --source <file>           XML program to execute. Read from stdin
                                 if omitted.
       --input <file>            Input stream for READ instructions. Read
                                 from stdin if omitted.
       -h --help                 Show this help and exit.

At least one of --source or --input must be given, since both cannot read
from stdin at once.
`, binName)
)

// Cmd is the ippi command line, decoded by a mainer.Parser from struct
// tags.
type Cmd struct {
	Help bool `flag:"h,help"`

	Source string `flag:"source"`
	Input  string `flag:"input"`
}

func (c *Cmd) Validate() error {
	if c.Help {
		return nil
	}
	if c.Source == "" && c.Input == "" {
		return errors.New("either --source or --input must be given")
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(ipperr.CLIArg)
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	code, err := c.run(ctx, stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "ERROR: %s\n", err)
	}
	return mainer.ExitCode(code)
}

func (c *Cmd) run(ctx context.Context, stdio mainer.Stdio) (int, error) {
	source, closeSource, err := openOrStdin(c.Source, stdio.Stdin)
	if err != nil {
		return int(ipperr.File), err
	}
	defer closeSource()

	instrs, err := loader.Load(source)
	if err != nil {
		return exitCodeOf(err), err
	}

	input, closeInput, err := openOrStdin(c.Input, stdio.Stdin)
	if err != nil {
		return int(ipperr.File), err
	}
	defer closeInput()

	m := machine.New()
	m.Stdout = stdio.Stdout
	m.Stderr = stdio.Stderr
	m.Stdin = input

	if err := m.Load(instrs); err != nil {
		return exitCodeOf(err), err
	}
	code, err := m.Run(ctx)
	if err != nil {
		return exitCodeOf(err), err
	}
	return code, nil
}

// openOrStdin opens path, or returns stdin verbatim (with a no-op closer)
// if path is empty.
func openOrStdin(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func exitCodeOf(err error) int {
	var ie *ipperr.Error
	if errors.As(err, &ie) {
		return int(ie.Code)
	}
	return 1
}
