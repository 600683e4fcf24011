package main

import (
	"os"

	"github.com/mna/mainer"

	"ippcode22/internal/maincmd"
)

func main() {
	var c maincmd.Cmd
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
