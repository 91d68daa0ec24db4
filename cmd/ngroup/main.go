/*
ngroup is a console utility expanding group expressions into search terms.
Usage is

	ngroup [flags] [text...]
	ngroup normalize [flags] [text...]
	ngroup check [flags] [text...]

Each text argument is processed separately. With no arguments the texts are read
from the input element of an HTML page (--html) or line by line from standard input.
Run "ngroup help" for the list of flags.
*/
package main

import (
	"os"

	"github.com/ava12/ngroup/cmd/ngroup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
