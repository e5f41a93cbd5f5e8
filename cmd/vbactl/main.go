package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oleworks/vbactl/internal/cli"
)

const (
	cmdName = "vbactl"

	shortDesc = "Inspect and remove VBA macro modules in Office documents."
	longDesc  = `The vbactl Command Line Interface (CLI).

vbactl drives an invisible Office automation host to inspect the macro
modules of a document or to remove one of them. Inspection opens the
document read-only; removal opens it writable and saves exactly once, after
the module has been detached. When programmatic access to the macro project
has to be enabled for a run, the setting is reverted afterwards and the
revert is verified.

Every run reports a structured result (text, json, or yaml), and the host
instance is always torn down, even when the operation fails.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
	}

	os.Exit(cli.ExitCode(err))
}
