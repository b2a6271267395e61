package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"

	"github.com/davidmoeljadi/pydelphin/app"
)

var cmd *commander.Command

func init() {
	cmd = &commander.Command{
		UsageLine: os.Args[0],
		Short:     "inspects Minimal Recursion Semantics components",
	}
	cmd.Subcommands = app.AllCommands()
}

func main() {
	err := cmd.Dispatch(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
