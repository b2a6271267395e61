package app

import (
	"github.com/gonuts/commander"
)

func AllCommands() []*commander.Command {
	cmds := []*commander.Command{
		VariableCmd(),
		PredCmd(),
		LnkCmd(),
		HConsCmd(),
	}
	for _, cmd := range cmds {
		cmd.Run = NewAppWrapCommand(cmd.Run)
	}
	return cmds
}

// NewAppWrapCommand applies the -conf file before running f.
func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		if err := SetupConf(); err != nil {
			return err
		}
		return f(cmd, args)
	}
	return wrapped
}
