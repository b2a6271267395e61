package app

import (
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/davidmoeljadi/pydelphin/nlp/mrs"
)

var hconsString string

func DescribeHandleConstraint(s string) error {
	hc, err := mrs.ParseHandleConstraint(s)
	if err != nil {
		return err
	}
	printField("hi", hc.Hi)
	printField("relation", hc.Relation)
	printField("lo", hc.Lo)
	printField("handles", hc.Hi.IsHandle() && hc.Lo.IsHandle())
	return nil
}

func HConsInspect(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"c"}); err != nil {
		return err
	}
	return DescribeHandleConstraint(hconsString)
}

func HConsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       HConsInspect,
		UsageLine: "hcons -c <constraint>",
		Short:     "parses a handle constraint",
		Long: `
parses a handle constraint of the form <hi> <relation> <lo>

	$ ./delphin hcons -c 'h0 qeq h1'

`,
		Flag: *flag.NewFlagSet("hcons", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&hconsString, "c", "", "Handle constraint")
	addCommonFlags(cmd)
	return cmd
}
