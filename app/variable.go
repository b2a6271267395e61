package app

import (
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/davidmoeljadi/pydelphin/nlp/mrs"
	"github.com/davidmoeljadi/pydelphin/util"
)

var (
	varstring string
	varProps  string
)

func DescribeVariable(vs, props string) error {
	properties, err := util.ParseKVList(props)
	if err != nil {
		return err
	}
	v, err := mrs.NewVariable(vs, properties)
	if err != nil {
		return err
	}
	printField("varstring", v.Varstring())
	printField("sort", v.Sort())
	printField("vid", v.Vid())
	printField("handle", v.IsHandle())
	printField("properties", v.Properties)
	return nil
}

func VariableInspect(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"var"}); err != nil {
		return err
	}
	return DescribeVariable(varstring, varProps)
}

func VariableCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       VariableInspect,
		UsageLine: "var -var <varstring> [-p <properties>]",
		Short:     "parses an MRS variable",
		Long: `
parses an MRS variable into its sort and id

	$ ./delphin var -var x1 -p num=sg|pers=3

`,
		Flag: *flag.NewFlagSet("var", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&varstring, "var", "", "Variable string (e.g. x1, e2, h3)")
	cmd.Flag.StringVar(&varProps, "p", "_", "Properties as key=value pairs separated by |")
	addCommonFlags(cmd)
	return cmd
}
