package app

import (
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/davidmoeljadi/pydelphin/nlp/mrs"
)

var lnkString string

func DescribeLnk(s string) error {
	lnk, err := mrs.ParseLnk(s)
	if err != nil {
		return err
	}
	aligned := mrs.Lnked{Lnk: lnk}
	printField("type", lnk.Type)
	printField("data", lnk.Data)
	printField("cfrom", aligned.CFrom())
	printField("cto", aligned.CTo())
	return nil
}

func LnkInspect(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"lnk"}); err != nil {
		return err
	}
	return DescribeLnk(lnkString)
}

func LnkCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       LnkInspect,
		UsageLine: "lnk -lnk <lnk>",
		Short:     "parses a surface alignment",
		Long: `
parses a surface alignment: <from:to> (characters), <from#to> (chart),
<t1 t2 ...> (tokens) or <@id> (edge)

	$ ./delphin lnk -lnk '<0:5>'

`,
		Flag: *flag.NewFlagSet("lnk", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&lnkString, "lnk", "", "Lnk string")
	addCommonFlags(cmd)
	return cmd
}
