package app

import (
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/davidmoeljadi/pydelphin/nlp/mrs"
)

var (
	predString string
	predWarn   bool
)

func DescribePred(s string) {
	p := mrs.StringOrGrammarPred(s)
	printField("type", p.Type)
	printField("string", p.Form)
	printField("normalized", p.Normalized())
	printField("lemma", orUnderscore(p.Lemma))
	printField("pos", orUnderscore(p.Pos))
	printField("sense", orUnderscore(p.Sense))
	printField("quantifier", p.IsQuantifier())
}

func PredInspect(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"pred"}); err != nil {
		return err
	}
	if predWarn {
		mrs.STRINGPRED_POLICY = mrs.PolicyWarn
	}
	DescribePred(predString)
	return nil
}

func PredCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       PredInspect,
		UsageLine: "pred -pred <predicate> [-warn]",
		Short:     "parses an MRS predicate",
		Long: `
parses an MRS predicate string into lemma, part of speech and sense;
strings with a leading underscore are read as surface (string) preds

	$ ./delphin pred -pred _dog_n_1_rel

`,
		Flag: *flag.NewFlagSet("pred", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&predString, "pred", "", "Predicate string (e.g. _dog_n_1_rel, udef_q_rel)")
	cmd.Flag.BoolVar(&predWarn, "warn", false, "Log a warning for malformed string preds")
	addCommonFlags(cmd)
	return cmd
}
