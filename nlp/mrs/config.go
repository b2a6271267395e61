package mrs

// Role names, post tokens and sort-info keys are opaque strings to this
// package; they are vars so util/conf can override them from a grammar's
// configuration.
var (
	IVARG_ROLE    = "ARG0"
	CONSTARG_ROLE = "CARG"
	RSTR_ROLE     = "RSTR"

	CVARSORT = "cvarsort"

	EQ_POST  = "EQ"
	HEQ_POST = "HEQ"
	NEQ_POST = "NEQ"
	H_POST   = "H"
	NIL_POST = "NIL"

	STRINGPRED_POLICY = PolicySilent
)

const (
	LTOP_NODEID  = 0
	FIRST_NODEID = 10000

	HANDLESORT = "h"
)

// A MalformedPolicy decides what StringPred does with a predicate string it
// can only parse partially. Parsing never fails either way.
type MalformedPolicy int

const (
	PolicySilent MalformedPolicy = iota
	PolicyWarn
)

var policyNames = []string{"silent", "warn"}

func (p MalformedPolicy) String() string {
	if int(p) < 0 || int(p) >= len(policyNames) {
		return "unknown"
	}
	return policyNames[p]
}

func ParseMalformedPolicy(name string) (MalformedPolicy, bool) {
	for i, n := range policyNames {
		if n == name {
			return MalformedPolicy(i), true
		}
	}
	return PolicySilent, false
}
