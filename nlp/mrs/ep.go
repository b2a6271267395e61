package mrs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davidmoeljadi/pydelphin/util"
)

// Args maps role names (IVARG_ROLE, "ARG1", RSTR_ROLE, ...) to variables.
type Args map[string]*Variable

type Argument struct {
	Role  string
	Value *Variable
}

func toArgs(args interface{}) (Args, error) {
	var retval Args
	switch a := args.(type) {
	case nil:
		return Args{}, nil
	case Args:
		retval = a.copy()
	case map[string]*Variable:
		retval = Args(a).copy()
	case []Argument:
		retval = make(Args, len(a))
		for _, arg := range a {
			retval[arg.Role] = arg.Value
		}
	default:
		return nil, fmt.Errorf("args must map role names to variables, got %T: %w", args, ErrInvalidArgumentType)
	}
	for role, v := range retval {
		if v == nil {
			return nil, fmt.Errorf("role %s is bound to no variable: %w", role, ErrInvalidArgumentValue)
		}
	}
	return retval, nil
}

func (a Args) copy() Args {
	newA := make(Args, len(a))
	for k, v := range a {
		newA[k] = v
	}
	return newA
}

// Roles returns the role names in a stable order, intrinsic role first.
func (a Args) Roles() []string {
	roles := make([]string, 0, len(a))
	for role := range a {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i] == IVARG_ROLE || roles[j] == IVARG_ROLE {
			return roles[i] == IVARG_ROLE && roles[j] != IVARG_ROLE
		}
		return roles[i] < roles[j]
	})
	return roles
}

// An ElementaryPredication is a Node with a scope label and arguments.
type ElementaryPredication struct {
	Node
	Label *Variable
	Args  Args
}

var _ Alignable = &ElementaryPredication{}

func NewElementaryPredication(nodeid int, pred *Pred, label *Variable, args interface{}, lnk *Lnk) (*ElementaryPredication, error) {
	if pred == nil {
		return nil, fmt.Errorf("EP %d requires a pred: %w", nodeid, ErrMissingArgument)
	}
	if label == nil {
		return nil, fmt.Errorf("EP %d requires a label: %w", nodeid, ErrMissingArgument)
	}
	ep := &ElementaryPredication{
		Node:  Node{Lnked: Lnked{lnk}, NodeID: nodeid, Pred: pred, SortInfo: SortInfo{}},
		Label: label,
	}
	if err := ep.SetArgs(args); err != nil {
		return nil, err
	}
	return ep, nil
}

func (ep *ElementaryPredication) SetArgs(args interface{}) error {
	a, err := toArgs(args)
	if err != nil {
		return err
	}
	ep.Args = a
	return nil
}

// Intrinsic returns the variable bound to IVARG_ROLE, or nil.
func (ep *ElementaryPredication) Intrinsic() *Variable {
	return ep.Args[IVARG_ROLE]
}

// Properties are the properties of the intrinsic variable; an EP without
// one has none.
func (ep *ElementaryPredication) Properties() Properties {
	iv := ep.Intrinsic()
	if iv == nil || iv.Properties == nil {
		return Properties{}
	}
	return iv.Properties
}

func (ep *ElementaryPredication) IsQuantifier() bool {
	return ep.Pred.IsQuantifier()
}

func (ep *ElementaryPredication) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*ElementaryPredication)
	if !ok || ep == nil || other == nil {
		return ok && ep == other
	}
	if !ep.Node.Equal(&other.Node) || !ep.Label.Equal(other.Label) || len(ep.Args) != len(other.Args) {
		return false
	}
	for role, v := range ep.Args {
		otherV, exists := other.Args[role]
		if !exists || !v.Equal(otherV) {
			return false
		}
	}
	return true
}

func (ep *ElementaryPredication) String() string {
	pred := ep.Pred.String()
	if ep.Lnk != nil {
		pred += ep.Lnk.String()
	}
	fields := []string{pred, "LBL: " + ep.Label.String()}
	for _, role := range ep.Args.Roles() {
		fields = append(fields, role+": "+ep.Args[role].String())
	}
	return "[ " + strings.Join(fields, " ") + " ]"
}
