package mrs

import (
	"fmt"
	"strings"

	"github.com/davidmoeljadi/pydelphin/util"
)

const (
	QEQ       = "qeq"
	LHEQ      = "lheq"
	OUTSCOPES = "outscopes"
)

// A HandleConstraint relates a higher handle Hi to a lower handle Lo. It is
// not symmetric: swapping Hi and Lo gives a different constraint.
type HandleConstraint struct {
	Hi       *Variable
	Relation string
	Lo       *Variable
}

var _ util.Equaler = &HandleConstraint{}
var _ util.Keyer = &HandleConstraint{}

func NewHandleConstraint(hi *Variable, relation string, lo *Variable) (*HandleConstraint, error) {
	if hi == nil {
		return nil, fmt.Errorf("handle constraint requires a hi handle: %w", ErrMissingArgument)
	}
	if relation == "" {
		return nil, fmt.Errorf("handle constraint requires a relation: %w", ErrMissingArgument)
	}
	if lo == nil {
		return nil, fmt.Errorf("handle constraint requires a lo handle: %w", ErrMissingArgument)
	}
	return &HandleConstraint{hi, relation, lo}, nil
}

// ParseHandleConstraint reads "h1 qeq h2".
func ParseHandleConstraint(s string) (*HandleConstraint, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, fmt.Errorf("handle constraint %q must have 3 fields, got %d: %w", s, len(fields), ErrInvalidArgumentCount)
	}
	hi, err := NewVariable(fields[0], nil)
	if err != nil {
		return nil, err
	}
	lo, err := NewVariable(fields[2], nil)
	if err != nil {
		return nil, err
	}
	return NewHandleConstraint(hi, strings.ToLower(fields[1]), lo)
}

func (hc *HandleConstraint) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*HandleConstraint)
	if !ok || hc == nil || other == nil {
		return ok && hc == other
	}
	return hc.Relation == other.Relation &&
		hc.Hi.Equal(other.Hi) &&
		hc.Lo.Equal(other.Lo)
}

func (hc *HandleConstraint) Key() string {
	return hc.String()
}

func (hc *HandleConstraint) String() string {
	return hc.Hi.String() + " " + hc.Relation + " " + hc.Lo.String()
}
