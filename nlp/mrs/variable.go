package mrs

import (
	"fmt"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/davidmoeljadi/pydelphin/util"
)

// Properties maps a variable property name (e.g. "num", "tense") to its value.
type Properties map[string]string

func (p Properties) Copy() Properties {
	newP := make(Properties, len(p))
	for k, v := range p {
		newP[k] = v
	}
	return newP
}

func (p Properties) String() string {
	return util.FormatKVList(p)
}

func toProperties(properties interface{}) (Properties, error) {
	switch props := properties.(type) {
	case nil:
		return Properties{}, nil
	case Properties:
		if props == nil {
			return Properties{}, nil
		}
		return props.Copy(), nil
	case map[string]string:
		if props == nil {
			return Properties{}, nil
		}
		return Properties(props).Copy(), nil
	case map[string]interface{}:
		retval := make(Properties, len(props))
		for k, v := range props {
			retval[k] = fmt.Sprint(v)
		}
		return retval, nil
	default:
		return nil, fmt.Errorf("properties must be a mapping, got %T: %w", properties, ErrInvalidArgumentType)
	}
}

// A Variable is an MRS variable such as x1, e2 or h3: a sort, a positive
// numeric id and an optional property mapping. Sort and vid are fixed at
// construction; Properties belongs to whichever EP owns the variable.
type Variable struct {
	sort       string
	vid        int
	Properties Properties
}

var _ util.Equaler = &Variable{}
var _ util.Keyer = &Variable{}

func NewVariable(varstring string, properties interface{}) (*Variable, error) {
	sort, vid, err := splitVarstring(varstring)
	if err != nil {
		return nil, err
	}
	props, err := toProperties(properties)
	if err != nil {
		return nil, err
	}
	return &Variable{sort, vid, props}, nil
}

func VariableFromVidSort(vid int, sort string, properties interface{}) (*Variable, error) {
	if vid == 0 {
		return nil, fmt.Errorf("variable id is required: %w", ErrMissingArgument)
	}
	if sort == "" {
		return nil, fmt.Errorf("variable sort is required: %w", ErrMissingArgument)
	}
	if vid < 0 {
		return nil, fmt.Errorf("variable id must be positive, got %d: %w", vid, ErrInvalidArgumentValue)
	}
	v, err := NewVariable(sort+strconv.Itoa(vid), properties)
	if err != nil {
		return nil, err
	}
	if v.sort != sort {
		return nil, fmt.Errorf("sort %q is not alphabetic: %w", sort, ErrInvalidVariableFormat)
	}
	return v, nil
}

func (v *Variable) Sort() string {
	return v.sort
}

func (v *Variable) Vid() int {
	return v.vid
}

func (v *Variable) Varstring() string {
	return v.sort + strconv.Itoa(v.vid)
}

func (v *Variable) String() string {
	if v == nil {
		return ""
	}
	return v.Varstring()
}

// Key is the varstring alone, so a variable and its bare varstring share
// a map key while property-bearing variables still differ under Equal.
func (v *Variable) Key() string {
	return v.Varstring()
}

func (v *Variable) IsHandle() bool {
	return v.sort == HANDLESORT
}

func (v *Variable) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Variable)
	if !ok || v == nil || other == nil {
		return ok && v == other
	}
	return v.sort == other.sort &&
		v.vid == other.vid &&
		propertiesEqual(v.Properties, other.Properties)
}

// EqualString holds only for a property-less variable whose varstring is s.
func (v *Variable) EqualString(s string) bool {
	return v != nil && len(v.Properties) == 0 && v.Varstring() == s
}

func propertiesEqual(a, b Properties) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// SortVidSplit splits a varstring into its sort (the leading run of
// letters) and its vid (the trailing run of digits).
func SortVidSplit(varstring string) (string, string, error) {
	i := 0
	for i < len(varstring) {
		r, w := utf8.DecodeRuneInString(varstring[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += w
	}
	sort, vid := varstring[:i], varstring[i:]
	if sort == "" {
		return "", "", fmt.Errorf("no sort in variable %q: %w", varstring, ErrInvalidVariableFormat)
	}
	if vid == "" {
		return "", "", fmt.Errorf("no id in variable %q: %w", varstring, ErrInvalidVariableFormat)
	}
	for _, c := range vid {
		if c < '0' || c > '9' {
			return "", "", fmt.Errorf("non-numeric id in variable %q: %w", varstring, ErrInvalidVariableFormat)
		}
	}
	if vid[0] == '0' {
		return "", "", fmt.Errorf("id of variable %q is not a positive integer: %w", varstring, ErrInvalidVariableFormat)
	}
	return sort, vid, nil
}

func VarSort(varstring string) (string, error) {
	sort, _, err := SortVidSplit(varstring)
	return sort, err
}

func VarID(varstring string) (int, error) {
	_, vid, err := splitVarstring(varstring)
	return vid, err
}

func splitVarstring(varstring string) (string, int, error) {
	sort, vidStr, err := SortVidSplit(varstring)
	if err != nil {
		return "", 0, err
	}
	vid, err := strconv.Atoi(vidStr)
	if err != nil {
		return "", 0, fmt.Errorf("id of variable %q out of range: %w", varstring, ErrInvalidVariableFormat)
	}
	return sort, vid, nil
}
