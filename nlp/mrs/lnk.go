package mrs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davidmoeljadi/pydelphin/util"
)

// LnkType is a surface addressing mode. It is an open string type so a raw
// Lnk can carry a mode this package does not know.
type LnkType string

const (
	CHARSPAN  LnkType = "charspan"
	CHARTSPAN LnkType = "chartspan"
	TOKENS    LnkType = "tokens"
	EDGE      LnkType = "edge"
)

// A Lnk aligns a semantic entity with the surface string. Data holds two
// offsets for CHARSPAN and CHARTSPAN, any number of token ids for TOKENS and
// a single edge id for EDGE.
type Lnk struct {
	Type LnkType
	Data []int
}

var _ util.Equaler = &Lnk{}

// NewLnk stores type and data as given.
func NewLnk(t LnkType, data ...int) *Lnk {
	return &Lnk{t, data}
}

func CharSpan(args ...interface{}) (*Lnk, error) {
	return span(CHARSPAN, args)
}

func ChartSpan(args ...interface{}) (*Lnk, error) {
	return span(CHARTSPAN, args)
}

func span(t LnkType, args []interface{}) (*Lnk, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s takes 2 arguments (from, to), got %d: %w", t, len(args), ErrInvalidArgumentCount)
	}
	from, err := toNonNegInt(args[0])
	if err != nil {
		return nil, err
	}
	to, err := toNonNegInt(args[1])
	if err != nil {
		return nil, err
	}
	return &Lnk{t, []int{from, to}}, nil
}

// Tokens takes a slice of integer-convertible ids; an empty slice is allowed.
func Tokens(idlist interface{}) (*Lnk, error) {
	if idlist == nil {
		return nil, fmt.Errorf("tokens requires a list of ids, got nil: %w", ErrInvalidArgumentType)
	}
	val := reflect.ValueOf(idlist)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("tokens requires a list of ids, got %T: %w", idlist, ErrInvalidArgumentType)
	}
	data := make([]int, val.Len())
	for i := range data {
		id, err := toNonNegInt(val.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		data[i] = id
	}
	return &Lnk{TOKENS, data}, nil
}

func Edge(id interface{}) (*Lnk, error) {
	eid, err := toNonNegInt(id)
	if err != nil {
		return nil, err
	}
	return &Lnk{EDGE, []int{eid}}, nil
}

// EdgeID returns the edge id of an EDGE lnk.
func (l *Lnk) EdgeID() (int, bool) {
	if l == nil || l.Type != EDGE || len(l.Data) != 1 {
		return 0, false
	}
	return l.Data[0], true
}

func (l *Lnk) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Lnk)
	if !ok || l == nil || other == nil {
		return ok && l == other
	}
	if l.Type != other.Type || len(l.Data) != len(other.Data) {
		return false
	}
	for i, d := range l.Data {
		if other.Data[i] != d {
			return false
		}
	}
	return true
}

// String renders the lnk in its SimpleMRS surface form: <0:1> for
// character spans, <0#1> for chart spans, <1 2 3> for tokens and <@1> for
// edges.
func (l *Lnk) String() string {
	if l == nil {
		return ""
	}
	strs := make([]string, len(l.Data))
	for i, d := range l.Data {
		strs[i] = strconv.Itoa(d)
	}
	switch l.Type {
	case CHARSPAN:
		return "<" + strings.Join(strs, ":") + ">"
	case CHARTSPAN:
		return "<" + strings.Join(strs, "#") + ">"
	case EDGE:
		return "<@" + strings.Join(strs, "") + ">"
	case TOKENS:
		return "<" + strings.Join(strs, " ") + ">"
	default:
		return fmt.Sprintf("<%s %s>", l.Type, strings.Join(strs, " "))
	}
}

// ParseLnk reads the forms written by String for the four known types.
func ParseLnk(s string) (*Lnk, error) {
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return nil, fmt.Errorf("lnk %q is not enclosed in <>: %w", s, ErrInvalidArgumentValue)
	}
	body := s[1 : len(s)-1]
	switch {
	case strings.HasPrefix(body, "@"):
		return Edge(body[1:])
	case strings.Contains(body, ":"):
		return spanFromString(CHARSPAN, body, ":")
	case strings.Contains(body, "#"):
		return spanFromString(CHARTSPAN, body, "#")
	default:
		return Tokens(strings.Fields(body))
	}
}

func spanFromString(t LnkType, body, sep string) (*Lnk, error) {
	parts := strings.Split(body, sep)
	args := make([]interface{}, len(parts))
	for i, p := range parts {
		args[i] = p
	}
	return span(t, args)
}

func toNonNegInt(value interface{}) (int, error) {
	var (
		i   int
		err error
	)
	switch v := value.(type) {
	case int:
		i = v
	case int8:
		i = int(v)
	case int16:
		i = int(v)
	case int32:
		i = int(v)
	case int64:
		i = int(v)
	case uint:
		i = int(v)
	case uint8:
		i = int(v)
	case uint16:
		i = int(v)
	case uint32:
		i = int(v)
	case uint64:
		i = int(v)
	case string:
		i, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer: %w", v, ErrInvalidArgumentValue)
		}
	default:
		return 0, fmt.Errorf("expected an integer or numeric string, got %T: %w", value, ErrInvalidArgumentType)
	}
	if i < 0 {
		return 0, fmt.Errorf("%d is negative: %w", i, ErrInvalidArgumentValue)
	}
	return i, nil
}

// Alignable is implemented by entities carrying an optional Lnk.
type Alignable interface {
	CFrom() int
	CTo() int
}

// Lnked is embedded to give a type an optional Lnk and its character
// offsets. Offsets are -1 unless the lnk is a CHARSPAN.
type Lnked struct {
	Lnk *Lnk
}

var _ Alignable = Lnked{}

func (l Lnked) CFrom() int {
	if l.Lnk != nil && l.Lnk.Type == CHARSPAN && len(l.Lnk.Data) > 0 {
		return l.Lnk.Data[0]
	}
	return -1
}

func (l Lnked) CTo() int {
	if l.Lnk != nil && l.Lnk.Type == CHARSPAN && len(l.Lnk.Data) > 1 {
		return l.Lnk.Data[1]
	}
	return -1
}
