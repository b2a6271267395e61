package mrs

import "github.com/davidmoeljadi/pydelphin/util"

// Equals compares *Variable, *Pred and plain string operands. Structured
// operands of the same type use their Equal methods; a structured operand
// against a string uses EqualString, so a variable with properties never
// equals its bare varstring. Two strings compare directly.
func Equals(a, b interface{}) bool {
	switch x := a.(type) {
	case string:
		switch y := b.(type) {
		case string:
			return x == y
		case *Variable:
			return y.EqualString(x)
		case *Pred:
			return y.EqualString(x)
		}
		return false
	case *Variable:
		if s, ok := b.(string); ok {
			return x.EqualString(s)
		}
	case *Pred:
		if s, ok := b.(string); ok {
			return x.EqualString(s)
		}
	}
	eqA, okA := a.(util.Equaler)
	eqB, okB := b.(util.Equaler)
	return okA && okB && eqA.Equal(eqB)
}

// KeyOf returns the hash key shared by a value and its string form.
func KeyOf(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case util.Keyer:
		return v.Key(), true
	}
	return "", false
}
