package mrs

// A Hook holds the externally visible variables of an MRS: the top handle,
// the index event and the external argument. Any of them may be nil.
type Hook struct {
	Top   *Variable
	Index *Variable
	XArg  *Variable
}

func (h Hook) String() string {
	return "[ LTOP: " + varOrUnderscore(h.Top) +
		" INDEX: " + varOrUnderscore(h.Index) +
		" XARG: " + varOrUnderscore(h.XArg) + " ]"
}

func varOrUnderscore(v *Variable) string {
	if v == nil {
		return "_"
	}
	return v.String()
}
