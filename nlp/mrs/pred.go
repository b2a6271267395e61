package mrs

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/davidmoeljadi/pydelphin/util"
)

type PredType int

const (
	GRAMMARPRED PredType = iota
	STRINGPRED
	REALPRED
)

var predTypeNames = []string{"grammarpred", "stringpred", "realpred"}

func (t PredType) String() string {
	if int(t) < 0 || int(t) >= len(predTypeNames) {
		return "unknown"
	}
	return predTypeNames[t]
}

const (
	PRED_SEPARATOR = "_"
	REL_SUFFIX     = "_rel"
)

var quoteRunes = map[rune]bool{'"': true, '\'': true, '“': true, '”': true, '‘': true, '’': true}

// A Pred identifies the predicate of an EP. Form keeps the string it was
// built from (quotes included); Lemma, Pos and Sense are parsed out of it.
// An empty Pos or Sense means the string has none.
type Pred struct {
	Type  PredType
	Form  string
	Lemma string
	Pos   string
	Sense string
}

var _ util.Equaler = &Pred{}
var _ util.Keyer = &Pred{}

func newPred(t PredType, s string) *Pred {
	p := &Pred{Type: t, Form: s}
	p.Lemma, p.Pos, p.Sense, _ = SplitPredString(s)
	return p
}

func GrammarPred(s string) *Pred {
	return newPred(GRAMMARPRED, s)
}

// StringPred parses s as best it can; predicate strings taken from lexical
// resources are not always well-formed, so nothing here fails. Under
// PolicyWarn a partial parse is logged.
func StringPred(s string) *Pred {
	p := &Pred{Type: STRINGPRED, Form: s}
	var wellFormed bool
	p.Lemma, p.Pos, p.Sense, wellFormed = SplitPredString(s)
	if !wellFormed && STRINGPRED_POLICY == PolicyWarn {
		log.Printf("Warning: malformed predicate string %s (lemma=%q pos=%q sense=%q)", s, p.Lemma, p.Pos, p.Sense)
	}
	return p
}

// RealPred builds the string _lemma_pos[_sense]_rel. sense may be nil, a
// string or an integer.
func RealPred(lemma, pos string, sense interface{}) (*Pred, error) {
	if lemma == "" {
		return nil, fmt.Errorf("realpred lemma is required: %w", ErrMissingArgument)
	}
	if pos == "" {
		return nil, fmt.Errorf("realpred pos is required: %w", ErrMissingArgument)
	}
	var senseStr string
	switch s := sense.(type) {
	case nil:
	case string:
		senseStr = s
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		senseStr = fmt.Sprint(s)
	default:
		return nil, fmt.Errorf("realpred sense must be a string or integer, got %T: %w", sense, ErrInvalidArgumentType)
	}
	parts := []string{"", lemma, pos}
	if senseStr != "" {
		parts = append(parts, senseStr)
	}
	return &Pred{
		Type:  REALPRED,
		Form:  strings.Join(parts, PRED_SEPARATOR) + REL_SUFFIX,
		Lemma: lemma,
		Pos:   pos,
		Sense: senseStr,
	}, nil
}

// StringOrGrammarPred reads s as a string pred when it starts with an
// underscore inside any surrounding quotes.
func StringOrGrammarPred(s string) *Pred {
	if strings.HasPrefix(stripQuotes(s), PRED_SEPARATOR) {
		return StringPred(s)
	}
	return GrammarPred(s)
}

func (p *Pred) String() string {
	if p == nil {
		return ""
	}
	return p.Form
}

// Normalized is Form with one layer of surrounding quotes removed.
func (p *Pred) Normalized() string {
	return stripQuotes(p.Form)
}

// ShortForm is the normalized string without its _rel suffix.
func (p *Pred) ShortForm() string {
	return strings.TrimSuffix(p.Normalized(), REL_SUFFIX)
}

func (p *Pred) Key() string {
	return p.Normalized()
}

func (p *Pred) IsQuantifier() bool {
	return p.Pos == "q"
}

func (p *Pred) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Pred)
	if !ok || p == nil || other == nil {
		return ok && p == other
	}
	return p.Normalized() == other.Normalized()
}

func (p *Pred) EqualString(s string) bool {
	return p != nil && p.Normalized() == stripQuotes(s)
}

func stripQuotes(s string) string {
	if r, w := utf8.DecodeRuneInString(s); w > 0 && quoteRunes[r] {
		s = s[w:]
	}
	if r, w := utf8.DecodeLastRuneInString(s); w > 0 && quoteRunes[r] {
		s = s[:len(s)-w]
	}
	return s
}

// SplitPredString parses a predicate string into lemma, pos and sense. The
// last token is the sense unless it is a single character, in which case it
// is the pos; a sense may be preceded by a single-character pos. Whatever
// remains is the lemma. wellFormed reports whether the string had the
// expected lemma_pos[_sense] shape.
func SplitPredString(s string) (lemma, pos, sense string, wellFormed bool) {
	s = stripQuotes(s)
	s = strings.TrimSuffix(s, REL_SUFFIX)
	s = strings.TrimPrefix(s, PRED_SEPARATOR)
	toks := strings.Split(s, PRED_SEPARATOR)
	n := len(toks)
	switch {
	case n >= 3 && util.RuneLen(toks[n-2]) == 1:
		lemma, pos, sense = strings.Join(toks[:n-2], PRED_SEPARATOR), toks[n-2], toks[n-1]
		wellFormed = n == 3
	case n >= 2 && util.RuneLen(toks[n-1]) == 1:
		lemma, pos = strings.Join(toks[:n-1], PRED_SEPARATOR), toks[n-1]
		wellFormed = n == 2
	case n >= 2:
		lemma, sense = strings.Join(toks[:n-1], PRED_SEPARATOR), toks[n-1]
	default:
		lemma = s
	}
	wellFormed = wellFormed && lemma != ""
	return
}
