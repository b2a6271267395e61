package mrs

import (
	"fmt"

	"github.com/davidmoeljadi/pydelphin/alg/graph"
	"github.com/davidmoeljadi/pydelphin/util"
)

// A Link is a directed argument relation between two nodes: the argument
// named Rargname of node Start is node End, qualified by the post token
// (EQ_POST, HEQ_POST, NEQ_POST, H_POST or NIL_POST).
type Link struct {
	Start, End int
	Rargname   string
	Post       string
}

var _ graph.LabeledEdge = &Link{}

func NewLink(start, end int, rargname, post string) (*Link, error) {
	if rargname == "" {
		return nil, fmt.Errorf("link %d->%d requires a role name: %w", start, end, ErrMissingArgument)
	}
	if post == "" {
		return nil, fmt.Errorf("link %d->%d requires a post token: %w", start, end, ErrMissingArgument)
	}
	return &Link{start, end, rargname, post}, nil
}

func (l *Link) From() int {
	return l.Start
}

func (l *Link) To() int {
	return l.End
}

func (l *Link) Label() string {
	return l.Rargname + "/" + l.Post
}

func (l *Link) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Link)
	if !ok || l == nil || other == nil {
		return ok && l == other
	}
	return *l == *other
}

func (l *Link) String() string {
	return fmt.Sprintf("%d:%s/%s:%d", l.Start, l.Rargname, l.Post, l.End)
}
