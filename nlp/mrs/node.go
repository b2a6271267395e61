package mrs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davidmoeljadi/pydelphin/alg/graph"
	"github.com/davidmoeljadi/pydelphin/util"
)

// SortInfo maps sort-property names (CVARSORT, "PER", "NUM", ...) to values.
type SortInfo map[string]string

type SortInfoPair struct {
	Key, Value string
}

func (s SortInfo) Copy() SortInfo {
	newS := make(SortInfo, len(s))
	for k, v := range s {
		newS[k] = v
	}
	return newS
}

// toSortInfo accepts a mapping or an ordered list of pairs; later pairs win.
func toSortInfo(sortinfo interface{}) (SortInfo, error) {
	switch si := sortinfo.(type) {
	case nil:
		return SortInfo{}, nil
	case SortInfo:
		return si.Copy(), nil
	case map[string]string:
		return SortInfo(si).Copy(), nil
	case [][2]string:
		retval := make(SortInfo, len(si))
		for _, pair := range si {
			retval[pair[0]] = pair[1]
		}
		return retval, nil
	case []SortInfoPair:
		retval := make(SortInfo, len(si))
		for _, pair := range si {
			retval[pair.Key] = pair.Value
		}
		return retval, nil
	default:
		return nil, fmt.Errorf("sortinfo must be a mapping or a list of pairs, got %T: %w", sortinfo, ErrInvalidArgumentType)
	}
}

// A Node is a predicate instance identified by a node id, as used in the
// dependency views of an MRS. Node ids are always integers; string ids are
// not accepted.
type Node struct {
	Lnked
	NodeID   int
	Pred     *Pred
	SortInfo SortInfo
}

var _ graph.Vertex = &Node{}
var _ Alignable = &Node{}

func NewNode(nodeid int, pred *Pred, sortinfo interface{}, lnk *Lnk) (*Node, error) {
	if pred == nil {
		return nil, fmt.Errorf("node %d requires a pred: %w", nodeid, ErrMissingArgument)
	}
	n := &Node{Lnked: Lnked{lnk}, NodeID: nodeid, Pred: pred}
	if err := n.SetSortInfo(sortinfo); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) SetSortInfo(sortinfo interface{}) error {
	si, err := toSortInfo(sortinfo)
	if err != nil {
		return err
	}
	n.SortInfo = si
	return nil
}

// CVarSort is the sort of the node's characteristic variable, or "" if
// unknown.
func (n *Node) CVarSort() string {
	return n.SortInfo[CVARSORT]
}

func (n *Node) SetCVarSort(sort string) {
	if n.SortInfo == nil {
		n.SortInfo = make(SortInfo)
	}
	n.SortInfo[CVARSORT] = sort
}

func (n *Node) ID() int {
	return n.NodeID
}

func (n *Node) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Node)
	if !ok || n == nil || other == nil {
		return ok && n == other
	}
	return n.NodeID == other.NodeID &&
		n.Pred.Equal(other.Pred) &&
		sortInfoEqual(n.SortInfo, other.SortInfo) &&
		lnkEqual(n.Lnk, other.Lnk)
}

func (n *Node) String() string {
	fields := []string{fmt.Sprintf("%d", n.NodeID), n.Pred.String()}
	if n.Lnk != nil {
		fields[1] += n.Lnk.String()
	}
	if len(n.SortInfo) > 0 {
		fields = append(fields, util.FormatKVList(n.SortInfo))
	}
	return strings.Join(fields, ":")
}

func sortInfoEqual(a, b SortInfo) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func lnkEqual(a, b *Lnk) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}
