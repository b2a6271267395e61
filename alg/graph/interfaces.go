package graph

import "github.com/davidmoeljadi/pydelphin/util"

type Vertex interface {
	util.Equaler
	ID() int
}

type DirectedEdge interface {
	util.Equaler
	From() int
	To() int
}

type LabeledEdge interface {
	DirectedEdge
	Label() string
}
