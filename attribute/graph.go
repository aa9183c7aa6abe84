package attribute

import "github.com/katalvlaran/cfgraph/core"

// NodeAttribute is a Store keyed by core.NodeID, the shape every
// per-node analysis result (dominators, ranks, coordinates) is passed
// around as.
type NodeAttribute[T any] struct{ s *Store[T] }

// NewNodeAttribute returns a NodeAttribute whose unset entries read as def.
func NewNodeAttribute[T any](def T) NodeAttribute[T] {
	return NodeAttribute[T]{s: NewStore(def)}
}

func (a NodeAttribute[T]) Get(id core.NodeID) T      { return a.s.Get(int(id)) }
func (a NodeAttribute[T]) Has(id core.NodeID) bool   { return a.s.Has(int(id)) }
func (a NodeAttribute[T]) Set(id core.NodeID, v T)    { a.s.Set(int(id), v) }
func (a NodeAttribute[T]) Unset(id core.NodeID)       { a.s.Unset(int(id)) }
func (a NodeAttribute[T]) Ids() []core.NodeID {
	raw := a.s.Ids()
	out := make([]core.NodeID, len(raw))
	for i, v := range raw {
		out[i] = core.NodeID(v)
	}
	return out
}

// EdgeAttribute is a Store keyed by core.EdgeID.
type EdgeAttribute[T any] struct{ s *Store[T] }

// NewEdgeAttribute returns an EdgeAttribute whose unset entries read as def.
func NewEdgeAttribute[T any](def T) EdgeAttribute[T] {
	return EdgeAttribute[T]{s: NewStore(def)}
}

func (a EdgeAttribute[T]) Get(id core.EdgeID) T    { return a.s.Get(int(id)) }
func (a EdgeAttribute[T]) Has(id core.EdgeID) bool { return a.s.Has(int(id)) }
func (a EdgeAttribute[T]) Set(id core.EdgeID, v T)  { a.s.Set(int(id), v) }
func (a EdgeAttribute[T]) Unset(id core.EdgeID)     { a.s.Unset(int(id)) }
func (a EdgeAttribute[T]) Ids() []core.EdgeID {
	raw := a.s.Ids()
	out := make([]core.EdgeID, len(raw))
	for i, v := range raw {
		out[i] = core.EdgeID(v)
	}
	return out
}
