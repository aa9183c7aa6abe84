// Package subgraph implements a live view onto a subset of a core.Graph,
// presenting the same read interface as a full graph while delegating
// every structural mutation to the parent graph's Editor (spec.md §4.2).
//
// A SubGraph selects nodes and edges of a graph without copying the
// underlying graph. The region layout driver (package region) does not
// use it: it builds a fresh core.Graph for each SESE region instead.
package subgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cfgraph/core"
)

// SubGraph holds a deduplicated selection of nodes and edges from a
// parent graph (reported in ascending order by Nodes and Edges), plus an
// optional distinguished root.
type SubGraph struct {
	parent *core.Graph
	editor *core.Editor
	nodes  map[core.NodeID]struct{}
	edges  map[core.EdgeID]struct{}
	root   core.NodeID
}

// New returns an empty SubGraph over parent, mutated through editor.
func New(parent *core.Graph, editor *core.Editor) *SubGraph {
	return &SubGraph{
		parent: parent,
		editor: editor,
		nodes:  make(map[core.NodeID]struct{}),
		edges:  make(map[core.EdgeID]struct{}),
		root:   core.InvalidNodeID,
	}
}

// Parent returns the graph this SubGraph is a view over.
func (s *SubGraph) Parent() *core.Graph { return s.parent }

// Editor returns the editor used to mutate the parent graph.
func (s *SubGraph) Editor() *core.Editor { return s.editor }

// Root returns the SubGraph's distinguished root, or InvalidNodeID.
func (s *SubGraph) Root() core.NodeID { return s.root }

// SetRoot designates id, which must already be selected, as this
// SubGraph's root.
func (s *SubGraph) SetRoot(id core.NodeID) error {
	if _, ok := s.nodes[id]; !ok {
		return fmt.Errorf("subgraph: SetRoot %v: %w", id, errNotSelected)
	}
	s.root = id
	return nil
}

// SelectNode inserts id into the selection (idempotent) and pulls in
// every live edge of id whose other endpoint is already selected,
// matching spec.md §4.2.
func (s *SubGraph) SelectNode(id core.NodeID) error {
	if !s.parent.HasNode(id) {
		return fmt.Errorf("subgraph: SelectNode %v: %w", id, errUnknownNode)
	}
	if _, ok := s.nodes[id]; ok {
		return nil
	}
	s.nodes[id] = struct{}{}

	inc, err := s.parent.Incident(id)
	if err != nil {
		return err
	}
	for _, eid := range inc {
		ed, _ := s.parent.Edge(eid)
		other := ed.To
		if other == id {
			other = ed.From
		}
		if _, ok := s.nodes[other]; ok {
			s.edges[eid] = struct{}{}
		}
	}
	return nil
}

// UnselectNode removes id from the selection along with every edge that
// referenced it, the inverse of SelectNode.
func (s *SubGraph) UnselectNode(id core.NodeID) {
	if _, ok := s.nodes[id]; !ok {
		return
	}
	delete(s.nodes, id)
	for eid := range s.edges {
		ed, ok := s.parent.Edge(eid)
		if !ok || ed.From == id || ed.To == id {
			delete(s.edges, eid)
		}
	}
	if s.root == id {
		s.root = core.InvalidNodeID
	}
}

// HasNode reports whether id is selected and still live in the parent.
func (s *SubGraph) HasNode(id core.NodeID) bool {
	_, ok := s.nodes[id]
	return ok && s.parent.HasNode(id)
}

// HasEdge reports whether id is selected and still live in the parent.
func (s *SubGraph) HasEdge(id core.EdgeID) bool {
	_, ok := s.edges[id]
	return ok && s.parent.HasEdge(id)
}

// Nodes returns the selected, still-live node IDs in ascending order.
func (s *SubGraph) Nodes() []core.NodeID {
	out := make([]core.NodeID, 0, len(s.nodes))
	for id := range s.nodes {
		if s.parent.HasNode(id) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges returns the selected, still-live edge IDs in ascending order.
func (s *SubGraph) Edges() []core.EdgeID {
	out := make([]core.EdgeID, 0, len(s.edges))
	for id := range s.edges {
		if s.parent.HasEdge(id) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Incident returns the edges of id that belong to this SubGraph's
// selection, in the parent's incidence order.
func (s *SubGraph) Incident(id core.NodeID) ([]core.EdgeID, error) {
	if !s.HasNode(id) {
		return nil, fmt.Errorf("subgraph: Incident %v: %w", id, errNotSelected)
	}
	inc, err := s.parent.Incident(id)
	if err != nil {
		return nil, err
	}
	out := inc[:0:0]
	for _, eid := range inc {
		if s.HasEdge(eid) {
			out = append(out, eid)
		}
	}
	return out, nil
}

// Push delegates to the parent Editor.
func (s *SubGraph) Push() { s.editor.Push() }

// MakeNode creates a node on the parent and selects it.
func (s *SubGraph) MakeNode() (core.NodeID, error) {
	id, err := s.editor.MakeNode()
	if err != nil {
		return core.InvalidNodeID, err
	}
	s.nodes[id] = struct{}{}
	return id, nil
}

// MakeEdge creates an edge on the parent between two already-selected
// nodes and selects it.
func (s *SubGraph) MakeEdge(from, to core.NodeID) (core.EdgeID, error) {
	if !s.HasNode(from) || !s.HasNode(to) {
		return core.InvalidEdgeID, fmt.Errorf("subgraph: MakeEdge(%v,%v): %w", from, to, errNotSelected)
	}
	id, err := s.editor.MakeEdge(from, to)
	if err != nil {
		return core.InvalidEdgeID, err
	}
	s.edges[id] = struct{}{}
	return id, nil
}

// RemoveEdge delegates to the parent Editor and drops id from the
// selection.
func (s *SubGraph) RemoveEdge(id core.EdgeID) error {
	if err := s.editor.RemoveEdge(id); err != nil {
		return err
	}
	delete(s.edges, id)
	return nil
}

// Pop pops the parent Editor's frame, then prunes any selected ids that
// no longer exist in the parent (spec.md §4.2).
func (s *SubGraph) Pop() error {
	if err := s.editor.Pop(); err != nil {
		return err
	}
	for id := range s.nodes {
		if !s.parent.HasNode(id) {
			delete(s.nodes, id)
		}
	}
	for id := range s.edges {
		if !s.parent.HasEdge(id) {
			delete(s.edges, id)
		}
	}
	if s.root != core.InvalidNodeID && !s.parent.HasNode(s.root) {
		s.root = core.InvalidNodeID
	}
	return nil
}
