package core

import "fmt"

// changeKind tags one recorded mutation inside an edit frame.
type changeKind int

const (
	createdNode changeKind = iota
	createdEdge
	deletedNode
	deletedEdge
	modifiedEdge
)

// change is one undo record. Only the fields relevant to kind are
// populated; the rest are zero.
type change struct {
	kind changeKind

	nodeID NodeID
	edgeID EdgeID

	// deletedNode / deletedEdge: the exact record as it stood before
	// deletion. deletedEdge / modifiedEdge: the index the edge held in
	// each endpoint's Incident slice, so Pop can restore the original
	// ordering (see spec.md §3 Invariants, "Editor round-trip").
	saved    NodeData
	savedE   EdgeData
	fromIdx  int
	toIdx    int
	mirrored bool // deletedEdge whose To differs from From, so it was also detached from To

	// modifiedEdge: the endpoints before EditEdge changed them.
	prevFrom NodeID
	prevTo   NodeID
}

// frame is one level of the Editor's edit stack.
type frame struct {
	changes []change
}

// Editor is the sole mutator of a Graph. All structural changes
// (MakeNode, MakeEdge, RemoveNode, RemoveEdge, EditEdge) are recorded in
// the topmost frame and applied to the Graph immediately; Pop replays
// the frame's records in reverse to restore prior state exactly.
type Editor struct {
	g      *Graph
	frames []*frame
}

// NewEditor returns an Editor over g. g must already exist (possibly
// empty); the Editor does not take ownership beyond mediating mutation.
func NewEditor(g *Graph) *Editor { return &Editor{g: g} }

// Graph returns the Editor's underlying graph for read access.
func (e *Editor) Graph() *Graph { return e.g }

// Depth reports how many frames are currently open.
func (e *Editor) Depth() int { return len(e.frames) }

// Push opens a new edit frame on top of the stack.
func (e *Editor) Push() {
	e.frames = append(e.frames, &frame{})
}

// Close asserts that no frames remain open. Call it when an Editor's
// owner is torn down; a non-empty stack at that point is a programmer
// error, not a recoverable one.
func (e *Editor) Close() error {
	if len(e.frames) != 0 {
		return fmt.Errorf("%w: %d frame(s) remain", ErrFramesOpen, len(e.frames))
	}
	return nil
}

func (e *Editor) top() (*frame, error) {
	if len(e.frames) == 0 {
		return nil, ErrNoOpenFrame
	}
	return e.frames[len(e.frames)-1], nil
}

// Commit discards the entire frame stack without undoing any recorded
// operation, making all tentative changes permanent. A Commit with an
// empty stack, or with a stack of frames that recorded no operations, is
// a no-op.
func (e *Editor) Commit() {
	e.frames = nil
}

// MakeNode creates a new live node and returns its ID. Fails with
// ErrNoOpenFrame if no frame is open.
func (e *Editor) MakeNode() (NodeID, error) {
	f, err := e.top()
	if err != nil {
		return InvalidNodeID, err
	}
	id := NodeID(len(e.g.nodes))
	e.g.nodes = append(e.g.nodes, NodeData{ID: id, Live: true})
	f.changes = append(f.changes, change{kind: createdNode, nodeID: id})
	return id, nil
}

// MakeEdge creates a new live edge from -> to and returns its ID. Fails
// with ErrNoOpenFrame if no frame is open, or ErrInvalidArgument if
// either endpoint is not a live node.
func (e *Editor) MakeEdge(from, to NodeID) (EdgeID, error) {
	f, err := e.top()
	if err != nil {
		return InvalidEdgeID, err
	}
	if !e.g.HasNode(from) || !e.g.HasNode(to) {
		return InvalidEdgeID, fmt.Errorf("core: MakeEdge(%v,%v): %w", from, to, ErrInvalidArgument)
	}
	id := EdgeID(len(e.g.edges))
	e.g.edges = append(e.g.edges, EdgeData{ID: id, From: from, To: to, Live: true})
	e.attach(from, id)
	if to != from {
		e.attach(to, id)
	}
	f.changes = append(f.changes, change{kind: createdEdge, edgeID: id})
	return id, nil
}

func (e *Editor) attach(n NodeID, eid EdgeID) {
	nd := &e.g.nodes[n]
	nd.Incident = append(nd.Incident, eid)
}

// detach removes the first occurrence of eid from n's Incident slice and
// returns the index it was removed from, so it can be reinserted at the
// same position later.
func (e *Editor) detach(n NodeID, eid EdgeID) int {
	nd := &e.g.nodes[n]
	for i, x := range nd.Incident {
		if x == eid {
			nd.Incident = append(nd.Incident[:i:i], nd.Incident[i+1:]...)
			return i
		}
	}
	return -1
}

func reinsert(s []EdgeID, idx int, eid EdgeID) []EdgeID {
	if idx < 0 || idx > len(s) {
		return append(s, eid)
	}
	s = append(s, InvalidEdgeID)
	copy(s[idx+1:], s[idx:])
	s[idx] = eid
	return s
}

// RemoveNode tombstones node id and cascades to remove every edge
// incident to it. Removing the graph's root is rejected with
// ErrRootRemoval; callers that intend to retarget the root must call
// SetRoot first. Fails with ErrNoOpenFrame if no frame is open, or
// ErrInvalidArgument if id is not a live node.
func (e *Editor) RemoveNode(id NodeID) error {
	f, err := e.top()
	if err != nil {
		return err
	}
	if !e.g.HasNode(id) {
		return fmt.Errorf("core: RemoveNode(%v): %w", id, ErrInvalidArgument)
	}
	if id == e.g.root {
		return fmt.Errorf("core: RemoveNode(%v): %w", id, ErrRootRemoval)
	}

	// Taken before the cascade empties the node's Incident slice, so Pop
	// restores the original incidence list.
	saved := e.g.nodes[id]

	// Cascade: remove every incident edge first so their undo records
	// precede the node's own deletedNode record (pop order relies on
	// this: edge deletions are replayed before node deletions).
	inc, _ := e.g.Incident(id)
	for _, eid := range inc {
		if err := e.removeEdgeInto(f, eid); err != nil {
			return err
		}
	}

	e.g.nodes[id].Live = false
	e.g.nodes[id].Incident = nil
	f.changes = append(f.changes, change{kind: deletedNode, nodeID: id, saved: saved})
	return nil
}

// RemoveEdge tombstones edge id and detaches it from both endpoints.
// Fails with ErrNoOpenFrame if no frame is open, or ErrInvalidArgument
// if id is not a live edge.
func (e *Editor) RemoveEdge(id EdgeID) error {
	f, err := e.top()
	if err != nil {
		return err
	}
	if !e.g.HasEdge(id) {
		return fmt.Errorf("core: RemoveEdge(%v): %w", id, ErrInvalidArgument)
	}
	return e.removeEdgeInto(f, id)
}

func (e *Editor) removeEdgeInto(f *frame, id EdgeID) error {
	ed := e.g.edges[id]
	fromIdx := e.detach(ed.From, id)
	toIdx := -1
	mirrored := ed.To != ed.From
	if mirrored {
		toIdx = e.detach(ed.To, id)
	}
	e.g.edges[id].Live = false
	f.changes = append(f.changes, change{
		kind: deletedEdge, edgeID: id, savedE: ed,
		fromIdx: fromIdx, toIdx: toIdx, mirrored: mirrored,
	})
	return nil
}

// EditEdge retargets edge id to run new_from -> new_to, preserving the
// edge's identity. Fails with ErrNoOpenFrame if no frame is open, or
// ErrInvalidArgument if id or either new endpoint is not live.
func (e *Editor) EditEdge(id EdgeID, newFrom, newTo NodeID) error {
	f, err := e.top()
	if err != nil {
		return err
	}
	if !e.g.HasEdge(id) || !e.g.HasNode(newFrom) || !e.g.HasNode(newTo) {
		return fmt.Errorf("core: EditEdge(%v): %w", id, ErrInvalidArgument)
	}
	ed := e.g.edges[id]
	fromIdx := e.detach(ed.From, id)
	toIdx := -1
	if ed.To != ed.From {
		toIdx = e.detach(ed.To, id)
	}
	e.g.edges[id].From = newFrom
	e.g.edges[id].To = newTo
	e.attach(newFrom, id)
	if newTo != newFrom {
		e.attach(newTo, id)
	}
	f.changes = append(f.changes, change{
		kind: modifiedEdge, edgeID: id, prevFrom: ed.From, prevTo: ed.To,
		fromIdx: fromIdx, toIdx: toIdx,
	})
	return nil
}

// Pop undoes every operation recorded in the top frame, restoring the
// graph to exactly the state it held before the matching Push, and
// removes that frame from the stack. Undo is applied category by
// category — edge edits, then edge deletions, then node deletions, then
// creations — each category in reverse recording order, per spec.md
// §4.1: reverting in any other order can momentarily expose a dangling
// ID (e.g. un-deleting an edge before its endpoint node exists again).
// Fails with ErrNoOpenFrame if no frame is open.
func (e *Editor) Pop() error {
	f, err := e.top()
	if err != nil {
		return err
	}
	e.frames = e.frames[:len(e.frames)-1]

	var edits, edgeDels, nodeDels, creations []change
	for _, c := range f.changes {
		switch c.kind {
		case modifiedEdge:
			edits = append(edits, c)
		case deletedEdge:
			edgeDels = append(edgeDels, c)
		case deletedNode:
			nodeDels = append(nodeDels, c)
		case createdNode, createdEdge:
			creations = append(creations, c)
		}
	}

	for i := len(edits) - 1; i >= 0; i-- {
		c := edits[i]
		ed := e.g.edges[c.edgeID]
		e.detach(ed.From, c.edgeID)
		if ed.To != ed.From {
			e.detach(ed.To, c.edgeID)
		}
		e.g.edges[c.edgeID].From = c.prevFrom
		e.g.edges[c.edgeID].To = c.prevTo
		nd := &e.g.nodes[c.prevFrom]
		nd.Incident = reinsert(nd.Incident, c.fromIdx, c.edgeID)
		if c.prevTo != c.prevFrom {
			nd2 := &e.g.nodes[c.prevTo]
			nd2.Incident = reinsert(nd2.Incident, c.toIdx, c.edgeID)
		}
	}

	for i := len(edgeDels) - 1; i >= 0; i-- {
		c := edgeDels[i]
		e.g.edges[c.edgeID] = c.savedE
		fromNode := &e.g.nodes[c.savedE.From]
		fromNode.Incident = reinsert(fromNode.Incident, c.fromIdx, c.edgeID)
		if c.mirrored {
			toNode := &e.g.nodes[c.savedE.To]
			toNode.Incident = reinsert(toNode.Incident, c.toIdx, c.edgeID)
		}
	}

	for i := len(nodeDels) - 1; i >= 0; i-- {
		c := nodeDels[i]
		e.g.nodes[c.nodeID] = c.saved
	}

	for i := len(creations) - 1; i >= 0; i-- {
		c := creations[i]
		switch c.kind {
		case createdNode:
			e.g.nodes[c.nodeID].Live = false
			e.g.nodes[c.nodeID].Incident = nil
		case createdEdge:
			ed := e.g.edges[c.edgeID]
			e.detach(ed.From, c.edgeID)
			if ed.To != ed.From {
				e.detach(ed.To, c.edgeID)
			}
			e.g.edges[c.edgeID].Live = false
		}
	}

	return nil
}
