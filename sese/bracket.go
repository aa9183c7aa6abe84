package sese

import (
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/udfs"
)

// bNode is one node of a hand-rolled doubly linked bracket list. Bracket
// lists need O(1) concatenation and O(1) deletion of an arbitrary
// element by reference; container/list's PushBackList copies values
// rather than splicing nodes, which would invalidate the element
// pointers classify keeps for later deletion, so the list is rolled by
// hand instead (spec.md §4.6, bracket-list bookkeeping).
type bNode struct {
	prev, next *bNode
	edgeID      core.EdgeID // core.InvalidEdgeID for a synthetic hi2 capping bracket
	recentSize  int
	recentClass int
}

type bList struct {
	head, tail *bNode
	size       int
}

func (l *bList) pushBack(edgeID core.EdgeID) *bNode {
	n := &bNode{edgeID: edgeID}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return n
}

func (l *bList) remove(n *bNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// concat splices other onto the back of l in place, consuming other.
func (l *bList) concat(other *bList) {
	if other == nil || other.size == 0 {
		return
	}
	if l.size == 0 {
		l.head, l.tail, l.size = other.head, other.tail, other.size
		return
	}
	l.tail.next = other.head
	other.head.prev = l.tail
	l.tail = other.tail
	l.size += other.size
}

// findTreeEdge returns the tree edge connecting child to its dfs-tree
// parent, as classified by a prior udfs.Run.
func findTreeEdge(g *core.Graph, order *udfs.Result, child, parent core.NodeID) core.EdgeID {
	inc, _ := g.Incident(child)
	for _, eid := range inc {
		if order.EdgeKinds[eid] != udfs.UTree {
			continue
		}
		ed, _ := g.Edge(eid)
		other := ed.To
		if other == child {
			other = ed.From
		}
		if other == parent {
			return eid
		}
	}
	return core.InvalidEdgeID
}

// classify assigns every spanning-tree edge a cycle-equivalence class by
// running Johnson, Pearson, and Pingali's bracket-list algorithm over
// the undirected DFS order: per node, from deepest to shallowest, it
// computes hi0 (the closest ancestor reached by one of the node's own
// back edges), hi1/hi2 (the smallest and second-smallest hi value among
// its children), merges the children's bracket lists, removes brackets
// whose back edge terminates at this node, pushes brackets for back
// edges leaving this node toward an ancestor, and stamps the tree edge
// to this node's parent with a fresh class unless the bracket on top of
// the list has not changed size since it was last stamped — in which
// case the existing class is reused, since an unchanged top bracket
// means this edge spans exactly the same region as the previous one.
func classify(g *core.Graph, order *udfs.Result) (map[core.EdgeID]int, error) {
	n := len(order.Order)
	hi := make([]int, n)
	lists := make([]*bList, n)
	elemOf := make(map[core.EdgeID]*bNode, n)
	classOf := make(map[core.EdgeID]int, n)
	// capping tracks every capping bracket by the dfs-number of the
	// ancestor it virtually terminates at, so it can be pulled out of
	// whatever list it ended up in once that ancestor is processed —
	// mirroring a real back edge's elemOf entry, since a capping
	// bracket is never attached to a live core.EdgeID to key elemOf by.
	capping := make(map[int][]*bNode, n)
	nextClass := 0

	for i := n - 1; i >= 0; i-- {
		v := order.Order[i]
		children := order.Children[v]
		inc, _ := g.Incident(v)

		hi0 := n
		for _, eid := range inc {
			if order.EdgeKinds[eid] != udfs.UBack {
				continue
			}
			w := otherEndpoint(g, eid, v)
			if wn := order.Number[w]; wn < i && wn < hi0 {
				hi0 = wn
			}
		}

		hi1, hi2 := n, n
		for _, c := range children {
			ch := hi[order.Number[c]]
			switch {
			case ch < hi1:
				hi1, hi2 = ch, hi1
			case ch < hi2:
				hi2 = ch
			}
		}

		h := hi0
		if hi1 < h {
			h = hi1
		}
		hi[i] = h

		l := &bList{}
		for _, c := range children {
			cn := order.Number[c]
			l.concat(lists[cn])
			lists[cn] = nil
		}

		for _, eid := range inc {
			if order.EdgeKinds[eid] != udfs.UBack {
				continue
			}
			w := otherEndpoint(g, eid, v)
			if order.Number[w] > i {
				if bn, ok := elemOf[eid]; ok {
					l.remove(bn)
					delete(elemOf, eid)
				}
			}
		}
		for _, bn := range capping[i] {
			l.remove(bn)
		}
		delete(capping, i)

		for _, eid := range inc {
			if order.EdgeKinds[eid] != udfs.UBack {
				continue
			}
			w := otherEndpoint(g, eid, v)
			if order.Number[w] < i {
				elemOf[eid] = l.pushBack(eid)
			}
		}

		// hi2 == i can only happen when two distinct children each reach
		// a real back edge straight into v itself; that edge is incident
		// to v and already stripped by the removal loop above, so there
		// is nothing left above v for a capping bracket to represent.
		if hi2 < hi0 && hi2 != i {
			bn := l.pushBack(core.InvalidEdgeID)
			capping[hi2] = append(capping[hi2], bn)
		}

		if p, ok := order.Parent[v]; ok {
			pe := findTreeEdge(g, order, v, p)
			if b := l.tail; b != nil {
				if b.recentSize == l.size {
					classOf[pe] = b.recentClass
				} else {
					nextClass++
					classOf[pe] = nextClass
					b.recentClass = nextClass
					b.recentSize = l.size
				}
			}
		}

		lists[i] = l
	}

	return classOf, nil
}

func otherEndpoint(g *core.Graph, eid core.EdgeID, from core.NodeID) core.NodeID {
	ed, _ := g.Edge(eid)
	if ed.From == from {
		return ed.To
	}
	return ed.From
}
