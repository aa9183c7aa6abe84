package dominator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/dfs"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Compute.
var ErrGraphNil = errors.New("dominator: graph is nil")

// ErrNoRoot is returned when g has no root set.
var ErrNoRoot = errors.New("dominator: graph has no root")

// Compute returns, for every node reachable from g's root, its immediate
// dominator as a NodeAttribute; the root maps to core.InvalidNodeID.
// Unreachable nodes have no entry (NodeAttribute.Has reports false).
func Compute(g *core.Graph) (attribute.NodeAttribute[core.NodeID], error) {
	idom := attribute.NewNodeAttribute(core.InvalidNodeID)
	if g == nil {
		return idom, ErrGraphNil
	}
	root := g.Root()
	if !g.HasNode(root) {
		return idom, fmt.Errorf("dominator: %w", ErrNoRoot)
	}

	order, err := dfs.Run(g, root)
	if err != nil {
		return idom, err
	}
	n := len(order.Order) // dfs-numbered nodes, order.Order[i] has dfs number i

	// semi[i], label[i], ancestor[i] indexed by dfs number, i in [0,n).
	semi := make([]int, n)
	label := make([]int, n)
	ancestor := make([]int, n)
	parentDfs := make([]int, n) // dfs-tree parent's dfs number, -1 for root
	dom := make([]int, n)
	buckets := make([][]int, n)

	for i := 0; i < n; i++ {
		semi[i] = i
		label[i] = i
		ancestor[i] = -1
		dom[i] = -1
		parentDfs[i] = -1
	}
	for v, p := range order.Parent {
		parentDfs[order.Number[v]] = order.Number[p]
	}

	eval := func(v int) int {
		if ancestor[v] == -1 {
			return v
		}
		// Iterative path compression over the ancestor chain.
		var chain []int
		for a := v; ancestor[a] != -1; a = ancestor[a] {
			chain = append(chain, a)
		}
		for i := len(chain) - 2; i >= 0; i-- {
			child, gp := chain[i], ancestor[chain[i+1]]
			if semi[label[chain[i+1]]] < semi[label[child]] {
				label[child] = label[chain[i+1]]
			}
			ancestor[child] = gp
		}
		return label[v]
	}

	for i := n - 1; i >= 1; i-- {
		w := order.Order[i]
		inEdges, _ := g.InEdges(w)
		for _, eid := range inEdges {
			ed, _ := g.Edge(eid)
			if ed.From == w {
				continue // skip self-loops, not a real predecessor
			}
			u := ed.From
			un, ok := order.Number[u]
			if !ok {
				continue // predecessor unreachable from root
			}
			ue := eval(un)
			if semi[ue] < semi[i] {
				semi[i] = semi[ue]
			}
		}
		buckets[semi[i]] = append(buckets[semi[i]], i)
		ancestor[i] = parentDfs[i]

		p := parentDfs[i]
		for _, v := range buckets[p] {
			u := eval(v)
			if semi[u] < semi[v] {
				dom[v] = u
			} else {
				dom[v] = p
			}
		}
		buckets[p] = nil
	}

	for i := 1; i < n; i++ {
		if dom[i] != semi[i] {
			dom[i] = dom[dom[i]]
		}
	}
	dom[0] = -1

	for i := 1; i < n; i++ {
		idom.Set(order.Order[i], order.Order[dom[i]])
	}
	idom.Set(root, core.InvalidNodeID)
	return idom, nil
}
