package simplex

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/internal/log"
	"github.com/katalvlaran/cfgraph/matrix"
)

// maxPivots bounds the pivot loop so a bug in cut-value bookkeeping
// cannot spin forever; real CFG graphs settle in far fewer exchanges.
const maxPivots = 10000

// Compute assigns every node reachable from g's root a rank and returns
// the ranks plus the number of distinct layers. logger may be nil, in
// which case internal/log.Nop() is used.
func Compute(g *core.Graph, logger *log.Logger) (attribute.NodeAttribute[int], int, error) {
	ranks := attribute.NewNodeAttribute(0)
	if logger == nil {
		logger = log.Nop("simplex")
	}
	if g == nil {
		return ranks, 0, ErrGraphNil
	}
	root := g.Root()
	if !g.HasNode(root) {
		return ranks, 0, fmt.Errorf("simplex: %w", ErrNoRoot)
	}

	nodes := g.Nodes()
	initial, err := initialRanks(g, nodes)
	if err != nil {
		return ranks, 0, err
	}

	tree, err := tightSpanningTree(g, nodes, initial)
	if err != nil {
		return ranks, 0, err
	}

	pivots := 0
	for {
		eid, ok, err := negativeCutEdge(g, nodes, tree)
		if err != nil {
			return ranks, 0, err
		}
		if !ok {
			break
		}
		pivots++
		if pivots > maxPivots {
			logger.Warn("simplex: pivot cap reached, accepting current ranking", "cap", maxPivots)
			break
		}
		if !pivot(g, nodes, tree, eid) {
			// No replacement edge found for a negative cut: the
			// partition has no crossing edge in the needed direction,
			// which can only happen if cut-value bookkeeping has a
			// bug. Accept the ranking rather than loop forever.
			logger.Warn("simplex: no entering edge found for negative cut, accepting current ranking")
			break
		}
	}

	maxRank := 0
	for _, n := range nodes {
		if r := tree.rank[n]; r > maxRank {
			maxRank = r
		}
	}
	for _, n := range nodes {
		ranks.Set(n, maxRank-tree.rank[n]+1)
	}
	return ranks, maxRank + 1, nil
}

// initialRanks assigns rank 0 to every source node and rank
// max(parent ranks)+1 to every other node, visiting nodes in
// Kahn-topological order. Returns ErrCyclic if g is not a DAG.
func initialRanks(g *core.Graph, nodes []core.NodeID) (map[core.NodeID]int, error) {
	indeg := make(map[core.NodeID]int, len(nodes))
	for _, n := range nodes {
		in, _ := g.InEdges(n)
		indeg[n] = len(in)
	}

	queue := make([]core.NodeID, 0, len(nodes))
	for _, n := range nodes {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}

	rank := make(map[core.NodeID]int, len(nodes))
	visited := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		visited++
		out, _ := g.OutEdges(v)
		for _, eid := range out {
			ed, _ := g.Edge(eid)
			w := ed.To
			if r := rank[v] + 1; r > rank[w] {
				rank[w] = r
			}
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	if visited != len(nodes) {
		return nil, ErrCyclic
	}
	return rank, nil
}

// tree holds the current feasible tree: which edges are tree edges and
// every node's current rank.
type tree struct {
	inTree map[core.EdgeID]bool
	rank   map[core.NodeID]int
}

func slack(g *core.Graph, rank map[core.NodeID]int, eid core.EdgeID) int {
	ed, _ := g.Edge(eid)
	return rank[ed.To] - rank[ed.From] - 1
}

// tightSpanningTree grows a tree of zero-slack edges from nodes[0],
// shifting the tree's component ranks by the minimum slack whenever no
// tight incident edge is available, until every node is spanned.
func tightSpanningTree(g *core.Graph, nodes []core.NodeID, initial map[core.NodeID]int) (*tree, error) {
	rank := make(map[core.NodeID]int, len(nodes))
	for n, r := range initial {
		rank[n] = r
	}

	t := &tree{inTree: map[core.EdgeID]bool{}, rank: rank}
	if len(nodes) == 0 {
		return t, nil
	}

	inTreeNode := map[core.NodeID]bool{nodes[0]: true}
	spanned := 1

	allEdges := func() []core.EdgeID {
		seen := map[core.EdgeID]bool{}
		var out []core.EdgeID
		for _, n := range nodes {
			inc, _ := g.Incident(n)
			for _, eid := range inc {
				if !seen[eid] {
					seen[eid] = true
					out = append(out, eid)
				}
			}
		}
		return out
	}()

	for spanned < len(nodes) {
		var tightCandidate core.EdgeID = core.InvalidEdgeID
		var minSlackEdge core.EdgeID = core.InvalidEdgeID
		minSlack := -1

		for _, eid := range allEdges {
			ed, _ := g.Edge(eid)
			fromIn, toIn := inTreeNode[ed.From], inTreeNode[ed.To]
			if fromIn == toIn {
				continue // both or neither endpoint in tree: not a boundary edge
			}
			s := slack(g, rank, eid)
			if s == 0 {
				tightCandidate = eid
				break
			}
			if minSlack == -1 || s < minSlack {
				minSlack = s
				minSlackEdge = eid
			}
		}

		if tightCandidate == core.InvalidEdgeID {
			if minSlackEdge == core.InvalidEdgeID {
				return nil, ErrCyclic // no boundary edge at all: graph disconnected from root
			}
			ed, _ := g.Edge(minSlackEdge)
			delta := minSlack
			if inTreeNode[ed.From] {
				// shift the tree component down by delta to tighten this edge
				for n := range inTreeNode {
					rank[n] += delta
				}
			} else {
				for n := range inTreeNode {
					rank[n] -= delta
				}
			}
			tightCandidate = minSlackEdge
		}

		ed, _ := g.Edge(tightCandidate)
		t.inTree[tightCandidate] = true
		if inTreeNode[ed.From] {
			inTreeNode[ed.To] = true
		} else {
			inTreeNode[ed.From] = true
		}
		spanned++
	}

	return t, nil
}

// component returns the set of nodes reachable from start using only
// tree edges other than excluded, i.e. one side of the cut excluded's
// removal induces.
func component(g *core.Graph, nodes []core.NodeID, t *tree, excluded core.EdgeID, start core.NodeID) map[core.NodeID]bool {
	visited := map[core.NodeID]bool{start: true}
	queue := []core.NodeID{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		inc, _ := g.Incident(v)
		for _, eid := range inc {
			if eid == excluded || !t.inTree[eid] {
				continue
			}
			ed, _ := g.Edge(eid)
			w := ed.To
			if w == v {
				w = ed.From
			}
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return visited
}

// cutTable holds, for every current tree edge (a row) and every graph
// edge (a column), that graph edge's signed contribution to the tree
// edge's cut value: +1 if it runs tail-side to head-side, -1 if the
// reverse, 0 if both endpoints fall on the same side. A tree edge's cut
// value is then its row sum — the matrix.Dense bookkeeping spec.md's
// network simplex description calls for, rather than re-summing ad hoc
// on every query.
type cutTable struct {
	table      *matrix.Dense
	treeEdges  []core.EdgeID
	graphEdges []core.EdgeID
	rowOf      map[core.EdgeID]int
}

func buildCutTable(g *core.Graph, nodes []core.NodeID, t *tree) (*cutTable, error) {
	treeEdges := make([]core.EdgeID, 0, len(t.inTree))
	for eid := range t.inTree {
		treeEdges = append(treeEdges, eid)
	}
	graphEdges := g.Edges()

	dense, err := matrix.NewDense(len(treeEdges), len(graphEdges))
	if err != nil {
		return nil, err
	}
	rowOf := make(map[core.EdgeID]int, len(treeEdges))

	for i, te := range treeEdges {
		rowOf[te] = i
		ted, _ := g.Edge(te)
		tailSide := component(g, nodes, t, te, ted.From)
		for j, ge := range graphEdges {
			gd, _ := g.Edge(ge)
			fromTail, toTail := tailSide[gd.From], tailSide[gd.To]
			switch {
			case fromTail && !toTail:
				_ = dense.Set(i, j, 1)
			case !fromTail && toTail:
				_ = dense.Set(i, j, -1)
			}
		}
	}

	return &cutTable{table: dense, treeEdges: treeEdges, graphEdges: graphEdges, rowOf: rowOf}, nil
}

func (c *cutTable) value(eid core.EdgeID) int {
	i, ok := c.rowOf[eid]
	if !ok {
		return 0
	}
	sum, _ := c.table.RowSum(i)
	return sum
}

func negativeCutEdge(g *core.Graph, nodes []core.NodeID, t *tree) (core.EdgeID, bool, error) {
	if len(t.inTree) == 0 || len(g.Edges()) == 0 {
		return core.InvalidEdgeID, false, nil
	}
	ct, err := buildCutTable(g, nodes, t)
	if err != nil {
		return core.InvalidEdgeID, false, err
	}
	for _, eid := range ct.treeEdges {
		if ct.value(eid) < 0 {
			return eid, true, nil
		}
	}
	return core.InvalidEdgeID, false, nil
}

// pivot replaces leaving (a negative-cut tree edge) with the
// minimum-slack non-tree edge crossing the cut in the opposite
// direction, then shifts the tail component's ranks so the entering
// edge becomes tight. Reports false if no such entering edge exists.
func pivot(g *core.Graph, nodes []core.NodeID, t *tree, leaving core.EdgeID) bool {
	ed, _ := g.Edge(leaving)
	tailSide := component(g, nodes, t, leaving, ed.From)

	var entering core.EdgeID = core.InvalidEdgeID
	minSlack := -1
	seen := map[core.EdgeID]bool{}
	for _, n := range nodes {
		inc, _ := g.Incident(n)
		for _, other := range inc {
			if seen[other] || other == leaving {
				continue
			}
			seen[other] = true
			od, _ := g.Edge(other)
			// entering edge runs head-side -> tail-side, the reverse of
			// the leaving edge's direction, to correct the negative cut.
			if !tailSide[od.From] && tailSide[od.To] {
				s := slack(g, t.rank, other)
				if minSlack == -1 || s < minSlack {
					minSlack = s
					entering = other
				}
			}
		}
	}
	if entering == core.InvalidEdgeID {
		return false
	}

	delta := minSlack
	for n := range tailSide {
		t.rank[n] -= delta
	}
	delete(t.inTree, leaving)
	t.inTree[entering] = true
	return true
}
