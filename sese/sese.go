package sese

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/bfs"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/udfs"
)

// Analyze decomposes g into a Program Structure Tree of single-entry
// single-exit regions (spec.md §4.6). g is read and briefly augmented
// with a synthetic exit node and back edge to its root for the duration
// of the analysis, then restored to its original state before Analyze
// returns; the returned Tree never references the synthetic node.
func Analyze(g *core.Graph) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	root := g.Root()
	if !g.HasNode(root) {
		return nil, fmt.Errorf("sese: %w", ErrNoRoot)
	}

	reach, err := bfs.Run(g, root)
	if err != nil {
		return nil, err
	}
	for _, id := range g.Nodes() {
		if !reach.Visited(id) {
			return nil, fmt.Errorf("sese: node %v: %w", id, ErrUnreachableExit)
		}
	}

	ed := core.NewEditor(g)
	ed.Push()

	exitNode, err := ed.MakeNode()
	if err != nil {
		return nil, err
	}
	for _, id := range g.Nodes() {
		if id == exitNode {
			continue
		}
		out, _ := g.OutEdges(id)
		if len(out) == 0 {
			if _, err := ed.MakeEdge(id, exitNode); err != nil {
				return nil, err
			}
		}
	}
	if _, err := ed.MakeEdge(exitNode, root); err != nil {
		return nil, err
	}

	order, err := udfs.Run(g, root, false)
	if err != nil {
		return nil, err
	}

	classOf, err := classify(g, order)
	if err != nil {
		return nil, err
	}

	pstRoot := extract(g, order, classOf)
	elide(pstRoot)
	stripSynthetic(g, pstRoot, exitNode)
	buildIOPairs(g, pstRoot)

	if err := ed.Pop(); err != nil {
		return nil, err
	}

	return &Tree{Root: pstRoot}, nil
}
