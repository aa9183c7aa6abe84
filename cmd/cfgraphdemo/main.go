// Command cfgraphdemo builds one of cfgraph's builtin fixture graphs,
// runs it through the full layout pipeline, and either prints summary
// statistics or exports an SVG rendering. It has no file-I/O surface
// beyond --out; source adapters, progress reporting, and every other
// out-of-scope collaborator spec.md §1 names stay external to cfgraph
// itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/builder"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/internal/log"
	"github.com/katalvlaran/cfgraph/layout"
	"github.com/katalvlaran/cfgraph/render"
)

var fixtures = map[string]func(int) builder.Constructor{
	"diamond": func(int) builder.Constructor { return builder.Diamond() },
	"chain":   func(n int) builder.Constructor { return builder.ChainOfDiamonds(n) },
	"wheel":   func(n int) builder.Constructor { return builder.Wheel(n) },
	"cycle":   func(n int) builder.Constructor { return builder.Cycle(n) },
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fixture string
		size    int
		nodeW   int
		nodeH   int
		out     string
		verbose bool
	)

	root := &cobra.Command{
		Use:          "cfgraphdemo",
		Short:        "Lay out a builtin control-flow-graph fixture and report or export it",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.WarnLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.New(os.Stderr, level, "cfgraphdemo")

			cons, ok := fixtures[fixture]
			if !ok {
				return fmt.Errorf("cfgraphdemo: unknown --fixture %q (want one of diamond, chain, wheel, cycle)", fixture)
			}

			g, err := builder.BuildGraph(nil, cons(size))
			if err != nil {
				return fmt.Errorf("cfgraphdemo: building fixture: %w", err)
			}
			logger.Debug("fixture built", "fixture", fixture, "nodes", g.NodeCount(), "edges", g.EdgeCount())

			sizes := attribute.NewNodeAttribute(coordinate.Size{Width: nodeW, Height: nodeH})
			cfg, err := layout.FromGraph(g, sizes)
			if err != nil {
				return fmt.Errorf("cfgraphdemo: laying out fixture: %w", err)
			}
			logger.Info("layout built",
				"nodes", cfg.NodeCount(), "edges", cfg.EdgeCount(),
				"width", cfg.GetWidth(), "height", cfg.GetHeight())

			if out == "" {
				printStats(fixture, cfg.NodeCount(), cfg.EdgeCount(), cfg.GetWidth(), cfg.GetHeight())
				return nil
			}

			svg := render.NewSVGRenderer(render.WithBackground(render.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
			if err := cfg.Render(svg); err != nil {
				return fmt.Errorf("cfgraphdemo: rendering: %w", err)
			}
			if err := svg.Save(out); err != nil {
				return fmt.Errorf("cfgraphdemo: saving %s: %w", out, err)
			}
			logger.Info("wrote svg", "path", out)
			printWrote(out)
			return nil
		},
	}

	root.Flags().StringVar(&fixture, "fixture", "diamond", "fixture to build: diamond, chain, wheel, cycle")
	root.Flags().IntVar(&size, "size", 3, "fixture size parameter (diamond count for chain, spoke count for wheel, node count for cycle; ignored for diamond)")
	root.Flags().IntVar(&nodeW, "node-width", 120, "uniform node width")
	root.Flags().IntVar(&nodeH, "node-height", 60, "uniform node height")
	root.Flags().StringVar(&out, "out", "", "write an SVG rendering to this path instead of printing stats")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return root
}
