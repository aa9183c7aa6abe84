package sugiyama

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
)

// Result is everything a Run call persists once its editor frame pops:
// plain geometric data, entirely independent of the dummy nodes and
// reversed edges the pipeline used to compute it.
type Result struct {
	Pos       attribute.NodeAttribute[coordinate.Point]
	Size      attribute.NodeAttribute[coordinate.Size]
	Waypoints map[core.EdgeID][]coordinate.Point
	Width     int
	Height    int
	// EntryWaypoints and ExitWaypoints capture the IO-extremity
	// dummy edge's waypoint sequence, for the region driver's
	// boundary-stitching step (spec.md §4.11).
	EntryWaypoints []coordinate.Point
	ExitWaypoints  []coordinate.Point
}
