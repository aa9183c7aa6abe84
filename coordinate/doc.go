// Package coordinate turns a ranked, ordered graph into concrete pixel
// geometry (spec.md §4.9): it splits edges that span more than one
// layer with dummy waypoint nodes, stacks layers top-down into Y
// coordinates, relaxes node X coordinates toward their neighbours'
// average under priority-clamped bounds, assigns each inter-layer
// horizontal segment a channel so parallel edges don't overlap, and
// emits each edge's final four-point orthogonal waypoint sequence.
package coordinate
