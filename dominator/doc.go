// Package dominator computes immediate dominators over a core.Graph
// reachable from its root using the Lengauer-Tarjan algorithm with
// path-compressed semidominator evaluation (spec.md §4.5).
//
// For every node reachable from root, its immediate dominator is the
// unique closest node through which every root-to-node path must pass;
// the root itself has no immediate dominator (core.InvalidNodeID).
package dominator
