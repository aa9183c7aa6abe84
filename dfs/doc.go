// Package dfs implements ordered (direction-respecting) depth-first
// traversal over a core.Graph, numbering every reachable node in visit
// order and classifying every edge as Tree, Back, Forward, Cross, or
// None (spec.md §4.4).
//
// Traversal is iterative (an explicit work-stack, not recursion) so
// cfgraph's dominator and cycle-removal passes have headroom on inputs
// with thousands of blocks, per spec.md §9.
package dfs
