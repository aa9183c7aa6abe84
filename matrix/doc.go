// Package matrix provides a small dense integer matrix used by package
// simplex to hold per-edge cut-value bookkeeping during network
// simplex's spanning-tree pivoting (spec.md §4.7): a Dense indexed by
// (tree-edge index, graph-edge index) holding each graph edge's signed
// crossing of each tree edge's induced cut, so a tree edge's cut value
// is read off as its row sum once the partition is known.
package matrix
