// Package sese decomposes a core.Graph into maximal single-entry
// single-exit regions using Johnson, Pearson, and Pingali's
// cycle-equivalence algorithm, and assembles the resulting regions into
// a Program Structure Tree (spec.md §4.6).
//
// Analyze proceeds in three stages: preprocessing adds a synthetic exit
// node and back-edge so the underlying undirected graph is amenable to
// bracket-list analysis; classify runs an unordered DFS and assigns
// every spanning-tree edge a cycle-equivalence class via per-node hi0/
// hi1/hi2 values and bracket-list bookkeeping; extract walks the
// spanning tree a second time, opening a new region whenever it meets a
// tree edge whose class is not already open and closing the
// innermost open region whenever a tree edge's class matches it,
// producing the PST. Single-node childless regions are elided into
// their parent, since they contribute no layout structure.
package sese
