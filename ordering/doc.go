// Package ordering computes a per-layer vertex order that heuristically
// minimises edge crossings between adjacent layers (spec.md §4.8): an
// initial random shuffle is refined for a bounded number of iterations,
// alternating median placement (by child order on even iterations, by
// parent order on odd ones) with an adjacent-swap transpose pass, and
// the best ordering seen by total crossing count is kept.
package ordering
