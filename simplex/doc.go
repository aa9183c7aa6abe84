// Package simplex assigns every node of an acyclic core.Graph a
// non-negative integer rank (layer) using Gansner et al.'s network
// simplex algorithm (spec.md §4.7): an initial feasible ranking is
// tightened into a spanning tree of zero-slack edges, each tree edge's
// cut value is computed, and tree edges with a negative cut value are
// repeatedly exchanged for a minimum-slack non-tree edge crossing the
// cut in the opposite direction until every cut value is non-negative,
// at which point the ranking is optimal. Ranks are then inverted so the
// graph's root sits at the top (the maximum rank) per spec.md's layer
// convention.
//
// Compute assumes its input has already had cycles removed (package
// sugiyama's driver does this ahead of calling in); a back edge reaching
// Compute is reported as ErrCyclic.
package simplex
