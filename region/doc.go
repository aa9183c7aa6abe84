// Package region drives layout recursively over a sese.Tree (spec.md
// §4.11): bottom-up, it materialises a fresh graph for every region
// (its direct members plus one synthetic node per child region),
// runs package sugiyama over it, and copies the synthetic node's
// resulting bounding box up to the parent; top-down, it translates
// each region's nodes and waypoints by its placement inside the
// parent and stitches the parent's crossing edge onto the child
// region's IO waypoint sequence so the path reads as one continuous
// orthogonal line.
package region
