// Package builder provides deterministic control-flow-graph fixtures
// used across cfgraph's tests and the cfgraphdemo CLI: small, named
// topologies (Diamond, ChainOfDiamonds, Wheel, Cycle) built through a
// single orchestrator and a functional-options config, in the same
// Constructor/BuildGraph shape the wider example corpus uses for
// synthetic graph construction.
//
// Every fixture sets a root node, since every cfgraph pipeline stage
// requires one, and every constructor is pure: given the same Config it
// produces structurally identical graphs.
package builder
