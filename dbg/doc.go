// Package dbg stores the node set of an implicit de Bruijn graph as a
// membership index over packed k-mer keys.
//
// Three backends share one builder/query contract: a hash set (any K,
// memory proportional to distinct keys), a dense bit vector (one bit per
// universe value, small K only), and a sparse compressed set (rank/select
// over a roaring bitmap, for sparse key sets in large universes). Edges
// are not stored; Successors derives them per query from k-mer overlap and
// node membership.
package dbg
