// Package queue implements the macro solver's best-first search frontier
// (spec.md §4.H): a priority queue of partially-played states ordered by
// SearchScore, plus a backtrack log so the winning path can be
// reconstructed without each queue entry carrying its own action slice.
//
// The queue doubles as a branch-and-bound pruning device: a running
// minimum acceptable score (seeded from a cheap greedy rollout, then
// tightened every time a state or a completed solution beats it) lets Pop
// terminate the whole search the moment the best remaining candidate can
// no longer beat what is already guaranteed, mirroring how
// lvlath/tsp's branch-and-bound search prunes by an admissible bound
// instead of exhausting the tree.
package queue
