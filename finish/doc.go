// Package finish implements a cheap reachability oracle: given a
// SimulationState, can any legal continuation reach progress ≥
// max_progress before durability or CP runs out? It is a coarse,
// memoized, pure forward search used to kill entire subtrees in the macro
// solver before the (much more expensive) quality and step bound solvers
// are asked to score them.
//
// The oracle is sound but not tight: it may say "reachable" for some states
// that a more careful search would reject (it ignores quality entirely and
// assumes every progress-only combo can be freely sequenced), but it never
// says "unreachable" for a state that can actually finish (spec.md §8,
// testable property 8). A false "unreachable" would silently drop optimal
// solutions, so every relaxation here is one-directional: optimistic about
// reachability, never pessimistic.
package finish
