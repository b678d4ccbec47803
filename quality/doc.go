// Package quality implements the admissible quality upper-bound DP
// (spec.md §4.E): for any SimulationState s, QualityUpperBound(s) returns
// current_quality plus an additional-quality bound, capped at the caller's
// max quality, such that no legal continuation from s can reach a higher
// quality while also finishing the craft.
//
// The DP never touches absolute progress or quality: it memoizes, per
// reduced state, the Pareto front of (additional progress, additional
// quality) achievable by any legal tail, then answers a query by binary-
// searching that front for the caller's actual missing progress. Three
// relaxations make the bound an upper bound rather than an exact value —
// CP is effectively unlimited for the DP's own bookkeeping, every action is
// simulated at the Normal condition, and durability is removed from the
// state entirely and replaced by a CP tariff (durabilityCostPerFive) — all
// three are monotone-favorable substitutions for the real game, so no legal
// play can ever beat the bound they produce.
package quality
