// Package macrosolver is the top-level entry point: it turns a starting
// SimulationState into a finished macro (spec.md §4.G). It owns one
// finish.Solver, one quality.Solver and one steps.Solver and drives them
// from a queue.SearchQueue in a best-first branch-and-bound search over
// individual Actions (not the actions package's ActionCombo groupings —
// those exist to collapse branching inside the inner DPs; the macro itself
// must be a flat list of primitive actions).
//
// The search explores states in order of queue.Score: highest quality
// upper bound first, ties broken by duration or step count depending on
// SolverConfig.MinimizeSteps. Every popped state that is one action away
// from max_progress is a candidate solution; the search keeps going until
// the frontier is exhausted or nothing left in it can beat the best
// solution found so far, at which point that solution is provably optimal
// under the configured tie-break order.
package macrosolver
