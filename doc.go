// Package craftsolver computes optimal action sequences for a turn-based
// crafting minigame: given a recipe (progress/quality targets, durability,
// allowed actions) and a crafter (CP pool, progress/quality multipliers, job
// level), it produces a sequence of actions that completes the craft and
// maximizes quality, optionally under a step-count or duration tiebreak and
// optionally against an adversarial condition model.
//
// 🔧 What is craftsolver?
//
//	A dependency-light, single-threaded branch-and-bound solver built from:
//
//	  • simulator   — the deterministic state-transition function
//	  • actions     — the action/combo catalog and legality masks
//	  • pareto      — an arena-backed 2-D Pareto-front builder
//	  • finish      — a cheap "can this state still complete?" oracle
//	  • quality     — a memoized DP giving an admissible quality upper bound
//	  • steps       — a memoized DP giving an admissible step-count lower bound
//	  • queue       — the search frontier and backtrack log
//	  • macrosolver — the best-first branch-and-bound search tying it together
//
// Why this shape?
//
//   - Deterministic     — no randomness anywhere in the search; same input,
//     same output, always.
//   - Admissible bounds — the quality and step oracles never overestimate
//     quality or underestimate remaining steps, so branch-and-bound pruning
//     never discards the optimum (except under the explicitly-unsound,
//     opt-in pruning heuristic documented on SolverConfig).
//   - Cooperative cancellation — the finish and quality DPs check an
//     interrupt flag on entry and at each recursive descent, and the macro
//     search checks the flag and its context.Context before every pop; the
//     step DP takes no interrupt flag.
//
// craftsolver has no filesystem, network, or UI surface: it consumes
// simulator.Settings and a simulator.SimulationState and emits a list of
// actions. Hosts are responsible for recipe/item databases, macro rendering,
// persistence, and dispatching solves off their UI thread.
package craftsolver
