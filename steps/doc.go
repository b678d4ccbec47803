// Package steps implements the step lower-bound DP (spec.md §4.F): for any
// SimulationState, StepLowerBound returns a lower bound S*(state) on the
// number of additional actions any legal continuation needs to both finish
// the craft and reach max_quality.
//
// The search runs two internal DPs over the same step-budgeted reduced
// state. A fast variant answers "can step_budget actions reach max_quality,
// ignoring CP and durability entirely" — used to home in on a candidate
// budget quickly via doubling-then-bisection, since dropping both resources
// only ever makes more action sequences reachable, never fewer, so the fast
// variant's answer is itself a lower bound on the true one. A slow variant
// then respects real durability (CP stays unlimited) to tighten that
// candidate up to S*(state). Both DPs reuse the Pareto-front machinery in package
// pareto the same way package quality does, just keyed additionally by the
// remaining step budget.
package steps
