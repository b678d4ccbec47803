package quality

import "github.com/katalvlaran/craftsolver/simulator"

// reducedState is the quality DP's memo key. It excludes absolute progress
// and quality (the Pareto front itself encodes how quality trades off
// against additional progress) and excludes manipulation's live tick count
// (its remaining value is folded into fusedCP as a one-time CP credit
// before the key is formed, per spec.md §4.E/§9).
type reducedState struct {
	fusedCP      int32
	effects      simulator.Effects
	combo        simulator.Combo
	progressOnly bool
}

// foldManipulation credits fusedCP for the durability manipulation would
// still restore over its remaining lifetime, then clears the field so two
// states that differ only in how much manipulation they have left (but
// agree once that credit is folded in) share a memo entry.
func foldManipulation(fusedCP int32, e simulator.Effects, durabilityCostPerFive int32) (int32, simulator.Effects) {
	ticks := int32(e.Manipulation())
	fusedCP += ticks * durabilityCostPerFive
	return fusedCP, e.WithManipulation(0)
}
