package macrosolver

import (
	"github.com/katalvlaran/craftsolver/finish"
	"github.com/katalvlaran/craftsolver/quality"
	"github.com/katalvlaran/craftsolver/simulator"
)

// fastLowerBound plays one greedy rollout to completion and returns the
// quality it actually achieves: a cheap, genuinely-playable solution that
// seeds the search queue's minimum-acceptable score. Any branch that can
// never beat a real achieved quality is worth pruning immediately, so a
// tighter seed here means a smaller search tree — but an incorrect (too
// high) seed would make the search reject the true optimum, so every step
// only ever commits to an action that the finish solver still proves
// reachable.
//
// At each state it considers every action in the live search mask and
// keeps whichever one yields the highest one-step quality upper bound
// among those that stay finishable; ties keep the first (lowest-numbered)
// action. It gives up and returns 0 the moment no candidate action keeps
// the craft finishable, since the rollout then never completes.
func fastLowerBound(state simulator.SimulationState, settings *simulator.Settings, config *SolverConfig, finishSolver *finish.Solver, qualitySolver *quality.Solver) uint16 {
	qualityTarget := config.QualityTarget
	if qualityTarget == 0 {
		qualityTarget = settings.MaxQuality
	}

	for !state.IsFinal(settings) {
		mask := searchMaskFor(state, settings, config, qualityTarget)

		var bestAction simulator.Action
		var bestBound uint16
		found := false

		mask.Iterate(func(a simulator.Action) bool {
			child, err := simulator.UseAction(state, a, simulator.Normal, settings)
			if err != nil {
				return true
			}
			if !child.IsFinal(settings) && !finishSolver.CanFinish(child, settings) {
				return true
			}
			bound := effectiveQuality(child, settings)
			if bound < qualityTarget {
				if b, err := qualitySolver.QualityUpperBound(child, qualityTarget); err == nil && b > bound {
					bound = b
				}
			}
			if !found || bound > bestBound {
				bestBound, bestAction, found = bound, a, true
			}
			return true
		})

		if !found {
			break
		}
		next, err := simulator.UseAction(state, bestAction, simulator.Normal, settings)
		if err != nil {
			break
		}
		state = next
	}

	if !state.IsFinal(settings) {
		return 0
	}
	return effectiveQuality(state, settings)
}
