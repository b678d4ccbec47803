package macrosolver

import "github.com/katalvlaran/craftsolver/simulator"

// The macro solver walks individual Actions (not actions.ActionCombo
// groupings), so it needs its own plain ActionMask categorization: every
// action that primarily advances progress, every action that primarily
// advances quality, and every action that manages CP/durability/combo
// state rather than advancing either. A state that has already reached
// its quality target (or, under BackloadProgress, any state with nonzero
// progress) only ever needs the progress+durability actions; a state that
// still needs quality needs the full union.
var (
	progressActions = maskOf(
		simulator.BasicSynthesis,
		simulator.CarefulSynthesis,
		simulator.Groundwork,
		simulator.PrudentSynthesis,
		simulator.IntensiveSynthesis,
		simulator.DelicateSynthesis,
		simulator.MuscleMemory,
		simulator.Veneration,
	)

	qualityActions = maskOf(
		simulator.BasicTouch,
		simulator.StandardTouch,
		simulator.AdvancedTouch,
		simulator.PreparatoryTouch,
		simulator.PrudentTouch,
		simulator.TrainedFinesse,
		simulator.RefinedTouch,
		simulator.Reflect,
		simulator.ByregotsBlessing,
		simulator.PreciseTouch,
		simulator.TrainedEye,
		simulator.GreatStrides,
		simulator.Innovation,
		simulator.QuickInnovation,
	)

	durabilityActions = maskOf(
		simulator.MasterMend,
		simulator.WasteNot,
		simulator.WasteNot2,
		simulator.Manipulation,
		simulator.ImmaculateMend,
		simulator.TrainedPerfection,
		simulator.Observe,
		simulator.TricksOfTheTrade,
		simulator.HeartAndSoul,
	)

	// fullSearchActionMask is every action the search ever considers from a
	// state that still needs quality.
	fullSearchActionMask = progressActions.Union(qualityActions).Union(durabilityActions)

	// progressSearchActionMask is the reduced mask used once a branch has
	// been committed to progress-only play: no quality action can improve
	// the outcome from here, so excluding them shrinks the tree.
	progressSearchActionMask = progressActions.Union(durabilityActions)
)

func maskOf(acts ...simulator.Action) simulator.ActionMask {
	var m simulator.ActionMask
	for _, a := range acts {
		m = m.Add(a)
	}
	return m
}

// searchMaskFor picks the action set to branch on from state: the full set
// while quality still matters, the progress-only set once it stops
// mattering (either because the target is already met, or because
// backloading has committed this branch to progress-only play).
func searchMaskFor(state simulator.SimulationState, settings *simulator.Settings, config *SolverConfig, qualityTarget uint16) simulator.ActionMask {
	progressOnly := effectiveQuality(state, settings) >= qualityTarget ||
		(config.BackloadProgress && state.Progress != 0)
	if progressOnly {
		return progressSearchActionMask.Intersection(settings.AllowedActions)
	}
	return fullSearchActionMask.Intersection(settings.AllowedActions)
}

// effectiveQuality is the quality value the search treats as authoritative:
// the worst-case guaranteed quality under adversarial conditions, or the
// expected quality otherwise.
func effectiveQuality(state simulator.SimulationState, settings *simulator.Settings) uint16 {
	if settings.Adversarial {
		return state.ReliableQuality()
	}
	return state.Quality
}
