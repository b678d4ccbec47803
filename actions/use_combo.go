package actions

import "github.com/katalvlaran/craftsolver/simulator"

// Flags are the macro solver options that influence combo legality and
// progress-only detection, duplicated here (rather than imported from
// macrosolver) to keep actions free of a dependency on the search package.
type Flags struct {
	BackloadProgress         bool
	AllowUnsoundBranchPruning bool
}

// IsProgressOnlyState reports whether state should be treated as
// progress-only for the remainder of the search: once flagged, all
// quality-altering combos are excluded and any quality-only effects carried
// on state are stripped by UseActionCombo.
//
// Backloading marks any state with nonzero progress as progress-only. The
// unsound-pruning heuristic additionally flags states where veneration is
// already active under backloading, or where Byregot's Blessing has
// already reset inner_quiet to zero while quality is nonzero (a strong
// signal that no further quality-relevant play is worthwhile) — neither
// check is admissible, hence "unsound": it can discard the true optimum.
func IsProgressOnlyState(flags Flags, state simulator.SimulationState) bool {
	if flags.BackloadProgress && state.Progress != 0 {
		return true
	}
	if flags.AllowUnsoundBranchPruning {
		if flags.BackloadProgress && state.Effects.Veneration() != 0 {
			return true
		}
		if state.Quality != 0 && state.Effects.InnerQuiet() == 0 {
			return true
		}
	}
	return false
}

// UseActionCombo applies every primitive in combo in sequence under the
// Normal condition, then — if the resulting state is progress-only —
// strips quality-only effects (unreliable_quality, inner_quiet, innovation,
// great_strides, guard, quick_innovation_available) before resetting the
// combo slot to None, matching the original solver's combo-application
// contract.
func UseActionCombo(flags Flags, state simulator.SimulationState, combo ActionCombo, settings *simulator.Settings) (simulator.SimulationState, error) {
	for _, a := range combo.Actions() {
		var err error
		state, err = simulator.UseAction(state, a, simulator.Normal, settings)
		if err != nil {
			return state, err
		}
	}
	if IsProgressOnlyState(flags, state) {
		state.UnreliableQuality = 0
		state.Effects = state.Effects.
			WithInnerQuiet(0).
			WithInnovation(0).
			WithGreatStrides(0).
			WithGuard(0).
			WithQuickInnovationAvailable(false)
	}
	state.Combo = simulator.ComboNone
	return state, nil
}
