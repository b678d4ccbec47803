package finish

import (
	"github.com/katalvlaran/craftsolver/actions"
	"github.com/katalvlaran/craftsolver/simulator"
)

// progressRelevantEffects keeps only the effect fields that influence whether
// a state can still reach max_progress: veneration, muscle_memory,
// waste_not, manipulation and trained_perfection. Quality-only fields
// (inner_quiet, innovation, great_strides, guard, the single-use quality
// flags) never change whether progress is reachable, so folding them out
// of the key lets far more states share a memo entry.
func progressRelevantEffects(e simulator.Effects) simulator.Effects {
	var out simulator.Effects
	out = out.WithVeneration(e.Veneration())
	out = out.WithMuscleMemory(e.MuscleMemory())
	out = out.WithWasteNot(e.WasteNot())
	out = out.WithManipulation(e.Manipulation())
	out = out.WithTrainedPerfection(e.TrainedPerfection())
	return out
}

// reducedState is the finish solver's memo key (spec.md §3): the
// progress-only-relevant subset of a SimulationState.
type reducedState struct {
	progressDeficit uint16
	cp              int16
	durability      int8
	effects         simulator.Effects
}

func reduce(state simulator.SimulationState, settings *simulator.Settings) reducedState {
	deficit := uint16(0)
	if settings.MaxProgress > state.Progress {
		deficit = settings.MaxProgress - state.Progress
	}
	return reducedState{
		progressDeficit: deficit,
		cp:              state.CP,
		durability:      state.Durability,
		effects:         progressRelevantEffects(state.Effects),
	}
}

const (
	statusUnvisited = iota
	statusVisiting
	statusUnreachable
	statusReachable
)

// Solver owns one memo table for one solve. It is not safe for concurrent
// use.
type Solver struct {
	memo      map[reducedState]int
	interrupt *bool
}

// NewSolver returns a Solver whose memo table is empty. interrupt, if
// non-nil, is checked on every recursive descent (spec.md §5); when it
// becomes true CanFinish conservatively returns true rather than risk a
// false negative from a truncated search.
func NewSolver(interrupt *bool) *Solver {
	return &Solver{memo: make(map[reducedState]int), interrupt: interrupt}
}

// CanFinish reports whether some sequence of allowed actions from state can
// reach progress ≥ max_progress (spec.md §4.D). It is sound (never a false
// "no") but not tight (may answer "yes" for states a deeper search would
// reject).
func (s *Solver) CanFinish(state simulator.SimulationState, settings *simulator.Settings) bool {
	if state.IsFinal(settings) {
		return true
	}
	if s.interrupt != nil && *s.interrupt {
		return true
	}
	key := reduce(state, settings)
	switch s.memo[key] {
	case statusReachable:
		return true
	case statusUnreachable:
		return false
	case statusVisiting:
		// A cycle in the coarse state graph: treat as not (yet) proven
		// reachable via this path: other siblings may still prove it.
		return false
	}
	s.memo[key] = statusVisiting

	reachable := false
	for _, combo := range actions.ProgressOnlySearchActions {
		child, err := actions.UseActionCombo(actions.Flags{}, state, combo, settings)
		if err != nil {
			continue
		}
		if child.Durability <= 0 && !child.IsFinal(settings) {
			continue
		}
		if child == state {
			continue
		}
		if s.CanFinish(child, settings) {
			reachable = true
			break
		}
	}

	if reachable {
		s.memo[key] = statusReachable
	} else {
		s.memo[key] = statusUnreachable
	}
	return reachable
}
