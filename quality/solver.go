package quality

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/craftsolver/actions"
	"github.com/katalvlaran/craftsolver/internal/telemetry"
	"github.com/katalvlaran/craftsolver/pareto"
	"github.com/katalvlaran/craftsolver/simulator"
)

// ErrInterrupted is returned when the interrupt flag was observed mid-solve
// (spec.md §5); callers treat it as a cancellation, not a bug.
var ErrInterrupted = errors.New("quality: interrupted")

// hugeCP/hugeDurability stand in for "unlimited" within one recursive
// descent: the real CP/durability budget is tracked out-of-band as
// reducedState.fusedCP, so the simulator itself only needs enough headroom
// that it never blocks a single action or combo from applying.
const (
	hugeCP         int16 = 30000
	hugeDurability int8  = 120
)

// Solver owns one memo table and Pareto arena for one solve. Not safe for
// concurrent use.
type Solver struct {
	relaxedSettings simulator.Settings
	flags           actions.Flags
	interrupt       *bool

	durabilityCostPerFive int32
	wasteNot1MinCP        int32
	wasteNot2MinCP        int32

	memo    map[reducedState]pareto.FrontID
	builder *pareto.Builder[uint16, uint16]
}

// NewSolver builds a Solver for one recipe/crafter combination. settings is
// copied; its MaxCP/MaxDurability are not used directly by the DP (they are
// relaxed internally) but MaxProgress/MaxQuality bound the Pareto front.
func NewSolver(settings *simulator.Settings, flags actions.Flags, interrupt *bool) *Solver {
	relaxed := *settings
	relaxed.MaxCP = hugeCP
	relaxed.MaxDurability = hugeDurability

	durabilityCost := int32(100)
	if settings.AllowedActions.Has(simulator.MasterMend) {
		durabilityCost = minInt32(durabilityCost, int32(simulator.MasterMend.BaseCPCost())/6)
	}
	if settings.AllowedActions.Has(simulator.Manipulation) {
		durabilityCost = minInt32(durabilityCost, int32(simulator.Manipulation.BaseCPCost())/8)
	}
	if settings.AllowedActions.Has(simulator.ImmaculateMend) {
		maxRestored := int32(settings.MaxDurability)/5 - 1
		if maxRestored > 0 {
			durabilityCost = minInt32(durabilityCost, int32(simulator.ImmaculateMend.BaseCPCost())/maxRestored)
		}
	}
	if durabilityCost < 1 {
		durabilityCost = 1
	}

	return &Solver{
		relaxedSettings:       relaxed,
		flags:                 flags,
		interrupt:             interrupt,
		durabilityCostPerFive: durabilityCost,
		wasteNot1MinCP:        wasteNotMinCP(56, 4, durabilityCost),
		wasteNot2MinCP:        wasteNotMinCP(98, 8, durabilityCost),
		memo:                  make(map[reducedState]pareto.FrontID),
		builder:               pareto.NewBuilder[uint16, uint16](settings.MaxProgress, settings.MaxQuality),
	}
}

// wasteNotMinCP precomputes the minimum CP a state must hold for
// WasteNot/WasteNot2 to plausibly pay for itself over restoring durability
// directly through the durability_cost CP tariff (supplemented feature #2,
// SPEC_FULL.md).
func wasteNotMinCP(actionCP, effectDuration, durabilityCost int32) int32 {
	const basicSynthCP int32 = 0
	const groundworkCP int32 = 18
	minDurabilitySave := (actionCP-1)/durabilityCost + 1
	if minDurabilitySave > effectDuration*2 {
		return math.MaxInt32
	}
	doubleDurCount := maxInt32(0, minDurabilitySave-effectDuration)
	singleDurCount := absInt32(minDurabilitySave - effectDuration)
	doubleDurCost := doubleDurCount * (groundworkCP + durabilityCost*2)
	singleDurCost := singleDurCount * (basicSynthCP + durabilityCost)
	return actionCP + doubleDurCost + singleDurCost - durabilityCost
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
func absInt32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

func satAddU16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(sum)
}

// QualityUpperBound returns Q*(state): current_quality plus an admissible
// upper bound on the additional quality reachable by any legal continuation
// that also finishes the craft (spec.md §4.E).
func (s *Solver) QualityUpperBound(state simulator.SimulationState, maxQuality uint16) (uint16, error) {
	if s.interrupt != nil && *s.interrupt {
		return 0, ErrInterrupted
	}

	missingProgress := uint16(0)
	if s.relaxedSettings.MaxProgress > state.Progress {
		missingProgress = s.relaxedSettings.MaxProgress - state.Progress
	}

	fusedCP, effects := foldManipulation(int32(state.CP)+int32(state.Durability)/5*s.durabilityCostPerFive, state.Effects, s.durabilityCostPerFive)
	progressOnly := actions.IsProgressOnlyState(s.flags, state)
	key := reducedState{fusedCP: fusedCP, effects: effects, combo: state.Combo, progressOnly: progressOnly}

	// The working buffer is scratch for exactly one top-level query's
	// recursion tree: wipe whatever the previous query left behind before
	// building this one (mirrors the original's pre-solve clear). Only
	// combo-free keys are memoized, so the result is read back via Peek
	// rather than by id — consumed immediately, before anything else
	// touches the builder.
	s.builder.Clear()
	if err := s.ensureFrontOnTop(key); err != nil {
		return 0, err
	}
	front, _ := s.builder.Peek()

	if len(front) == 0 {
		return state.Quality, nil
	}
	if front[len(front)-1].First < missingProgress {
		return state.Quality, nil
	}
	idx := sort.Search(len(front), func(i int) bool { return front[i].First >= missingProgress })
	total := uint32(state.Quality) + uint32(front[idx].Second)
	if total > uint32(maxQuality) {
		total = uint32(maxQuality)
	}

	telemetry.Logger.Debug().
		Int("memo_size", len(s.memo)).
		Int("front_len", len(front)).
		Msg("quality: reduced-state query done")

	return uint16(total), nil
}

// ensureFrontOnTop guarantees the builder's top working segment is key's
// Pareto front. Only combo-free keys are ever memoized: a combo-bearing key
// always recomputes its branches fresh atop its (possibly cached) base, so
// it never pollutes the memo with an entry no other state shares. It never
// clears the stack itself — only the top-level query does that — so nested
// calls compose correctly within one recursion tree.
func (s *Solver) ensureFrontOnTop(key reducedState) error {
	if s.interrupt != nil && *s.interrupt {
		return ErrInterrupted
	}
	if id, ok := s.memo[key]; ok {
		s.builder.PushID(id)
		return nil
	}
	if key.combo != simulator.ComboNone {
		return s.solveComboState(key)
	}
	if err := s.solveNormalState(key); err != nil {
		return err
	}
	id, _ := s.builder.Save()
	s.memo[key] = id
	return nil
}

func (s *Solver) solveNormalState(key reducedState) error {
	s.builder.PushEmpty()
	list := actions.FullSearchActions
	if key.progressOnly {
		list = actions.ProgressOnlySearchActions
	}
	for _, combo := range list {
		if !s.shouldUseCombo(key, combo) {
			continue
		}
		if err := s.buildChildFront(key, combo); err != nil {
			return err
		}
		if s.builder.IsMax() {
			break
		}
	}
	return nil
}

// solveComboState never caches itself: a combo-bearing key reuses (or
// populates) only its combo-free base's memo entry, then expands the
// combo's own branches fresh on top of it every time it's reached.
func (s *Solver) solveComboState(key reducedState) error {
	base := key
	base.combo = simulator.ComboNone
	if err := s.ensureFrontOnTop(base); err != nil {
		return err
	}
	switch key.combo {
	case simulator.ComboSynthesisBegin:
		for _, a := range []simulator.Action{simulator.MuscleMemory, simulator.Reflect, simulator.TrainedEye} {
			if err := s.buildChildFront(key, actions.Single(a)); err != nil {
				return err
			}
		}
	case simulator.ComboBasicTouch:
		for _, a := range []simulator.Action{simulator.RefinedTouch, simulator.StandardTouch} {
			if err := s.buildChildFront(key, actions.Single(a)); err != nil {
				return err
			}
		}
	case simulator.ComboStandardTouch:
		if err := s.buildChildFront(key, actions.Single(simulator.AdvancedTouch)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Solver) shouldUseCombo(key reducedState, combo actions.ActionCombo) bool {
	acts := combo.Actions()
	if len(acts) != 1 {
		return true
	}
	switch acts[0] {
	case simulator.WasteNot:
		return int32(key.fusedCP) >= s.wasteNot1MinCP
	case simulator.WasteNot2:
		return int32(key.fusedCP) >= s.wasteNot2MinCP
	default:
		return true
	}
}

// buildChildFront simulates combo from a synthetic zero-progress,
// zero-quality state carrying key's effects/combo with huge CP and
// durability, folds the
// result's real CP delta plus durability tariff back into a new fused CP,
// and merges the child's (possibly memoized) front — shifted by the
// combo's own (progress, quality) contribution — into the builder's top
// segment.
func (s *Solver) buildChildFront(key reducedState, combo actions.ActionCombo) error {
	if s.interrupt != nil && *s.interrupt {
		return ErrInterrupted
	}

	synthetic := simulator.SimulationState{
		CP:         hugeCP,
		Durability: hugeDurability,
		Effects:    key.effects,
		Combo:      key.combo,
	}
	child, err := actions.UseActionCombo(s.flags, synthetic, combo, &s.relaxedSettings)
	if err != nil {
		return nil
	}

	cpSpent := int32(hugeCP) - int32(child.CP)
	durSpent := int32(hugeDurability) - int32(child.Durability)
	tariff := durSpent / 5 * s.durabilityCostPerFive
	newFusedCP := int32(key.fusedCP) - cpSpent - tariff

	if newFusedCP >= int32(s.durabilityCostPerFive) {
		childFused, childEffects := foldManipulation(newFusedCP, child.Effects, s.durabilityCostPerFive)
		childProgressOnly := actions.IsProgressOnlyState(s.flags, child)
		childKey := reducedState{fusedCP: childFused, effects: childEffects, combo: child.Combo, progressOnly: childProgressOnly}
		if err := s.ensureFrontOnTop(childKey); err != nil {
			return err
		}
		s.builder.Map(func(v pareto.Value[uint16, uint16]) pareto.Value[uint16, uint16] {
			return pareto.Value[uint16, uint16]{First: satAddU16(v.First, child.Progress), Second: satAddU16(v.Second, child.Quality)}
		})
		s.builder.Merge()
	} else if newFusedCP >= -int32(s.durabilityCostPerFive) && child.Progress != 0 {
		s.builder.PushSlice([]pareto.Value[uint16, uint16]{{First: child.Progress, Second: child.Quality}})
		s.builder.Merge()
	}
	return nil
}
