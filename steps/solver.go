package steps

import (
	"math"
	"sort"

	"github.com/katalvlaran/craftsolver/internal/telemetry"
	"github.com/katalvlaran/craftsolver/pareto"
	"github.com/katalvlaran/craftsolver/simulator"
)

// hugeCP stands in for "unlimited" CP in both DPs and hugeDurability for
// "unlimited" durability in the fast DP, the same
// relaxation package quality uses for its own synthetic combo simulations.
const (
	hugeCP         int16 = 30000
	hugeDurability int8  = 120
)

// Solver owns one fast (resource-unaware) and one slow (durability-aware)
// internal DP, each with their own memo and Pareto arena. Not safe for
// concurrent use.
type Solver struct {
	settings *simulator.Settings
	fast     *solverImpl
	slow     *solverImpl
}

// NewSolver builds a Solver for one recipe/crafter combination.
func NewSolver(settings *simulator.Settings) *Solver {
	return &Solver{
		settings: settings,
		fast:     newImpl(settings, false),
		slow:     newImpl(settings, true),
	}
}

// StepLowerBound returns S*(state): a lower bound on the number of
// additional actions needed to finish the craft at max_quality. It first
// doubles a candidate step budget until the resource-unaware DP reports
// max_quality reachable, bisects to the smallest such budget, then hands
// that budget to the durability-aware DP and walks it up until that DP
// (durability-respecting, CP unlimited) also reports max_quality reachable.
func (s *Solver) StepLowerBound(state simulator.SimulationState) uint8 {
	lo, hi := uint8(0), uint8(1)
	for s.fast.qualityUpperBound(state, hi) < s.settings.MaxQuality {
		lo = hi
		if hi > math.MaxUint8/2 {
			hi = math.MaxUint8
			break
		}
		hi *= 2
	}
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if s.fast.qualityUpperBound(state, mid) < s.settings.MaxQuality {
			lo = mid
		} else {
			hi = mid
		}
	}
	for hi < math.MaxUint8 && s.slow.qualityUpperBound(state, hi) < s.settings.MaxQuality {
		hi++
	}

	telemetry.Logger.Debug().
		Int("fast_memo_size", len(s.fast.solved)).
		Int("slow_memo_size", len(s.slow.solved)).
		Uint8("step_lower_bound", hi).
		Msg("steps: lower bound resolved")

	return hi
}

// reducedState is the per-budget memo key shared by both internal DPs. cp
// is always the hugeCP sentinel; for the resource-unaware variant
// durability is also the huge sentinel (folded out of the effective key by
// construction in reduce), so only effects/combo/stepsBudget actually
// distinguish states there.
type reducedState struct {
	cp          int16
	durability  int8
	effects     simulator.Effects
	combo       simulator.Combo
	stepsBudget uint8
}

// solverImpl is one of the two internal DPs. trackResources selects whether
// durability participates in the reduced state and the reconstructed
// synthetic state (slow), or is replaced by an unlimited stand-in (fast);
// CP is the unlimited stand-in in both.
type solverImpl struct {
	settings       simulator.Settings
	trackResources bool
	solved         map[reducedState]pareto.FrontID
	builder        *pareto.Builder[uint16, uint16]
}

func newImpl(settings *simulator.Settings, trackResources bool) *solverImpl {
	relaxed := *settings
	relaxed.MaxCP = hugeCP
	mask := settings.AllowedActions
	if !trackResources {
		relaxed.MaxDurability = hugeDurability
		// CP/durability management is a no-op once both are unlimited; drop
		// it from the fast DP's branching so it only spends budget on
		// actions that can actually move progress or quality.
		mask = mask.
			Remove(simulator.WasteNot).
			Remove(simulator.WasteNot2).
			Remove(simulator.Manipulation).
			Remove(simulator.MasterMend).
			Remove(simulator.ImmaculateMend).
			Remove(simulator.TrainedPerfection).
			Remove(simulator.TricksOfTheTrade)
	}
	relaxed.AllowedActions = mask
	return &solverImpl{
		settings:       relaxed,
		trackResources: trackResources,
		solved:         make(map[reducedState]pareto.FrontID),
		builder:        pareto.NewBuilder[uint16, uint16](settings.MaxProgress, settings.MaxQuality),
	}
}

func (im *solverImpl) reduce(state simulator.SimulationState, stepsBudget uint8) reducedState {
	key := reducedState{cp: hugeCP, effects: state.Effects, combo: state.Combo, stepsBudget: stepsBudget}
	if im.trackResources {
		key.durability = state.Durability
	} else {
		key.durability = hugeDurability
	}
	return key
}

func (im *solverImpl) toState(key reducedState) simulator.SimulationState {
	return simulator.SimulationState{
		CP:         key.cp,
		Durability: key.durability,
		Effects:    key.effects,
		Combo:      key.combo,
	}
}

// qualityUpperBound returns how much quality is reachable in at most
// stepBudget further actions, on top of state's current quality, capped at
// twice max_quality the way the original solver's intermediate estimate is
// (the cap only matters while bisecting; StepLowerBound never reads it
// past the point the true answer is found).
func (im *solverImpl) qualityUpperBound(state simulator.SimulationState, stepBudget uint8) uint16 {
	if stepBudget == 0 {
		return state.Quality
	}
	currentQuality := state.Quality
	if im.settings.Adversarial {
		currentQuality = state.ReliableQuality()
	}
	missingProgress := uint16(0)
	if im.settings.MaxProgress > state.Progress {
		missingProgress = im.settings.MaxProgress - state.Progress
	}

	key := im.reduce(state, stepBudget)
	id, ok := im.solved[key]
	if !ok {
		im.builder.Clear()
		im.solveState(key)
		id = im.solved[key]
	}
	front := im.builder.Retrieve(id)

	if len(front) == 0 {
		return currentQuality
	}
	if front[len(front)-1].First < missingProgress {
		return currentQuality
	}
	idx := sort.Search(len(front), func(i int) bool { return front[i].First >= missingProgress })
	total := uint32(front[idx].Second) + uint32(currentQuality)
	cap := uint32(im.settings.MaxQuality) * 2
	if total > cap {
		total = cap
	}
	return uint16(total)
}

// solveState fills the builder's top working segment with key's Pareto
// front: every allowed action applied once, with its tail (if any budget
// remains and the resulting state isn't already final) recursively solved
// and merged in shifted by this action's own (progress, quality).
func (im *solverImpl) solveState(key reducedState) {
	im.builder.PushEmpty()
	full := im.toState(key)
	im.settings.AllowedActions.Iterate(func(a simulator.Action) bool {
		newFull, err := simulator.UseAction(full, a, simulator.Normal, &im.settings)
		if err == nil {
			actionProgress := newFull.Progress
			actionQuality := newFull.Quality
			if im.settings.Adversarial {
				actionQuality = newFull.ReliableQuality()
			}
			newKey := im.reduce(newFull, key.stepsBudget-1)
			if newKey.stepsBudget != 0 && !newFull.IsFinal(&im.settings) {
				if id, ok := im.solved[newKey]; ok {
					im.builder.PushID(id)
				} else {
					im.solveState(newKey)
				}
				im.builder.Map(func(v pareto.Value[uint16, uint16]) pareto.Value[uint16, uint16] {
					return pareto.Value[uint16, uint16]{First: satAddU16(v.First, actionProgress), Second: satAddU16(v.Second, actionQuality)}
				})
				im.builder.Merge()
			} else if actionProgress != 0 {
				im.builder.PushSlice([]pareto.Value[uint16, uint16]{{First: actionProgress, Second: actionQuality}})
				im.builder.Merge()
			}
		}
		return !im.builder.IsMax()
	})
	id, _ := im.builder.Save()
	im.solved[key] = id
}

func satAddU16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(sum)
}
