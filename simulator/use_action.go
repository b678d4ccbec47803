package simulator

import "math"

// ceilHalf halves x, rounding up, matching the "halves (rounded up)" wording
// used throughout spec.md §4.A for Pliant/Sturdy/WasteNot discounts.
func ceilHalf(x int16) int16 {
	return (x + 1) / 2
}

func ceilHalf8(x int8) int8 {
	return (x + 1) / 2
}

func satAddU16(a, b uint16, max uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > uint32(max) {
		return max
	}
	return uint16(sum)
}

func satSubU16(a, b uint16) uint16 {
	if b >= a {
		return 0
	}
	return a - b
}

func satSubI8(a, b int8) int8 {
	r := int16(a) - int16(b)
	if r < math.MinInt8 {
		return math.MinInt8
	}
	return int8(r)
}

func satAddI8(a, b, max int8) int8 {
	r := int16(a) + int16(b)
	if r > int16(max) {
		return max
	}
	return int8(r)
}

func satSubI16(a, b int16) int16 {
	r := int32(a) - int32(b)
	if r < math.MinInt16 {
		return math.MinInt16
	}
	return int16(r)
}

func satAddI16(a, b, max int16) int16 {
	r := int32(a) + int32(b)
	if r > int32(max) {
		return max
	}
	return int16(r)
}

// nextCombo returns the combo slot left open after playing a, independent of
// the combo slot a itself consumed.
func nextCombo(a Action) Combo {
	switch a {
	case BasicTouch:
		return ComboBasicTouch
	case StandardTouch:
		return ComboStandardTouch
	default:
		return ComboNone
	}
}

// requiredCombo returns the combo slot a must be played from, or ComboNone
// if a carries no combo prerequisite (invariant 4).
func requiredCombo(a Action) Combo {
	switch a {
	case MuscleMemory, Reflect, TrainedEye:
		return ComboSynthesisBegin
	case StandardTouch, RefinedTouch:
		return ComboBasicTouch
	case AdvancedTouch:
		return ComboStandardTouch
	default:
		return ComboNone
	}
}

// conditionQualityMultiplier returns the condition's quality multiplier
// (spec.md §4.A: Good ×1.5, Excellent ×4, Poor ×0.5, otherwise ×1).
func conditionQualityMultiplier(c Condition) float64 {
	switch c {
	case Good:
		return 1.5
	case Excellent:
		return 4.0
	case Poor:
		return 0.5
	default:
		return 1.0
	}
}

// conditionWorstCaseQualityMultiplier is the multiplier an adversarial
// condition oracle would apply to the same action: it always resolves to
// the least favorable documented outcome (Poor), unless guarded.
func conditionWorstCaseQualityMultiplier() float64 {
	return 0.5
}

// UseAction applies action under condition to state and returns the
// resulting state, or an *ActionError describing why the action is
// currently illegal. UseAction never panics; all progress/quality/cp/
// durability arithmetic saturates rather than overflowing (invariant 1).
func UseAction(state SimulationState, action Action, condition Condition, settings *Settings) (SimulationState, error) {
	if int(action) < 0 || int(action) >= numActions {
		return state, &ActionError{Action: action, Reason: ReasonActionDisabled}
	}
	if !settings.AllowedActions.Has(action) {
		return state, &ActionError{Action: action, Reason: ReasonActionDisabled}
	}
	if action.levelRequirement() > settings.JobLevel {
		return state, &ActionError{Action: action, Reason: ReasonNotUnlocked}
	}

	switch action {
	case HeartAndSoul:
		if state.Effects.HeartAndSoul() != Unused {
			return state, &ActionError{Action: action, Reason: ReasonSingleUseConsumed}
		}
	case TrainedPerfection:
		if state.Effects.TrainedPerfection() != Unused {
			return state, &ActionError{Action: action, Reason: ReasonSingleUseConsumed}
		}
	case QuickInnovation:
		if !state.Effects.QuickInnovationAvailable() {
			return state, &ActionError{Action: action, Reason: ReasonSingleUseConsumed}
		}
	case TrainedFinesse:
		if state.Effects.InnerQuiet() != MaxInnerQuiet {
			return state, &ActionError{Action: action, Reason: ReasonActionDisabled}
		}
	case TricksOfTheTrade, IntensiveSynthesis, PreciseTouch:
		if condition != Good && condition != Excellent && state.Effects.HeartAndSoul() != Active {
			return state, &ActionError{Action: action, Reason: ReasonActionDisabled}
		}
	}

	if req := requiredCombo(action); req != ComboNone && state.Combo != req {
		return state, &ActionError{Action: action, Reason: ReasonComboMissing}
	}

	if state.Durability <= 0 {
		return state, &ActionError{Action: action, Reason: ReasonNoDurability}
	}

	p := props[action]

	cpCost := p.cp
	if condition == Pliant {
		cpCost = ceilHalf(cpCost)
	}
	if state.CP < cpCost {
		return state, &ActionError{Action: action, Reason: ReasonInsufficientCP}
	}

	next := state
	next.CP = satSubI16(state.CP, cpCost)

	trainedPerfectionConsumed := false
	durCost := p.durability
	if state.Effects.TrainedPerfection() == Active {
		durCost = 0
		trainedPerfectionConsumed = p.durability > 0
	} else {
		if condition == Sturdy {
			durCost = ceilHalf8(durCost)
		}
		if state.Effects.WasteNot() > 0 {
			durCost = ceilHalf8(durCost)
		}
	}
	next.Durability = satSubI8(next.Durability, durCost)
	if p.restoresDur > 0 {
		next.Durability = satAddI8(next.Durability, p.restoresDur, settings.MaxDurability)
	}

	if p.progressHund > 0 {
		mult := 1.0
		if next.Effects.Veneration() > 0 {
			mult += 0.5
		}
		if next.Effects.MuscleMemory() > 0 {
			mult += 1.0
		}
		if condition == Malleable {
			mult *= 1.5
		}
		gain := float64(settings.BaseProgress) * float64(p.progressHund) / 100.0 * mult
		next.Progress = satAddU16(next.Progress, uint16(math.Round(gain)), settings.MaxProgress)
		next.Effects = next.Effects.WithMuscleMemory(0)
	}

	if p.qualityHund > 0 || action == ByregotsBlessing {
		iq := float64(next.Effects.InnerQuiet())
		base := float64(settings.BaseQuality) * float64(p.qualityHund) / 100.0
		if action == ByregotsBlessing {
			base *= 1.0 + 0.2*iq
		}
		mult := (1.0 + 0.1*iq) * (1.0 + boolF(next.Effects.Innovation() > 0, 0.5) + boolF(next.Effects.GreatStrides() > 0, 1.0))
		reliableMult := mult * conditionQualityMultiplier(condition)
		gain := base * reliableMult
		next.Quality = satAddU16(next.Quality, uint16(math.Round(gain)), settings.MaxQuality)

		if settings.Adversarial {
			if next.Effects.Guard() == 0 {
				worstGain := base * mult * conditionWorstCaseQualityMultiplier()
				delta := gain - worstGain
				if delta > 0 {
					next.UnreliableQuality = satAddU16(next.UnreliableQuality, uint16(math.Round(delta)), math.MaxUint16)
				}
				next.Effects = next.Effects.WithGuard(1)
			} else {
				next.Effects = next.Effects.WithGuard(0)
			}
		}

		switch action {
		case ByregotsBlessing:
			next.Effects = next.Effects.WithInnerQuiet(0)
		case PreciseTouch, PreparatoryTouch:
			next.Effects = next.Effects.AddInnerQuiet(2)
		default:
			next.Effects = next.Effects.AddInnerQuiet(1)
		}
	}

	next.Effects = next.Effects.TickDown()
	if next.Effects.Manipulation() > 0 && next.Durability > 0 {
		next.Durability = satAddI8(next.Durability, 5, settings.MaxDurability)
	}

	switch action {
	case TricksOfTheTrade:
		next.CP = satAddI16(next.CP, p.restoresCP, settings.MaxCP)
	case HeartAndSoul:
		next.Effects = next.Effects.WithHeartAndSoul(Active)
	case TrainedPerfection:
		next.Effects = next.Effects.WithTrainedPerfection(Active)
	case QuickInnovation:
		next.Effects = next.Effects.WithQuickInnovationAvailable(false)
		next.Effects = next.Effects.WithInnovation(1)
	case WasteNot:
		next.Effects = next.Effects.WithWasteNot(4)
	case WasteNot2:
		next.Effects = next.Effects.WithWasteNot(8)
	case Veneration:
		next.Effects = next.Effects.WithVeneration(4)
	case Innovation:
		next.Effects = next.Effects.WithInnovation(4)
	case GreatStrides:
		next.Effects = next.Effects.WithGreatStrides(3)
	case Manipulation:
		next.Effects = next.Effects.WithManipulation(8)
	case MuscleMemory:
		next.Effects = next.Effects.WithMuscleMemory(5)
	}

	if (action == TricksOfTheTrade || action == IntensiveSynthesis || action == PreciseTouch) && condition != Good && condition != Excellent {
		next.Effects = next.Effects.WithHeartAndSoul(Unavailable)
	}
	if trainedPerfectionConsumed {
		next.Effects = next.Effects.WithTrainedPerfection(Unavailable)
	}

	next.Combo = nextCombo(action)

	return next, nil
}

func boolF(b bool, v float64) float64 {
	if b {
		return v
	}
	return 0
}
