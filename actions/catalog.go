package actions

import "github.com/katalvlaran/craftsolver/simulator"

// FullSearchActions is every combo the quality upper-bound DP branches into
// from a state that is not progress-only. The macro solver does not use
// this list; it branches on its own plain ActionMasks.
var FullSearchActions = []ActionCombo{
	ComboAdvancedTouch,
	ComboTricksOfTheTrade,
	ComboIntensiveSynthesis,
	ComboPreciseTouch,
	ComboStandardTouch,
	ComboFocusedTouch,
	ComboRefinedTouch,
	// progress
	Single(simulator.BasicSynthesis),
	Single(simulator.Veneration),
	Single(simulator.MuscleMemory),
	Single(simulator.CarefulSynthesis),
	Single(simulator.Groundwork),
	Single(simulator.PrudentSynthesis),
	// quality
	Single(simulator.BasicTouch),
	Single(simulator.StandardTouch),
	Single(simulator.GreatStrides),
	Single(simulator.Innovation),
	Single(simulator.ByregotsBlessing),
	Single(simulator.PrudentTouch),
	Single(simulator.Reflect),
	Single(simulator.PreparatoryTouch),
	Single(simulator.AdvancedTouch),
	Single(simulator.TrainedFinesse),
	Single(simulator.TrainedEye),
	Single(simulator.QuickInnovation),
	// durability
	Single(simulator.MasterMend),
	Single(simulator.WasteNot),
	Single(simulator.WasteNot2),
	Single(simulator.Manipulation),
	Single(simulator.ImmaculateMend),
	Single(simulator.TrainedPerfection),
	// misc
	Single(simulator.DelicateSynthesis),
	Single(simulator.TricksOfTheTrade),
}

// ProgressOnlySearchActions is the narrowed combo list used once a state has
// been flagged progress-only (see IsProgressOnlyState): no quality-altering
// combos are offered.
var ProgressOnlySearchActions = []ActionCombo{
	ComboIntensiveSynthesis,
	ComboTricksOfTheTrade,
	// progress
	Single(simulator.BasicSynthesis),
	Single(simulator.Veneration),
	Single(simulator.MuscleMemory),
	Single(simulator.CarefulSynthesis),
	Single(simulator.Groundwork),
	Single(simulator.PrudentSynthesis),
	// durability
	Single(simulator.MasterMend),
	Single(simulator.WasteNot),
	Single(simulator.WasteNot2),
	Single(simulator.Manipulation),
	Single(simulator.ImmaculateMend),
	Single(simulator.TrainedPerfection),
	// misc
	Single(simulator.TricksOfTheTrade),
}

// QualityOnlySearchActions is the narrowed combo list for a state that no
// longer needs progress. No solver in this module reads it.
var QualityOnlySearchActions = []ActionCombo{
	ComboTricksOfTheTrade,
	ComboPreciseTouch,
	ComboStandardTouch,
	ComboAdvancedTouch,
	ComboFocusedTouch,
	ComboRefinedTouch,
	// quality
	Single(simulator.BasicTouch),
	Single(simulator.StandardTouch),
	Single(simulator.GreatStrides),
	Single(simulator.Innovation),
	Single(simulator.ByregotsBlessing),
	Single(simulator.PrudentTouch),
	Single(simulator.Reflect),
	Single(simulator.PreparatoryTouch),
	Single(simulator.AdvancedTouch),
	Single(simulator.TrainedFinesse),
	Single(simulator.TrainedEye),
	Single(simulator.QuickInnovation),
	// durability
	Single(simulator.MasterMend),
	Single(simulator.WasteNot),
	Single(simulator.WasteNot2),
	Single(simulator.Manipulation),
	Single(simulator.ImmaculateMend),
	Single(simulator.TrainedPerfection),
	// misc
	Single(simulator.TricksOfTheTrade),
}
