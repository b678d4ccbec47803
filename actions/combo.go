package actions

import "github.com/katalvlaran/craftsolver/simulator"

// ActionCombo is either a single primitive action or one of the seven named
// multi-step combos: three gated on a one-shot HeartAndSoul use
// (TricksOfTheTrade, IntensiveSynthesis, PreciseTouch), and four gated on
// the BasicTouch/StandardTouch combo-slot state machine (StandardTouch,
// AdvancedTouch, FocusedTouch, RefinedTouch). The zero value is not a valid
// combo; use Single to wrap a lone action.
type ActionCombo struct {
	kind comboKind
	a    simulator.Action
}

type comboKind uint8

const (
	kindSingle comboKind = iota
	kindTricksOfTheTrade
	kindIntensiveSynthesis
	kindPreciseTouch
	kindStandardTouch
	kindAdvancedTouch
	kindFocusedTouch
	kindRefinedTouch
)

// Single wraps a is a single primitive action as a one-step ActionCombo.
func Single(a simulator.Action) ActionCombo { return ActionCombo{kind: kindSingle, a: a} }

var (
	ComboTricksOfTheTrade   = ActionCombo{kind: kindTricksOfTheTrade}
	ComboIntensiveSynthesis = ActionCombo{kind: kindIntensiveSynthesis}
	ComboPreciseTouch       = ActionCombo{kind: kindPreciseTouch}
	ComboStandardTouch      = ActionCombo{kind: kindStandardTouch}
	ComboAdvancedTouch      = ActionCombo{kind: kindAdvancedTouch}
	ComboFocusedTouch       = ActionCombo{kind: kindFocusedTouch}
	ComboRefinedTouch       = ActionCombo{kind: kindRefinedTouch}
)

// Actions returns the fixed primitive sequence this combo expands to, first
// primitive first.
func (c ActionCombo) Actions() []simulator.Action {
	switch c.kind {
	case kindSingle:
		return []simulator.Action{c.a}
	case kindTricksOfTheTrade:
		return []simulator.Action{simulator.HeartAndSoul, simulator.TricksOfTheTrade}
	case kindIntensiveSynthesis:
		return []simulator.Action{simulator.HeartAndSoul, simulator.IntensiveSynthesis}
	case kindPreciseTouch:
		return []simulator.Action{simulator.HeartAndSoul, simulator.PreciseTouch}
	case kindStandardTouch:
		return []simulator.Action{simulator.BasicTouch, simulator.StandardTouch}
	case kindAdvancedTouch:
		return []simulator.Action{simulator.BasicTouch, simulator.StandardTouch, simulator.AdvancedTouch}
	case kindFocusedTouch:
		return []simulator.Action{simulator.Observe, simulator.AdvancedTouch}
	case kindRefinedTouch:
		return []simulator.Action{simulator.BasicTouch, simulator.RefinedTouch}
	default:
		return nil
	}
}

// Steps is the number of primitives this combo expands to.
func (c ActionCombo) Steps() uint8 {
	return uint8(len(c.Actions()))
}

// Duration is the cumulative TimeCost, in seconds, of this combo's
// primitives.
func (c ActionCombo) Duration() uint8 {
	var total uint8
	for _, a := range c.Actions() {
		total += a.TimeCost()
	}
	return total
}

// String names the combo the way a macro-editor status line would.
func (c ActionCombo) String() string {
	switch c.kind {
	case kindSingle:
		return c.a.String()
	case kindTricksOfTheTrade:
		return "HeartAndSoul+TricksOfTheTrade"
	case kindIntensiveSynthesis:
		return "HeartAndSoul+IntensiveSynthesis"
	case kindPreciseTouch:
		return "HeartAndSoul+PreciseTouch"
	case kindStandardTouch:
		return "BasicTouch+StandardTouch"
	case kindAdvancedTouch:
		return "BasicTouch+StandardTouch+AdvancedTouch"
	case kindFocusedTouch:
		return "Observe+AdvancedTouch"
	case kindRefinedTouch:
		return "BasicTouch+RefinedTouch"
	default:
		return "Unknown"
	}
}
