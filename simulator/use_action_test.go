package simulator

import "testing"

func testSettings() *Settings {
	return &Settings{
		MaxCP:          600,
		MaxDurability:  70,
		MaxProgress:    2000,
		MaxQuality:     4000,
		BaseProgress:   100,
		BaseQuality:    100,
		JobLevel:       90,
		AllowedActions: FullActionMask(),
	}
}

// Grounded on original_source/tests/effect_tests.rs::test_muscle_memory_veneration:
// muscle_memory (+100%) stacked with veneration (+50%) on a 180%-coefficient
// synthesis action yields a 1 + 1.0 + 0.5 = 2.5x progress multiplier.
func TestMuscleMemoryVenerationStacking(t *testing.T) {
	settings := testSettings()
	state := New(settings)

	state, err := UseAction(state, MuscleMemory, Normal, settings)
	if err != nil {
		t.Fatalf("MuscleMemory: %v", err)
	}
	state, err = UseAction(state, Veneration, Normal, settings)
	if err != nil {
		t.Fatalf("Veneration: %v", err)
	}
	before := state.Progress
	state, err = UseAction(state, CarefulSynthesis, Normal, settings)
	if err != nil {
		t.Fatalf("CarefulSynthesis: %v", err)
	}
	gain := state.Progress - before
	const want = uint16(450) // base_progress 100 * CarefulSynthesis 1.8 * 2.5 stack
	if gain != want {
		t.Errorf("progress gain = %d, want %d", gain, want)
	}
}

func TestUseActionRejectsInsufficientCP(t *testing.T) {
	settings := testSettings()
	settings.MaxCP = 5
	state := New(settings)
	_, err := UseAction(state, Manipulation, Normal, settings)
	var aerr *ActionError
	if err == nil {
		t.Fatal("expected error for insufficient CP")
	}
	if ae, ok := err.(*ActionError); !ok || ae.Reason != ReasonInsufficientCP {
		_ = aerr
		t.Errorf("got %v, want ReasonInsufficientCP", err)
	}
}

func TestUseActionRejectsZeroDurability(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	state.Durability = 0
	_, err := UseAction(state, Observe, Normal, settings)
	if ae, ok := err.(*ActionError); !ok || ae.Reason != ReasonNoDurability {
		t.Errorf("got %v, want ReasonNoDurability", err)
	}
}

func TestUseActionRejectsComboMissing(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	state.Combo = ComboNone
	_, err := UseAction(state, AdvancedTouch, Normal, settings)
	if ae, ok := err.(*ActionError); !ok || ae.Reason != ReasonComboMissing {
		t.Errorf("got %v, want ReasonComboMissing", err)
	}
}

func TestUseActionRejectsActionNotInMask(t *testing.T) {
	settings := testSettings()
	settings.AllowedActions = settings.AllowedActions.Remove(HeartAndSoul)
	state := New(settings)
	_, err := UseAction(state, HeartAndSoul, Normal, settings)
	if ae, ok := err.(*ActionError); !ok || ae.Reason != ReasonActionDisabled {
		t.Errorf("got %v, want ReasonActionDisabled", err)
	}
}

func TestComboChainBasicToStandardToAdvanced(t *testing.T) {
	settings := testSettings()
	state := New(settings)

	state, err := UseAction(state, BasicTouch, Normal, settings)
	if err != nil {
		t.Fatalf("BasicTouch: %v", err)
	}
	if state.Combo != ComboBasicTouch {
		t.Fatalf("combo = %v, want ComboBasicTouch", state.Combo)
	}
	state, err = UseAction(state, StandardTouch, Normal, settings)
	if err != nil {
		t.Fatalf("StandardTouch: %v", err)
	}
	if state.Combo != ComboStandardTouch {
		t.Fatalf("combo = %v, want ComboStandardTouch", state.Combo)
	}
	_, err = UseAction(state, AdvancedTouch, Normal, settings)
	if err != nil {
		t.Fatalf("AdvancedTouch should be legal from ComboStandardTouch: %v", err)
	}
}

func TestByregotsBlessingResetsInnerQuietAndScalesWithIt(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	state.Effects = state.Effects.WithInnerQuiet(5)
	state, err := UseAction(state, ByregotsBlessing, Normal, settings)
	if err != nil {
		t.Fatalf("ByregotsBlessing: %v", err)
	}
	if state.Effects.InnerQuiet() != 0 {
		t.Errorf("InnerQuiet after Byregot's = %d, want 0", state.Effects.InnerQuiet())
	}
	if state.Quality == 0 {
		t.Errorf("expected nonzero quality gain")
	}
}

func TestManipulationRestoresDurabilityOnTick(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	state, err := UseAction(state, Manipulation, Normal, settings)
	if err != nil {
		t.Fatalf("Manipulation: %v", err)
	}
	durAfterManip := state.Durability
	state, err = UseAction(state, Observe, Normal, settings)
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if state.Durability <= durAfterManip-1 {
		t.Errorf("expected manipulation to restore durability past the Observe cost; got %d (was %d)", state.Durability, durAfterManip)
	}
}

func TestTrainedPerfectionZeroesNextDurabilityCostOnce(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	state, err := UseAction(state, TrainedPerfection, Normal, settings)
	if err != nil {
		t.Fatalf("TrainedPerfection: %v", err)
	}
	durBefore := state.Durability
	state, err = UseAction(state, BasicSynthesis, Normal, settings)
	if err != nil {
		t.Fatalf("BasicSynthesis: %v", err)
	}
	if state.Durability != durBefore {
		t.Errorf("durability changed despite TrainedPerfection absorbing cost: before=%d after=%d", durBefore, state.Durability)
	}
	if state.Effects.TrainedPerfection() != Unavailable {
		t.Errorf("TrainedPerfection should be Unavailable after consumption, got %v", state.Effects.TrainedPerfection())
	}
}

// Grounded on original_source/simulator/tests/effect_tests.rs::test_trained_perfection:
// an action with zero base durability cost has nothing for TrainedPerfection to
// absorb, so the effect must remain Active rather than being spent.
func TestTrainedPerfectionSurvivesAZeroDurabilityCostAction(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	state, err := UseAction(state, TrainedPerfection, Normal, settings)
	if err != nil {
		t.Fatalf("TrainedPerfection: %v", err)
	}
	state, err = UseAction(state, Observe, Normal, settings)
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if state.Effects.TrainedPerfection() != Active {
		t.Errorf("TrainedPerfection should remain Active after a zero-cost action, got %v", state.Effects.TrainedPerfection())
	}
}

func TestTrainedFinesseRequiresMaxInnerQuiet(t *testing.T) {
	settings := testSettings()
	state := New(settings)
	_, err := UseAction(state, TrainedFinesse, Normal, settings)
	if ae, ok := err.(*ActionError); !ok || ae.Reason != ReasonActionDisabled {
		t.Errorf("expected ReasonActionDisabled at iq=0, got %v", err)
	}
	state.Effects = state.Effects.WithInnerQuiet(MaxInnerQuiet)
	if _, err := UseAction(state, TrainedFinesse, Normal, settings); err != nil {
		t.Errorf("TrainedFinesse at iq=10 should be legal: %v", err)
	}
}

func TestQuickInnovationIsSingleUse(t *testing.T) {
	settings := testSettings()
	settings.JobLevel = 100 // QuickInnovation unlocks at level 96
	state := New(settings)
	state, err := UseAction(state, QuickInnovation, Normal, settings)
	if err != nil {
		t.Fatalf("QuickInnovation: %v", err)
	}
	if state.Effects.Innovation() == 0 {
		t.Errorf("expected innovation to be set after QuickInnovation")
	}
	_, err = UseAction(state, QuickInnovation, Normal, settings)
	if ae, ok := err.(*ActionError); !ok || ae.Reason != ReasonSingleUseConsumed {
		t.Errorf("expected ReasonSingleUseConsumed on reuse, got %v", err)
	}
}

func TestProgressAndQualitySaturateAtMax(t *testing.T) {
	settings := testSettings()
	settings.MaxProgress = 10
	settings.MaxQuality = 10
	state := New(settings)
	state, err := UseAction(state, Groundwork, Normal, settings)
	if err != nil {
		t.Fatalf("Groundwork: %v", err)
	}
	if state.Progress != settings.MaxProgress {
		t.Errorf("progress = %d, want saturated at %d", state.Progress, settings.MaxProgress)
	}
}

func TestAdversarialUnreliableQualityNeverExceedsQuality(t *testing.T) {
	settings := testSettings()
	settings.Adversarial = true
	state := New(settings)
	for _, a := range []Action{BasicTouch, StandardTouch, Innovation, PreparatoryTouch} {
		var err error
		state, err = UseAction(state, a, Normal, settings)
		if err != nil {
			t.Fatalf("%v: %v", a, err)
		}
		if state.UnreliableQuality > state.Quality {
			t.Fatalf("unreliable_quality %d exceeds quality %d after %v", state.UnreliableQuality, state.Quality, a)
		}
	}
	if state.ReliableQuality() > state.Quality {
		t.Errorf("ReliableQuality() must never exceed Quality")
	}
}

func TestFromMacroStopsAtFirstIllegalAction(t *testing.T) {
	settings := testSettings()
	settings.MaxCP = 0
	_, err := FromMacro(settings, []Action{Manipulation, Observe})
	if err == nil {
		t.Fatal("expected error from FromMacro with an illegal first action")
	}
}
