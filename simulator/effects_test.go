package simulator

import "testing"

func TestEffectsRoundTrip(t *testing.T) {
	var e Effects
	e = e.WithVeneration(4).WithInnovation(3).WithWasteNot(8).WithManipulation(6).
		WithGreatStrides(3).WithMuscleMemory(5).WithInnerQuiet(9).WithGuard(1).
		WithHeartAndSoul(Active).WithQuickInnovationAvailable(true).WithTrainedPerfection(Unavailable)

	if got := e.Veneration(); got != 4 {
		t.Errorf("Veneration() = %d, want 4", got)
	}
	if got := e.Innovation(); got != 3 {
		t.Errorf("Innovation() = %d, want 3", got)
	}
	if got := e.WasteNot(); got != 8 {
		t.Errorf("WasteNot() = %d, want 8", got)
	}
	if got := e.Manipulation(); got != 6 {
		t.Errorf("Manipulation() = %d, want 6", got)
	}
	if got := e.GreatStrides(); got != 3 {
		t.Errorf("GreatStrides() = %d, want 3", got)
	}
	if got := e.MuscleMemory(); got != 5 {
		t.Errorf("MuscleMemory() = %d, want 5", got)
	}
	if got := e.InnerQuiet(); got != 9 {
		t.Errorf("InnerQuiet() = %d, want 9", got)
	}
	if got := e.Guard(); got != 1 {
		t.Errorf("Guard() = %d, want 1", got)
	}
	if got := e.HeartAndSoul(); got != Active {
		t.Errorf("HeartAndSoul() = %v, want Active", got)
	}
	if !e.QuickInnovationAvailable() {
		t.Errorf("QuickInnovationAvailable() = false, want true")
	}
	if got := e.TrainedPerfection(); got != Unavailable {
		t.Errorf("TrainedPerfection() = %v, want Unavailable", got)
	}
}

func TestInnerQuietSaturates(t *testing.T) {
	var e Effects
	e = e.WithInnerQuiet(MaxInnerQuiet - 1)
	e = e.AddInnerQuiet(5)
	if got := e.InnerQuiet(); got != MaxInnerQuiet {
		t.Errorf("InnerQuiet() = %d, want %d (saturated)", got, MaxInnerQuiet)
	}
}

func TestTickDownDecrementsTimedCountersOnly(t *testing.T) {
	var e Effects
	e = e.WithVeneration(1).WithInnerQuiet(7).WithHeartAndSoul(Active)
	e = e.TickDown()
	if got := e.Veneration(); got != 0 {
		t.Errorf("Veneration() after tick = %d, want 0", got)
	}
	if got := e.InnerQuiet(); got != 7 {
		t.Errorf("InnerQuiet() after tick = %d, want unchanged 7", got)
	}
	if got := e.HeartAndSoul(); got != Active {
		t.Errorf("HeartAndSoul() after tick = %v, want unchanged Active", got)
	}
}

func TestTickDownNeverUnderflows(t *testing.T) {
	var e Effects
	e = e.TickDown().TickDown().TickDown()
	if e.Veneration() != 0 || e.Manipulation() != 0 {
		t.Errorf("tick-down of zeroed effects must stay zero, got %+v", e)
	}
}
