package finish

import (
	"testing"

	"github.com/katalvlaran/craftsolver/simulator"
)

func testSettings() *simulator.Settings {
	return &simulator.Settings{
		MaxCP:          500,
		MaxDurability:  60,
		MaxProgress:    1000,
		MaxQuality:     3000,
		BaseProgress:   100,
		BaseQuality:    100,
		JobLevel:       90,
		AllowedActions: simulator.FullActionMask(),
	}
}

func TestCanFinishTrueAtStart(t *testing.T) {
	settings := testSettings()
	s := NewSolver(nil)
	if !s.CanFinish(simulator.New(settings), settings) {
		t.Fatal("a start state with ample CP/durability should be able to finish")
	}
}

func TestCanFinishFalseWithZeroDurabilityAndProgress(t *testing.T) {
	settings := testSettings()
	state := simulator.New(settings)
	state.Durability = 0
	s := NewSolver(nil)
	if s.CanFinish(state, settings) {
		t.Fatal("a state with zero durability and unmet progress cannot finish")
	}
}

func TestCanFinishTrueAlreadyFinal(t *testing.T) {
	settings := testSettings()
	state := simulator.New(settings)
	state.Progress = settings.MaxProgress
	s := NewSolver(nil)
	if !s.CanFinish(state, settings) {
		t.Fatal("a state already at max_progress must report reachable")
	}
}

func TestCanFinishRespectsInterruptConservatively(t *testing.T) {
	settings := testSettings()
	state := simulator.New(settings)
	state.Durability = 0
	interrupted := true
	s := NewSolver(&interrupted)
	if !s.CanFinish(state, settings) {
		t.Fatal("an interrupted search must conservatively report reachable")
	}
}
