package macrosolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/craftsolver/simulator"
)

func smallSettings() *simulator.Settings {
	allowed := simulator.ActionMaskFromLevel(90).
		Remove(simulator.TrainedEye).
		Remove(simulator.HeartAndSoul).
		Remove(simulator.QuickInnovation)
	return &simulator.Settings{
		MaxCP:          600,
		MaxDurability:  70,
		MaxProgress:    2000,
		MaxQuality:     4000,
		BaseProgress:   100,
		BaseQuality:    100,
		JobLevel:       90,
		AllowedActions: allowed,
	}
}

func scenarioSettings() *simulator.Settings {
	allowed := simulator.ActionMaskFromLevel(100).
		Remove(simulator.TrainedEye).
		Remove(simulator.HeartAndSoul).
		Remove(simulator.QuickInnovation)
	return &simulator.Settings{
		MaxCP:          569,
		MaxDurability:  80,
		MaxProgress:    6600,
		MaxQuality:     10000,
		BaseProgress:   237,
		BaseQuality:    245,
		JobLevel:       100,
		AllowedActions: allowed,
	}
}

func replay(t *testing.T, settings *simulator.Settings, macro []simulator.Action) simulator.SimulationState {
	t.Helper()
	state, err := simulator.FromMacro(settings, macro)
	require.NoError(t, err, "replaying returned macro failed at a supposedly legal action")
	return state
}

func TestSolveFindsAFinishingMacro(t *testing.T) {
	settings := scenarioSettings()
	solver := NewMacroSolver(settings, DefaultConfig(), nil)

	macro, err := solver.Solve(context.Background(), simulator.New(settings), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, macro)

	final := replay(t, settings, macro)
	require.GreaterOrEqual(t, final.Progress, settings.MaxProgress, "returned macro must finish the craft")
}

func TestSolveReportsNoSolutionWhenUnreachable(t *testing.T) {
	settings := &simulator.Settings{
		MaxCP:          5,
		MaxDurability:  10,
		MaxProgress:    1_000_000,
		MaxQuality:     1,
		BaseProgress:   1,
		BaseQuality:    1,
		JobLevel:       1,
		AllowedActions: simulator.ActionMaskFromLevel(1),
	}
	solver := NewMacroSolver(settings, DefaultConfig(), nil)

	_, err := solver.Solve(context.Background(), simulator.New(settings), nil, nil)
	solverErr, ok := err.(*SolverError)
	require.True(t, ok, "expected a *SolverError, got %T", err)
	require.Equal(t, NoSolution, solverErr.Kind)
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	settings := scenarioSettings()
	solver := NewMacroSolver(settings, DefaultConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, simulator.New(settings), nil, nil)
	solverErr, ok := err.(*SolverError)
	require.True(t, ok, "expected a *SolverError, got %T", err)
	require.Equal(t, Interrupted, solverErr.Kind)
}

func TestSolveRespectsInterruptFlag(t *testing.T) {
	settings := scenarioSettings()
	interrupt := true
	solver := NewMacroSolver(settings, DefaultConfig(), &interrupt)

	_, err := solver.Solve(context.Background(), simulator.New(settings), nil, nil)
	solverErr, ok := err.(*SolverError)
	require.True(t, ok, "expected a *SolverError, got %T", err)
	require.Equal(t, Interrupted, solverErr.Kind)
}

func TestSolveCallsOnIntermediateWithAnImprovingFinalMacro(t *testing.T) {
	settings := smallSettings()
	solver := NewMacroSolver(settings, DefaultConfig(), nil)

	var calls [][]simulator.Action
	macro, err := solver.Solve(context.Background(), simulator.New(settings), nil, func(m []simulator.Action) {
		cp := make([]simulator.Action, len(m))
		copy(cp, m)
		calls = append(calls, cp)
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(calls) == 0 {
		t.Fatal("expected at least one onIntermediate call")
	}
	last := calls[len(calls)-1]
	if len(last) != len(macro) {
		t.Fatalf("final onIntermediate call should match the returned macro: got %v, want %v", last, macro)
	}
}

func TestSolveBackloadProgressKeepsQualityActionsBeforeProgress(t *testing.T) {
	settings := smallSettings()
	config := DefaultConfig()
	config.BackloadProgress = true
	solver := NewMacroSolver(settings, config, nil)

	macro, err := solver.Solve(context.Background(), simulator.New(settings), nil, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	state := simulator.New(settings)
	progressStarted := false
	for _, a := range macro {
		if progressStarted && qualityActions.Has(a) {
			t.Fatalf("backloaded macro played a quality action %v after progress had already started", a)
		}
		next, err := simulator.UseAction(state, a, simulator.Normal, settings)
		if err != nil {
			t.Fatalf("replaying returned macro failed at %v: %v", a, err)
		}
		state = next
		if state.Progress != 0 {
			progressStarted = true
		}
	}
}

func TestSolveMinimizeStepsPrefersFewerActionsOnTie(t *testing.T) {
	settings := smallSettings()

	stepsConfig := DefaultConfig()
	stepsConfig.MinimizeSteps = true
	stepsSolver := NewMacroSolver(settings, stepsConfig, nil)
	stepsMacro, err := stepsSolver.Solve(context.Background(), simulator.New(settings), nil, nil)
	if err != nil {
		t.Fatalf("Solve (minimize steps): %v", err)
	}

	durationSolver := NewMacroSolver(settings, DefaultConfig(), nil)
	durationMacro, err := durationSolver.Solve(context.Background(), simulator.New(settings), nil, nil)
	if err != nil {
		t.Fatalf("Solve (minimize duration): %v", err)
	}

	stepsFinal := replay(t, settings, stepsMacro)
	durationFinal := replay(t, settings, durationMacro)
	if stepsFinal.Progress < settings.MaxProgress || durationFinal.Progress < settings.MaxProgress {
		t.Fatal("both configurations must still produce a finishing macro")
	}
}

func TestSatAddU8SaturatesInsteadOfWrapping(t *testing.T) {
	if got := satAddU8(250, 10); got != 255 {
		t.Fatalf("want 255, got %d", got)
	}
	if got := satAddU8(10, 20); got != 30 {
		t.Fatalf("want 30, got %d", got)
	}
}
