package macrosolver

import (
	"context"
	"math"

	"github.com/katalvlaran/craftsolver/actions"
	"github.com/katalvlaran/craftsolver/finish"
	"github.com/katalvlaran/craftsolver/internal/telemetry"
	"github.com/katalvlaran/craftsolver/queue"
	"github.com/katalvlaran/craftsolver/quality"
	"github.com/katalvlaran/craftsolver/simulator"
	"github.com/katalvlaran/craftsolver/steps"
)

// progressCallbackInterval is how many nodes the search pops between
// onProgress invocations: frequent enough for a responsive UI, rare enough
// that the callback itself never dominates search time.
const progressCallbackInterval = 1 << 16

// solution is the best completed macro found so far.
type solution struct {
	score   queue.Score
	actions []simulator.Action
}

// MacroSolver drives one solve. It owns the inner DP solvers' memo tables,
// so reusing one instance across several starting states from the same
// recipe/crafter (e.g. stepping a UI through what-if states) is cheaper
// than constructing a fresh one per call. Not safe for concurrent use.
type MacroSolver struct {
	settings  *simulator.Settings
	config    SolverConfig
	interrupt *bool

	finishSolver  *finish.Solver
	qualitySolver *quality.Solver
	stepsSolver   *steps.Solver
}

// NewMacroSolver builds a MacroSolver for one recipe/crafter combination.
// interrupt, if non-nil, is polled by the search loop (in addition to
// ctx.Done(), which Solve also observes) and is shared with the inner
// solvers' own interrupt checks.
func NewMacroSolver(settings *simulator.Settings, config SolverConfig, interrupt *bool) *MacroSolver {
	flags := actions.Flags{
		BackloadProgress:          config.BackloadProgress,
		AllowUnsoundBranchPruning: config.AllowUnsoundBranchPruning,
	}
	return &MacroSolver{
		settings:      settings,
		config:        config,
		interrupt:     interrupt,
		finishSolver:  finish.NewSolver(interrupt),
		qualitySolver: quality.NewSolver(settings, flags, interrupt),
		stepsSolver:   steps.NewSolver(settings),
	}
}

// Solve searches for the macro — ordered first by highest quality, then by
// the configured duration/step tie-break — that finishes the craft from
// state. onProgress, if non-nil, is called occasionally with a [0,1]
// completion estimate. onIntermediate, if non-nil, is called every time the
// search improves on its best solution so far, so a caller can show a
// partial result before the search finishes.
func (m *MacroSolver) Solve(
	ctx context.Context,
	state simulator.SimulationState,
	onProgress func(float32),
	onIntermediate func([]simulator.Action),
) ([]simulator.Action, error) {
	finishTimer := telemetry.NewNamedTimer("finish solver")
	finishable := m.finishSolver.CanFinish(state, m.settings)
	finishTimer.Stop()
	if !finishable {
		return nil, &SolverError{Kind: NoSolution}
	}

	searchTimer := telemetry.NewNamedTimer("full search")
	defer searchTimer.Stop()
	return m.search(ctx, state, onProgress, onIntermediate)
}

func (m *MacroSolver) interrupted(ctx context.Context) bool {
	if ctx.Err() != nil {
		if m.interrupt != nil {
			*m.interrupt = true
		}
		return true
	}
	return m.interrupt != nil && *m.interrupt
}

func (m *MacroSolver) qualityTarget() uint16 {
	if m.config.QualityTarget != 0 {
		return m.config.QualityTarget
	}
	return m.settings.MaxQuality
}

// stepBoundFor returns the step lower bound to attach to a node's score:
// only meaningful once the node's quality upper bound already meets the
// target, since the step solver assumes quality is free past that point.
func (m *MacroSolver) stepBoundFor(state simulator.SimulationState, qualityBound uint16) uint8 {
	if qualityBound < m.qualityTarget() {
		return math.MaxUint8
	}
	return m.stepsSolver.StepLowerBound(state)
}

func (m *MacroSolver) search(
	ctx context.Context,
	start simulator.SimulationState,
	onProgress func(float32),
	onIntermediate func([]simulator.Action),
) ([]simulator.Action, error) {
	target := m.qualityTarget()

	startQualityBound, err := m.qualitySolver.QualityUpperBound(start, target)
	if err != nil {
		return nil, interruptAware(err)
	}
	initialScore := queue.NewScore(startQualityBound, 0, m.stepBoundFor(start, startQualityBound), m.settings)

	lowerBoundQuality := fastLowerBound(start, m.settings, &m.config, m.finishSolver, m.qualitySolver)
	minScore := queue.NewScore(lowerBoundQuality, math.MaxUint8, math.MaxUint8, m.settings)

	q := queue.NewSearchQueue(start, initialScore, minScore, m.settings, m.config.MinimizeSteps)

	var best *solution
	popped := 0

	for {
		if m.interrupted(ctx) {
			return nil, &SolverError{Kind: Interrupted}
		}

		st, score, backtrackID, ok := q.Pop()
		if !ok {
			break
		}
		popped++
		if onProgress != nil && popped%progressCallbackInterval == 0 {
			onProgress(q.ProgressEstimate())
		}

		mask := searchMaskFor(st, m.settings, &m.config, target)
		currentSteps := q.Steps(backtrackID)

		var branchErr error
		mask.Iterate(func(a simulator.Action) bool {
			child, err := simulator.UseAction(st, a, simulator.Normal, m.settings)
			if err != nil {
				return true
			}

			if child.IsFinal(m.settings) {
				solutionScore := queue.NewScore(effectiveQuality(child, m.settings), satAddU8(score.Duration, a.TimeCost()), satAddU8(currentSteps, 1), m.settings)
				q.UpdateMinScore(solutionScore)
				if best == nil || queue.Better(solutionScore, best.score, m.config.MinimizeSteps) {
					path := append(q.Backtrack(backtrackID), a)
					best = &solution{score: solutionScore, actions: path}
					if onIntermediate != nil {
						onIntermediate(best.actions)
					}
					if onProgress != nil {
						onProgress(q.ProgressEstimate())
					}
				}
				return true
			}

			if !m.finishSolver.CanFinish(child, m.settings) {
				return true
			}
			q.UpdateMinScore(queue.NewScore(effectiveQuality(child, m.settings), math.MaxUint8, math.MaxUint8, m.settings))

			childQualityBound := effectiveQuality(child, m.settings)
			if childQualityBound < target {
				bound, err := m.qualitySolver.QualityUpperBound(child, target)
				if err != nil {
					branchErr = err
					return false
				}
				if bound > childQualityBound {
					childQualityBound = bound
				}
			}

			childScore := queue.NewScore(
				childQualityBound,
				satAddU8(score.Duration, a.TimeCost()),
				satAddU8(satAddU8(currentSteps, 1), m.stepBoundFor(child, childQualityBound)),
				m.settings,
			)
			q.Push(child, childScore, a, backtrackID)
			return true
		})
		if branchErr != nil {
			return nil, interruptAware(branchErr)
		}
	}

	telemetry.Logger.Debug().Int("popped", popped).Bool("found", best != nil).Msg("macrosolver: search queue drained")

	if best == nil {
		return nil, &SolverError{Kind: NoSolution}
	}
	return best.actions, nil
}

func interruptAware(err error) error {
	if err == quality.ErrInterrupted {
		return &SolverError{Kind: Interrupted}
	}
	return newInternalError(err)
}

// satAddU8 adds two uint8 values, saturating at math.MaxUint8 rather than
// wrapping — important here since math.MaxUint8 is also stepBoundFor's
// sentinel for "quality target not yet met", and a wrapped sum around that
// sentinel would make an unfinished branch look cheaper than a finished one.
func satAddU8(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(sum)
}
