package macrosolver

// SolverConfig selects which search behavior the macro solver runs
// (spec.md §4.G). The zero value is the default configuration, the same
// value DefaultConfig returns.
type SolverConfig struct {
	// QualityTarget overrides settings.MaxQuality as the quality the search
	// treats as "done" for the purpose of switching a branch into
	// progress-only mode. Zero means use settings.MaxQuality.
	QualityTarget uint16

	// BackloadProgress forces every quality-relevant action to be played
	// before any progress-relevant one: once a state's progress is
	// nonzero, only progress/durability actions are considered from then
	// on. This trades optimality for a much smaller search tree and
	// mirrors how human crafters sequence "quality phase then progress
	// phase" macros.
	BackloadProgress bool

	// MinimizeSteps controls the queue's tie-break order: true prefers the
	// solution with fewer actions (then shorter duration); false (the
	// default) prefers the solution with shorter duration (then fewer
	// actions).
	MinimizeSteps bool

	// AllowUnsoundBranchPruning enables the actions package's additional
	// non-admissible combo-pruning heuristics (actions.Flags
	// AllowUnsoundBranchPruning) for a faster but no-longer-exact search.
	AllowUnsoundBranchPruning bool
}

// DefaultConfig returns the search's baseline configuration: no
// backloading, duration-first tie-break, and exact (sound) branch pruning
// only. Adversarial scoring is controlled by Settings.Adversarial, not by
// this config.
func DefaultConfig() SolverConfig {
	return SolverConfig{}
}
