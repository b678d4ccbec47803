// Package actions defines ActionCombo: a primitive action, or a short fixed
// sequence of primitives (2-3 of them) that the macro solver treats as a
// single atomic branch. Combos let the search explore "Basic Touch into
// Standard Touch into Advanced Touch" as one node instead of three, and let
// HeartAndSoul-gated openers ("Heart and Soul into Precise Touch") be
// expanded only where HeartAndSoul itself is legal.
//
// Three curated catalogs (Full, ProgressOnly, QualityOnly) list the combos
// worth branching into, depending on whether the state still needs
// progress, quality, or both (see IsProgressOnlyState). The quality DP uses
// Full and ProgressOnly, the finish solver uses ProgressOnly; the macro
// solver and the step DP branch on plain ActionMasks instead.
package actions
