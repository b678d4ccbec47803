package queue

import "github.com/katalvlaran/craftsolver/simulator"

// Score ranks a search node. Quality dominates: a node promising higher
// quality is always explored first regardless of how much time or how many
// steps it has taken so far. Duration and Steps break ties between nodes
// that promise the same quality; which of the two breaks the tie first is
// controlled by the queue's MinimizeSteps configuration (spec.md §4.G).
type Score struct {
	QualityUpperBound uint16
	Duration          uint8
	Steps             uint8
}

// NewScore builds a Score, capping qualityUpperBound at settings.MaxQuality
// so a state that already exceeds the target (e.g. via ByregotsBlessing
// overshoot) never outranks an exact-target completion.
func NewScore(qualityUpperBound uint16, duration, steps uint8, settings *simulator.Settings) Score {
	if qualityUpperBound > settings.MaxQuality {
		qualityUpperBound = settings.MaxQuality
	}
	return Score{QualityUpperBound: qualityUpperBound, Duration: duration, Steps: steps}
}

// Better reports whether a should be preferred over b under the given
// tie-break preference — used both internally by the queue and by callers
// comparing two completed solutions' final scores.
func Better(a, b Score, minimizeSteps bool) bool {
	return better(a, b, minimizeSteps)
}

// better reports whether a should be explored/kept ahead of b under the
// given tie-break preference.
func better(a, b Score, minimizeSteps bool) bool {
	if a.QualityUpperBound != b.QualityUpperBound {
		return a.QualityUpperBound > b.QualityUpperBound
	}
	if minimizeSteps {
		if a.Steps != b.Steps {
			return a.Steps < b.Steps
		}
		return a.Duration < b.Duration
	}
	if a.Duration != b.Duration {
		return a.Duration < b.Duration
	}
	return a.Steps < b.Steps
}
