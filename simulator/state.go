package simulator

// SimulationState is the full, comparable game state (spec.md §3). Values
// are copied by assignment; there is no pointer aliasing anywhere in this
// package, so every solver can memoize states directly as map keys.
type SimulationState struct {
	Progress           uint16
	Quality            uint16
	UnreliableQuality  uint16
	Durability         int8
	CP                 int16
	Effects            Effects
	Combo              Combo
}

// Settings holds the immutable parameters of a single solve: recipe targets
// and crafter stats. A Settings value is shared read-only by every solver
// package; nothing in this module mutates it after construction.
type Settings struct {
	MaxCP           int16
	MaxDurability   int8
	MaxProgress     uint16
	MaxQuality      uint16
	BaseProgress    uint16
	BaseQuality     uint16
	JobLevel        uint8
	AllowedActions  ActionMask
	Adversarial     bool
}

// New returns the starting SimulationState for a solve: full CP and
// durability, zero progress/quality, no effects except QuickInnovation
// being available, and the SynthesisBegin combo slot open.
func New(settings *Settings) SimulationState {
	return SimulationState{
		Durability: settings.MaxDurability,
		CP:         settings.MaxCP,
		Effects:    Effects(0).WithQuickInnovationAvailable(true),
		Combo:      ComboSynthesisBegin,
	}
}

// FromMacro replays a fixed action sequence from the starting state under
// the Normal condition, stopping at the first illegal action. It is used by
// tests that assert exact states after a known prefix or replay a solved
// macro.
func FromMacro(settings *Settings, actions []Action) (SimulationState, error) {
	state := New(settings)
	for _, a := range actions {
		var err error
		state, err = UseAction(state, a, Normal, settings)
		if err != nil {
			return state, err
		}
	}
	return state, nil
}

// IsFinal reports whether the state has completed the craft: progress has
// reached the recipe's max_progress.
func (s SimulationState) IsFinal(settings *Settings) bool {
	return s.Progress >= settings.MaxProgress
}

// ReliableQuality returns the quality attainable under a worst-case
// condition sequence: max(0, quality - unreliable_quality), per the
// adversarial model in spec.md §4.A.
func (s SimulationState) ReliableQuality() uint16 {
	if s.UnreliableQuality >= s.Quality {
		return 0
	}
	return s.Quality - s.UnreliableQuality
}
