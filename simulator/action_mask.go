package simulator

import "math/bits"

// ActionMask is a bitset over the Action universe. The universe fits in 32
// actions today (numActions); the type is a uint64 so Settings.AllowedActions
// has headroom to grow without a representation change, following the same
// dense-bitmask-over-small-universe approach lvlath/tsp/exact.go uses for its
// Held-Karp subset keys.
type ActionMask uint64

// FullActionMask returns a mask with every defined Action set.
func FullActionMask() ActionMask {
	var m ActionMask
	for i := 0; i < numActions; i++ {
		m = m.Add(Action(i))
	}
	return m
}

// ActionMaskFromLevel returns every Action whose level requirement is at
// most level — the mask a crafter of that level has actually unlocked,
// before any settings-specific exclusions are applied.
func ActionMaskFromLevel(level uint8) ActionMask {
	var m ActionMask
	for i := 0; i < numActions; i++ {
		a := Action(i)
		if a.levelRequirement() <= level {
			m = m.Add(a)
		}
	}
	return m
}

// Add returns the mask with a set.
func (m ActionMask) Add(a Action) ActionMask {
	return m | (1 << uint(a))
}

// Remove returns the mask with a cleared.
func (m ActionMask) Remove(a Action) ActionMask {
	return m &^ (1 << uint(a))
}

// Has reports whether a is present in the mask.
func (m ActionMask) Has(a Action) bool {
	return m&(1<<uint(a)) != 0
}

// Union returns m ∪ other.
func (m ActionMask) Union(other ActionMask) ActionMask {
	return m | other
}

// Intersection returns m ∩ other.
func (m ActionMask) Intersection(other ActionMask) ActionMask {
	return m & other
}

// Len returns the number of actions set in the mask.
func (m ActionMask) Len() int {
	return bits.OnesCount64(uint64(m))
}

// Iterate calls f for every Action present in the mask, in ascending
// numeric order, stopping early if f returns false.
func (m ActionMask) Iterate(f func(Action) bool) {
	for rem := uint64(m); rem != 0; {
		i := bits.TrailingZeros64(rem)
		if !f(Action(i)) {
			return
		}
		rem &^= 1 << uint(i)
	}
}

// Slice materializes the mask into a slice of Actions in ascending order.
func (m ActionMask) Slice() []Action {
	out := make([]Action, 0, m.Len())
	m.Iterate(func(a Action) bool {
		out = append(out, a)
		return true
	})
	return out
}
