package queue

import (
	"container/heap"

	"github.com/katalvlaran/craftsolver/simulator"
)

// rootBacktrackID identifies the search's starting state, which has no
// parent and no action leading into it.
const rootBacktrackID = 0

// backtrackEntry is one node of the parent-pointer action log. Entries are
// append-only: ids are stable for the lifetime of a SearchQueue.
type backtrackEntry struct {
	parent int
	action simulator.Action
	steps  uint8
}

// entry is one node on the heap: a state, the score it was pushed with, and
// the backtrack id identifying the path that reached it.
type entry struct {
	state       simulator.SimulationState
	score       Score
	backtrackID int
}

// heapSlice implements container/heap.Interface, ordered so Pop always
// returns the single most promising entry (per better, with minimizeSteps
// baked in at construction).
type heapSlice struct {
	items         []entry
	minimizeSteps bool
}

func (h heapSlice) Len() int { return len(h.items) }
func (h heapSlice) Less(i, j int) bool {
	return better(h.items[i].score, h.items[j].score, h.minimizeSteps)
}
func (h heapSlice) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *heapSlice) Push(x any)   { h.items = append(h.items, x.(entry)) }
func (h *heapSlice) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// SearchQueue is the macro solver's best-first search frontier. Not safe
// for concurrent use.
type SearchQueue struct {
	settings      *simulator.Settings
	minimizeSteps bool
	heap          heapSlice
	backtrack     []backtrackEntry
	minScore      Score
	totalPushed   int
	totalPopped   int
}

// NewSearchQueue seeds the frontier with the craft's starting state and an
// initial minimum-acceptable score (typically from a cheap greedy rollout):
// any branch that can never beat minScore is never worth exploring.
func NewSearchQueue(state simulator.SimulationState, initialScore, minScore Score, settings *simulator.Settings, minimizeSteps bool) *SearchQueue {
	q := &SearchQueue{
		settings:      settings,
		minimizeSteps: minimizeSteps,
		backtrack:     []backtrackEntry{{parent: -1, steps: 0}},
		minScore:      minScore,
	}
	q.heap.minimizeSteps = minimizeSteps
	heap.Push(&q.heap, entry{state: state, score: initialScore, backtrackID: rootBacktrackID})
	q.totalPushed = 1
	return q
}

// UpdateMinScore raises the pruning threshold if score is better than the
// current one; it never lowers it.
func (q *SearchQueue) UpdateMinScore(score Score) {
	if better(score, q.minScore, q.minimizeSteps) {
		q.minScore = score
	}
}

// Push enqueues a new frontier node reached from parentBacktrackID by
// action. Nodes that cannot beat the current minimum-acceptable score are
// silently dropped — they can never produce the winning solution.
func (q *SearchQueue) Push(state simulator.SimulationState, score Score, action simulator.Action, parentBacktrackID int) {
	if !better(score, q.minScore, q.minimizeSteps) {
		return
	}
	id := len(q.backtrack)
	q.backtrack = append(q.backtrack, backtrackEntry{
		parent: parentBacktrackID,
		action: action,
		steps:  q.backtrack[parentBacktrackID].steps + 1,
	})
	heap.Push(&q.heap, entry{state: state, score: score, backtrackID: id})
	q.totalPushed++
}

// Pop returns the single most promising remaining node, or ok=false once
// the frontier is exhausted or its best remaining candidate can no longer
// beat the current minimum-acceptable score — at which point the search is
// provably complete and nothing left in the heap is worth visiting. The
// seeded starting state is exempt from that threshold: it is always
// returned, whatever minScore is.
func (q *SearchQueue) Pop() (state simulator.SimulationState, score Score, backtrackID int, ok bool) {
	for q.heap.Len() > 0 {
		top := q.heap.items[0]
		if top.backtrackID != rootBacktrackID && !better(top.score, q.minScore, q.minimizeSteps) {
			return simulator.SimulationState{}, Score{}, 0, false
		}
		popped := heap.Pop(&q.heap).(entry)
		q.totalPopped++
		return popped.state, popped.score, popped.backtrackID, true
	}
	return simulator.SimulationState{}, Score{}, 0, false
}

// Steps returns the number of actions already committed along the path
// that reached backtrackID.
func (q *SearchQueue) Steps(backtrackID int) uint8 {
	return q.backtrack[backtrackID].steps
}

// Backtrack reconstructs, in play order, the action sequence that reached
// backtrackID from the search's starting state.
func (q *SearchQueue) Backtrack(backtrackID int) []simulator.Action {
	out := make([]simulator.Action, 0, q.backtrack[backtrackID].steps)
	for id := backtrackID; id != rootBacktrackID; id = q.backtrack[id].parent {
		out = append(out, q.backtrack[id].action)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ProgressEstimate returns a rough [0,1] completion estimate for a UI
// progress bar: how close the pruning threshold has climbed toward
// settings.MaxQuality. It is not exact — the search may still find a
// better solution and raise the threshold further — but it only ever
// moves forward within one solve.
func (q *SearchQueue) ProgressEstimate() float32 {
	if q.settings.MaxQuality == 0 {
		return 1
	}
	return float32(q.minScore.QualityUpperBound) / float32(q.settings.MaxQuality)
}
