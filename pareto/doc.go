// Package pareto implements an arena-backed builder for 2-D Pareto fronts
// of (progress, quality)-shaped pairs.
//
// A front is a slice of Value[T,U], strictly increasing in First and
// strictly decreasing in Second (invariant 8): every point on the front
// dominates every point to its right in Second while trailing it in First,
// and no point is dominated by another. The quality and step-lower-bound
// DPs build millions of short-lived fronts over the course of a solve, so
// Builder keeps every live front as a span into one growing buffer (and,
// once "saved", into one growing arena) instead of allocating a fresh slice
// per front.
//
// Usage is a small stack machine: PushEmpty/PushSlice/PushID push a new
// segment onto an implicit stack of "the last N fronts under
// construction"; Merge pops the top two and pushes their Pareto union;
// Save freezes the top segment into the long-lived arena and returns a
// FrontID a caller can Retrieve much later, after the working buffer has
// moved on.
package pareto
