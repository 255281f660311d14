package notation

import "iter"

// Event is one durational element produced by a score traversal.
type Event struct {
	Position Position
	Duration Duration
	Onset    Onset
}

// Score is the traversable notation model consumed by pattern discovery.
//
// Implementations must be deterministic: two traversals of the same score
// yield the same events in the same order.
type Score interface {
	// Events yields every durational element part by part; within a part
	// measure by measure, then staff by staff, then voice by voice.
	Events() iter.Seq[Event]

	// MeasureDuration returns the nominal length of a measure (its time
	// signature's total duration).
	MeasureDuration(part, staff, measure int) Duration

	// At returns the element at a position. A position with a chord index
	// returns a single-note event for that chord member.
	At(pos Position) (Event, bool)
}
