package notation

import (
	"fmt"
	"slices"
)

// OnsetKind classifies a durational event.
type OnsetKind uint8

const (
	// NoteOnset is a single pitched note that starts sounding.
	NoteOnset OnsetKind = iota
	// ChordOnset is a set of simultaneous notes that start sounding.
	ChordOnset
	// RestOnset is silence.
	RestOnset
	// TieContinuation continues a note tied from the previous event.
	TieContinuation
)

func (k OnsetKind) String() string {
	switch k {
	case NoteOnset:
		return "Note"
	case ChordOnset:
		return "Chord"
	case RestOnset:
		return "Rest"
	case TieContinuation:
		return "TieContinuation"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Onset is the closed variant describing what an event does at its onset.
// Pitches are MIDI note numbers.
type Onset struct {
	kind    OnsetKind
	pitches []int
}

// Note returns a single-note onset.
func Note(pitch int) Onset {
	return Onset{kind: NoteOnset, pitches: []int{pitch}}
}

// Chord returns an onset of simultaneous notes, in the order given.
func Chord(pitches ...int) Onset {
	return Onset{kind: ChordOnset, pitches: slices.Clone(pitches)}
}

// Rest returns a rest.
func Rest() Onset {
	return Onset{kind: RestOnset}
}

// Tied returns the continuation of a note tied from the previous event.
func Tied(pitch int) Onset {
	return Onset{kind: TieContinuation, pitches: []int{pitch}}
}

// Kind returns the classification.
func (o Onset) Kind() OnsetKind { return o.kind }

// Pitches returns the pitches of the onset. Rests have none.
func (o Onset) Pitches() []int { return slices.Clone(o.pitches) }

// Pitch returns the pitch of a Note or TieContinuation, or the i-th pitch of a
// Chord.
func (o Onset) Pitch(i int) int { return o.pitches[i] }

// Len returns the number of pitches.
func (o Onset) Len() int { return len(o.pitches) }

func (o Onset) String() string {
	if o.kind == RestOnset {
		return o.kind.String()
	}
	return fmt.Sprintf("%s%v", o.kind, o.pitches)
}
