package notation

import "fmt"

// NoChord marks a position that does not address a note inside a chord.
const NoChord = -1

// Position addresses a durational element (or a note inside a chord) in a
// score. Parts are indexed from 0; staves, measures and voices use their
// notated numbers; Index is the 0-based index within the voice.
type Position struct {
	Part    int
	Staff   int
	Measure int
	Voice   int
	Index   int
	Chord   int
}

// At returns the position of a durational element outside any chord.
func At(part, staff, measure, voice, index int) Position {
	return Position{Part: part, Staff: staff, Measure: measure, Voice: voice, Index: index, Chord: NoChord}
}

// InChord returns p extended with the index of a note inside its chord.
func (p Position) InChord(i int) Position {
	p.Chord = i
	return p
}

// HasChord reports whether p addresses a note inside a chord.
func (p Position) HasChord() bool { return p.Chord != NoChord }

// Element returns p without its chord index.
func (p Position) Element() Position {
	p.Chord = NoChord
	return p
}

func (p Position) String() string {
	if p.HasChord() {
		return fmt.Sprintf("Pos(part=%d staff=%d measure=%d voice=%d index=%d chord=%d)",
			p.Part, p.Staff, p.Measure, p.Voice, p.Index, p.Chord)
	}
	return fmt.Sprintf("Pos(part=%d staff=%d measure=%d voice=%d index=%d)",
		p.Part, p.Staff, p.Measure, p.Voice, p.Index)
}
