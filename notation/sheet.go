package notation

import (
	"iter"
	"math/big"
)

// Durational is a single element of a voice.
type Durational struct {
	Duration Duration
	Onset    Onset
}

// N is shorthand for a note of the given length.
func N(pitch int, num, den int64) Durational {
	return Durational{Duration: NewDuration(num, den), Onset: Note(pitch)}
}

// R is shorthand for a rest of the given length.
func R(num, den int64) Durational {
	return Durational{Duration: NewDuration(num, den), Onset: Rest()}
}

// Voice is an ordered run of durational elements.
type Voice []Durational

// Measure holds the voices of every staff for one measure.
// Staves[s][v] is voice v+1 of staff s+1.
type Measure struct {
	// Duration is the nominal measure length from the time signature.
	Duration Duration
	Staves   [][]Voice
}

// Part is a named sequence of measures numbered from 1.
type Part struct {
	Name     string
	Measures []Measure
}

// Sheet is an in-memory Score.
type Sheet struct {
	Title string
	Parts []Part
}

var _ Score = (*Sheet)(nil)

// Events implements Score.
func (s *Sheet) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for pi, part := range s.Parts {
			for mi, m := range part.Measures {
				for si, staff := range m.Staves {
					for vi, voice := range staff {
						for i, d := range voice {
							ev := Event{
								Position: At(pi, si+1, mi+1, vi+1, i),
								Duration: d.Duration,
								Onset:    d.Onset,
							}
							if !yield(ev) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// MeasureDuration implements Score. Unknown measures have zero duration.
func (s *Sheet) MeasureDuration(part, _ int, measure int) Duration {
	m, ok := s.measure(part, measure)
	if !ok {
		return Duration{}
	}
	return m.Duration
}

// At implements Score.
func (s *Sheet) At(pos Position) (Event, bool) {
	m, ok := s.measure(pos.Part, pos.Measure)
	if !ok {
		return Event{}, false
	}
	si, vi := pos.Staff-1, pos.Voice-1
	if si < 0 || si >= len(m.Staves) || vi < 0 || vi >= len(m.Staves[si]) {
		return Event{}, false
	}
	voice := m.Staves[si][vi]
	if pos.Index < 0 || pos.Index >= len(voice) {
		return Event{}, false
	}
	d := voice[pos.Index]
	if !pos.HasChord() {
		return Event{Position: pos, Duration: d.Duration, Onset: d.Onset}, true
	}
	if d.Onset.Kind() != ChordOnset || pos.Chord < 0 || pos.Chord >= d.Onset.Len() {
		return Event{}, false
	}
	return Event{Position: pos, Duration: d.Duration, Onset: Note(d.Onset.Pitch(pos.Chord))}, true
}

func (s *Sheet) measure(part, measure int) (Measure, bool) {
	if part < 0 || part >= len(s.Parts) {
		return Measure{}, false
	}
	ms := s.Parts[part].Measures
	if measure < 1 || measure > len(ms) {
		return Measure{}, false
	}
	return ms[measure-1], true
}

// Line packs a single-voice melody into measures of the given length. An
// element belongs to the measure in which it starts.
func Line(name string, measure Duration, elems ...Durational) Part {
	part := Part{Name: name}
	length := measure.Rat()
	filled := new(big.Rat)
	var voice Voice

	flush := func() {
		part.Measures = append(part.Measures, Measure{
			Duration: measure,
			Staves:   [][]Voice{{voice}},
		})
		voice = nil
		filled.SetInt64(0)
	}

	for _, e := range elems {
		if length.Sign() > 0 && filled.Cmp(length) >= 0 {
			flush()
		}
		voice = append(voice, e)
		filled.Add(filled, e.Duration.Rat())
	}
	if len(voice) > 0 {
		flush()
	}
	return part
}
