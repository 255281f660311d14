// Package notation defines the small slice of a music notation model that
// pattern discovery consumes.
//
// A Score is traversed part-wise: parts in order, and within a part measure by
// measure, staff by staff, voice by voice. Every Event carries its Duration,
// an Onset classification and the Position it was read from.
//
// Onset is a closed variant over exactly four classifications:
//
//	notation.Note(60)          // a single pitched note
//	notation.Chord(60, 64, 67) // simultaneous notes
//	notation.Rest()            // silence
//	notation.Tied(60)          // continuation of a tied note, no new onset
//
// Sheet is a plain in-memory Score for callers that do not bring their own
// notation model:
//
//	sheet := &notation.Sheet{Parts: []notation.Part{{
//	    Name: "Flute",
//	    Measures: []notation.Measure{{
//	        Duration: notation.NewDuration(1, 1),
//	        Staves: [][]notation.Voice{{{
//	            {Duration: notation.NewDuration(1, 8), Onset: notation.Note(60)},
//	        }}},
//	    }},
//	}}}
package notation
