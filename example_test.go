package geopattern_test

import (
	"fmt"

	"github.com/hupe1980/geopattern"
	"github.com/hupe1980/geopattern/notation"
)

// twoMotifs is C4-D4-E4 in eighths, an eighth rest, and C4-D4-E4 again.
func twoMotifs() *notation.Sheet {
	return &notation.Sheet{Parts: []notation.Part{notation.Line("Melody", notation.NewDuration(1, 1),
		notation.N(60, 1, 8), notation.N(62, 1, 8), notation.N(64, 1, 8),
		notation.R(1, 8),
		notation.N(60, 1, 8), notation.N(62, 1, 8), notation.N(64, 1, 8),
	)}}
}

func ExampleDiscover() {
	d, err := geopattern.Discover(twoMotifs(), 1.5)
	if err != nil {
		panic(err)
	}

	patterns, err := d.Patterns()
	if err != nil {
		panic(err)
	}
	for i, occurrences := range patterns {
		fmt.Printf("ratio %.2f:", d.Groups()[i].CompressionRatio())
		for _, events := range occurrences {
			pitches := make([]int, len(events))
			for j, ev := range events {
				pitches[j] = ev.Onset.Pitch(0)
			}
			fmt.Print(" ", pitches)
		}
		fmt.Println()
	}
	// Output:
	// ratio 1.50: [60 60] [62 62] [64 64]
	// ratio 1.50: [60 62 64] [60 62 64]
}

func ExampleSearch() {
	query := &notation.Sheet{Parts: []notation.Part{notation.Line("Query", notation.NewDuration(1, 1),
		notation.N(70, 1, 8), notation.N(72, 1, 8),
	)}}

	occs, err := geopattern.Search(twoMotifs(), query)
	if err != nil {
		panic(err)
	}
	for _, occ := range occs {
		fmt.Println(occ.Positions()[0])
	}
	// Output:
	// Pos(part=0 staff=1 measure=1 voice=1 index=0)
	// Pos(part=0 staff=1 measure=1 voice=1 index=1)
	// Pos(part=0 staff=1 measure=1 voice=1 index=4)
	// Pos(part=0 staff=1 measure=1 voice=1 index=5)
}
