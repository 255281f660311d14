package testutil

import (
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/notation"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// rhythm holds the note lengths random voices are drawn from, in 16ths.
var rhythm = []int64{1, 2, 2, 4, 4, 4, 8}

// RandomVoice fills a measure of the given length (in 16ths) with notes and
// rests from a narrow pitch range so that repetitions are likely.
func (r *RNG) RandomVoice(sixteenths int64) notation.Voice {
	r.mu.Lock()
	defer r.mu.Unlock()

	var v notation.Voice
	for left := sixteenths; left > 0; {
		d := rhythm[r.rand.Intn(len(rhythm))]
		d = min(d, left)
		left -= d

		switch x := r.rand.Intn(10); {
		case x == 0:
			v = append(v, notation.R(d, 16))
		case x == 1:
			root := 55 + r.rand.Intn(8)
			v = append(v, notation.Durational{Duration: notation.NewDuration(d, 16), Onset: notation.Chord(root, root+4, root+7)})
		default:
			v = append(v, notation.N(60+r.rand.Intn(8), d, 16))
		}
	}
	return v
}

// RandomSheet returns a sheet with the given number of single-staff parts and
// 4/4 measures per part.
func (r *RNG) RandomSheet(parts, measures int) *notation.Sheet {
	whole := notation.NewDuration(1, 1)
	s := &notation.Sheet{Title: "random"}
	for range parts {
		var p notation.Part
		for range measures {
			p.Measures = append(p.Measures, notation.Measure{
				Duration: whole,
				Staves:   [][]notation.Voice{{r.RandomVoice(16)}},
			})
		}
		s.Parts = append(s.Parts, p)
	}
	return s
}

// MotifSheet returns a single 4/4 measure holding the ascending motif
// C4-D4-E4 in eighths, an eighth rest, and the motif again. Its points are
// (0, 60), (0.125, 62), (0.25, 64), (0.5, 60), (0.625, 62), (0.75, 64).
func MotifSheet() *notation.Sheet {
	return &notation.Sheet{
		Title: "motif",
		Parts: []notation.Part{notation.Line("Melody", notation.NewDuration(1, 1),
			notation.N(60, 1, 8), notation.N(62, 1, 8), notation.N(64, 1, 8),
			notation.R(1, 8),
			notation.N(60, 1, 8), notation.N(62, 1, 8), notation.N(64, 1, 8),
		)},
	}
}

// Expand returns the sorted string forms of every occurrence of pattern under
// translators. Two classes describe the same repetition exactly when their
// expansions are equal, whichever occurrence each one uses as representative.
func Expand(pattern geometry.Pattern, translators []geometry.Point) []string {
	out := make([]string, len(translators))
	for i, tr := range translators {
		out[i] = pattern.Translate(tr).String()
	}
	slices.Sort(out)
	return out
}

// BruteForceTranslators returns every vector that maps all of pattern into
// points, by trying each point as the image of the first pattern point.
// The result is ordered by that image.
func BruteForceTranslators(points []geometry.Point, pattern geometry.Pattern) []geometry.Point {
	set := geometry.NewSet[geometry.Point](len(points))
	for _, p := range points {
		set.Add(p)
	}

	var out []geometry.Point
	for _, q := range points {
		tr := q.Sub(pattern.First())
		ok := true
		for _, p := range pattern.Points() {
			if !set.Contains(p.Add(tr)) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, tr)
		}
	}
	return out
}

// Strings formats points with their String method.
func Strings(points []geometry.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.String()
	}
	return out
}

// Join is Strings joined by spaces, handy in failure messages.
func Join(points []geometry.Point) string {
	return strings.Join(Strings(points), " ")
}
