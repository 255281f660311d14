package pointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/hash"
	"github.com/hupe1980/geopattern/notation"
)

func sheetOf(parts ...notation.Part) *notation.Sheet {
	return &notation.Sheet{Parts: parts}
}

func pointsOf(ps *PointSet) []string {
	out := make([]string, 0, ps.Len())
	for _, p := range ps.All() {
		out = append(out, p.String())
	}
	return out
}

func TestFromScore_Melody(t *testing.T) {
	score := sheetOf(notation.Line("Melody", notation.NewDuration(1, 1),
		notation.N(60, 1, 8), notation.N(62, 1, 8), notation.N(64, 1, 8),
		notation.R(1, 8),
		notation.N(60, 1, 8), notation.N(62, 1, 8), notation.N(64, 1, 8),
	))

	ps, err := FromScore(score)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(0, 60, 0)", "(0.125, 62, 0)", "(0.25, 64, 0)",
		"(0.5, 60, 0)", "(0.625, 62, 0)", "(0.75, 64, 0)",
	}, pointsOf(ps))

	wantIdx := []int{0, 1, 2, 4, 5, 6}
	for i, idx := range wantIdx {
		assert.Equal(t, notation.At(0, 1, 1, 1, idx), ps.Position(i))
	}
}

func TestFromScore_ChordsStavesAndParts(t *testing.T) {
	half := notation.NewDuration(1, 2)
	score := sheetOf(
		notation.Part{Name: "Piano", Measures: []notation.Measure{
			{Duration: half, Staves: [][]notation.Voice{
				{
					{notation.N(72, 1, 4), notation.N(74, 1, 4)},
					{notation.R(1, 2)},
				},
				{{{Duration: half, Onset: notation.Chord(48, 55)}}},
			}},
			{Duration: half, Staves: [][]notation.Voice{
				{{{Duration: half, Onset: notation.Tied(74)}}},
				{{notation.R(1, 2)}},
			}},
		}},
		notation.Part{Name: "Flute", Measures: []notation.Measure{
			{Duration: half, Staves: [][]notation.Voice{{{notation.R(1, 4), notation.N(84, 1, 4)}}}},
		}},
	)

	ps, err := FromScore(score)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(0, 48, 0)", "(0, 55, 0)", "(0, 72, 0)", "(0.25, 74, 0)", "(0.25, 84, 1)",
	}, pointsOf(ps))
	assert.Equal(t, []notation.Position{
		notation.At(0, 2, 1, 1, 0).InChord(0),
		notation.At(0, 2, 1, 1, 0).InChord(1),
		notation.At(0, 1, 1, 1, 0),
		notation.At(0, 1, 1, 1, 1),
		notation.At(1, 1, 1, 1, 1),
	}, []notation.Position{ps.Position(0), ps.Position(1), ps.Position(2), ps.Position(3), ps.Position(4)})
}

func TestFromScore_MeasureOffsets(t *testing.T) {
	whole := notation.NewDuration(1, 1)
	score := sheetOf(notation.Part{Measures: []notation.Measure{
		// Pickup measure: the nominal length counts, not the content.
		{Duration: whole, Staves: [][]notation.Voice{{{notation.N(60, 1, 4)}}}},
		{Duration: whole, Staves: [][]notation.Voice{{{notation.N(62, 1, 2), notation.N(64, 1, 2)}}}},
		{Duration: notation.NewDuration(3, 4), Staves: [][]notation.Voice{{{notation.N(65, 3, 4)}}}},
		{Duration: whole, Staves: [][]notation.Voice{{{notation.N(67, 1, 1)}}}},
	}})

	ps, err := FromScore(score)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(0, 60, 0)", "(1, 62, 0)", "(1.5, 64, 0)", "(2, 65, 0)", "(2.75, 67, 0)",
	}, pointsOf(ps))
}

func TestFromScore_VoiceReset(t *testing.T) {
	half := notation.NewDuration(1, 2)
	score := sheetOf(notation.Part{Measures: []notation.Measure{
		{Duration: half, Staves: [][]notation.Voice{{
			{notation.N(72, 1, 4), notation.N(74, 1, 4)},
			{notation.N(60, 1, 8), notation.N(62, 3, 8)},
		}}},
	}})

	ps, err := FromScore(score)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(0, 60, 0)", "(0, 72, 0)", "(0.125, 62, 0)", "(0.25, 74, 0)",
	}, pointsOf(ps))
}

func TestFromScore_DuplicatesKeepFirstPosition(t *testing.T) {
	half := notation.NewDuration(1, 2)
	score := sheetOf(notation.Part{Measures: []notation.Measure{
		{Duration: half, Staves: [][]notation.Voice{{
			{notation.N(60, 1, 2)},
			{notation.N(60, 1, 2)},
		}}},
	}})

	ps, err := FromScore(score)
	require.NoError(t, err)
	require.Equal(t, 1, ps.Len())
	assert.Equal(t, notation.At(0, 1, 1, 1, 0), ps.Position(0))
}

func TestFromScore_Empty(t *testing.T) {
	ps, err := FromScore(sheetOf())
	require.NoError(t, err)
	assert.Zero(t, ps.Len())

	ps, err = FromScore(sheetOf(notation.Line("Rests", notation.NewDuration(1, 1), notation.R(1, 1))))
	require.NoError(t, err)
	assert.Zero(t, ps.Len())
}

func TestFromScore_Errors(t *testing.T) {
	_, err := FromScore(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	flat, err := geometry.NewLayout([]geometry.Component{
		{Name: "x", Kind: geometry.Fractional},
		{Name: "y", Kind: geometry.Fractional},
	})
	require.NoError(t, err)

	_, err = FromScore(sheetOf(), WithLayout(flat))
	assert.ErrorIs(t, err, geometry.ErrInvalidArgument)
}

func TestPointSet_Lookup(t *testing.T) {
	score := sheetOf(notation.Line("Melody", notation.NewDuration(1, 1),
		notation.N(60, 1, 4), notation.N(62, 1, 4), notation.N(64, 1, 4), notation.N(60, 1, 4),
	))
	ps, err := FromScore(score)
	require.NoError(t, err)

	l := ps.Layout()
	idx, ok := ps.IndexOf(l.MustPoint(0.5, 64, 0))
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	// Offsets computed by accumulation still hit after rounding.
	_, ok = ps.IndexOf(l.MustPoint(0.1+0.15, 62, 0))
	assert.True(t, ok)

	_, ok = ps.IndexOf(l.MustPoint(0.5, 65, 0))
	assert.False(t, ok)

	pos, ok := ps.PositionOf(l.MustPoint(0.75, 60, 0))
	require.True(t, ok)
	assert.Equal(t, notation.At(0, 1, 1, 1, 3), pos)
}

func TestPointSet_Occurrence(t *testing.T) {
	score := sheetOf(notation.Line("Melody", notation.NewDuration(1, 1),
		notation.N(60, 1, 4), notation.N(62, 1, 4), notation.N(65, 1, 4), notation.N(67, 1, 4),
	))
	ps, err := FromScore(score)
	require.NoError(t, err)

	l := ps.Layout()
	pattern := geometry.MustPattern(l.MustPoint(0, 60, 0), l.MustPoint(0.25, 62, 0))

	got, ok := ps.Occurrence(pattern, l.MustPoint(0.5, 5, 0))
	require.True(t, ok)
	assert.Equal(t, []notation.Position{notation.At(0, 1, 1, 1, 2), notation.At(0, 1, 1, 1, 3)}, got)

	_, ok = ps.Occurrence(pattern, l.MustPoint(0.25, 2, 0))
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	target := geometry.Music(geometry.WithSeeds(hash.NewSeeds(hash.WithSeed(7))))
	other := geometry.Music()

	ps, err := New(target,
		Entry{Point: other.MustPoint(1, 60, 0), Position: notation.At(0, 1, 2, 1, 0)},
		Entry{Point: target.MustPoint(0, 62, 0), Position: notation.At(0, 1, 1, 1, 0)},
		Entry{Point: other.MustPoint(1, 60, 0), Position: notation.At(0, 1, 3, 1, 0)},
	)
	require.NoError(t, err)

	require.Equal(t, 2, ps.Len())
	assert.Same(t, target, ps.At(1).Layout())
	assert.Equal(t, notation.At(0, 1, 2, 1, 0), ps.Position(1))

	idx, ok := ps.IndexOf(target.MustPoint(1, 60, 0))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(geometry.Music(), Entry{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	flat, err := geometry.NewLayout([]geometry.Component{{Name: "x", Kind: geometry.Fractional}})
	require.NoError(t, err)

	_, err = New(geometry.Music(), Entry{Point: flat.MustPoint(1)})
	var mismatch *geometry.ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 1, mismatch.Actual)
}
