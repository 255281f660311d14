package notation

import (
	"fmt"
	"math/big"
)

// Duration is a rational note value in whole notes (1/4 is a quarter note).
type Duration struct {
	Num int64
	Den int64
}

// NewDuration returns num/den. It panics if den is not positive or num is
// negative.
func NewDuration(num, den int64) Duration {
	if den <= 0 || num < 0 {
		panic(fmt.Sprintf("notation: invalid duration %d/%d", num, den))
	}
	return Duration{Num: num, Den: den}
}

// Rat returns the duration as an exact rational.
func (d Duration) Rat() *big.Rat {
	if d.Den == 0 {
		return new(big.Rat)
	}
	return big.NewRat(d.Num, d.Den)
}

// Float64 returns the nearest float64 value.
func (d Duration) Float64() float64 {
	f, _ := d.Rat().Float64()
	return f
}

// IsZero reports whether the duration is empty.
func (d Duration) IsZero() bool { return d.Num == 0 }

func (d Duration) String() string {
	return d.Rat().RatString()
}
