package graphis

import (
	"fmt"
	"math/rand"
	"time"

	chart "github.com/wcharczuk/go-chart"
)

// ColorSource resolves the fill of a sector whose data point carries no
// color. index is the position of the sector in input order.
type ColorSource interface {
	Color(index int) Color
}

// ColorSourceFunc adapts a function to ColorSource.
type ColorSourceFunc func(index int) Color

// Color implements ColorSource.
func (f ColorSourceFunc) Color(index int) Color { return f(index) }

type randomColors struct {
	rng *rand.Rand
}

// RandomColors returns a source of uniformly random opaque colors drawn
// from [0x000000, 0xffffff]. A nil rng is seeded from the clock.
//
// The returned source is not safe for concurrent use, like the *rand.Rand
// it wraps.
func RandomColors(rng *rand.Rand) ColorSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &randomColors{rng: rng}
}

func (s *randomColors) Color(int) Color {
	return Color{literal: fmt.Sprintf("#%06x", s.rng.Int63n(maxHex))}
}

// AlternatePalette returns the go-chart alternate series palette. The same
// index always yields the same color, cycling once the palette runs out.
func AlternatePalette() ColorSource {
	return ColorSourceFunc(func(index int) Color {
		c := chart.GetAlternateColor(index)
		return Color{literal: fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)}
	})
}
