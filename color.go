package graphis

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	maxHex  = 16_777_216    // first value past 0xffffff
	maxHexA = 4_294_967_296 // first value past 0xffffffff
)

// Color is a fill color in its canonical literal form, #rrggbb or
// #rrggbbaa with lowercase digits. Colors are only built through the
// From* and Parse* constructors, so every non-zero Color is well formed.
//
// The zero Color carries no literal; a chart generator resolves it from
// its ColorSource.
type Color struct {
	literal string
}

// FromHex builds a #rrggbb color from a 24-bit value such as 0xffffff.
// The value must satisfy 0 < value < 16_777_216.
func FromHex(value int64) (Color, error) {
	if !isValidHex(value) {
		return Color{}, fmt.Errorf("%w: %d cannot be mapped to a hex color", ErrColorRange, value)
	}
	r := (value & 0xff0000) >> 16
	g := (value & 0x00ff00) >> 8
	b := value & 0x0000ff
	return Color{literal: fmt.Sprintf("#%02x%02x%02x", r, g, b)}, nil
}

// FromHexA builds a #rrggbbaa color from a 32-bit value where alpha is the
// low byte, such as 0xff000080. The value must satisfy
// 0 < value < 4_294_967_296. A zero alpha is logged as a warning but the
// color is still returned.
func FromHexA(value int64) (Color, error) {
	if value <= 0 || value >= maxHexA {
		return Color{}, fmt.Errorf("%w: %d cannot be mapped to a hex color with alpha", ErrColorRange, value)
	}
	r := (value >> 24) & 0xff
	g := (value >> 16) & 0xff
	b := (value >> 8) & 0xff
	a := value & 0xff
	c := Color{literal: fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)}
	if a == 0 {
		Logger().Warn("color is fully transparent", "color", c.literal)
	}
	return c, nil
}

// FromRGB builds a #rrggbb color. Each component must satisfy 0 < c <= 255;
// a component of exactly 0 is rejected.
func FromRGB(r, g, b int) (Color, error) {
	if err := checkComponents([]int{r, g, b}, "rgb"); err != nil {
		return Color{}, err
	}
	packed := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	return Color{literal: fmt.Sprintf("#%06x", packed)}, nil
}

// FromRGBA builds a #rrggbbaa color with the same component rules as
// FromRGB.
func FromRGBA(r, g, b, a int) (Color, error) {
	if err := checkComponents([]int{r, g, b, a}, "rgba"); err != nil {
		return Color{}, err
	}
	packed := uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
	return Color{literal: fmt.Sprintf("#%08x", packed)}, nil
}

// ParseColor reads a #rrggbb or #rrggbbaa literal in any case and returns
// its canonical form. The numeric value goes through FromHex or FromHexA,
// so "#000000" is rejected like FromHex(0).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return Color{}, fmt.Errorf("%w: %q is not a #rrggbb or #rrggbbaa literal", ErrColorRange, s)
	}
	v, err := strconv.ParseInt(s[1:], 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrColorRange, s, err)
	}
	if len(s) == 7 {
		return FromHex(v)
	}
	return FromHexA(v)
}

// NamedColor returns the color for an SVG color keyword such as "tomato".
func NamedColor(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrColorRange, name)
	}
	return FromHex(int64(c.R)<<16 | int64(c.G)<<8 | int64(c.B))
}

// Literal returns the canonical literal, or "" for the zero Color.
func (c Color) Literal() string {
	return c.literal
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.literal
}

// IsZero reports whether c carries no literal.
func (c Color) IsZero() bool {
	return c.literal == ""
}

// NRGBA converts c to a standard library color. The zero Color converts to
// transparent black.
func (c Color) NRGBA() color.NRGBA {
	if c.IsZero() {
		return color.NRGBA{}
	}
	v, _ := strconv.ParseUint(c.literal[1:], 16, 32)
	if len(c.literal) == 7 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// isValidHex reports whether value can be mapped to a #rrggbb color.
func isValidHex(value int64) bool {
	return value > 0 && value < maxHex
}

func checkComponents(components []int, model string) error {
	const names = "rgba"
	for i, c := range components {
		if c <= 0 || c > 255 {
			return fmt.Errorf("%w: %s component %c=%d must be in (0, 255]", ErrColorRange, model, names[i], c)
		}
	}
	return nil
}
