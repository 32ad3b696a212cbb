package graphis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomColors_Seeded(t *testing.T) {
	a := RandomColors(rand.New(rand.NewSource(7)))
	b := RandomColors(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		ca, cb := a.Color(i), b.Color(i)
		require.Equal(t, ca, cb)
		require.Regexp(t, hexLiteral, ca.Literal())
	}
}

func TestRandomColors_NilSeedsFromClock(t *testing.T) {
	s := RandomColors(nil)
	for i := 0; i < 10; i++ {
		require.Regexp(t, hexLiteral, s.Color(i).Literal())
	}
}

func TestAlternatePalette(t *testing.T) {
	p := AlternatePalette()
	first := p.Color(0)
	require.Regexp(t, hexLiteral, first.Literal())
	require.Equal(t, first, p.Color(0))
	require.NotEqual(t, first, p.Color(1))
}

func TestColorSourceFunc(t *testing.T) {
	red, err := FromHex(0xff0000)
	require.NoError(t, err)

	s := ColorSourceFunc(func(int) Color { return red })
	require.Equal(t, red, s.Color(3))
}
