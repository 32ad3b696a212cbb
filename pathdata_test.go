package graphis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathData_Empty(t *testing.T) {
	d := NewPathData()
	require.Equal(t, "", d.Result())
	require.Equal(t, 0, d.Len())
}

func TestPathData_Commands(t *testing.T) {
	tests := []struct {
		name  string
		build func(*PathData)
		want  string
	}{
		{
			"move",
			func(d *PathData) { d.MoveTo(1, 2) },
			"M 1,2",
		},
		{
			"line after move",
			func(d *PathData) { d.MoveTo(1, 2).LineTo(3.5, 4.25) },
			"M 1,2 L 3.5,4.25",
		},
		{
			"arc flags",
			func(d *PathData) { d.ArcTo(10, 20, Tuple{5, 6}, 0, true, false) },
			"A 5,6,0,1,0,10,20",
		},
		{
			"sweep only",
			func(d *PathData) { d.ArcTo(10, 20, Tuple{5, 5}, 30, false, true) },
			"A 5,5,30,0,1,10,20",
		},
		{
			"negative zero",
			func(d *PathData) { d.MoveTo(math.Copysign(0, -1), 0) },
			"M 0,0",
		},
		{
			"no exponent",
			func(d *PathData) { d.LineTo(1e-7, 1e21) },
			"L 0.0000001,1000000000000000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewPathData()
			tt.build(d)
			require.Equal(t, tt.want, d.Result())
			require.Equal(t, tt.want, d.String())
		})
	}
}

func TestPathData_InstructionsAreCopied(t *testing.T) {
	d := NewPathData().MoveTo(1, 1).LineTo(2, 2)
	ins := d.Instructions()
	require.Len(t, ins, 2)
	require.Equal(t, MoveInstruction, ins[0].Kind)
	require.Equal(t, LineInstruction, ins[1].Kind)

	ins[0].Kind = CloseInstruction
	require.Equal(t, "M 1,1 L 2,2", d.Result())
}

func TestFormatInstructions_SkipsPaint(t *testing.T) {
	fill := "#ffffff"
	got := FormatInstructions([]DrawingInstruction{
		{Kind: MoveInstruction, M: &Tuple{1, 1}},
		{Kind: CloseInstruction},
		{Kind: PaintInstruction, Fill: &fill},
	})
	require.Equal(t, "M 1,1 Z", got)
}

func TestInstructionType_String(t *testing.T) {
	require.Equal(t, "arc", ArcInstruction.String())
	require.Equal(t, "unknown", InstructionType(42).String())
}
