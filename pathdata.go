package graphis

import (
	"strconv"
	"strings"
)

// PathData accumulates path commands and serializes them into the value of
// an SVG path "d" attribute. Commands are append-only; all methods return
// the receiver for chaining.
//
//	d := graphis.NewPathData().
//		MoveTo(350, 250).
//		LineTo(450, 250).
//		ArcTo(50, 250, graphis.Tuple{200, 200}, 0, false, false).
//		Result()
type PathData struct {
	instructions []DrawingInstruction
}

// NewPathData starts an empty path.
func NewPathData() *PathData {
	return &PathData{instructions: make([]DrawingInstruction, 0, 8)}
}

// MoveTo appends "M x,y".
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.instructions = append(p.instructions, DrawingInstruction{Kind: MoveInstruction, M: &Tuple{x, y}})
	return p
}

// LineTo appends "L x,y".
func (p *PathData) LineTo(x, y float64) *PathData {
	p.instructions = append(p.instructions, DrawingInstruction{Kind: LineInstruction, M: &Tuple{x, y}})
	return p
}

// ArcTo appends an elliptical arc to (x, y):
// "A rx,ry,xAxisRotation,largeArc,sweep,x,y" with the flags written as 1 or 0.
func (p *PathData) ArcTo(x, y float64, radii Tuple, xAxisRotation float64, largeArc, sweep bool) *PathData {
	r := radii
	p.instructions = append(p.instructions, DrawingInstruction{
		Kind:          ArcInstruction,
		M:             &Tuple{x, y},
		Radii:         &r,
		XAxisRotation: xAxisRotation,
		LargeArc:      largeArc,
		Sweep:         sweep,
	})
	return p
}

// Len returns the number of commands appended so far.
func (p *PathData) Len() int {
	return len(p.instructions)
}

// Instructions returns a copy of the recorded commands.
func (p *PathData) Instructions() []DrawingInstruction {
	out := make([]DrawingInstruction, len(p.instructions))
	copy(out, p.instructions)
	return out
}

// Result returns the commands in call order as one string. An empty path
// yields "".
func (p *PathData) Result() string {
	return FormatInstructions(p.instructions)
}

// String implements fmt.Stringer, alias for Result.
func (p *PathData) String() string {
	return p.Result()
}

// FormatInstructions serializes instructions the way PathData does. Paint
// instructions carry no geometry and are skipped.
func FormatInstructions(instructions []DrawingInstruction) string {
	var sb strings.Builder
	for _, in := range instructions {
		var cmd string
		switch in.Kind {
		case MoveInstruction:
			cmd = "M " + formatTuple(*in.M)
		case LineInstruction:
			cmd = "L " + formatTuple(*in.M)
		case ArcInstruction:
			cmd = "A " + formatTuple(*in.Radii) + "," +
				formatNumber(in.XAxisRotation) + "," +
				formatFlag(in.LargeArc) + "," +
				formatFlag(in.Sweep) + "," +
				formatTuple(*in.M)
		case CloseInstruction:
			cmd = "Z"
		default:
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cmd)
	}
	return sb.String()
}

func formatTuple(t Tuple) string {
	return formatNumber(t[0]) + "," + formatNumber(t[1])
}

// formatNumber writes the shortest decimal that parses back to v, never in
// exponent form. Negative zero is written as 0.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
