package graphis

// InstructionType tells a drawing backend which primitive it has to emit.
type InstructionType int

// Instruction types produced by PathData and by the path-data parser.
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	ArcInstruction
	CloseInstruction
	PaintInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case ArcInstruction:
		return "arc"
	case CloseInstruction:
		return "close"
	case PaintInstruction:
		return "paint"
	}
	return "unknown"
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// DrawingInstruction contains enough information that a simple drawing
// library can draw a sector path.
//
// M is the end point of move, line and arc instructions. Radii, XAxisRotation,
// LargeArc and Sweep are only meaningful for arcs. Fill is only set on the
// PaintInstruction that terminates a parsed path.
type DrawingInstruction struct {
	Kind          InstructionType
	M             *Tuple
	Radii         *Tuple
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
	Fill          *string
}
