package graphis

import (
	"fmt"
	"math"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element
type Path struct {
	ID    string `xml:"id,attr"`
	D     string `xml:"d,attr"`
	Fill  string `xml:"fill,attr"`
	Style string `xml:"style,attr"`
	group *Group
	owner *Svg
}

type pathDescriptionParser struct {
	lex            *gl.Lexer
	x, y           float64
	startx, starty float64
	transform      mt.Transform
	instructions   []DrawingInstruction
	done           bool
}

func newPathDParse(name, d string, transform mt.Transform) *pathDescriptionParser {
	l, _ := gl.Lex(name, d)
	return &pathDescriptionParser{lex: l, transform: transform}
}

// ParsePathData interprets a path description and returns its commands with
// absolute coordinates. Relative commands, implicit repeated coordinates
// and horizontal or vertical lines are resolved into move, line, arc and
// close instructions.
func ParsePathData(d string) ([]DrawingInstruction, error) {
	return parsePathData("d", d, mt.Identity())
}

func parsePathData(name, d string, transform mt.Transform) ([]DrawingInstruction, error) {
	pdp := newPathDParse(name, d, transform)
	for {
		pdp.lex.ConsumeWhiteSpace()
		i := pdp.next()
		switch {
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("%w: %s", ErrPathSyntax, i.Value)
		case i.Type == gl.ItemEOS:
			return pdp.instructions, nil
		case i.Type == gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				pdp.drain()
				return nil, err
			}
		default:
			pdp.drain()
			return nil, fmt.Errorf("%w: unexpected %q in %s", ErrPathSyntax, i.Value, name)
		}
	}
}

// Instructions parses the path description, applying the scale of the
// document the path was read from.
func (p *Path) Instructions() ([]DrawingInstruction, error) {
	return parsePathData(p.name(), p.D, p.transform())
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. The channel carries the path commands followed by one
// PaintInstruction holding the fill, and is closed afterwards. A malformed
// path is logged and yields no instructions.
func (p *Path) ParseDrawingInstructions() chan *DrawingInstruction {
	out := make(chan *DrawingInstruction, 16)
	go func() {
		defer close(out)
		instructions, err := p.Instructions()
		if err != nil {
			Logger().Error("parsing path data failed", "path", p.name(), "err", err)
			return
		}
		for i := range instructions {
			out <- &instructions[i]
		}
		fill := p.Fill
		out <- &DrawingInstruction{Kind: PaintInstruction, Fill: &fill}
	}()
	return out
}

func (p *Path) name() string {
	if p.ID != "" {
		return p.ID
	}
	return "path"
}

func (p *Path) transform() mt.Transform {
	if p.owner != nil && p.owner.Transform != nil {
		return *p.owner.Transform
	}
	return mt.Identity()
}

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	var err error

	switch i.Value {
	case "M":
		err = pdp.parseMoveTo(false)
	case "m":
		err = pdp.parseMoveTo(true)
	case "L":
		err = pdp.parseLineTo(false)
	case "l":
		err = pdp.parseLineTo(true)
	case "H":
		err = pdp.parseHLineTo(false)
	case "h":
		err = pdp.parseHLineTo(true)
	case "V":
		err = pdp.parseVLineTo(false)
	case "v":
		err = pdp.parseVLineTo(true)
	case "A":
		err = pdp.parseArcTo(false)
	case "a":
		err = pdp.parseArcTo(true)
	case "z", "Z":
		pdp.parseClose()
	default:
		err = fmt.Errorf("%w: unsupported command %q", ErrPathSyntax, i.Value)
	}

	return err
}

// parseMoveTo reads a move; further coordinate pairs are implicit lines.
func (pdp *pathDescriptionParser) parseMoveTo(relative bool) error {
	t, err := pdp.nextTuple()
	if err != nil {
		return fmt.Errorf("move expects a coordinate pair: %w", err)
	}
	pdp.advance(t, relative)
	pdp.startx, pdp.starty = pdp.x, pdp.y
	pdp.emit(DrawingInstruction{Kind: MoveInstruction})

	return pdp.parseLineTo(relative)
}

func (pdp *pathDescriptionParser) parseLineTo(relative bool) error {
	for pdp.hasNumber() {
		t, err := pdp.nextTuple()
		if err != nil {
			return fmt.Errorf("line expects coordinate pairs: %w", err)
		}
		pdp.advance(t, relative)
		pdp.emit(DrawingInstruction{Kind: LineInstruction})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseHLineTo(relative bool) error {
	for pdp.hasNumber() {
		n, err := pdp.nextNumber()
		if err != nil {
			return err
		}
		if relative {
			pdp.x += n
		} else {
			pdp.x = n
		}
		pdp.emit(DrawingInstruction{Kind: LineInstruction})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseVLineTo(relative bool) error {
	for pdp.hasNumber() {
		n, err := pdp.nextNumber()
		if err != nil {
			return err
		}
		if relative {
			pdp.y += n
		} else {
			pdp.y = n
		}
		pdp.emit(DrawingInstruction{Kind: LineInstruction})
	}
	return nil
}

// parseArcTo reads groups of rx ry x-axis-rotation large-arc sweep x y.
func (pdp *pathDescriptionParser) parseArcTo(relative bool) error {
	for pdp.hasNumber() {
		var args [7]float64
		for k := range args {
			n, err := pdp.nextNumber()
			if err != nil {
				return fmt.Errorf("arc expects 7 numbers: %w", err)
			}
			args[k] = n
		}
		pdp.advance(Tuple{args[5], args[6]}, relative)

		rx, ry := pdp.scaleRadii(args[0], args[1])
		pdp.emit(DrawingInstruction{
			Kind:          ArcInstruction,
			Radii:         &Tuple{rx, ry},
			XAxisRotation: args[2],
			LargeArc:      args[3] != 0,
			Sweep:         args[4] != 0,
		})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseClose() {
	pdp.x, pdp.y = pdp.startx, pdp.starty
	pdp.instructions = append(pdp.instructions, DrawingInstruction{Kind: CloseInstruction})
}

// emit sets the end point of in to the current point, in document space.
func (pdp *pathDescriptionParser) emit(in DrawingInstruction) {
	x, y := pdp.transform.Apply(pdp.x, pdp.y)
	in.M = &Tuple{x, y}
	pdp.instructions = append(pdp.instructions, in)
}

func (pdp *pathDescriptionParser) advance(t Tuple, relative bool) {
	if relative {
		pdp.x += t[0]
		pdp.y += t[1]
		return
	}
	pdp.x, pdp.y = t[0], t[1]
}

// scaleRadii maps arc radii through the linear part of the transform.
func (pdp *pathDescriptionParser) scaleRadii(rx, ry float64) (float64, float64) {
	ox, oy := pdp.transform.Apply(0, 0)
	sx, _ := pdp.transform.Apply(rx, 0)
	_, sy := pdp.transform.Apply(0, ry)
	return math.Abs(sx - ox), math.Abs(sy - oy)
}

func (pdp *pathDescriptionParser) skipSeparators() {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
}

func (pdp *pathDescriptionParser) hasNumber() bool {
	pdp.skipSeparators()
	return pdp.lex.PeekItem().Type == gl.ItemNumber
}

func (pdp *pathDescriptionParser) nextNumber() (float64, error) {
	pdp.skipSeparators()
	return parseNumber(pdp.next())
}

func (pdp *pathDescriptionParser) nextTuple() (Tuple, error) {
	x, err := pdp.nextNumber()
	if err != nil {
		return Tuple{}, err
	}
	y, err := pdp.nextNumber()
	if err != nil {
		return Tuple{}, err
	}
	return Tuple{x, y}, nil
}

func (pdp *pathDescriptionParser) next() gl.Item {
	i := pdp.lex.NextItem()
	if i.Type == gl.ItemEOS || i.Type == gl.ItemError {
		pdp.done = true
	}
	return i
}

// drain reads the lexer up to its end so it can finish.
func (pdp *pathDescriptionParser) drain() {
	for !pdp.done {
		pdp.next()
	}
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected a number, got %q", ErrPathSyntax, i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPathSyntax, err)
	}
	return n, nil
}
