package graphis

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/net/html/charset"
)

// DrawingInstructionParser allows getting drawing instructions from an
// element. Paths and groups implement this interface.
type DrawingInstructionParser interface {
	ParseDrawingInstructions() chan *DrawingInstruction
}

// Svg represents an SVG document such as the ones written by Page: a root
// element with paths, optionally grouped.
type Svg struct {
	Title     string
	Width     string
	Height    string
	ViewBox   string
	Style     string
	Elements  []DrawingInstructionParser
	Name      string
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID       string
	Fill     string
	Elements []DrawingInstructionParser
	Parent   *Group
	Owner    *Svg
}

type textElement struct {
	Text string `xml:",chardata"`
}

// ParseDrawingInstructions implements the DrawingInstructionParser interface
func (g *Group) ParseDrawingInstructions() chan *DrawingInstruction {
	return forwardInstructions(g.Elements)
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "fill":
			g.Fill = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var elementStruct DrawingInstructionParser

			switch tok.Name.Local {
			case "g":
				elementStruct = &Group{Parent: g, Owner: g.Owner, Fill: g.Fill}
			case "path":
				elementStruct = &Path{group: g, owner: g.Owner, Fill: g.Fill}
			default:
				if err = decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(elementStruct, &tok); err != nil {
				return fmt.Errorf("error decoding element of Group: %s", err)
			}
			g.Elements = append(g.Elements, elementStruct)

		case xml.EndElement:
			return nil
		}
	}
}

// ParseDrawingInstructions implements the DrawingInstructionParser interface.
// Instructions of every path are sent in document order and the channel is
// closed after the last one.
func (s *Svg) ParseDrawingInstructions() chan *DrawingInstruction {
	return forwardInstructions(s.Elements)
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "viewBox":
			s.ViewBox = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var dip DrawingInstructionParser

			switch tok.Name.Local {
			case "g":
				dip = &Group{Owner: s}
			case "path":
				dip = &Path{owner: s}
			case "style", "title":
				var text textElement
				if err = decoder.DecodeElement(&text, &tok); err != nil {
					return fmt.Errorf("error decoding %s element of SVG struct: %s", tok.Name.Local, err)
				}
				if tok.Name.Local == "style" {
					s.Style += strings.TrimSpace(text.Text)
				} else {
					s.Title = strings.TrimSpace(text.Text)
				}
				continue
			default:
				if err = decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(dip, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %s", err)
			}

			s.Elements = append(s.Elements, dip)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// Paths returns every path of the document in document order, groups
// flattened.
func (s *Svg) Paths() []*Path {
	var paths []*Path
	var walk func([]DrawingInstructionParser)
	walk = func(elements []DrawingInstructionParser) {
		for _, e := range elements {
			switch e := e.(type) {
			case *Path:
				paths = append(paths, e)
			case *Group:
				walk(e.Elements)
			}
		}
	}
	walk(s.Elements)
	return paths
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies coordinates, a negative one divides them by -scale, and zero
// keeps them as they are.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	var svg Svg
	svg.Name = name
	svg.Transform = mt.NewTransform()
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}

	svg.SetOwner()
	return &svg, nil
}

// Scale returns the factor coordinates are multiplied by when parsed.
func (s *Svg) Scale() float64 {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}

// SetOwner points every nested group and path back at s.
func (s *Svg) SetOwner() {
	var walk func(*Group, []DrawingInstructionParser)
	walk = func(parent *Group, elements []DrawingInstructionParser) {
		for _, e := range elements {
			switch e := e.(type) {
			case *Group:
				e.Owner = s
				e.Parent = parent
				walk(e, e.Elements)
			case *Path:
				e.owner = s
				e.group = parent
			}
		}
	}
	walk(nil, s.Elements)
}

func forwardInstructions(elements []DrawingInstructionParser) chan *DrawingInstruction {
	out := make(chan *DrawingInstruction, 100)
	go func() {
		defer close(out)
		for _, e := range elements {
			for is := range e.ParseDrawingInstructions() {
				out <- is
			}
		}
	}()
	return out
}
