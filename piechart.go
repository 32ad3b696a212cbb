package graphis

import (
	"fmt"
	"log/slog"
	"math"
)

// NamespaceURL is the SVG namespace carried by the root element.
const NamespaceURL = "http://www.w3.org/2000/svg"

// piR maps the percent-of-circle axis to radians: 100 units are one turn.
const piR = math.Pi / 50

// Generator is implemented by every chart type.
type Generator interface {
	GenerateGraph() (*Chart, error)
}

// DataPoint is one weighted value of a pie chart. A zero Color asks the
// generator to pick the fill from its ColorSource.
type DataPoint struct {
	Value float64
	Color Color
}

// PieChartConfig describes the canvas and the ring the sectors are drawn on.
type PieChartConfig struct {
	Width, Height int

	// Center is the (x, y) position of the ring center.
	Center Tuple

	// InnerRadius is 0 for a pie and positive for a donut.
	InnerRadius float64
	RadialWidth float64

	// InitialRotation offsets the first sector. It is multiplied by 100 and
	// taken modulo 100 on the percent-of-circle axis, so 0.25 is a quarter
	// turn.
	InitialRotation float64
}

// OuterRadius returns InnerRadius + RadialWidth.
func (c PieChartConfig) OuterRadius() float64 {
	return c.InnerRadius + c.RadialWidth
}

// Validate checks that the configuration describes a drawable ring.
func (c PieChartConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !isFinite(c.Center[0]) || !isFinite(c.Center[1]):
		return fmt.Errorf("%w: center %v is not finite", ErrInvalidConfig, c.Center)
	case !isFinite(c.InnerRadius) || c.InnerRadius < 0:
		return fmt.Errorf("%w: inner radius %v must be >= 0", ErrInvalidConfig, c.InnerRadius)
	case !isFinite(c.RadialWidth) || c.RadialWidth <= 0:
		return fmt.Errorf("%w: radial width %v must be > 0", ErrInvalidConfig, c.RadialWidth)
	case !isFinite(c.InitialRotation):
		return fmt.Errorf("%w: initial rotation %v is not finite", ErrInvalidConfig, c.InitialRotation)
	}
	return nil
}

// NormalizedSector is a data point expressed on the percent-of-circle axis.
// StartPercent includes the initial rotation offset and is never wrapped.
type NormalizedSector struct {
	Percent      float64
	Color        Color
	StartPercent float64
}

// Sector is one drawn wedge: the path data and the fill to paint it with.
type Sector struct {
	PathData     string
	Fill         string
	Percent      float64
	StartPercent float64
	LargeArc     bool
}

// Chart is the result of a generation: the canvas size and the sectors in
// input order.
type Chart struct {
	Width, Height int
	Sectors       []Sector
}

// ValidateData rejects an empty list and any value that is not a finite
// number greater than zero.
func ValidateData(data []DataPoint) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: no data points", ErrInvalidData)
	}
	for i, d := range data {
		if !isFinite(d.Value) || d.Value <= 0 {
			return fmt.Errorf("%w: data point %d has value %v", ErrInvalidData, i, d.Value)
		}
	}
	return nil
}

// Normalize validates data and converts every value into its share of the
// total, in percent. The first sector starts at (rotation*100) mod 100 and
// each following one starts where the previous ended.
func Normalize(data []DataPoint, rotation float64) ([]NormalizedSector, error) {
	if err := ValidateData(data); err != nil {
		return nil, err
	}

	sum := 0.0
	for _, d := range data {
		sum += d.Value
	}
	if !isFinite(sum) || sum <= 0 {
		return nil, fmt.Errorf("%w: sum is %v", ErrDegenerateSum, sum)
	}

	sv := math.Mod(rotation*100, 100)
	sectors := make([]NormalizedSector, len(data))
	for i, d := range data {
		p := d.Value / sum * 100
		sectors[i] = NormalizedSector{Percent: p, Color: d.Color, StartPercent: sv}
		sv += p
	}
	return sectors, nil
}

// Option configures a PieChartGenerator.
type Option func(*PieChartGenerator)

// WithColorSource sets the source used for data points without a color.
// The default is RandomColors(nil).
func WithColorSource(s ColorSource) Option {
	return func(g *PieChartGenerator) {
		if s != nil {
			g.colors = s
		}
	}
}

// WithLogger overrides the package logger for one generator.
func WithLogger(l *slog.Logger) Option {
	return func(g *PieChartGenerator) {
		g.logger = l
	}
}

// PieChartGenerator draws pie and donut charts. A generator owns a copy of
// its data; use one generator per goroutine.
type PieChartGenerator struct {
	config PieChartConfig
	data   []DataPoint
	colors ColorSource
	logger *slog.Logger
}

var _ Generator = (*PieChartGenerator)(nil)

// NewPieChartGenerator returns a generator for data drawn with config.
func NewPieChartGenerator(data []DataPoint, config PieChartConfig, opts ...Option) *PieChartGenerator {
	g := &PieChartGenerator{
		config: config,
		data:   append([]DataPoint(nil), data...),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.colors == nil {
		g.colors = RandomColors(nil)
	}
	return g
}

// GenerateGraph validates, normalizes and draws the chart. On a validation
// failure the error is logged and returned, and no chart is produced.
func (g *PieChartGenerator) GenerateGraph() (*Chart, error) {
	log := g.log()

	if err := g.config.Validate(); err != nil {
		log.Error("pie chart configuration rejected", "err", err)
		return nil, err
	}
	sectors, err := Normalize(g.data, g.config.InitialRotation)
	if err != nil {
		log.Error("pie chart data rejected", "err", err)
		return nil, err
	}

	chart := &Chart{
		Width:   g.config.Width,
		Height:  g.config.Height,
		Sectors: make([]Sector, 0, len(sectors)),
	}
	full := len(sectors) == 1
	for i, s := range sectors {
		fill := g.fill(i, s.Color)
		d := g.sectorPath(s, full)
		log.Debug("sector drawn",
			"index", i,
			"percent", s.Percent,
			"start", s.StartPercent,
			"fill", fill)
		chart.Sectors = append(chart.Sectors, Sector{
			PathData:     d.Result(),
			Fill:         fill,
			Percent:      s.Percent,
			StartPercent: s.StartPercent,
			LargeArc:     s.Percent > 50,
		})
	}
	return chart, nil
}

// sectorPath builds the annular wedge between the inner and outer radius:
//
//	M P1 L P2 A(outer) P4 L P3 A(inner) P1
//
// P1/P2 are the inner/outer start points, P3/P4 the inner/outer end points.
// When the sector covers the whole ring P1 equals P3, so each arc is split
// in two halves through the opposite point.
func (g *PieChartGenerator) sectorPath(s NormalizedSector, full bool) *PathData {
	r := g.config.InnerRadius
	rs := g.config.OuterRadius()
	sv, p := s.StartPercent, s.Percent
	large := p > 50

	p1 := g.pointAt(r, sv)
	p2 := g.pointAt(rs, sv)
	p3 := g.pointAt(r, sv+p)
	p4 := g.pointAt(rs, sv+p)

	d := NewPathData().
		MoveTo(p1[0], p1[1]).
		LineTo(p2[0], p2[1])
	if full {
		mo := g.pointAt(rs, sv+p/2)
		mi := g.pointAt(r, sv+p/2)
		return d.
			ArcTo(mo[0], mo[1], Tuple{rs, rs}, 0, large, false).
			ArcTo(p4[0], p4[1], Tuple{rs, rs}, 0, large, false).
			LineTo(p3[0], p3[1]).
			ArcTo(mi[0], mi[1], Tuple{r, r}, 0, large, true).
			ArcTo(p1[0], p1[1], Tuple{r, r}, 0, large, true)
	}
	return d.
		ArcTo(p4[0], p4[1], Tuple{rs, rs}, 0, large, false).
		LineTo(p3[0], p3[1]).
		ArcTo(p1[0], p1[1], Tuple{r, r}, 0, large, true)
}

// pointAt returns the point at radius and percent position around the
// center. Sine is negated because the SVG y axis points down.
func (g *PieChartGenerator) pointAt(radius, percent float64) Tuple {
	h, k := g.config.Center[0], g.config.Center[1]
	return Tuple{
		radius*math.Cos(piR*percent) + h,
		-radius*math.Sin(piR*percent) + k,
	}
}

func (g *PieChartGenerator) fill(index int, c Color) string {
	if c.IsZero() {
		c = g.colors.Color(index)
	}
	if c.IsZero() {
		// the source gave nothing usable
		c = RandomColors(nil).Color(index)
	}
	return c.Literal()
}

func (g *PieChartGenerator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return Logger()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
