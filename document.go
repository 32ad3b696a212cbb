package graphis

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
)

// DefaultOutput is where GeneratePieChart writes when no path is given.
const DefaultOutput = "bin/graph.svg"

// chartStyle dims every sector except the hovered one.
const chartStyle = `path{transition:250ms;cursor:pointer;}svg:has(path:hover) path:not(path:hover){filter:brightness(0.5);}`

// Page is an SVG canvas holding one or more charts. A page with a single
// chart writes its paths directly under the root element; with several
// charts each one is wrapped in its own group.
type Page struct {
	Width, Height int
	charts        []*Chart
}

// NewPage returns an empty canvas of the given size.
func NewPage(width, height int) *Page {
	return &Page{Width: width, Height: height}
}

// Add appends a chart to the page. A nil chart is ignored.
func (p *Page) Add(c *Chart) *Page {
	if c != nil {
		p.charts = append(p.charts, c)
	}
	return p
}

// Charts returns the charts in the order they were added.
func (p *Page) Charts() []*Chart {
	return p.charts
}

// Bytes renders the page as an SVG document.
func (p *Page) Bytes() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(p.Width, p.Height, 0, 0, p.Width, p.Height)
	canvas.Style("text/css", chartStyle)

	grouped := len(p.charts) > 1
	for i, c := range p.charts {
		if grouped {
			canvas.Gid(fmt.Sprintf("chart-%d", i))
		}
		for _, s := range c.Sectors {
			canvas.Path(s.PathData, fmt.Sprintf(`fill="%s"`, s.Fill))
		}
		if grouped {
			canvas.Gend()
		}
	}
	canvas.End()
	return buf.Bytes()
}

// WriteTo implements io.WriterTo.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// Save writes the page to path, creating the parent directory if it does
// not exist yet.
func (p *Page) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, p.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Render returns a standalone SVG document for one chart.
func Render(c *Chart) []byte {
	return NewPage(c.Width, c.Height).Add(c).Bytes()
}

// Save writes a standalone SVG document for one chart to path.
func Save(path string, c *Chart) error {
	return NewPage(c.Width, c.Height).Add(c).Save(path)
}

// GeneratePieChart generates a pie chart and saves it to path, or to
// DefaultOutput when path is empty. Nothing is written when generation
// fails.
func GeneratePieChart(data []DataPoint, config PieChartConfig, path string, opts ...Option) (*Chart, error) {
	chart, err := NewPieChartGenerator(data, config, opts...).GenerateGraph()
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultOutput
	}
	if err := Save(path, chart); err != nil {
		Logger().Error("saving pie chart failed", "path", path, "err", err)
		return chart, err
	}
	return chart, nil
}
