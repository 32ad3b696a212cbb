package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vasalvit/graphis"
)

var labelStyle = lipgloss.NewStyle().Bold(true)

// writeSummary prints one line per sector: a swatch in the sector color,
// the fill literal and the share of the chart.
func writeSummary(w io.Writer, chart *graphis.Chart, tag language.Tag) {
	p := message.NewPrinter(tag)
	fmt.Fprintln(w, labelStyle.Render(p.Sprintf("%d sectors, %dx%d", len(chart.Sectors), chart.Width, chart.Height)))
	for i, s := range chart.Sectors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(s.Fill))).Render("██")
		fmt.Fprintf(w, "%s %s %s\n", swatch, s.Fill, p.Sprintf("#%d %.2f%%", i+1, s.Percent))
	}
}

// opaque drops the alpha digits terminals cannot show.
func opaque(fill string) string {
	if len(fill) == 9 {
		return fill[:7]
	}
	return fill
}

// writeInspection prints the fill and command count of every path of a
// parsed document.
func writeInspection(w io.Writer, doc *graphis.Svg) error {
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("%s: %s x %s", doc.Name, doc.Width, doc.Height)))
	for i, path := range doc.Paths() {
		instructions, err := path.Instructions()
		if err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
		arcs := 0
		for _, in := range instructions {
			if in.Kind == graphis.ArcInstruction {
				arcs++
			}
		}
		fmt.Fprintf(w, "%s %s %d commands, %d arcs\n",
			lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(path.Fill))).Render("██"),
			path.Fill, len(instructions), arcs)
	}
	return nil
}
